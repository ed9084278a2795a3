package services

import (
	"testing"

	"foodhub/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItem(id, restID uint, price int64) *entity.MenuItem {
	m := &entity.MenuItem{RestaurantID: restID, Name: "item", Price: price}
	m.ID = id
	return m
}

func TestCartAdd_BindsRestaurantOnFirstAdd(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(menuItem(1, 7, 1000), 1, "", nil))
	assert.Equal(t, uint(7), c.RestaurantID)
	assert.Len(t, c.Lines, 1)
}

func TestCartAdd_RejectsSecondRestaurant(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(menuItem(1, 7, 1000), 1, "", nil))

	err := c.Add(menuItem(2, 8, 500), 1, "", nil)
	assert.ErrorIs(t, err, ErrDifferentRestaurant)
	// ตะกร้าต้องไม่เปลี่ยน
	assert.Len(t, c.Lines, 1)
	assert.Equal(t, uint(7), c.RestaurantID)
}

func TestCartAdd_MergesIdenticalLines(t *testing.T) {
	addons := []entity.AddonRef{{ID: 1, Price: 150}, {ID: 2, Price: 50}}
	reversed := []entity.AddonRef{{ID: 2, Price: 50}, {ID: 1, Price: 150}}

	var c Cart
	require.NoError(t, c.Add(menuItem(1, 7, 1000), 1, "no onion", addons))
	// addon ชุดเดียวกันคนละลำดับ = บรรทัดเดียวกัน
	require.NoError(t, c.Add(menuItem(1, 7, 1000), 2, "no onion", reversed))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 3, c.Lines[0].Qty)
	assert.Equal(t, int64(3600), c.Total())
}

func TestCartAdd_DifferentInstructionsSplitLines(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(menuItem(1, 7, 1000), 1, "", nil))
	require.NoError(t, c.Add(menuItem(1, 7, 1000), 1, "extra spicy", nil))
	assert.Len(t, c.Lines, 2)
}

func TestCartAdd_DifferentAddonsSplitLines(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(menuItem(1, 7, 1000), 1, "", []entity.AddonRef{{ID: 1, Price: 150}}))
	require.NoError(t, c.Add(menuItem(1, 7, 1000), 1, "", []entity.AddonRef{{ID: 2, Price: 150}}))
	assert.Len(t, c.Lines, 2)
}

func TestCartRemove_RestoresTotalAndUnbinds(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(menuItem(1, 7, 1000), 2, "", nil))
	before := c.Total()
	require.NoError(t, c.Add(menuItem(2, 7, 500), 1, "", nil))

	c.Remove(1)
	assert.Equal(t, before, c.Total())

	c.Remove(0)
	assert.Empty(t, c.Lines)
	assert.Equal(t, uint(0), c.RestaurantID)

	// ว่างแล้วต้อง add ร้านใหม่ได้
	require.NoError(t, c.Add(menuItem(9, 8, 700), 1, "", nil))
	assert.Equal(t, uint(8), c.RestaurantID)
}

func TestCartUpdateQty(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(menuItem(1, 7, 1000), 1, "", nil))

	c.UpdateQty(0, 5)
	assert.Equal(t, 5, c.Lines[0].Qty)
	assert.Equal(t, 5, c.ItemCount())

	// qty 0 = ลบทิ้ง
	c.UpdateQty(0, 0)
	assert.Empty(t, c.Lines)
}

func TestCartUpdateQty_IgnoresBadIndex(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(menuItem(1, 7, 1000), 1, "", nil))
	c.UpdateQty(5, 3)
	c.Remove(-1)
	assert.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Lines[0].Qty)
}
