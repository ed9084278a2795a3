package services

import (
	"testing"

	"foodhub/entity"

	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	addons := []entity.AddonRef{{ID: 1, Name: "Fried Egg", Price: 150}}

	tests := []struct {
		name   string
		price  int64
		addons []entity.AddonRef
		qty    int
		want   int64
	}{
		{"plain item", 1000, nil, 1, 1000},
		{"with addon", 1000, addons, 1, 1150},
		{"with addon times two", 1000, addons, 2, 2300},
		{"qty zero clamps to one", 1000, nil, 0, 1000},
		{"qty negative clamps to one", 1000, addons, -3, 1150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LineTotal(tt.price, tt.addons, tt.qty))
		})
	}
}

func TestComputeQuote(t *testing.T) {
	// 2x 10.00 + addon 1.50 each = 23.00, fee 2.99, tax 8% = 1.84 → 27.83
	q := ComputeQuote(2300, 299, 0.08, 0)
	assert.Equal(t, int64(2300), q.Subtotal)
	assert.Equal(t, int64(184), q.Tax)
	assert.Equal(t, int64(299), q.DeliveryFee)
	assert.Equal(t, int64(0), q.Discount)
	assert.Equal(t, int64(2783), q.Total)
}

func TestComputeQuote_Redeem(t *testing.T) {
	// แลก 1000 แต้ม = ส่วนลด 10.00
	q := ComputeQuote(2300, 299, 0.08, 1000)
	assert.Equal(t, int64(1000), q.Discount)
	assert.Equal(t, int64(1783), q.Total)
	assert.Equal(t, 1000, q.PointsRedeemed)
}

func TestComputeQuote_DiscountNeverExceedsTotal(t *testing.T) {
	q := ComputeQuote(500, 0, 0, 100000)
	assert.Equal(t, int64(500), q.Discount)
	assert.Equal(t, int64(0), q.Total)
}

func TestComputeQuote_ClampsBadInputs(t *testing.T) {
	q := ComputeQuote(-100, -50, 0.08, -20)
	assert.Equal(t, int64(0), q.Subtotal)
	assert.Equal(t, int64(0), q.DeliveryFee)
	assert.Equal(t, int64(0), q.Discount)
	assert.Equal(t, int64(0), q.Total)
	assert.Equal(t, 0, q.PointsRedeemed)
}
