package services

import (
	"errors"

	"foodhub/entity"
)

var ErrDifferentRestaurant = errors.New("cart has another restaurant")

// CartLine คือหนึ่งบรรทัดในตะกร้า — snapshot ชื่อ/ราคาไว้แล้ว
type CartLine struct {
	MenuItemID          uint               `json:"menuItemId"`
	Name                string             `json:"name"`
	Price               int64              `json:"price"`
	Qty                 int                `json:"qty"`
	SpecialInstructions string             `json:"specialInstructions"`
	Addons              []entity.AddonRef  `json:"addons"`
}

func (l CartLine) Total() int64 {
	return LineTotal(l.Price, l.Addons, l.Qty)
}

// Cart ผูกร้านเดียว: ว่าง = ยังไม่ผูก, มีของ = ทุกบรรทัดร้านเดียวกัน
// จะเพิ่มของร้านอื่นต้อง Clear ก่อน
type Cart struct {
	RestaurantID uint       `json:"restaurantId"`
	Lines        []CartLine `json:"lines"`
}

// Add เพิ่มของเข้าตะกร้า — บรรทัดที่ "เหมือนกัน" (เมนู + note + addon ชุดเดียวกัน)
// จะรวม qty แทนที่จะแตกบรรทัดใหม่
func (c *Cart) Add(item *entity.MenuItem, qty int, instructions string, addons []entity.AddonRef) error {
	if qty < 1 {
		qty = 1
	}
	if len(c.Lines) > 0 && c.RestaurantID != item.RestaurantID {
		return ErrDifferentRestaurant
	}

	copied := make([]entity.AddonRef, len(addons))
	copy(copied, addons)

	for i := range c.Lines {
		l := &c.Lines[i]
		if l.MenuItemID == item.ID && l.SpecialInstructions == instructions && sameAddonSet(l.Addons, copied) {
			l.Qty += qty
			return nil
		}
	}

	c.RestaurantID = item.RestaurantID // ผูกร้านตอน add แรก
	c.Lines = append(c.Lines, CartLine{
		MenuItemID:          item.ID,
		Name:                item.Name,
		Price:               item.Price,
		Qty:                 qty,
		SpecialInstructions: instructions,
		Addons:              copied,
	})
	return nil
}

// Remove ลบบรรทัดตาม index; ตะกร้าว่างแล้วปลดร้านออก
func (c *Cart) Remove(index int) {
	if index < 0 || index >= len(c.Lines) {
		return
	}
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
	if len(c.Lines) == 0 {
		c.RestaurantID = 0
	}
}

// UpdateQty: qty <= 0 เท่ากับลบบรรทัดนั้น
func (c *Cart) UpdateQty(index, qty int) {
	if index < 0 || index >= len(c.Lines) {
		return
	}
	if qty <= 0 {
		c.Remove(index)
		return
	}
	c.Lines[index].Qty = qty
}

func (c *Cart) Clear() {
	c.Lines = nil
	c.RestaurantID = 0
}

func (c *Cart) Total() int64 {
	var sum int64
	for _, l := range c.Lines {
		sum += l.Total()
	}
	return sum
}

func (c *Cart) ItemCount() int {
	var n int
	for _, l := range c.Lines {
		n += l.Qty
	}
	return n
}

// sameAddonSet เทียบชุด addon แบบไม่สนลำดับ — ดูที่ id+price (multiset)
func sameAddonSet(a, b []entity.AddonRef) bool {
	if len(a) != len(b) {
		return false
	}
	type key struct {
		ID    uint
		Price int64
	}
	counts := make(map[key]int, len(a))
	for _, x := range a {
		counts[key{x.ID, x.Price}]++
	}
	for _, x := range b {
		k := key{x.ID, x.Price}
		counts[k]--
		if counts[k] < 0 {
			return false
		}
	}
	return true
}
