package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"` // preload แค่ตอนต้องการ order detail

	// snapshot จากเมนูตอนสั่ง
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Price      int64  `json:"price"` // ราคาต่อหน่วย ไม่รวม addon
	Qty        int    `json:"qty"`

	SpecialInstructions string     `json:"specialInstructions"`
	Addons              []AddonRef `gorm:"serializer:json" json:"addons"`

	Total int64 `json:"total"` // (price + addons) * qty
}
