package entity

import (
	"gorm.io/gorm"
)

// Addon คือตัวเลือกเสริมของเมนู (เช่น ไข่ดาว ชีสเพิ่ม)
type Addon struct {
	gorm.Model
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Price      int64  `json:"price"` // cents
}

// AddonRef คือ snapshot ของ addon ที่ copy เข้า cart line / order item
// เทียบเท่ากันเมื่อ id + price ตรงกัน (ชื่อเปลี่ยนทีหลังได้)
type AddonRef struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

func (a Addon) Ref() AddonRef {
	return AddonRef{ID: a.ID, Name: a.Name, Price: a.Price}
}
