package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Cuisine     []string `gorm:"serializer:json" json:"cuisine"`

	// denormalized จาก reviews — refresh ทุกครั้งที่มีรีวิวใหม่
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`

	DeliveryTime string `json:"deliveryTime"` // เช่น "25-35 min"
	DeliveryFee  int64  `json:"deliveryFee"`  // หน่วยเป็นสตางค์/cents
	MinOrder     int64  `json:"minOrder"`
	Phone        string `json:"phone"`
	IsOpen       bool   `json:"isOpen"`

	Address Address `gorm:"embedded;embeddedPrefix:addr_" json:"address"`

	OwnerID uint `json:"ownerId"`
	Owner   User `json:"-"` // preload เมื่อจำเป็น

	Menu    []MenuItem `gorm:"foreignKey:RestaurantID" json:"-"`
	Orders  []Order    `gorm:"foreignKey:RestaurantID" json:"-"`
	Reviews []Review   `gorm:"foreignKey:RestaurantID" json:"-"`
}
