package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	OrderID uint `gorm:"uniqueIndex" json:"orderId"` // รีวิวได้ออเดอร์ละครั้ง

	CustomerID   uint   `json:"customerId"`
	CustomerName string `json:"customerName"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Rating  int    `json:"rating"` // 1..5
	Comment string `json:"comment"`
}
