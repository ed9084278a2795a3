package entity

import (
	"gorm.io/gorm"
)

// Favorite ชี้ไป restaurant หรือ menu item อย่างใดอย่างหนึ่ง
// หนึ่ง (user, target) มีได้แถวเดียว — toggle ซ้ำคือลบ
type Favorite struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	RestaurantID *uint `json:"restaurantId,omitempty"`
	MenuItemID   *uint `json:"menuItemId,omitempty"`
}
