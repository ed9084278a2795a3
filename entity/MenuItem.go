package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload เมื่อจำเป็น

	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // cents
	Category    string `json:"category"`

	IsAvailable     bool `json:"isAvailable"`
	IsPopular       bool `json:"isPopular"`
	PreparationTime int  `json:"preparationTime"` // นาที

	Addons []Addon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"addons"`
}
