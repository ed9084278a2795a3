package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"` // ปลอดภัย
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     Role   `gorm:"not null;default:customer" json:"role"`

	Address Address `gorm:"embedded;embeddedPrefix:addr_" json:"address"`

	// Relations — preload เฉพาะตอนจำเป็น
	RestaurantsOwned []Restaurant         `gorm:"foreignKey:OwnerID" json:"-"`
	Orders           []Order              `gorm:"foreignKey:CustomerID" json:"-"`
	Loyalty          []LoyaltyTransaction `gorm:"foreignKey:UserID" json:"-"`
	Favorites        []Favorite           `gorm:"foreignKey:UserID" json:"-"`
	Notifications    []Notification       `gorm:"foreignKey:UserID" json:"-"`
	Reviews          []Review             `gorm:"foreignKey:CustomerID" json:"-"`
}
