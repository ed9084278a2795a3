package entity

import (
	"gorm.io/gorm"
)

type LoyaltyType string

const (
	LoyaltyEarned   LoyaltyType = "earned"
	LoyaltyRedeemed LoyaltyType = "redeemed"
)

// LoyaltyTransaction เป็น append-only — ยอดแต้มคำนวณจากประวัติเสมอ
// ไม่มี counter แยกบน user (กัน drift เวลาเขียนอันใดอันหนึ่งพลาด)
type LoyaltyTransaction struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	OrderID *uint `json:"orderId,omitempty"`

	Points      int         `json:"points"` // เก็บเป็นบวกเสมอ เครื่องหมายดูจาก Type
	Type        LoyaltyType `json:"type"`
	Description string      `json:"description"`
}
