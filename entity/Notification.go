package entity

import (
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotifyOrder     NotificationType = "order"
	NotifyPromotion NotificationType = "promotion"
	NotifySystem    NotificationType = "system"
)

type Notification struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Title   string           `json:"title"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
	IsRead  bool             `json:"isRead"`

	OrderID *uint `json:"orderId,omitempty"`
}
