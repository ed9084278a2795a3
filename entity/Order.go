package entity

import (
	"gorm.io/gorm"
)

// Order เป็น snapshot ตอน checkout — ชื่อ/ราคา copy มาแล้ว แก้เมนูทีหลังไม่กระทบ
// ออเดอร์ไม่มีการลบ มีแต่เปลี่ยนสถานะ
type Order struct {
	gorm.Model
	CustomerID    uint   `json:"customerId"`
	Customer      User   `json:"-"` // preload เฉพาะตอนต้องการ user detail
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	RestaurantID   uint       `json:"restaurantId"`
	Restaurant     Restaurant `json:"-"` // preload เมื่อจำเป็น
	RestaurantName string     `json:"restaurantName"`

	DeliveryAddress Address `gorm:"embedded;embeddedPrefix:deliver_" json:"deliveryAddress"`

	Items []OrderItem `json:"items"`

	Subtotal       int64 `json:"subtotal"`
	DeliveryFee    int64 `json:"deliveryFee"`
	Tax            int64 `json:"tax"`
	Discount       int64 `json:"discount"`
	Total          int64 `json:"total"`
	PointsRedeemed int   `json:"pointsRedeemed"`

	Status              OrderStatus `gorm:"not null;default:pending;index" json:"status"`
	PaymentMethod       string      `json:"paymentMethod"`
	SpecialInstructions string      `json:"specialInstructions"`

	// DriverID กับ status=out_for_delivery ถูกเซ็ตพร้อมกันเสมอ (ดู AssignDriverGuard)
	DriverID  *uint    `json:"driverId,omitempty"`
	Driver    *User    `json:"-"`
	DriverLat *float64 `json:"driverLat,omitempty"`
	DriverLng *float64 `json:"driverLng,omitempty"`
}
