package services

import (
	"math"

	"foodhub/entity"
)

// เงินทั้งระบบเป็น int64 หน่วย cents — บวกกันตรง ๆ ไม่มี error สะสม
// จุดเดียวที่แตะ float คือคูณ tax rate แล้วปัดครั้งเดียว
// แต้มสะสม: 100 แต้ม = 1.00 → 1 แต้ม = 1 cent พอดี

type Quote struct {
	Subtotal       int64 `json:"subtotal"`
	DeliveryFee    int64 `json:"deliveryFee"`
	Tax            int64 `json:"tax"`
	Discount       int64 `json:"discount"`
	Total          int64 `json:"total"`
	PointsRedeemed int   `json:"pointsRedeemed"`
}

// LineTotal = (ราคาเมนู + addons) * จำนวน; qty ต่ำกว่า 1 ปัดเป็น 1
func LineTotal(price int64, addons []entity.AddonRef, qty int) int64 {
	if qty < 1 {
		qty = 1
	}
	unit := price
	for _, a := range addons {
		unit += a.Price
	}
	return unit * int64(qty)
}

// ComputeQuote คิดราคาทั้งบิลจาก subtotal ที่รวมมาแล้ว
// ส่วนลดจากแต้มไม่มีทางเกินยอดบิล และยอดสุทธิไม่ติดลบ
func ComputeQuote(subtotal, deliveryFee int64, taxRate float64, redeemPoints int) Quote {
	if subtotal < 0 {
		subtotal = 0
	}
	if deliveryFee < 0 {
		deliveryFee = 0
	}
	if redeemPoints < 0 {
		redeemPoints = 0
	}

	tax := int64(math.Round(float64(subtotal) * taxRate))
	before := subtotal + deliveryFee + tax

	discount := int64(redeemPoints) // 1 แต้ม = 1 cent
	if discount > before {
		discount = before
	}

	total := before - discount
	if total < 0 {
		total = 0
	}

	return Quote{
		Subtotal:       subtotal,
		DeliveryFee:    deliveryFee,
		Tax:            tax,
		Discount:       discount,
		Total:          total,
		PointsRedeemed: redeemPoints,
	}
}
