package repository

import (
	"foodhub/entity"

	"gorm.io/gorm"
)

type LoyaltyRepository struct{ DB *gorm.DB }

func NewLoyaltyRepository(db *gorm.DB) *LoyaltyRepository { return &LoyaltyRepository{DB: db} }

// Append เพิ่มรายการใหม่เข้า ledger — ไม่มี update/delete
func (r *LoyaltyRepository) Append(tx *gorm.DB, t *entity.LoyaltyTransaction) error {
	return tx.Create(t).Error
}

// ListByUser เรียงใหม่สุดก่อน (สำหรับหน้า history)
func (r *LoyaltyRepository) ListByUser(userID uint, limit int) ([]entity.LoyaltyTransaction, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var out []entity.LoyaltyTransaction
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

// ListAllByUser ดึงทั้ง ledger เพื่อคำนวณยอด (ยอดคือผลรวมของประวัติเสมอ)
func (r *LoyaltyRepository) ListAllByUser(tx *gorm.DB, userID uint) ([]entity.LoyaltyTransaction, error) {
	var out []entity.LoyaltyTransaction
	err := tx.Where("user_id = ?", userID).Find(&out).Error
	return out, err
}
