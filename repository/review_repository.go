package repository

import (
	"foodhub/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) Create(tx *gorm.DB, rv *entity.Review) error {
	return tx.Create(rv).Error
}

func (r *ReviewRepository) ExistsForOrder(orderID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Review{}).Where("order_id = ?", orderID).Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepository) ListByRestaurant(restID uint, limit int) ([]entity.Review, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []entity.Review
	err := r.DB.Where("restaurant_id = ?", restID).
		Order("created_at DESC, id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

// Stats คืนค่าเฉลี่ย + จำนวน จากตาราง reviews ตรง ๆ
func (r *ReviewRepository) Stats(tx *gorm.DB, restID uint) (float64, int, error) {
	var row struct {
		Avg   float64
		Count int64
	}
	err := tx.Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("restaurant_id = ?", restID).
		Scan(&row).Error
	return row.Avg, int(row.Count), err
}
