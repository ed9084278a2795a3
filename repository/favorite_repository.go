package repository

import (
	"errors"

	"foodhub/entity"

	"gorm.io/gorm"
)

type FavoriteRepository struct{ DB *gorm.DB }

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

func (r *FavoriteRepository) ListByUser(userID uint) ([]entity.Favorite, error) {
	var out []entity.Favorite
	err := r.DB.Where("user_id = ?", userID).Find(&out).Error
	return out, err
}

// FindRestaurantFav คืน nil, nil ถ้ายังไม่เคยกด
func (r *FavoriteRepository) FindRestaurantFav(userID, restID uint) (*entity.Favorite, error) {
	var f entity.Favorite
	err := r.DB.Where("user_id = ? AND restaurant_id = ?", userID, restID).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FavoriteRepository) FindMenuItemFav(userID, menuItemID uint) (*entity.Favorite, error) {
	var f entity.Favorite
	err := r.DB.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FavoriteRepository) Create(f *entity.Favorite) error {
	return r.DB.Create(f).Error
}

func (r *FavoriteRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Favorite{}, id).Error
}
