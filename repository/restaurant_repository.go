package repository

import (
	"strings"

	"foodhub/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// GET /restaurants → ร้านที่เปิดอยู่ เรียงตาม rating
func (r *RestaurantRepository) ListOpen(limit int) ([]entity.Restaurant, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var out []entity.Restaurant
	err := r.DB.Where("is_open = ?", true).
		Order("rating DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) Get(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// IsOwnedBy เช็คว่า user เป็นเจ้าของร้านนี้จริง
func (r *RestaurantRepository) IsOwnedBy(restID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND owner_id = ?", restID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *RestaurantRepository) FindByOwner(userID uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("owner_id = ?", userID).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// Search กรองร้านเปิดอยู่ด้วยชื่อ/ประเภทอาหาร
// cuisine เก็บเป็น json array → เทียบแบบ substring ใน SQL แล้วกรองซ้ำใน Go
func (r *RestaurantRepository) Search(term, cuisine string) ([]entity.Restaurant, error) {
	var rows []entity.Restaurant
	if err := r.DB.Where("is_open = ?", true).Find(&rows).Error; err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	cuisine = strings.ToLower(strings.TrimSpace(cuisine))

	out := make([]entity.Restaurant, 0, len(rows))
	for _, rest := range rows {
		if cuisine != "" && !hasCuisine(rest.Cuisine, cuisine) {
			continue
		}
		if term == "" || strings.Contains(strings.ToLower(rest.Name), term) || hasCuisine(rest.Cuisine, term) {
			out = append(out, rest)
		}
	}
	return out, nil
}

func hasCuisine(list []string, want string) bool {
	for _, c := range list {
		if strings.Contains(strings.ToLower(c), want) {
			return true
		}
	}
	return false
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Save(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}

// UpdateRating refresh ค่า denormalized จากตาราง reviews
func (r *RestaurantRepository) UpdateRating(tx *gorm.DB, restID uint, rating float64, count int) error {
	return tx.Model(&entity.Restaurant{}).Where("id = ?", restID).
		Updates(map[string]any{"rating": rating, "review_count": count}).Error
}

func (r *RestaurantRepository) GetByIDs(ids []uint) ([]entity.Restaurant, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []entity.Restaurant
	err := r.DB.Where("id IN ?", ids).Find(&out).Error
	return out, err
}
