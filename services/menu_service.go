package services

import (
	"errors"

	"foodhub/entity"
	"foodhub/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	DB       *gorm.DB
	Repo     *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
}

func NewMenuService(db *gorm.DB, repo *repository.MenuRepository, restRepo *repository.RestaurantRepository) *MenuService {
	return &MenuService{DB: db, Repo: repo, RestRepo: restRepo}
}

type AddonIn struct {
	Name  string `json:"name" binding:"required"`
	Price int64  `json:"price" binding:"min=0"`
}

type MenuItemIn struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           int64     `json:"price" binding:"min=0"`
	Category        string    `json:"category"`
	IsAvailable     *bool     `json:"isAvailable"`
	IsPopular       *bool     `json:"isPopular"`
	PreparationTime int       `json:"preparationTime" binding:"omitempty,min=0"`
	Addons          []AddonIn `json:"addons"`
}

// ListForOwner — owner เห็นหมดรวมเมนูที่ปิดขาย
func (s *MenuService) ListForOwner(ownerID, restID uint) ([]entity.MenuItem, error) {
	ok, err := s.RestRepo.IsOwnedBy(restID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	return s.Repo.ListAll(restID)
}

func (s *MenuService) Create(ownerID, restID uint, in *MenuItemIn) (*entity.MenuItem, error) {
	ok, err := s.RestRepo.IsOwnedBy(restID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	if in.Name == "" {
		return nil, errors.New("name is required")
	}

	m := &entity.MenuItem{
		RestaurantID:    restID,
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		Category:        in.Category,
		IsAvailable:     true,
		PreparationTime: in.PreparationTime,
	}
	if in.IsAvailable != nil {
		m.IsAvailable = *in.IsAvailable
	}
	if in.IsPopular != nil {
		m.IsPopular = *in.IsPopular
	}
	for _, a := range in.Addons {
		m.Addons = append(m.Addons, entity.Addon{Name: a.Name, Price: a.Price})
	}

	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Update แก้เมนู + แทน addons ทั้งชุดถ้าส่งมา
// order เก่าไม่สะเทือน เพราะ order เก็บ snapshot ชื่อ/ราคาไว้เองแล้ว
func (s *MenuService) Update(ownerID, menuID uint, in *MenuItemIn) (*entity.MenuItem, error) {
	m, err := s.Repo.Get(menuID)
	if err != nil {
		return nil, err
	}
	ok, err := s.RestRepo.IsOwnedBy(m.RestaurantID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}

	updates := map[string]any{}
	if in.Name != "" {
		updates["name"] = in.Name
	}
	if in.Description != "" {
		updates["description"] = in.Description
	}
	if in.Price > 0 {
		updates["price"] = in.Price
	}
	if in.Category != "" {
		updates["category"] = in.Category
	}
	if in.IsAvailable != nil {
		updates["is_available"] = *in.IsAvailable
	}
	if in.IsPopular != nil {
		updates["is_popular"] = *in.IsPopular
	}
	if in.PreparationTime > 0 {
		updates["preparation_time"] = in.PreparationTime
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&entity.MenuItem{}).Where("id = ?", menuID).Updates(updates).Error; err != nil {
				return err
			}
		}
		if in.Addons != nil {
			addons := make([]entity.Addon, 0, len(in.Addons))
			for _, a := range in.Addons {
				addons = append(addons, entity.Addon{Name: a.Name, Price: a.Price})
			}
			if err := s.Repo.ReplaceAddons(tx, menuID, addons); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.Get(menuID)
}

func (s *MenuService) Delete(ownerID, menuID uint) error {
	m, err := s.Repo.Get(menuID)
	if err != nil {
		return err
	}
	ok, err := s.RestRepo.IsOwnedBy(m.RestaurantID, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return s.Repo.Delete(menuID)
}
