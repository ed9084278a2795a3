package repository

import (
	"foodhub/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// GET /restaurants/:id/menu → ลูกค้าเห็นเฉพาะเมนูที่ขายอยู่
func (r *MenuRepository) ListAvailable(restID uint) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Where("restaurant_id = ? AND is_available = ?", restID, true).
		Preload("Addons").
		Order("is_popular DESC, name ASC").
		Find(&out).Error
	return out, err
}

// owner เห็นทั้งหมดรวมที่ปิดขาย
func (r *MenuRepository) ListAll(restID uint) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Where("restaurant_id = ?", restID).
		Preload("Addons").
		Order("category ASC, name ASC").
		Find(&out).Error
	return out, err
}

func (r *MenuRepository) Get(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Preload("Addons").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) GetByIDs(ids []uint) ([]entity.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []entity.MenuItem
	err := r.DB.Preload("Addons").Where("id IN ?", ids).Find(&out).Error
	return out, err
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

// ReplaceAddons ลบ addons เดิมแล้วใส่ชุดใหม่ทั้งชุด
func (r *MenuRepository) ReplaceAddons(tx *gorm.DB, menuID uint, addons []entity.Addon) error {
	if err := tx.Where("menu_item_id = ?", menuID).Delete(&entity.Addon{}).Error; err != nil {
		return err
	}
	for i := range addons {
		addons[i].ID = 0
		addons[i].MenuItemID = menuID
		if err := tx.Create(&addons[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// Delete ลบเมนูออกจากร้าน — order เก่าไม่กระทบเพราะเก็บ snapshot ไว้แล้ว
func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}
