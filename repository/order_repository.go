package repository

import (
	"time"

	"foodhub/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ---------------- Orders (CRUD หลัก) ----------------

// POST /orders → สร้าง order พร้อม items (gorm สร้าง association ให้)
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders/:id (ลูกค้า) → ต้องเป็นออเดอร์ของตัวเอง
func (r *OrderRepository) GetOrderForCustomer(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").
		Where("id = ? AND customer_id = ?", orderID, userID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForRestaurant(restID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").
		Where("id = ? AND restaurant_id = ?", orderID, restID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders (ลูกค้า) → รายการ order ของ user
type OrderSummary struct {
	ID             uint               `json:"id"`
	RestaurantID   uint               `json:"restaurantId"`
	RestaurantName string             `json:"restaurantName"`
	Total          int64              `json:"total"`
	Status         entity.OrderStatus `json:"status"`
	CreatedAt      time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForCustomer(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, restaurant_id, restaurant_name, total, status, created_at").
		Where("customer_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// คิวของร้าน — default เฉพาะสถานะที่ยังต้องจัดการ
func (r *OrderRepository) ListOrdersForRestaurant(restID uint, statuses []entity.OrderStatus, page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	q := r.DB.Model(&entity.Order{}).Where("restaurant_id = ?", restID)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []entity.Order
	err := q.Preload("Items").
		Order("id DESC").Limit(limit).Offset(offset).
		Find(&rows).Error
	return rows, total, err
}

// งานที่คนขับรับได้ = ready และยังไม่มีคนขับ
func (r *OrderRepository) ListReadyOrders(limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("status = ? AND driver_id IS NULL", entity.StatusReady).
		Order("id ASC").Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListOrdersForDriver(driverID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("driver_id = ?", driverID).
		Order("id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

// ---------------- Guarded updates ----------------
// ทุก transition เป็น conditional UPDATE — แพ้ race แล้ว affected = 0 เฉย ๆ
// ไม่มีการเขียนสถานะทับโดยไม่เช็คของเดิม

func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// AssignDriverGuard เซ็ต driver_id + out_for_delivery ใน UPDATE เดียว
// สำเร็จเฉพาะตอนยัง ready และยังไม่มีคนขับ → สองคนกดรับพร้อมกัน ชนะคนเดียว
func (r *OrderRepository) AssignDriverGuard(tx *gorm.DB, orderID, driverID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ? AND driver_id IS NULL", orderID, entity.StatusReady).
		Updates(map[string]any{
			"status":    entity.StatusOutForDelivery,
			"driver_id": driverID,
		})
	return res.RowsAffected, res.Error
}

// ตำแหน่งคนขับอัปเดตได้เฉพาะระหว่าง out_for_delivery และไม่แตะ status
func (r *OrderRepository) UpdateDriverLocationGuard(orderID, driverID uint, lat, lng float64) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status = ? AND driver_id = ?", orderID, entity.StatusOutForDelivery, driverID).
		Updates(map[string]any{"driver_lat": lat, "driver_lng": lng})
	return res.RowsAffected, res.Error
}
