// services/order_transitions.go
package services

import (
	"errors"

	"foodhub/entity"

	"gorm.io/gorm"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrForbidden         = errors.New("forbidden")
)

type transitionKey struct {
	From entity.OrderStatus
	To   entity.OrderStatus
}

// ตาราง transition ที่อนุญาต + role ที่กดได้
// ไม่อยู่ในตาราง = ปฏิเสธ ไม่มีข้อยกเว้น (delivered/cancelled เป็นทางตัน)
var transitionActors = map[transitionKey][]entity.Role{
	{entity.StatusPending, entity.StatusConfirmed}:           {entity.RoleRestaurant},
	{entity.StatusPending, entity.StatusCancelled}:           {entity.RoleRestaurant},
	{entity.StatusConfirmed, entity.StatusPreparing}:         {entity.RoleRestaurant},
	{entity.StatusPreparing, entity.StatusReady}:             {entity.RoleRestaurant},
	{entity.StatusReady, entity.StatusOutForDelivery}:        {entity.RoleRestaurant, entity.RoleDriver},
	{entity.StatusOutForDelivery, entity.StatusDelivered}:    {entity.RoleDriver},
}

// CanTransition เป็น pure function: (จาก, ไป, ใคร) → ได้/ไม่ได้
func CanTransition(from, to entity.OrderStatus, by entity.Role) bool {
	roles, ok := transitionActors[transitionKey{from, to}]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == by {
			return true
		}
	}
	return false
}

// ----- Owner actions -----
// ทุกตัวเช็คความเป็นเจ้าของร้านก่อน แล้วค่อยยิง guarded update
// affected = 0 แปลว่าสถานะไม่ใช่ตามคาด (แพ้ race หรือ UI กดผิดลำดับ)

func (s *OrderService) OwnerConfirm(ownerID, orderID uint) error {
	return s.ownerTransition(ownerID, orderID, entity.StatusPending, entity.StatusConfirmed)
}

func (s *OrderService) OwnerCancel(ownerID, orderID uint) error {
	return s.ownerTransition(ownerID, orderID, entity.StatusPending, entity.StatusCancelled)
}

func (s *OrderService) OwnerStartPreparing(ownerID, orderID uint) error {
	return s.ownerTransition(ownerID, orderID, entity.StatusConfirmed, entity.StatusPreparing)
}

func (s *OrderService) OwnerMarkReady(ownerID, orderID uint) error {
	return s.ownerTransition(ownerID, orderID, entity.StatusPreparing, entity.StatusReady)
}

func (s *OrderService) ownerTransition(ownerID, orderID uint, from, to entity.OrderStatus) error {
	if !CanTransition(from, to, entity.RoleRestaurant) {
		return ErrInvalidTransition
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			return err
		}
		ok, err := s.RestRepo.IsOwnedBy(o.RestaurantID, ownerID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrForbidden
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}

		s.notifyStatus(tx, o, to)
		return nil
	})
}

// OwnerHandoff ส่งของให้คนขับตอนหน้าร้าน — ร้านเป็นคนระบุว่าคนขับคนไหนรับไป
// driver id กับ out_for_delivery เปลี่ยนพร้อมกันเสมอ ไม่มีออเดอร์ลอย ๆ ที่ไม่มีคนขับ
func (s *OrderService) OwnerHandoff(ownerID, orderID, driverID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			return err
		}
		ok, err := s.RestRepo.IsOwnedBy(o.RestaurantID, ownerID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrForbidden
		}
		return s.assignDriver(tx, o, driverID)
	})
}

// ----- Driver actions -----

// DriverAccept คนขับรับงานเอง — ชิงกันได้ แต่ชนะคนเดียว (guard บน status+driver_id)
func (s *OrderService) DriverAccept(driverID, orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			return err
		}
		return s.assignDriver(tx, o, driverID)
	})
}

func (s *OrderService) DriverComplete(driverID, orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			return err
		}
		if o.DriverID == nil || *o.DriverID != driverID {
			return ErrForbidden
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, entity.StatusOutForDelivery, entity.StatusDelivered)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}

		s.notifyStatus(tx, o, entity.StatusDelivered)
		return nil
	})
}

// DriverUpdateLocation อัปเดตพิกัดระหว่างส่ง — ไม่แตะ status
func (s *OrderService) DriverUpdateLocation(driverID, orderID uint, lat, lng float64) error {
	affected, err := s.Repo.UpdateDriverLocationGuard(orderID, driverID, lat, lng)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInvalidTransition
	}
	s.publishLocation(orderID, driverID, lat, lng)
	return nil
}

func (s *OrderService) assignDriver(tx *gorm.DB, o *entity.Order, driverID uint) error {
	driver, err := s.UserRepo.FindByID(driverID)
	if err != nil {
		return err
	}
	if driver.Role != entity.RoleDriver {
		return ErrForbidden
	}

	affected, err := s.Repo.AssignDriverGuard(tx, o.ID, driverID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInvalidTransition
	}

	o.DriverID = &driverID
	s.notifyStatus(tx, o, entity.StatusOutForDelivery)
	return nil
}
