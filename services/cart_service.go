package services

import (
	"errors"
	"sync"

	"foodhub/entity"
	"foodhub/repository"
)

var (
	ErrMenuItemUnavailable = errors.New("menu item not available")
	ErrInvalidAddons       = errors.New("invalid addons")
)

// CartService ถือตะกร้าของแต่ละ user ไว้ใน memory (ตะกร้าไม่ persist —
// เป็นของชั่วคราวฝั่ง session เหมือน local cache)
type CartService struct {
	mu    sync.RWMutex
	carts map[uint]*Cart

	MenuRepo *repository.MenuRepository
}

func NewCartService(menuRepo *repository.MenuRepository) *CartService {
	return &CartService{carts: make(map[uint]*Cart), MenuRepo: menuRepo}
}

type AddToCartIn struct {
	MenuItemID uint   `json:"menuItemId" binding:"required"`
	Qty        int    `json:"qty"`
	Note       string `json:"note"`
	AddonIDs   []uint `json:"addonIds"`
}

func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	m, err := s.MenuRepo.Get(in.MenuItemID)
	if err != nil {
		return err
	}
	if !m.IsAvailable {
		return ErrMenuItemUnavailable
	}

	// addon ที่เลือกต้องเป็นของเมนูนี้ — copy ค่า ไม่เก็บ reference
	refs := make([]entity.AddonRef, 0, len(in.AddonIDs))
	for _, id := range in.AddonIDs {
		found := false
		for _, a := range m.Addons {
			if a.ID == id {
				refs = append(refs, a.Ref())
				found = true
				break
			}
		}
		if !found {
			return ErrInvalidAddons
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.carts[userID]
	if c == nil {
		c = &Cart{}
		s.carts[userID] = c
	}
	return c.Add(m, in.Qty, in.Note, refs)
}

func (s *CartService) UpdateQty(userID uint, index, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.carts[userID]; c != nil {
		c.UpdateQty(index, qty)
	}
}

func (s *CartService) Remove(userID uint, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.carts[userID]; c != nil {
		c.Remove(index)
	}
}

func (s *CartService) Clear(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// Snapshot คืน copy ของตะกร้า — คนเรียก (เช่น checkout) ได้ข้อมูลนิ่ง ๆ ไปทำงานต่อ
func (s *CartService) Snapshot(userID uint) Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := s.carts[userID]
	if c == nil {
		return Cart{}
	}
	out := Cart{RestaurantID: c.RestaurantID, Lines: make([]CartLine, len(c.Lines))}
	copy(out.Lines, c.Lines)
	for i := range out.Lines {
		addons := make([]entity.AddonRef, len(c.Lines[i].Addons))
		copy(addons, c.Lines[i].Addons)
		out.Lines[i].Addons = addons
	}
	return out
}
