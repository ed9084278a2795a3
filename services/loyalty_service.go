package services

import (
	"errors"
	"fmt"

	"foodhub/entity"
	"foodhub/repository"

	"gorm.io/gorm"
)

var ErrInsufficientPoints = errors.New("insufficient points")

// ----- Pure ledger math -----

// Balance คือผลรวมของ ledger: earned บวก redeemed ลบ
// ลำดับไม่สำคัญ (บวกลบสลับที่ได้)
func Balance(txs []entity.LoyaltyTransaction) int {
	var total int
	for _, t := range txs {
		if t.Type == entity.LoyaltyEarned {
			total += t.Points
		} else {
			total -= t.Points
		}
	}
	return total
}

// EarnFromOrder = 1 แต้มต่อ 1 หน่วยเงินเต็มจาก subtotal (ก่อนค่าส่ง/ภาษี)
func EarnFromOrder(subtotal int64) int {
	if subtotal < 0 {
		return 0
	}
	return int(subtotal / 100)
}

func CanRedeem(balance, requested int) bool {
	return requested > 0 && requested <= balance
}

// ----- Service -----

type LoyaltyService struct {
	DB   *gorm.DB
	Repo *repository.LoyaltyRepository
}

func NewLoyaltyService(db *gorm.DB, repo *repository.LoyaltyRepository) *LoyaltyService {
	return &LoyaltyService{DB: db, Repo: repo}
}

func (s *LoyaltyService) BalanceForUser(userID uint) (int, error) {
	txs, err := s.Repo.ListAllByUser(s.DB, userID)
	if err != nil {
		return 0, err
	}
	return Balance(txs), nil
}

func (s *LoyaltyService) History(userID uint, limit int) ([]entity.LoyaltyTransaction, error) {
	return s.Repo.ListByUser(userID, limit)
}

// Redeem ตัดแต้มแบบ standalone (ไม่ผูกออเดอร์)
// เช็คยอดใน transaction เดียวกับตอนเขียน — ไม่พอคือไม่เขียนอะไรเลย
func (s *LoyaltyService) Redeem(userID uint, points int, description string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		txs, err := s.Repo.ListAllByUser(tx, userID)
		if err != nil {
			return err
		}
		if !CanRedeem(Balance(txs), points) {
			return ErrInsufficientPoints
		}
		if description == "" {
			description = fmt.Sprintf("Redeemed %d points", points)
		}
		return s.Repo.Append(tx, &entity.LoyaltyTransaction{
			UserID:      userID,
			Points:      points,
			Type:        entity.LoyaltyRedeemed,
			Description: description,
		})
	})
}
