package services

import (
	"errors"

	"foodhub/entity"
	"foodhub/repository"

	"gorm.io/gorm"
)

var (
	ErrOrderNotDelivered = errors.New("order not delivered yet")
	ErrAlreadyReviewed   = errors.New("order already reviewed")
)

type ReviewService struct {
	DB        *gorm.DB
	Repo      *repository.ReviewRepository
	OrderRepo *repository.OrderRepository
	RestRepo  *repository.RestaurantRepository
	UserRepo  *repository.UserRepository
}

func NewReviewService(
	db *gorm.DB,
	repo *repository.ReviewRepository,
	orderRepo *repository.OrderRepository,
	restRepo *repository.RestaurantRepository,
	userRepo *repository.UserRepository,
) *ReviewService {
	return &ReviewService{DB: db, Repo: repo, OrderRepo: orderRepo, RestRepo: restRepo, UserRepo: userRepo}
}

type AddReviewIn struct {
	OrderID uint   `json:"orderId" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// Add รีวิวได้เฉพาะออเดอร์ของตัวเองที่ส่งเสร็จแล้ว ออเดอร์ละครั้ง
// rating/reviewCount บนร้าน refresh จากตาราง reviews ใน transaction เดียวกัน
func (s *ReviewService) Add(userID uint, in *AddReviewIn) (*entity.Review, error) {
	o, err := s.OrderRepo.GetOrderForCustomer(userID, in.OrderID)
	if err != nil {
		return nil, err
	}
	if o.Status != entity.StatusDelivered {
		return nil, ErrOrderNotDelivered
	}

	exists, err := s.Repo.ExistsForOrder(in.OrderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	rv := &entity.Review{
		OrderID:      in.OrderID,
		CustomerID:   userID,
		CustomerName: user.Name,
		RestaurantID: o.RestaurantID,
		Rating:       in.Rating,
		Comment:      in.Comment,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, rv); err != nil {
			return err
		}
		avg, count, err := s.Repo.Stats(tx, o.RestaurantID)
		if err != nil {
			return err
		}
		return s.RestRepo.UpdateRating(tx, o.RestaurantID, avg, count)
	})
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *ReviewService) ListByRestaurant(restID uint, limit int) ([]entity.Review, error) {
	return s.Repo.ListByRestaurant(restID, limit)
}
