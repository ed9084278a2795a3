package services

import (
	"foodhub/entity"
	"foodhub/repository"
)

type RestaurantService struct {
	Repo     *repository.RestaurantRepository
	MenuRepo *repository.MenuRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository, menuRepo *repository.MenuRepository) *RestaurantService {
	return &RestaurantService{Repo: repo, MenuRepo: menuRepo}
}

func (s *RestaurantService) List(limit int) ([]entity.Restaurant, error) {
	return s.Repo.ListOpen(limit)
}

func (s *RestaurantService) Detail(id uint) (*entity.Restaurant, error) {
	return s.Repo.Get(id)
}

func (s *RestaurantService) Search(term, cuisine string) ([]entity.Restaurant, error) {
	return s.Repo.Search(term, cuisine)
}

// เมนูหน้าร้าน — เฉพาะที่ขายอยู่
func (s *RestaurantService) Menu(restID uint) ([]entity.MenuItem, error) {
	if _, err := s.Repo.Get(restID); err != nil {
		return nil, err
	}
	return s.MenuRepo.ListAvailable(restID)
}

// ----- Owner side -----

// MyRestaurant คืนร้านของ owner (owner หนึ่งคนมีร้านเดียว)
func (s *RestaurantService) MyRestaurant(ownerID uint) (*entity.Restaurant, error) {
	return s.Repo.FindByOwner(ownerID)
}

type RestaurantProfileIn struct {
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Cuisine      []string       `json:"cuisine"`
	DeliveryTime string         `json:"deliveryTime"`
	DeliveryFee  *int64         `json:"deliveryFee" binding:"omitempty,min=0"`
	MinOrder     *int64         `json:"minOrder" binding:"omitempty,min=0"`
	Phone        string         `json:"phone"`
	IsOpen       *bool          `json:"isOpen"`
	Address      *entity.Address `json:"address"`
}

func (s *RestaurantService) CreateForOwner(ownerID uint, in *RestaurantProfileIn) (*entity.Restaurant, error) {
	rest := &entity.Restaurant{
		Name:         in.Name,
		Description:  in.Description,
		Cuisine:      in.Cuisine,
		DeliveryTime: in.DeliveryTime,
		Phone:        in.Phone,
		OwnerID:      ownerID,
	}
	if in.DeliveryFee != nil {
		rest.DeliveryFee = *in.DeliveryFee
	}
	if in.MinOrder != nil {
		rest.MinOrder = *in.MinOrder
	}
	if in.IsOpen != nil {
		rest.IsOpen = *in.IsOpen
	}
	if in.Address != nil {
		rest.Address = *in.Address
	}
	if err := s.Repo.Create(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) UpdateForOwner(ownerID, restID uint, in *RestaurantProfileIn) (*entity.Restaurant, error) {
	ok, err := s.Repo.IsOwnedBy(restID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}

	rest, err := s.Repo.Get(restID)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		rest.Name = in.Name
	}
	if in.Description != "" {
		rest.Description = in.Description
	}
	if in.Cuisine != nil {
		rest.Cuisine = in.Cuisine
	}
	if in.DeliveryTime != "" {
		rest.DeliveryTime = in.DeliveryTime
	}
	if in.DeliveryFee != nil {
		rest.DeliveryFee = *in.DeliveryFee
	}
	if in.MinOrder != nil {
		rest.MinOrder = *in.MinOrder
	}
	if in.Phone != "" {
		rest.Phone = in.Phone
	}
	if in.IsOpen != nil {
		rest.IsOpen = *in.IsOpen
	}
	if in.Address != nil {
		rest.Address = *in.Address
	}
	if err := s.Repo.Save(rest); err != nil {
		return nil, err
	}
	return rest, nil
}
