package services

import (
	"errors"

	"foodhub/entity"
	"foodhub/repository"
)

var ErrBadFavoriteTarget = errors.New("favorite needs exactly one target")

type FavoriteService struct {
	Repo     *repository.FavoriteRepository
	RestRepo *repository.RestaurantRepository
	MenuRepo *repository.MenuRepository
}

func NewFavoriteService(repo *repository.FavoriteRepository, restRepo *repository.RestaurantRepository, menuRepo *repository.MenuRepository) *FavoriteService {
	return &FavoriteService{Repo: repo, RestRepo: restRepo, MenuRepo: menuRepo}
}

type ToggleFavoriteIn struct {
	RestaurantID *uint `json:"restaurantId"`
	MenuItemID   *uint `json:"menuItemId"`
}

// Toggle: ยังไม่มี → สร้าง, มีแล้ว → ลบ
// target ต้องเป็นร้าน "หรือ" เมนู อย่างใดอย่างหนึ่งเท่านั้น
func (s *FavoriteService) Toggle(userID uint, in *ToggleFavoriteIn) (favorited bool, err error) {
	if (in.RestaurantID == nil) == (in.MenuItemID == nil) {
		return false, ErrBadFavoriteTarget
	}

	var existing *entity.Favorite
	if in.RestaurantID != nil {
		if _, err := s.RestRepo.Get(*in.RestaurantID); err != nil {
			return false, err
		}
		existing, err = s.Repo.FindRestaurantFav(userID, *in.RestaurantID)
	} else {
		if _, err := s.MenuRepo.Get(*in.MenuItemID); err != nil {
			return false, err
		}
		existing, err = s.Repo.FindMenuItemFav(userID, *in.MenuItemID)
	}
	if err != nil {
		return false, err
	}

	if existing != nil {
		return false, s.Repo.Delete(existing.ID)
	}

	f := &entity.Favorite{UserID: userID, RestaurantID: in.RestaurantID, MenuItemID: in.MenuItemID}
	return true, s.Repo.Create(f)
}

type FavoritesOut struct {
	Favorites   []entity.Favorite   `json:"favorites"`
	Restaurants []entity.Restaurant `json:"restaurants"`
	MenuItems   []entity.MenuItem   `json:"menuItems"`
}

// List คืนรายการโปรดพร้อม resolve ตัวจริงของร้าน/เมนูให้เลย
func (s *FavoriteService) List(userID uint) (*FavoritesOut, error) {
	favs, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	var restIDs, itemIDs []uint
	for _, f := range favs {
		if f.RestaurantID != nil {
			restIDs = append(restIDs, *f.RestaurantID)
		}
		if f.MenuItemID != nil {
			itemIDs = append(itemIDs, *f.MenuItemID)
		}
	}

	rests, err := s.RestRepo.GetByIDs(restIDs)
	if err != nil {
		return nil, err
	}
	items, err := s.MenuRepo.GetByIDs(itemIDs)
	if err != nil {
		return nil, err
	}

	return &FavoritesOut{Favorites: favs, Restaurants: rests, MenuItems: items}, nil
}
