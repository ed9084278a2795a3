package services

import (
	"foodhub/entity"
	"foodhub/repository"
)

type NotificationService struct {
	Repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{Repo: repo}
}

func (s *NotificationService) List(userID uint, limit int) ([]entity.Notification, error) {
	return s.Repo.ListByUser(userID, limit)
}

func (s *NotificationService) MarkRead(userID, notifID uint) error {
	return s.Repo.MarkRead(userID, notifID)
}

func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.Repo.MarkAllRead(userID)
}
