// filepath: internal/services/notification_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"riseup/internal/models"
	"riseup/internal/repository"
	"strings"
)

var _ NotificationService = (*notificationService)(nil)

type notificationService struct {
	Repo *repository.Repository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(repo *repository.Repository) *notificationService {
	return &notificationService{Repo: repo}
}

// List returns the notifications of a user, newest first.
func (s *notificationService) List(ctx context.Context, userID int64, unreadOnly bool) ([]models.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Repo.ListNotifications(userID, unreadOnly)
}

// MarkRead flags one of the user's notifications as read.
func (s *notificationService) MarkRead(ctx context.Context, userID, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.Repo.MarkNotificationRead(userID, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return fmt.Errorf("%w: notification %d", ErrNotFound, id)
		}
		return err
	}
	return nil
}

// Notify adds a notification to the user's inbox.
func (s *notificationService) Notify(ctx context.Context, userID int64, title, message, kind string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: notification title is required", ErrValidation)
	}
	_, err := s.Repo.CreateNotification(userID, models.Notification{Title: title, Message: message, Type: kind})
	return err
}
