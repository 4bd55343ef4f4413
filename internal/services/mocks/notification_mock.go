// filepath: internal/services/mocks/notification_mock.go
package mocks

import (
	"context"
	"riseup/internal/models"
	"riseup/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockNotificationService is a mock implementation of services.NotificationService
type MockNotificationService struct {
	mock.Mock
}

var _ services.NotificationService = (*MockNotificationService)(nil)

func (m *MockNotificationService) List(ctx context.Context, userID int64, unreadOnly bool) ([]models.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockNotificationService) Notify(ctx context.Context, userID int64, title, message, kind string) error {
	args := m.Called(ctx, userID, title, message, kind)
	return args.Error(0)
}
