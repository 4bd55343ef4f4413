// filepath: internal/services/mocks/dashboard_mock.go
package mocks

import (
	"context"
	"riseup/internal/models"
	"riseup/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockDashboardService is a mock implementation of services.DashboardService
type MockDashboardService struct {
	mock.Mock
}

var _ services.DashboardService = (*MockDashboardService)(nil)

func (m *MockDashboardService) GetDashboard(ctx context.Context, userID int64, day models.Date) (*models.Dashboard, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dashboard), args.Error(1)
}

// MockStreakService is a mock implementation of services.StreakService
type MockStreakService struct {
	mock.Mock
}

var _ services.StreakService = (*MockStreakService)(nil)

func (m *MockStreakService) RecordActivity(ctx context.Context, userID int64, day models.Date) (models.StreakSummary, error) {
	args := m.Called(ctx, userID, day)
	return args.Get(0).(models.StreakSummary), args.Error(1)
}

func (m *MockStreakService) GetStreak(ctx context.Context, userID int64) (models.StreakSummary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.StreakSummary), args.Error(1)
}
