// filepath: internal/services/mocks/tracker_mock.go
package mocks

import (
	"context"
	"riseup/internal/models"
	"riseup/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockTrackerService is a mock implementation of services.TrackerService
type MockTrackerService struct {
	mock.Mock
}

var _ services.TrackerService = (*MockTrackerService)(nil)

func (m *MockTrackerService) ListHabits(ctx context.Context, userID int64) ([]models.Habit, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Habit), args.Error(1)
}

func (m *MockTrackerService) UpdateHabitEntry(ctx context.Context, userID, habitID int64, day models.Date, value int) (bool, error) {
	args := m.Called(ctx, userID, habitID, day, value)
	return args.Bool(0), args.Error(1)
}

func (m *MockTrackerService) UpdatePrayer(ctx context.Context, userID int64, day models.Date, prayer models.Prayer, completed bool) error {
	args := m.Called(ctx, userID, day, prayer, completed)
	return args.Error(0)
}

func (m *MockTrackerService) GetPrayers(ctx context.Context, userID int64, day models.Date) (models.PrayerRecord, error) {
	args := m.Called(ctx, userID, day)
	return args.Get(0).(models.PrayerRecord), args.Error(1)
}

func (m *MockTrackerService) UpdateMeal(ctx context.Context, userID int64, day models.Date, meal models.Meal, completed bool) error {
	args := m.Called(ctx, userID, day, meal, completed)
	return args.Error(0)
}

func (m *MockTrackerService) GetMeals(ctx context.Context, userID int64, day models.Date) (models.MealRecord, error) {
	args := m.Called(ctx, userID, day)
	return args.Get(0).(models.MealRecord), args.Error(1)
}

func (m *MockTrackerService) UpdateWater(ctx context.Context, userID int64, day models.Date, glasses int) error {
	args := m.Called(ctx, userID, day, glasses)
	return args.Error(0)
}

func (m *MockTrackerService) GetWater(ctx context.Context, userID int64, day models.Date) (models.WaterRecord, error) {
	args := m.Called(ctx, userID, day)
	return args.Get(0).(models.WaterRecord), args.Error(1)
}

func (m *MockTrackerService) AddWeight(ctx context.Context, userID int64, day models.Date, weight float64, goalWeight *float64) error {
	args := m.Called(ctx, userID, day, weight, goalWeight)
	return args.Error(0)
}

func (m *MockTrackerService) GetWeightHistory(ctx context.Context, userID int64, limit int) ([]models.WeightEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WeightEntry), args.Error(1)
}

func (m *MockTrackerService) AddStudySession(ctx context.Context, userID int64, day models.Date, minutes int) (int, error) {
	args := m.Called(ctx, userID, day, minutes)
	return args.Int(0), args.Error(1)
}

func (m *MockTrackerService) GetStudyTotal(ctx context.Context, userID int64, day models.Date) (int, error) {
	args := m.Called(ctx, userID, day)
	return args.Int(0), args.Error(1)
}

func (m *MockTrackerService) AddWorkoutSession(ctx context.Context, userID int64, day models.Date, minutes int, kind string) (int, error) {
	args := m.Called(ctx, userID, day, minutes, kind)
	return args.Int(0), args.Error(1)
}

func (m *MockTrackerService) GetWorkoutTotal(ctx context.Context, userID int64, day models.Date) (int, error) {
	args := m.Called(ctx, userID, day)
	return args.Int(0), args.Error(1)
}
