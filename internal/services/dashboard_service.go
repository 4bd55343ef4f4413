// filepath: internal/services/dashboard_service.go
package services

import (
	"context"
	"fmt"
	"riseup/internal/config"
	"riseup/internal/models"
	"riseup/internal/repository"
)

var _ DashboardService = (*dashboardService)(nil)

type dashboardService struct {
	Repo               *repository.Repository
	Streaks            StreakService
	WeightHistoryLimit int
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo *repository.Repository, streaks StreakService, cfg *config.Config) *dashboardService {
	limit := 10
	if cfg != nil && cfg.Dashboard.WeightHistoryLimit > 0 {
		limit = cfg.Dashboard.WeightHistoryLimit
	}
	return &dashboardService{Repo: repo, Streaks: streaks, WeightHistoryLimit: limit}
}

// GetDashboard aggregates habit progress for day, the streak and the latest weights.
// It only reads.
func (s *dashboardService) GetDashboard(ctx context.Context, userID int64, day models.Date) (*models.Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if day.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if _, err := s.Repo.GetUserByID(userID); err != nil {
		return nil, mapUserErr(err)
	}

	habits, err := s.Repo.GetHabitProgress(userID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	st, err := s.Streaks.GetStreak(ctx, userID)
	if err != nil {
		return nil, err
	}

	weights, err := s.Repo.GetWeightHistory(userID, s.WeightHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load weight history: %w", err)
	}
	history := make([]models.WeightPoint, 0, len(weights))
	for _, w := range weights {
		history = append(history, models.WeightPoint{Date: w.Date, Weight: w.Weight})
	}

	return &models.Dashboard{Habits: habits, Streak: st, WeightHistory: history}, nil
}
