// filepath: internal/services/tracker_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"riseup/internal/config"
	"riseup/internal/logging"
	"riseup/internal/models"
	"riseup/internal/repository"
	"riseup/internal/shared"
	"strings"
)

var _ TrackerService = (*trackerService)(nil)

// trackerService validates and stores tracker writes. Every successful write
// is followed by a separate streak update; the two are not one transaction,
// so a failing streak update leaves the tracker row in place.
type trackerService struct {
	Repo               *repository.Repository
	Streaks            StreakService
	WeightHistoryLimit int
}

// NewTrackerService creates a new TrackerService.
func NewTrackerService(repo *repository.Repository, streaks StreakService, cfg *config.Config) *trackerService {
	limit := 10
	if cfg != nil && cfg.Dashboard.WeightHistoryLimit > 0 {
		limit = cfg.Dashboard.WeightHistoryLimit
	}
	return &trackerService{Repo: repo, Streaks: streaks, WeightHistoryLimit: limit}
}

// ensureUser rejects cancelled requests, zero dates and unknown owners before storage is touched.
func (s *trackerService) ensureUser(ctx context.Context, userID int64, day *models.Date) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if day != nil && day.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if _, err := s.Repo.GetUserByID(userID); err != nil {
		return mapUserErr(err)
	}
	return nil
}

func (s *trackerService) recordActivity(ctx context.Context, userID int64, day models.Date) error {
	if _, err := s.Streaks.RecordActivity(ctx, userID, day); err != nil {
		logging.Log.Errorf("TrackerService: streak update failed for user %d on %s: %v", userID, day, err)
		return fmt.Errorf("failed to update streak: %w", err)
	}
	return nil
}

// ListHabits returns the habits of a user.
func (s *trackerService) ListHabits(ctx context.Context, userID int64) ([]models.Habit, error) {
	if err := s.ensureUser(ctx, userID, nil); err != nil {
		return nil, err
	}
	return s.Repo.ListHabits(userID)
}

// UpdateHabitEntry sets the value of a habit for day. The entry is completed
// when value reaches the habit goal.
func (s *trackerService) UpdateHabitEntry(ctx context.Context, userID, habitID int64, day models.Date, value int) (bool, error) {
	if value < 0 {
		return false, fmt.Errorf("%w: value must not be negative", ErrValidation)
	}
	if err := s.ensureUser(ctx, userID, &day); err != nil {
		return false, err
	}

	habit, err := s.Repo.GetHabit(userID, habitID)
	if err != nil {
		if errors.Is(err, shared.ErrRecordNotFound) {
			return false, fmt.Errorf("%w: habit %d", ErrNotFound, habitID)
		}
		return false, err
	}

	completed := value >= habit.Goal
	entry := models.HabitEntry{HabitID: habit.ID, Date: day, Value: value, Completed: completed}
	if err := s.Repo.UpsertHabitEntry(entry); err != nil {
		return false, fmt.Errorf("failed to save habit entry: %w", err)
	}

	return completed, s.recordActivity(ctx, userID, day)
}

// UpdatePrayer marks one prayer of day as done or not done.
func (s *trackerService) UpdatePrayer(ctx context.Context, userID int64, day models.Date, prayer models.Prayer, completed bool) error {
	if !prayer.Valid() {
		return fmt.Errorf("%w: invalid prayer", ErrValidation)
	}
	if err := s.ensureUser(ctx, userID, &day); err != nil {
		return err
	}
	if err := s.Repo.SetPrayer(userID, day, prayer, completed); err != nil {
		return fmt.Errorf("failed to save prayer: %w", err)
	}
	return s.recordActivity(ctx, userID, day)
}

// GetPrayers returns the prayer record of day.
func (s *trackerService) GetPrayers(ctx context.Context, userID int64, day models.Date) (models.PrayerRecord, error) {
	if err := s.ensureUser(ctx, userID, &day); err != nil {
		return models.PrayerRecord{}, err
	}
	return s.Repo.GetPrayers(userID, day)
}

// UpdateMeal marks one meal of day as eaten or not.
func (s *trackerService) UpdateMeal(ctx context.Context, userID int64, day models.Date, meal models.Meal, completed bool) error {
	if !meal.Valid() {
		return fmt.Errorf("%w: invalid meal", ErrValidation)
	}
	if err := s.ensureUser(ctx, userID, &day); err != nil {
		return err
	}
	if err := s.Repo.SetMeal(userID, day, meal, completed); err != nil {
		return fmt.Errorf("failed to save meal: %w", err)
	}
	return s.recordActivity(ctx, userID, day)
}

// GetMeals returns the meal record of day.
func (s *trackerService) GetMeals(ctx context.Context, userID int64, day models.Date) (models.MealRecord, error) {
	if err := s.ensureUser(ctx, userID, &day); err != nil {
		return models.MealRecord{}, err
	}
	return s.Repo.GetMeals(userID, day)
}

// UpdateWater replaces the glasses count of day.
func (s *trackerService) UpdateWater(ctx context.Context, userID int64, day models.Date, glasses int) error {
	if glasses < 0 {
		return fmt.Errorf("%w: glasses must not be negative", ErrValidation)
	}
	if err := s.ensureUser(ctx, userID, &day); err != nil {
		return err
	}
	if err := s.Repo.SetWater(userID, day, glasses); err != nil {
		return fmt.Errorf("failed to save water intake: %w", err)
	}
	return s.recordActivity(ctx, userID, day)
}

// GetWater returns the water record of day.
func (s *trackerService) GetWater(ctx context.Context, userID int64, day models.Date) (models.WaterRecord, error) {
	if err := s.ensureUser(ctx, userID, &day); err != nil {
		return models.WaterRecord{}, err
	}
	return s.Repo.GetWater(userID, day)
}

// AddWeight appends a weight measurement.
func (s *trackerService) AddWeight(ctx context.Context, userID int64, day models.Date, weight float64, goalWeight *float64) error {
	if weight <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrValidation)
	}
	if goalWeight != nil && *goalWeight <= 0 {
		return fmt.Errorf("%w: goal weight must be positive", ErrValidation)
	}
	if err := s.ensureUser(ctx, userID, &day); err != nil {
		return err
	}
	if _, err := s.Repo.AddWeight(userID, models.WeightEntry{Date: day, Weight: weight, GoalWeight: goalWeight}); err != nil {
		return fmt.Errorf("failed to save weight: %w", err)
	}
	return s.recordActivity(ctx, userID, day)
}

// GetWeightHistory returns up to limit entries, newest first. A non-positive
// limit falls back to the configured dashboard limit.
func (s *trackerService) GetWeightHistory(ctx context.Context, userID int64, limit int) ([]models.WeightEntry, error) {
	if err := s.ensureUser(ctx, userID, nil); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.WeightHistoryLimit
	}
	return s.Repo.GetWeightHistory(userID, limit)
}

// AddStudySession appends a study session and returns the total minutes of day.
func (s *trackerService) AddStudySession(ctx context.Context, userID int64, day models.Date, minutes int) (int, error) {
	if minutes <= 0 {
		return 0, fmt.Errorf("%w: duration must be positive", ErrValidation)
	}
	if err := s.ensureUser(ctx, userID, &day); err != nil {
		return 0, err
	}
	if _, err := s.Repo.AddStudySession(userID, models.StudySession{Date: day, Duration: minutes}); err != nil {
		return 0, fmt.Errorf("failed to save study session: %w", err)
	}
	total, err := s.Repo.StudyTotal(userID, day)
	if err != nil {
		return 0, err
	}
	return total, s.recordActivity(ctx, userID, day)
}

// GetStudyTotal returns the study minutes of day.
func (s *trackerService) GetStudyTotal(ctx context.Context, userID int64, day models.Date) (int, error) {
	if err := s.ensureUser(ctx, userID, &day); err != nil {
		return 0, err
	}
	return s.Repo.StudyTotal(userID, day)
}

// AddWorkoutSession appends a workout and returns the total minutes of day.
func (s *trackerService) AddWorkoutSession(ctx context.Context, userID int64, day models.Date, minutes int, kind string) (int, error) {
	if minutes <= 0 {
		return 0, fmt.Errorf("%w: duration must be positive", ErrValidation)
	}
	if err := s.ensureUser(ctx, userID, &day); err != nil {
		return 0, err
	}
	session := models.WorkoutSession{Date: day, Duration: minutes, Type: strings.TrimSpace(kind)}
	if _, err := s.Repo.AddWorkoutSession(userID, session); err != nil {
		return 0, fmt.Errorf("failed to save workout: %w", err)
	}
	total, err := s.Repo.WorkoutTotal(userID, day)
	if err != nil {
		return 0, err
	}
	return total, s.recordActivity(ctx, userID, day)
}

// GetWorkoutTotal returns the workout minutes of day.
func (s *trackerService) GetWorkoutTotal(ctx context.Context, userID int64, day models.Date) (int, error) {
	if err := s.ensureUser(ctx, userID, &day); err != nil {
		return 0, err
	}
	return s.Repo.WorkoutTotal(userID, day)
}
