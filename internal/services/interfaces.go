// filepath: internal/services/interfaces.go
package services

import (
	"context"
	"riseup/internal/models"
	"riseup/internal/repository"
)

// Auditor defines the interface for recording security-relevant events.
type Auditor interface {
	// Log records an event.
	// ctx: context to trace request IDs (if available)
	// action: what happened (e.g., "user.register", "user.login")
	// actor: who did it (username)
	// resource: what was affected (e.g., "User:12")
	// details: structured metadata about the event
	Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{})
}

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo() models.Info
}

// UserService defines the interface for the user service.
type UserService interface {
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id int64) (*models.User, error)
	Register(args repository.UserCreateArgs) (*models.User, error)
	VerifyCredentials(username, password string) (*models.User, error)
	UpdateUserPassword(username, password string) error
	DeleteUser(id int64) error
}

// StreakService defines the interface for the streak engine.
type StreakService interface {
	RecordActivity(ctx context.Context, userID int64, day models.Date) (models.StreakSummary, error)
	GetStreak(ctx context.Context, userID int64) (models.StreakSummary, error)
}

// TrackerService defines the per-tracker write and read operations.
type TrackerService interface {
	ListHabits(ctx context.Context, userID int64) ([]models.Habit, error)
	UpdateHabitEntry(ctx context.Context, userID, habitID int64, day models.Date, value int) (completed bool, err error)

	UpdatePrayer(ctx context.Context, userID int64, day models.Date, prayer models.Prayer, completed bool) error
	GetPrayers(ctx context.Context, userID int64, day models.Date) (models.PrayerRecord, error)
	UpdateMeal(ctx context.Context, userID int64, day models.Date, meal models.Meal, completed bool) error
	GetMeals(ctx context.Context, userID int64, day models.Date) (models.MealRecord, error)
	UpdateWater(ctx context.Context, userID int64, day models.Date, glasses int) error
	GetWater(ctx context.Context, userID int64, day models.Date) (models.WaterRecord, error)

	AddWeight(ctx context.Context, userID int64, day models.Date, weight float64, goalWeight *float64) error
	GetWeightHistory(ctx context.Context, userID int64, limit int) ([]models.WeightEntry, error)
	AddStudySession(ctx context.Context, userID int64, day models.Date, minutes int) (total int, err error)
	GetStudyTotal(ctx context.Context, userID int64, day models.Date) (int, error)
	AddWorkoutSession(ctx context.Context, userID int64, day models.Date, minutes int, kind string) (total int, err error)
	GetWorkoutTotal(ctx context.Context, userID int64, day models.Date) (int, error)
}

// DashboardService defines the interface for the read-only dashboard aggregation.
type DashboardService interface {
	GetDashboard(ctx context.Context, userID int64, day models.Date) (*models.Dashboard, error)
}

// NotificationService defines the interface for the notification inbox.
type NotificationService interface {
	List(ctx context.Context, userID int64, unreadOnly bool) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, id int64) error
	Notify(ctx context.Context, userID int64, title, message, kind string) error
}

// HousekeepingService defines the interface for the housekeeping service.
type HousekeepingService interface {
	Start()
	Stop()
	TriggerHousekeeping() (*models.HousekeepingReport, error)
}
