// filepath: internal/services/services_test.go
package services

import (
	"context"
	"path/filepath"
	"riseup/internal/config"
	"riseup/internal/db/migrations"
	"riseup/internal/models"
	"riseup/internal/repository"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	repo          *repository.Repository
	users         *userService
	streaks       *streakService
	trackers      *trackerService
	dashboard     *dashboardService
	notifications *notificationService
}

// setupIntegrationTest creates services backed by a migrated temp-file SQLite database.
func setupIntegrationTest(t *testing.T, mutate ...func(*config.Config)) *testEnv {
	t.Helper()

	cfg := &config.Config{
		Database:  config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test.db")},
		Dashboard: config.DashboardConfig{WeightHistoryLimit: 3},
	}
	for _, m := range mutate {
		m(cfg)
	}

	repo, err := repository.NewRepository(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		t.Fatalf("Failed to set goose dialect: %v", err)
	}
	if err := goose.Up(repo.DB, "."); err != nil {
		t.Fatalf("Failed to migrate integration DB: %v", err)
	}

	notifications := NewNotificationService(repo)
	streaks := NewStreakService(repo, cfg, notifications)
	return &testEnv{
		repo:          repo,
		users:         NewUserService(repo),
		streaks:       streaks,
		trackers:      NewTrackerService(repo, streaks, cfg),
		dashboard:     NewDashboardService(repo, streaks, cfg),
		notifications: notifications,
	}
}

func (e *testEnv) register(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := e.users.Register(repository.UserCreateArgs{Username: username, Password: "password123", Name: username})
	require.NoError(t, err)
	return user
}

func (e *testEnv) habitID(t *testing.T, userID int64, name string) int64 {
	t.Helper()
	habits, err := e.trackers.ListHabits(context.Background(), userID)
	require.NoError(t, err)
	for _, h := range habits {
		if h.Name == name {
			return h.ID
		}
	}
	t.Fatalf("habit %q not found", name)
	return 0
}

var (
	ctx  = context.Background()
	day1 = models.DateOf(2024, time.March, 10)
	day2 = day1.AddDays(1)
)

// Register, study on day 1, pray on day 1 and day 2: the streak goes from 1 to 2.
func TestScenario_RegisterStudyPray(t *testing.T) {
	env := setupIntegrationTest(t)
	user := env.register(t, "scenario")

	habits, err := env.trackers.ListHabits(ctx, user.ID)
	require.NoError(t, err)
	var names []string
	for _, h := range habits {
		names = append(names, h.Name)
	}
	assert.Equal(t, []string{"Study", "Workout", "Prayers", "Water", "Meals"}, names)

	completed, err := env.trackers.UpdateHabitEntry(ctx, user.ID, env.habitID(t, user.ID, "Study"), day1, 150)
	require.NoError(t, err)
	assert.True(t, completed)

	dash, err := env.dashboard.GetDashboard(ctx, user.ID, day1)
	require.NoError(t, err)
	assert.Equal(t, 150, dash.Habits[0].Current)

	require.NoError(t, env.trackers.UpdatePrayer(ctx, user.ID, day1, models.Fajr, true))
	st, err := env.streaks.GetStreak(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, st.CurrentStreak)

	require.NoError(t, env.trackers.UpdatePrayer(ctx, user.ID, day2, models.Fajr, true))
	st, err = env.streaks.GetStreak(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, st.CurrentStreak)
	assert.Equal(t, 2, st.LongestStreak)
}

func TestUserService(t *testing.T) {
	env := setupIntegrationTest(t)

	t.Run("validation", func(t *testing.T) {
		_, err := env.users.Register(repository.UserCreateArgs{Username: " ", Password: "x"})
		assert.ErrorIs(t, err, ErrValidation)
		_, err = env.users.Register(repository.UserCreateArgs{Username: "someone"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	user := env.register(t, "carol")

	t.Run("duplicate is a conflict", func(t *testing.T) {
		_, err := env.users.Register(repository.UserCreateArgs{Username: "carol", Password: "other"})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("credentials", func(t *testing.T) {
		got, err := env.users.VerifyCredentials("carol", "password123")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)

		_, err = env.users.VerifyCredentials("carol", "wrong")
		assert.ErrorIs(t, err, ErrUnauthorized)
		_, err = env.users.VerifyCredentials("nobody", "password123")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("password change", func(t *testing.T) {
		assert.ErrorIs(t, env.users.UpdateUserPassword("carol", ""), ErrValidation)
		require.NoError(t, env.users.UpdateUserPassword("carol", "changed!"))
		_, err := env.users.VerifyCredentials("carol", "changed!")
		assert.NoError(t, err)
		assert.ErrorIs(t, env.users.UpdateUserPassword("ghost", "x"), ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, env.users.DeleteUser(user.ID))
		_, err := env.users.GetUserByID(user.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, env.users.DeleteUser(user.ID), ErrNotFound)
	})
}

func TestUpdateHabitEntry(t *testing.T) {
	env := setupIntegrationTest(t)
	user := env.register(t, "habitual")
	study := env.habitID(t, user.ID, "Study")

	t.Run("completed threshold", func(t *testing.T) {
		completed, err := env.trackers.UpdateHabitEntry(ctx, user.ID, study, day1, 119)
		require.NoError(t, err)
		assert.False(t, completed)

		completed, err = env.trackers.UpdateHabitEntry(ctx, user.ID, study, day1, 120)
		require.NoError(t, err)
		assert.True(t, completed)
	})

	t.Run("idempotent per date", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			_, err := env.trackers.UpdateHabitEntry(ctx, user.ID, study, day2, 60)
			require.NoError(t, err)
		}
		dash, err := env.dashboard.GetDashboard(ctx, user.ID, day2)
		require.NoError(t, err)
		assert.Equal(t, 60, dash.Habits[0].Current)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := env.trackers.UpdateHabitEntry(ctx, user.ID, study, day1, -1)
		assert.ErrorIs(t, err, ErrValidation)

		_, err = env.trackers.UpdateHabitEntry(ctx, user.ID, 99999, day1, 1)
		assert.ErrorIs(t, err, ErrNotFound)

		other := env.register(t, "other")
		_, err = env.trackers.UpdateHabitEntry(ctx, other.ID, study, day1, 1)
		assert.ErrorIs(t, err, ErrNotFound, "habit of another user")

		_, err = env.trackers.UpdateHabitEntry(ctx, 4242, study, day1, 1)
		assert.ErrorIs(t, err, ErrNotFound, "unknown user")

		_, err = env.trackers.UpdateHabitEntry(ctx, user.ID, study, models.Date{}, 1)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestTrackers_IdempotentPerDate(t *testing.T) {
	env := setupIntegrationTest(t)
	user := env.register(t, "daily")

	for i := 0; i < 2; i++ {
		require.NoError(t, env.trackers.UpdatePrayer(ctx, user.ID, day1, models.Asr, true))
		require.NoError(t, env.trackers.UpdateMeal(ctx, user.ID, day1, models.Breakfast, true))
		require.NoError(t, env.trackers.UpdateWater(ctx, user.ID, day1, 5))
	}

	prayers, err := env.trackers.GetPrayers(ctx, user.ID, day1)
	require.NoError(t, err)
	assert.Equal(t, 1, prayers.Completed())

	meals, err := env.trackers.GetMeals(ctx, user.ID, day1)
	require.NoError(t, err)
	assert.Equal(t, 1, meals.Completed())

	water, err := env.trackers.GetWater(ctx, user.ID, day1)
	require.NoError(t, err)
	assert.Equal(t, 5, water.Glasses)

	for table, want := range map[string]int{"prayers": 1, "meals": 1, "water_intake": 1} {
		var n int
		require.NoError(t, env.repo.DB.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE user_id = ?", user.ID).Scan(&n))
		assert.Equal(t, want, n, table)
	}

	assert.ErrorIs(t, env.trackers.UpdatePrayer(ctx, user.ID, day1, models.Prayer(0), true), ErrValidation)
	assert.ErrorIs(t, env.trackers.UpdateMeal(ctx, user.ID, day1, models.Meal(9), true), ErrValidation)
	assert.ErrorIs(t, env.trackers.UpdateWater(ctx, user.ID, day1, -2), ErrValidation)
}

func TestLogs_AppendSemantics(t *testing.T) {
	env := setupIntegrationTest(t)
	user := env.register(t, "appender")

	total, err := env.trackers.AddStudySession(ctx, user.ID, day1, 30)
	require.NoError(t, err)
	assert.Equal(t, 30, total)
	total, err = env.trackers.AddStudySession(ctx, user.ID, day1, 30)
	require.NoError(t, err)
	assert.Equal(t, 60, total, "identical sessions are both kept")

	total, err = env.trackers.AddWorkoutSession(ctx, user.ID, day1, 20, "cardio")
	require.NoError(t, err)
	assert.Equal(t, 20, total)
	total, err = env.trackers.GetWorkoutTotal(ctx, user.ID, day1)
	require.NoError(t, err)
	assert.Equal(t, 20, total)

	goal := 55.0
	for i := 0; i < 5; i++ {
		require.NoError(t, env.trackers.AddWeight(ctx, user.ID, day1.AddDays(i), 40+float64(i), &goal))
	}
	history, err := env.trackers.GetWeightHistory(ctx, user.ID, 0)
	require.NoError(t, err)
	assert.Len(t, history, 3, "falls back to the configured limit")
	history, err = env.trackers.GetWeightHistory(ctx, user.ID, 10)
	require.NoError(t, err)
	assert.Len(t, history, 5)

	_, err = env.trackers.AddStudySession(ctx, user.ID, day1, 0)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = env.trackers.AddWorkoutSession(ctx, user.ID, day1, -5, "")
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, env.trackers.AddWeight(ctx, user.ID, day1, 0, nil), ErrValidation)
	bad := -1.0
	assert.ErrorIs(t, env.trackers.AddWeight(ctx, user.ID, day1, 50, &bad), ErrValidation)
}

func TestStreakService(t *testing.T) {
	t.Run("continuation, no-op and reset", func(t *testing.T) {
		env := setupIntegrationTest(t)
		user := env.register(t, "streaky")

		for i := 0; i < 3; i++ {
			_, err := env.streaks.RecordActivity(ctx, user.ID, day1.AddDays(i))
			require.NoError(t, err)
		}
		st, err := env.streaks.RecordActivity(ctx, user.ID, day1.AddDays(2))
		require.NoError(t, err)
		assert.Equal(t, 3, st.CurrentStreak, "same day does not increment")

		st, err = env.streaks.RecordActivity(ctx, user.ID, day1)
		require.NoError(t, err)
		assert.Equal(t, 3, st.CurrentStreak, "backfill does not move the streak")

		st, err = env.streaks.RecordActivity(ctx, user.ID, day1.AddDays(10))
		require.NoError(t, err)
		assert.Equal(t, 1, st.CurrentStreak)
		assert.Equal(t, 3, st.LongestStreak)
	})

	t.Run("legacy same-day increment", func(t *testing.T) {
		env := setupIntegrationTest(t, func(c *config.Config) { c.Streak.LegacySameDayIncrement = true })
		user := env.register(t, "legacy")

		for i := 0; i < 3; i++ {
			_, err := env.streaks.RecordActivity(ctx, user.ID, day1)
			require.NoError(t, err)
		}
		st, err := env.streaks.GetStreak(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, st.CurrentStreak)
	})

	t.Run("milestone notification", func(t *testing.T) {
		env := setupIntegrationTest(t)
		user := env.register(t, "weekly")

		for i := 0; i < 7; i++ {
			_, err := env.streaks.RecordActivity(ctx, user.ID, day1.AddDays(i))
			require.NoError(t, err)
		}
		list, err := env.notifications.List(ctx, user.ID, true)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "streak", list[0].Type)
		assert.Contains(t, list[0].Title, "7")
	})
}

// The tracker write and the streak update are separate statements: when the
// streak update fails the tracker row is still stored and the error surfaces.
func TestTrackerWrite_StreakFailureIsNotRolledBack(t *testing.T) {
	env := setupIntegrationTest(t)
	user := env.register(t, "partial")

	_, err := env.repo.DB.Exec("DROP TABLE streaks")
	require.NoError(t, err)

	err = env.trackers.UpdateWater(ctx, user.ID, day1, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "streak")

	water, err := env.trackers.GetWater(ctx, user.ID, day1)
	require.NoError(t, err)
	assert.Equal(t, 4, water.Glasses)
}

func TestGetDashboard(t *testing.T) {
	env := setupIntegrationTest(t)

	t.Run("fresh user", func(t *testing.T) {
		user := env.register(t, "fresh")
		dash, err := env.dashboard.GetDashboard(ctx, user.ID, day1)
		require.NoError(t, err)
		require.Len(t, dash.Habits, 5)
		for _, h := range dash.Habits {
			assert.Zero(t, h.Current)
		}
		assert.Equal(t, models.StreakSummary{}, dash.Streak)
		assert.Empty(t, dash.WeightHistory)
		assert.NotNil(t, dash.WeightHistory)
	})

	t.Run("read only", func(t *testing.T) {
		user := env.register(t, "reader")
		_, err := env.dashboard.GetDashboard(ctx, user.ID, day1)
		require.NoError(t, err)
		_, err = env.repo.GetStreak(user.ID)
		assert.ErrorIs(t, err, repository.ErrRecordNotFound)
	})

	t.Run("weight history newest first", func(t *testing.T) {
		user := env.register(t, "weigher")
		for i := 0; i < 4; i++ {
			require.NoError(t, env.trackers.AddWeight(ctx, user.ID, day1.AddDays(i), 60-float64(i), nil))
		}
		dash, err := env.dashboard.GetDashboard(ctx, user.ID, day1)
		require.NoError(t, err)
		require.Len(t, dash.WeightHistory, 3)
		assert.Equal(t, 57.0, dash.WeightHistory[0].Weight)
		assert.Equal(t, 4, dash.Streak.CurrentStreak, "four consecutive weigh-ins")
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := env.dashboard.GetDashboard(ctx, 777, day1)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestNotificationService(t *testing.T) {
	env := setupIntegrationTest(t)
	user := env.register(t, "notified")

	require.NoError(t, env.notifications.Notify(ctx, user.ID, "Welcome", "Hello", ""))
	assert.ErrorIs(t, env.notifications.Notify(ctx, user.ID, " ", "x", ""), ErrValidation)

	list, err := env.notifications.List(ctx, user.ID, false)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, env.notifications.MarkRead(ctx, user.ID, list[0].ID))
	assert.ErrorIs(t, env.notifications.MarkRead(ctx, user.ID, 12345), ErrNotFound)

	unread, err := env.notifications.List(ctx, user.ID, true)
	require.NoError(t, err)
	assert.Empty(t, unread)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = env.notifications.List(cancelled, user.ID, false)
	assert.ErrorIs(t, err, context.Canceled)
}
