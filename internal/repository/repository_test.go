// filepath: internal/repository/repository_test.go
package repository

import (
	"path/filepath"
	"riseup/internal/config"
	"riseup/internal/db/migrations"
	"riseup/internal/models"
	"riseup/internal/shared"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func applyTestMigrations(t *testing.T, repo *Repository) {
	t.Helper()
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		t.Fatalf("Failed to set goose dialect: %v", err)
	}
	if err := goose.Up(repo.DB, "."); err != nil {
		t.Fatalf("Failed to apply test migrations: %v", err)
	}
}

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()
	dummyCfg := &config.Config{
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test_repository.db")},
	}

	repo, err := NewRepository(dummyCfg)
	if err != nil {
		t.Fatalf("Failed to create new repository: %v", err)
	}

	applyTestMigrations(t, repo)

	return repo, func() { repo.Close() }
}

func createTestUser(t *testing.T, repo *Repository, username string) *models.User {
	t.Helper()
	user, err := repo.CreateUser(&UserCreateArgs{Username: username, Password: "password123", Name: "Test " + username})
	require.NoError(t, err)
	return user
}

func TestNewRepository(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	tables := []string{"users", "habits", "habit_entries", "prayers", "water_intake", "meals",
		"weight_entries", "study_sessions", "workout_sessions", "streaks", "refresh_tokens", "notifications"}
	for _, table := range tables {
		var name string
		err := repo.DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table '%s' was not created: %v", table, err)
		}
	}
}

func TestUserCRUD(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, repo, "alice")
	assert.NotZero(t, user.ID)
	assert.Equal(t, "Test alice", user.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))

	t.Run("duplicate username", func(t *testing.T) {
		_, err := repo.CreateUser(&UserCreateArgs{Username: "alice", Password: "other"})
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("default habits", func(t *testing.T) {
		habits, err := repo.ListHabits(user.ID)
		require.NoError(t, err)
		require.Len(t, habits, len(DefaultHabits))
		for i, h := range habits {
			assert.Equal(t, DefaultHabits[i].Name, h.Name)
			assert.Equal(t, DefaultHabits[i].Goal, h.Goal)
			assert.Equal(t, user.ID, h.UserID)
		}
	})

	t.Run("lookup", func(t *testing.T) {
		byName, err := repo.GetUserByUsername("alice")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byName.ID)

		exists, err := repo.UserExists("alice")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.UserExists("bob")
		require.NoError(t, err)
		assert.False(t, exists)

		_, err = repo.GetUserByID(9999)
		assert.ErrorIs(t, err, shared.ErrUserNotFound)
	})

	t.Run("update password invalidates cache", func(t *testing.T) {
		require.NoError(t, repo.UpdateUserPassword("alice", "newpass456"))
		updated, err := repo.GetUserByUsername("alice")
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass456")))
	})

	t.Run("delete cascades", func(t *testing.T) {
		require.NoError(t, repo.DeleteUser(user.ID))
		_, err := repo.GetUserByID(user.ID)
		assert.Error(t, err)

		var count int
		require.NoError(t, repo.DB.QueryRow("SELECT COUNT(*) FROM habits WHERE user_id = ?", user.ID).Scan(&count))
		assert.Zero(t, count)
	})
}

func TestCreateUser_EmailUnique(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.CreateUser(&UserCreateArgs{Username: "a", Password: "p", Email: "same@example.com"})
	require.NoError(t, err)
	_, err = repo.CreateUser(&UserCreateArgs{Username: "b", Password: "p", Email: "same@example.com"})
	assert.ErrorIs(t, err, ErrUserExists)

	// Empty emails are stored as NULL and never collide.
	_, err = repo.CreateUser(&UserCreateArgs{Username: "c", Password: "p"})
	require.NoError(t, err)
	_, err = repo.CreateUser(&UserCreateArgs{Username: "d", Password: "p"})
	assert.NoError(t, err)
}

func TestHabitEntries(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, repo, "habits")
	other := createTestUser(t, repo, "intruder")
	habits, err := repo.ListHabits(user.ID)
	require.NoError(t, err)
	study := habits[0]
	day := models.DateOf(2024, time.March, 10)

	require.NoError(t, repo.UpsertHabitEntry(models.HabitEntry{HabitID: study.ID, Date: day, Value: 60}))
	require.NoError(t, repo.UpsertHabitEntry(models.HabitEntry{HabitID: study.ID, Date: day, Value: 150, Completed: true}))

	entry, err := repo.GetHabitEntry(study.ID, day)
	require.NoError(t, err)
	assert.Equal(t, 150, entry.Value)
	assert.True(t, entry.Completed)
	assert.True(t, entry.Date.Equal(day))

	var rows int
	require.NoError(t, repo.DB.QueryRow("SELECT COUNT(*) FROM habit_entries WHERE habit_id = ?", study.ID).Scan(&rows))
	assert.Equal(t, 1, rows, "upsert must not duplicate (habit, date)")

	_, err = repo.GetHabit(other.ID, study.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	progress, err := repo.GetHabitProgress(user.ID, day)
	require.NoError(t, err)
	require.Len(t, progress, 5)
	assert.Equal(t, 150, progress[0].Current)
	for _, p := range progress[1:] {
		assert.Zero(t, p.Current)
	}

	progress, err = repo.GetHabitProgress(user.ID, day.AddDays(1))
	require.NoError(t, err)
	assert.Zero(t, progress[0].Current, "entries of other dates must not leak into the join")
}

func TestTrackers(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, repo, "tracker")
	day := models.DateOf(2024, time.March, 10)

	t.Run("prayers", func(t *testing.T) {
		empty, err := repo.GetPrayers(user.ID, day)
		require.NoError(t, err)
		assert.Zero(t, empty.Completed())

		require.NoError(t, repo.SetPrayer(user.ID, day, models.Fajr, true))
		require.NoError(t, repo.SetPrayer(user.ID, day, models.Isha, true))
		require.NoError(t, repo.SetPrayer(user.ID, day, models.Fajr, false))

		rec, err := repo.GetPrayers(user.ID, day)
		require.NoError(t, err)
		assert.False(t, rec.Fajr)
		assert.True(t, rec.Isha)
		assert.Equal(t, 1, rec.Completed())

		assert.Error(t, repo.SetPrayer(user.ID, day, models.Prayer(42), true))
	})

	t.Run("meals", func(t *testing.T) {
		require.NoError(t, repo.SetMeal(user.ID, day, models.Lunch, true))
		require.NoError(t, repo.SetMeal(user.ID, day, models.Dinner, true))

		rec, err := repo.GetMeals(user.ID, day)
		require.NoError(t, err)
		assert.True(t, rec.Lunch)
		assert.True(t, rec.Dinner)
		assert.False(t, rec.Breakfast)
		assert.Equal(t, 2, rec.Completed())
	})

	t.Run("water", func(t *testing.T) {
		rec, err := repo.GetWater(user.ID, day)
		require.NoError(t, err)
		assert.Equal(t, 0, rec.Glasses)
		assert.Equal(t, DefaultWaterGoal, rec.Goal)

		require.NoError(t, repo.SetWater(user.ID, day, 3))
		require.NoError(t, repo.SetWater(user.ID, day, 6))
		rec, err = repo.GetWater(user.ID, day)
		require.NoError(t, err)
		assert.Equal(t, 6, rec.Glasses)
	})
}

func TestLogs(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, repo, "logger")
	day := models.DateOf(2024, time.March, 10)

	t.Run("weight history ordered newest first", func(t *testing.T) {
		goal := 55.0
		for i := 0; i < 4; i++ {
			_, err := repo.AddWeight(user.ID, models.WeightEntry{Date: day.AddDays(i), Weight: 40 + float64(i), GoalWeight: &goal})
			require.NoError(t, err)
		}
		_, err := repo.AddWeight(user.ID, models.WeightEntry{Date: day.AddDays(-1), Weight: 39})
		require.NoError(t, err)

		history, err := repo.GetWeightHistory(user.ID, 3)
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, 43.0, history[0].Weight)
		assert.Equal(t, 42.0, history[1].Weight)
		assert.Equal(t, 41.0, history[2].Weight)
		require.NotNil(t, history[0].GoalWeight)
		assert.Equal(t, 55.0, *history[0].GoalWeight)

		all, err := repo.GetWeightHistory(user.ID, 10)
		require.NoError(t, err)
		require.Len(t, all, 5)
		assert.Nil(t, all[4].GoalWeight)
	})

	t.Run("study totals per date", func(t *testing.T) {
		total, err := repo.StudyTotal(user.ID, day)
		require.NoError(t, err)
		assert.Zero(t, total)

		for _, d := range []int{30, 45} {
			_, err := repo.AddStudySession(user.ID, models.StudySession{Date: day, Duration: d})
			require.NoError(t, err)
		}
		_, err = repo.AddStudySession(user.ID, models.StudySession{Date: day.AddDays(1), Duration: 100})
		require.NoError(t, err)

		total, err = repo.StudyTotal(user.ID, day)
		require.NoError(t, err)
		assert.Equal(t, 75, total)
	})

	t.Run("workout totals per date", func(t *testing.T) {
		_, err := repo.AddWorkoutSession(user.ID, models.WorkoutSession{Date: day, Duration: 20, Type: "cardio"})
		require.NoError(t, err)
		_, err = repo.AddWorkoutSession(user.ID, models.WorkoutSession{Date: day, Duration: 25})
		require.NoError(t, err)

		total, err := repo.WorkoutTotal(user.ID, day)
		require.NoError(t, err)
		assert.Equal(t, 45, total)
	})
}

func TestStreakPersistence(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, repo, "streaker")

	_, err := repo.GetStreak(user.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	day := models.DateOf(2024, time.March, 10)
	require.NoError(t, repo.SaveStreak(user.ID, models.Streak{CurrentStreak: 1, LongestStreak: 1, LastActiveDate: day}))
	require.NoError(t, repo.SaveStreak(user.ID, models.Streak{CurrentStreak: 2, LongestStreak: 4, LastActiveDate: day.AddDays(1)}))

	st, err := repo.GetStreak(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, st.CurrentStreak)
	assert.Equal(t, 4, st.LongestStreak)
	assert.True(t, st.LastActiveDate.Equal(day.AddDays(1)))
}

func TestRefreshTokens(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, repo, "tokens")

	require.NoError(t, repo.StoreRefreshToken(user.ID, "live", time.Now().Add(time.Hour)))
	require.NoError(t, repo.StoreRefreshToken(user.ID, "stale", time.Now().Add(-time.Hour)))

	id, err := repo.ValidateRefreshToken("live")
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)

	_, err = repo.ValidateRefreshToken("stale")
	assert.ErrorIs(t, err, ErrTokenNotFound)

	purged, err := repo.DeleteExpiredRefreshTokens(time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	require.NoError(t, repo.DeleteRefreshToken("live"))
	_, err = repo.ValidateRefreshToken("live")
	assert.ErrorIs(t, err, ErrTokenNotFound)

	require.NoError(t, repo.StoreRefreshToken(user.ID, "a", time.Now().Add(time.Hour)))
	require.NoError(t, repo.StoreRefreshToken(user.ID, "b", time.Now().Add(time.Hour)))
	require.NoError(t, repo.DeleteAllRefreshTokensForUser(user.ID))
	_, err = repo.ValidateRefreshToken("b")
	assert.Error(t, err)
}

func TestNotifications(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, repo, "inbox")
	other := createTestUser(t, repo, "stranger")

	first, err := repo.CreateNotification(user.ID, models.Notification{Title: "Welcome", Message: "hi"})
	require.NoError(t, err)
	_, err = repo.CreateNotification(user.ID, models.Notification{Title: "Streak", Message: "7 days", Type: "streak"})
	require.NoError(t, err)

	list, err := repo.ListNotifications(user.ID, false)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Streak", list[0].Title)
	assert.Equal(t, "info", list[1].Type)

	assert.ErrorIs(t, repo.MarkNotificationRead(other.ID, first), ErrRecordNotFound)
	require.NoError(t, repo.MarkNotificationRead(user.ID, first))

	unread, err := repo.ListNotifications(user.ID, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "Streak", unread[0].Title)
}

func TestGetDatabaseStats(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	createTestUser(t, repo, "stats")

	stats, err := repo.GetDatabaseStats()
	require.NoError(t, err)
	assert.Positive(t, stats.SizeBytes)

	counts := map[string]int64{}
	for _, ts := range stats.Tables {
		counts[ts.Name] = ts.Rows
	}
	assert.Equal(t, int64(1), counts["users"])
	assert.Equal(t, int64(5), counts["habits"])
	assert.Contains(t, counts, "goose_db_version")
}
