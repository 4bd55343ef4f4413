// filepath: internal/housekeeping/service_test.go
package housekeeping

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTokens is a mock implementation of the TokenStore interface for testing.
type MockTokens struct {
	mock.Mock
}

func (m *MockTokens) DeleteExpiredRefreshTokens(before time.Time) (int64, error) {
	args := m.Called(before)
	return args.Get(0).(int64), args.Error(1)
}

type MockBackuper struct {
	mock.Mock
}

func (m *MockBackuper) CreateBackup() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// setupTest creates a new service with mock dependencies and a controllable clock.
func setupTest(backupInterval time.Duration) (*Service, *MockTokens, *MockBackuper, *time.Time) {
	tokens := new(MockTokens)
	backups := new(MockBackuper)
	service := NewService(Dependencies{Tokens: tokens, Backups: backups}, time.Hour, backupInterval)
	clock := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return clock }
	return service, tokens, backups, &clock
}

func TestNewService_Intervals(t *testing.T) {
	assert.Equal(t, DefaultCheckInterval, NewService(Dependencies{}, 0, 0).Interval)
	assert.Equal(t, MinCheckInterval, NewService(Dependencies{}, time.Second, 0).Interval)
	assert.Equal(t, 2*time.Hour, NewService(Dependencies{}, 2*time.Hour, 0).Interval)
}

func TestRunOnce(t *testing.T) {
	t.Run("Purges tokens and backs up when due", func(t *testing.T) {
		service, tokens, backups, clock := setupTest(24 * time.Hour)
		tokens.On("DeleteExpiredRefreshTokens", *clock).Return(int64(3), nil).Once()
		backups.On("CreateBackup").Return("/tmp/riseup-1.db", nil).Once()

		report, err := service.RunOnce(false)
		require.NoError(t, err)
		assert.Equal(t, int64(3), report.PurgedTokens)
		assert.Equal(t, "/tmp/riseup-1.db", report.BackupPath)
		assert.Contains(t, report.Message, "3 expired refresh tokens")
		tokens.AssertExpectations(t)
		backups.AssertExpectations(t)
	})

	t.Run("Skips backup until interval elapsed", func(t *testing.T) {
		service, tokens, backups, clock := setupTest(24 * time.Hour)
		tokens.On("DeleteExpiredRefreshTokens", mock.Anything).Return(int64(0), nil)
		backups.On("CreateBackup").Return("/tmp/a.db", nil).Once()

		_, err := service.RunOnce(false)
		require.NoError(t, err)

		*clock = clock.Add(time.Hour)
		report, err := service.RunOnce(false)
		require.NoError(t, err)
		assert.Empty(t, report.BackupPath)

		backups.On("CreateBackup").Return("/tmp/b.db", nil).Once()
		*clock = clock.Add(24 * time.Hour)
		report, err = service.RunOnce(false)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/b.db", report.BackupPath)
		backups.AssertExpectations(t)
	})

	t.Run("Backups disabled but forced", func(t *testing.T) {
		service, tokens, backups, _ := setupTest(0)
		tokens.On("DeleteExpiredRefreshTokens", mock.Anything).Return(int64(0), nil)

		report, err := service.RunOnce(false)
		require.NoError(t, err)
		assert.Empty(t, report.BackupPath)
		backups.AssertNotCalled(t, "CreateBackup")

		backups.On("CreateBackup").Return("/tmp/forced.db", nil).Once()
		report, err = service.RunOnce(true)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/forced.db", report.BackupPath)
	})

	t.Run("Token failure does not block backup", func(t *testing.T) {
		service, tokens, backups, _ := setupTest(time.Hour)
		tokens.On("DeleteExpiredRefreshTokens", mock.Anything).Return(int64(0), errors.New("db locked"))
		backups.On("CreateBackup").Return("/tmp/c.db", nil).Once()

		report, err := service.RunOnce(false)
		assert.ErrorContains(t, err, "db locked")
		assert.Equal(t, "/tmp/c.db", report.BackupPath)
	})

	t.Run("No backuper configured", func(t *testing.T) {
		tokens := new(MockTokens)
		tokens.On("DeleteExpiredRefreshTokens", mock.Anything).Return(int64(1), nil)
		service := NewService(Dependencies{Tokens: tokens}, time.Hour, time.Hour)

		report, err := service.RunOnce(true)
		require.NoError(t, err)
		assert.Empty(t, report.BackupPath)
	})
}

func TestStartStop(t *testing.T) {
	tokens := new(MockTokens)
	done := make(chan struct{})
	tokens.On("DeleteExpiredRefreshTokens", mock.Anything).Return(int64(0), nil).Run(func(mock.Arguments) {
		select {
		case <-done:
		default:
			close(done)
		}
	})

	service := NewService(Dependencies{Tokens: tokens}, time.Hour, 0)
	service.Start()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("housekeeping did not run on start")
	}
	service.Stop()
	service.Stop()
}
