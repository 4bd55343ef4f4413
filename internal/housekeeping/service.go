// filepath: internal/housekeeping/service.go
package housekeeping

import (
	"fmt"
	"riseup/internal/logging"
	"riseup/internal/models"
	"sync"
	"time"
)

const (
	// DefaultCheckInterval is used when no interval is configured.
	DefaultCheckInterval = 1 * time.Hour
	// MinCheckInterval is the minimum time between runs to prevent busy-looping.
	MinCheckInterval = 1 * time.Minute
)

// Dependencies defines the required services for the housekeeping tasks.
// Backups may be nil to disable automatic backups.
type Dependencies struct {
	Tokens  TokenStore
	Backups Backuper
}

// Service provides the background worker for automated housekeeping.
type Service struct {
	Deps           Dependencies
	Interval       time.Duration
	BackupInterval time.Duration // 0 disables automatic backups

	mu         sync.Mutex
	lastBackup time.Time
	now        func() time.Time
	timer      *time.Timer
	stopCh     chan struct{}
	stopOnce   sync.Once
}

// NewService creates a new housekeeping service instance.
func NewService(deps Dependencies, interval, backupInterval time.Duration) *Service {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	if interval < MinCheckInterval {
		interval = MinCheckInterval
	}
	return &Service{
		Deps:           deps,
		Interval:       interval,
		BackupInterval: backupInterval,
		now:            time.Now,
		stopCh:         make(chan struct{}),
	}
}

// Start kicks off the background housekeeping service.
func (s *Service) Start() {
	logging.Log.Info("Starting background housekeeping service.")
	s.timer = time.NewTimer(0) // Fire immediately on start

	go func() {
		for {
			select {
			case <-s.timer.C:
				if report, err := s.RunOnce(false); err != nil {
					logging.Log.Errorf("Housekeeping run failed: %v", err)
				} else {
					logging.Log.Info(report.Message)
				}
				s.timer.Reset(s.Interval)
				logging.Log.Debugf("Next housekeeping run scheduled in %v.", s.Interval)
			case <-s.stopCh:
				s.timer.Stop()
				return
			}
		}
	}()
}

// Stop terminates the background housekeeping service. It is safe to call more than once.
func (s *Service) Stop() {
	s.stopOnce.Do(func() {
		logging.Log.Info("Stopping background housekeeping service.")
		close(s.stopCh)
	})
}

// RunOnce purges expired refresh tokens and, when due or forced, creates a backup.
// A failing task does not stop the other one; the first error is returned.
func (s *Service) RunOnce(forceBackup bool) (*models.HousekeepingReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	report := &models.HousekeepingReport{RanAt: now}
	var firstErr error

	if s.Deps.Tokens != nil {
		purged, err := s.Deps.Tokens.DeleteExpiredRefreshTokens(now)
		if err != nil {
			firstErr = fmt.Errorf("token purge failed: %w", err)
			logging.Log.Errorf("Housekeeping: %v", firstErr)
		}
		report.PurgedTokens = purged
	}

	if s.backupDue(now, forceBackup) {
		path, err := s.Deps.Backups.CreateBackup()
		if err != nil {
			err = fmt.Errorf("backup failed: %w", err)
			logging.Log.Errorf("Housekeeping: %v", err)
			if firstErr == nil {
				firstErr = err
			}
		} else {
			s.lastBackup = now
			report.BackupPath = path
		}
	}

	report.Message = fmt.Sprintf("Housekeeping complete. %d expired refresh tokens purged.", report.PurgedTokens)
	if report.BackupPath != "" {
		report.Message += fmt.Sprintf(" Backup written to %s.", report.BackupPath)
	}
	return report, firstErr
}

func (s *Service) backupDue(now time.Time, force bool) bool {
	if s.Deps.Backups == nil {
		return false
	}
	if force {
		return true
	}
	if s.BackupInterval <= 0 {
		return false
	}
	return s.lastBackup.IsZero() || now.Sub(s.lastBackup) >= s.BackupInterval
}
