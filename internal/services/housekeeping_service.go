// filepath: internal/services/housekeeping_service.go
package services

import (
	"riseup/internal/backup"
	"riseup/internal/config"
	"riseup/internal/housekeeping"
	"riseup/internal/models"
	"riseup/internal/repository"
)

// Compile-time check to ensure interface is implemented
var _ HousekeepingService = (*housekeepingService)(nil)

// housekeepingService manages the lifecycle of the background housekeeping worker
// and provides a method for manual triggering.
type housekeepingService struct {
	worker *housekeeping.Service
}

// NewHousekeepingService wires the repository and the backup manager into the worker.
func NewHousekeepingService(repo *repository.Repository, backups *backup.Manager, cfg *config.Config) *housekeepingService {
	deps := housekeeping.Dependencies{Tokens: repo}
	if backups != nil {
		deps.Backups = backups
	}
	return &housekeepingService{
		worker: housekeeping.NewService(deps, cfg.HousekeepingInterval, cfg.BackupInterval),
	}
}

// Start begins the background housekeeping worker.
func (s *housekeepingService) Start() {
	s.worker.Start()
}

// Stop terminates the background housekeeping worker.
func (s *housekeepingService) Stop() {
	s.worker.Stop()
}

// TriggerHousekeeping runs the tasks immediately and always writes a backup.
func (s *housekeepingService) TriggerHousekeeping() (*models.HousekeepingReport, error) {
	return s.worker.RunOnce(true)
}
