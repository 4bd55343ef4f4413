// filepath: internal/api/handlers/main.go
package handlers

import (
	"riseup/internal/config"
	"riseup/internal/services"
	"riseup/internal/services/auth"
	"time"
)

// Handlers provides a struct to hold shared dependencies for API handlers.
type Handlers struct {
	// --- Depend on interfaces, not concrete structs ---
	Info          services.InfoService
	User          services.UserService
	Token         auth.TokenService
	Tracker       services.TrackerService
	Dashboard     services.DashboardService
	Streak        services.StreakService
	Notifications services.NotificationService
	Housekeeping  services.HousekeepingService
	Auditor       services.Auditor

	Cfg *config.Config
	// Now resolves "today" for requests that omit a date.
	Now func() time.Time
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	info services.InfoService,
	user services.UserService,
	token auth.TokenService,
	tracker services.TrackerService,
	dashboard services.DashboardService,
	streak services.StreakService,
	notifications services.NotificationService,
	housekeeping services.HousekeepingService,
	auditor services.Auditor,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		Info:          info,
		User:          user,
		Token:         token,
		Tracker:       tracker,
		Dashboard:     dashboard,
		Streak:        streak,
		Notifications: notifications,
		Housekeeping:  housekeeping,
		Auditor:       auditor,
		Cfg:           cfg,
		Now:           time.Now,
	}
}
