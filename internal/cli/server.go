// filepath: internal/cli/server.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"riseup/internal/api"
	"riseup/internal/api/handlers"
	"riseup/internal/audit"
	"riseup/internal/backup"
	"riseup/internal/config"
	"riseup/internal/logging"
	"riseup/internal/repository"
	"riseup/internal/services"
	"riseup/internal/services/auth"
	"syscall"
	"time"
)

// ensureJWTSecret resolves the signing secret: env/flag first, then the
// config file. A missing secret is generated and persisted.
func ensureJWTSecret(options *GlobalOptions) error {
	cfg := options.Conf
	if cfg.JWTSecret != "" {
		return nil
	}
	if cfg.JWT.Secret != "" {
		logging.Log.Infof("Using JWT secret loaded from %s.", options.CfgFilePath)
		cfg.JWTSecret = cfg.JWT.Secret
		return nil
	}

	logging.Log.Info("Generating new random JWT secret...")
	newSecret, err := auth.GenerateSecret()
	if err != nil {
		return fmt.Errorf("failed to generate JWT secret: %w", err)
	}
	cfg.JWT.Secret = newSecret
	cfg.JWTSecret = newSecret
	if err := config.SaveConfig(options.CfgFilePath, cfg); err != nil {
		logging.Log.Warnf("Failed to save new JWT secret to %s: %v", options.CfgFilePath, err)
	} else {
		logging.Log.Infof("New JWT secret saved to %s.", options.CfgFilePath)
	}
	return nil
}

// openRepository opens the configured database and brings a fresh file up to the latest schema.
func openRepository(cfg *config.Config) (*repository.Repository, error) {
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repository: %w", err)
	}

	// --- Conditional Auto-migrate on startup ---
	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		repo.Close()
		logging.Log.Errorf("Failed to bootstrap database: %v", err)
		return nil, err
	}

	if err := repo.ValidateSchema(); err != nil {
		repo.Close()
		logging.Log.Error("---------------------------------------------------------------")
		logging.Log.Errorf("CRITICAL DATABASE ERROR: %v", err)
		logging.Log.Error("---------------------------------------------------------------")
		return nil, err
	}
	return repo, nil
}

// application is the wired service graph behind the HTTP server.
type application struct {
	Handler      http.Handler
	Housekeeping services.HousekeepingService
}

// buildApplication wires repository, services and router.
func buildApplication(options *GlobalOptions, repo *repository.Repository) *application {
	cfg := options.Conf

	infoService := services.NewInfoService(Version, options.StartTime)
	userService := services.NewUserService(repo)
	tokenService := auth.NewTokenService(cfg, userService, repo)
	notificationService := services.NewNotificationService(repo)
	streakService := services.NewStreakService(repo, cfg, notificationService)
	trackerService := services.NewTrackerService(repo, streakService, cfg)
	dashboardService := services.NewDashboardService(repo, streakService, cfg)

	backups := backup.NewManager(cfg.Database.Path, cfg.Database.BackupDir, cfg.Housekeeping.MaxBackups)
	housekeepingService := services.NewHousekeepingService(repo, backups, cfg)

	// Auditor Initialization
	loggerAuditor := audit.NewLoggerAuditor(cfg.Logging.AuditEnabled)

	authMiddleware := auth.NewMiddleware(userService, tokenService)

	h := handlers.NewHandlers(
		infoService,
		userService,
		tokenService,
		trackerService,
		dashboardService,
		streakService,
		notificationService,
		housekeepingService,
		loggerAuditor,
		cfg,
	)

	return &application{
		Handler:      api.SetupRouter(h, authMiddleware, cfg),
		Housekeeping: housekeepingService,
	}
}

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer(options *GlobalOptions) error {
	cfg := options.Conf

	if err := ensureJWTSecret(options); err != nil {
		return err
	}

	repo, err := openRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	app := buildApplication(options, repo)

	app.Housekeeping.Start()
	// No defer stop here, we stop explicitly during graceful shutdown

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           app.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logging.Log.Infof("Server starting on %s (database: %s)", serverAddr, cfg.Database.Path)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-stop:
	case err := <-serveErr:
		app.Housekeeping.Stop()
		return fmt.Errorf("server failed to start: %w", err)
	}
	logging.Log.Info("Shutting down server...")

	// Create a deadline for existing requests to complete (30 seconds)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Stop background services
	app.Housekeeping.Stop()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
