// filepath: internal/repository/migration.go
package repository

import (
	"fmt"
	"riseup/internal/db/migrations"
	"riseup/internal/logging"

	"github.com/pressly/goose/v3"
)

func setupGoose() error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(logging.Log)
	return goose.SetDialect("sqlite3")
}

// EnsureSchemaBootstrapped migrates a brand new database to the latest version.
// Databases that already carry a goose version table are left alone so that
// upgrades stay an explicit "migrate up".
func (s *Repository) EnsureSchemaBootstrapped() error {
	var name string
	err := s.DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='goose_db_version'").Scan(&name)
	if err == nil {
		logging.Log.Debug("EnsureSchemaBootstrapped: version table found, skipping auto-migration")
		return nil
	}

	logging.Log.Info("Fresh database detected. Applying all migrations...")
	if err := setupGoose(); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	if err := goose.Up(s.DB, "."); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	return nil
}

// ValidateSchema fails when the database is behind the embedded migrations.
func (s *Repository) ValidateSchema() error {
	if err := setupGoose(); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	current, err := goose.GetDBVersion(s.DB)
	if err != nil {
		return fmt.Errorf("database schema is outdated or unreadable: %w", err)
	}

	all, err := goose.CollectMigrations(".", 0, goose.MaxVersion)
	if err != nil {
		return fmt.Errorf("failed to read embedded migrations: %w", err)
	}
	latest, err := all.Last()
	if err != nil {
		return fmt.Errorf("failed to read embedded migrations: %w", err)
	}

	if current < latest.Version {
		return fmt.Errorf("database schema is outdated (version %d, expected %d); run 'riseup migrate up'", current, latest.Version)
	}
	return nil
}

// RunMigration executes a goose command ("up", "down" or "status").
func (s *Repository) RunMigration(command string) error {
	if err := setupGoose(); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	// The migrations directory is embedded, so "." is the root of the embedded FS.
	dir := "."

	var err error
	switch command {
	case "up":
		err = goose.Up(s.DB, dir)
	case "down":
		err = goose.Down(s.DB, dir)
	case "status":
		err = goose.Status(s.DB, dir)
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
