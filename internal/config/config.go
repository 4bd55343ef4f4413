// filepath: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"riseup/internal/shared"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the application's configuration.
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logging      LoggingConfig      `toml:"logging"`
	JWT          JWTConfig          `toml:"jwt"`
	Streak       StreakConfig       `toml:"streak"`
	Dashboard    DashboardConfig    `toml:"dashboard"`
	Housekeeping HousekeepingConfig `toml:"housekeeping"`

	JWTSecret string `toml:"-"` // Runtime secret (from env, flag, or file)

	// Runtime computed values
	AccessDuration       time.Duration `toml:"-"`
	RefreshDuration      time.Duration `toml:"-"`
	HousekeepingInterval time.Duration `toml:"-"`
	BackupInterval       time.Duration `toml:"-"`
	LogMaxSizeMB         int           `toml:"-"`
}

// ServerConfig holds the server configuration.
type ServerConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	StaticDir   string   `toml:"static_dir"`   // Optional pre-built frontend bundle
	CORSOrigins []string `toml:"cors_origins"` // Empty means "*"
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	Path      string `toml:"path"`
	BackupDir string `toml:"backup_dir"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level        string `toml:"level"`
	Format       string `toml:"format"`   // "json" or "text"
	File         string `toml:"file"`     // Rotated log file, stdout when empty
	MaxSize      string `toml:"max_size"` // e.g. "10MB"
	AuditEnabled bool   `toml:"audit_enabled"`
}

// JWTConfig holds settings for token generation.
type JWTConfig struct {
	AccessDuration  string `toml:"access_duration"`  // e.g. "7d", "15m"
	RefreshDuration string `toml:"refresh_duration"` // e.g. "30d"
	Secret          string `toml:"secret"`           // Persisted secret
}

// StreakConfig controls how activity drives the streak counter.
type StreakConfig struct {
	// LegacySameDayIncrement counts every tracker write as a continuation,
	// even when it lands on the day already counted.
	LegacySameDayIncrement bool `toml:"legacy_same_day_increment"`
}

// DashboardConfig holds dashboard aggregation settings.
type DashboardConfig struct {
	WeightHistoryLimit int `toml:"weight_history_limit"`
}

// HousekeepingConfig holds settings for the background maintenance worker.
type HousekeepingConfig struct {
	Interval       string `toml:"interval"`        // how often expired tokens are purged
	BackupInterval string `toml:"backup_interval"` // "0" disables automatic backups
	MaxBackups     int    `toml:"max_backups"`
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the current configuration back to a TOML file.
// Used to persist the auto-generated JWT secret.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trying to save the config: %w", shared.ErrorCreateFile)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("trying to save the config: %w", shared.ErrorEncodeFile)
	}
	return nil
}

// ParseAndValidate processes configuration strings into runtime values.
// It sets defaults if values are missing and parses human-readable durations.
func (c *Config) ParseAndValidate() error {
	c.setDefaults()

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid logging format: %s", c.Logging.Format)
	}

	var err error
	if c.AccessDuration, err = parsePositive("jwt.access_duration", c.JWT.AccessDuration); err != nil {
		return err
	}
	if c.RefreshDuration, err = parsePositive("jwt.refresh_duration", c.JWT.RefreshDuration); err != nil {
		return err
	}
	if c.HousekeepingInterval, err = parsePositive("housekeeping.interval", c.Housekeeping.Interval); err != nil {
		return err
	}
	if c.BackupInterval, err = shared.ParseDuration(c.Housekeeping.BackupInterval); err != nil {
		return fmt.Errorf("invalid housekeeping.backup_interval: %w", err)
	}

	sizeBytes, err := shared.ParseSize(c.Logging.MaxSize)
	if err != nil {
		return fmt.Errorf("invalid logging.max_size: %w", err)
	}
	c.LogMaxSizeMB = int(sizeBytes / (1 << 20))
	if c.LogMaxSizeMB < 1 {
		c.LogMaxSizeMB = 1
	}

	if c.Dashboard.WeightHistoryLimit < 1 {
		return fmt.Errorf("invalid dashboard.weight_history_limit: %d", c.Dashboard.WeightHistoryLimit)
	}
	if c.Housekeeping.MaxBackups < 1 {
		return fmt.Errorf("invalid housekeeping.max_backups: %d", c.Housekeeping.MaxBackups)
	}

	return nil
}

func (c *Config) setDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 3001
	}
	if c.Database.Path == "" {
		c.Database.Path = "riseup.db"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.MaxSize == "" {
		c.Logging.MaxSize = "10MB"
	}
	if c.JWT.AccessDuration == "" {
		c.JWT.AccessDuration = "7d"
	}
	if c.JWT.RefreshDuration == "" {
		c.JWT.RefreshDuration = "30d"
	}
	if c.Dashboard.WeightHistoryLimit == 0 {
		c.Dashboard.WeightHistoryLimit = 10
	}
	if c.Housekeeping.Interval == "" {
		c.Housekeeping.Interval = "1h"
	}
	if c.Housekeeping.BackupInterval == "" {
		c.Housekeeping.BackupInterval = "1d"
	}
	if c.Housekeeping.MaxBackups == 0 {
		c.Housekeeping.MaxBackups = 14
	}
}

func parsePositive(key, value string) (time.Duration, error) {
	d, err := shared.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be greater than zero", key)
	}
	return d, nil
}
