// filepath: internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ParseAndValidate(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := &Config{}
		err := cfg.ParseAndValidate()
		assert.NoError(t, err)
		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 3001, cfg.Server.Port)
		assert.Equal(t, "riseup.db", cfg.Database.Path)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, 7*24*time.Hour, cfg.AccessDuration)
		assert.Equal(t, 30*24*time.Hour, cfg.RefreshDuration)
		assert.Equal(t, time.Hour, cfg.HousekeepingInterval)
		assert.Equal(t, 24*time.Hour, cfg.BackupInterval)
		assert.Equal(t, 10, cfg.Dashboard.WeightHistoryLimit)
		assert.Equal(t, 14, cfg.Housekeeping.MaxBackups)
		assert.Equal(t, 10, cfg.LogMaxSizeMB)
		assert.False(t, cfg.Streak.LegacySameDayIncrement)
	})

	t.Run("Custom Durations", func(t *testing.T) {
		cfg := &Config{
			JWT:          JWTConfig{AccessDuration: "15m", RefreshDuration: "2w"},
			Housekeeping: HousekeepingConfig{Interval: "30m", BackupInterval: "0"},
		}
		err := cfg.ParseAndValidate()
		assert.NoError(t, err)
		assert.Equal(t, 15*time.Minute, cfg.AccessDuration)
		assert.Equal(t, 14*24*time.Hour, cfg.RefreshDuration)
		assert.Equal(t, 30*time.Minute, cfg.HousekeepingInterval)
		assert.Equal(t, time.Duration(0), cfg.BackupInterval, "0 disables automatic backups")
	})

	t.Run("Invalid Values", func(t *testing.T) {
		tests := []struct {
			name    string
			cfg     Config
			message string
		}{
			{"Bad access duration", Config{JWT: JWTConfig{AccessDuration: "soon"}}, "invalid jwt.access_duration"},
			{"Zero refresh duration", Config{JWT: JWTConfig{RefreshDuration: "0"}}, "invalid jwt.refresh_duration"},
			{"Bad port", Config{Server: ServerConfig{Port: 70000}}, "invalid port"},
			{"Bad log format", Config{Logging: LoggingConfig{Format: "xml"}}, "invalid logging format"},
			{"Bad log size", Config{Logging: LoggingConfig{MaxSize: "huge"}}, "invalid logging.max_size"},
			{"Negative history", Config{Dashboard: DashboardConfig{WeightHistoryLimit: -1}}, "invalid dashboard.weight_history_limit"},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				cfg := tc.cfg
				err := cfg.ParseAndValidate()
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.message)
			})
		}
	})
}

func TestLoadAndSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := []byte(`
[server]
port = 6060
cors_origins = ["http://localhost:5173"]

[streak]
legacy_same_day_increment = true

[jwt]
secret = "from-file"
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSOrigins)
	assert.True(t, cfg.Streak.LegacySameDayIncrement)
	assert.Equal(t, "from-file", cfg.JWT.Secret)

	cfg.JWT.Secret = "rotated"
	cfg.JWTSecret = "runtime-only"
	require.NoError(t, SaveConfig(path, cfg))

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "rotated", reloaded.JWT.Secret)
	assert.Empty(t, reloaded.JWTSecret, "runtime fields must not be persisted")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
