// filepath: internal/cli/config_loader.go
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"riseup/internal/config"
	"riseup/internal/logging"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "RISEUP"
	defaultConfigPath = "config.toml"
)

// flagKeys binds command line flags to configuration keys. Flags that a
// command does not define are skipped.
var flagKeys = map[string]string{
	"log-level":     "logging.level",
	"db":            "database.path",
	"host":          "server.host",
	"port":          "server.port",
	"static-dir":    "server.static_dir",
	"jwt-secret":    "jwt.secret",
	"audit-enabled": "logging.audit_enabled",
	"legacy-streak": "streak.legacy_same_day_increment",
	"backup-dir":    "database.backup_dir",
}

// loadConfig layers the TOML file, the environment (including a dotenv
// file) and command line flags, in increasing order of precedence.
func (options *GlobalOptions) loadConfig(cmd *cobra.Command) error {
	// 1. A dotenv file only fills variables that are not already set.
	if options.EnvFile != "" {
		if err := godotenv.Load(options.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", options.EnvFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	options.viper = v

	// 2. Config path: flag, then environment, then default.
	if !cmd.Flags().Changed("config_path") {
		if envPath := os.Getenv(envPrefix + "_CONFIG_PATH"); envPath != "" {
			options.CfgFilePath = envPath
		}
	}

	cfg, err := config.LoadConfig(options.CfgFilePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Rely on defaults, env and flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", options.CfgFilePath, err)
		}
	}

	// 3. Apply Overrides (Env Vars and CLI Flags)
	applyOverrides(v, cfg)

	// 4. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 5. Initialize Logging
	logging.Init(logging.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		File:      cfg.Logging.File,
		MaxSizeMB: cfg.LogMaxSizeMB,
	})

	options.Conf = cfg
	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for flagName, key := range flagKeys {
		if flag := flags.Lookup(flagName); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", flagName, err)
			}
		}
	}
	return nil
}

// applyOverrides copies every key set in the environment or by a flag onto c.
func applyOverrides(v *viper.Viper, c *config.Config) {
	str := func(key string, dst *string) {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}
	integer := func(key string, dst *int) {
		if v.IsSet(key) {
			*dst = v.GetInt(key)
		}
	}
	boolean := func(key string, dst *bool) {
		if v.IsSet(key) {
			*dst = v.GetBool(key)
		}
	}

	str("server.host", &c.Server.Host)
	integer("server.port", &c.Server.Port)
	str("server.static_dir", &c.Server.StaticDir)
	if v.IsSet("server.cors_origins") {
		c.Server.CORSOrigins = splitList(v.GetString("server.cors_origins"))
	}

	str("database.path", &c.Database.Path)
	str("database.backup_dir", &c.Database.BackupDir)

	str("logging.level", &c.Logging.Level)
	str("logging.format", &c.Logging.Format)
	str("logging.file", &c.Logging.File)
	str("logging.max_size", &c.Logging.MaxSize)
	boolean("logging.audit_enabled", &c.Logging.AuditEnabled)

	// A secret from env or flag is used for this run only and never persisted.
	str("jwt.secret", &c.JWTSecret)
	str("jwt.access_duration", &c.JWT.AccessDuration)
	str("jwt.refresh_duration", &c.JWT.RefreshDuration)

	boolean("streak.legacy_same_day_increment", &c.Streak.LegacySameDayIncrement)
	integer("dashboard.weight_history_limit", &c.Dashboard.WeightHistoryLimit)

	str("housekeeping.interval", &c.Housekeeping.Interval)
	str("housekeeping.backup_interval", &c.Housekeeping.BackupInterval)
	integer("housekeeping.max_backups", &c.Housekeeping.MaxBackups)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
