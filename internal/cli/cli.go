package cli

import (
	"fmt"
	"os"
	"riseup/internal/config"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is overwritten at build time via -ldflags.
var Version = "1.0.0"

type GlobalOptions struct {
	CfgFilePath string
	EnvFile     string
	LogLevel    string
	DBPath      string

	StartTime time.Time
	Conf      *config.Config

	viper *viper.Viper
}

func NewRootCMD() *cobra.Command {

	globalOptions := &GlobalOptions{StartTime: time.Now()}

	rootCMD := &cobra.Command{
		Use:           "riseup",
		Short:         "RiseUp Daily Bloom",
		Long:          "A habit tracking server: streaks, daily trackers and a dashboard over a REST API.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		// PersistentPreRunE loads the configuration before any command runs.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return globalOptions.loadConfig(cmd)
		},
	}

	// register global flags
	globalOptions.registerFlags(rootCMD)

	// add subcommands
	rootCMD.AddCommand(NewServeCommand(globalOptions))
	rootCMD.AddCommand(NewMigrateCommand(globalOptions))
	rootCMD.AddCommand(NewBackupCommand(globalOptions))
	rootCMD.AddCommand(NewStatsCommand(globalOptions))
	rootCMD.AddCommand(NewSeedCommand(globalOptions))

	return rootCMD
}

func (options *GlobalOptions) registerFlags(cmd *cobra.Command) {
	// flags that can be used for each command
	cmd.PersistentFlags().StringVar(&options.CfgFilePath, "config_path", defaultConfigPath, "Path to the base configuration file. (Env: RISEUP_CONFIG_PATH)")
	cmd.PersistentFlags().StringVar(&options.EnvFile, "env-file", ".env", "Optional dotenv file loaded before reading the environment.")
	cmd.PersistentFlags().StringVar(&options.LogLevel, "log-level", "", "Logging level (trace, debug, info, warn, error). (Env: RISEUP_LOGGING_LEVEL)")
	cmd.PersistentFlags().StringVar(&options.DBPath, "db", "", "Path to the SQLite database file. (Env: RISEUP_DATABASE_PATH)")
}

func Execute() {

	rootCmd := NewRootCMD()

	// Run the command based on os.Args
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
