package cli

import (
	"github.com/spf13/cobra"
)

type ServeOptions struct {
	Host          string
	Port          int
	StaticDir     string
	JWTSecret     string
	AuditEnabled  bool
	LegacyStreaks bool
}

func NewServeCommand(globalOptions *GlobalOptions) *cobra.Command {
	serveOptions := &ServeOptions{}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(globalOptions)
		},
	}

	serveOptions.registerFlags(serveCmd)

	return serveCmd
}

// The values are read back through viper; the fields only anchor the flags.
func (options *ServeOptions) registerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&options.Host, "host", "", "Interface to listen on. (Env: RISEUP_SERVER_HOST)")
	cmd.Flags().IntVar(&options.Port, "port", 0, "Port for the HTTP server. (Env: RISEUP_SERVER_PORT)")
	cmd.Flags().StringVar(&options.StaticDir, "static-dir", "", "Directory with a pre-built frontend to serve. (Env: RISEUP_SERVER_STATIC_DIR)")
	cmd.Flags().StringVar(&options.JWTSecret, "jwt-secret", "", "Secret key for signing JWTs. (Env: RISEUP_JWT_SECRET)")
	cmd.Flags().BoolVar(&options.AuditEnabled, "audit-enabled", false, "Enable detailed audit logging. (Env: RISEUP_LOGGING_AUDIT_ENABLED=true)")
	cmd.Flags().BoolVar(&options.LegacyStreaks, "legacy-streak", false, "Count every same-day write as a streak continuation. (Env: RISEUP_STREAK_LEGACY_SAME_DAY_INCREMENT=true)")
}
