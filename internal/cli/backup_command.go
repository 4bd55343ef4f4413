package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"riseup/internal/backup"
	"riseup/internal/logging"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type BackupOptions struct {
	BackupDir string
}

func NewBackupCommand(globalOptions *GlobalOptions) *cobra.Command {
	backupOptions := &BackupOptions{}

	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Create, list and restore database backups",
	}
	backupCmd.PersistentFlags().StringVar(&backupOptions.BackupDir, "backup-dir", "", "Directory holding backups. (Env: RISEUP_DATABASE_BACKUP_DIR)")

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Write a new backup of the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := newBackupManager(globalOptions).CreateBackup()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backup created: %s\n", path)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available backups, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listBackups(cmd.OutOrStdout(), newBackupManager(globalOptions))
		},
	}

	restoreCmd := &cobra.Command{
		Use:   "restore <backup-file>",
		Short: "Replace the database with a backup",
		Long:  "Restores the database from a backup file. The current database is backed up first. Stop the server before restoring.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newBackupManager(globalOptions).RestoreBackup(args[0]); err != nil {
				return err
			}
			logging.Log.Infof("Database %s restored from %s", globalOptions.Conf.Database.Path, args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Database restored from %s\n", args[0])
			return nil
		},
	}

	backupCmd.AddCommand(createCmd)
	backupCmd.AddCommand(listCmd)
	backupCmd.AddCommand(restoreCmd)

	return backupCmd
}

func newBackupManager(globalOptions *GlobalOptions) *backup.Manager {
	cfg := globalOptions.Conf
	return backup.NewManager(cfg.Database.Path, cfg.Database.BackupDir, cfg.Housekeeping.MaxBackups)
}

func listBackups(out io.Writer, manager *backup.Manager) error {
	backups, err := manager.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Fprintf(out, "No backups found in %s\n", manager.Dir())
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CREATED\tSIZE\tPATH")
	for _, b := range backups {
		fmt.Fprintf(w, "%s\t%d\t%s\n", b.Timestamp.Format("2006-01-02 15:04:05"), b.Size, b.Path)
	}
	return w.Flush()
}

type StatsOptions struct {
	JSON bool
}

func NewStatsCommand(globalOptions *GlobalOptions) *cobra.Command {
	statsOptions := &StatsOptions{}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show database size and row counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.OutOrStdout(), globalOptions, statsOptions)
		},
	}
	statsCmd.Flags().BoolVar(&statsOptions.JSON, "json", false, "Print the statistics as JSON.")

	return statsCmd
}

func runStats(out io.Writer, globalOptions *GlobalOptions, statsOptions *StatsOptions) error {
	repo, err := openRepository(globalOptions.Conf)
	if err != nil {
		return err
	}
	defer repo.Close()

	stats, err := repo.GetDatabaseStats()
	if err != nil {
		return fmt.Errorf("failed to read database statistics: %w", err)
	}

	if statsOptions.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	fmt.Fprintf(out, "Database: %s\nSize:     %d bytes\n\n", stats.Path, stats.SizeBytes)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TABLE\tROWS")
	for _, t := range stats.Tables {
		fmt.Fprintf(w, "%s\t%d\n", t.Name, t.Rows)
	}
	return w.Flush()
}
