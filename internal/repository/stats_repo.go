// filepath: internal/repository/stats_repo.go
package repository

import (
	"fmt"
	"os"
	"riseup/internal/models"
)

// GetDatabaseStats reports the row count of every application table and the size of the database files.
func (s *Repository) GetDatabaseStats() (*models.DatabaseStats, error) {
	rows, err := s.DB.Query("SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		return nil, err
	}
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return nil, err
		}
		names = append(names, name)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stats := &models.DatabaseStats{Path: s.Path, Tables: []models.TableStats{}}
	for _, name := range names {
		var count int64
		// Table names come from sqlite_master, not from the caller.
		if err := s.DB.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %q", name)).Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to count rows of %s: %w", name, err)
		}
		stats.Tables = append(stats.Tables, models.TableStats{Name: name, Rows: count})
	}

	// WAL mode keeps recent pages next to the main file.
	for _, file := range []string{s.Path, s.Path + "-wal"} {
		if info, err := os.Stat(file); err == nil {
			stats.SizeBytes += info.Size()
		}
	}
	return stats, nil
}
