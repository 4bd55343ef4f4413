// filepath: internal/housekeeping/interfaces.go
package housekeeping

import "time"

// TokenStore is the part of the repository the worker needs to purge sessions.
type TokenStore interface {
	DeleteExpiredRefreshTokens(before time.Time) (int64, error)
}

// Backuper creates a database backup and returns its path.
type Backuper interface {
	CreateBackup() (string, error)
}
