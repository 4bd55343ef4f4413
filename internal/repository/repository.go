// filepath: internal/repository/repository.go
package repository

import (
	"database/sql"
	"fmt"
	"riseup/internal/config"
	"riseup/internal/logging"
	"riseup/internal/shared"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/patrickmn/go-cache"
	_ "modernc.org/sqlite" // SQLite driver
)

// ErrRecordNotFound is returned when a lookup matches no row owned by the caller.
var ErrRecordNotFound = shared.ErrRecordNotFound

// Repository is the SQLite backed store for every entity of the application.
type Repository struct {
	DB      *sql.DB
	Cache   *cache.Cache
	Builder squirrel.StatementBuilderType // SQL Query Builder
	Path    string
}

// Tx is a wrapper around *sql.Tx that provides transactional database operations.
type Tx struct {
	*sql.Tx
	Builder squirrel.StatementBuilderType
}

// NewRepository opens (or creates) the SQLite database configured in cfg.
// Foreign keys are enforced per connection so deletes cascade to child rows.
func NewRepository(cfg *config.Config) (*Repository, error) {
	path := cfg.Database.Path
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", path, err)
	}

	logging.Log.Debugf("Repository: opened SQLite database at %s", path)

	return &Repository{
		DB:      db,
		Cache:   cache.New(5*time.Minute, 10*time.Minute),
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		Path:    path,
	}, nil
}

// Close closes the underlying database handle.
func (s *Repository) Close() error {
	return s.DB.Close()
}

// BeginTx starts a new transaction.
func (s *Repository) BeginTx() (*Tx, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, err
	}
	return &Tx{Tx: tx, Builder: s.Builder}, nil
}

// isUniqueViolation reports whether err was raised by a UNIQUE constraint.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
