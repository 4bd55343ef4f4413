// filepath: internal/repository/token_repo.go
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
)

// ErrTokenNotFound is returned when a refresh token is unknown or expired.
var ErrTokenNotFound = errors.New("token not found or expired")

// StoreRefreshToken saves the hash of a refresh token to the database.
// Expiry is stored as unix seconds.
func (s *Repository) StoreRefreshToken(userID int64, tokenHash string, expiry time.Time) error {
	query, args, err := s.Builder.Insert("refresh_tokens").
		Columns("user_id", "token_hash", "expiry").
		Values(userID, tokenHash, expiry.Unix()).ToSql()
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(query, args...)
	return err
}

// ValidateRefreshToken checks if a token hash exists and is not expired, returning the user ID.
func (s *Repository) ValidateRefreshToken(tokenHash string) (int64, error) {
	query, args, err := s.Builder.Select("user_id").From("refresh_tokens").
		Where(squirrel.Eq{"token_hash": tokenHash}).
		Where(squirrel.Gt{"expiry": time.Now().Unix()}).ToSql()
	if err != nil {
		return 0, err
	}

	var userID int64
	if err := s.DB.QueryRow(query, args...).Scan(&userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrTokenNotFound
		}
		return 0, err
	}
	return userID, nil
}

// DeleteRefreshToken removes a specific refresh token hash from the database.
func (s *Repository) DeleteRefreshToken(tokenHash string) error {
	query, args, err := s.Builder.Delete("refresh_tokens").Where(squirrel.Eq{"token_hash": tokenHash}).ToSql()
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(query, args...)
	return err
}

// DeleteAllRefreshTokensForUser revokes all sessions for a specific user.
func (s *Repository) DeleteAllRefreshTokensForUser(userID int64) error {
	query, args, err := s.Builder.Delete("refresh_tokens").Where(squirrel.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(query, args...)
	return err
}

// DeleteExpiredRefreshTokens purges tokens that expired before the given time.
func (s *Repository) DeleteExpiredRefreshTokens(before time.Time) (int64, error) {
	query, args, err := s.Builder.Delete("refresh_tokens").Where(squirrel.LtOrEq{"expiry": before.Unix()}).ToSql()
	if err != nil {
		return 0, err
	}
	res, err := s.DB.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to purge refresh tokens: %w", err)
	}
	return res.RowsAffected()
}
