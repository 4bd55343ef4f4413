// filepath: internal/repository/streak_repo.go
package repository

import (
	"database/sql"
	"errors"
	"riseup/internal/models"

	"github.com/Masterminds/squirrel"
)

// GetStreak returns the stored streak of a user or ErrRecordNotFound.
func (s *Repository) GetStreak(userID int64) (*models.Streak, error) {
	query, args, err := s.Builder.Select("current_streak", "longest_streak", "last_active_date").
		From("streaks").Where(squirrel.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return nil, err
	}

	var st models.Streak
	if err := s.DB.QueryRow(query, args...).Scan(&st.CurrentStreak, &st.LongestStreak, &st.LastActiveDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &st, nil
}

// SaveStreak inserts or replaces the streak row of a user.
func (s *Repository) SaveStreak(userID int64, st models.Streak) error {
	query, args, err := s.Builder.Insert("streaks").
		Columns("user_id", "current_streak", "longest_streak", "last_active_date").
		Values(userID, st.CurrentStreak, st.LongestStreak, st.LastActiveDate).
		Suffix("ON CONFLICT(user_id) DO UPDATE SET current_streak = excluded.current_streak, " +
			"longest_streak = excluded.longest_streak, last_active_date = excluded.last_active_date").
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(query, args...)
	return err
}
