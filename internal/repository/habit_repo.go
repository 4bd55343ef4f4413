// filepath: internal/repository/habit_repo.go
package repository

import (
	"database/sql"
	"errors"
	"riseup/internal/models"

	"github.com/Masterminds/squirrel"
)

// ListHabits returns the habits of a user in creation order.
func (s *Repository) ListHabits(userID int64) ([]models.Habit, error) {
	query, args, err := s.Builder.Select("id", "user_id", "name", "goal", "unit", "emoji", "color").
		From("habits").Where(squirrel.Eq{"user_id": userID}).OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.UserID, &h.Name, &h.Goal, &h.Unit, &h.Emoji, &h.Color); err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// GetHabit returns a habit owned by userID. A habit belonging to another user
// is reported as ErrRecordNotFound.
func (s *Repository) GetHabit(userID, habitID int64) (*models.Habit, error) {
	query, args, err := s.Builder.Select("id", "user_id", "name", "goal", "unit", "emoji", "color").
		From("habits").Where(squirrel.Eq{"id": habitID, "user_id": userID}).ToSql()
	if err != nil {
		return nil, err
	}

	var h models.Habit
	err = s.DB.QueryRow(query, args...).Scan(&h.ID, &h.UserID, &h.Name, &h.Goal, &h.Unit, &h.Emoji, &h.Color)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &h, nil
}

// UpsertHabitEntry writes value and completed for (habit, date), replacing any earlier entry.
func (s *Repository) UpsertHabitEntry(entry models.HabitEntry) error {
	query, args, err := s.Builder.Insert("habit_entries").
		Columns("habit_id", "date", "value", "completed").
		Values(entry.HabitID, entry.Date, entry.Value, entry.Completed).
		Suffix("ON CONFLICT(habit_id, date) DO UPDATE SET value = excluded.value, completed = excluded.completed").
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(query, args...)
	return err
}

// GetHabitEntry returns the entry of a habit for one date.
func (s *Repository) GetHabitEntry(habitID int64, date models.Date) (*models.HabitEntry, error) {
	query, args, err := s.Builder.Select("habit_id", "date", "value", "completed").
		From("habit_entries").Where(squirrel.Eq{"habit_id": habitID, "date": date}).ToSql()
	if err != nil {
		return nil, err
	}

	var e models.HabitEntry
	if err := s.DB.QueryRow(query, args...).Scan(&e.HabitID, &e.Date, &e.Value, &e.Completed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &e, nil
}

// GetHabitProgress returns every habit of the user with its value on date (0 when absent).
func (s *Repository) GetHabitProgress(userID int64, date models.Date) ([]models.HabitProgress, error) {
	query, args, err := s.Builder.
		Select("h.id", "h.name", "h.goal", "h.unit", "h.emoji", "h.color", "COALESCE(he.value, 0)").
		From("habits h").
		LeftJoin("habit_entries he ON he.habit_id = h.id AND he.date = ?", date).
		Where(squirrel.Eq{"h.user_id": userID}).
		OrderBy("h.id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	progress := []models.HabitProgress{}
	for rows.Next() {
		var p models.HabitProgress
		if err := rows.Scan(&p.ID, &p.Name, &p.Goal, &p.Unit, &p.Emoji, &p.Color, &p.Current); err != nil {
			return nil, err
		}
		progress = append(progress, p)
	}
	return progress, rows.Err()
}
