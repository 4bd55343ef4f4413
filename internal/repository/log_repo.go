// filepath: internal/repository/log_repo.go
package repository

import (
	"database/sql"
	"riseup/internal/models"

	"github.com/Masterminds/squirrel"
)

// AddWeight appends a weight measurement and returns its ID.
func (s *Repository) AddWeight(userID int64, entry models.WeightEntry) (int64, error) {
	var goal interface{}
	if entry.GoalWeight != nil {
		goal = *entry.GoalWeight
	}
	query, args, err := s.Builder.Insert("weight_entries").
		Columns("user_id", "date", "weight", "goal_weight").
		Values(userID, entry.Date, entry.Weight, goal).ToSql()
	if err != nil {
		return 0, err
	}
	return s.insert(query, args)
}

// GetWeightHistory returns the most recent weight entries, newest first.
func (s *Repository) GetWeightHistory(userID int64, limit int) ([]models.WeightEntry, error) {
	query, args, err := s.Builder.Select("id", "date", "weight", "goal_weight").
		From("weight_entries").Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC", "id DESC").Limit(uint64(limit)).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.WeightEntry{}
	for rows.Next() {
		var e models.WeightEntry
		var goal sql.NullFloat64
		if err := rows.Scan(&e.ID, &e.Date, &e.Weight, &goal); err != nil {
			return nil, err
		}
		if goal.Valid {
			g := goal.Float64
			e.GoalWeight = &g
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// AddStudySession appends a study session and returns its ID.
func (s *Repository) AddStudySession(userID int64, session models.StudySession) (int64, error) {
	query, args, err := s.Builder.Insert("study_sessions").
		Columns("user_id", "date", "duration").
		Values(userID, session.Date, session.Duration).ToSql()
	if err != nil {
		return 0, err
	}
	return s.insert(query, args)
}

// StudyTotal sums the study minutes of a date.
func (s *Repository) StudyTotal(userID int64, date models.Date) (int, error) {
	return s.sumDuration("study_sessions", userID, date)
}

// AddWorkoutSession appends a workout and returns its ID.
func (s *Repository) AddWorkoutSession(userID int64, session models.WorkoutSession) (int64, error) {
	var kind interface{}
	if session.Type != "" {
		kind = session.Type
	}
	query, args, err := s.Builder.Insert("workout_sessions").
		Columns("user_id", "date", "duration", "type").
		Values(userID, session.Date, session.Duration, kind).ToSql()
	if err != nil {
		return 0, err
	}
	return s.insert(query, args)
}

// WorkoutTotal sums the workout minutes of a date.
func (s *Repository) WorkoutTotal(userID int64, date models.Date) (int, error) {
	return s.sumDuration("workout_sessions", userID, date)
}

func (s *Repository) sumDuration(table string, userID int64, date models.Date) (int, error) {
	query, args, err := s.Builder.Select("COALESCE(SUM(duration), 0)").
		From(table).Where(squirrel.Eq{"user_id": userID, "date": date}).ToSql()
	if err != nil {
		return 0, err
	}
	var total int
	if err := s.DB.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Repository) insert(query string, args []interface{}) (int64, error) {
	res, err := s.DB.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
