// filepath: internal/repository/tracker_repo.go
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"riseup/internal/models"

	"github.com/Masterminds/squirrel"
)

// Column names are never taken from user input; they come from these tables only.
var prayerColumns = map[models.Prayer]string{
	models.Fajr:    "fajr",
	models.Dhuhr:   "dhuhr",
	models.Asr:     "asr",
	models.Maghrib: "maghrib",
	models.Isha:    "isha",
}

var mealColumns = map[models.Meal]string{
	models.Breakfast: "breakfast",
	models.Lunch:     "lunch",
	models.Snack:     "snack",
	models.Dinner:    "dinner",
}

// upsertFlag sets one boolean column of a per-(user, date) table, leaving the other columns untouched.
func (s *Repository) upsertFlag(table, column string, userID int64, date models.Date, value bool) error {
	query, args, err := s.Builder.Insert(table).
		Columns("user_id", "date", column).
		Values(userID, date, value).
		Suffix(fmt.Sprintf("ON CONFLICT(user_id, date) DO UPDATE SET %s = excluded.%s", column, column)).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(query, args...)
	return err
}

// SetPrayer marks a single prayer for a date.
func (s *Repository) SetPrayer(userID int64, date models.Date, prayer models.Prayer, completed bool) error {
	column, ok := prayerColumns[prayer]
	if !ok {
		return fmt.Errorf("unknown prayer %d", int(prayer))
	}
	return s.upsertFlag("prayers", column, userID, date, completed)
}

// GetPrayers returns the prayer record of a date, all false when nothing was recorded.
func (s *Repository) GetPrayers(userID int64, date models.Date) (models.PrayerRecord, error) {
	record := models.PrayerRecord{Date: date}
	query, args, err := s.Builder.Select("fajr", "dhuhr", "asr", "maghrib", "isha").
		From("prayers").Where(squirrel.Eq{"user_id": userID, "date": date}).ToSql()
	if err != nil {
		return record, err
	}

	err = s.DB.QueryRow(query, args...).Scan(&record.Fajr, &record.Dhuhr, &record.Asr, &record.Maghrib, &record.Isha)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return record, err
	}
	return record, nil
}

// SetMeal marks a single meal for a date.
func (s *Repository) SetMeal(userID int64, date models.Date, meal models.Meal, completed bool) error {
	column, ok := mealColumns[meal]
	if !ok {
		return fmt.Errorf("unknown meal %d", int(meal))
	}
	return s.upsertFlag("meals", column, userID, date, completed)
}

// GetMeals returns the meal record of a date, all false when nothing was recorded.
func (s *Repository) GetMeals(userID int64, date models.Date) (models.MealRecord, error) {
	record := models.MealRecord{Date: date}
	query, args, err := s.Builder.Select("breakfast", "lunch", "snack", "dinner").
		From("meals").Where(squirrel.Eq{"user_id": userID, "date": date}).ToSql()
	if err != nil {
		return record, err
	}

	err = s.DB.QueryRow(query, args...).Scan(&record.Breakfast, &record.Lunch, &record.Snack, &record.Dinner)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return record, err
	}
	return record, nil
}

// SetWater replaces the glasses count of a date.
func (s *Repository) SetWater(userID int64, date models.Date, glasses int) error {
	query, args, err := s.Builder.Insert("water_intake").
		Columns("user_id", "date", "glasses").
		Values(userID, date, glasses).
		Suffix("ON CONFLICT(user_id, date) DO UPDATE SET glasses = excluded.glasses").
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(query, args...)
	return err
}

// DefaultWaterGoal is the goal reported for dates without a water row.
const DefaultWaterGoal = 8

// GetWater returns the water record of a date.
func (s *Repository) GetWater(userID int64, date models.Date) (models.WaterRecord, error) {
	record := models.WaterRecord{Date: date, Goal: DefaultWaterGoal}
	query, args, err := s.Builder.Select("glasses", "goal").
		From("water_intake").Where(squirrel.Eq{"user_id": userID, "date": date}).ToSql()
	if err != nil {
		return record, err
	}

	err = s.DB.QueryRow(query, args...).Scan(&record.Glasses, &record.Goal)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return record, err
	}
	return record, nil
}
