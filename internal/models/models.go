// filepath: internal/models/models.go
// Package models contains the core data structures for the application.
package models

import "time"

// Info represents general information about the service.
type Info struct {
	ServiceName string    `json:"service_name"`
	Version     string    `json:"version"`
	UptimeSince time.Time `json:"uptime_since"`
}

// User is an account owning habits, tracker records and a streak.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash,omitempty"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserSummary is the public subset of a user returned on login.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Habit is a per-user goal, e.g. "Study 120 min".
type Habit struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"-"`
	Name   string `json:"name"`
	Goal   int    `json:"goal"`
	Unit   string `json:"unit"`
	Emoji  string `json:"emoji"`
	Color  string `json:"color"`
}

// HabitEntry is the progress recorded against a habit on a single date.
type HabitEntry struct {
	HabitID   int64 `json:"habit_id"`
	Date      Date  `json:"date"`
	Value     int   `json:"value"`
	Completed bool  `json:"completed"`
}

// HabitProgress is a habit joined with its value for one date.
type HabitProgress struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Goal    int    `json:"goal"`
	Unit    string `json:"unit"`
	Emoji   string `json:"emoji"`
	Color   string `json:"color"`
	Current int    `json:"current"`
}

// PrayerRecord holds the five daily prayer flags for one user and date.
type PrayerRecord struct {
	Date    Date `json:"date"`
	Fajr    bool `json:"fajr"`
	Dhuhr   bool `json:"dhuhr"`
	Asr     bool `json:"asr"`
	Maghrib bool `json:"maghrib"`
	Isha    bool `json:"isha"`
}

// Completed returns how many prayers are marked done.
func (p PrayerRecord) Completed() int {
	n := 0
	for _, done := range []bool{p.Fajr, p.Dhuhr, p.Asr, p.Maghrib, p.Isha} {
		if done {
			n++
		}
	}
	return n
}

// WaterRecord holds the glasses of water drunk on a date.
type WaterRecord struct {
	Date    Date `json:"date"`
	Glasses int  `json:"glasses"`
	Goal    int  `json:"goal"`
}

// MealRecord holds the four meal flags for one user and date.
type MealRecord struct {
	Date      Date `json:"date"`
	Breakfast bool `json:"breakfast"`
	Lunch     bool `json:"lunch"`
	Snack     bool `json:"snack"`
	Dinner    bool `json:"dinner"`
}

// Completed returns how many meals are marked done.
func (m MealRecord) Completed() int {
	n := 0
	for _, done := range []bool{m.Breakfast, m.Lunch, m.Snack, m.Dinner} {
		if done {
			n++
		}
	}
	return n
}

// WeightEntry is one appended body-weight measurement.
type WeightEntry struct {
	ID         int64    `json:"id"`
	Date       Date     `json:"date"`
	Weight     float64  `json:"weight"`
	GoalWeight *float64 `json:"goalWeight,omitempty"`
}

// WeightPoint is a weight history item as shown on the dashboard.
type WeightPoint struct {
	Date   Date    `json:"date"`
	Weight float64 `json:"weight"`
}

// StudySession is one appended block of study time in minutes.
type StudySession struct {
	ID       int64 `json:"id"`
	Date     Date  `json:"date"`
	Duration int   `json:"duration"`
}

// WorkoutSession is one appended workout in minutes.
type WorkoutSession struct {
	ID       int64  `json:"id"`
	Date     Date   `json:"date"`
	Duration int    `json:"duration"`
	Type     string `json:"type,omitempty"`
}

// Streak is the consecutive-day activity counter of a user.
type Streak struct {
	CurrentStreak  int  `json:"currentStreak"`
	LongestStreak  int  `json:"longestStreak"`
	LastActiveDate Date `json:"lastActiveDate"`
}

// Dashboard aggregates everything the home page shows for one date.
type Dashboard struct {
	Habits        []HabitProgress `json:"habits"`
	Streak        StreakSummary   `json:"streak"`
	WeightHistory []WeightPoint   `json:"weightHistory"`
}

// StreakSummary is the streak as shown on the dashboard.
type StreakSummary struct {
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
}

// Notification is a message shown in the user's inbox.
type Notification struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// TableStats is the row count of a single table.
type TableStats struct {
	Name string `json:"name"`
	Rows int64  `json:"rows"`
}

// DatabaseStats describes the SQLite file on disk.
type DatabaseStats struct {
	Path      string       `json:"path"`
	SizeBytes int64        `json:"size_bytes"`
	Tables    []TableStats `json:"tables"`
}

// HousekeepingReport summarises one housekeeping run.
type HousekeepingReport struct {
	PurgedTokens int64     `json:"purged_tokens"`
	BackupPath   string    `json:"backup_path,omitempty"`
	RanAt        time.Time `json:"ran_at"`
	Message      string    `json:"message"`
}
