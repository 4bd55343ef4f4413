// filepath: internal/services/streak_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"riseup/internal/config"
	"riseup/internal/logging"
	"riseup/internal/models"
	"riseup/internal/repository"
	"riseup/internal/streak"
)

var _ StreakService = (*streakService)(nil)

// streakService loads, advances and stores a user's streak. The
// read-modify-write is not locked; concurrent activity of one user races and
// the last write wins.
type streakService struct {
	Repo     *repository.Repository
	Policy   streak.Policy
	Notifier NotificationService
}

// NewStreakService creates a new StreakService. notifier may be nil.
func NewStreakService(repo *repository.Repository, cfg *config.Config, notifier NotificationService) *streakService {
	policy := streak.Strict
	if cfg != nil && cfg.Streak.LegacySameDayIncrement {
		policy = streak.Legacy
	}
	return &streakService{Repo: repo, Policy: policy, Notifier: notifier}
}

// RecordActivity advances the streak of userID for activity on day.
func (s *streakService) RecordActivity(ctx context.Context, userID int64, day models.Date) (models.StreakSummary, error) {
	prev, err := s.load(userID)
	if err != nil {
		return models.StreakSummary{}, err
	}

	next, changed := streak.Advance(prev, day, s.Policy)
	if !changed {
		return summarize(next), nil
	}

	err = s.Repo.SaveStreak(userID, models.Streak{
		CurrentStreak:  next.Current,
		LongestStreak:  next.Longest,
		LastActiveDate: next.LastActive,
	})
	if err != nil {
		return models.StreakSummary{}, fmt.Errorf("failed to save streak: %w", err)
	}
	logging.Log.Debugf("StreakService: user %d streak now %d (longest %d)", userID, next.Current, next.Longest)

	before := 0
	if prev != nil {
		before = prev.Current
	}
	if m := streak.ReachedMilestone(before, next.Current); m > 0 && s.Notifier != nil {
		msg := fmt.Sprintf("You have been active %d days in a row. Keep it up!", m)
		if err := s.Notifier.Notify(ctx, userID, fmt.Sprintf("%d day streak", m), msg, "streak"); err != nil {
			logging.Log.Warnf("StreakService: failed to send milestone notification to user %d: %v", userID, err)
		}
	}

	return summarize(next), nil
}

// GetStreak returns the stored streak, {0, 0} for a user without one.
func (s *streakService) GetStreak(ctx context.Context, userID int64) (models.StreakSummary, error) {
	prev, err := s.load(userID)
	if err != nil {
		return models.StreakSummary{}, err
	}
	if prev == nil {
		return models.StreakSummary{}, nil
	}
	return summarize(*prev), nil
}

func (s *streakService) load(userID int64) (*streak.State, error) {
	st, err := s.Repo.GetStreak(userID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load streak: %w", err)
	}
	return &streak.State{Current: st.CurrentStreak, Longest: st.LongestStreak, LastActive: st.LastActiveDate}, nil
}

func summarize(st streak.State) models.StreakSummary {
	return models.StreakSummary{CurrentStreak: st.Current, LongestStreak: st.Longest}
}
