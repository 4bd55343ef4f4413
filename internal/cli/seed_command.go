package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"riseup/internal/models"
	"riseup/internal/repository"
	"riseup/internal/services"
	"time"

	"github.com/spf13/cobra"
)

type SeedOptions struct {
	Username string
	Password string
	Days     int
	Seed     uint64
}

func NewSeedCommand(globalOptions *GlobalOptions) *cobra.Command {
	seedOptions := &SeedOptions{}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the database with a demo user and random history",
		Long: `Creates a demo user (testuser / password123 by default) and records random
habit progress, prayers, water, meals, weight, study and workout sessions for
the past days. The same --seed always produces the same data.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepository(globalOptions.Conf)
			if err != nil {
				return err
			}
			defer repo.Close()

			users := services.NewUserService(repo)
			notifications := services.NewNotificationService(repo)
			streaks := services.NewStreakService(repo, globalOptions.Conf, notifications)
			tracker := services.NewTrackerService(repo, streaks, globalOptions.Conf)

			return seedDatabase(cmd.Context(), cmd.OutOrStdout(), users, tracker, seedOptions, time.Now())
		},
	}

	seedCmd.Flags().StringVar(&seedOptions.Username, "username", "testuser", "Username of the demo user.")
	seedCmd.Flags().StringVar(&seedOptions.Password, "password", "password123", "Password of the demo user.")
	seedCmd.Flags().IntVar(&seedOptions.Days, "days", 7, "Number of days of history ending today.")
	seedCmd.Flags().Uint64Var(&seedOptions.Seed, "seed", 1, "Random seed.")

	return seedCmd
}

var workoutTypes = []string{"cardio", "strength", "flexibility", "sports"}

// seedDatabase creates (or reuses) the demo user and writes one day of
// random activity per day, oldest first so the streak builds up.
func seedDatabase(ctx context.Context, out io.Writer, users services.UserService, tracker services.TrackerService, opts *SeedOptions, now time.Time) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Days < 1 {
		return fmt.Errorf("%w: --days must be at least 1", services.ErrValidation)
	}

	user, err := users.Register(repository.UserCreateArgs{
		Username: opts.Username,
		Password: opts.Password,
		Name:     "Test User",
		Email:    opts.Username + "@example.com",
	})
	switch {
	case errors.Is(err, services.ErrConflict):
		if user, err = users.GetUserByUsername(opts.Username); err != nil {
			return fmt.Errorf("failed to load existing user %s: %w", opts.Username, err)
		}
		fmt.Fprintf(out, "Reusing existing user %s (ID %d)\n", user.Username, user.ID)
	case err != nil:
		return fmt.Errorf("failed to create user: %w", err)
	default:
		fmt.Fprintf(out, "Created test user %s with ID %d\n", user.Username, user.ID)
	}

	habits, err := tracker.ListHabits(ctx, user.ID)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	today := models.NewDate(now)

	for i := opts.Days - 1; i >= 0; i-- {
		day := today.AddDays(-i)
		if err := seedDay(ctx, rng, tracker, user.ID, habits, day); err != nil {
			return fmt.Errorf("failed to seed %s: %w", day, err)
		}
	}

	fmt.Fprintf(out, "Seeded %d days of history.\n\nTest user credentials:\nUsername: %s\nPassword: %s\n",
		opts.Days, opts.Username, opts.Password)
	return nil
}

func seedDay(ctx context.Context, rng *rand.Rand, tracker services.TrackerService, userID int64, habits []models.Habit, day models.Date) error {
	for _, habit := range habits {
		if _, err := tracker.UpdateHabitEntry(ctx, userID, habit.ID, day, rng.IntN(habit.Goal+1)); err != nil {
			return err
		}
	}

	for _, prayer := range models.Prayers {
		if err := tracker.UpdatePrayer(ctx, userID, day, prayer, rng.Float64() > 0.3); err != nil {
			return err
		}
	}

	if err := tracker.UpdateWater(ctx, userID, day, rng.IntN(9)); err != nil {
		return err
	}

	for _, meal := range models.Meals {
		if err := tracker.UpdateMeal(ctx, userID, day, meal, rng.Float64() > 0.2); err != nil {
			return err
		}
	}

	// One decimal place, between 40 and 42 kg.
	weight := float64(400+rng.IntN(21)) / 10
	goal := 55.0
	if err := tracker.AddWeight(ctx, userID, day, weight, &goal); err != nil {
		return err
	}

	if rng.Float64() > 0.3 {
		if _, err := tracker.AddStudySession(ctx, userID, day, 25+rng.IntN(120)); err != nil {
			return err
		}
	}

	if rng.Float64() > 0.5 {
		kind := workoutTypes[rng.IntN(len(workoutTypes))]
		if _, err := tracker.AddWorkoutSession(ctx, userID, day, 10+rng.IntN(30), kind); err != nil {
			return err
		}
	}
	return nil
}
