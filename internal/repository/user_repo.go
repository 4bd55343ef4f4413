// filepath: internal/repository/user_repo.go
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"riseup/internal/logging"
	"riseup/internal/models"
	"riseup/internal/shared"
	"time"

	"github.com/Masterminds/squirrel"
	"golang.org/x/crypto/bcrypt"
)

// ErrUserExists is returned when trying to create a user whose username or email is taken.
var ErrUserExists = shared.ErrUserExists

// UserCreateArgs is a struct used for creating users in the database layer.
// It is separate from the models.User to include the plaintext password for creation.
type UserCreateArgs struct {
	Username string
	Password string
	Name     string
	Email    string
}

// DefaultHabits are created for every new user, in this order.
var DefaultHabits = []models.Habit{
	{Name: "Study", Goal: 120, Unit: "min", Emoji: "📖", Color: "from-blue-500 to-indigo-600"},
	{Name: "Workout", Goal: 30, Unit: "min", Emoji: "💪", Color: "from-green-500 to-emerald-600"},
	{Name: "Prayers", Goal: 5, Unit: "", Emoji: "🕋", Color: "from-purple-500 to-violet-600"},
	{Name: "Water", Goal: 8, Unit: "glasses", Emoji: "💧", Color: "from-cyan-500 to-blue-500"},
	{Name: "Meals", Goal: 4, Unit: "", Emoji: "🍽️", Color: "from-orange-500 to-red-500"},
}

var userColumns = []string{"id", "username", "password_hash", "name", "COALESCE(email, '')", "created_at"}

func scanUser(row squirrel.RowScanner) (*models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Name, &user.Email, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Repository) cacheUser(user *models.User) {
	s.Cache.Set(fmt.Sprintf("user_by_name_%s", user.Username), user, 5*time.Minute)
	s.Cache.Set(fmt.Sprintf("user_by_id_%d", user.ID), user, 5*time.Minute)
}

func (s *Repository) invalidateUser(user *models.User) {
	logging.Log.Debugf("Invalidating cache for user '%s' (ID: %d)", user.Username, user.ID)
	s.Cache.Delete(fmt.Sprintf("user_by_name_%s", user.Username))
	s.Cache.Delete(fmt.Sprintf("user_by_id_%d", user.ID))
}

// GetUserByUsername retrieves a user by their username, using a cache for performance.
func (s *Repository) GetUserByUsername(username string) (*models.User, error) {
	cacheKey := fmt.Sprintf("user_by_name_%s", username)
	if user, found := s.Cache.Get(cacheKey); found {
		return user.(*models.User), nil
	}

	logging.Log.Debugf("GetUserByUsername: CACHE MISS for '%s'. Querying DB.", username)
	query, args, err := s.Builder.Select(userColumns...).From("users").
		Where(squirrel.Eq{"username": username}).ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(s.DB.QueryRow(query, args...))
	if err != nil {
		return nil, err
	}

	s.cacheUser(user)
	return user, nil
}

// GetUserByID retrieves a user by their ID, using a cache for performance.
func (s *Repository) GetUserByID(id int64) (*models.User, error) {
	cacheKey := fmt.Sprintf("user_by_id_%d", id)
	if user, found := s.Cache.Get(cacheKey); found {
		return user.(*models.User), nil
	}

	logging.Log.Debugf("GetUserByID: CACHE MISS for ID %d. Querying DB.", id)
	query, args, err := s.Builder.Select(userColumns...).From("users").
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(s.DB.QueryRow(query, args...))
	if err != nil {
		return nil, err
	}

	s.cacheUser(user)
	return user, nil
}

// UserExists checks if a user with the given username exists.
func (s *Repository) UserExists(username string) (bool, error) {
	_, err := s.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, shared.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateUser creates a new user together with the default habits in one transaction.
func (s *Repository) CreateUser(args *UserCreateArgs) (*models.User, error) {
	logging.Log.Debugf("CreateUser: Hashing password for '%s'", args.Username)
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(args.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	tx, err := s.BeginTx()
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var email interface{}
	if args.Email != "" {
		email = args.Email
	}

	query, qargs, err := s.Builder.Insert("users").
		Columns("username", "password_hash", "name", "email").
		Values(args.Username, string(hashedPassword), args.Name, email).ToSql()
	if err != nil {
		return nil, err
	}

	result, err := tx.Exec(query, qargs...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	if err := tx.createDefaultHabits(id); err != nil {
		return nil, fmt.Errorf("failed to create default habits: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	logging.Log.Debugf("CreateUser: User '%s' created with ID %d", args.Username, id)
	return s.GetUserByID(id)
}

// createDefaultHabits inserts DefaultHabits for a freshly created user.
func (tx *Tx) createDefaultHabits(userID int64) error {
	insert := tx.Builder.Insert("habits").Columns("user_id", "name", "goal", "unit", "emoji", "color")
	for _, h := range DefaultHabits {
		insert = insert.Values(userID, h.Name, h.Goal, h.Unit, h.Emoji, h.Color)
	}
	query, args, err := insert.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(query, args...)
	return err
}

// UpdateUserPassword updates a single user's password.
func (s *Repository) UpdateUserPassword(username, password string) error {
	user, err := s.GetUserByUsername(username)
	if err != nil {
		return err
	}

	logging.Log.Debugf("UpdateUserPassword: Hashing new password for user '%s'", username)
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	query, args, err := s.Builder.Update("users").
		Set("password_hash", string(hashedPassword)).
		Where(squirrel.Eq{"id": user.ID}).ToSql()
	if err != nil {
		return err
	}
	if _, err := s.DB.Exec(query, args...); err != nil {
		return err
	}

	s.invalidateUser(user)
	return nil
}

// DeleteUser deletes a user by their ID. Every owned row is removed by cascade.
func (s *Repository) DeleteUser(id int64) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}

	query, args, err := s.Builder.Delete("users").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	if _, err := s.DB.Exec(query, args...); err != nil {
		return err
	}

	s.invalidateUser(user)
	return nil
}
