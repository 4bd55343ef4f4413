// filepath: internal/services/user_service.go
package services

import (
	"errors"
	"fmt"
	"riseup/internal/logging"
	"riseup/internal/models"
	"riseup/internal/repository"
	"riseup/internal/shared"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Compile-time check to ensure interface is implemented
var _ UserService = (*userService)(nil)

// userService handles registration, credential checks and account changes.
type userService struct {
	Repo *repository.Repository
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.Repository) *userService {
	return &userService{Repo: repo}
}

// === Pass-through Repository Methods ===

// GetUserByUsername retrieves a user by their username.
func (s *userService) GetUserByUsername(username string) (*models.User, error) {
	user, err := s.Repo.GetUserByUsername(username)
	return user, mapUserErr(err)
}

// GetUserByID retrieves a user by their ID.
func (s *userService) GetUserByID(id int64) (*models.User, error) {
	user, err := s.Repo.GetUserByID(id)
	return user, mapUserErr(err)
}

// === Business Logic Methods ===

// Register creates a new user. The repository adds the default habits in the
// same transaction.
func (s *userService) Register(args repository.UserCreateArgs) (*models.User, error) {
	args.Username = strings.TrimSpace(args.Username)
	args.Email = strings.TrimSpace(args.Email)
	if args.Username == "" || args.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	if len(args.Username) > 64 {
		return nil, fmt.Errorf("%w: username must be at most 64 characters", ErrValidation)
	}

	logging.Log.Debugf("UserService: Attempting to register user '%s'", args.Username)
	createdUser, err := s.Repo.CreateUser(&args)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		logging.Log.Errorf("UserService: Failed to create user '%s': %v", args.Username, err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return createdUser, nil
}

// VerifyCredentials returns the user when password matches the stored hash.
// Unknown users and wrong passwords yield the same ErrUnauthorized.
func (s *userService) VerifyCredentials(username, password string) (*models.User, error) {
	user, err := s.Repo.GetUserByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, shared.ErrUserNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrUnauthorized
	}
	return user, nil
}

// UpdateUserPassword updates a single user's password (e.g., for /api/me).
func (s *userService) UpdateUserPassword(username, password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}
	return mapUserErr(s.Repo.UpdateUserPassword(username, password))
}

// DeleteUser removes the user and, through cascading foreign keys, everything they own.
func (s *userService) DeleteUser(id int64) error {
	logging.Log.Debugf("UserService: Deleting user ID %d", id)
	if err := s.Repo.DeleteUser(id); err != nil {
		if errors.Is(err, shared.ErrUserNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func mapUserErr(err error) error {
	if errors.Is(err, shared.ErrUserNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}
