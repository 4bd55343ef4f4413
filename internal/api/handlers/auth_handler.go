// filepath: internal/api/handlers/auth_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"riseup/internal/logging"
	"riseup/internal/models"
	"riseup/internal/repository"
	"riseup/internal/services"
)

// RegisterRequest is the JSON body of POST /register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Message      string `json:"message"`
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginRequest is the JSON body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the token pair and the public user fields.
type LoginResponse struct {
	Token        string             `json:"token"`
	RefreshToken string             `json:"refresh_token"`
	User         models.UserSummary `json:"user"`
}

// @Summary Register a new user
// @Description Creates an account with the five default habits and returns a token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Account details"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or missing fields"
// @Failure 409 {object} ErrorResponse "Username already exists"
// @Failure 500 {object} ErrorResponse
// @Router /register [post]
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	// --- Map DTO to Service Args ---
	user, err := h.User.Register(repository.UserCreateArgs{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Email:    req.Email,
	})
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			respondWithError(w, http.StatusConflict, "Username already exists")
			return
		}
		respondWithServiceError(w, "Register", err)
		return
	}

	accessToken, refreshToken, err := h.Token.GenerateTokens(user)
	if err != nil {
		logging.Log.Errorf("Register: token generation failed for %s: %v", user.Username, err)
		respondWithError(w, http.StatusInternalServerError, "Could not generate tokens")
		return
	}

	if h.Notifications != nil {
		if err := h.Notifications.Notify(r.Context(), user.ID, "Welcome to RiseUp",
			"Start building your daily habits today.", "info"); err != nil {
			logging.Log.Warnf("Register: failed to create welcome notification for %s: %v", user.Username, err)
		}
	}

	h.audit(r, "user.register", user.Username, fmt.Sprintf("User:%d", user.ID), nil)

	respondWithJSON(w, http.StatusCreated, RegisterResponse{
		Message:      "User registered successfully",
		Token:        accessToken,
		RefreshToken: refreshToken,
	})
}

// @Summary Log in
// @Description Verifies username and password and returns a token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Invalid username or password"
// @Failure 500 {object} ErrorResponse
// @Router /login [post]
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Username == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.User.VerifyCredentials(req.Username, req.Password)
	if err != nil {
		// Unknown user and wrong password look the same to the caller.
		if errors.Is(err, services.ErrUnauthorized) || errors.Is(err, services.ErrNotFound) {
			h.audit(r, "user.login_failed", req.Username, "", nil)
			respondWithError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		respondWithServiceError(w, "Login", err)
		return
	}

	accessToken, refreshToken, err := h.Token.GenerateTokens(user)
	if err != nil {
		logging.Log.Errorf("Login: token generation failed for %s: %v", user.Username, err)
		respondWithError(w, http.StatusInternalServerError, "Could not generate tokens")
		return
	}

	h.audit(r, "user.login", user.Username, fmt.Sprintf("User:%d", user.ID), nil)

	respondWithJSON(w, http.StatusOK, LoginResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		User: models.UserSummary{
			ID:       user.ID,
			Username: user.Username,
			Name:     user.Name,
		},
	})
}
