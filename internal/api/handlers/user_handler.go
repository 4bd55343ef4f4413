// filepath: internal/api/handlers/user_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"riseup/internal/logging"
)

// PasswordUpdateRequest is a DTO for updating a user's password.
type PasswordUpdateRequest struct {
	Password string `json:"password"`
}

// @Summary Get current user
// @Description Get the currently authenticated user's details.
// @Tags Users
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} ErrorResponse
// @Router /me [get]
// @Security BearerAuth
func (h *Handlers) GetUserMe(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	logging.Log.Debugf("GetUserMe: Handler started for user '%s' (ID: %d)", user.Username, user.ID)

	// Copy before sanitizing so the cached user keeps its hash.
	safeUser := *user
	safeUser.PasswordHash = ""

	respondWithJSON(w, http.StatusOK, safeUser)
}

// @Summary Update current user's password
// @Description Allows a user to change their own password.
// @Tags Users
// @Accept json
// @Produce json
// @Param password body PasswordUpdateRequest true "Password update request"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /me [patch]
// @Security BearerAuth
func (h *Handlers) UpdateUserMe(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req PasswordUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Password cannot be empty")
		return
	}

	logging.Log.Debugf("UpdateUserMe: User '%s' updating their password.", user.Username)

	if err := h.User.UpdateUserPassword(user.Username, req.Password); err != nil {
		respondWithServiceError(w, "UpdateUserMe", err)
		return
	}

	h.audit(r, "user.password_change", user.Username, fmt.Sprintf("User:%d", user.ID), nil)
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Password updated successfully."})
}
