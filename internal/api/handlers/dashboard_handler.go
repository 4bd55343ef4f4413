// filepath: internal/api/handlers/dashboard_handler.go
package handlers

import (
	"net/http"
)

// @Summary Get the dashboard
// @Description Habits with their progress for the date, the streak and the recent weight history.
// @Tags Dashboard
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} models.Dashboard
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *Handlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	day, err := h.queryDate(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	dashboard, err := h.Dashboard.GetDashboard(r.Context(), user.ID, day)
	if err != nil {
		respondWithServiceError(w, "GetDashboard", err)
		return
	}
	respondWithJSON(w, http.StatusOK, dashboard)
}

// @Summary Get the streak
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.StreakSummary
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /streak [get]
func (h *Handlers) GetStreak(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	summary, err := h.Streak.GetStreak(r.Context(), user.ID)
	if err != nil {
		respondWithServiceError(w, "GetStreak", err)
		return
	}
	respondWithJSON(w, http.StatusOK, summary)
}
