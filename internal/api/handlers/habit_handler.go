// filepath: internal/api/handlers/habit_handler.go
package handlers

import (
	"net/http"
	"riseup/internal/models"

	"github.com/gorilla/mux"
)

// HabitEntryRequest is the JSON body of POST /habits/{habitId}.
type HabitEntryRequest struct {
	Value *int        `json:"value"`
	Date  models.Date `json:"date" swaggertype:"string" example:"2024-06-01"`
}

// HabitEntryResponse reports whether the new value reaches the goal.
type HabitEntryResponse struct {
	Success   bool `json:"success"`
	Completed bool `json:"completed"`
}

// @Summary List habits
// @Tags Habits
// @Produce json
// @Success 200 {array} models.Habit
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /habits [get]
func (h *Handlers) ListHabits(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	habits, err := h.Tracker.ListHabits(r.Context(), user.ID)
	if err != nil {
		respondWithServiceError(w, "ListHabits", err)
		return
	}
	if habits == nil {
		habits = []models.Habit{}
	}
	respondWithJSON(w, http.StatusOK, habits)
}

// @Summary Record habit progress
// @Description Sets the value of a habit for a date. Completion is recomputed against the goal.
// @Tags Habits
// @Accept json
// @Produce json
// @Param habitId path int true "Habit ID"
// @Param entry body HabitEntryRequest true "Progress"
// @Success 200 {object} HabitEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Habit not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /habits/{habitId} [post]
func (h *Handlers) UpdateHabitEntry(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	habitID, err := parseIDVar(mux.Vars(r)["habitId"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid habit ID")
		return
	}

	var req HabitEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Value == nil {
		respondWithError(w, http.StatusBadRequest, "Missing required field: value")
		return
	}

	completed, err := h.Tracker.UpdateHabitEntry(r.Context(), user.ID, habitID, h.bodyDate(req.Date), *req.Value)
	if err != nil {
		respondWithServiceError(w, "UpdateHabitEntry", err)
		return
	}
	respondWithJSON(w, http.StatusOK, HabitEntryResponse{Success: true, Completed: completed})
}
