// filepath: internal/api/handlers/log_handler.go
package handlers

import (
	"net/http"
	"riseup/internal/models"
	"strconv"
)

// WeightRequest is the JSON body of POST /weight.
type WeightRequest struct {
	Weight     *float64    `json:"weight"`
	GoalWeight *float64    `json:"goalWeight"`
	Date       models.Date `json:"date" swaggertype:"string" example:"2024-06-01"`
}

// StudyRequest is the JSON body of POST /study.
type StudyRequest struct {
	Duration *int        `json:"duration"`
	Date     models.Date `json:"date" swaggertype:"string" example:"2024-06-01"`
}

// StudyResponse carries the study minutes summed over the date.
type StudyResponse struct {
	Success        bool `json:"success,omitempty"`
	TotalStudyTime int  `json:"totalStudyTime"`
}

// WorkoutRequest is the JSON body of POST /workout.
type WorkoutRequest struct {
	Duration *int        `json:"duration"`
	Type     string      `json:"type" example:"running"`
	Date     models.Date `json:"date" swaggertype:"string" example:"2024-06-01"`
}

// WorkoutResponse carries the workout minutes summed over the date.
type WorkoutResponse struct {
	Success          bool `json:"success,omitempty"`
	TotalWorkoutTime int  `json:"totalWorkoutTime"`
}

// @Summary Get weight history
// @Description Newest entries first.
// @Tags Logs
// @Produce json
// @Param limit query int false "Maximum number of entries"
// @Success 200 {array} models.WeightEntry
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /weight [get]
func (h *Handlers) GetWeightHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	history, err := h.Tracker.GetWeightHistory(r.Context(), user.ID, limit)
	if err != nil {
		respondWithServiceError(w, "GetWeightHistory", err)
		return
	}
	if history == nil {
		history = []models.WeightEntry{}
	}
	respondWithJSON(w, http.StatusOK, history)
}

// @Summary Log a weigh-in
// @Tags Logs
// @Accept json
// @Produce json
// @Param weight body WeightRequest true "Weight and optional goal"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /weight [post]
func (h *Handlers) AddWeight(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req WeightRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Weight == nil {
		respondWithError(w, http.StatusBadRequest, "Missing required field: weight")
		return
	}

	if err := h.Tracker.AddWeight(r.Context(), user.ID, h.bodyDate(req.Date), *req.Weight, req.GoalWeight); err != nil {
		respondWithServiceError(w, "AddWeight", err)
		return
	}
	respondWithJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// @Summary Get total study time for a date
// @Tags Logs
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} StudyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /study [get]
func (h *Handlers) GetStudyTotal(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	day, err := h.queryDate(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	total, err := h.Tracker.GetStudyTotal(r.Context(), user.ID, day)
	if err != nil {
		respondWithServiceError(w, "GetStudyTotal", err)
		return
	}
	respondWithJSON(w, http.StatusOK, StudyResponse{TotalStudyTime: total})
}

// @Summary Log a study session
// @Tags Logs
// @Accept json
// @Produce json
// @Param session body StudyRequest true "Duration in minutes"
// @Success 200 {object} StudyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /study [post]
func (h *Handlers) AddStudySession(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req StudyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Duration == nil {
		respondWithError(w, http.StatusBadRequest, "Missing required field: duration")
		return
	}

	total, err := h.Tracker.AddStudySession(r.Context(), user.ID, h.bodyDate(req.Date), *req.Duration)
	if err != nil {
		respondWithServiceError(w, "AddStudySession", err)
		return
	}
	respondWithJSON(w, http.StatusOK, StudyResponse{Success: true, TotalStudyTime: total})
}

// @Summary Get total workout time for a date
// @Tags Logs
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} WorkoutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /workout [get]
func (h *Handlers) GetWorkoutTotal(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	day, err := h.queryDate(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	total, err := h.Tracker.GetWorkoutTotal(r.Context(), user.ID, day)
	if err != nil {
		respondWithServiceError(w, "GetWorkoutTotal", err)
		return
	}
	respondWithJSON(w, http.StatusOK, WorkoutResponse{TotalWorkoutTime: total})
}

// @Summary Log a workout
// @Tags Logs
// @Accept json
// @Produce json
// @Param session body WorkoutRequest true "Duration in minutes and optional type"
// @Success 200 {object} WorkoutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workout [post]
func (h *Handlers) AddWorkoutSession(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req WorkoutRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Duration == nil {
		respondWithError(w, http.StatusBadRequest, "Missing required field: duration")
		return
	}

	total, err := h.Tracker.AddWorkoutSession(r.Context(), user.ID, h.bodyDate(req.Date), *req.Duration, req.Type)
	if err != nil {
		respondWithServiceError(w, "AddWorkoutSession", err)
		return
	}
	respondWithJSON(w, http.StatusOK, WorkoutResponse{Success: true, TotalWorkoutTime: total})
}
