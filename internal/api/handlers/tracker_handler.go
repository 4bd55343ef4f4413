// filepath: internal/api/handlers/tracker_handler.go
package handlers

import (
	"net/http"
	"riseup/internal/models"
)

// SuccessResponse acknowledges a tracker write.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// PrayerRequest is the JSON body of POST /prayers.
type PrayerRequest struct {
	Prayer    string      `json:"prayer" example:"fajr"`
	Completed bool        `json:"completed"`
	Date      models.Date `json:"date" swaggertype:"string" example:"2024-06-01"`
}

// WaterRequest is the JSON body of POST /water.
type WaterRequest struct {
	Glasses *int        `json:"glasses"`
	Date    models.Date `json:"date" swaggertype:"string" example:"2024-06-01"`
}

// MealRequest is the JSON body of POST /meals.
type MealRequest struct {
	Meal      string      `json:"meal" example:"lunch"`
	Completed bool        `json:"completed"`
	Date      models.Date `json:"date" swaggertype:"string" example:"2024-06-01"`
}

// @Summary Get prayers for a date
// @Tags Trackers
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} models.PrayerRecord
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /prayers [get]
func (h *Handlers) GetPrayers(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	day, err := h.queryDate(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.Tracker.GetPrayers(r.Context(), user.ID, day)
	if err != nil {
		respondWithServiceError(w, "GetPrayers", err)
		return
	}
	respondWithJSON(w, http.StatusOK, record)
}

// @Summary Mark a prayer
// @Tags Trackers
// @Accept json
// @Produce json
// @Param prayer body PrayerRequest true "fajr, dhuhr, asr, maghrib or isha"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /prayers [post]
func (h *Handlers) UpdatePrayer(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req PrayerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	prayer, err := models.ParsePrayer(req.Prayer)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Tracker.UpdatePrayer(r.Context(), user.ID, h.bodyDate(req.Date), prayer, req.Completed); err != nil {
		respondWithServiceError(w, "UpdatePrayer", err)
		return
	}
	respondWithJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// @Summary Get water intake for a date
// @Tags Trackers
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} models.WaterRecord
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /water [get]
func (h *Handlers) GetWater(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	day, err := h.queryDate(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.Tracker.GetWater(r.Context(), user.ID, day)
	if err != nil {
		respondWithServiceError(w, "GetWater", err)
		return
	}
	respondWithJSON(w, http.StatusOK, record)
}

// @Summary Set water intake
// @Description Replaces the number of glasses for the date.
// @Tags Trackers
// @Accept json
// @Produce json
// @Param water body WaterRequest true "Glasses drunk"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /water [post]
func (h *Handlers) UpdateWater(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req WaterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Glasses == nil {
		respondWithError(w, http.StatusBadRequest, "Missing required field: glasses")
		return
	}

	if err := h.Tracker.UpdateWater(r.Context(), user.ID, h.bodyDate(req.Date), *req.Glasses); err != nil {
		respondWithServiceError(w, "UpdateWater", err)
		return
	}
	respondWithJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// @Summary Get meals for a date
// @Tags Trackers
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} models.MealRecord
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /meals [get]
func (h *Handlers) GetMeals(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	day, err := h.queryDate(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.Tracker.GetMeals(r.Context(), user.ID, day)
	if err != nil {
		respondWithServiceError(w, "GetMeals", err)
		return
	}
	respondWithJSON(w, http.StatusOK, record)
}

// @Summary Mark a meal
// @Tags Trackers
// @Accept json
// @Produce json
// @Param meal body MealRequest true "breakfast, lunch, snack or dinner"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /meals [post]
func (h *Handlers) UpdateMeal(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req MealRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	meal, err := models.ParseMeal(req.Meal)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Tracker.UpdateMeal(r.Context(), user.ID, h.bodyDate(req.Date), meal, req.Completed); err != nil {
		respondWithServiceError(w, "UpdateMeal", err)
		return
	}
	respondWithJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
