// filepath: internal/api/handlers/notification_handler.go
package handlers

import (
	"net/http"
	"riseup/internal/models"

	"github.com/gorilla/mux"
)

// @Summary List notifications
// @Description Newest first.
// @Tags Notifications
// @Produce json
// @Param unread query bool false "Only unread notifications"
// @Success 200 {array} models.Notification
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *Handlers) ListNotifications(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	unreadOnly := r.URL.Query().Get("unread") == "true"
	list, err := h.Notifications.List(r.Context(), user.ID, unreadOnly)
	if err != nil {
		respondWithServiceError(w, "ListNotifications", err)
		return
	}
	if list == nil {
		list = []models.Notification{}
	}
	respondWithJSON(w, http.StatusOK, list)
}

// @Summary Mark a notification as read
// @Tags Notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id} [patch]
func (h *Handlers) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	id, err := parseIDVar(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid notification ID")
		return
	}

	if err := h.Notifications.MarkRead(r.Context(), user.ID, id); err != nil {
		respondWithServiceError(w, "MarkNotificationRead", err)
		return
	}
	respondWithJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
