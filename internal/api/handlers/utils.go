// filepath: internal/api/handlers/utils.go
package handlers

import (
	"context"
	"errors"
	"net/http"
	"riseup/internal/logging"
	"riseup/internal/models"
	"riseup/internal/services"
	"riseup/internal/services/auth"
	"strconv"
	"strings"
	"time"
)

// today returns the server's local calendar date.
func (h *Handlers) today() models.Date {
	now := h.Now
	if now == nil {
		now = time.Now
	}
	return models.NewDate(now())
}

// resolveDate picks the date a request refers to. An explicit value wins;
// an empty one falls back to today.
func (h *Handlers) resolveDate(raw string) (models.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return h.today(), nil
	}
	return models.ParseDate(raw)
}

// queryDate resolves the ?date= query parameter.
func (h *Handlers) queryDate(r *http.Request) (models.Date, error) {
	return h.resolveDate(r.URL.Query().Get("date"))
}

// bodyDate returns d, or today when the body did not carry a date.
func (h *Handlers) bodyDate(d models.Date) models.Date {
	if d.IsZero() {
		return h.today()
	}
	return d
}

// currentUser returns the user set by the auth middleware, answering 401 if it is missing.
func currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No user found in context")
		return nil, false
	}
	return user, true
}

// parseIDVar parses a positive integer path variable.
func parseIDVar(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// respondWithServiceError maps service sentinels onto HTTP status codes.
// Anything unrecognised is logged and hidden behind a generic 500.
func respondWithServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrConflict):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logging.Log.Warnf("%s: request aborted: %v", op, err)
		respondWithError(w, http.StatusServiceUnavailable, "Request cancelled")
	default:
		logging.Log.Errorf("%s: %v", op, err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// audit forwards an event to the auditor when one is configured.
func (h *Handlers) audit(r *http.Request, action, actor, resource string, details map[string]interface{}) {
	if h.Auditor == nil {
		return
	}
	h.Auditor.Log(r.Context(), action, actor, resource, details)
}
