// filepath: internal/api/handlers/housekeeping_handler.go
package handlers

import (
	"net/http"
	"riseup/internal/logging"
)

// @Summary Trigger housekeeping
// @Description Purges expired refresh tokens and writes a database backup immediately.
// @Tags Maintenance
// @Produce  json
// @Success 200 {object} models.HousekeepingReport
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Housekeeping failed"
// @Security BearerAuth
// @Router /housekeeping [post]
func (h *Handlers) TriggerHousekeeping(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	report, err := h.Housekeeping.TriggerHousekeeping()
	if err != nil {
		logging.Log.Errorf("TriggerHousekeeping: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Housekeeping failed.")
		return
	}

	h.audit(r, "housekeeping.run", user.Username, "database", map[string]interface{}{
		"purged_tokens": report.PurgedTokens,
		"backup":        report.BackupPath,
	})
	respondWithJSON(w, http.StatusOK, report)
}
