// filepath: internal/api/handlers/info_handler.go
package handlers

import (
	"io"
	"net/http"
)

// @Summary Get service information
// @Description Service name, version and uptime. Public.
// @Tags Info
// @Produce  json
// @Success 200 {object} models.Info
// @Router /info [get]
func (h *Handlers) GetInfo(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.Info.GetInfo())
}

// HealthCheck answers liveness probes with a plain "OK".
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "OK\n")
}
