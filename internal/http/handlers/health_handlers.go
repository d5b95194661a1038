package handlers

import "net/http"

// HealthHandler godoc
// @Summary Liveness probe
// @Tags operations
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
