package handler

import (
	"encoding/json"
	"net/http"
)

// HealthCheck godoc
// @Summary      Liveness probe
// @Description  Reports that the expense tracker process is up. It does not touch the store.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok", "service": "expense-tracker"})
}
