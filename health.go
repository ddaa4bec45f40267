package patternsapi

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

type healthResponse struct {
	Status        string  `json:"status"`
	Framework     string  `json:"framework"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

func (a *App) healthPayload(framework string) healthResponse {
	return healthResponse{
		Status:        "ok",
		Framework:     framework,
		UptimeSeconds: time.Since(a.startedAt).Seconds(),
	}
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a.healthPayload("net/http"))
}
