package handlers

//go:generate mockgen -source=health.go -destination=mock_health_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-notes/internal/logger"
)

// Pinger checks the database connection.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse reports service health
// swagger:model HealthResponse
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// NewHealthHandler returns an HTTP handler reporting database reachability.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Log.Errorw("health check failed", "err", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:   "unhealthy",
				Database: "disconnected",
				Error:    "Database unavailable",
			})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy", Database: "connected"})
	}
}
