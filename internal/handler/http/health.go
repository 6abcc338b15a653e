package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"localnews/internal/handler/http/respond"
)

// HealthResponse is the body of a successful health check.
type HealthResponse struct {
	Status    string `json:"status"`    // "healthy" or "unhealthy"
	Database  string `json:"database"`  // "connected" or "disconnected"
	Timestamp string `json:"timestamp"` // RFC 3339, only on success
}

// UnhealthyResponse is the body returned when the database ping fails.
type UnhealthyResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error"`
}

// HealthHandler reports liveness of the service and its database.
type HealthHandler struct {
	DB *sql.DB
}

// ServeHTTP pings the database with a short timeout and reports 200
// healthy or 500 unhealthy.
func (h HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.PingContext(ctx); err != nil {
		respond.JSON(w, http.StatusInternalServerError, UnhealthyResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	respond.JSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
