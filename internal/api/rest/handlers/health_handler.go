package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/CameronXie/neptune-tea-api/internal/api/rest/response"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports whether the service can reach its database.
type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

// ServeHTTP responds 200 when the database answers a ping and 503 otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		h.logger.ErrorContext(r.Context(), "health check failed", "error", err)
		response.JSONResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}

	response.JSONResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// NewHealthHandler creates a new HTTP handler for the health endpoint.
func NewHealthHandler(db Pinger, logger *slog.Logger) http.Handler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}
