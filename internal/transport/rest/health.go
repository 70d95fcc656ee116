package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	db  dbPinger
	log *slog.Logger
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, log: logger.With("handler", "health")}
}

type okResponse struct {
	OK bool `json:"ok"`
}

// Live handles GET /healthz. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// Ready handles GET /readyz. Pings the database: 200 if reachable,
// 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.ErrorContext(r.Context(), "readiness probe failed", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, codeUnavailable, "database unavailable")
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
