package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

type settingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, candidate domain.Settings) error
}

// SettingsHandler serves the settings endpoints.
type SettingsHandler struct {
	svc        settingsService
	log        *slog.Logger
	production bool
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc settingsService, logger *slog.Logger, production bool) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings"), production: production}
}

// Get handles GET /v1/settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.Get(r.Context())
	if err != nil {
		respondDomainError(w, r, h.log, h.production, err, "Settings not found")
		return
	}

	writeJSON(w, http.StatusOK, toSettingsPayload(*settings))
}

// Update handles PATCH /v1/settings. The full settings payload is
// required; partial updates are not supported.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req settingsPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body")
		return
	}

	err := h.svc.Update(r.Context(), domain.Settings{
		CalorieTarget:    req.CalorieTarget,
		CalorieTolerance: req.CalorieTolerance,
		MacroMode:        domain.MacroMode(req.MacroMode),
		ProteinTarget:    req.ProteinTarget,
		FatTarget:        req.FatTarget,
		CarbsTarget:      req.CarbsTarget,
	})
	if err != nil {
		respondDomainError(w, r, h.log, h.production, err, "Settings not found")
		return
	}

	writeJSON(w, http.StatusOK, okStatus)
}
