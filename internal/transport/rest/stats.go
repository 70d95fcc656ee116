package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/foodtracker-backend/internal/domain"
	"github.com/heartmarshall/foodtracker-backend/internal/service/stats"
)

type statsService interface {
	GetRange(ctx context.Context, token string) (*stats.RangeStats, error)
}

// StatsHandler serves the stats endpoint.
type StatsHandler struct {
	svc        statsService
	log        *slog.Logger
	production bool
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger, production bool) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats"), production: production}
}

type statsDayResponse struct {
	Date     string  `json:"date"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Status   string  `json:"status"`
}

type statsResponse struct {
	Range string             `json:"range"`
	Items []statsDayResponse `json:"items"`
}

// Get handles GET /v1/stats?range=7d|14d|30d.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetRange(r.Context(), r.URL.Query().Get("range"))
	if err != nil {
		respondDomainError(w, r, h.log, h.production, err, "Settings not found")
		return
	}

	items := make([]statsDayResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, statsDayResponse{
			Date:     domain.FormatDate(item.Date),
			Calories: item.Calories,
			Protein:  item.Protein,
			Fat:      item.Fat,
			Carbs:    item.Carbs,
			Status:   item.Status.String(),
		})
	}

	writeJSON(w, http.StatusOK, statsResponse{Range: result.Range, Items: items})
}
