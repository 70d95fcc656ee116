package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/foodtracker-backend/internal/domain"
	"github.com/heartmarshall/foodtracker-backend/internal/service/day"
)

type dayService interface {
	GetDay(ctx context.Context, date string) (*day.View, error)
}

// DayHandler serves the daily summary endpoint.
type DayHandler struct {
	svc        dayService
	log        *slog.Logger
	production bool
}

// NewDayHandler creates a DayHandler.
func NewDayHandler(svc dayService, logger *slog.Logger, production bool) *DayHandler {
	return &DayHandler{svc: svc, log: logger.With("handler", "day"), production: production}
}

type dayResponse struct {
	Date    string                `json:"date"`
	Summary summaryResponse       `json:"summary"`
	Meals   []mealSummaryResponse `json:"meals"`
	Insight *insightResponse      `json:"insight"`
}

// Get handles GET /v1/day/{date}.
func (h *DayHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetDay(r.Context(), r.PathValue("date"))
	if err != nil {
		respondDomainError(w, r, h.log, h.production, err, "Settings not found")
		return
	}

	meals := make([]mealSummaryResponse, 0, len(view.Meals))
	for _, m := range view.Meals {
		meals = append(meals, toMealSummaryResponse(m))
	}

	var insight *insightResponse
	if view.Insight != nil {
		insight = &insightResponse{Text: view.Insight.Text, Severity: view.Insight.Severity.String()}
	}

	writeJSON(w, http.StatusOK, dayResponse{
		Date: domain.FormatDate(view.Date),
		Summary: summaryResponse{
			Calories: view.Totals.Calories,
			Protein:  view.Totals.Protein,
			Fat:      view.Totals.Fat,
			Carbs:    view.Totals.Carbs,
			Status:   view.Status.String(),
		},
		Meals:   meals,
		Insight: insight,
	})
}
