package day

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

// GetDay assembles the summary for one calendar date. A day with no
// logged meals yields zero totals, not an error; missing settings
// propagate as not found since status cannot be computed without them.
func (s *Service) GetDay(ctx context.Context, dateRaw string) (*View, error) {
	date, err := domain.ParseDate(dateRaw)
	if err != nil {
		return nil, err
	}

	settings, err := s.days.FetchSettings(ctx, s.userID)
	if err != nil {
		return nil, fmt.Errorf("fetch settings: %w", err)
	}

	totals := domain.NutritionTotals{}
	dayTotals, err := s.days.FetchDayTotals(ctx, s.userID, date)
	if err != nil {
		return nil, fmt.Errorf("fetch day totals: %w", err)
	}
	if dayTotals != nil {
		totals = dayTotals.NutritionTotals
	}

	meals, err := s.days.FetchMealTotals(ctx, s.userID, date)
	if err != nil {
		return nil, fmt.Errorf("fetch meal totals: %w", err)
	}

	insight, err := s.days.FetchInsight(ctx, s.userID, date)
	if err != nil {
		return nil, fmt.Errorf("fetch insight: %w", err)
	}

	s.log.DebugContext(ctx, "day view assembled",
		slog.String("date", domain.FormatDate(date)),
		slog.Int("meals", len(meals)),
	)

	return &View{
		Date:    date,
		Totals:  totals,
		Status:  domain.ComputeStatus(totals.Calories, *settings),
		Meals:   meals,
		Insight: insight,
	}, nil
}
