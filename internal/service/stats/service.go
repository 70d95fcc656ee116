package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

type statsRepo interface {
	FetchRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.DayTotals, error)
	CurrentDate(ctx context.Context) (time.Time, error)
}

type settingsRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Settings, error)
}

// Service provides the fixed-window daily statistics.
type Service struct {
	stats    statsRepo
	settings settingsRepo
	userID   uuid.UUID
	log      *slog.Logger
}

// NewService creates a new Stats service scoped to the fixed user.
func NewService(log *slog.Logger, stats statsRepo, settings settingsRepo, userID uuid.UUID) *Service {
	return &Service{
		stats:    stats,
		settings: settings,
		userID:   userID,
		log:      log.With("service", "stats"),
	}
}

// DayStat is one day's totals with its classification.
type DayStat struct {
	Date time.Time
	domain.NutritionTotals
	Status domain.Status
}

// RangeStats is the response for one stats window. Items covers only
// days with logged meals; gaps are not zero-filled.
type RangeStats struct {
	Range string
	Items []DayStat
}

// GetRange resolves the range token against the database's current date
// and classifies each day's calories. The window is inclusive on both
// ends: start = today - (days - 1).
func (s *Service) GetRange(ctx context.Context, token string) (*RangeStats, error) {
	days, err := domain.ResolveRange(token)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.Get(ctx, s.userID)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	end, err := s.stats.CurrentDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("current date: %w", err)
	}
	start := end.AddDate(0, 0, -(days - 1))

	rows, err := s.stats.FetchRange(ctx, s.userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch range: %w", err)
	}

	items := make([]DayStat, 0, len(rows))
	for _, row := range rows {
		items = append(items, DayStat{
			Date:            row.Date,
			NutritionTotals: row.NutritionTotals,
			Status:          domain.ComputeStatus(row.Calories, *settings),
		})
	}

	s.log.DebugContext(ctx, "stats range assembled",
		slog.String("range", token),
		slog.Int("days_with_data", len(items)),
	)

	return &RangeStats{Range: token, Items: items}, nil
}
