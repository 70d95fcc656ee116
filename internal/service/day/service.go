package day

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

type dayRepo interface {
	FetchDayTotals(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DayTotals, error)
	FetchMealTotals(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.MealSummary, error)
	FetchInsight(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.Insight, error)
	FetchSettings(ctx context.Context, userID uuid.UUID) (*domain.Settings, error)
}

// Service assembles the daily summary view.
type Service struct {
	days   dayRepo
	userID uuid.UUID
	log    *slog.Logger
}

// NewService creates a new Day service scoped to the fixed user.
func NewService(log *slog.Logger, days dayRepo, userID uuid.UUID) *Service {
	return &Service{
		days:   days,
		userID: userID,
		log:    log.With("service", "day"),
	}
}

// View is the assembled day summary: totals with status, per-meal
// aggregates, and the optional insight.
type View struct {
	Date    time.Time
	Totals  domain.NutritionTotals
	Status  domain.Status
	Meals   []domain.MealSummary
	Insight *domain.Insight
}
