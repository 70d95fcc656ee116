// Package day implements the read-side repository for the daily view:
// day totals, per-meal aggregates, the optional insight, and the user's
// settings. Aggregation lives in database views; this package only runs
// parameterized reads against them.
package day

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/foodtracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

const dayTotalsSQL = `
SELECT date, calories, protein, fat, carbs
FROM foodtracker_app.v_day_totals
WHERE user_id = $1 AND date = $2::date`

const mealTotalsSQL = `
SELECT meal_id, meal_type, meal_time::text, calories, protein, fat, carbs, items_count
FROM foodtracker_app.v_meal_totals
WHERE user_id = $1 AND meal_date = $2::date
ORDER BY meal_time, meal_type`

const insightSQL = `
SELECT text, severity
FROM foodtracker_app.day_insights
WHERE user_id = $1 AND insight_date = $2::date
LIMIT 1`

const settingsSQL = `
SELECT calorie_target, calorie_tolerance, macro_mode, protein_target, fat_target, carbs_target
FROM foodtracker_app.settings
WHERE user_id = $1
LIMIT 1`

// Repo provides day-view reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a day repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// FetchDayTotals returns the aggregated totals for one date, or nil when
// no meals were logged that day. Absence is not an error; the caller
// substitutes zero totals.
func (r *Repo) FetchDayTotals(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DayTotals, error) {
	row := r.db.QueryRow(ctx, dayTotalsSQL, userID, domain.FormatDate(date))

	var t domain.DayTotals
	if err := row.Scan(&t.Date, &t.Calories, &t.Protein, &t.Fat, &t.Carbs); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch day totals: %w", err)
	}

	return &t, nil
}

// FetchMealTotals returns the per-meal aggregates for a date, ordered by
// meal time then meal type. Returns an empty slice (not nil) when the day
// has no meals.
func (r *Repo) FetchMealTotals(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.MealSummary, error) {
	rows, err := r.db.Query(ctx, mealTotalsSQL, userID, domain.FormatDate(date))
	if err != nil {
		return nil, fmt.Errorf("fetch meal totals: %w", err)
	}
	defer rows.Close()

	meals := []domain.MealSummary{}
	for rows.Next() {
		var m domain.MealSummary
		if err := rows.Scan(&m.MealID, &m.MealType, &m.MealTime, &m.Calories, &m.Protein, &m.Fat, &m.Carbs, &m.ItemsCount); err != nil {
			return nil, fmt.Errorf("fetch meal totals: %w", err)
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch meal totals: %w", err)
	}

	return meals, nil
}

// FetchInsight returns the day's insight, or nil when there is none.
func (r *Repo) FetchInsight(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.Insight, error) {
	row := r.db.QueryRow(ctx, insightSQL, userID, domain.FormatDate(date))

	var ins domain.Insight
	if err := row.Scan(&ins.Text, &ins.Severity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch insight: %w", err)
	}

	return &ins, nil
}

// FetchSettings returns the user's settings. Every user is provisioned
// out-of-band, so absence maps to domain.ErrNotFound.
func (r *Repo) FetchSettings(ctx context.Context, userID uuid.UUID) (*domain.Settings, error) {
	row := r.db.QueryRow(ctx, settingsSQL, userID)

	var s domain.Settings
	err := row.Scan(&s.CalorieTarget, &s.CalorieTolerance, &s.MacroMode, &s.ProteinTarget, &s.FatTarget, &s.CarbsTarget)
	if err != nil {
		return nil, postgres.MapError(err, "settings", userID)
	}

	return &s, nil
}
