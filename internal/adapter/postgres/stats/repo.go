// Package stats implements the range statistics repository. Daily totals
// come from the v_day_totals view; days without logged meals are simply
// absent from the result, the caller does not synthesize zero rows.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/foodtracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

const statsRangeSQL = `
SELECT date, calories, protein, fat, carbs
FROM foodtracker_app.v_day_totals
WHERE user_id = $1 AND date BETWEEN $2::date AND $3::date
ORDER BY date`

const currentDateSQL = `SELECT CURRENT_DATE`

// Repo provides range statistics reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a stats repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// FetchRange returns daily totals within [start, end], ordered by date.
func (r *Repo) FetchRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.DayTotals, error) {
	rows, err := r.db.Query(ctx, statsRangeSQL, userID, domain.FormatDate(start), domain.FormatDate(end))
	if err != nil {
		return nil, fmt.Errorf("fetch stats range: %w", err)
	}
	defer rows.Close()

	days := []domain.DayTotals{}
	for rows.Next() {
		var d domain.DayTotals
		if err := rows.Scan(&d.Date, &d.Calories, &d.Protein, &d.Fat, &d.Carbs); err != nil {
			return nil, fmt.Errorf("fetch stats range: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch stats range: %w", err)
	}

	return days, nil
}

// CurrentDate returns the database's current date. The stats range is
// always anchored on the database clock, not the application's.
func (r *Repo) CurrentDate(ctx context.Context) (time.Time, error) {
	var d time.Time
	if err := r.db.QueryRow(ctx, currentDateSQL).Scan(&d); err != nil {
		return time.Time{}, fmt.Errorf("current date: %w", err)
	}
	return d, nil
}
