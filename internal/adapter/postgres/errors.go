package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

// MapError converts pgx errors to domain errors.
// pgx.ErrNoRows becomes domain.ErrNotFound; context.DeadlineExceeded and
// context.Canceled pass through unmapped. Anything else (connectivity,
// constraint violations, timeouts) is wrapped as-is and surfaces as an
// internal error at the boundary. The repository layer never retries.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
	}

	return fmt.Errorf("%s %v: %w", entity, id, err)
}
