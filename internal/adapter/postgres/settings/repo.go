// Package settings implements the user settings repository. Settings
// rows are provisioned out-of-band: this repository reads and updates,
// never inserts.
package settings

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/foodtracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

const getSettingsSQL = `
SELECT calorie_target, calorie_tolerance, macro_mode, protein_target, fat_target, carbs_target
FROM foodtracker_app.settings
WHERE user_id = $1`

const updateSettingsSQL = `
UPDATE foodtracker_app.settings
SET calorie_target = $2,
    calorie_tolerance = $3,
    macro_mode = $4,
    protein_target = $5,
    fat_target = $6,
    carbs_target = $7
WHERE user_id = $1`

// Repo provides settings persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a settings repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the user's settings row.
// Returns domain.ErrNotFound when the user is unprovisioned.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.Settings, error) {
	row := r.db.QueryRow(ctx, getSettingsSQL, userID)

	var s domain.Settings
	err := row.Scan(&s.CalorieTarget, &s.CalorieTolerance, &s.MacroMode, &s.ProteinTarget, &s.FatTarget, &s.CarbsTarget)
	if err != nil {
		return nil, postgres.MapError(err, "settings", userID)
	}

	return &s, nil
}

// Update overwrites all settings fields for the user. Zero rows updated
// maps to domain.ErrNotFound; settings rows are never created here.
func (r *Repo) Update(ctx context.Context, userID uuid.UUID, s domain.Settings) error {
	tag, err := r.db.Exec(ctx, updateSettingsSQL,
		userID,
		s.CalorieTarget,
		s.CalorieTolerance,
		s.MacroMode,
		s.ProteinTarget,
		s.FatTarget,
		s.CarbsTarget,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("settings %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}
