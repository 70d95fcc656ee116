package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

type settingsRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Settings, error)
	Update(ctx context.Context, userID uuid.UUID, s domain.Settings) error
}

// Service provides settings read and update operations. Settings rows
// are provisioned out-of-band; the service never creates one.
type Service struct {
	settings settingsRepo
	userID   uuid.UUID
	log      *slog.Logger
}

// NewService creates a new Settings service scoped to the fixed user.
func NewService(log *slog.Logger, settings settingsRepo, userID uuid.UUID) *Service {
	return &Service{
		settings: settings,
		userID:   userID,
		log:      log.With("service", "settings"),
	}
}

// Get returns the user's settings, not found when unprovisioned.
func (s *Service) Get(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settings.Get(ctx, s.userID)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

// Update validates the full settings payload and persists it. A missing
// settings row propagates as not found; unclassified storage faults
// surface unchanged.
func (s *Service) Update(ctx context.Context, candidate domain.Settings) error {
	if err := candidate.Validate(); err != nil {
		return err
	}

	if err := s.settings.Update(ctx, s.userID, candidate); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}

	s.log.InfoContext(ctx, "settings updated",
		slog.Int("calorie_target", candidate.CalorieTarget),
		slog.String("macro_mode", candidate.MacroMode.String()),
	)

	return nil
}
