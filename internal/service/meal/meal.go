package meal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

// Create persists a new meal and returns its identifier.
func (s *Service) Create(ctx context.Context, input CreateMealInput) (uuid.UUID, error) {
	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}

	date, _ := domain.ParseDate(input.Date)
	mealTime, _ := domain.ParseMealTime(input.MealTime)

	mealID, err := s.meals.Create(ctx, s.userID, date, domain.MealType(input.MealType), mealTime)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create meal: %w", err)
	}

	s.log.InfoContext(ctx, "meal created",
		slog.String("meal_id", mealID.String()),
		slog.String("date", input.Date),
		slog.String("meal_type", input.MealType),
	)

	return mealID, nil
}

// Get returns the meal aggregate with its items.
func (s *Service) Get(ctx context.Context, mealID uuid.UUID) (*Detail, error) {
	summary, err := s.meals.GetByID(ctx, s.userID, mealID)
	if err != nil {
		return nil, fmt.Errorf("get meal: %w", err)
	}

	items, err := s.meals.GetItems(ctx, s.userID, mealID)
	if err != nil {
		return nil, fmt.Errorf("get meal items: %w", err)
	}

	return &Detail{Meal: *summary, Items: items}, nil
}

// Delete removes a meal; its items go with it via the cascade.
func (s *Service) Delete(ctx context.Context, mealID uuid.UUID) error {
	if err := s.meals.Delete(ctx, s.userID, mealID); err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}

	s.log.InfoContext(ctx, "meal deleted", slog.String("meal_id", mealID.String()))
	return nil
}
