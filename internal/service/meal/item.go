package meal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

// CreateItem adds an item to a meal and returns it with its computed
// nutrition. The insert is scoped through the owning meal, so an
// unknown or foreign meal id surfaces as not found.
func (s *Service) CreateItem(ctx context.Context, input CreateItemInput) (*domain.MealItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	itemID, err := s.meals.CreateItem(ctx, s.userID, input.MealID, input.ProductID, input.Grams, input.AddedVia)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	item, err := s.meals.GetItem(ctx, s.userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("fetch created item: %w", err)
	}

	s.log.InfoContext(ctx, "meal item created",
		slog.String("meal_id", input.MealID.String()),
		slog.String("item_id", itemID.String()),
		slog.Int("grams", input.Grams),
	)

	return item, nil
}

// UpdateItem changes an item's grams and returns the re-fetched item.
func (s *Service) UpdateItem(ctx context.Context, input UpdateItemInput) (*domain.MealItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.meals.UpdateItem(ctx, s.userID, input.MealID, input.ItemID, input.Grams); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	item, err := s.meals.GetItem(ctx, s.userID, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("fetch updated item: %w", err)
	}

	s.log.InfoContext(ctx, "meal item updated",
		slog.String("item_id", input.ItemID.String()),
		slog.Int("grams", input.Grams),
	)

	return item, nil
}

// DeleteItem removes an item from a meal.
func (s *Service) DeleteItem(ctx context.Context, mealID, itemID uuid.UUID) error {
	if err := s.meals.DeleteItem(ctx, s.userID, mealID, itemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	s.log.InfoContext(ctx, "meal item deleted",
		slog.String("meal_id", mealID.String()),
		slog.String("item_id", itemID.String()),
	)
	return nil
}
