package meal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

type mealRepo interface {
	Create(ctx context.Context, userID uuid.UUID, date time.Time, mealType domain.MealType, mealTime string) (uuid.UUID, error)
	GetByID(ctx context.Context, userID, mealID uuid.UUID) (*domain.MealSummary, error)
	GetItems(ctx context.Context, userID, mealID uuid.UUID) ([]domain.MealItem, error)
	Delete(ctx context.Context, userID, mealID uuid.UUID) error
	CreateItem(ctx context.Context, userID, mealID, productID uuid.UUID, grams int, addedVia *string) (uuid.UUID, error)
	GetItem(ctx context.Context, userID, itemID uuid.UUID) (*domain.MealItem, error)
	UpdateItem(ctx context.Context, userID, mealID, itemID uuid.UUID, grams int) error
	DeleteItem(ctx context.Context, userID, mealID, itemID uuid.UUID) error
}

// Service provides meal and meal-item operations.
type Service struct {
	meals  mealRepo
	userID uuid.UUID
	log    *slog.Logger
}

// NewService creates a new Meal service scoped to the fixed user.
func NewService(log *slog.Logger, meals mealRepo, userID uuid.UUID) *Service {
	return &Service{
		meals:  meals,
		userID: userID,
		log:    log.With("service", "meal"),
	}
}

// Detail is a meal aggregate together with its items.
type Detail struct {
	Meal  domain.MealSummary
	Items []domain.MealItem
}
