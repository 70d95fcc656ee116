package product

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

type productRepo interface {
	Search(ctx context.Context, query string) ([]domain.Product, error)
	Create(ctx context.Context, name string, brand *string, userID uuid.UUID) (uuid.UUID, error)
	InsertNutritionEvent(ctx context.Context, productID uuid.UUID, n domain.NutritionTotals, source domain.NutritionSource) (uuid.UUID, error)
}

// Service provides the product catalog operations.
type Service struct {
	products productRepo
	userID   uuid.UUID
	log      *slog.Logger
}

// NewService creates a new Product service scoped to the fixed user.
func NewService(log *slog.Logger, products productRepo, userID uuid.UUID) *Service {
	return &Service{
		products: products,
		userID:   userID,
		log:      log.With("service", "product"),
	}
}
