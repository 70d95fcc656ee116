package product

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

// Search returns products whose name contains the query, case
// insensitive. An empty query matches everything up to the result cap.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Product, error) {
	products, err := s.products.Search(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}

// Create persists a custom product with its initial manual nutrition
// event and returns the product identifier. The two inserts are separate
// round-trips; a fault between them leaves a product without nutrition,
// which search simply never returns.
func (s *Service) Create(ctx context.Context, input CreateProductInput) (uuid.UUID, error) {
	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}

	name := strings.TrimSpace(input.Name)

	productID, err := s.products.Create(ctx, name, input.Brand, s.userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create product: %w", err)
	}

	if _, err := s.products.InsertNutritionEvent(ctx, productID, input.Per100g.totals(), domain.NutritionSourceManual); err != nil {
		return uuid.Nil, fmt.Errorf("insert nutrition event: %w", err)
	}

	s.log.InfoContext(ctx, "product created",
		slog.String("product_id", productID.String()),
		slog.String("name", name),
	)

	return productID, nil
}

// CorrectNutrition appends a correction event for the product. Prior
// events are never touched; the latest event wins at read time.
func (s *Service) CorrectNutrition(ctx context.Context, input CorrectNutritionInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	eventID, err := s.products.InsertNutritionEvent(ctx, input.ProductID, input.Per100g.totals(), domain.NutritionSourceCorrection)
	if err != nil {
		return fmt.Errorf("insert correction event: %w", err)
	}

	s.log.InfoContext(ctx, "nutrition correction appended",
		slog.String("product_id", input.ProductID.String()),
		slog.String("event_id", eventID.String()),
	)

	return nil
}
