// Package product implements the product catalog repository: search,
// custom product creation, and the append-only nutrition event history.
// Per-100g nutrition is never overwritten; corrections append a new event
// and the latest event is authoritative (ordering handled by the
// product_nutrition_per_100g projection).
package product

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/foodtracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

// searchLimit caps product search results.
const searchLimit = 25

const createProductSQL = `
INSERT INTO foodtracker_app.products (product_id, name, brand, is_custom, created_by)
VALUES (gen_random_uuid(), $1, $2, true, $3)
RETURNING product_id`

const seedProductSQL = `
INSERT INTO foodtracker_app.products (product_id, name, brand, is_custom)
VALUES (gen_random_uuid(), $1, $2, false)
RETURNING product_id`

const insertNutritionEventSQL = `
INSERT INTO foodtracker_app.product_nutrition_events (event_id, product_id, calories, protein, fat, carbs, source)
VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
RETURNING event_id`

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides product persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a product repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Search performs a case-insensitive substring match on product names,
// ordered by name ascending and capped at 25 results. An empty query is
// not an error: it matches everything (up to the cap).
func (r *Repo) Search(ctx context.Context, query string) ([]domain.Product, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	sql, args, err := builder.
		Select("p.product_id", "p.name", "p.brand", "n.calories", "n.protein", "n.fat", "n.carbs").
		From("foodtracker_app.products AS p").
		Join("foodtracker_app.product_nutrition_per_100g AS n ON n.product_id = p.product_id").
		Where("LOWER(p.name) LIKE ?", pattern).
		OrderBy("p.name").
		Limit(searchLimit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build product search: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Brand, &p.Per100g.Calories, &p.Per100g.Protein, &p.Per100g.Fat, &p.Per100g.Carbs); err != nil {
			return nil, fmt.Errorf("search products: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}

	return products, nil
}

// Create inserts a custom user-created product and returns its identifier.
func (r *Repo) Create(ctx context.Context, name string, brand *string, userID uuid.UUID) (uuid.UUID, error) {
	var productID uuid.UUID
	err := r.db.QueryRow(ctx, createProductSQL, name, brand, userID).Scan(&productID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create product: %w", err)
	}
	return productID, nil
}

// BulkInsert inserts catalog (non-custom) products, each with its initial
// manual nutrition event. Returns how many products were fully inserted;
// on error the count covers the completed ones.
func (r *Repo) BulkInsert(ctx context.Context, products []domain.Product) (int, error) {
	inserted := 0
	for _, p := range products {
		var productID uuid.UUID
		if err := r.db.QueryRow(ctx, seedProductSQL, p.Name, p.Brand).Scan(&productID); err != nil {
			return inserted, fmt.Errorf("seed product %q: %w", p.Name, err)
		}

		if _, err := r.InsertNutritionEvent(ctx, productID, p.Per100g, domain.NutritionSourceManual); err != nil {
			return inserted, fmt.Errorf("seed product %q: %w", p.Name, err)
		}
		inserted++
	}
	return inserted, nil
}

// InsertNutritionEvent appends a per-100g nutrition event for a product
// and returns the event identifier. Prior events are never replaced.
func (r *Repo) InsertNutritionEvent(ctx context.Context, productID uuid.UUID, n domain.NutritionTotals, source domain.NutritionSource) (uuid.UUID, error) {
	var eventID uuid.UUID
	err := r.db.QueryRow(ctx, insertNutritionEventSQL, productID, n.Calories, n.Protein, n.Fat, n.Carbs, source).Scan(&eventID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert nutrition event: %w", err)
	}
	return eventID, nil
}
