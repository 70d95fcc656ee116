// Package meal implements the meal and meal-item repository. Item
// nutrition is computed by the v_meal_items_computed view; nothing here
// stores derived values. Every statement is scoped to the owning user;
// a matching entity id belonging to another user counts as absent.
package meal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/foodtracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

const createMealSQL = `
INSERT INTO foodtracker_app.meals (meal_id, user_id, meal_date, meal_type, meal_time)
VALUES (gen_random_uuid(), $1, $2::date, $3, $4::time)
RETURNING meal_id`

const getMealSQL = `
SELECT meal_id, meal_type, meal_time::text, calories, protein, fat, carbs, items_count
FROM foodtracker_app.v_meal_totals
WHERE user_id = $1 AND meal_id = $2`

const getMealItemsSQL = `
SELECT v.item_id, v.name, v.grams, v.calories, v.protein, v.fat, v.carbs, v.added_via
FROM foodtracker_app.v_meal_items_computed AS v
JOIN foodtracker_app.meals AS m ON m.meal_id = v.meal_id
JOIN foodtracker_app.meal_items AS mi ON mi.item_id = v.item_id
WHERE m.user_id = $1 AND v.meal_id = $2
ORDER BY mi.created_at`

const deleteMealSQL = `
DELETE FROM foodtracker_app.meals
WHERE user_id = $1 AND meal_id = $2`

// The INSERT ... SELECT keeps item creation scoped: no row is written
// unless the target meal exists and belongs to the user.
const createItemSQL = `
INSERT INTO foodtracker_app.meal_items (item_id, user_id, meal_id, product_id, grams, added_via)
SELECT gen_random_uuid(), m.user_id, m.meal_id, $3, $4, $5
FROM foodtracker_app.meals AS m
WHERE m.user_id = $1 AND m.meal_id = $2
RETURNING item_id`

const getItemSQL = `
SELECT v.item_id, v.name, v.grams, v.calories, v.protein, v.fat, v.carbs, v.added_via
FROM foodtracker_app.v_meal_items_computed AS v
JOIN foodtracker_app.meals AS m ON m.meal_id = v.meal_id
WHERE m.user_id = $1 AND v.item_id = $2`

const updateItemSQL = `
UPDATE foodtracker_app.meal_items
SET grams = $1
WHERE user_id = $2 AND meal_id = $3 AND item_id = $4`

const deleteItemSQL = `
DELETE FROM foodtracker_app.meal_items
WHERE user_id = $1 AND meal_id = $2 AND item_id = $3`

// Repo provides meal and meal-item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a meal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new meal and returns its generated identifier.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, date time.Time, mealType domain.MealType, mealTime string) (uuid.UUID, error) {
	var mealID uuid.UUID
	err := r.db.QueryRow(ctx, createMealSQL, userID, domain.FormatDate(date), mealType, mealTime).Scan(&mealID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create meal: %w", err)
	}
	return mealID, nil
}

// GetByID returns the meal aggregate scoped to the user.
// Returns domain.ErrNotFound if the meal does not exist or is not owned.
func (r *Repo) GetByID(ctx context.Context, userID, mealID uuid.UUID) (*domain.MealSummary, error) {
	row := r.db.QueryRow(ctx, getMealSQL, userID, mealID)

	var m domain.MealSummary
	err := row.Scan(&m.MealID, &m.MealType, &m.MealTime, &m.Calories, &m.Protein, &m.Fat, &m.Carbs, &m.ItemsCount)
	if err != nil {
		return nil, postgres.MapError(err, "meal", mealID)
	}

	return &m, nil
}

// GetItems returns the meal's items in creation order, nutrition computed
// by the view. Returns an empty slice (not nil) for an empty meal.
func (r *Repo) GetItems(ctx context.Context, userID, mealID uuid.UUID) ([]domain.MealItem, error) {
	rows, err := r.db.Query(ctx, getMealItemsSQL, userID, mealID)
	if err != nil {
		return nil, fmt.Errorf("get meal items: %w", err)
	}
	defer rows.Close()

	items := []domain.MealItem{}
	for rows.Next() {
		var it domain.MealItem
		if err := rows.Scan(&it.ItemID, &it.Name, &it.Grams, &it.Calories, &it.Protein, &it.Fat, &it.Carbs, &it.AddedVia); err != nil {
			return nil, fmt.Errorf("get meal items: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get meal items: %w", err)
	}

	return items, nil
}

// Delete removes the meal if owned by the user; the database cascades the
// delete to its items. Zero rows removed maps to domain.ErrNotFound,
// never a silent success.
func (r *Repo) Delete(ctx context.Context, userID, mealID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteMealSQL, userID, mealID)
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("meal %s: %w", mealID, domain.ErrNotFound)
	}
	return nil
}

// CreateItem inserts an item into a meal owned by the user and returns
// the generated identifier. Grams are validated by the service layer
// before reaching here. Returns domain.ErrNotFound when the meal does not
// exist or belongs to another user.
func (r *Repo) CreateItem(ctx context.Context, userID, mealID, productID uuid.UUID, grams int, addedVia *string) (uuid.UUID, error) {
	var itemID uuid.UUID
	err := r.db.QueryRow(ctx, createItemSQL, userID, mealID, productID, grams, addedVia).Scan(&itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("meal %s: %w", mealID, domain.ErrNotFound)
		}
		return uuid.Nil, fmt.Errorf("create meal item: %w", err)
	}
	return itemID, nil
}

// GetItem returns one item with computed nutrition, scoped through the
// owning meal's user. Returns domain.ErrNotFound when absent.
func (r *Repo) GetItem(ctx context.Context, userID, itemID uuid.UUID) (*domain.MealItem, error) {
	row := r.db.QueryRow(ctx, getItemSQL, userID, itemID)

	var it domain.MealItem
	err := row.Scan(&it.ItemID, &it.Name, &it.Grams, &it.Calories, &it.Protein, &it.Fat, &it.Carbs, &it.AddedVia)
	if err != nil {
		return nil, postgres.MapError(err, "meal item", itemID)
	}

	return &it, nil
}

// UpdateItem sets new grams on the (user, meal, item) triple.
// Zero matched rows map to domain.ErrNotFound.
func (r *Repo) UpdateItem(ctx context.Context, userID, mealID, itemID uuid.UUID, grams int) error {
	tag, err := r.db.Exec(ctx, updateItemSQL, grams, userID, mealID, itemID)
	if err != nil {
		return fmt.Errorf("update meal item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("meal item %s: %w", itemID, domain.ErrNotFound)
	}
	return nil
}

// DeleteItem removes the (user, meal, item) triple.
// Zero matched rows map to domain.ErrNotFound.
func (r *Repo) DeleteItem(ctx context.Context, userID, mealID, itemID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteItemSQL, userID, mealID, itemID)
	if err != nil {
		return fmt.Errorf("delete meal item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("meal item %s: %w", itemID, domain.ErrNotFound)
	}
	return nil
}
