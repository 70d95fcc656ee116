package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

// SeedSettings inserts a settings row for the user. Defaults: 2000 kcal
// target, 100 tolerance, percent mode 30/30/40.
func SeedSettings(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Settings {
	t.Helper()

	s := domain.Settings{
		CalorieTarget:    2000,
		CalorieTolerance: 100,
		MacroMode:        domain.MacroModePercent,
		ProteinTarget:    30,
		FatTarget:        30,
		CarbsTarget:      40,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO foodtracker_app.settings (user_id, calorie_target, calorie_tolerance, macro_mode, protein_target, fat_target, carbs_target)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id) DO NOTHING`,
		userID, s.CalorieTarget, s.CalorieTolerance, string(s.MacroMode), s.ProteinTarget, s.FatTarget, s.CarbsTarget,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSettings: %v", err)
	}

	return s
}

// SeedProduct inserts a product with one manual per-100g nutrition event.
func SeedProduct(t *testing.T, pool *pgxpool.Pool, name string, per100g domain.NutritionTotals) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	productID := uuid.New()
	_, err := pool.Exec(ctx,
		`INSERT INTO foodtracker_app.products (product_id, name, is_custom)
		 VALUES ($1, $2, false)`,
		productID, name,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProduct insert product: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO foodtracker_app.product_nutrition_events (event_id, product_id, calories, protein, fat, carbs, source)
		 VALUES ($1, $2, $3, $4, $5, $6, 'manual')`,
		uuid.New(), productID, per100g.Calories, per100g.Protein, per100g.Fat, per100g.Carbs,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProduct insert event: %v", err)
	}

	return productID
}

// SeedMeal inserts a meal for the user on the given date.
func SeedMeal(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, date string, mealType domain.MealType, mealTime string) uuid.UUID {
	t.Helper()

	mealID := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO foodtracker_app.meals (meal_id, user_id, meal_date, meal_type, meal_time)
		 VALUES ($1, $2, $3::date, $4, $5::time)`,
		mealID, userID, date, string(mealType), mealTime,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMeal: %v", err)
	}

	return mealID
}

// SeedMealItem inserts an item linking a meal to a product.
func SeedMealItem(t *testing.T, pool *pgxpool.Pool, userID, mealID, productID uuid.UUID, grams int) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO foodtracker_app.meal_items (item_id, user_id, meal_id, product_id, grams)
		 VALUES ($1, $2, $3, $4, $5)`,
		itemID, userID, mealID, productID, grams,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMealItem: %v", err)
	}

	return itemID
}

// SeedInsight inserts a daily insight for the user and date.
func SeedInsight(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, date, text string, severity domain.InsightSeverity) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO foodtracker_app.day_insights (user_id, insight_date, text, severity)
		 VALUES ($1, $2::date, $3, $4)
		 ON CONFLICT (user_id, insight_date) DO UPDATE SET text = $3, severity = $4`,
		userID, date, text, string(severity),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedInsight: %v", err)
	}
}
