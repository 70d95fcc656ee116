// Package domain holds the core value types and the pure validation and
// classification rules of the food tracker. Nothing in this package
// performs I/O.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// NutritionTotals is a set of calorie and macro values. Depending on
// context it is per-day, per-meal, per-item, or per-100g of a product.
type NutritionTotals struct {
	Calories int
	Protein  float64
	Fat      float64
	Carbs    float64
}

// DayTotals is the aggregated nutrition for one calendar day.
type DayTotals struct {
	Date time.Time
	NutritionTotals
}

// MealSummary is a per-meal aggregate as produced by the database view:
// totals over the meal's items plus the item count.
type MealSummary struct {
	MealID   uuid.UUID
	MealType MealType
	MealTime string // normalized HH:MM:SS
	NutritionTotals
	ItemsCount int
}

// MealItem is a single logged portion of a product. Its nutrition values
// are computed from the product's latest per-100g event scaled by grams;
// they are never stored on the item itself.
type MealItem struct {
	ItemID uuid.UUID
	Name   string
	Grams  int
	NutritionTotals
	AddedVia *string
}

// Product is a food item with its latest per-100g nutrition.
type Product struct {
	ProductID uuid.UUID
	Name      string
	Brand     *string
	Per100g   NutritionTotals
}

// Insight is an optional daily note shown alongside the day summary.
// At most one exists per (user, date); this system only reads them.
type Insight struct {
	Text     string
	Severity InsightSeverity
}
