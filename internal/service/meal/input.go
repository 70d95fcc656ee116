package meal

import (
	"github.com/google/uuid"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

// CreateMealInput holds the parameters for creating a meal.
type CreateMealInput struct {
	Date     string
	MealType string
	MealTime string
}

// Validate checks all fields and collects all errors.
func (i CreateMealInput) Validate() error {
	var errs []domain.FieldError

	if _, err := domain.ParseDate(i.Date); err != nil {
		errs = append(errs, domain.FieldError{Field: "date", Message: "Date must be in ISO format YYYY-MM-DD"})
	}
	if !domain.MealType(i.MealType).IsValid() {
		errs = append(errs, domain.FieldError{Field: "meal_type", Message: "meal_type must be one of breakfast, lunch, dinner, snack"})
	}
	if _, err := domain.ParseMealTime(i.MealTime); err != nil {
		errs = append(errs, domain.FieldError{Field: "meal_time", Message: "meal_time must be in HH:MM or HH:MM:SS format"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateItemInput holds the parameters for adding an item to a meal.
type CreateItemInput struct {
	MealID    uuid.UUID
	ProductID uuid.UUID
	Grams     int
	AddedVia  *string
}

// Validate checks all fields and collects all errors.
func (i CreateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.MealID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "meal_id", Message: "required"})
	}
	if i.ProductID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "product_id", Message: "required"})
	}
	if i.Grams <= 0 {
		errs = append(errs, domain.FieldError{Field: "grams", Message: "grams must be greater than 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateItemInput holds the parameters for changing an item's grams.
type UpdateItemInput struct {
	MealID uuid.UUID
	ItemID uuid.UUID
	Grams  int
}

// Validate checks all fields and collects all errors.
func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.MealID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "meal_id", Message: "required"})
	}
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.Grams <= 0 {
		errs = append(errs, domain.FieldError{Field: "grams", Message: "grams must be greater than 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
