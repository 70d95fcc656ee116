package product

import (
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

// NutritionInput is a per-100g nutrition payload.
type NutritionInput struct {
	Calories int
	Protein  float64
	Fat      float64
	Carbs    float64
}

func (n NutritionInput) validate() []domain.FieldError {
	var errs []domain.FieldError

	if n.Calories < 0 {
		errs = append(errs, domain.FieldError{Field: "calories", Message: "must be non-negative"})
	}
	if n.Protein < 0 {
		errs = append(errs, domain.FieldError{Field: "protein", Message: "must be non-negative"})
	}
	if n.Fat < 0 {
		errs = append(errs, domain.FieldError{Field: "fat", Message: "must be non-negative"})
	}
	if n.Carbs < 0 {
		errs = append(errs, domain.FieldError{Field: "carbs", Message: "must be non-negative"})
	}

	return errs
}

func (n NutritionInput) totals() domain.NutritionTotals {
	return domain.NutritionTotals{
		Calories: n.Calories,
		Protein:  n.Protein,
		Fat:      n.Fat,
		Carbs:    n.Carbs,
	}
}

// CreateProductInput holds the parameters for creating a custom product.
type CreateProductInput struct {
	Name    string
	Brand   *string
	Per100g NutritionInput
}

// Validate checks all fields and collects all errors.
func (i CreateProductInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	errs = append(errs, i.Per100g.validate()...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CorrectNutritionInput holds the parameters for appending a nutrition
// correction to a product.
type CorrectNutritionInput struct {
	ProductID uuid.UUID
	Per100g   NutritionInput
}

// Validate checks all fields and collects all errors.
func (i CorrectNutritionInput) Validate() error {
	var errs []domain.FieldError

	if i.ProductID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "product_id", Message: "required"})
	}
	errs = append(errs, i.Per100g.validate()...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
