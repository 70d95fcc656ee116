// Package seeder populates the product catalog from a JSON dataset.
// It is run offline via the seed command, never from the server process.
package seeder

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

// catalogEntry is the on-disk shape of one catalog product.
type catalogEntry struct {
	Name    string  `json:"name"`
	Brand   *string `json:"brand"`
	Per100g struct {
		Calories int     `json:"calories"`
		Protein  float64 `json:"protein"`
		Fat      float64 `json:"fat"`
		Carbs    float64 `json:"carbs"`
	} `json:"per_100g"`
}

// LoadCatalog reads and validates a JSON catalog file. Every entry needs
// a non-empty name and non-negative per-100g values; the first invalid
// entry aborts the load with its index in the error.
func LoadCatalog(path string) ([]domain.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var entries []catalogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	products := make([]domain.Product, 0, len(entries))
	for i, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("catalog entry %d: name is required", i)
		}
		if e.Per100g.Calories < 0 || e.Per100g.Protein < 0 || e.Per100g.Fat < 0 || e.Per100g.Carbs < 0 {
			return nil, fmt.Errorf("catalog entry %d (%s): nutrition values must be non-negative", i, name)
		}

		products = append(products, domain.Product{
			Name:  name,
			Brand: e.Brand,
			Per100g: domain.NutritionTotals{
				Calories: e.Per100g.Calories,
				Protein:  e.Per100g.Protein,
				Fat:      e.Per100g.Fat,
				Carbs:    e.Per100g.Carbs,
			},
		})
	}

	return products, nil
}
