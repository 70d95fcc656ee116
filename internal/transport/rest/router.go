package rest

import (
	"net/http"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Day      *DayHandler
	Meals    *MealHandler
	Products *ProductHandler
	Settings *SettingsHandler
	Stats    *StatsHandler
	Health   *HealthHandler
	Docs     *DocsHandler
}

// NewRouter mounts all gateway routes on a ServeMux. API routes live
// under /v1; probes and docs sit at the root.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.Health.Live)
	mux.HandleFunc("GET /readyz", h.Health.Ready)

	mux.HandleFunc("GET /v1/day/{date}", h.Day.Get)

	mux.HandleFunc("POST /v1/meals", h.Meals.Create)
	mux.HandleFunc("GET /v1/meals/{meal_id}", h.Meals.Get)
	mux.HandleFunc("DELETE /v1/meals/{meal_id}", h.Meals.Delete)
	mux.HandleFunc("POST /v1/meals/{meal_id}/items", h.Meals.CreateItem)
	mux.HandleFunc("PATCH /v1/meals/{meal_id}/items/{item_id}", h.Meals.UpdateItem)
	mux.HandleFunc("DELETE /v1/meals/{meal_id}/items/{item_id}", h.Meals.DeleteItem)

	mux.HandleFunc("GET /v1/products/search", h.Products.Search)
	mux.HandleFunc("POST /v1/products", h.Products.Create)
	mux.HandleFunc("PATCH /v1/products/{product_id}/nutrition", h.Products.UpdateNutrition)
	mux.HandleFunc("POST /v1/products/recognize-photo", h.Products.RecognizePhoto)

	mux.HandleFunc("GET /v1/settings", h.Settings.Get)
	mux.HandleFunc("PATCH /v1/settings", h.Settings.Update)

	mux.HandleFunc("GET /v1/stats", h.Stats.Get)

	if h.Docs != nil {
		mux.HandleFunc("GET /docs", h.Docs.Serve)
	}

	return mux
}
