package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
	"github.com/heartmarshall/foodtracker-backend/internal/service/product"
)

type productService interface {
	Search(ctx context.Context, query string) ([]domain.Product, error)
	Create(ctx context.Context, input product.CreateProductInput) (uuid.UUID, error)
	CorrectNutrition(ctx context.Context, input product.CorrectNutritionInput) error
}

// ProductHandler serves the product catalog endpoints.
type ProductHandler struct {
	svc         productService
	log         *slog.Logger
	production  bool
	stubEnabled bool
}

// NewProductHandler creates a ProductHandler. stubEnabled controls
// whether the photo recognition stub responds or the route 404s.
func NewProductHandler(svc productService, logger *slog.Logger, production, stubEnabled bool) *ProductHandler {
	return &ProductHandler{
		svc:         svc,
		log:         logger.With("handler", "products"),
		production:  production,
		stubEnabled: stubEnabled,
	}
}

type productSearchResult struct {
	ProductID        string           `json:"product_id"`
	Name             string           `json:"name"`
	Brand            *string          `json:"brand"`
	NutritionPer100g nutritionPayload `json:"nutrition_per_100g"`
}

type createProductRequest struct {
	Name             string           `json:"name"`
	Brand            *string          `json:"brand"`
	NutritionPer100g nutritionPayload `json:"nutrition_per_100g"`
}

type createProductResponse struct {
	ProductID string `json:"product_id"`
}

type updateNutritionRequest struct {
	NutritionPer100g nutritionPayload `json:"nutrition_per_100g"`
}

type photoRecognitionResponse struct {
	Status  string `json:"status"`
	Results []any  `json:"results"`
}

// Search handles GET /v1/products/search?q=...
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondDomainError(w, r, h.log, h.production, err, "Not found")
		return
	}

	results := make([]productSearchResult, 0, len(products))
	for _, p := range products {
		results = append(results, productSearchResult{
			ProductID: p.ProductID.String(),
			Name:      p.Name,
			Brand:     p.Brand,
			NutritionPer100g: nutritionPayload{
				Calories: p.Per100g.Calories,
				Protein:  p.Per100g.Protein,
				Fat:      p.Per100g.Fat,
				Carbs:    p.Per100g.Carbs,
			},
		})
	}

	writeJSON(w, http.StatusOK, results)
}

// Create handles POST /v1/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body")
		return
	}

	productID, err := h.svc.Create(r.Context(), product.CreateProductInput{
		Name:  req.Name,
		Brand: req.Brand,
		Per100g: product.NutritionInput{
			Calories: req.NutritionPer100g.Calories,
			Protein:  req.NutritionPer100g.Protein,
			Fat:      req.NutritionPer100g.Fat,
			Carbs:    req.NutritionPer100g.Carbs,
		},
	})
	if err != nil {
		respondDomainError(w, r, h.log, h.production, err, "Product not found")
		return
	}

	writeJSON(w, http.StatusOK, createProductResponse{ProductID: productID.String()})
}

// UpdateNutrition handles PATCH /v1/products/{product_id}/nutrition.
func (h *ProductHandler) UpdateNutrition(w http.ResponseWriter, r *http.Request) {
	productID, ok := parseUUID(w, r, "product_id")
	if !ok {
		return
	}

	var req updateNutritionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body")
		return
	}

	err := h.svc.CorrectNutrition(r.Context(), product.CorrectNutritionInput{
		ProductID: productID,
		Per100g: product.NutritionInput{
			Calories: req.NutritionPer100g.Calories,
			Protein:  req.NutritionPer100g.Protein,
			Fat:      req.NutritionPer100g.Fat,
			Carbs:    req.NutritionPer100g.Carbs,
		},
	})
	if err != nil {
		respondDomainError(w, r, h.log, h.production, err, "Product not found")
		return
	}

	writeJSON(w, http.StatusOK, okStatus)
}

// RecognizePhoto handles POST /v1/products/recognize-photo. Recognition
// is stubbed: uploads are accepted and discarded.
func (h *ProductHandler) RecognizePhoto(w http.ResponseWriter, r *http.Request) {
	if !h.stubEnabled {
		writeError(w, http.StatusNotFound, codeNotFound, "Not found")
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "expected multipart file upload")
		return
	}

	writeJSON(w, http.StatusOK, photoRecognitionResponse{
		Status:  "not_implemented",
		Results: []any{},
	})
}
