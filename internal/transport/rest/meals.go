package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
	"github.com/heartmarshall/foodtracker-backend/internal/service/meal"
)

type mealService interface {
	Create(ctx context.Context, input meal.CreateMealInput) (uuid.UUID, error)
	Get(ctx context.Context, mealID uuid.UUID) (*meal.Detail, error)
	Delete(ctx context.Context, mealID uuid.UUID) error
	CreateItem(ctx context.Context, input meal.CreateItemInput) (*domain.MealItem, error)
	UpdateItem(ctx context.Context, input meal.UpdateItemInput) (*domain.MealItem, error)
	DeleteItem(ctx context.Context, mealID, itemID uuid.UUID) error
}

// MealHandler serves the meal and meal-item endpoints.
type MealHandler struct {
	svc        mealService
	log        *slog.Logger
	production bool
}

// NewMealHandler creates a MealHandler.
func NewMealHandler(svc mealService, logger *slog.Logger, production bool) *MealHandler {
	return &MealHandler{svc: svc, log: logger.With("handler", "meals"), production: production}
}

type createMealRequest struct {
	Date     string `json:"date"`
	MealType string `json:"meal_type"`
	MealTime string `json:"meal_time"`
}

type createMealResponse struct {
	MealID string `json:"meal_id"`
}

type mealDetailResponse struct {
	Meal  mealSummaryResponse `json:"meal"`
	Items []mealItemResponse  `json:"items"`
}

type createItemRequest struct {
	ProductID string  `json:"product_id"`
	Grams     int     `json:"grams"`
	AddedVia  *string `json:"added_via"`
}

type updateItemRequest struct {
	Grams int `json:"grams"`
}

// Create handles POST /v1/meals.
func (h *MealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body")
		return
	}

	mealID, err := h.svc.Create(r.Context(), meal.CreateMealInput{
		Date:     req.Date,
		MealType: req.MealType,
		MealTime: req.MealTime,
	})
	if err != nil {
		respondDomainError(w, r, h.log, h.production, err, "Meal not found")
		return
	}

	writeJSON(w, http.StatusOK, createMealResponse{MealID: mealID.String()})
}

// Get handles GET /v1/meals/{meal_id}.
func (h *MealHandler) Get(w http.ResponseWriter, r *http.Request) {
	mealID, ok := parseUUID(w, r, "meal_id")
	if !ok {
		return
	}

	detail, err := h.svc.Get(r.Context(), mealID)
	if err != nil {
		respondDomainError(w, r, h.log, h.production, err, "Meal not found")
		return
	}

	items := make([]mealItemResponse, 0, len(detail.Items))
	for _, item := range detail.Items {
		items = append(items, toMealItemResponse(item))
	}

	writeJSON(w, http.StatusOK, mealDetailResponse{
		Meal:  toMealSummaryResponse(detail.Meal),
		Items: items,
	})
}

// Delete handles DELETE /v1/meals/{meal_id}.
func (h *MealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	mealID, ok := parseUUID(w, r, "meal_id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), mealID); err != nil {
		respondDomainError(w, r, h.log, h.production, err, "Meal not found")
		return
	}

	writeJSON(w, http.StatusOK, okStatus)
}

// CreateItem handles POST /v1/meals/{meal_id}/items.
func (h *MealHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	mealID, ok := parseUUID(w, r, "meal_id")
	if !ok {
		return
	}

	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, codeValidation, "product_id must be a UUID")
		return
	}

	item, err := h.svc.CreateItem(r.Context(), meal.CreateItemInput{
		MealID:    mealID,
		ProductID: productID,
		Grams:     req.Grams,
		AddedVia:  req.AddedVia,
	})
	if err != nil {
		respondDomainError(w, r, h.log, h.production, err, "Meal not found")
		return
	}

	writeJSON(w, http.StatusOK, toMealItemResponse(*item))
}

// UpdateItem handles PATCH /v1/meals/{meal_id}/items/{item_id}.
func (h *MealHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	mealID, ok := parseUUID(w, r, "meal_id")
	if !ok {
		return
	}
	itemID, ok := parseUUID(w, r, "item_id")
	if !ok {
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body")
		return
	}

	item, err := h.svc.UpdateItem(r.Context(), meal.UpdateItemInput{
		MealID: mealID,
		ItemID: itemID,
		Grams:  req.Grams,
	})
	if err != nil {
		respondDomainError(w, r, h.log, h.production, err, "Meal item not found")
		return
	}

	writeJSON(w, http.StatusOK, toMealItemResponse(*item))
}

// DeleteItem handles DELETE /v1/meals/{meal_id}/items/{item_id}.
func (h *MealHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	mealID, ok := parseUUID(w, r, "meal_id")
	if !ok {
		return
	}
	itemID, ok := parseUUID(w, r, "item_id")
	if !ok {
		return
	}

	if err := h.svc.DeleteItem(r.Context(), mealID, itemID); err != nil {
		respondDomainError(w, r, h.log, h.production, err, "Meal item not found")
		return
	}

	writeJSON(w, http.StatusOK, okStatus)
}

// parseUUID reads a path parameter as a UUID, responding 404 on garbage
// so unknown identifiers and malformed ones look the same to callers.
func parseUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusNotFound, codeNotFound, "Not found")
		return uuid.Nil, false
	}
	return id, true
}
