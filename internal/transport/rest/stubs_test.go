package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
	"github.com/heartmarshall/foodtracker-backend/internal/service/day"
	"github.com/heartmarshall/foodtracker-backend/internal/service/meal"
	"github.com/heartmarshall/foodtracker-backend/internal/service/product"
	"github.com/heartmarshall/foodtracker-backend/internal/service/stats"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// routed registers fn under a mux pattern so path parameters resolve the
// same way they do behind the real router.
func routed(pattern string, fn http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, fn)
	return mux
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return v
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	return decodeBody[errorBody](t, rec)
}

func containsJSONField(body, fragment string) bool {
	return strings.Contains(body, fragment)
}

type dayServiceStub struct {
	GetDayFunc func(ctx context.Context, date string) (*day.View, error)
}

func (s *dayServiceStub) GetDay(ctx context.Context, date string) (*day.View, error) {
	return s.GetDayFunc(ctx, date)
}

type mealServiceStub struct {
	CreateFunc     func(ctx context.Context, input meal.CreateMealInput) (uuid.UUID, error)
	GetFunc        func(ctx context.Context, mealID uuid.UUID) (*meal.Detail, error)
	DeleteFunc     func(ctx context.Context, mealID uuid.UUID) error
	CreateItemFunc func(ctx context.Context, input meal.CreateItemInput) (*domain.MealItem, error)
	UpdateItemFunc func(ctx context.Context, input meal.UpdateItemInput) (*domain.MealItem, error)
	DeleteItemFunc func(ctx context.Context, mealID, itemID uuid.UUID) error
}

func (s *mealServiceStub) Create(ctx context.Context, input meal.CreateMealInput) (uuid.UUID, error) {
	return s.CreateFunc(ctx, input)
}

func (s *mealServiceStub) Get(ctx context.Context, mealID uuid.UUID) (*meal.Detail, error) {
	return s.GetFunc(ctx, mealID)
}

func (s *mealServiceStub) Delete(ctx context.Context, mealID uuid.UUID) error {
	return s.DeleteFunc(ctx, mealID)
}

func (s *mealServiceStub) CreateItem(ctx context.Context, input meal.CreateItemInput) (*domain.MealItem, error) {
	return s.CreateItemFunc(ctx, input)
}

func (s *mealServiceStub) UpdateItem(ctx context.Context, input meal.UpdateItemInput) (*domain.MealItem, error) {
	return s.UpdateItemFunc(ctx, input)
}

func (s *mealServiceStub) DeleteItem(ctx context.Context, mealID, itemID uuid.UUID) error {
	return s.DeleteItemFunc(ctx, mealID, itemID)
}

type productServiceStub struct {
	SearchFunc           func(ctx context.Context, query string) ([]domain.Product, error)
	CreateFunc           func(ctx context.Context, input product.CreateProductInput) (uuid.UUID, error)
	CorrectNutritionFunc func(ctx context.Context, input product.CorrectNutritionInput) error
}

func (s *productServiceStub) Search(ctx context.Context, query string) ([]domain.Product, error) {
	return s.SearchFunc(ctx, query)
}

func (s *productServiceStub) Create(ctx context.Context, input product.CreateProductInput) (uuid.UUID, error) {
	return s.CreateFunc(ctx, input)
}

func (s *productServiceStub) CorrectNutrition(ctx context.Context, input product.CorrectNutritionInput) error {
	return s.CorrectNutritionFunc(ctx, input)
}

type settingsServiceStub struct {
	GetFunc    func(ctx context.Context) (*domain.Settings, error)
	UpdateFunc func(ctx context.Context, candidate domain.Settings) error
}

func (s *settingsServiceStub) Get(ctx context.Context) (*domain.Settings, error) {
	return s.GetFunc(ctx)
}

func (s *settingsServiceStub) Update(ctx context.Context, candidate domain.Settings) error {
	return s.UpdateFunc(ctx, candidate)
}

type statsServiceStub struct {
	GetRangeFunc func(ctx context.Context, token string) (*stats.RangeStats, error)
}

func (s *statsServiceStub) GetRange(ctx context.Context, token string) (*stats.RangeStats, error) {
	return s.GetRangeFunc(ctx, token)
}

type pingerStub struct {
	PingFunc func(ctx context.Context) error
}

func (s *pingerStub) Ping(ctx context.Context) error {
	return s.PingFunc(ctx)
}
