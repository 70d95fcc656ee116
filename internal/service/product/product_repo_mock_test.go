package product

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

var _ productRepo = &productRepoMock{}

type productRepoMock struct {
	SearchFunc               func(ctx context.Context, query string) ([]domain.Product, error)
	CreateFunc               func(ctx context.Context, name string, brand *string, userID uuid.UUID) (uuid.UUID, error)
	InsertNutritionEventFunc func(ctx context.Context, productID uuid.UUID, n domain.NutritionTotals, source domain.NutritionSource) (uuid.UUID, error)

	calls struct {
		Search []struct {
			Ctx   context.Context
			Query string
		}
		Create []struct {
			Ctx    context.Context
			Name   string
			Brand  *string
			UserID uuid.UUID
		}
		InsertNutritionEvent []struct {
			Ctx       context.Context
			ProductID uuid.UUID
			N         domain.NutritionTotals
			Source    domain.NutritionSource
		}
	}
	lock sync.RWMutex
}

func (mock *productRepoMock) Search(ctx context.Context, query string) ([]domain.Product, error) {
	if mock.SearchFunc == nil {
		panic("productRepoMock.SearchFunc: method is nil but productRepo.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
	}{Ctx: ctx, Query: query}
	mock.lock.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lock.Unlock()
	return mock.SearchFunc(ctx, query)
}

func (mock *productRepoMock) SearchCalls() []struct {
	Ctx   context.Context
	Query string
} {
	mock.lock.RLock()
	calls := mock.calls.Search
	mock.lock.RUnlock()
	return calls
}

func (mock *productRepoMock) Create(ctx context.Context, name string, brand *string, userID uuid.UUID) (uuid.UUID, error) {
	if mock.CreateFunc == nil {
		panic("productRepoMock.CreateFunc: method is nil but productRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Name   string
		Brand  *string
		UserID uuid.UUID
	}{Ctx: ctx, Name: name, Brand: brand, UserID: userID}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, name, brand, userID)
}

func (mock *productRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	Name   string
	Brand  *string
	UserID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.Create
	mock.lock.RUnlock()
	return calls
}

func (mock *productRepoMock) InsertNutritionEvent(ctx context.Context, productID uuid.UUID, n domain.NutritionTotals, source domain.NutritionSource) (uuid.UUID, error) {
	if mock.InsertNutritionEventFunc == nil {
		panic("productRepoMock.InsertNutritionEventFunc: method is nil but productRepo.InsertNutritionEvent was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProductID uuid.UUID
		N         domain.NutritionTotals
		Source    domain.NutritionSource
	}{Ctx: ctx, ProductID: productID, N: n, Source: source}
	mock.lock.Lock()
	mock.calls.InsertNutritionEvent = append(mock.calls.InsertNutritionEvent, callInfo)
	mock.lock.Unlock()
	return mock.InsertNutritionEventFunc(ctx, productID, n, source)
}

func (mock *productRepoMock) InsertNutritionEventCalls() []struct {
	Ctx       context.Context
	ProductID uuid.UUID
	N         domain.NutritionTotals
	Source    domain.NutritionSource
} {
	mock.lock.RLock()
	calls := mock.calls.InsertNutritionEvent
	mock.lock.RUnlock()
	return calls
}
