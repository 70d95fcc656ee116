package meal

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

var _ mealRepo = &mealRepoMock{}

type mealRepoMock struct {
	CreateFunc     func(ctx context.Context, userID uuid.UUID, date time.Time, mealType domain.MealType, mealTime string) (uuid.UUID, error)
	GetByIDFunc    func(ctx context.Context, userID, mealID uuid.UUID) (*domain.MealSummary, error)
	GetItemsFunc   func(ctx context.Context, userID, mealID uuid.UUID) ([]domain.MealItem, error)
	DeleteFunc     func(ctx context.Context, userID, mealID uuid.UUID) error
	CreateItemFunc func(ctx context.Context, userID, mealID, productID uuid.UUID, grams int, addedVia *string) (uuid.UUID, error)
	GetItemFunc    func(ctx context.Context, userID, itemID uuid.UUID) (*domain.MealItem, error)
	UpdateItemFunc func(ctx context.Context, userID, mealID, itemID uuid.UUID, grams int) error
	DeleteItemFunc func(ctx context.Context, userID, mealID, itemID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			Date     time.Time
			MealType domain.MealType
			MealTime string
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			MealID uuid.UUID
		}
		GetItems []struct {
			Ctx    context.Context
			UserID uuid.UUID
			MealID uuid.UUID
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			MealID uuid.UUID
		}
		CreateItem []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			MealID    uuid.UUID
			ProductID uuid.UUID
			Grams     int
			AddedVia  *string
		}
		GetItem []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ItemID uuid.UUID
		}
		UpdateItem []struct {
			Ctx    context.Context
			UserID uuid.UUID
			MealID uuid.UUID
			ItemID uuid.UUID
			Grams  int
		}
		DeleteItem []struct {
			Ctx    context.Context
			UserID uuid.UUID
			MealID uuid.UUID
			ItemID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *mealRepoMock) Create(ctx context.Context, userID uuid.UUID, date time.Time, mealType domain.MealType, mealTime string) (uuid.UUID, error) {
	if mock.CreateFunc == nil {
		panic("mealRepoMock.CreateFunc: method is nil but mealRepo.Create was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		Date     time.Time
		MealType domain.MealType
		MealTime string
	}{Ctx: ctx, UserID: userID, Date: date, MealType: mealType, MealTime: mealTime}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, userID, date, mealType, mealTime)
}

func (mock *mealRepoMock) CreateCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	Date     time.Time
	MealType domain.MealType
	MealTime string
} {
	mock.lock.RLock()
	calls := mock.calls.Create
	mock.lock.RUnlock()
	return calls
}

func (mock *mealRepoMock) GetByID(ctx context.Context, userID, mealID uuid.UUID) (*domain.MealSummary, error) {
	if mock.GetByIDFunc == nil {
		panic("mealRepoMock.GetByIDFunc: method is nil but mealRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		MealID uuid.UUID
	}{Ctx: ctx, UserID: userID, MealID: mealID}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, userID, mealID)
}

func (mock *mealRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	MealID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.GetByID
	mock.lock.RUnlock()
	return calls
}

func (mock *mealRepoMock) GetItems(ctx context.Context, userID, mealID uuid.UUID) ([]domain.MealItem, error) {
	if mock.GetItemsFunc == nil {
		panic("mealRepoMock.GetItemsFunc: method is nil but mealRepo.GetItems was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		MealID uuid.UUID
	}{Ctx: ctx, UserID: userID, MealID: mealID}
	mock.lock.Lock()
	mock.calls.GetItems = append(mock.calls.GetItems, callInfo)
	mock.lock.Unlock()
	return mock.GetItemsFunc(ctx, userID, mealID)
}

func (mock *mealRepoMock) GetItemsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	MealID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.GetItems
	mock.lock.RUnlock()
	return calls
}

func (mock *mealRepoMock) Delete(ctx context.Context, userID, mealID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("mealRepoMock.DeleteFunc: method is nil but mealRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		MealID uuid.UUID
	}{Ctx: ctx, UserID: userID, MealID: mealID}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, userID, mealID)
}

func (mock *mealRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	MealID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.Delete
	mock.lock.RUnlock()
	return calls
}

func (mock *mealRepoMock) CreateItem(ctx context.Context, userID, mealID, productID uuid.UUID, grams int, addedVia *string) (uuid.UUID, error) {
	if mock.CreateItemFunc == nil {
		panic("mealRepoMock.CreateItemFunc: method is nil but mealRepo.CreateItem was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		MealID    uuid.UUID
		ProductID uuid.UUID
		Grams     int
		AddedVia  *string
	}{Ctx: ctx, UserID: userID, MealID: mealID, ProductID: productID, Grams: grams, AddedVia: addedVia}
	mock.lock.Lock()
	mock.calls.CreateItem = append(mock.calls.CreateItem, callInfo)
	mock.lock.Unlock()
	return mock.CreateItemFunc(ctx, userID, mealID, productID, grams, addedVia)
}

func (mock *mealRepoMock) CreateItemCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	MealID    uuid.UUID
	ProductID uuid.UUID
	Grams     int
	AddedVia  *string
} {
	mock.lock.RLock()
	calls := mock.calls.CreateItem
	mock.lock.RUnlock()
	return calls
}

func (mock *mealRepoMock) GetItem(ctx context.Context, userID, itemID uuid.UUID) (*domain.MealItem, error) {
	if mock.GetItemFunc == nil {
		panic("mealRepoMock.GetItemFunc: method is nil but mealRepo.GetItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ItemID uuid.UUID
	}{Ctx: ctx, UserID: userID, ItemID: itemID}
	mock.lock.Lock()
	mock.calls.GetItem = append(mock.calls.GetItem, callInfo)
	mock.lock.Unlock()
	return mock.GetItemFunc(ctx, userID, itemID)
}

func (mock *mealRepoMock) GetItemCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ItemID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.GetItem
	mock.lock.RUnlock()
	return calls
}

func (mock *mealRepoMock) UpdateItem(ctx context.Context, userID, mealID, itemID uuid.UUID, grams int) error {
	if mock.UpdateItemFunc == nil {
		panic("mealRepoMock.UpdateItemFunc: method is nil but mealRepo.UpdateItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		MealID uuid.UUID
		ItemID uuid.UUID
		Grams  int
	}{Ctx: ctx, UserID: userID, MealID: mealID, ItemID: itemID, Grams: grams}
	mock.lock.Lock()
	mock.calls.UpdateItem = append(mock.calls.UpdateItem, callInfo)
	mock.lock.Unlock()
	return mock.UpdateItemFunc(ctx, userID, mealID, itemID, grams)
}

func (mock *mealRepoMock) UpdateItemCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	MealID uuid.UUID
	ItemID uuid.UUID
	Grams  int
} {
	mock.lock.RLock()
	calls := mock.calls.UpdateItem
	mock.lock.RUnlock()
	return calls
}

func (mock *mealRepoMock) DeleteItem(ctx context.Context, userID, mealID, itemID uuid.UUID) error {
	if mock.DeleteItemFunc == nil {
		panic("mealRepoMock.DeleteItemFunc: method is nil but mealRepo.DeleteItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		MealID uuid.UUID
		ItemID uuid.UUID
	}{Ctx: ctx, UserID: userID, MealID: mealID, ItemID: itemID}
	mock.lock.Lock()
	mock.calls.DeleteItem = append(mock.calls.DeleteItem, callInfo)
	mock.lock.Unlock()
	return mock.DeleteItemFunc(ctx, userID, mealID, itemID)
}

func (mock *mealRepoMock) DeleteItemCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	MealID uuid.UUID
	ItemID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.DeleteItem
	mock.lock.RUnlock()
	return calls
}
