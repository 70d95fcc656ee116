package stats

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

var _ statsRepo = &statsRepoMock{}

type statsRepoMock struct {
	FetchRangeFunc  func(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.DayTotals, error)
	CurrentDateFunc func(ctx context.Context) (time.Time, error)

	calls struct {
		FetchRange []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Start  time.Time
			End    time.Time
		}
		CurrentDate []struct {
			Ctx context.Context
		}
	}
	lock sync.RWMutex
}

func (mock *statsRepoMock) FetchRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.DayTotals, error) {
	if mock.FetchRangeFunc == nil {
		panic("statsRepoMock.FetchRangeFunc: method is nil but statsRepo.FetchRange was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Start  time.Time
		End    time.Time
	}{Ctx: ctx, UserID: userID, Start: start, End: end}
	mock.lock.Lock()
	mock.calls.FetchRange = append(mock.calls.FetchRange, callInfo)
	mock.lock.Unlock()
	return mock.FetchRangeFunc(ctx, userID, start, end)
}

func (mock *statsRepoMock) FetchRangeCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Start  time.Time
	End    time.Time
} {
	mock.lock.RLock()
	calls := mock.calls.FetchRange
	mock.lock.RUnlock()
	return calls
}

func (mock *statsRepoMock) CurrentDate(ctx context.Context) (time.Time, error) {
	if mock.CurrentDateFunc == nil {
		panic("statsRepoMock.CurrentDateFunc: method is nil but statsRepo.CurrentDate was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lock.Lock()
	mock.calls.CurrentDate = append(mock.calls.CurrentDate, callInfo)
	mock.lock.Unlock()
	return mock.CurrentDateFunc(ctx)
}

func (mock *statsRepoMock) CurrentDateCalls() []struct {
	Ctx context.Context
} {
	mock.lock.RLock()
	calls := mock.calls.CurrentDate
	mock.lock.RUnlock()
	return calls
}

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetFunc func(ctx context.Context, userID uuid.UUID) (*domain.Settings, error)

	calls struct {
		Get []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *settingsRepoMock) Get(ctx context.Context, userID uuid.UUID) (*domain.Settings, error) {
	if mock.GetFunc == nil {
		panic("settingsRepoMock.GetFunc: method is nil but settingsRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lock.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lock.Unlock()
	return mock.GetFunc(ctx, userID)
}

func (mock *settingsRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.Get
	mock.lock.RUnlock()
	return calls
}
