package day

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

var _ dayRepo = &dayRepoMock{}

type dayRepoMock struct {
	FetchDayTotalsFunc  func(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DayTotals, error)
	FetchMealTotalsFunc func(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.MealSummary, error)
	FetchInsightFunc    func(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.Insight, error)
	FetchSettingsFunc   func(ctx context.Context, userID uuid.UUID) (*domain.Settings, error)

	calls struct {
		FetchDayTotals []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Date   time.Time
		}
		FetchMealTotals []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Date   time.Time
		}
		FetchInsight []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Date   time.Time
		}
		FetchSettings []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *dayRepoMock) FetchDayTotals(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DayTotals, error) {
	if mock.FetchDayTotalsFunc == nil {
		panic("dayRepoMock.FetchDayTotalsFunc: method is nil but dayRepo.FetchDayTotals was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Date   time.Time
	}{Ctx: ctx, UserID: userID, Date: date}
	mock.lock.Lock()
	mock.calls.FetchDayTotals = append(mock.calls.FetchDayTotals, callInfo)
	mock.lock.Unlock()
	return mock.FetchDayTotalsFunc(ctx, userID, date)
}

func (mock *dayRepoMock) FetchDayTotalsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Date   time.Time
} {
	mock.lock.RLock()
	calls := mock.calls.FetchDayTotals
	mock.lock.RUnlock()
	return calls
}

func (mock *dayRepoMock) FetchMealTotals(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.MealSummary, error) {
	if mock.FetchMealTotalsFunc == nil {
		panic("dayRepoMock.FetchMealTotalsFunc: method is nil but dayRepo.FetchMealTotals was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Date   time.Time
	}{Ctx: ctx, UserID: userID, Date: date}
	mock.lock.Lock()
	mock.calls.FetchMealTotals = append(mock.calls.FetchMealTotals, callInfo)
	mock.lock.Unlock()
	return mock.FetchMealTotalsFunc(ctx, userID, date)
}

func (mock *dayRepoMock) FetchMealTotalsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Date   time.Time
} {
	mock.lock.RLock()
	calls := mock.calls.FetchMealTotals
	mock.lock.RUnlock()
	return calls
}

func (mock *dayRepoMock) FetchInsight(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.Insight, error) {
	if mock.FetchInsightFunc == nil {
		panic("dayRepoMock.FetchInsightFunc: method is nil but dayRepo.FetchInsight was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Date   time.Time
	}{Ctx: ctx, UserID: userID, Date: date}
	mock.lock.Lock()
	mock.calls.FetchInsight = append(mock.calls.FetchInsight, callInfo)
	mock.lock.Unlock()
	return mock.FetchInsightFunc(ctx, userID, date)
}

func (mock *dayRepoMock) FetchInsightCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Date   time.Time
} {
	mock.lock.RLock()
	calls := mock.calls.FetchInsight
	mock.lock.RUnlock()
	return calls
}

func (mock *dayRepoMock) FetchSettings(ctx context.Context, userID uuid.UUID) (*domain.Settings, error) {
	if mock.FetchSettingsFunc == nil {
		panic("dayRepoMock.FetchSettingsFunc: method is nil but dayRepo.FetchSettings was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lock.Lock()
	mock.calls.FetchSettings = append(mock.calls.FetchSettings, callInfo)
	mock.lock.Unlock()
	return mock.FetchSettingsFunc(ctx, userID)
}

func (mock *dayRepoMock) FetchSettingsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.FetchSettings
	mock.lock.RUnlock()
	return calls
}
