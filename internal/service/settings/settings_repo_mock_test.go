package settings

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetFunc    func(ctx context.Context, userID uuid.UUID) (*domain.Settings, error)
	UpdateFunc func(ctx context.Context, userID uuid.UUID, s domain.Settings) error

	calls struct {
		Get []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Update []struct {
			Ctx    context.Context
			UserID uuid.UUID
			S      domain.Settings
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

func (mock *settingsRepoMock) Update(ctx context.Context, userID uuid.UUID, s domain.Settings) error {
	if mock.UpdateFunc == nil {
		panic("settingsRepoMock.UpdateFunc: method is nil but settingsRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		S      domain.Settings
	}{Ctx: ctx, UserID: userID, S: s}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, userID, s)
}

func (mock *settingsRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	S      domain.Settings
} {
	mock.lock.RLock()
	calls := mock.calls.Update
	mock.lock.RUnlock()
	return calls
}
