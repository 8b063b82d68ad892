package admin

import (
	"context"
	"sync"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

var _ typeRepo = &typeRepoMock{}

type typeRepoMock struct {
	ListFunc         func(ctx context.Context) ([]domain.ItemType, error)
	CreateWithIDFunc func(ctx context.Context, t domain.ItemType) (*domain.ItemType, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		CreateWithID []struct {
			Ctx context.Context
			T   domain.ItemType
		}
	}
	lockList         sync.RWMutex
	lockCreateWithID sync.RWMutex
}

func (mock *typeRepoMock) List(ctx context.Context) ([]domain.ItemType, error) {
	if mock.ListFunc == nil {
		panic("typeRepoMock.ListFunc: method is nil but typeRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *typeRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *typeRepoMock) CreateWithID(ctx context.Context, t domain.ItemType) (*domain.ItemType, error) {
	if mock.CreateWithIDFunc == nil {
		panic("typeRepoMock.CreateWithIDFunc: method is nil but typeRepo.CreateWithID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.ItemType
	}{Ctx: ctx, T: t}
	mock.lockCreateWithID.Lock()
	mock.calls.CreateWithID = append(mock.calls.CreateWithID, callInfo)
	mock.lockCreateWithID.Unlock()
	return mock.CreateWithIDFunc(ctx, t)
}

func (mock *typeRepoMock) CreateWithIDCalls() []struct {
	Ctx context.Context
	T   domain.ItemType
} {
	mock.lockCreateWithID.RLock()
	calls := mock.calls.CreateWithID
	mock.lockCreateWithID.RUnlock()
	return calls
}
