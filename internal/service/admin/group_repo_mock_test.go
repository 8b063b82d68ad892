package admin

import (
	"context"
	"sync"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

var _ groupRepo = &groupRepoMock{}

type groupRepoMock struct {
	ListFunc         func(ctx context.Context) ([]domain.Group, error)
	CreateWithIDFunc func(ctx context.Context, g domain.Group) (*domain.Group, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		CreateWithID []struct {
			Ctx context.Context
			G   domain.Group
		}
	}
	lockList         sync.RWMutex
	lockCreateWithID sync.RWMutex
}

func (mock *groupRepoMock) List(ctx context.Context) ([]domain.Group, error) {
	if mock.ListFunc == nil {
		panic("groupRepoMock.ListFunc: method is nil but groupRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *groupRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *groupRepoMock) CreateWithID(ctx context.Context, g domain.Group) (*domain.Group, error) {
	if mock.CreateWithIDFunc == nil {
		panic("groupRepoMock.CreateWithIDFunc: method is nil but groupRepo.CreateWithID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   domain.Group
	}{Ctx: ctx, G: g}
	mock.lockCreateWithID.Lock()
	mock.calls.CreateWithID = append(mock.calls.CreateWithID, callInfo)
	mock.lockCreateWithID.Unlock()
	return mock.CreateWithIDFunc(ctx, g)
}

func (mock *groupRepoMock) CreateWithIDCalls() []struct {
	Ctx context.Context
	G   domain.Group
} {
	mock.lockCreateWithID.RLock()
	calls := mock.calls.CreateWithID
	mock.lockCreateWithID.RUnlock()
	return calls
}
