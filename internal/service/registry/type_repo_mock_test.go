package registry

import (
	"context"
	"sync"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

var _ typeRepo = &typeRepoMock{}

type typeRepoMock struct {
	CreateFunc  func(ctx context.Context, name string, requiresApproval bool) (*domain.ItemType, error)
	GetByIDFunc func(ctx context.Context, id int64) (*domain.ItemType, error)
	ListFunc    func(ctx context.Context) ([]domain.ItemType, error)
	DeleteFunc  func(ctx context.Context, id int64) error

	calls struct {
		Create []struct {
			Ctx              context.Context
			Name             string
			RequiresApproval bool
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		List []struct {
			Ctx context.Context
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *typeRepoMock) Create(ctx context.Context, name string, requiresApproval bool) (*domain.ItemType, error) {
	if mock.CreateFunc == nil {
		panic("typeRepoMock.CreateFunc: method is nil but typeRepo.Create was just called")
	}
	callInfo := struct {
		Ctx              context.Context
		Name             string
		RequiresApproval bool
	}{Ctx: ctx, Name: name, RequiresApproval: requiresApproval}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, name, requiresApproval)
}

func (mock *typeRepoMock) CreateCalls() []struct {
	Ctx              context.Context
	Name             string
	RequiresApproval bool
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *typeRepoMock) GetByID(ctx context.Context, id int64) (*domain.ItemType, error) {
	if mock.GetByIDFunc == nil {
		panic("typeRepoMock.GetByIDFunc: method is nil but typeRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *typeRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
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

func (mock *typeRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("typeRepoMock.DeleteFunc: method is nil but typeRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *typeRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
