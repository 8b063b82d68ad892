package admin

import (
	"context"
	"sync"
)

var _ moderatorRepo = &moderatorRepoMock{}

type moderatorRepoMock struct {
	AddFunc    func(ctx context.Context, userID, addedBy int64) (bool, error)
	RemoveFunc func(ctx context.Context, userID int64) error
	ListFunc   func(ctx context.Context) ([]int64, error)

	calls struct {
		Add []struct {
			Ctx     context.Context
			UserID  int64
			AddedBy int64
		}
		Remove []struct {
			Ctx    context.Context
			UserID int64
		}
		List []struct {
			Ctx context.Context
		}
	}
	lockAdd    sync.RWMutex
	lockRemove sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *moderatorRepoMock) Add(ctx context.Context, userID, addedBy int64) (bool, error) {
	if mock.AddFunc == nil {
		panic("moderatorRepoMock.AddFunc: method is nil but moderatorRepo.Add was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  int64
		AddedBy int64
	}{Ctx: ctx, UserID: userID, AddedBy: addedBy}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, userID, addedBy)
}

func (mock *moderatorRepoMock) AddCalls() []struct {
	Ctx     context.Context
	UserID  int64
	AddedBy int64
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *moderatorRepoMock) Remove(ctx context.Context, userID int64) error {
	if mock.RemoveFunc == nil {
		panic("moderatorRepoMock.RemoveFunc: method is nil but moderatorRepo.Remove was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, userID)
}

func (mock *moderatorRepoMock) RemoveCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

func (mock *moderatorRepoMock) List(ctx context.Context) ([]int64, error) {
	if mock.ListFunc == nil {
		panic("moderatorRepoMock.ListFunc: method is nil but moderatorRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *moderatorRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
