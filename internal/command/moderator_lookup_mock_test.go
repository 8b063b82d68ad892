package command

import (
	"context"
	"sync"
)

var _ moderatorLookup = &moderatorLookupMock{}

type moderatorLookupMock struct {
	IsModeratorFunc func(ctx context.Context, userID int64) (bool, error)

	calls struct {
		IsModerator []struct {
			Ctx    context.Context
			UserID int64
		}
	}
	lockIsModerator sync.RWMutex
}

func (mock *moderatorLookupMock) IsModerator(ctx context.Context, userID int64) (bool, error) {
	if mock.IsModeratorFunc == nil {
		panic("moderatorLookupMock.IsModeratorFunc: method is nil but moderatorLookup.IsModerator was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockIsModerator.Lock()
	mock.calls.IsModerator = append(mock.calls.IsModerator, callInfo)
	mock.lockIsModerator.Unlock()
	return mock.IsModeratorFunc(ctx, userID)
}

func (mock *moderatorLookupMock) IsModeratorCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockIsModerator.RLock()
	calls := mock.calls.IsModerator
	mock.lockIsModerator.RUnlock()
	return calls
}
