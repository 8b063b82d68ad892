package command

import (
	"context"
	"sync"

	"github.com/allocbot/allocbot-backend/internal/domain"
	"github.com/allocbot/allocbot-backend/internal/service/history"
)

var _ historyService = &historyServiceMock{}

type historyServiceMock struct {
	QueryFunc     func(ctx context.Context, input history.QueryInput) ([]domain.HistoryEntry, error)
	MyHistoryFunc func(ctx context.Context, input history.MyHistoryInput) ([]domain.HistoryEntry, error)

	calls struct {
		Query []struct {
			Ctx   context.Context
			Input history.QueryInput
		}
		MyHistory []struct {
			Ctx   context.Context
			Input history.MyHistoryInput
		}
	}
	lockQuery     sync.RWMutex
	lockMyHistory sync.RWMutex
}

func (mock *historyServiceMock) Query(ctx context.Context, input history.QueryInput) ([]domain.HistoryEntry, error) {
	if mock.QueryFunc == nil {
		panic("historyServiceMock.QueryFunc: method is nil but historyService.Query was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input history.QueryInput
	}{Ctx: ctx, Input: input}
	mock.lockQuery.Lock()
	mock.calls.Query = append(mock.calls.Query, callInfo)
	mock.lockQuery.Unlock()
	return mock.QueryFunc(ctx, input)
}

func (mock *historyServiceMock) QueryCalls() []struct {
	Ctx   context.Context
	Input history.QueryInput
} {
	mock.lockQuery.RLock()
	calls := mock.calls.Query
	mock.lockQuery.RUnlock()
	return calls
}

func (mock *historyServiceMock) MyHistory(ctx context.Context, input history.MyHistoryInput) ([]domain.HistoryEntry, error) {
	if mock.MyHistoryFunc == nil {
		panic("historyServiceMock.MyHistoryFunc: method is nil but historyService.MyHistory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input history.MyHistoryInput
	}{Ctx: ctx, Input: input}
	mock.lockMyHistory.Lock()
	mock.calls.MyHistory = append(mock.calls.MyHistory, callInfo)
	mock.lockMyHistory.Unlock()
	return mock.MyHistoryFunc(ctx, input)
}

func (mock *historyServiceMock) MyHistoryCalls() []struct {
	Ctx   context.Context
	Input history.MyHistoryInput
} {
	mock.lockMyHistory.RLock()
	calls := mock.calls.MyHistory
	mock.lockMyHistory.RUnlock()
	return calls
}
