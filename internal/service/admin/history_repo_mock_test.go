package admin

import (
	"context"
	"sync"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	LogFunc         func(ctx context.Context, entry domain.HistoryEntry) error
	QueryFunc       func(ctx context.Context, f domain.HistoryFilter) ([]domain.HistoryEntry, error)
	TruncateAllFunc func(ctx context.Context) error

	calls struct {
		Log []struct {
			Ctx   context.Context
			Entry domain.HistoryEntry
		}
		Query []struct {
			Ctx context.Context
			F   domain.HistoryFilter
		}
		TruncateAll []struct {
			Ctx context.Context
		}
	}
	lockLog         sync.RWMutex
	lockQuery       sync.RWMutex
	lockTruncateAll sync.RWMutex
}

func (mock *historyRepoMock) Log(ctx context.Context, entry domain.HistoryEntry) error {
	if mock.LogFunc == nil {
		panic("historyRepoMock.LogFunc: method is nil but historyRepo.Log was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry domain.HistoryEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, entry)
}

func (mock *historyRepoMock) LogCalls() []struct {
	Ctx   context.Context
	Entry domain.HistoryEntry
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

func (mock *historyRepoMock) Query(ctx context.Context, f domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	if mock.QueryFunc == nil {
		panic("historyRepoMock.QueryFunc: method is nil but historyRepo.Query was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.HistoryFilter
	}{Ctx: ctx, F: f}
	mock.lockQuery.Lock()
	mock.calls.Query = append(mock.calls.Query, callInfo)
	mock.lockQuery.Unlock()
	return mock.QueryFunc(ctx, f)
}

func (mock *historyRepoMock) QueryCalls() []struct {
	Ctx context.Context
	F   domain.HistoryFilter
} {
	mock.lockQuery.RLock()
	calls := mock.calls.Query
	mock.lockQuery.RUnlock()
	return calls
}

func (mock *historyRepoMock) TruncateAll(ctx context.Context) error {
	if mock.TruncateAllFunc == nil {
		panic("historyRepoMock.TruncateAllFunc: method is nil but historyRepo.TruncateAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockTruncateAll.Lock()
	mock.calls.TruncateAll = append(mock.calls.TruncateAll, callInfo)
	mock.lockTruncateAll.Unlock()
	return mock.TruncateAllFunc(ctx)
}

func (mock *historyRepoMock) TruncateAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockTruncateAll.RLock()
	calls := mock.calls.TruncateAll
	mock.lockTruncateAll.RUnlock()
	return calls
}
