package history

import (
	"context"
	"sync"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	QueryFunc func(ctx context.Context, f domain.HistoryFilter) ([]domain.HistoryEntry, error)

	calls struct {
		Query []struct {
			Ctx context.Context
			F   domain.HistoryFilter
		}
	}
	lockQuery sync.RWMutex
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
