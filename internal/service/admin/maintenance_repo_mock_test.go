package admin

import (
	"context"
	"sync"
)

var _ maintenanceRepo = &maintenanceRepoMock{}

type maintenanceRepoMock struct {
	TruncateRegistryFunc func(ctx context.Context) error
	SyncSequencesFunc    func(ctx context.Context) error

	calls struct {
		TruncateRegistry []struct {
			Ctx context.Context
		}
		SyncSequences []struct {
			Ctx context.Context
		}
	}
	lockTruncateRegistry sync.RWMutex
	lockSyncSequences    sync.RWMutex
}

func (mock *maintenanceRepoMock) TruncateRegistry(ctx context.Context) error {
	if mock.TruncateRegistryFunc == nil {
		panic("maintenanceRepoMock.TruncateRegistryFunc: method is nil but maintenanceRepo.TruncateRegistry was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockTruncateRegistry.Lock()
	mock.calls.TruncateRegistry = append(mock.calls.TruncateRegistry, callInfo)
	mock.lockTruncateRegistry.Unlock()
	return mock.TruncateRegistryFunc(ctx)
}

func (mock *maintenanceRepoMock) TruncateRegistryCalls() []struct {
	Ctx context.Context
} {
	mock.lockTruncateRegistry.RLock()
	calls := mock.calls.TruncateRegistry
	mock.lockTruncateRegistry.RUnlock()
	return calls
}

func (mock *maintenanceRepoMock) SyncSequences(ctx context.Context) error {
	if mock.SyncSequencesFunc == nil {
		panic("maintenanceRepoMock.SyncSequencesFunc: method is nil but maintenanceRepo.SyncSequences was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockSyncSequences.Lock()
	mock.calls.SyncSequences = append(mock.calls.SyncSequences, callInfo)
	mock.lockSyncSequences.Unlock()
	return mock.SyncSequencesFunc(ctx)
}

func (mock *maintenanceRepoMock) SyncSequencesCalls() []struct {
	Ctx context.Context
} {
	mock.lockSyncSequences.RLock()
	calls := mock.calls.SyncSequences
	mock.lockSyncSequences.RUnlock()
	return calls
}
