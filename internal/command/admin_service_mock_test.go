package command

import (
	"context"
	"sync"

	"github.com/allocbot/allocbot-backend/internal/service/admin"
)

var _ adminService = &adminServiceMock{}

type adminServiceMock struct {
	AddModeratorFunc    func(ctx context.Context, input admin.ModeratorInput) (bool, error)
	RemoveModeratorFunc func(ctx context.Context, input admin.ModeratorInput) error
	ListModeratorsFunc  func(ctx context.Context) ([]int64, error)
	ExportFunc          func(ctx context.Context, input admin.ExportInput) (*admin.Dump, error)
	ImportFunc          func(ctx context.Context, dump *admin.Dump) error
	ResetFunc           func(ctx context.Context) error

	calls struct {
		AddModerator []struct {
			Ctx   context.Context
			Input admin.ModeratorInput
		}
		RemoveModerator []struct {
			Ctx   context.Context
			Input admin.ModeratorInput
		}
		ListModerators []struct {
			Ctx context.Context
		}
		Export []struct {
			Ctx   context.Context
			Input admin.ExportInput
		}
		Import []struct {
			Ctx  context.Context
			Dump *admin.Dump
		}
		Reset []struct {
			Ctx context.Context
		}
	}
	lockAddModerator    sync.RWMutex
	lockRemoveModerator sync.RWMutex
	lockListModerators  sync.RWMutex
	lockExport          sync.RWMutex
	lockImport          sync.RWMutex
	lockReset           sync.RWMutex
}

func (mock *adminServiceMock) AddModerator(ctx context.Context, input admin.ModeratorInput) (bool, error) {
	if mock.AddModeratorFunc == nil {
		panic("adminServiceMock.AddModeratorFunc: method is nil but adminService.AddModerator was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input admin.ModeratorInput
	}{Ctx: ctx, Input: input}
	mock.lockAddModerator.Lock()
	mock.calls.AddModerator = append(mock.calls.AddModerator, callInfo)
	mock.lockAddModerator.Unlock()
	return mock.AddModeratorFunc(ctx, input)
}

func (mock *adminServiceMock) AddModeratorCalls() []struct {
	Ctx   context.Context
	Input admin.ModeratorInput
} {
	mock.lockAddModerator.RLock()
	calls := mock.calls.AddModerator
	mock.lockAddModerator.RUnlock()
	return calls
}

func (mock *adminServiceMock) RemoveModerator(ctx context.Context, input admin.ModeratorInput) error {
	if mock.RemoveModeratorFunc == nil {
		panic("adminServiceMock.RemoveModeratorFunc: method is nil but adminService.RemoveModerator was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input admin.ModeratorInput
	}{Ctx: ctx, Input: input}
	mock.lockRemoveModerator.Lock()
	mock.calls.RemoveModerator = append(mock.calls.RemoveModerator, callInfo)
	mock.lockRemoveModerator.Unlock()
	return mock.RemoveModeratorFunc(ctx, input)
}

func (mock *adminServiceMock) RemoveModeratorCalls() []struct {
	Ctx   context.Context
	Input admin.ModeratorInput
} {
	mock.lockRemoveModerator.RLock()
	calls := mock.calls.RemoveModerator
	mock.lockRemoveModerator.RUnlock()
	return calls
}

func (mock *adminServiceMock) ListModerators(ctx context.Context) ([]int64, error) {
	if mock.ListModeratorsFunc == nil {
		panic("adminServiceMock.ListModeratorsFunc: method is nil but adminService.ListModerators was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListModerators.Lock()
	mock.calls.ListModerators = append(mock.calls.ListModerators, callInfo)
	mock.lockListModerators.Unlock()
	return mock.ListModeratorsFunc(ctx)
}

func (mock *adminServiceMock) ListModeratorsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListModerators.RLock()
	calls := mock.calls.ListModerators
	mock.lockListModerators.RUnlock()
	return calls
}

func (mock *adminServiceMock) Export(ctx context.Context, input admin.ExportInput) (*admin.Dump, error) {
	if mock.ExportFunc == nil {
		panic("adminServiceMock.ExportFunc: method is nil but adminService.Export was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input admin.ExportInput
	}{Ctx: ctx, Input: input}
	mock.lockExport.Lock()
	mock.calls.Export = append(mock.calls.Export, callInfo)
	mock.lockExport.Unlock()
	return mock.ExportFunc(ctx, input)
}

func (mock *adminServiceMock) ExportCalls() []struct {
	Ctx   context.Context
	Input admin.ExportInput
} {
	mock.lockExport.RLock()
	calls := mock.calls.Export
	mock.lockExport.RUnlock()
	return calls
}

func (mock *adminServiceMock) Import(ctx context.Context, dump *admin.Dump) error {
	if mock.ImportFunc == nil {
		panic("adminServiceMock.ImportFunc: method is nil but adminService.Import was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Dump *admin.Dump
	}{Ctx: ctx, Dump: dump}
	mock.lockImport.Lock()
	mock.calls.Import = append(mock.calls.Import, callInfo)
	mock.lockImport.Unlock()
	return mock.ImportFunc(ctx, dump)
}

func (mock *adminServiceMock) ImportCalls() []struct {
	Ctx  context.Context
	Dump *admin.Dump
} {
	mock.lockImport.RLock()
	calls := mock.calls.Import
	mock.lockImport.RUnlock()
	return calls
}

func (mock *adminServiceMock) Reset(ctx context.Context) error {
	if mock.ResetFunc == nil {
		panic("adminServiceMock.ResetFunc: method is nil but adminService.Reset was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockReset.Lock()
	mock.calls.Reset = append(mock.calls.Reset, callInfo)
	mock.lockReset.Unlock()
	return mock.ResetFunc(ctx)
}

func (mock *adminServiceMock) ResetCalls() []struct {
	Ctx context.Context
} {
	mock.lockReset.RLock()
	calls := mock.calls.Reset
	mock.lockReset.RUnlock()
	return calls
}
