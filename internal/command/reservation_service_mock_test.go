package command

import (
	"context"
	"sync"

	"github.com/allocbot/allocbot-backend/internal/domain"
	"github.com/allocbot/allocbot-backend/internal/service/reservation"
)

var _ reservationService = &reservationServiceMock{}

type reservationServiceMock struct {
	TakeFunc        func(ctx context.Context, input reservation.TakeInput) (*domain.Item, error)
	FreeFunc        func(ctx context.Context, input reservation.FreeInput) (*domain.Item, error)
	StealFunc       func(ctx context.Context, input reservation.StealInput) (*reservation.StealResult, error)
	AssignOwnerFunc func(ctx context.Context, input reservation.AssignOwnerInput) (*reservation.AssignResult, error)

	calls struct {
		Take []struct {
			Ctx   context.Context
			Input reservation.TakeInput
		}
		Free []struct {
			Ctx   context.Context
			Input reservation.FreeInput
		}
		Steal []struct {
			Ctx   context.Context
			Input reservation.StealInput
		}
		AssignOwner []struct {
			Ctx   context.Context
			Input reservation.AssignOwnerInput
		}
	}
	lockTake        sync.RWMutex
	lockFree        sync.RWMutex
	lockSteal       sync.RWMutex
	lockAssignOwner sync.RWMutex
}

func (mock *reservationServiceMock) Take(ctx context.Context, input reservation.TakeInput) (*domain.Item, error) {
	if mock.TakeFunc == nil {
		panic("reservationServiceMock.TakeFunc: method is nil but reservationService.Take was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reservation.TakeInput
	}{Ctx: ctx, Input: input}
	mock.lockTake.Lock()
	mock.calls.Take = append(mock.calls.Take, callInfo)
	mock.lockTake.Unlock()
	return mock.TakeFunc(ctx, input)
}

func (mock *reservationServiceMock) TakeCalls() []struct {
	Ctx   context.Context
	Input reservation.TakeInput
} {
	mock.lockTake.RLock()
	calls := mock.calls.Take
	mock.lockTake.RUnlock()
	return calls
}

func (mock *reservationServiceMock) Free(ctx context.Context, input reservation.FreeInput) (*domain.Item, error) {
	if mock.FreeFunc == nil {
		panic("reservationServiceMock.FreeFunc: method is nil but reservationService.Free was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reservation.FreeInput
	}{Ctx: ctx, Input: input}
	mock.lockFree.Lock()
	mock.calls.Free = append(mock.calls.Free, callInfo)
	mock.lockFree.Unlock()
	return mock.FreeFunc(ctx, input)
}

func (mock *reservationServiceMock) FreeCalls() []struct {
	Ctx   context.Context
	Input reservation.FreeInput
} {
	mock.lockFree.RLock()
	calls := mock.calls.Free
	mock.lockFree.RUnlock()
	return calls
}

func (mock *reservationServiceMock) Steal(ctx context.Context, input reservation.StealInput) (*reservation.StealResult, error) {
	if mock.StealFunc == nil {
		panic("reservationServiceMock.StealFunc: method is nil but reservationService.Steal was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reservation.StealInput
	}{Ctx: ctx, Input: input}
	mock.lockSteal.Lock()
	mock.calls.Steal = append(mock.calls.Steal, callInfo)
	mock.lockSteal.Unlock()
	return mock.StealFunc(ctx, input)
}

func (mock *reservationServiceMock) StealCalls() []struct {
	Ctx   context.Context
	Input reservation.StealInput
} {
	mock.lockSteal.RLock()
	calls := mock.calls.Steal
	mock.lockSteal.RUnlock()
	return calls
}

func (mock *reservationServiceMock) AssignOwner(ctx context.Context, input reservation.AssignOwnerInput) (*reservation.AssignResult, error) {
	if mock.AssignOwnerFunc == nil {
		panic("reservationServiceMock.AssignOwnerFunc: method is nil but reservationService.AssignOwner was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reservation.AssignOwnerInput
	}{Ctx: ctx, Input: input}
	mock.lockAssignOwner.Lock()
	mock.calls.AssignOwner = append(mock.calls.AssignOwner, callInfo)
	mock.lockAssignOwner.Unlock()
	return mock.AssignOwnerFunc(ctx, input)
}

func (mock *reservationServiceMock) AssignOwnerCalls() []struct {
	Ctx   context.Context
	Input reservation.AssignOwnerInput
} {
	mock.lockAssignOwner.RLock()
	calls := mock.calls.AssignOwner
	mock.lockAssignOwner.RUnlock()
	return calls
}
