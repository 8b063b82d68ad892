package notify

import (
	"context"
	"sync"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

var _ subscriptionRepo = &subscriptionRepoMock{}

type subscriptionRepoMock struct {
	SubscribeFunc        func(ctx context.Context, userID, typeID int64) error
	UnsubscribeFunc      func(ctx context.Context, userID, typeID int64) error
	ListByUserFunc       func(ctx context.Context, userID int64) ([]domain.Subscription, error)
	RecipientsByTypeFunc func(ctx context.Context, typeID int64) ([]int64, error)

	calls struct {
		Subscribe []struct {
			Ctx    context.Context
			UserID int64
			TypeID int64
		}
		Unsubscribe []struct {
			Ctx    context.Context
			UserID int64
			TypeID int64
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID int64
		}
		RecipientsByType []struct {
			Ctx    context.Context
			TypeID int64
		}
	}
	lockSubscribe        sync.RWMutex
	lockUnsubscribe      sync.RWMutex
	lockListByUser       sync.RWMutex
	lockRecipientsByType sync.RWMutex
}

func (mock *subscriptionRepoMock) Subscribe(ctx context.Context, userID, typeID int64) error {
	if mock.SubscribeFunc == nil {
		panic("subscriptionRepoMock.SubscribeFunc: method is nil but subscriptionRepo.Subscribe was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		TypeID int64
	}{Ctx: ctx, UserID: userID, TypeID: typeID}
	mock.lockSubscribe.Lock()
	mock.calls.Subscribe = append(mock.calls.Subscribe, callInfo)
	mock.lockSubscribe.Unlock()
	return mock.SubscribeFunc(ctx, userID, typeID)
}

func (mock *subscriptionRepoMock) SubscribeCalls() []struct {
	Ctx    context.Context
	UserID int64
	TypeID int64
} {
	mock.lockSubscribe.RLock()
	calls := mock.calls.Subscribe
	mock.lockSubscribe.RUnlock()
	return calls
}

func (mock *subscriptionRepoMock) Unsubscribe(ctx context.Context, userID, typeID int64) error {
	if mock.UnsubscribeFunc == nil {
		panic("subscriptionRepoMock.UnsubscribeFunc: method is nil but subscriptionRepo.Unsubscribe was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		TypeID int64
	}{Ctx: ctx, UserID: userID, TypeID: typeID}
	mock.lockUnsubscribe.Lock()
	mock.calls.Unsubscribe = append(mock.calls.Unsubscribe, callInfo)
	mock.lockUnsubscribe.Unlock()
	return mock.UnsubscribeFunc(ctx, userID, typeID)
}

func (mock *subscriptionRepoMock) UnsubscribeCalls() []struct {
	Ctx    context.Context
	UserID int64
	TypeID int64
} {
	mock.lockUnsubscribe.RLock()
	calls := mock.calls.Unsubscribe
	mock.lockUnsubscribe.RUnlock()
	return calls
}

func (mock *subscriptionRepoMock) ListByUser(ctx context.Context, userID int64) ([]domain.Subscription, error) {
	if mock.ListByUserFunc == nil {
		panic("subscriptionRepoMock.ListByUserFunc: method is nil but subscriptionRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *subscriptionRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *subscriptionRepoMock) RecipientsByType(ctx context.Context, typeID int64) ([]int64, error) {
	if mock.RecipientsByTypeFunc == nil {
		panic("subscriptionRepoMock.RecipientsByTypeFunc: method is nil but subscriptionRepo.RecipientsByType was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TypeID int64
	}{Ctx: ctx, TypeID: typeID}
	mock.lockRecipientsByType.Lock()
	mock.calls.RecipientsByType = append(mock.calls.RecipientsByType, callInfo)
	mock.lockRecipientsByType.Unlock()
	return mock.RecipientsByTypeFunc(ctx, typeID)
}

func (mock *subscriptionRepoMock) RecipientsByTypeCalls() []struct {
	Ctx    context.Context
	TypeID int64
} {
	mock.lockRecipientsByType.RLock()
	calls := mock.calls.RecipientsByType
	mock.lockRecipientsByType.RUnlock()
	return calls
}
