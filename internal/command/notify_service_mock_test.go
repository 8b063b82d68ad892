package command

import (
	"context"
	"sync"

	"github.com/allocbot/allocbot-backend/internal/domain"
	"github.com/allocbot/allocbot-backend/internal/service/notify"
)

var _ notifyService = &notifyServiceMock{}

type notifyServiceMock struct {
	SubscribeFunc     func(ctx context.Context, input notify.SubscribeInput) error
	UnsubscribeFunc   func(ctx context.Context, input notify.SubscribeInput) error
	SubscriptionsFunc func(ctx context.Context) ([]domain.Subscription, error)
	ForItemChangeFunc func(ctx context.Context, change notify.ItemChange) ([]notify.Message, error)

	calls struct {
		Subscribe []struct {
			Ctx   context.Context
			Input notify.SubscribeInput
		}
		Unsubscribe []struct {
			Ctx   context.Context
			Input notify.SubscribeInput
		}
		Subscriptions []struct {
			Ctx context.Context
		}
		ForItemChange []struct {
			Ctx    context.Context
			Change notify.ItemChange
		}
	}
	lockSubscribe     sync.RWMutex
	lockUnsubscribe   sync.RWMutex
	lockSubscriptions sync.RWMutex
	lockForItemChange sync.RWMutex
}

func (mock *notifyServiceMock) Subscribe(ctx context.Context, input notify.SubscribeInput) error {
	if mock.SubscribeFunc == nil {
		panic("notifyServiceMock.SubscribeFunc: method is nil but notifyService.Subscribe was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input notify.SubscribeInput
	}{Ctx: ctx, Input: input}
	mock.lockSubscribe.Lock()
	mock.calls.Subscribe = append(mock.calls.Subscribe, callInfo)
	mock.lockSubscribe.Unlock()
	return mock.SubscribeFunc(ctx, input)
}

func (mock *notifyServiceMock) SubscribeCalls() []struct {
	Ctx   context.Context
	Input notify.SubscribeInput
} {
	mock.lockSubscribe.RLock()
	calls := mock.calls.Subscribe
	mock.lockSubscribe.RUnlock()
	return calls
}

func (mock *notifyServiceMock) Unsubscribe(ctx context.Context, input notify.SubscribeInput) error {
	if mock.UnsubscribeFunc == nil {
		panic("notifyServiceMock.UnsubscribeFunc: method is nil but notifyService.Unsubscribe was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input notify.SubscribeInput
	}{Ctx: ctx, Input: input}
	mock.lockUnsubscribe.Lock()
	mock.calls.Unsubscribe = append(mock.calls.Unsubscribe, callInfo)
	mock.lockUnsubscribe.Unlock()
	return mock.UnsubscribeFunc(ctx, input)
}

func (mock *notifyServiceMock) UnsubscribeCalls() []struct {
	Ctx   context.Context
	Input notify.SubscribeInput
} {
	mock.lockUnsubscribe.RLock()
	calls := mock.calls.Unsubscribe
	mock.lockUnsubscribe.RUnlock()
	return calls
}

func (mock *notifyServiceMock) Subscriptions(ctx context.Context) ([]domain.Subscription, error) {
	if mock.SubscriptionsFunc == nil {
		panic("notifyServiceMock.SubscriptionsFunc: method is nil but notifyService.Subscriptions was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockSubscriptions.Lock()
	mock.calls.Subscriptions = append(mock.calls.Subscriptions, callInfo)
	mock.lockSubscriptions.Unlock()
	return mock.SubscriptionsFunc(ctx)
}

func (mock *notifyServiceMock) SubscriptionsCalls() []struct {
	Ctx context.Context
} {
	mock.lockSubscriptions.RLock()
	calls := mock.calls.Subscriptions
	mock.lockSubscriptions.RUnlock()
	return calls
}

func (mock *notifyServiceMock) ForItemChange(ctx context.Context, change notify.ItemChange) ([]notify.Message, error) {
	if mock.ForItemChangeFunc == nil {
		panic("notifyServiceMock.ForItemChangeFunc: method is nil but notifyService.ForItemChange was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Change notify.ItemChange
	}{Ctx: ctx, Change: change}
	mock.lockForItemChange.Lock()
	mock.calls.ForItemChange = append(mock.calls.ForItemChange, callInfo)
	mock.lockForItemChange.Unlock()
	return mock.ForItemChangeFunc(ctx, change)
}

func (mock *notifyServiceMock) ForItemChangeCalls() []struct {
	Ctx    context.Context
	Change notify.ItemChange
} {
	mock.lockForItemChange.RLock()
	calls := mock.calls.ForItemChange
	mock.lockForItemChange.RUnlock()
	return calls
}
