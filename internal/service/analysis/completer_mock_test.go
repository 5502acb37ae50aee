package analysis

import (
	"context"
	"github.com/heartmarshall/lesehilfe/internal/provider"
	"sync"
)

var _ completer = &completerMock{}

type completerMock struct {
	CompleteFunc func(ctx context.Context, req provider.CompletionRequest) (string, error)

	ConfiguredFunc func() bool

	calls struct {
		Complete []struct {
			Ctx context.Context
			Req provider.CompletionRequest
		}
		Configured []struct {
		}
	}
	lockComplete   sync.RWMutex
	lockConfigured sync.RWMutex
}

func (mock *completerMock) Complete(ctx context.Context, req provider.CompletionRequest) (string, error) {
	if mock.CompleteFunc == nil {
		panic("completerMock.CompleteFunc: method is nil but completer.Complete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req provider.CompletionRequest
	}{Ctx: ctx, Req: req}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, req)
}

func (mock *completerMock) CompleteCalls() []struct {
	Ctx context.Context
	Req provider.CompletionRequest
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

func (mock *completerMock) Configured() bool {
	if mock.ConfiguredFunc == nil {
		panic("completerMock.ConfiguredFunc: method is nil but completer.Configured was just called")
	}
	callInfo := struct {
	}{}
	mock.lockConfigured.Lock()
	mock.calls.Configured = append(mock.calls.Configured, callInfo)
	mock.lockConfigured.Unlock()
	return mock.ConfiguredFunc()
}

func (mock *completerMock) ConfiguredCalls() []struct {
} {
	mock.lockConfigured.RLock()
	calls := mock.calls.Configured
	mock.lockConfigured.RUnlock()
	return calls
}
