package texts

import (
	"context"
	"sync"
)

var _ slotStore = &slotStoreMock{}

type slotStoreMock struct {
	GetFunc func(ctx context.Context, name string) ([]byte, error)

	PutFunc func(ctx context.Context, name string, data []byte) error

	calls struct {
		Get []struct {
			Ctx  context.Context
			Name string
		}
		Put []struct {
			Ctx  context.Context
			Name string
			Data []byte
		}
	}
	lockGet sync.RWMutex
	lockPut sync.RWMutex
}

func (mock *slotStoreMock) Get(ctx context.Context, name string) ([]byte, error) {
	if mock.GetFunc == nil {
		panic("slotStoreMock.GetFunc: method is nil but slotStore.Get was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, name)
}

func (mock *slotStoreMock) GetCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *slotStoreMock) Put(ctx context.Context, name string, data []byte) error {
	if mock.PutFunc == nil {
		panic("slotStoreMock.PutFunc: method is nil but slotStore.Put was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
		Data []byte
	}{Ctx: ctx, Name: name, Data: data}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, name, data)
}

func (mock *slotStoreMock) PutCalls() []struct {
	Ctx  context.Context
	Name string
	Data []byte
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}
