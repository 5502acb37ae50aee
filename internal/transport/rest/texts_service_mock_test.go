package rest

import (
	"context"
	"github.com/heartmarshall/lesehilfe/internal/service/texts"
	"sync"
)

var _ textsService = &textsServiceMock{}

type textsServiceMock struct {
	AddFunc     func(ctx context.Context, input texts.AddInput) ([]string, error)
	ImportFunc  func(ctx context.Context, input texts.ImportInput) (*texts.ImportResult, error)
	ListFunc    func(ctx context.Context) ([]string, error)
	ReplaceFunc func(ctx context.Context, input texts.ReplaceInput) ([]string, error)

	calls struct {
		Add []struct {
			Ctx   context.Context
			Input texts.AddInput
		}
		Import []struct {
			Ctx   context.Context
			Input texts.ImportInput
		}
		List []struct {
			Ctx context.Context
		}
		Replace []struct {
			Ctx   context.Context
			Input texts.ReplaceInput
		}
	}
	lockAdd     sync.RWMutex
	lockImport  sync.RWMutex
	lockList    sync.RWMutex
	lockReplace sync.RWMutex
}

func (mock *textsServiceMock) Add(ctx context.Context, input texts.AddInput) ([]string, error) {
	if mock.AddFunc == nil {
		panic("textsServiceMock.AddFunc: method is nil but textsService.Add was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input texts.AddInput
	}{Ctx: ctx, Input: input}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, input)
}

func (mock *textsServiceMock) AddCalls() []struct {
	Ctx   context.Context
	Input texts.AddInput
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *textsServiceMock) Import(ctx context.Context, input texts.ImportInput) (*texts.ImportResult, error) {
	if mock.ImportFunc == nil {
		panic("textsServiceMock.ImportFunc: method is nil but textsService.Import was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input texts.ImportInput
	}{Ctx: ctx, Input: input}
	mock.lockImport.Lock()
	mock.calls.Import = append(mock.calls.Import, callInfo)
	mock.lockImport.Unlock()
	return mock.ImportFunc(ctx, input)
}

func (mock *textsServiceMock) ImportCalls() []struct {
	Ctx   context.Context
	Input texts.ImportInput
} {
	mock.lockImport.RLock()
	calls := mock.calls.Import
	mock.lockImport.RUnlock()
	return calls
}

func (mock *textsServiceMock) List(ctx context.Context) ([]string, error) {
	if mock.ListFunc == nil {
		panic("textsServiceMock.ListFunc: method is nil but textsService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *textsServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *textsServiceMock) Replace(ctx context.Context, input texts.ReplaceInput) ([]string, error) {
	if mock.ReplaceFunc == nil {
		panic("textsServiceMock.ReplaceFunc: method is nil but textsService.Replace was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input texts.ReplaceInput
	}{Ctx: ctx, Input: input}
	mock.lockReplace.Lock()
	mock.calls.Replace = append(mock.calls.Replace, callInfo)
	mock.lockReplace.Unlock()
	return mock.ReplaceFunc(ctx, input)
}

func (mock *textsServiceMock) ReplaceCalls() []struct {
	Ctx   context.Context
	Input texts.ReplaceInput
} {
	mock.lockReplace.RLock()
	calls := mock.calls.Replace
	mock.lockReplace.RUnlock()
	return calls
}
