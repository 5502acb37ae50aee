package rest

import (
	"context"
	"github.com/heartmarshall/lesehilfe/internal/service/flashcard"
	"sync"
)

var _ flashcardService = &flashcardServiceMock{}

type flashcardServiceMock struct {
	ExportFunc func(ctx context.Context, input flashcard.ExportInput) error

	calls struct {
		Export []struct {
			Ctx   context.Context
			Input flashcard.ExportInput
		}
	}
	lockExport sync.RWMutex
}

func (mock *flashcardServiceMock) Export(ctx context.Context, input flashcard.ExportInput) error {
	if mock.ExportFunc == nil {
		panic("flashcardServiceMock.ExportFunc: method is nil but flashcardService.Export was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input flashcard.ExportInput
	}{Ctx: ctx, Input: input}
	mock.lockExport.Lock()
	mock.calls.Export = append(mock.calls.Export, callInfo)
	mock.lockExport.Unlock()
	return mock.ExportFunc(ctx, input)
}

func (mock *flashcardServiceMock) ExportCalls() []struct {
	Ctx   context.Context
	Input flashcard.ExportInput
} {
	mock.lockExport.RLock()
	calls := mock.calls.Export
	mock.lockExport.RUnlock()
	return calls
}
