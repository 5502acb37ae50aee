package tui

import (
	"context"
	"sync"

	"github.com/heartmarshall/lesehilfe/internal/apiclient"
	"github.com/heartmarshall/lesehilfe/internal/domain"
)

// BackendMock is a mock implementation of Backend.
type BackendMock struct {
	ListTextsFunc       func(ctx context.Context) ([]string, error)
	AddTextFunc         func(ctx context.Context, text string) ([]string, error)
	ImportTextFunc      func(ctx context.Context, rawURL string) (*apiclient.ImportResult, error)
	AnalyzeFunc         func(ctx context.Context, word string, textContext string) (*domain.WordAnalysis, error)
	ExportFlashcardFunc func(ctx context.Context, german string, russian string) error

	calls struct {
		Analyze []struct {
			Word        string
			TextContext string
		}
		AddText []struct {
			Text string
		}
		ExportFlashcard []struct {
			German  string
			Russian string
		}
	}
	lock sync.RWMutex
}

func (mock *BackendMock) ListTexts(ctx context.Context) ([]string, error) {
	if mock.ListTextsFunc == nil {
		panic("BackendMock.ListTextsFunc: method is nil but Backend.ListTexts was just called")
	}
	return mock.ListTextsFunc(ctx)
}

func (mock *BackendMock) AddText(ctx context.Context, text string) ([]string, error) {
	if mock.AddTextFunc == nil {
		panic("BackendMock.AddTextFunc: method is nil but Backend.AddText was just called")
	}
	mock.lock.Lock()
	mock.calls.AddText = append(mock.calls.AddText, struct{ Text string }{text})
	mock.lock.Unlock()
	return mock.AddTextFunc(ctx, text)
}

func (mock *BackendMock) ImportText(ctx context.Context, rawURL string) (*apiclient.ImportResult, error) {
	if mock.ImportTextFunc == nil {
		panic("BackendMock.ImportTextFunc: method is nil but Backend.ImportText was just called")
	}
	return mock.ImportTextFunc(ctx, rawURL)
}

func (mock *BackendMock) Analyze(ctx context.Context, word string, textContext string) (*domain.WordAnalysis, error) {
	if mock.AnalyzeFunc == nil {
		panic("BackendMock.AnalyzeFunc: method is nil but Backend.Analyze was just called")
	}
	mock.lock.Lock()
	mock.calls.Analyze = append(mock.calls.Analyze, struct {
		Word        string
		TextContext string
	}{word, textContext})
	mock.lock.Unlock()
	return mock.AnalyzeFunc(ctx, word, textContext)
}

func (mock *BackendMock) ExportFlashcard(ctx context.Context, german string, russian string) error {
	if mock.ExportFlashcardFunc == nil {
		panic("BackendMock.ExportFlashcardFunc: method is nil but Backend.ExportFlashcard was just called")
	}
	mock.lock.Lock()
	mock.calls.ExportFlashcard = append(mock.calls.ExportFlashcard, struct {
		German  string
		Russian string
	}{german, russian})
	mock.lock.Unlock()
	return mock.ExportFlashcardFunc(ctx, german, russian)
}

// AnalyzeCalls gets all the calls that were made to Analyze.
func (mock *BackendMock) AnalyzeCalls() []struct {
	Word        string
	TextContext string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Analyze
}

// AddTextCalls gets all the calls that were made to AddText.
func (mock *BackendMock) AddTextCalls() []struct{ Text string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AddText
}

// ExportFlashcardCalls gets all the calls that were made to ExportFlashcard.
func (mock *BackendMock) ExportFlashcardCalls() []struct {
	German  string
	Russian string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ExportFlashcard
}
