package flashcard

import (
	"context"
	"github.com/heartmarshall/lesehilfe/internal/domain"
	"sync"
)

var _ noteAdder = &noteAdderMock{}

type noteAdderMock struct {
	AddNoteFunc func(ctx context.Context, card domain.Flashcard) (int64, error)

	calls struct {
		AddNote []struct {
			Ctx  context.Context
			Card domain.Flashcard
		}
	}
	lockAddNote sync.RWMutex
}

func (mock *noteAdderMock) AddNote(ctx context.Context, card domain.Flashcard) (int64, error) {
	if mock.AddNoteFunc == nil {
		panic("noteAdderMock.AddNoteFunc: method is nil but noteAdder.AddNote was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Card domain.Flashcard
	}{Ctx: ctx, Card: card}
	mock.lockAddNote.Lock()
	mock.calls.AddNote = append(mock.calls.AddNote, callInfo)
	mock.lockAddNote.Unlock()
	return mock.AddNoteFunc(ctx, card)
}

func (mock *noteAdderMock) AddNoteCalls() []struct {
	Ctx  context.Context
	Card domain.Flashcard
} {
	mock.lockAddNote.RLock()
	calls := mock.calls.AddNote
	mock.lockAddNote.RUnlock()
	return calls
}
