package flashcard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lesehilfe/internal/domain"
)

type noteAdder interface {
	AddNote(ctx context.Context, card domain.Flashcard) (int64, error)
}

// Service exports example sentences to the flashcard tool.
type Service struct {
	notes noteAdder
	log   *slog.Logger
}

// NewService creates a new Flashcard service.
func NewService(
	log *slog.Logger,
	notes noteAdder,
) *Service {
	return &Service{
		notes: notes,
		log:   log.With("service", "flashcard"),
	}
}

// ExportInput is one German phrase with its Russian translation.
// Fields are passed through as given.
type ExportInput struct {
	GermanPhrase       string
	RussianTranslation string
}

// Export creates exactly one note: phrase on the front, translation on the back.
// Any failure is returned as domain.ErrFlashcardService; the cause is logged.
func (s *Service) Export(ctx context.Context, input ExportInput) error {
	id, err := s.notes.AddNote(ctx, domain.Flashcard{
		Front: input.GermanPhrase,
		Back:  input.RussianTranslation,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "flashcard export failed",
			slog.String("front", input.GermanPhrase),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %w", domain.ErrFlashcardService, err)
	}

	s.log.InfoContext(ctx, "flashcard exported",
		slog.Int64("note_id", id),
		slog.String("front", input.GermanPhrase),
	)
	return nil
}
