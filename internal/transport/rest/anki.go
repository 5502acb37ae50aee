package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lesehilfe/internal/domain"
	"github.com/heartmarshall/lesehilfe/internal/service/flashcard"
)

type flashcardService interface {
	Export(ctx context.Context, input flashcard.ExportInput) error
}

// AnkiHandler serves POST /api/anki.
type AnkiHandler struct {
	svc flashcardService
	log *slog.Logger
}

// NewAnkiHandler creates an AnkiHandler.
func NewAnkiHandler(svc flashcardService, logger *slog.Logger) *AnkiHandler {
	return &AnkiHandler{svc: svc, log: logger.With("handler", "anki")}
}

// Pointers tell a missing field from an empty one. Empty values are passed on.
type ankiRequest struct {
	GermanPhrase       *string `json:"germanPhrase"`
	RussianTranslation *string `json:"russianTranslation"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// Export handles POST /api/anki.
func (h *AnkiHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req ankiRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	if req.GermanPhrase == nil || req.RussianTranslation == nil {
		writeError(w, http.StatusBadRequest, errInvalidBody.Error())
		return
	}

	err := h.svc.Export(r.Context(), flashcard.ExportInput{
		GermanPhrase:       *req.GermanPhrase,
		RussianTranslation: *req.RussianTranslation,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *AnkiHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if !errors.Is(err, domain.ErrFlashcardService) {
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
	}
	writeError(w, http.StatusInternalServerError, "failed to create flashcard")
}
