package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lesehilfe/internal/domain"
	"github.com/heartmarshall/lesehilfe/internal/service/texts"
)

type textsService interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, input texts.AddInput) ([]string, error)
	Replace(ctx context.Context, input texts.ReplaceInput) ([]string, error)
	Import(ctx context.Context, input texts.ImportInput) (*texts.ImportResult, error)
}

// TextsHandler serves the saved-text collection.
type TextsHandler struct {
	svc textsService
	log *slog.Logger
}

// NewTextsHandler creates a TextsHandler.
func NewTextsHandler(svc textsService, logger *slog.Logger) *TextsHandler {
	return &TextsHandler{svc: svc, log: logger.With("handler", "texts")}
}

type addTextRequest struct {
	Text string `json:"text"`
}

type replaceTextsRequest struct {
	Texts *[]string `json:"texts"`
}

type importRequest struct {
	URL string `json:"url"`
}

type textsResponse struct {
	Texts []string `json:"texts"`
}

type importResponse struct {
	Title string   `json:"title"`
	Texts []string `json:"texts"`
}

// List handles GET /api/texts.
func (h *TextsHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, textsResponse{Texts: list})
}

// Add handles POST /api/texts.
func (h *TextsHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addTextRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	list, err := h.svc.Add(r.Context(), texts.AddInput{Text: req.Text})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, textsResponse{Texts: list})
}

// Replace handles PUT /api/texts.
func (h *TextsHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req replaceTextsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	if req.Texts == nil {
		writeError(w, http.StatusBadRequest, errInvalidBody.Error())
		return
	}

	list, err := h.svc.Replace(r.Context(), texts.ReplaceInput{Texts: *req.Texts})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, textsResponse{Texts: list})
}

// Import handles POST /api/texts/import.
func (h *TextsHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	result, err := h.svc.Import(r.Context(), texts.ImportInput{URL: req.URL})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, importResponse{Title: result.Title, Texts: result.Texts})
}

func (h *TextsHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrMisconfigured):
		writeError(w, http.StatusInternalServerError, "article import is not configured")
	case errors.Is(err, domain.ErrUpstream):
		h.log.WarnContext(r.Context(), "article fetch failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "failed to fetch article")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
