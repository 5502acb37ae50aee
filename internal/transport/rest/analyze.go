package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lesehilfe/internal/domain"
	"github.com/heartmarshall/lesehilfe/internal/service/analysis"
)

type analysisService interface {
	Analyze(ctx context.Context, input analysis.AnalyzeInput) (*domain.WordAnalysis, error)
}

// AnalyzeHandler serves POST /api/analyze.
type AnalyzeHandler struct {
	svc analysisService
	log *slog.Logger
}

// NewAnalyzeHandler creates an AnalyzeHandler.
func NewAnalyzeHandler(svc analysisService, logger *slog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc, log: logger.With("handler", "analyze")}
}

type analyzeRequest struct {
	Word    string `json:"word"`
	Context string `json:"context"`
}

// Analyze handles POST /api/analyze.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	result, err := h.svc.Analyze(r.Context(), analysis.AnalyzeInput{
		Word:    req.Word,
		Context: req.Context,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleError maps service errors to responses. Upstream details are only
// logged by the service; callers get a fixed message.
func (h *AnalyzeHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrMisconfigured):
		writeError(w, http.StatusInternalServerError, "analysis service is not configured")
	case errors.Is(err, domain.ErrAnalysisFailed):
		writeError(w, http.StatusInternalServerError, "failed to analyze word")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
