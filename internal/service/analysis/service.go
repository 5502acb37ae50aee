package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/lesehilfe/internal/domain"
	"github.com/heartmarshall/lesehilfe/internal/provider"
)

type completer interface {
	// Configured reports whether a credential is available.
	Configured() bool
	Complete(ctx context.Context, req provider.CompletionRequest) (string, error)
}

// Options are the sampling settings sent with every completion.
type Options struct {
	Temperature float64
	MaxTokens   int
}

// Service produces grammar analyses for single words.
type Service struct {
	llm  completer
	opts Options
	log  *slog.Logger
}

// NewService creates a new Analysis service.
func NewService(
	log *slog.Logger,
	llm completer,
	opts Options,
) *Service {
	return &Service{
		llm:  llm,
		opts: opts,
		log:  log.With("service", "analysis"),
	}
}

// Analyze explains word as it is used in the full text given as context.
//
// Errors: *domain.ValidationError for blank or oversized input,
// domain.ErrMisconfigured when no credential is set, otherwise an error
// matching domain.ErrAnalysisFailed that also wraps the underlying kind
// (ErrUpstream, ErrEmptyUpstreamResponse or ErrMalformedAnalysis).
func (s *Service) Analyze(ctx context.Context, input AnalyzeInput) (*domain.WordAnalysis, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if !s.llm.Configured() {
		s.log.ErrorContext(ctx, "language model credential is not configured")
		return nil, fmt.Errorf("analysis: %w", domain.ErrMisconfigured)
	}

	word := strings.TrimSpace(input.Word)
	text := strings.TrimSpace(input.Context)

	content, err := s.llm.Complete(ctx, buildPrompt(word, text, s.opts))
	if err != nil {
		s.logUpstreamFailure(ctx, word, err)
		return nil, fmt.Errorf("%w: %w", domain.ErrAnalysisFailed, err)
	}

	if strings.TrimSpace(content) == "" {
		s.log.ErrorContext(ctx, "completion has no content", slog.String("word", word))
		return nil, fmt.Errorf("%w: %w", domain.ErrAnalysisFailed, domain.ErrEmptyUpstreamResponse)
	}

	analysis, err := ParseAnalysis(content)
	if err != nil {
		attrs := []any{
			slog.String("word", word),
			slog.String("error", err.Error()),
		}
		var malformed *domain.MalformedAnalysisError
		if errors.As(err, &malformed) {
			attrs = append(attrs,
				slog.String("raw", malformed.Raw),
				slog.String("cleaned", malformed.Cleaned),
				slog.Any("fields", malformed.Fields),
			)
		}
		s.log.ErrorContext(ctx, "malformed analysis", attrs...)
		return nil, fmt.Errorf("%w: %w", domain.ErrAnalysisFailed, err)
	}

	s.log.InfoContext(ctx, "word analyzed",
		slog.String("word", word),
		slog.Int("context_len", len([]rune(text))),
	)

	return analysis, nil
}

func (s *Service) logUpstreamFailure(ctx context.Context, word string, err error) {
	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		s.log.ErrorContext(ctx, "language model returned an error",
			slog.String("word", word),
			slog.String("upstream", upstream.Service),
			slog.Int("status", upstream.Status),
			slog.String("body", upstream.Body),
		)
		return
	}
	s.log.ErrorContext(ctx, "language model call failed",
		slog.String("word", word),
		slog.String("error", err.Error()),
	)
}
