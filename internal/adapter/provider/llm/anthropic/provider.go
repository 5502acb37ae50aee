package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/lesehilfe/internal/domain"
	"github.com/heartmarshall/lesehilfe/internal/provider"
)

const serviceName = "anthropic"

// Config holds the Anthropic Messages API settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Provider calls the Anthropic Messages API.
type Provider struct {
	client     anthropic.Client
	configured bool
	model      string
	log        *slog.Logger
}

// NewProvider creates a Provider. Retries are disabled; every failure is
// reported to the caller as is.
func NewProvider(cfg Config, logger *slog.Logger) *Provider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	key := strings.TrimSpace(cfg.APIKey)
	opts := []option.RequestOption{
		option.WithAPIKey(key),
		option.WithMaxRetries(0),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Provider{
		client:     anthropic.NewClient(opts...),
		configured: key != "",
		model:      cfg.Model,
		log:        logger.With("adapter", serviceName),
	}
}

// Configured reports whether an API key is set.
func (p *Provider) Configured() bool {
	return p.configured
}

// Complete sends the prompt and returns the concatenated text blocks.
//
// Errors: *domain.UpstreamError for an API error status,
// domain.ErrEmptyUpstreamResponse when no text block is returned.
func (p *Provider) Complete(ctx context.Context, req provider.CompletionRequest) (string, error) {
	p.log.DebugContext(ctx, "anthropic request",
		slog.String("model", p.model),
		slog.Int("max_tokens", req.MaxTokens),
	)

	start := time.Now()
	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(p.model),
		MaxTokens:   int64(req.MaxTokens),
		Temperature: anthropic.Float(req.Temperature),
		System: []anthropic.TextBlockParam{
			{Text: req.System},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.User)),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", &domain.UpstreamError{
				Service: serviceName,
				Status:  apiErr.StatusCode,
				Body:    apiErr.RawJSON(),
			}
		}
		return "", fmt.Errorf("anthropic: request failed: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	content := b.String()
	if strings.TrimSpace(content) == "" {
		return "", domain.ErrEmptyUpstreamResponse
	}

	p.log.DebugContext(ctx, "anthropic response",
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
		slog.Duration("latency", time.Since(start)),
	)

	return content, nil
}
