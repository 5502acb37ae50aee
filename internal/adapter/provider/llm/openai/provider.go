package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/lesehilfe/internal/domain"
	"github.com/heartmarshall/lesehilfe/internal/provider"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	serviceName    = "openai"

	maxResponseBytes = 1 << 20
	maxLoggedBody    = 2048
)

// Config holds the settings of an OpenAI-compatible endpoint.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Provider calls an OpenAI-compatible chat completions endpoint.
type Provider struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider. An empty BaseURL selects the public OpenAI API.
func NewProvider(cfg Config, logger *slog.Logger) *Provider {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Provider{
		apiKey:     strings.TrimSpace(cfg.APIKey),
		baseURL:    baseURL,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", serviceName),
	}
}

// Configured reports whether an API key is set.
func (p *Provider) Configured() bool {
	return p.apiKey != ""
}

// Complete sends the prompt and returns the completion text.
//
// Errors: *domain.UpstreamError for a non-2xx status,
// domain.ErrEmptyUpstreamResponse when the envelope carries no content.
func (p *Provider) Complete(ctx context.Context, req provider.CompletionRequest) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openai: create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	p.log.DebugContext(ctx, "openai request",
		slog.String("model", p.model),
		slog.Int("max_tokens", req.MaxTokens),
	)

	start := time.Now()
	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("openai: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("openai: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &domain.UpstreamError{
			Service: serviceName,
			Status:  resp.StatusCode,
			Body:    truncate(string(respBody), maxLoggedBody),
		}
	}

	var envelope apiResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return "", fmt.Errorf("openai: decode json: %w", err)
	}

	content := envelope.content()
	if strings.TrimSpace(content) == "" {
		return "", domain.ErrEmptyUpstreamResponse
	}

	p.log.DebugContext(ctx, "openai response",
		slog.Int("status", resp.StatusCode),
		slog.Int("content_len", len(content)),
		slog.Duration("latency", time.Since(start)),
	)

	return content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
