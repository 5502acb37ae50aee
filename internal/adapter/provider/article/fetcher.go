// Package article downloads web pages and extracts their readable text.
package article

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"

	"github.com/heartmarshall/lesehilfe/internal/domain"
	"github.com/heartmarshall/lesehilfe/internal/provider"
)

const (
	defaultTimeout      = 20 * time.Second
	defaultMaxBodyBytes = 5 << 20
	defaultUserAgent    = "Mozilla/5.0 (X11; Linux x86_64) lesehilfe/1.0"
	maxErrorBody        = 512
)

// Config holds fetcher settings. Zero values fall back to defaults.
type Config struct {
	Timeout      time.Duration
	MaxBodyBytes int64
	UserAgent    string
}

// Fetcher retrieves a page over HTTP and runs readability extraction on it.
type Fetcher struct {
	httpClient   *http.Client
	maxBodyBytes int64
	userAgent    string
	log          *slog.Logger
}

// NewFetcher creates a Fetcher.
func NewFetcher(cfg Config, logger *slog.Logger) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return &Fetcher{
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		maxBodyBytes: cfg.MaxBodyBytes,
		userAgent:    cfg.UserAgent,
		log:          logger.With("adapter", "article"),
	}
}

// Fetch downloads rawURL and returns its title and plain text content.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*provider.Article, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, domain.NewValidationError("url", "invalid URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("article: create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "de-DE,de;q=0.9,en;q=0.5")

	f.log.DebugContext(ctx, "article request", slog.String("url", rawURL))

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.log.ErrorContext(ctx, "article request failed",
			slog.String("url", rawURL),
			slog.String("error", err.Error()),
		)
		if ctx.Err() != nil {
			return nil, fmt.Errorf("article: request failed: %w", ctx.Err())
		}
		return nil, fmt.Errorf("article: request failed: %w: %w", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &domain.UpstreamError{
			Service: "article",
			Status:  resp.StatusCode,
			Body:    string(snippet),
		}
	}

	if resp.ContentLength > f.maxBodyBytes {
		return nil, domain.NewValidationError("url", "page is too large")
	}

	// One extra byte tells a page of exactly the limit from a longer one.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("article: read body: %w: %w", domain.ErrUpstream, err)
	}
	if int64(len(body)) > f.maxBodyBytes {
		return nil, domain.NewValidationError("url", "page is too large")
	}

	parsed, err := readability.FromReader(bytes.NewReader(body), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("article: extract: %w: %w", domain.ErrUpstream, err)
	}

	result := &provider.Article{
		Title: strings.TrimSpace(parsed.Title),
		Text:  domain.NormalizeText(parsed.TextContent),
		URL:   rawURL,
	}

	f.log.DebugContext(ctx, "article extracted",
		slog.String("url", rawURL),
		slog.String("title", result.Title),
		slog.Int("chars", len([]rune(result.Text))),
	)

	return result, nil
}
