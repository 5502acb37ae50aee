// Package apiclient calls the lesehilfe HTTP API. The reading surface and the
// command line use it so that they share one backend with any browser tab.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/lesehilfe/internal/domain"
	"github.com/heartmarshall/lesehilfe/pkg/ctxutil"
)

const (
	defaultTimeout = 60 * time.Second
	maxBodyBytes   = 10 << 20
)

// APIError is a non-2xx answer from the server. Message is the server's
// "error" field, or the raw body when it is not JSON.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// Client is a typed client for the lesehilfe HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client for baseURL such as "http://localhost:3001".
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "apiclient"),
	}
}

// Analyze requests the grammar analysis of word within context.
func (c *Client) Analyze(ctx context.Context, word, textContext string) (*domain.WordAnalysis, error) {
	req := map[string]string{"word": word, "context": textContext}
	var out domain.WordAnalysis
	if err := c.do(ctx, http.MethodPost, "/api/analyze", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExportFlashcard creates a flashcard from an example sentence.
func (c *Client) ExportFlashcard(ctx context.Context, german, russian string) error {
	req := map[string]string{"germanPhrase": german, "russianTranslation": russian}
	var out struct {
		Success bool `json:"success"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/anki", req, &out); err != nil {
		return err
	}
	if !out.Success {
		return errors.New("api: flashcard was not created")
	}
	return nil
}

type textsResponse struct {
	Texts []string `json:"texts"`
}

// ListTexts returns the saved texts.
func (c *Client) ListTexts(ctx context.Context) ([]string, error) {
	var out textsResponse
	if err := c.do(ctx, http.MethodGet, "/api/texts", nil, &out); err != nil {
		return nil, err
	}
	return out.Texts, nil
}

// AddText appends a text and returns the updated collection.
func (c *Client) AddText(ctx context.Context, text string) ([]string, error) {
	var out textsResponse
	if err := c.do(ctx, http.MethodPost, "/api/texts", map[string]string{"text": text}, &out); err != nil {
		return nil, err
	}
	return out.Texts, nil
}

// ReplaceTexts overwrites the whole collection.
func (c *Client) ReplaceTexts(ctx context.Context, texts []string) ([]string, error) {
	if texts == nil {
		texts = []string{}
	}
	var out textsResponse
	if err := c.do(ctx, http.MethodPut, "/api/texts", map[string][]string{"texts": texts}, &out); err != nil {
		return nil, err
	}
	return out.Texts, nil
}

// ImportResult is the answer to ImportText.
type ImportResult struct {
	Title string   `json:"title"`
	Texts []string `json:"texts"`
}

// ImportText asks the server to fetch a web page and save its text.
func (c *Client) ImportText(ctx context.Context, rawURL string) (*ImportResult, error) {
	var out ImportResult
	if err := c.do(ctx, http.MethodPost, "/api/texts/import", map[string]string{"url": rawURL}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ready reports whether the server and its store are up.
func (c *Client) Ready(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/ready", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if id := ctxutil.RequestIDFromCtx(ctx); id != "" {
		req.Header.Set("X-Request-Id", id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("api: read body: %w", err)
	}

	c.log.DebugContext(ctx, "api call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("api: decode %s %s: %w", method, path, err)
	}
	return nil
}

func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return "empty response"
	}
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
