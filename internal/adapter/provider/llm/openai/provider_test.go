package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heartmarshall/lesehilfe/internal/domain"
	"github.com/heartmarshall/lesehilfe/internal/provider"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestProvider(url string) *Provider {
	return NewProvider(Config{APIKey: "sk-test", BaseURL: url, Model: "gpt-4o-mini"}, newTestLogger())
}

var testRequest = provider.CompletionRequest{
	System:      "system text",
	User:        "user text",
	Temperature: 0.2,
	MaxTokens:   256,
}

func TestProvider_Complete_ChatShape(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q", got)
		}

		var body chatRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
			return
		}
		if body.Model != "gpt-4o-mini" {
			t.Errorf("model = %q", body.Model)
		}
		if len(body.Messages) != 2 || body.Messages[0].Role != "system" || body.Messages[1].Role != "user" {
			t.Errorf("messages = %+v, want system then user", body.Messages)
		}
		if body.Messages[1].Content != "user text" {
			t.Errorf("user content = %q", body.Messages[1].Content)
		}
		if body.Temperature != 0.2 || body.MaxTokens != 256 {
			t.Errorf("sampling = %v/%d, want 0.2/256", body.Temperature, body.MaxTokens)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"ok\":true}"}}]}`))
	}))
	defer srv.Close()

	got, err := newTestProvider(srv.URL).Complete(context.Background(), testRequest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"ok":true}` {
		t.Errorf("content = %q", got)
	}
}

func TestProvider_Complete_TextShape(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"text":"raw completion"}]}`))
	}))
	defer srv.Close()

	got, err := newTestProvider(srv.URL).Complete(context.Background(), testRequest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "raw completion" {
		t.Errorf("content = %q, want %q", got, "raw completion")
	}
}

func TestProvider_Complete_TrailingSlashBaseURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"choices":[{"text":"x"}]}`))
	}))
	defer srv.Close()

	if _, err := newTestProvider(srv.URL+"/").Complete(context.Background(), testRequest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProvider_Complete_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"Rate limit reached"}}`))
	}))
	defer srv.Close()

	_, err := newTestProvider(srv.URL).Complete(context.Background(), testRequest)

	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected *UpstreamError, got %v", err)
	}
	if upstream.Status != http.StatusTooManyRequests {
		t.Errorf("Status = %d, want 429", upstream.Status)
	}
	if upstream.Body == "" {
		t.Error("Body should be kept for logging")
	}
	if !errors.Is(err, domain.ErrUpstream) {
		t.Error("expected errors.Is(err, ErrUpstream)")
	}
}

func TestProvider_Complete_EmptyEnvelope(t *testing.T) {
	t.Parallel()

	bodies := []string{
		`{"choices":[]}`,
		`{"choices":[{"message":{"content":null}}]}`,
		`{"choices":[{"text":""}]}`,
		`{}`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer srv.Close()

			_, err := newTestProvider(srv.URL).Complete(context.Background(), testRequest)
			if !errors.Is(err, domain.ErrEmptyUpstreamResponse) {
				t.Errorf("expected ErrEmptyUpstreamResponse, got %v", err)
			}
		})
	}
}

func TestProvider_Complete_InvalidJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newTestProvider(srv.URL).Complete(context.Background(), testRequest)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestProvider_Configured(t *testing.T) {
	t.Parallel()

	if NewProvider(Config{APIKey: "  "}, newTestLogger()).Configured() {
		t.Error("blank key should not count as configured")
	}
	if !NewProvider(Config{APIKey: "sk"}, newTestLogger()).Configured() {
		t.Error("non-empty key should count as configured")
	}
}
