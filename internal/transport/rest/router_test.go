package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/heartmarshall/lesehilfe/internal/config"
	"github.com/heartmarshall/lesehilfe/internal/domain"
	"github.com/heartmarshall/lesehilfe/internal/service/analysis"
	"github.com/heartmarshall/lesehilfe/internal/service/flashcard"
	"github.com/heartmarshall/lesehilfe/internal/service/texts"
	"github.com/heartmarshall/lesehilfe/internal/transport/middleware"
)

func newTestRouter(server config.ServerConfig) http.Handler {
	h := Handlers{
		Health: NewHealthHandler(&pingerMock{}, &pingerMock{}, "test"),
		Analyze: NewAnalyzeHandler(&analysisServiceMock{
			AnalyzeFunc: func(context.Context, analysis.AnalyzeInput) (*domain.WordAnalysis, error) {
				a := domain.FallbackAnalysis()
				return &a, nil
			},
		}, testLogger()),
		Anki: NewAnkiHandler(&flashcardServiceMock{
			ExportFunc: func(context.Context, flashcard.ExportInput) error { return nil },
		}, testLogger()),
		Texts: NewTextsHandler(&textsServiceMock{
			ListFunc: func(context.Context) ([]string, error) { return []string{"Hallo."}, nil },
			AddFunc: func(_ context.Context, in texts.AddInput) ([]string, error) {
				return []string{in.Text}, nil
			},
			ReplaceFunc: func(_ context.Context, in texts.ReplaceInput) ([]string, error) {
				return in.Texts, nil
			},
			ImportFunc: func(context.Context, texts.ImportInput) (*texts.ImportResult, error) {
				return &texts.ImportResult{Title: "T", Texts: []string{"x"}}, nil
			},
		}, testLogger()),
	}

	cfg := config.Config{
		Server: server,
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,OPTIONS",
			AllowedHeaders: "Content-Type",
			MaxAge:         600,
		},
	}
	return NewRouter(h, cfg, testLogger())
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(config.ServerConfig{MaxBodyBytes: 1 << 16})

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/live", "", http.StatusOK},
		{http.MethodGet, "/ready", "", http.StatusOK},
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodPost, "/api/analyze", `{"word":"Haus","context":"Das Haus."}`, http.StatusOK},
		{http.MethodPost, "/api/anki", `{"germanPhrase":"a","russianTranslation":"b"}`, http.StatusOK},
		{http.MethodGet, "/api/texts", "", http.StatusOK},
		{http.MethodPost, "/api/texts", `{"text":"Neu."}`, http.StatusCreated},
		{http.MethodPut, "/api/texts", `{"texts":["a"]}`, http.StatusOK},
		{http.MethodPost, "/api/texts/import", `{"url":"https://example.de"}`, http.StatusCreated},
		{http.MethodGet, "/api/analyze", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
		{http.MethodOptions, "/api/analyze", "", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Origin", "http://localhost:5173")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
			if rec.Header().Get(middleware.RequestIDHeader) == "" {
				t.Error("expected request ID header")
			}
		})
	}
}

func TestRouter_BodyLimit(t *testing.T) {
	t.Parallel()

	router := newTestRouter(config.ServerConfig{MaxBodyBytes: 32, TextsMaxBodyBytes: 64})

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"analyze", http.MethodPost, "/api/analyze", `{"word":"Haus","context":"` + strings.Repeat("a", 100) + `"}`},
		{"anki", http.MethodPost, "/api/anki", `{"germanPhrase":"` + strings.Repeat("a", 100) + `","russianTranslation":"b"}`},
		{"add text", http.MethodPost, "/api/texts", `{"text":"` + strings.Repeat("a", 100) + `"}`},
		{"replace texts", http.MethodPut, "/api/texts", `{"texts":["` + strings.Repeat("a", 100) + `"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))

			if rec.Code != http.StatusRequestEntityTooLarge {
				t.Fatalf("expected status 413, got %d", rec.Code)
			}
			if msg := errorMessage(t, rec); msg != "request body too large" {
				t.Errorf("error = %q", msg)
			}
		})
	}
}

func TestRouter_TextsTakeCollectionsAboveGeneralLimit(t *testing.T) {
	t.Parallel()

	router := newTestRouter(config.ServerConfig{MaxBodyBytes: 1 << 16})

	collection := make([]string, 10)
	for i := range collection {
		collection[i] = strings.Repeat("Das Haus ist groß. ", 420)
	}
	body, err := json.Marshal(map[string][]string{"texts": collection})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if len(body) <= 1<<16 {
		t.Fatalf("body is %d bytes, want more than the general limit", len(body))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/texts", bytes.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (body %s)", rec.Code, rec.Body.String())
	}
	var got textsResponse
	decodeBody(t, rec, &got)
	if len(got.Texts) != len(collection) {
		t.Errorf("texts = %d, want %d", len(got.Texts), len(collection))
	}
}

func TestRouter_GeneralLimitStillAppliesToAnalyze(t *testing.T) {
	t.Parallel()

	router := newTestRouter(config.ServerConfig{MaxBodyBytes: 1 << 10})

	body := `{"word":"Haus","context":"` + strings.Repeat("a", 2<<10) + `"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body)))

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected status 413, got %d", rec.Code)
	}
}
