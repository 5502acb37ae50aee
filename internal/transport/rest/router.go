package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lesehilfe/internal/config"
	"github.com/heartmarshall/lesehilfe/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health  *HealthHandler
	Analyze *AnalyzeHandler
	Anki    *AnkiHandler
	Texts   *TextsHandler
}

// NewRouter builds the HTTP handler with all routes and the middleware chain.
func NewRouter(h Handlers, cfg config.Config, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	limit := middleware.Chain(middleware.BodyLimit(cfg.Server.MaxBodyBytes))
	textsLimit := middleware.Chain(middleware.BodyLimit(cfg.Server.TextsBodyLimit()))

	mux.Handle("POST /api/analyze", limit(http.HandlerFunc(h.Analyze.Analyze)))
	mux.Handle("POST /api/anki", limit(http.HandlerFunc(h.Anki.Export)))

	// Texts are sent whole, so the write routes take a full collection.
	mux.HandleFunc("GET /api/texts", h.Texts.List)
	mux.Handle("POST /api/texts", textsLimit(http.HandlerFunc(h.Texts.Add)))
	mux.Handle("PUT /api/texts", textsLimit(http.HandlerFunc(h.Texts.Replace)))
	mux.Handle("POST /api/texts/import", limit(http.HandlerFunc(h.Texts.Import)))

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}
