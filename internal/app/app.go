package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/lesehilfe/internal/adapter/provider/ankiconnect"
	"github.com/heartmarshall/lesehilfe/internal/adapter/provider/article"
	"github.com/heartmarshall/lesehilfe/internal/config"
	"github.com/heartmarshall/lesehilfe/internal/service/analysis"
	"github.com/heartmarshall/lesehilfe/internal/service/flashcard"
	"github.com/heartmarshall/lesehilfe/internal/service/texts"
	"github.com/heartmarshall/lesehilfe/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, opens the text
// store, wires services and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	return RunConfig(ctx, cfg, NewLogger(cfg.Log))
}

// RunConfig serves HTTP with an already loaded configuration and logger.
func RunConfig(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.InfoContext(ctx, "starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store", cfg.Store.DriverName().String()),
		slog.String("llm_provider", cfg.LLM.ProviderName().String()),
	)
	if !cfg.LLM.HasCredential() {
		logger.WarnContext(ctx, "llm api key is not set; /api/analyze will answer with a configuration error")
	}

	store, closeStore, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeStore()

	handler, err := NewHandler(ctx, cfg, store, logger)
	if err != nil {
		return err
	}

	return Serve(ctx, cfg.Server, handler, logger)
}

// NewHandler wires adapters, services and transport into one http.Handler.
func NewHandler(ctx context.Context, cfg *config.Config, store SlotStore, logger *slog.Logger) (http.Handler, error) {
	anki := ankiconnect.NewClient(ankiconnect.Config{
		URL:     cfg.Anki.URL,
		Deck:    cfg.Anki.Deck,
		Tag:     cfg.Anki.Tag,
		Version: cfg.Anki.Version,
		Timeout: cfg.Anki.Timeout,
	}, logger)

	articles := article.NewFetcher(article.Config{
		Timeout:      cfg.Article.Timeout,
		MaxBodyBytes: cfg.Article.MaxBodyBytes,
		UserAgent:    cfg.Article.UserAgent,
	}, logger)

	analysisSvc := analysis.NewService(logger, NewCompleter(cfg.LLM, logger), analysis.Options{
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})
	flashcardSvc := flashcard.NewService(logger, anki)
	textsSvc := texts.NewService(logger, store, articles, cfg.Store.Slot)

	saved, err := textsSvc.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load saved texts: %w", err)
	}
	logger.InfoContext(ctx, "saved texts loaded", slog.Int("count", len(saved)))

	return rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(store, anki, Version),
		Analyze: rest.NewAnalyzeHandler(analysisSvc, logger),
		Anki:    rest.NewAnkiHandler(flashcardSvc, logger),
		Texts:   rest.NewTextsHandler(textsSvc, logger),
	}, *cfg, logger), nil
}

// Serve runs the HTTP server until ctx is canceled, then shuts it down
// gracefully within cfg.ShutdownTimeout.
func Serve(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(gctx, "http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.ShutdownTimeout)
		defer cancel()

		logger.InfoContext(shutdownCtx, "shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
