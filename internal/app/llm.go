package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/lesehilfe/internal/adapter/provider/llm/anthropic"
	"github.com/heartmarshall/lesehilfe/internal/adapter/provider/llm/openai"
	"github.com/heartmarshall/lesehilfe/internal/config"
	"github.com/heartmarshall/lesehilfe/internal/domain"
	"github.com/heartmarshall/lesehilfe/internal/provider"
)

// Completer is a configured language-model backend.
type Completer interface {
	Configured() bool
	Complete(ctx context.Context, req provider.CompletionRequest) (string, error)
}

// NewCompleter returns the provider selected by cfg.Provider. A missing API
// key is not an error here: analysis requests then fail as misconfigured.
func NewCompleter(cfg config.LLMConfig, logger *slog.Logger) Completer {
	if cfg.ProviderName() == domain.LLMProviderAnthropic {
		return anthropic.NewProvider(anthropic.Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.ModelName(),
			Timeout: cfg.Timeout,
		}, logger)
	}
	return openai.NewProvider(openai.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.ModelName(),
		Timeout: cfg.Timeout,
	}, logger)
}
