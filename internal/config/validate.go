package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/heartmarshall/lesehilfe/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if err := c.Anki.validate(); err != nil {
		return fmt.Errorf("anki: %w", err)
	}

	if err := c.validateStore(); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	if c.Speech.Rate <= 0 || c.Speech.Rate > 3 {
		return fmt.Errorf("speech.rate must be in (0, 3] (got %v)", c.Speech.Rate)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	if !l.ProviderName().IsValid() {
		return fmt.Errorf("provider must be one of openai, anthropic (got %q)", l.Provider)
	}
	if maxTemp := l.ProviderName().MaxTemperature(); l.Temperature < 0 || l.Temperature > maxTemp {
		return fmt.Errorf("temperature must be in [0, %v] for %s (got %v)", maxTemp, l.ProviderName(), l.Temperature)
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.BaseURL != "" {
		if err := validateURL(l.BaseURL); err != nil {
			return fmt.Errorf("base_url: %w", err)
		}
	}
	return nil
}

func (a *AnkiConfig) validate() error {
	if err := validateURL(a.URL); err != nil {
		return fmt.Errorf("url: %w", err)
	}
	if strings.TrimSpace(a.Deck) == "" {
		return fmt.Errorf("deck is required")
	}
	if a.Version <= 0 {
		return fmt.Errorf("version must be > 0 (got %d)", a.Version)
	}
	return nil
}

func (c *Config) validateStore() error {
	driver := c.Store.DriverName()
	if !driver.IsValid() {
		return fmt.Errorf("driver must be one of file, sqlite, postgres (got %q)", c.Store.Driver)
	}
	if strings.TrimSpace(c.Store.Slot) == "" {
		return fmt.Errorf("slot is required")
	}
	if driver == domain.StoreDriverPostgres && strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required for the postgres driver")
	}
	if driver != domain.StoreDriverPostgres && strings.TrimSpace(c.Store.Path) == "" {
		return fmt.Errorf("path is required for the %s driver", driver)
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}
