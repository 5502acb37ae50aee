package config

import (
	"strings"
	"time"

	"github.com/heartmarshall/lesehilfe/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Store    StoreConfig    `yaml:"store"`
	LLM      LLMConfig      `yaml:"llm"`
	Anki     AnkiConfig     `yaml:"anki"`
	Article  ArticleConfig  `yaml:"article"`
	Reader   ReaderConfig   `yaml:"reader"`
	Speech   SpeechConfig   `yaml:"speech"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"65536"`
	// TextsMaxBodyBytes limits POST/PUT /api/texts. Zero sizes it to fit a full collection.
	TextsMaxBodyBytes int64 `yaml:"texts_max_body_bytes" env:"SERVER_TEXTS_MAX_BODY_BYTES"`
}

// DatabaseConfig holds PostgreSQL connection settings. Only used when the
// store driver is "postgres".
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"5"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// StoreConfig selects the saved-text slot backend.
type StoreConfig struct {
	Driver string `yaml:"driver" env:"STORE_DRIVER" env-default:"file"`
	// Path is the directory for the file driver and the database file for sqlite.
	Path string `yaml:"path"   env:"STORE_PATH"   env-default:"./data"`
	Slot string `yaml:"slot"   env:"STORE_SLOT"   env-default:"savedTexts"`
}

// LLMConfig holds language-model provider settings. APIKey may be empty:
// the analysis endpoint then answers with a configuration error instead of
// preventing startup.
type LLMConfig struct {
	Provider    string        `yaml:"provider"    env:"LLM_PROVIDER"    env-default:"openai"`
	APIKey      string        `yaml:"api_key"     env:"LLM_API_KEY"`
	BaseURL     string        `yaml:"base_url"    env:"LLM_BASE_URL"`
	Model       string        `yaml:"model"       env:"LLM_MODEL"`
	Temperature float64       `yaml:"temperature" env:"LLM_TEMPERATURE" env-default:"0.2"`
	MaxTokens   int           `yaml:"max_tokens"  env:"LLM_MAX_TOKENS"  env-default:"1024"`
	Timeout     time.Duration `yaml:"timeout"     env:"LLM_TIMEOUT"     env-default:"60s"`
}

// AnkiConfig holds AnkiConnect settings.
type AnkiConfig struct {
	URL     string        `yaml:"url"     env:"ANKI_CONNECT_URL" env-default:"http://127.0.0.1:8765"`
	Deck    string        `yaml:"deck"    env:"ANKI_DECK"        env-default:"Deutsch"`
	Tag     string        `yaml:"tag"     env:"ANKI_TAG"         env-default:"lesehilfe"`
	Version int           `yaml:"version" env:"ANKI_VERSION"     env-default:"6"`
	Timeout time.Duration `yaml:"timeout" env:"ANKI_TIMEOUT"     env-default:"10s"`
}

// ArticleConfig holds settings for importing texts from web pages.
type ArticleConfig struct {
	Timeout      time.Duration `yaml:"timeout"        env:"ARTICLE_TIMEOUT"        env-default:"20s"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" env:"ARTICLE_MAX_BODY_BYTES" env-default:"5242880"`
	UserAgent    string        `yaml:"user_agent"     env:"ARTICLE_USER_AGENT"     env-default:"Mozilla/5.0 (X11; Linux x86_64) lesehilfe/1.0"`
}

// ReaderConfig holds settings for the terminal reading surface.
type ReaderConfig struct {
	APIURL          string        `yaml:"api_url"          env:"READER_API_URL"          env-default:"http://127.0.0.1:8080"`
	NotificationTTL time.Duration `yaml:"notification_ttl" env:"READER_NOTIFICATION_TTL" env-default:"3s"`
	Timeout         time.Duration `yaml:"timeout"          env:"READER_TIMEOUT"          env-default:"90s"`
}

// SpeechConfig holds read-aloud settings.
type SpeechConfig struct {
	// Command is "espeak-ng", "espeak", "say" or empty to auto-detect.
	Command string  `yaml:"command" env:"SPEECH_COMMAND"`
	Voice   string  `yaml:"voice"   env:"SPEECH_VOICE"   env-default:"de"`
	Rate    float64 `yaml:"rate"    env:"SPEECH_RATE"    env-default:"0.9"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ProviderName returns the normalized LLM provider.
func (c LLMConfig) ProviderName() domain.LLMProvider {
	return domain.LLMProvider(strings.ToLower(strings.TrimSpace(c.Provider)))
}

// ModelName returns the configured model or the provider's default.
func (c LLMConfig) ModelName() string {
	if m := strings.TrimSpace(c.Model); m != "" {
		return m
	}
	return c.ProviderName().DefaultModel()
}

// HasCredential reports whether an API key is configured.
func (c LLMConfig) HasCredential() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// TextsBodyLimit returns the body limit for the saved-text write routes.
func (c ServerConfig) TextsBodyLimit() int64 {
	if c.TextsMaxBodyBytes > 0 {
		return c.TextsMaxBodyBytes
	}
	return domain.MaxCollectionBytes
}

// DriverName returns the normalized store driver.
func (c StoreConfig) DriverName() domain.StoreDriver {
	return domain.StoreDriver(strings.ToLower(strings.TrimSpace(c.Driver)))
}
