// Package cmd contains all CLI commands for lesehilfe.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/lesehilfe/internal/apiclient"
	"github.com/heartmarshall/lesehilfe/internal/app"
	"github.com/heartmarshall/lesehilfe/internal/config"
)

var (
	cfgFile string
	logFile string
	apiURL  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lesehilfe",
	Short: "German reading aid with grammar analysis and Anki export",
	Long: `lesehilfe keeps short German texts, explains the grammar of any word
you select in the context of the whole text, gives an example sentence with a
Russian translation and exports it to Anki.

Running 'lesehilfe' without arguments opens the reading surface. It talks to
the HTTP API started with 'lesehilfe serve'.`,
	RunE:          runRead,
	Version:       app.BuildVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $CONFIG_PATH or ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL (overrides reader.api_url)")
}

// loadConfig reads the configuration selected by --config.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.Reader.APIURL = apiURL
	}
	return cfg, nil
}

// newLogger builds the logger for a command. Without --log-file it writes to
// fallback, which is io.Discard for the full-screen reader.
func newLogger(cfg *config.Config, fallback io.Writer) (*slog.Logger, func(), error) {
	if logFile == "" {
		return app.NewLoggerTo(fallback, cfg.Log), func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return app.NewLoggerTo(f, cfg.Log), func() { f.Close() }, nil
}

// setup loads configuration and a logger writing to fallback.
func setup(fallback io.Writer) (*config.Config, *slog.Logger, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	logger, closeLog, err := newLogger(cfg, fallback)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, closeLog, nil
}

func newAPIClient(cfg *config.Config, logger *slog.Logger) *apiclient.Client {
	return apiclient.New(cfg.Reader.APIURL, cfg.Reader.Timeout, logger)
}
