package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/lesehilfe/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API: POST /api/analyze, POST /api/anki and the saved-text
store under /api/texts. Stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, closeLog, err := setup(os.Stderr)
		if err != nil {
			return err
		}
		defer closeLog()

		return app.RunConfig(cmd.Context(), cfg, logger)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Prepare the configured text store",
	Long: `Open the configured text store once and exit. For PostgreSQL this
applies pending migrations; SQLite and file stores create their schema or
directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, closeLog, err := setup(os.Stderr)
		if err != nil {
			return err
		}
		defer closeLog()

		store, closeStore, err := app.OpenStore(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore()

		if err := store.Ping(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "store %q is ready\n", cfg.Store.DriverName())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
