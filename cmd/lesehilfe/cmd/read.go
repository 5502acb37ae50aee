package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/lesehilfe/internal/speech"
	"github.com/heartmarshall/lesehilfe/internal/tui"
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Open the interactive reading surface",
	Long: `Open the full-screen reading surface.

Keys:
  ↑/↓        choose a text          enter   open text / analyze word
  ←/→, tab   move between words     s       read the text aloud
  p          read the example       e       export the example to Anki
  n          write a new text       i       import a web page
  x          dismiss a message      esc     back
  q          quit`,
	Args: cobra.NoArgs,
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, _ []string) error {
	cfg, logger, closeLog, err := setup(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := tui.Options{
		NotificationTTL: cfg.Reader.NotificationTTL,
		Logger:          logger,
	}
	speaker := speech.New(speech.Config{
		Command: cfg.Speech.Command,
		Voice:   cfg.Speech.Voice,
		Rate:    cfg.Speech.Rate,
	})
	if speaker.Available() {
		opts.Speaker = speaker
	}

	return tui.Run(cmd.Context(), newAPIClient(cfg, logger), opts)
}
