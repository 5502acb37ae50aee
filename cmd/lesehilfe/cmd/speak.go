package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/lesehilfe/internal/config"
	"github.com/heartmarshall/lesehilfe/internal/speech"
)

var speakCmd = &cobra.Command{
	Use:   "speak <text>",
	Short: "Read German text aloud",
	Long: `Read German text aloud with the platform synthesizer (espeak-ng or
espeak on Linux, say on macOS) at a slightly slowed rate. With "-" the text is
read from standard input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		text, err := textArg(cmd, args)
		if err != nil {
			return err
		}
		return speech.New(speech.Config{
			Command: cfg.Speech.Command,
			Voice:   cfg.Speech.Voice,
			Rate:    cfg.Speech.Rate,
		}).Speak(cmd.Context(), text)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configEnvCmd = &cobra.Command{
	Use:   "env",
	Short: "List supported environment variables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		usage, err := config.Usage()
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), usage+"\n")
		return err
	},
}

func init() {
	configCmd.AddCommand(configEnvCmd)
	rootCmd.AddCommand(speakCmd, configCmd)
}
