package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var textsCmd = &cobra.Command{
	Use:   "texts",
	Short: "Manage saved texts",
}

var textsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved texts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, closeLog, err := setup(os.Stderr)
		if err != nil {
			return err
		}
		defer closeLog()

		list, err := newAPIClient(cfg, logger).ListTexts(cmd.Context())
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No saved texts.")
			return nil
		}
		for i, t := range list {
			fmt.Fprintf(cmd.OutOrStdout(), "%3d. %s\n", i+1, firstLine(t))
		}
		return nil
	},
}

var textsAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Save a new text",
	Long: `Save a new text. With "-" as the only argument the text is read from
standard input.

Example:
  lesehilfe texts add "Der Hund bellt."
  cat artikel.txt | lesehilfe texts add -`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, closeLog, err := setup(os.Stderr)
		if err != nil {
			return err
		}
		defer closeLog()

		text, err := textArg(cmd, args)
		if err != nil {
			return err
		}

		list, err := newAPIClient(cfg, logger).AddText(cmd.Context(), text)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved text #%d.\n", len(list))
		return nil
	},
}

var textsImportCmd = &cobra.Command{
	Use:   "import <url>",
	Short: "Save the readable text of a web page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, closeLog, err := setup(os.Stderr)
		if err != nil {
			return err
		}
		defer closeLog()

		res, err := newAPIClient(cfg, logger).ImportText(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %q as text #%d.\n", res.Title, len(res.Texts))
		return nil
	},
}

func init() {
	textsCmd.AddCommand(textsListCmd, textsAddCmd, textsImportCmd)
	rootCmd.AddCommand(textsCmd)
}

// textArg joins args into one text, or reads stdin when the only arg is "-".
func textArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}

func firstLine(text string) string {
	line, _, more := strings.Cut(text, "\n")
	if r := []rune(line); len(r) > 70 {
		return string(r[:69]) + "…"
	}
	if more {
		return line + " …"
	}
	return line
}
