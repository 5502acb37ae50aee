package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/lesehilfe/internal/reader"
)

var analyzeContext string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <word>",
	Short: "Explain the grammar of one word",
	Long: `Ask the API for the grammar analysis of a word and print it with an
example sentence and its Russian translation.

Example:
  lesehilfe analyze bellt --context "Der Hund bellt laut."`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeContext, "context", "c", "", "text the word appears in (default is the word itself)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, logger, closeLog, err := setup(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	word := args[0]
	textContext := strings.TrimSpace(analyzeContext)
	if textContext == "" {
		textContext = word
	}

	a, err := newAPIClient(cfg, logger).Analyze(cmd.Context(), word, textContext)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), reader.NewMarkup().Render(a.GrammarDetailsAndUsage))
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), a.Example.German)
	fmt.Fprintln(cmd.OutOrStdout(), a.Example.Russian)
	return nil
}
