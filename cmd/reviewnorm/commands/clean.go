package commands

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/reviewnorm/internal/logger"
	"github.com/jmylchreest/reviewnorm/internal/output"
	"github.com/jmylchreest/reviewnorm/pkg/lemma"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean reviews without lemmatizing them",
	Long: `Clean lowercases each review, expands contractions, removes URLs,
markup line breaks and non-letters, then drops stopwords and short tokens.

Examples:
  reviewnorm clean -i reviews.txt
  echo "I can't believe it's not butter!" | reviewnorm clean
  reviewnorm clean -i reviews.yaml --input-format yaml --keep-stopwords not`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	result, err := run(cmd, lemma.BackendNone)
	if err != nil {
		logger.Error("clean failed", "error", err)
		return err
	}

	w, _, closeOut, err := openOutput(cmd)
	if err != nil {
		return err
	}
	if err := w.WriteAll(output.Values(result.Cleaned())); err != nil {
		_ = closeOut()
		return err
	}
	return closeOut()
}
