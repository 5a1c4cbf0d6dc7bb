package commands

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/reviewnorm/internal/logger"
	"github.com/jmylchreest/reviewnorm/internal/output"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Clean, tokenize and lemmatize reviews",
	Long: `Normalize cleans each review, then tokenizes it and replaces every token
by its lemma.

With --records, structured formats carry one record per document with the
raw, cleaned and normalized text and any error.

Examples:
  reviewnorm normalize -i reviews.txt
  reviewnorm normalize -i reviews.jsonl --input-format jsonl --field text
  reviewnorm normalize -i reviews.json --input-format json -f jsonl --records --stats`,
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().Bool("records", false, "write per-document records instead of normalized text")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	result, err := run(cmd, "")
	if err != nil {
		logger.Error("normalize failed", "error", err)
		return err
	}

	w, _, closeOut, err := openOutput(cmd)
	if err != nil {
		return err
	}

	items := output.Values(result.Normalized())
	format, _ := cmd.Flags().GetString("format")
	if records, _ := cmd.Flags().GetBool("records"); records && format != string(output.FormatText) {
		items = output.Values(result.Records)
	}

	if err := w.WriteAll(items); err != nil {
		_ = closeOut()
		return err
	}
	return closeOut()
}
