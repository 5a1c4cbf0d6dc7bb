package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/reviewnorm/internal/logger"
	"github.com/jmylchreest/reviewnorm/internal/output"
	"github.com/jmylchreest/reviewnorm/pkg/report"
)

var histogramCmd = &cobra.Command{
	Use:   "histogram",
	Short: "Show the length distribution of positive and negative reviews",
	Long: `Histogram normalizes the corpus and bins the length of every document.

The corpus is labelled by position: the first half holds positive reviews,
the second half negative ones. Both halves share one length axis.

Examples:
  reviewnorm histogram -i reviews.txt
  reviewnorm histogram -i reviews.txt --bins 20 --max-length 4000
  reviewnorm histogram -i reviews.txt --raw -f json`,
	RunE: runHistogram,
}

func init() {
	rootCmd.AddCommand(histogramCmd)

	flags := histogramCmd.Flags()
	flags.Int("bins", report.DefaultBins, "number of bins")
	flags.Int("max-length", report.DefaultMaxLength, "upper bound of the length axis")
	flags.Int("width", report.DefaultWidth, "widest bar in text output")
	flags.Bool("raw", false, "measure documents as read, without normalizing")

	_ = viper.BindPFlag("bins", flags.Lookup("bins"))
	_ = viper.BindPFlag("max_length", flags.Lookup("max-length"))
}

func runHistogram(cmd *cobra.Command, args []string) error {
	var docs []string
	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		values, err := readDocuments(cmd)
		if err != nil {
			return err
		}
		for _, v := range values {
			s, _ := v.(string)
			docs = append(docs, s)
		}
	} else {
		result, err := run(cmd, "")
		if err != nil {
			logger.Error("histogram failed", "error", err)
			return err
		}
		docs = result.Normalized()
	}

	width, _ := cmd.Flags().GetInt("width")
	h := report.FromDocuments(docs, report.Options{
		Bins:      viper.GetInt("bins"),
		MaxLength: viper.GetInt("max_length"),
		Width:     width,
	})
	logger.Debug("histogram built",
		"positive", h.Positive.Count,
		"negative", h.Negative.Count,
		"bins", len(h.Bins))

	w, out, closeOut, err := openOutput(cmd)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if format == string(output.FormatText) {
		if err := h.Render(out); err != nil {
			_ = closeOut()
			return err
		}
		return closeOut()
	}

	if err := w.Write(h); err != nil {
		_ = closeOut()
		return err
	}
	return closeOut()
}
