package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/reviewnorm/internal/input"
	"github.com/jmylchreest/reviewnorm/internal/logger"
	"github.com/jmylchreest/reviewnorm/internal/output"
	"github.com/jmylchreest/reviewnorm/pkg/cleaner/review"
	"github.com/jmylchreest/reviewnorm/pkg/lemma"
	"github.com/jmylchreest/reviewnorm/pkg/pipeline"
)

// readDocuments reads the documents named by the input flags.
func readDocuments(cmd *cobra.Command) ([]any, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("input")
	formatStr, _ := flags.GetString("input-format")
	field, _ := flags.GetString("field")
	sizeStr, _ := flags.GetString("max-input-size")

	format, err := input.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}
	maxSize, err := parseSize(sizeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid max-input-size %q: %w", sizeStr, err)
	}

	rd, err := input.NewReader(input.Options{Format: format, MaxSize: maxSize, Field: field})
	if err != nil {
		return nil, err
	}

	var r io.Reader = cmd.InOrStdin()
	if path != "" && path != "-" {
		f, err := os.Open(path) //#nosec G304 -- CLI tool reads a user-specified input file
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	docs, err := rd.Read(r)
	if err != nil {
		return nil, err
	}
	logger.Debug("documents read", "count", len(docs), "format", format, "source", path)
	return docs, nil
}

// parseSize parses a human-readable byte size. Empty and "0" select the
// reader default.
func parseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, err
	}
	return int64(n), nil
}

// cleanerConfig builds the review cleaner configuration from flags, the
// config file and the environment.
func cleanerConfig() (*review.Config, error) {
	cfg := review.DefaultConfig().Merge(&review.Config{
		MinTokenLength:   viper.GetInt("min_token_length"),
		ExtraStopwords:   viper.GetStringSlice("extra_stopwords"),
		KeepStopwords:    viper.GetStringSlice("keep_stopwords"),
		SkipStopwords:    viper.GetBool("skip_stopwords"),
		SkipContractions: viper.GetBool("skip_contractions"),
		KeepURLs:         viper.GetBool("keep_urls"),
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newPipeline builds a pipeline from the configuration. backend overrides
// the configured lemmatizer when non-empty.
func newPipeline(backend lemma.Backend) (*pipeline.Pipeline, error) {
	cfg, err := cleanerConfig()
	if err != nil {
		return nil, err
	}
	if backend == "" {
		backend = lemma.Backend(viper.GetString("lemmatizer"))
	}
	return pipeline.New(
		pipeline.WithCleanerConfig(cfg),
		pipeline.WithBackend(backend),
		pipeline.WithMarkup(viper.GetBool("strip_markup")),
	)
}

// run reads the input and runs it through a pipeline.
func run(cmd *cobra.Command, backend lemma.Backend) (*pipeline.Result, error) {
	docs, err := readDocuments(cmd)
	if err != nil {
		return nil, err
	}
	p, err := newPipeline(backend)
	if err != nil {
		return nil, err
	}

	result := p.RunValues(docs)

	if stats, _ := cmd.Flags().GetBool("stats"); stats {
		fmt.Fprint(cmd.ErrOrStderr(), result.Stats.String())
	}
	if strict, _ := cmd.Flags().GetBool("strict"); strict && result.Stats.InvalidDocuments > 0 {
		return result, fmt.Errorf("%d of %d documents are not text: %w",
			result.Stats.InvalidDocuments, len(result.Records), pipeline.ErrInvalidInput)
	}
	return result, nil
}

// openOutput opens the output destination and a writer in the requested
// format. The returned close function flushes the writer and closes the file.
func openOutput(cmd *cobra.Command) (output.Writer, io.Writer, func() error, error) {
	formatStr, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(formatStr)
	if err != nil {
		return nil, nil, nil, err
	}

	out := cmd.OutOrStdout()
	closeFile := func() error { return nil }
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path) //#nosec G304 -- CLI tool writes to user-specified output file
		if err != nil {
			return nil, nil, nil, fmt.Errorf("creating output file: %w", err)
		}
		out = f
		closeFile = f.Close
	}

	w, err := output.NewWriter(out, format)
	if err != nil {
		_ = closeFile()
		return nil, nil, nil, err
	}

	closeAll := func() error {
		if err := w.Close(); err != nil {
			_ = closeFile()
			return err
		}
		return closeFile()
	}
	return w, out, closeAll, nil
}
