// stage-compare runs every cleaning and lemmatizing configuration on the same
// reviews and reports output size, vocabulary and timing.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/reviewnorm/internal/input"
	"github.com/jmylchreest/reviewnorm/pkg/cleaner/review"
	"github.com/jmylchreest/reviewnorm/pkg/lemma"
	"github.com/jmylchreest/reviewnorm/pkg/pipeline"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: stage-compare <reviews-file>\n")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}
	rd, _ := input.NewReader(input.Options{Format: input.FormatLines})
	docs, err := rd.Read(f)
	_ = f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	inputBytes := 0
	for _, d := range docs {
		s, _ := d.(string)
		inputBytes += len(s)
	}
	fmt.Printf("Input: %s documents, %s\n\n", humanize.Comma(int64(len(docs))), humanize.Bytes(uint64(inputBytes)))
	fmt.Printf("%-28s %10s %8s %8s %10s\n", "Configuration", "Output", "Reduce%", "Vocab", "Time")
	fmt.Printf("%-28s %10s %8s %8s %10s\n", "-------------", "------", "-------", "-----", "----")

	configs := []struct {
		name string
		opts []pipeline.Option
	}{
		{"clean only", []pipeline.Option{pipeline.WithBackend(lemma.BackendNone)}},
		{"clean (minimal)", []pipeline.Option{
			pipeline.WithCleanerConfig(review.PresetMinimal()),
			pipeline.WithBackend(lemma.BackendNone),
		}},
		{"clean -> stem", []pipeline.Option{pipeline.WithBackend(lemma.BackendStem)}},
		{"clean -> dictionary", []pipeline.Option{pipeline.WithBackend(lemma.BackendDictionary)}},
		{"markup -> clean -> dictionary", []pipeline.Option{pipeline.WithMarkup(true)}},
	}

	for _, c := range configs {
		p, err := pipeline.New(c.opts...)
		if err != nil {
			fmt.Printf("%-28s %10s %8s %8s %10s (error: %v)\n", c.name, "ERROR", "-", "-", "-", err)
			continue
		}

		start := time.Now()
		result := p.RunValues(docs)
		duration := time.Since(start)

		out := result.Normalized()
		outputBytes := 0
		vocab := make(map[string]struct{})
		for _, doc := range out {
			outputBytes += len(doc)
			for _, tok := range strings.Fields(doc) {
				vocab[tok] = struct{}{}
			}
		}

		reduction := 0.0
		if inputBytes > 0 {
			reduction = float64(inputBytes-outputBytes) / float64(inputBytes) * 100
		}
		fmt.Printf("%-28s %10s %7.1f%% %8s %10v\n",
			c.name, humanize.Bytes(uint64(outputBytes)), reduction,
			humanize.Comma(int64(len(vocab))), duration.Round(time.Millisecond))
	}
}
