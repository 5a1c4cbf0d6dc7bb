// Package report computes review-length statistics over normalized
// documents and renders them as text histograms.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultBins matches the usual plotting default.
	DefaultBins = 10

	// DefaultMaxLength is the upper bound of the length axis.
	DefaultMaxLength = 8000

	// DefaultWidth is the widest bar, in cells.
	DefaultWidth = 50
)

// Labels of the two series.
const (
	PositiveLabel = "Positive reviews"
	NegativeLabel = "Negative reviews"
)

// SplitByLabel splits a labelled-by-position corpus into its positive and
// negative halves. With half = n/2 - 1, the positive half is docs[:half] and
// the negative half docs[half+1:]; the element at half separates them.
// half is clamped at zero, so corpora of one or two documents have an empty
// positive half.
func SplitByLabel(docs []string) (positive, negative []string) {
	if len(docs) == 0 {
		return nil, nil
	}
	half := max(len(docs)/2-1, 0)
	return docs[:half], docs[half+1:]
}

// Lengths returns the length of each document in characters.
func Lengths(docs []string) []int {
	out := make([]int, len(docs))
	for i, doc := range docs {
		out[i] = utf8.RuneCountInString(doc)
	}
	return out
}

// Options configures a histogram.
type Options struct {
	Bins      int `json:"bins" yaml:"bins" mapstructure:"bins"`
	MaxLength int `json:"max_length" yaml:"max_length" mapstructure:"max_length"`
	Width     int `json:"width" yaml:"width" mapstructure:"width"`
}

// DefaultOptions returns the standard histogram options.
func DefaultOptions() Options {
	return Options{
		Bins:      DefaultBins,
		MaxLength: DefaultMaxLength,
		Width:     DefaultWidth,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Bins <= 0 {
		o.Bins = def.Bins
	}
	if o.MaxLength <= 0 {
		o.MaxLength = def.MaxLength
	}
	if o.Width <= 0 {
		o.Width = def.Width
	}
	return o
}

// Bin is one interval [Low, High) of the length axis. The last bin also
// holds High.
type Bin struct {
	Low      int `json:"low" yaml:"low"`
	High     int `json:"high" yaml:"high"`
	Positive int `json:"positive" yaml:"positive"`
	Negative int `json:"negative" yaml:"negative"`
}

// Series summarizes the lengths of one half of the corpus.
type Series struct {
	Label    string  `json:"label" yaml:"label"`
	Count    int     `json:"count" yaml:"count"`
	Min      int     `json:"min" yaml:"min"`
	Max      int     `json:"max" yaml:"max"`
	Mean     float64 `json:"mean" yaml:"mean"`
	Overflow int     `json:"overflow" yaml:"overflow"` // lengths beyond MaxLength
}

// Histogram holds the binned review lengths of both halves.
type Histogram struct {
	Title    string  `json:"title" yaml:"title"`
	XLabel   string  `json:"x_label" yaml:"x_label"`
	YLabel   string  `json:"y_label" yaml:"y_label"`
	Bins     []Bin   `json:"bins" yaml:"bins"`
	Positive Series  `json:"positive" yaml:"positive"`
	Negative Series  `json:"negative" yaml:"negative"`
	options  Options
}

// FromDocuments splits docs by label and bins their lengths.
func FromDocuments(docs []string, opts Options) *Histogram {
	positive, negative := SplitByLabel(docs)
	return New(Lengths(positive), Lengths(negative), opts)
}

// New bins the positive and negative lengths over the shared range
// [0, opts.MaxLength].
func New(positive, negative []int, opts Options) *Histogram {
	opts = opts.withDefaults()

	h := &Histogram{
		Title:    "Review length distribution",
		XLabel:   "Reviews length",
		YLabel:   "Frequency",
		Bins:     make([]Bin, opts.Bins),
		Positive: summarize(PositiveLabel, positive, opts.MaxLength),
		Negative: summarize(NegativeLabel, negative, opts.MaxLength),
		options:  opts,
	}

	for i := range h.Bins {
		h.Bins[i].Low = i * opts.MaxLength / opts.Bins
		h.Bins[i].High = (i + 1) * opts.MaxLength / opts.Bins
	}

	for _, l := range positive {
		if i, ok := h.binIndex(l); ok {
			h.Bins[i].Positive++
		}
	}
	for _, l := range negative {
		if i, ok := h.binIndex(l); ok {
			h.Bins[i].Negative++
		}
	}

	return h
}

func (h *Histogram) binIndex(length int) (int, bool) {
	if length < 0 || length > h.options.MaxLength {
		return 0, false
	}
	i := length * h.options.Bins / h.options.MaxLength
	if i >= h.options.Bins {
		i = h.options.Bins - 1
	}
	return i, true
}

func summarize(label string, lengths []int, maxLength int) Series {
	s := Series{Label: label, Count: len(lengths)}
	if len(lengths) == 0 {
		return s
	}

	s.Min, s.Max = lengths[0], lengths[0]
	total := 0
	for _, l := range lengths {
		total += l
		if l < s.Min {
			s.Min = l
		}
		if l > s.Max {
			s.Max = l
		}
		if l > maxLength {
			s.Overflow++
		}
	}
	s.Mean = float64(total) / float64(len(lengths))
	return s
}

// peak returns the largest bin frequency across both series.
func (h *Histogram) peak() int {
	peak := 0
	for _, b := range h.Bins {
		peak = max(peak, b.Positive, b.Negative)
	}
	return peak
}

// Render writes the histogram as text: one row per bin with a positive ('+')
// and a negative ('-') bar scaled to the widest frequency.
func (h *Histogram) Render(w io.Writer) error {
	var sb strings.Builder

	sb.WriteString(h.Title + "\n")
	sb.WriteString(fmt.Sprintf("%s: %d reviews, mean length %.1f\n", h.Positive.Label, h.Positive.Count, h.Positive.Mean))
	sb.WriteString(fmt.Sprintf("%s: %d reviews, mean length %.1f\n", h.Negative.Label, h.Negative.Count, h.Negative.Mean))
	sb.WriteString(fmt.Sprintf("%-13s %s\n", h.XLabel, h.YLabel))

	peak := h.peak()
	for _, b := range h.Bins {
		rng := fmt.Sprintf("%d-%d", b.Low, b.High)
		sb.WriteString(fmt.Sprintf("%-13s + %-*s %d\n", rng, h.options.Width, bar('+', b.Positive, peak, h.options.Width), b.Positive))
		sb.WriteString(fmt.Sprintf("%-13s - %-*s %d\n", "", h.options.Width, bar('-', b.Negative, peak, h.options.Width), b.Negative))
	}

	if overflow := h.Positive.Overflow + h.Negative.Overflow; overflow > 0 {
		sb.WriteString(fmt.Sprintf("%d reviews longer than %d not shown\n", overflow, h.options.MaxLength))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// bar returns a bar of n scaled against peak. Non-zero counts always get at
// least one cell.
func bar(mark byte, n, peak, width int) string {
	if n <= 0 || peak <= 0 {
		return ""
	}
	cells := n * width / peak
	if cells == 0 {
		cells = 1
	}
	return strings.Repeat(string(mark), cells)
}
