package review

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats captures what the cleaner did to one or more documents.
type Stats struct {
	// Size metrics
	Documents   int `json:"documents" yaml:"documents"`
	InputBytes  int `json:"input_bytes" yaml:"input_bytes"`
	OutputBytes int `json:"output_bytes" yaml:"output_bytes"`

	// Removal counts
	ContractionsExpanded int `json:"contractions_expanded" yaml:"contractions_expanded"`
	URLsRemoved          int `json:"urls_removed" yaml:"urls_removed"`
	StopwordsRemoved     int `json:"stopwords_removed" yaml:"stopwords_removed"`
	ShortTokensRemoved   int `json:"short_tokens_removed" yaml:"short_tokens_removed"`

	// Output shape
	TokensKept     int `json:"tokens_kept" yaml:"tokens_kept"`
	EmptyDocuments int `json:"empty_documents" yaml:"empty_documents"`

	// Timing
	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// NewStats creates a new Stats instance.
func NewStats() *Stats {
	return &Stats{}
}

// Add accumulates other into s.
func (s *Stats) Add(other *Stats) {
	if other == nil {
		return
	}
	s.Documents += other.Documents
	s.InputBytes += other.InputBytes
	s.OutputBytes += other.OutputBytes
	s.ContractionsExpanded += other.ContractionsExpanded
	s.URLsRemoved += other.URLsRemoved
	s.StopwordsRemoved += other.StopwordsRemoved
	s.ShortTokensRemoved += other.ShortTokensRemoved
	s.TokensKept += other.TokensKept
	s.EmptyDocuments += other.EmptyDocuments
	s.Duration += other.Duration
}

// ReductionPercent returns the percentage reduction in size.
func (s *Stats) ReductionPercent() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.InputBytes-s.OutputBytes) / float64(s.InputBytes) * 100
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Documents: %s (%s empty after cleaning)\n",
		humanize.Comma(int64(s.Documents)), humanize.Comma(int64(s.EmptyDocuments))))

	sb.WriteString(fmt.Sprintf("Size: %s -> %s (%.1f%% reduction)\n",
		humanize.Bytes(uint64(s.InputBytes)), humanize.Bytes(uint64(s.OutputBytes)), s.ReductionPercent()))

	sb.WriteString(fmt.Sprintf("Tokens kept: %s\n", humanize.Comma(int64(s.TokensKept))))

	if s.ContractionsExpanded > 0 {
		sb.WriteString(fmt.Sprintf("Contractions expanded: %s\n", humanize.Comma(int64(s.ContractionsExpanded))))
	}
	if s.URLsRemoved > 0 {
		sb.WriteString(fmt.Sprintf("URLs removed: %s\n", humanize.Comma(int64(s.URLsRemoved))))
	}
	if s.StopwordsRemoved > 0 {
		sb.WriteString(fmt.Sprintf("Stopwords removed: %s\n", humanize.Comma(int64(s.StopwordsRemoved))))
	}
	if s.ShortTokensRemoved > 0 {
		sb.WriteString(fmt.Sprintf("Short tokens removed: %s\n", humanize.Comma(int64(s.ShortTokensRemoved))))
	}

	sb.WriteString(fmt.Sprintf("Timing: %v\n", s.Duration.Round(time.Microsecond)))

	return sb.String()
}

// Result contains the output of cleaning one document.
type Result struct {
	// Content is the cleaned document. It is empty when nothing survived.
	Content string `json:"content"`

	// Stats contains metrics about what was done.
	Stats *Stats `json:"stats"`
}

// IsEmpty reports whether the cleaned document holds no tokens.
func (r *Result) IsEmpty() bool {
	return r.Content == ""
}
