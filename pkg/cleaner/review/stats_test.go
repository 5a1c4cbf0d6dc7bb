package review

import (
	"strings"
	"testing"
	"time"
)

func TestStats_Add(t *testing.T) {
	total := NewStats()
	total.Add(&Stats{Documents: 1, InputBytes: 10, OutputBytes: 4, StopwordsRemoved: 2, Duration: time.Millisecond})
	total.Add(&Stats{Documents: 1, InputBytes: 6, EmptyDocuments: 1, URLsRemoved: 3, Duration: time.Millisecond})
	total.Add(nil)

	if total.Documents != 2 {
		t.Errorf("Documents = %d, want 2", total.Documents)
	}
	if total.InputBytes != 16 || total.OutputBytes != 4 {
		t.Errorf("bytes = %d -> %d, want 16 -> 4", total.InputBytes, total.OutputBytes)
	}
	if total.StopwordsRemoved != 2 || total.URLsRemoved != 3 || total.EmptyDocuments != 1 {
		t.Errorf("unexpected counters: %+v", total)
	}
	if total.Duration != 2*time.Millisecond {
		t.Errorf("Duration = %v, want 2ms", total.Duration)
	}
}

func TestStats_ReductionPercent(t *testing.T) {
	tests := []struct {
		name string
		in   int
		out  int
		want float64
	}{
		{"zero_input", 0, 0, 0},
		{"half", 100, 50, 50},
		{"none", 10, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Stats{InputBytes: tt.in, OutputBytes: tt.out}
			if got := s.ReductionPercent(); got != tt.want {
				t.Errorf("ReductionPercent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStats_String(t *testing.T) {
	s := &Stats{
		Documents:      1234,
		EmptyDocuments: 2,
		InputBytes:     100,
		OutputBytes:    50,
		TokensKept:     7,
		URLsRemoved:    1,
	}

	out := s.String()

	for _, want := range []string{
		"Documents: 1,234 (2 empty after cleaning)",
		"Size: 100 B -> 50 B (50.0% reduction)",
		"Tokens kept: 7",
		"URLs removed: 1",
		"Timing:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q in:\n%s", want, out)
		}
	}

	if strings.Contains(out, "Stopwords removed") {
		t.Error("zero counters should be omitted")
	}
}
