package pipeline

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/jmylchreest/reviewnorm/pkg/cleaner/review"
	"github.com/jmylchreest/reviewnorm/pkg/lemma"
)

type suffixLemmatizer struct{}

func (suffixLemmatizer) Lemma(word string) string { return strings.TrimSuffix(word, "s") }
func (suffixLemmatizer) Name() string             { return "suffix" }

func mustNew(t *testing.T, opts ...Option) *Pipeline {
	t.Helper()
	p, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

func TestNew_Defaults(t *testing.T) {
	p := mustNew(t)

	cfg := p.Config()
	if cfg.Backend != lemma.BackendDictionary {
		t.Errorf("Backend = %q, want %q", cfg.Backend, lemma.BackendDictionary)
	}
	if cfg.Cleaner.MinTokenLength != 3 {
		t.Errorf("MinTokenLength = %d, want 3", cfg.Cleaner.MinTokenLength)
	}
	if cfg.StripMarkup {
		t.Error("expected markup stripping to be off by default")
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"nil cleaner config", []Option{WithCleanerConfig(nil)}},
		{"zero token length", []Option{WithCleanerConfig(&review.Config{MinTokenLength: 0})}},
		{"unknown backend", []Option{WithBackend("wordnet")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), "invalid pipeline config") {
				t.Errorf("expected error containing 'invalid pipeline config', got %v", err)
			}
		})
	}
}

func TestPipeline_Name(t *testing.T) {
	p := mustNew(t, WithBackend(lemma.BackendNone))
	if got, want := p.Name(), "chain(noop->review->lemma(none))"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}

	p = mustNew(t, WithMarkup(true), WithLemmatizer(suffixLemmatizer{}))
	if got, want := p.Name(), "chain(markup->review->lemma(suffix))"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
}

func TestPipeline_Run(t *testing.T) {
	p := mustNew(t, WithLemmatizer(suffixLemmatizer{}))

	docs := []string{
		"I can't believe it's o'clock",
		"",
		"Loved the dogs!!",
		"Is it?",
	}
	result := p.Run(docs)

	wantCleaned := []string{"believe clock", "", "loved dogs", ""}
	wantNormalized := []string{"believe clock", "", "loved dog", ""}

	if len(result.Records) != len(docs) {
		t.Fatalf("Run() returned %d records, want %d", len(result.Records), len(docs))
	}
	cleaned, normalized := result.Cleaned(), result.Normalized()
	for i := range docs {
		if cleaned[i] != wantCleaned[i] {
			t.Errorf("Cleaned()[%d] = %q, want %q", i, cleaned[i], wantCleaned[i])
		}
		if normalized[i] != wantNormalized[i] {
			t.Errorf("Normalized()[%d] = %q, want %q", i, normalized[i], wantNormalized[i])
		}
		if result.Records[i].Index != i {
			t.Errorf("Records[%d].Index = %d", i, result.Records[i].Index)
		}
		if result.Records[i].Raw != docs[i] {
			t.Errorf("Records[%d].Raw = %q, want %q", i, result.Records[i].Raw, docs[i])
		}
	}

	if err := result.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
	if result.Stats.Cleaning.Documents != 4 {
		t.Errorf("Stats.Cleaning.Documents = %d, want 4", result.Stats.Cleaning.Documents)
	}
	if result.Stats.Cleaning.EmptyDocuments != 2 {
		t.Errorf("Stats.Cleaning.EmptyDocuments = %d, want 2", result.Stats.Cleaning.EmptyDocuments)
	}
	if result.Stats.Lemmas != 4 {
		t.Errorf("Stats.Lemmas = %d, want 4", result.Stats.Lemmas)
	}
}

func TestPipeline_Run_Empty(t *testing.T) {
	p := mustNew(t, WithBackend(lemma.BackendNone))

	result := p.Run(nil)
	if len(result.Records) != 0 {
		t.Errorf("expected no records, got %d", len(result.Records))
	}
	if len(result.Cleaned()) != 0 || len(result.Normalized()) != 0 {
		t.Error("expected empty outputs")
	}
}

func TestPipeline_RunValues_IsolatesInvalid(t *testing.T) {
	p := mustNew(t, WithBackend(lemma.BackendNone))

	values := []any{"good film", nil, 42, math.NaN(), []byte("great acting")}
	result := p.RunValues(values)

	if len(result.Records) != len(values) {
		t.Fatalf("RunValues() returned %d records, want %d", len(result.Records), len(values))
	}

	want := []string{"good film", "", "", "", "great acting"}
	for i, rec := range result.Records {
		if rec.Normalized != want[i] {
			t.Errorf("Records[%d].Normalized = %q, want %q", i, rec.Normalized, want[i])
		}
	}

	reasons := map[int]string{1: "missing value", 2: "expected text", 3: "missing value"}
	for i, reason := range reasons {
		err := result.Records[i].Err()
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Records[%d].Err() = %v, want ErrInvalidInput", i, err)
			continue
		}
		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Fatalf("Records[%d].Err() is not *InvalidInputError", i)
		}
		if invalid.Index != i {
			t.Errorf("Records[%d] error Index = %d", i, invalid.Index)
		}
		if invalid.Reason != reason {
			t.Errorf("Records[%d] error Reason = %q, want %q", i, invalid.Reason, reason)
		}
		if result.Records[i].Error == "" {
			t.Errorf("Records[%d].Error is empty", i)
		}
	}

	if result.Records[0].Err() != nil || result.Records[4].Err() != nil {
		t.Error("valid documents should carry no error")
	}
	if got := len(result.Errors()); got != 3 {
		t.Errorf("len(Errors()) = %d, want 3", got)
	}
	if !errors.Is(result.Err(), ErrInvalidInput) {
		t.Errorf("Err() = %v, want it to match ErrInvalidInput", result.Err())
	}
	if result.Stats.InvalidDocuments != 3 {
		t.Errorf("Stats.InvalidDocuments = %d, want 3", result.Stats.InvalidDocuments)
	}
	if result.Stats.Cleaning.Documents != 5 {
		t.Errorf("Stats.Cleaning.Documents = %d, want 5", result.Stats.Cleaning.Documents)
	}
}

func TestPipeline_Markup(t *testing.T) {
	input := "<script>alert('spam')</script>Lovely film"

	plain := mustNew(t, WithBackend(lemma.BackendNone)).Run([]string{input})
	if got := plain.Cleaned()[0]; !strings.Contains(got, "script") {
		t.Errorf("without markup stripping, expected tag names to survive, got %q", got)
	}

	stripped := mustNew(t, WithBackend(lemma.BackendNone), WithMarkup(true)).Run([]string{input})
	if got := stripped.Cleaned()[0]; got != "lovely film" {
		t.Errorf("Cleaned() = %q, want %q", got, "lovely film")
	}
}

func TestPipeline_CustomCleanerConfig(t *testing.T) {
	cfg := review.DefaultConfig()
	cfg.KeepStopwords = []string{"not"}
	p := mustNew(t, WithCleanerConfig(cfg), WithBackend(lemma.BackendNone))

	if got := p.Run([]string{"not bad"}).Cleaned()[0]; got != "not bad" {
		t.Errorf("Cleaned() = %q, want %q", got, "not bad")
	}
}

func TestPipeline_Concurrent(t *testing.T) {
	p := mustNew(t, WithLemmatizer(suffixLemmatizer{}))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := p.Run([]string{"loved the dogs"}).Normalized()[0]
			if got != "loved dog" {
				t.Errorf("Normalized() = %q, want %q", got, "loved dog")
			}
		}()
	}
	wg.Wait()
}

func TestStats_String(t *testing.T) {
	p := mustNew(t, WithBackend(lemma.BackendNone))
	result := p.RunValues([]any{"great film", nil})

	s := result.Stats.String()
	for _, want := range []string{"Invalid documents: 1", "Lemmas: 2", "Stages:"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestClean(t *testing.T) {
	got := Clean([]string{"The acting wasn't great", ""})
	if len(got) != 2 {
		t.Fatalf("Clean() returned %d documents, want 2", len(got))
	}
	if got[0] != "acting great" {
		t.Errorf("Clean()[0] = %q, want %q", got[0], "acting great")
	}
	if got[1] != "" {
		t.Errorf("Clean()[1] = %q, want empty", got[1])
	}
}

func TestLemmatize(t *testing.T) {
	got, err := Lemmatize([]string{"dogs", ""})
	if err != nil {
		t.Fatalf("Lemmatize() error = %v", err)
	}
	if got[0] != "dog" || got[1] != "" {
		t.Errorf("Lemmatize() = %q, want [dog \"\"]", got)
	}
}
