package lemma

import (
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"blank", " \t\n ", nil},
		{"words", "running dogs", []string{"running", "dogs"}},
		{"extra_spaces", "  spaced   out  ", []string{"spaced", "out"}},
		{"punctuation", "hello, world!", []string{"hello", ",", "world", "!"}},
		{"negation", "can't stop", []string{"ca", "n't", "stop"}},
		{"negation_wont", "won't", []string{"wo", "n't"}},
		{"possessive", "it's fine.", []string{"it", "'s", "fine", "."}},
		{"curly_apostrophe", "they’re here", []string{"they", "'re", "here"}},
		{"fused", "I cannot go", []string{"I", "can", "not", "go"}},
		{"accented", "café crème", []string{"café", "crème"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %q, want %q", tt.input, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Tokenize(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		backend  Backend
		wantName string
		wantErr  bool
	}{
		{"", "dictionary", false},
		{BackendDictionary, "dictionary", false},
		{BackendStem, "stem", false},
		{BackendNone, "none", false},
		{"wordnet", "", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			l, err := New(tt.backend)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%q) error = %v, wantErr %v", tt.backend, err, tt.wantErr)
			}
			if err != nil {
				if !strings.Contains(err.Error(), "unsupported") {
					t.Errorf("expected error containing 'unsupported', got %v", err)
				}
				return
			}
			if l.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", l.Name(), tt.wantName)
			}
		})
	}

	if len(Backends()) != 3 {
		t.Errorf("Backends() = %v, want 3 entries", Backends())
	}
}

func TestDictionary_Lemma(t *testing.T) {
	d, err := NewDictionary()
	if err != nil {
		t.Fatalf("NewDictionary() error = %v", err)
	}

	if got := d.Lemma("dogs"); got != "dog" {
		t.Errorf("Lemma(dogs) = %q, want %q", got, "dog")
	}
	if got := d.Lemma("cats"); got != "cat" {
		t.Errorf("Lemma(cats) = %q, want %q", got, "cat")
	}
	if got := d.Lemma(""); got != "" {
		t.Errorf("Lemma(\"\") = %q, want empty", got)
	}
	if got := d.Lemma("xqzzyv"); got != "xqzzyv" {
		t.Errorf("Lemma(unknown) = %q, want it unchanged", got)
	}

	again, err := NewDictionary()
	if err != nil {
		t.Fatalf("NewDictionary() error = %v", err)
	}
	if again.lemmatizer != d.lemmatizer {
		t.Error("expected the dictionary to be loaded once and shared")
	}
}

func TestStemmer_Lemma(t *testing.T) {
	s := NewStemmer()

	tests := []struct {
		input string
		want  string
	}{
		{"running", "run"},
		{"dogs", "dog"},
		{"the", "the"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := s.Lemma(tt.input); got != tt.want {
				t.Errorf("Lemma(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// suffixLemmatizer strips a trailing "s"; it gives exact, dictionary-free
// expectations for stage tests.
type suffixLemmatizer struct{}

func (suffixLemmatizer) Lemma(word string) string { return strings.TrimSuffix(word, "s") }
func (suffixLemmatizer) Name() string             { return "suffix" }

func TestStage_LemmatizeAll(t *testing.T) {
	s := NewStage(suffixLemmatizer{})
	docs := []string{"running dogs", "", "cats sleep", "plot"}

	got := s.LemmatizeAll(docs)
	want := []string{"running dog", "", "cat sleep", "plot"}

	if len(got) != len(docs) {
		t.Fatalf("LemmatizeAll() returned %d documents, want %d", len(got), len(docs))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LemmatizeAll()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if out := s.LemmatizeAll(nil); len(out) != 0 {
		t.Errorf("LemmatizeAll(nil) = %v, want empty", out)
	}
}

func TestStage_Dictionary(t *testing.T) {
	d, err := NewDictionary()
	if err != nil {
		t.Fatalf("NewDictionary() error = %v", err)
	}
	s := NewStage(d)

	lemmas := s.Lemmas("running dogs")
	if len(lemmas) != 2 {
		t.Fatalf("Lemmas() = %q, want 2 tokens", lemmas)
	}
	if lemmas[1] != "dog" {
		t.Errorf("Lemmas()[1] = %q, want %q", lemmas[1], "dog")
	}
	if lemmas[0] != "running" && lemmas[0] != "run" {
		t.Errorf("Lemmas()[0] = %q, want running or run", lemmas[0])
	}

	if got := s.Lemmatize(""); got != "" {
		t.Errorf("Lemmatize(\"\") = %q, want empty", got)
	}
}

func TestStage_Cleaner(t *testing.T) {
	s := NewStage(nil)

	got, err := s.Clean("as  is")
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if got != "as is" {
		t.Errorf("Clean() = %q, want %q", got, "as is")
	}
	if s.Name() != "lemma(none)" {
		t.Errorf("Name() = %q, want %q", s.Name(), "lemma(none)")
	}
	if _, ok := s.Lemmatizer().(Identity); !ok {
		t.Errorf("expected Identity lemmatizer, got %T", s.Lemmatizer())
	}
}
