package lemma

import "strings"

// Stage tokenizes and lemmatizes cleaned documents. It implements the
// cleaner.Cleaner interface.
type Stage struct {
	lemmatizer Lemmatizer
}

// NewStage creates a stage around l. A nil l leaves tokens unchanged.
func NewStage(l Lemmatizer) *Stage {
	if l == nil {
		l = Identity{}
	}
	return &Stage{lemmatizer: l}
}

// Lemmatizer returns the lemmatizer in use.
func (s *Stage) Lemmatizer() Lemmatizer {
	return s.lemmatizer
}

// Lemmas tokenizes doc and lemmatizes each token.
func (s *Stage) Lemmas(doc string) []string {
	tokens := Tokenize(doc)
	for i, tok := range tokens {
		tokens[i] = s.lemmatizer.Lemma(tok)
	}
	return tokens
}

// Lemmatize returns the lemmas of doc joined by single spaces.
// An empty document gives an empty result.
func (s *Stage) Lemmatize(doc string) string {
	return strings.Join(s.Lemmas(doc), " ")
}

// LemmatizeAll lemmatizes every document, returning exactly one output per
// input in the same order.
func (s *Stage) LemmatizeAll(docs []string) []string {
	out := make([]string, len(docs))
	for i, doc := range docs {
		out[i] = s.Lemmatize(doc)
	}
	return out
}

// Clean implements cleaner.Cleaner. It never fails.
func (s *Stage) Clean(doc string) (string, error) {
	return s.Lemmatize(doc), nil
}

// Name returns the stage name for logging.
func (s *Stage) Name() string {
	return "lemma(" + s.lemmatizer.Name() + ")"
}
