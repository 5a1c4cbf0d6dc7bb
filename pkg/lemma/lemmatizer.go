package lemma

import (
	"fmt"
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/kljensen/snowball/english"
)

// Backend names a lemmatizer implementation.
type Backend string

const (
	// BackendDictionary looks words up in an English inflection dictionary.
	BackendDictionary Backend = "dictionary"
	// BackendStem applies the Snowball English stemmer.
	BackendStem Backend = "stem"
	// BackendNone returns tokens unchanged.
	BackendNone Backend = "none"
)

// Backends lists the supported backends.
func Backends() []Backend {
	return []Backend{BackendDictionary, BackendStem, BackendNone}
}

// Lemmatizer reduces a word to its base form.
// Lemma is best effort: words it cannot reduce come back unchanged.
type Lemmatizer interface {
	Lemma(word string) string
	Name() string
}

// New returns the lemmatizer for backend. An empty backend selects
// BackendDictionary.
func New(backend Backend) (Lemmatizer, error) {
	switch backend {
	case "", BackendDictionary:
		return NewDictionary()
	case BackendStem:
		return NewStemmer(), nil
	case BackendNone:
		return Identity{}, nil
	default:
		return nil, fmt.Errorf("unsupported lemmatizer backend: %s", backend)
	}
}

var (
	dictionary     *golem.Lemmatizer
	dictionaryErr  error
	dictionaryOnce sync.Once
)

// Dictionary lemmatizes with the golem English dictionary. The dictionary is
// loaded once per process and shared.
type Dictionary struct {
	lemmatizer *golem.Lemmatizer
}

// NewDictionary loads (once) and returns the English dictionary lemmatizer.
func NewDictionary() (*Dictionary, error) {
	dictionaryOnce.Do(func() {
		dictionary, dictionaryErr = golem.New(en.New())
	})
	if dictionaryErr != nil {
		return nil, fmt.Errorf("loading english dictionary: %w", dictionaryErr)
	}
	return &Dictionary{lemmatizer: dictionary}, nil
}

// Lemma returns the dictionary base form of word, or word itself when it is
// not in the dictionary.
func (d *Dictionary) Lemma(word string) string {
	if word == "" {
		return word
	}
	return d.lemmatizer.Lemma(word)
}

// Name returns the backend name.
func (d *Dictionary) Name() string {
	return string(BackendDictionary)
}

// Stemmer reduces words with the Snowball (Porter2) English stemmer.
// Stopwords are left as they are.
type Stemmer struct{}

// NewStemmer creates a new stemmer.
func NewStemmer() *Stemmer {
	return &Stemmer{}
}

// Lemma returns the stem of word.
func (s *Stemmer) Lemma(word string) string {
	if word == "" {
		return word
	}
	return english.Stem(word, false)
}

// Name returns the backend name.
func (s *Stemmer) Name() string {
	return string(BackendStem)
}

// Identity returns every word unchanged.
type Identity struct{}

// Lemma returns word.
func (Identity) Lemma(word string) string {
	return word
}

// Name returns the backend name.
func (Identity) Name() string {
	return string(BackendNone)
}
