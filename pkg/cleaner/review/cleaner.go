package review

import (
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/jmylchreest/reviewnorm/pkg/contraction"
	"github.com/jmylchreest/reviewnorm/pkg/stopword"
)

var (
	// lineBreaks matches doubled markup line breaks and the hyphen and slash
	// characters, all of which separate words.
	lineBreaks = regexp.MustCompile(`(<br\s*/><br\s*/>)|(-)|(/)`)

	// urls matches "http" and the non-whitespace run after it. Any Unicode
	// space ends the run.
	urls = regexp.MustCompile(`http[^\t\n\v\f\r\p{Z}\x{85}]+`)

	// nonAlpha matches everything outside ASCII and Latin-1 letters.
	nonAlpha = regexp.MustCompile(`[^A-Za-zÀ-ÿ]`)
)

// Cleaner cleans review text. It implements the cleaner.Cleaner interface
// and is safe for concurrent use.
type Cleaner struct {
	config    *Config
	expander  *contraction.Expander
	stopwords stopword.Set
}

// New creates a new Cleaner with the given configuration.
// If config is nil, DefaultConfig() is used. The configuration is not
// validated here; call Config.Validate first when it comes from users.
func New(config *Config) *Cleaner {
	if config == nil {
		config = DefaultConfig()
	}

	c := &Cleaner{
		config:   config,
		expander: contraction.DefaultExpander(),
	}
	if !config.SkipStopwords {
		c.stopwords = stopword.English().
			With(config.ExtraStopwords...).
			Without(config.KeepStopwords...)
	}
	return c
}

// Name returns the cleaner name for logging.
func (c *Cleaner) Name() string {
	return "review"
}

// Config returns the configuration in use.
func (c *Cleaner) Config() *Config {
	return c.config
}

// Clean cleans a single document. It never fails for string input.
func (c *Cleaner) Clean(text string) (string, error) {
	return c.CleanWithStats(text).Content, nil
}

// CleanAll cleans every document, returning exactly one output per input in
// the same order. Documents that clean to nothing stay as empty strings.
func (c *Cleaner) CleanAll(docs []string) []string {
	out := make([]string, len(docs))
	for i, doc := range docs {
		out[i] = c.CleanWithStats(doc).Content
	}
	return out
}

// CleanValue validates v before cleaning it. Strings and byte slices are
// cleaned. nil and NaN are treated as missing documents; they, and any other
// type, produce an empty string and an *InvalidInputError.
func (c *Cleaner) CleanValue(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return c.CleanWithStats(t).Content, nil
	case []byte:
		return c.CleanWithStats(string(t)).Content, nil
	case nil:
		return "", &InvalidInputError{Index: -1, Value: v, Reason: "missing value"}
	case float64:
		if math.IsNaN(t) {
			return "", &InvalidInputError{Index: -1, Value: v, Reason: "missing value"}
		}
	case float32:
		if math.IsNaN(float64(t)) {
			return "", &InvalidInputError{Index: -1, Value: v, Reason: "missing value"}
		}
	}
	return "", &InvalidInputError{Index: -1, Value: v, Reason: "expected text"}
}

// CleanWithStats cleans one document and reports what was removed.
func (c *Cleaner) CleanWithStats(text string) *Result {
	start := time.Now()
	stats := NewStats()
	stats.Documents = 1
	stats.InputBytes = len(text)

	// Order matters: every step relies on the normalization before it.

	// 1. Lowercase
	text = lower(text)

	// 2. Expand contractions while apostrophes are still present
	if !c.config.SkipContractions {
		stats.ContractionsExpanded = c.expander.Count(text)
		text = c.expander.Expand(text)
	}

	// 3. Line breaks, hyphens and slashes become spaces
	text = lineBreaks.ReplaceAllString(text, " ")

	// 4. URLs
	if !c.config.KeepURLs {
		stats.URLsRemoved = len(urls.FindAllStringIndex(text, -1))
		text = urls.ReplaceAllString(text, "")
	}

	// 5. Non-letters become spaces
	text = nonAlpha.ReplaceAllString(text, " ")

	// 6. A blank document is kept; the remaining steps reduce it to "".

	// 7-9. Collapse whitespace, drop stopwords, then drop short tokens
	tokens := strings.Fields(text)
	kept := tokens[:0]
	for _, tok := range tokens {
		if c.stopwords.Contains(tok) {
			stats.StopwordsRemoved++
			continue
		}
		if utf8.RuneCountInString(tok) < c.config.MinTokenLength {
			stats.ShortTokensRemoved++
			continue
		}
		kept = append(kept, tok)
	}

	content := strings.Join(kept, " ")
	stats.TokensKept = len(kept)
	stats.OutputBytes = len(content)
	if content == "" {
		stats.EmptyDocuments = 1
	}
	stats.Duration = time.Since(start)

	return &Result{
		Content: content,
		Stats:   stats,
	}
}

// lower composes accents and lowercases text. A fresh Caser is used per
// call because cases.Caser is stateful.
func lower(text string) string {
	if text == "" {
		return text
	}
	return cases.Lower(language.English).String(norm.NFC.String(text))
}
