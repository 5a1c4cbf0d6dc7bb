package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jmylchreest/reviewnorm/internal/logger"
	"github.com/jmylchreest/reviewnorm/pkg/cleaner"
	"github.com/jmylchreest/reviewnorm/pkg/cleaner/review"
	"github.com/jmylchreest/reviewnorm/pkg/lemma"
)

// Exported error types for input validation.
// These are re-exported from pkg/cleaner/review for use by consumers.
var (
	// ErrInvalidInput is returned for documents that are not text.
	ErrInvalidInput = review.ErrInvalidInput
)

// InvalidInputError provides details about a rejected document.
// Use errors.As to check for this error type.
type InvalidInputError = review.InvalidInputError

var validate = validator.New()

// Record is the outcome for one input document.
type Record struct {
	Index      int    `json:"index" yaml:"index"`
	Raw        string `json:"raw,omitempty" yaml:"raw,omitempty"`
	Cleaned    string `json:"cleaned" yaml:"cleaned"`
	Normalized string `json:"normalized" yaml:"normalized"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`

	err error
}

// Err returns the error recorded for the document, if any.
func (r Record) Err() error {
	return r.err
}

// Stats summarizes one pipeline run.
type Stats struct {
	Cleaning         *review.Stats `json:"cleaning" yaml:"cleaning"`
	InvalidDocuments int           `json:"invalid_documents" yaml:"invalid_documents"`
	Lemmas           int           `json:"lemmas" yaml:"lemmas"`
	CleanDuration    time.Duration `json:"clean_duration_ns" yaml:"clean_duration_ns"`
	LemmaDuration    time.Duration `json:"lemma_duration_ns" yaml:"lemma_duration_ns"`
	TotalDuration    time.Duration `json:"total_duration_ns" yaml:"total_duration_ns"`
}

// String returns a human-readable summary.
func (s *Stats) String() string {
	var sb strings.Builder
	sb.WriteString(s.Cleaning.String())
	if s.InvalidDocuments > 0 {
		sb.WriteString(fmt.Sprintf("Invalid documents: %d\n", s.InvalidDocuments))
	}
	sb.WriteString(fmt.Sprintf("Lemmas: %d\n", s.Lemmas))
	sb.WriteString(fmt.Sprintf("Stages: clean=%v, lemmatize=%v, total=%v\n",
		s.CleanDuration.Round(time.Microsecond),
		s.LemmaDuration.Round(time.Microsecond),
		s.TotalDuration.Round(time.Microsecond)))
	return sb.String()
}

// Result holds one record per input document, in input order.
type Result struct {
	Records []Record `json:"records" yaml:"records"`
	Stats   *Stats   `json:"stats" yaml:"stats"`
}

// Cleaned returns the cleaned documents in input order.
func (r *Result) Cleaned() []string {
	out := make([]string, len(r.Records))
	for i, rec := range r.Records {
		out[i] = rec.Cleaned
	}
	return out
}

// Normalized returns the normalized documents in input order.
func (r *Result) Normalized() []string {
	out := make([]string, len(r.Records))
	for i, rec := range r.Records {
		out[i] = rec.Normalized
	}
	return out
}

// Errors returns the errors of all failed documents.
func (r *Result) Errors() []error {
	var errs []error
	for _, rec := range r.Records {
		if rec.err != nil {
			errs = append(errs, rec.err)
		}
	}
	return errs
}

// Err joins all document errors, or returns nil.
func (r *Result) Err() error {
	return errors.Join(r.Errors()...)
}

// Pipeline cleans and lemmatizes document collections.
// It holds no per-run state and is safe for concurrent use.
type Pipeline struct {
	config  Config
	markup  cleaner.Cleaner
	cleaner *review.Cleaner
	stage   *lemma.Stage
}

// New creates a pipeline. Configuration is validated and the lemmatizer
// loaded here, so Run never fails as a whole.
func New(opts ...Option) (*Pipeline, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid pipeline config: %w", err)
	}

	l := cfg.Lemmatizer
	if l == nil {
		var err error
		l, err = lemma.New(cfg.Backend)
		if err != nil {
			return nil, err
		}
	}

	p := &Pipeline{
		config:  cfg,
		markup:  cleaner.NewNoop(),
		cleaner: review.New(cfg.Cleaner),
		stage:   lemma.NewStage(l),
	}
	if cfg.StripMarkup {
		p.markup = cleaner.NewMarkup()
	}

	logger.Debug("pipeline initialized", "stages", p.Name())
	return p, nil
}

// Name describes the stages of the pipeline.
func (p *Pipeline) Name() string {
	return cleaner.NewChain(p.markup, p.cleaner, p.stage).Name()
}

// Config returns the pipeline configuration.
func (p *Pipeline) Config() Config {
	return p.config
}

// Run processes docs. The result has exactly one record per document.
func (p *Pipeline) Run(docs []string) *Result {
	values := make([]any, len(docs))
	for i, doc := range docs {
		values[i] = doc
	}
	return p.RunValues(values)
}

// RunValues processes values that should hold text. Elements that are not
// text are recorded with an *InvalidInputError and an empty placeholder;
// processing continues with the next element.
func (p *Pipeline) RunValues(values []any) *Result {
	start := time.Now()
	result := &Result{
		Records: make([]Record, len(values)),
		Stats:   &Stats{Cleaning: review.NewStats()},
	}

	for i, v := range values {
		result.Records[i] = p.process(i, v, result.Stats)
	}

	result.Stats.TotalDuration = time.Since(start)
	logger.Debug("pipeline run complete",
		"documents", len(values),
		"invalid", result.Stats.InvalidDocuments,
		"empty", result.Stats.Cleaning.EmptyDocuments,
		"duration", result.Stats.TotalDuration)

	return result
}

func (p *Pipeline) process(index int, v any, stats *Stats) Record {
	rec := Record{Index: index}

	raw, err := p.text(v)
	if err != nil {
		var invalid *InvalidInputError
		if errors.As(err, &invalid) {
			err = invalid.AtIndex(index)
		}
		return p.fail(rec, err, stats)
	}
	rec.Raw = raw

	cleanStart := time.Now()
	stripped, err := p.markup.Clean(raw)
	if err != nil {
		return p.fail(rec, fmt.Errorf("document %d: %w", index, err), stats)
	}
	cleaned := p.cleaner.CleanWithStats(stripped)
	stats.Cleaning.Add(cleaned.Stats)
	stats.CleanDuration += time.Since(cleanStart)
	rec.Cleaned = cleaned.Content

	lemmaStart := time.Now()
	lemmas := p.stage.Lemmas(rec.Cleaned)
	stats.LemmaDuration += time.Since(lemmaStart)
	stats.Lemmas += len(lemmas)
	rec.Normalized = strings.Join(lemmas, " ")

	return rec
}

func (p *Pipeline) fail(rec Record, err error, stats *Stats) Record {
	rec.err = err
	rec.Error = err.Error()
	stats.InvalidDocuments++
	stats.Cleaning.Documents++
	stats.Cleaning.EmptyDocuments++
	logger.Warn("document skipped", "index", rec.Index, "error", err)
	return rec
}

// text extracts the document text from v, delegating type checks to the
// review cleaner so both share one definition of valid input.
func (p *Pipeline) text(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	}
	_, err := p.cleaner.CleanValue(v)
	return "", err
}

// Clean runs only the cleaning stage with the default configuration.
func Clean(docs []string) []string {
	return review.New(nil).CleanAll(docs)
}

// Lemmatize runs only the tokenize-and-lemmatize stage with the dictionary
// lemmatizer.
func Lemmatize(docs []string) ([]string, error) {
	d, err := lemma.NewDictionary()
	if err != nil {
		return nil, err
	}
	return lemma.NewStage(d).LemmatizeAll(docs), nil
}
