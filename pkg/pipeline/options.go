// Package pipeline is the public API for normalizing review collections:
// raw documents are cleaned, then tokenized and lemmatized.
package pipeline

import (
	"github.com/jmylchreest/reviewnorm/pkg/cleaner/review"
	"github.com/jmylchreest/reviewnorm/pkg/lemma"
)

// Config holds all pipeline configuration.
type Config struct {
	// Cleaner configures the review cleaner.
	Cleaner *review.Config `validate:"required"`

	// Backend selects the lemmatizer when Lemmatizer is nil.
	Backend lemma.Backend `validate:"omitempty,oneof=dictionary stem none"`

	// Lemmatizer overrides Backend.
	Lemmatizer lemma.Lemmatizer `validate:"-"`

	// StripMarkup runs an HTML-to-text pass before cleaning.
	StripMarkup bool
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Cleaner: review.DefaultConfig(),
		Backend: lemma.BackendDictionary,
	}
}

// Option configures the pipeline.
type Option func(*Config)

// WithCleanerConfig sets the review cleaner configuration.
func WithCleanerConfig(cfg *review.Config) Option {
	return func(c *Config) {
		c.Cleaner = cfg
	}
}

// WithBackend selects the lemmatizer backend.
func WithBackend(b lemma.Backend) Option {
	return func(c *Config) {
		c.Backend = b
	}
}

// WithLemmatizer sets a custom lemmatizer, overriding the backend.
func WithLemmatizer(l lemma.Lemmatizer) Option {
	return func(c *Config) {
		c.Lemmatizer = l
	}
}

// WithMarkup enables or disables the HTML-to-text pass.
func WithMarkup(enabled bool) Option {
	return func(c *Config) {
		c.StripMarkup = enabled
	}
}
