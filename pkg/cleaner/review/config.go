// Package review cleans raw user-written reviews into lowercase alphabetic
// token strings: contractions expanded, markup, URLs and punctuation removed,
// stopwords and short tokens dropped.
package review

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = validator.New()

// Config defines the options of the review cleaner.
type Config struct {
	// MinTokenLength is the shortest token kept after cleaning, in runes.
	// Default: 3 (tokens of length <= 2 are dropped).
	MinTokenLength int `json:"min_token_length" yaml:"min_token_length" mapstructure:"min_token_length" validate:"min=1,max=64"`

	// ExtraStopwords are removed in addition to the English list.
	ExtraStopwords []string `json:"extra_stopwords" yaml:"extra_stopwords" mapstructure:"extra_stopwords" validate:"dive,required"`

	// KeepStopwords are taken out of the English list (e.g. "not" for
	// sentiment work).
	KeepStopwords []string `json:"keep_stopwords" yaml:"keep_stopwords" mapstructure:"keep_stopwords" validate:"dive,required"`

	// SkipStopwords disables stopword removal entirely.
	SkipStopwords bool `json:"skip_stopwords" yaml:"skip_stopwords" mapstructure:"skip_stopwords"`

	// SkipContractions disables contraction expansion.
	SkipContractions bool `json:"skip_contractions" yaml:"skip_contractions" mapstructure:"skip_contractions"`

	// KeepURLs leaves http runs in place; they are still broken up by the
	// non-letter pass.
	KeepURLs bool `json:"keep_urls" yaml:"keep_urls" mapstructure:"keep_urls"`
}

// DefaultConfig returns the standard review cleaning configuration.
func DefaultConfig() *Config {
	return &Config{
		MinTokenLength: 3,
	}
}

// PresetMinimal only strips noise: every token is kept and no stopwords are
// removed.
func PresetMinimal() *Config {
	return &Config{
		MinTokenLength: 1,
		SkipStopwords:  true,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid review config: %w", err)
	}
	return nil
}

// Merge merges another config into this one.
// Non-zero values from other override this config; word lists are appended
// without duplicates.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	merged := *c
	merged.ExtraStopwords = appendUnique(append([]string(nil), c.ExtraStopwords...), other.ExtraStopwords)
	merged.KeepStopwords = appendUnique(append([]string(nil), c.KeepStopwords...), other.KeepStopwords)

	if other.MinTokenLength > 0 {
		merged.MinTokenLength = other.MinTokenLength
	}
	if other.SkipStopwords {
		merged.SkipStopwords = true
	}
	if other.SkipContractions {
		merged.SkipContractions = true
	}
	if other.KeepURLs {
		merged.KeepURLs = true
	}

	return &merged
}

func appendUnique(dst, src []string) []string {
	seen := make(map[string]bool, len(dst))
	for _, s := range dst {
		seen[s] = true
	}
	for _, s := range src {
		if !seen[s] {
			dst = append(dst, s)
			seen[s] = true
		}
	}
	return dst
}
