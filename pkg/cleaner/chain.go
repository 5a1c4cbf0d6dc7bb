package cleaner

import (
	"fmt"
	"strings"
)

// ChainCleaner applies multiple cleaners in sequence.
type ChainCleaner struct {
	cleaners []Cleaner
}

// NewChain creates a cleaner that applies cleaners in the order provided.
//
// Example:
//
//	chain := cleaner.NewChain(
//	    cleaner.NewMarkup(),
//	    review.New(review.DefaultConfig()),
//	)
func NewChain(cleaners ...Cleaner) *ChainCleaner {
	return &ChainCleaner{
		cleaners: cleaners,
	}
}

// Clean applies all cleaners in sequence. The first failing stage stops the
// chain and its error is returned wrapped with the stage name.
func (c *ChainCleaner) Clean(content string) (string, error) {
	var err error
	for _, cleaner := range c.cleaners {
		content, err = cleaner.Clean(content)
		if err != nil {
			return "", fmt.Errorf("%s: %w", cleaner.Name(), err)
		}
	}
	return content, nil
}

// Len returns the number of chained cleaners.
func (c *ChainCleaner) Len() int {
	return len(c.cleaners)
}

// Name returns the names of all chained cleaners.
func (c *ChainCleaner) Name() string {
	names := make([]string, len(c.cleaners))
	for i, cleaner := range c.cleaners {
		names[i] = cleaner.Name()
	}
	return "chain(" + strings.Join(names, "->") + ")"
}
