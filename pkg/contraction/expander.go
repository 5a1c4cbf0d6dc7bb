package contraction

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Expander replaces contracted forms in lowercase text with their expansions.
// It is safe for concurrent use.
type Expander struct {
	table   Table
	pattern *regexp.Regexp
}

// NewExpander compiles a single alternation over all forms in table.
// Longer forms are listed first so "can't've" is never cut short at "can't".
func NewExpander(table Table) *Expander {
	e := &Expander{table: table}
	if table.Len() == 0 {
		return e
	}

	keys := table.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		return len(keys[i]) > len(keys[j])
	})
	for i, k := range keys {
		keys[i] = regexp.QuoteMeta(k)
	}
	e.pattern = regexp.MustCompile("(" + strings.Join(keys, "|") + ")")
	return e
}

// Expand replaces every occurrence of a known form in a single left-to-right
// pass. Text without matches is returned unchanged.
func (e *Expander) Expand(text string) string {
	if e.pattern == nil || text == "" {
		return text
	}
	return e.pattern.ReplaceAllStringFunc(text, func(match string) string {
		if expansion, ok := e.table.Lookup(match); ok {
			return expansion
		}
		return match
	})
}

// Count returns how many contractions Expand would replace in text.
func (e *Expander) Count(text string) int {
	if e.pattern == nil || text == "" {
		return 0
	}
	return len(e.pattern.FindAllStringIndex(text, -1))
}

// Table returns the table backing the expander.
func (e *Expander) Table() Table {
	return e.table
}

var (
	defaultTable    Table
	defaultExpander *Expander
	initOnce        sync.Once
)

func initDefault() {
	initOnce.Do(func() {
		defaultTable = NewTable(englishEntries)
		defaultExpander = NewExpander(defaultTable)
	})
}

// Default returns the shared English contraction table.
func Default() Table {
	initDefault()
	return defaultTable
}

// DefaultExpander returns the shared expander over Default().
func DefaultExpander() *Expander {
	initDefault()
	return defaultExpander
}

// Expand expands contractions in text using the default English table.
func Expand(text string) string {
	return DefaultExpander().Expand(text)
}
