// Package cleaner provides the text-stage interface shared by the review
// cleaner and the lemmatizer, plus small stages for composing them.
package cleaner

// Cleaner transforms one document into another.
// Implementations are pure: the same input always gives the same output.
type Cleaner interface {
	// Clean transforms a single document.
	Clean(text string) (string, error)

	// Name returns the stage name for logging/debugging.
	Name() string
}

// Func adapts a plain string function into a Cleaner.
type Func struct {
	name string
	fn   func(string) string
}

// NewFunc wraps fn as a Cleaner named name.
func NewFunc(name string, fn func(string) string) *Func {
	return &Func{name: name, fn: fn}
}

// Clean applies the wrapped function.
func (f *Func) Clean(text string) (string, error) {
	return f.fn(text), nil
}

// Name returns the configured name.
func (f *Func) Name() string {
	return f.name
}
