package review

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every *InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a document that is not text.
// Use errors.As to check for this error type.
type InvalidInputError struct {
	// Index is the position of the document in its batch, or -1.
	Index int

	// Value is the rejected value.
	Value any

	// Reason describes the problem ("missing value", "expected text").
	Reason string
}

// Error implements error.
func (e *InvalidInputError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid input at index %d: %s (got %T)", e.Index, e.Reason, e.Value)
	}
	return fmt.Sprintf("invalid input: %s (got %T)", e.Reason, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidInput.
func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// AtIndex returns a copy of e positioned at index.
func (e *InvalidInputError) AtIndex(index int) *InvalidInputError {
	out := *e
	out.Index = index
	return &out
}
