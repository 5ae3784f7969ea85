// Package errors holds the sentinel errors of the natural ordering packages and
// a small helper for accumulating failures.
package errors

import "errors"

// Negative-match signals of the tokenizer's classification cascade. They are
// returned by the internal classifiers so the next rule can be tried, and are
// never surfaced by the public comparison functions.
var (
	// ErrNotANumber means a word or run does not parse under the active numeric mode.
	ErrNotANumber = errors.New("not a number")

	// ErrNotASize means a word or two-word phrase is absent from the size table.
	ErrNotASize = errors.New("not a size")
)

// ErrNoInput is returned when a caller has nothing to read from.
var ErrNoInput = errors.New("no input")

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Len reports how many errors have been collected.
func (c *Collection) Len() int {
	return len(c.errors)
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
