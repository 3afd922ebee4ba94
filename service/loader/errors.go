package loader

import (
	"errors"
	"fmt"
)

// Sentinel errors; use errors.Is to classify a failed Load.
var (
	// ErrNotFound is returned when the document does not exist or cannot be read.
	ErrNotFound = errors.New("document not found")

	// ErrMalformed is returned when the document is not well-formed JSON.
	ErrMalformed = errors.New("malformed JSON document")
)

// Kind classifies a load failure.
type Kind int

const (
	NotFound Kind = iota + 1
	Malformed
)

func (k Kind) sentinel() error {
	if k == NotFound {
		return ErrNotFound
	}
	return ErrMalformed
}

// Error describes a failed load. Line and Column are 1-based and only set
// for malformed documents whose failure position is known.
type Error struct {
	Kind   Kind
	URL    string
	Msg    string
	Line   int
	Column int
	Offset int64
	Err    error
}

// Diagnostic returns the parser message with its position, when known.
func (e *Error) Diagnostic() string {
	if e == nil {
		return ""
	}
	if e.Line == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s: line %d column %d (char %d)", e.Msg, e.Line, e.Column, e.Offset)
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Kind == NotFound {
		if e.Err != nil {
			return fmt.Sprintf("%v: %s: %v", ErrNotFound, e.URL, e.Err)
		}
		return fmt.Sprintf("%v: %s", ErrNotFound, e.URL)
	}
	if e.URL == "" {
		return fmt.Sprintf("%v: %s", ErrMalformed, e.Diagnostic())
	}
	return fmt.Sprintf("%v: %s: %s", ErrMalformed, e.URL, e.Diagnostic())
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.Err}
}
