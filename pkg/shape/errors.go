package shape

import (
	"errors"
	"fmt"
	"strings"
)

// Standard parse errors. A *ParseError matches the sentinel of its type
// with errors.Is.
var (
	ErrNotAnObject   = errors.New("document is not a JSON object")
	ErrShapeMismatch = errors.New("value has none of the expected shapes")
	ErrMalformedJSON = errors.New("invalid JSON format")
	ErrEmptyInput    = errors.New("input is empty or contains only whitespace")
)

// ErrorType categorizes parse errors
type ErrorType string

const (
	ErrorTypeNotAnObject   ErrorType = "not-an-object"
	ErrorTypeShapeMismatch ErrorType = "shape-mismatch"
	ErrorTypeMalformedJSON ErrorType = "malformed-json"
)

// ParseError is the only error a document parse returns
type ParseError struct {
	Type ErrorType
	// Path is the field the error is localized to; empty for document level errors.
	Path Path
	// Expected lists the accepted kinds in the order they are tried.
	Expected []Kind
	Actual   Kind
	Err      error
}

// Error implements error interface
func (e *ParseError) Error() string {
	switch e.Type {
	case ErrorTypeShapeMismatch:
		msg := fmt.Sprintf("%s: %s: expected %s, got %s", e.Type, e.Path, JoinKinds(e.Expected), e.Actual)
		if e.Err != nil {
			msg += ": " + e.Err.Error()
		}
		return msg
	case ErrorTypeNotAnObject:
		return fmt.Sprintf("%s: top-level value is %s", e.Type, e.Actual)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Type, e.Err)
	}
	return string(e.Type)
}

// Unwrap returns wrapped error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrNotAnObject:
		return e.Type == ErrorTypeNotAnObject
	case ErrShapeMismatch:
		return e.Type == ErrorTypeShapeMismatch
	case ErrMalformedJSON:
		return e.Type == ErrorTypeMalformedJSON
	}
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewNotAnObject creates the error for a document whose root is not an object
func NewNotAnObject(actual Kind) *ParseError {
	return &ParseError{
		Type:   ErrorTypeNotAnObject,
		Actual: actual,
	}
}

// NewShapeMismatch creates the error for a field whose kind matches none of
// the expected kinds
func NewShapeMismatch(path Path, actual Kind, expected ...Kind) *ParseError {
	return &ParseError{
		Type:     ErrorTypeShapeMismatch,
		Path:     path,
		Expected: expected,
		Actual:   actual,
	}
}

// NewMalformedJSON wraps an error from the JSON tokenizer
func NewMalformedJSON(err error) *ParseError {
	return &ParseError{
		Type: ErrorTypeMalformedJSON,
		Err:  err,
	}
}

// JoinKinds lists kinds for messages, e.g. "string, number or object"
func JoinKinds(kinds []Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	switch len(names) {
	case 0:
		return "nothing"
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
