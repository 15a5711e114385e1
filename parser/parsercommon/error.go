package parsercommon

import (
	"errors"
	"fmt"
)

var (
	// ErrDeclined is returned by Load when the element inspected the node,
	// reported what it found and chose not to attach.
	ErrDeclined = errors.New("element declined the node")
	// ErrMissingCapability is recorded when a recognizer lacks a predicate or constructor.
	ErrMissingCapability = errors.New("recognizer is missing a capability")
	// ErrInstantiation is recorded when a recognizer constructor returns nil.
	ErrInstantiation = errors.New("recognizer could not be instantiated")
	// ErrRecognizerPanic wraps a recovered panic from a recognizer.
	ErrRecognizerPanic = errors.New("recognizer panicked")
)

// ParsingError is the expected, structured rejection of a node by a recognizer.
type ParsingError struct {
	Line    int
	Message string
}

// NewParsingError creates a ParsingError pointing at node.
func NewParsingError(node *Node, format string, args ...any) *ParsingError {
	line := -1
	if node != nil {
		line = node.Line
	}

	return &ParsingError{
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("Error at line %d: %s", e.Line, e.Message)
}

// AsParsingError extracts a ParsingError from an error chain.
func AsParsingError(err error) (*ParsingError, bool) {
	var perr *ParsingError
	if errors.As(err, &perr) {
		return perr, true
	}

	return nil, false
}
