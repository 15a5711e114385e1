package skparse

import "errors"

// Common errors used throughout the skparse package
var (
	// ErrUnsupportedFile is returned when a file is neither a script nor a Markdown document.
	ErrUnsupportedFile = errors.New("unsupported file type")
	// ErrReadFile wraps failures to read an input file.
	ErrReadFile = errors.New("failed to read file")
)
