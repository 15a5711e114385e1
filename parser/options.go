package parser

import "log/slog"

// Options controls the tree builder.
type Options struct {
	// Logger receives a debug dump of every finished tree. Nil disables it.
	Logger *slog.Logger
}

// DefaultOptions builds trees silently.
var DefaultOptions = Options{}
