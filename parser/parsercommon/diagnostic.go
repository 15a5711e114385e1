package parsercommon

import (
	"fmt"
	"strings"
)

// ParserWarning is a named diagnostic kind.
type ParserWarning struct {
	Code     string
	Template string
}

// NewParserWarning creates a warning kind. Template may hold fmt verbs.
func NewParserWarning(code, template string) ParserWarning {
	return ParserWarning{Code: code, Template: template}
}

// Format renders the template with args.
func (w ParserWarning) Format(args ...any) string {
	if len(args) == 0 {
		return w.Template
	}

	return fmt.Sprintf(w.Template, args...)
}

// Built-in warning kinds used by the engine itself.
var (
	UnknownElement = NewParserWarning("unknown_element", "Can't understand this element.")
	ParsingFailed  = NewParserWarning("parsing_failed", "%s")
	InternalError  = NewParserWarning("internal_error", "An internal error occurred with element '%s': %s")
)

// Severity represents diagnostic severity level
type Severity int

const (
	WARNING Severity = iota
	ERROR
	FATAL
)

func (s Severity) String() string {
	switch s {
	case WARNING:
		return "WARNING"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity converts a case-insensitive name to a Severity.
func ParseSeverity(name string) (Severity, bool) {
	switch strings.ToUpper(name) {
	case "WARNING":
		return WARNING, true
	case "ERROR":
		return ERROR, true
	case "FATAL":
		return FATAL, true
	default:
		return WARNING, false
	}
}

// Diagnostic is one warning attached to a node.
type Diagnostic struct {
	Node     *Node
	Line     int
	Severity Severity
	Warning  ParserWarning
	Message  string
	// Element names the recognizer that produced an ERROR or FATAL diagnostic.
	Element string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] line %d: %s (%s)", d.Severity, d.Line, d.Message, d.Warning.Code)
}
