package parsercommon

import (
	"context"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// ParsingContext is the state of one resolution pass. It must not be shared
// between passes or goroutines.
type ParsingContext struct {
	id          string
	logger      *slog.Logger
	language    language.Tag
	recognizers []Recognizer

	current  *Node
	resolved []*Node

	diagnostics []Diagnostic
	byNode      map[*Node][]int
}

// ContextOption configures a ParsingContext.
type ContextOption func(*ParsingContext)

// WithLogger sets the logger used for engine failures.
func WithLogger(logger *slog.Logger) ContextOption {
	return func(c *ParsingContext) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLanguage sets the language elements use for their display strings.
func WithLanguage(tag language.Tag) ContextOption {
	return func(c *ParsingContext) {
		c.language = tag
	}
}

// NewParsingContext creates a context over a snapshot of recognizers, already
// in the order they must be offered nodes.
func NewParsingContext(recognizers []Recognizer, opts ...ContextOption) *ParsingContext {
	c := &ParsingContext{
		id:          uuid.NewString(),
		logger:      slog.Default(),
		language:    language.English,
		recognizers: slices.Clone(recognizers),
		byNode:      make(map[*Node][]int),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.logger.With("run", c.id)

	return c
}

// ID is the unique id of this pass, used to correlate log records.
func (c *ParsingContext) ID() string { return c.id }

func (c *ParsingContext) Logger() *slog.Logger { return c.logger }

func (c *ParsingContext) Language() language.Tag { return c.language }

func (c *ParsingContext) Recognizers() []Recognizer { return c.recognizers }

// CurrentNode is the node whose element is currently loading.
func (c *ParsingContext) CurrentNode() *Node { return c.current }

// SetCurrentNode moves the cursor and returns the previous node.
func (c *ParsingContext) SetCurrentNode(node *Node) *Node {
	previous := c.current
	c.current = node

	return previous
}

// Attach sets the node's element and records the node as resolved.
func (c *ParsingContext) Attach(node *Node, element Element) {
	node.Element = element
	c.resolved = append(c.resolved, node)
}

// ResolvedNodes returns the nodes that resolved, in resolution order. A node
// appears once per successful load, so an overwritten node appears twice.
func (c *ParsingContext) ResolvedNodes() []*Node {
	return slices.Clone(c.resolved)
}

// Warning records a WARNING diagnostic on node.
func (c *ParsingContext) Warning(node *Node, warning ParserWarning, args ...any) {
	c.add(Diagnostic{
		Node:     node,
		Line:     node.Line,
		Severity: WARNING,
		Warning:  warning,
		Message:  warning.Format(args...),
	})
}

// Error records an expected recognizer failure.
func (c *ParsingContext) Error(node *Node, element string, err error) {
	c.add(Diagnostic{
		Node:     node,
		Line:     node.Line,
		Severity: ERROR,
		Warning:  ParsingFailed,
		Message:  ParsingFailed.Format(err.Error()),
		Element:  element,
	})
	c.logger.Error("An error occurred while parsing node",
		"key", node.Key, "line", node.Line, "element", element, "error", err)
}

// Fatal records an unexpected recognizer failure.
func (c *ParsingContext) Fatal(node *Node, element string, err error) {
	c.add(Diagnostic{
		Node:     node,
		Line:     node.Line,
		Severity: FATAL,
		Warning:  InternalError,
		Message:  InternalError.Format(element, err.Error()),
		Element:  element,
	})
	c.logger.LogAttrs(context.Background(), slog.LevelError, "An unexpected error occurred while parsing node",
		slog.String("severity", FATAL.String()),
		slog.String("key", node.Key),
		slog.Int("line", node.Line),
		slog.String("element", element),
		slog.Any("error", err))
}

func (c *ParsingContext) add(d Diagnostic) {
	c.byNode[d.Node] = append(c.byNode[d.Node], len(c.diagnostics))
	c.diagnostics = append(c.diagnostics, d)
}

// Diagnostics returns every diagnostic in the order it was recorded.
func (c *ParsingContext) Diagnostics() []Diagnostic {
	return slices.Clone(c.diagnostics)
}

// DiagnosticsFor returns the diagnostics attached to node.
func (c *ParsingContext) DiagnosticsFor(node *Node) []Diagnostic {
	indexes := c.byNode[node]
	result := make([]Diagnostic, 0, len(indexes))

	for _, i := range indexes {
		result = append(result, c.diagnostics[i])
	}

	return result
}

// HasSeverity reports whether any diagnostic is at least as severe as s.
func (c *ParsingContext) HasSeverity(s Severity) bool {
	for _, d := range c.diagnostics {
		if d.Severity >= s {
			return true
		}
	}

	return false
}
