// Package formatter re-indents scripts from their structure.
package formatter

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/core/base/indent"

	"github.com/SkEditorPlus/skparse/parser"
)

// Options controls the indentation written by the formatters.
type Options struct {
	Style indent.Character
	Width int
}

// DefaultOptions indents with four spaces.
var DefaultOptions = Options{Style: indent.Space, Width: 4}

// OptionsFor maps a configured indent style ("spaces" or "tabs") to Options.
func OptionsFor(style string, width int) Options {
	options := Options{Style: indent.Space, Width: width}
	if style == "tabs" {
		options.Style = indent.Tab
	}

	return options
}

// ScriptFormatter rewrites the indentation of every line from its structural
// depth, so mixed tabs and spaces become uniform.
type ScriptFormatter struct {
	options Options
}

// NewScriptFormatter creates a new script formatter
func NewScriptFormatter(options Options) *ScriptFormatter {
	if options.Width <= 0 {
		options.Width = DefaultOptions.Width
	}

	return &ScriptFormatter{options: options}
}

// Format formats a script. Blank lines are kept empty and comments take the
// depth of the next node below them.
func (f *ScriptFormatter) Format(script string) string {
	lines := parser.SplitLines(script)
	return strings.Join(f.FormatLines(lines), "\n")
}

// FormatLines formats a script given as lines.
func (f *ScriptFormatter) FormatLines(lines []string) []string {
	tree := parser.ParseTree(lines)

	depths := make(map[int]int, tree.Len())
	for n := range tree.All() {
		depths[n.Line] = n.Indent
	}

	result := make([]string, len(lines))
	pending := []int{}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		depth, isNode := depths[i+1]

		switch {
		case trimmed == "":
			result[i] = ""
		case !isNode:
			// comments wait for the next node
			pending = append(pending, i)
		default:
			for _, p := range pending {
				result[p] = f.indent(depth) + strings.TrimSpace(lines[p])
			}

			pending = pending[:0]
			result[i] = f.indent(depth) + trimmed
		}
	}

	for _, p := range pending {
		result[p] = strings.TrimSpace(lines[p])
	}

	return result
}

// FormatFromReader formats a script from a reader and writes to a writer
func (f *ScriptFormatter) FormatFromReader(reader io.Reader, writer io.Writer) error {
	input, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	_, err = io.WriteString(writer, f.Format(string(input)))

	return err
}

func (f *ScriptFormatter) indent(depth int) string {
	return indent.String(f.options.Style, depth, f.options.Width)
}
