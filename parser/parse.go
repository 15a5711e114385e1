package parser

import (
	"context"
	"log/slog"
	"strings"

	cmn "github.com/SkEditorPlus/skparse/parser/parsercommon"
	"github.com/SkEditorPlus/skparse/parser/parserstep1"
	"github.com/SkEditorPlus/skparse/parser/parserstep2"
	"github.com/SkEditorPlus/skparse/parser/parserstep3"
)

// Re-export common types for user convenience
type (
	Node           = cmn.Node
	Tree           = cmn.Tree
	Element        = cmn.Element
	Recognizer     = cmn.Recognizer
	ParsingContext = cmn.ParsingContext
	Diagnostic     = cmn.Diagnostic
	ParsingError   = cmn.ParsingError
)

// Parse builds the node trees of a script and returns the top-level nodes.
// Lines are 1-indexed in the result.
func Parse(lines []string) []*cmn.Node {
	return ParseTree(lines).Roots()
}

// ParseTree is Parse, returning the owning tree.
func ParseTree(lines []string) *cmn.Tree {
	return ParseWithOptions(lines, DefaultOptions)
}

// ParseWithOptions builds the tree through the three parser steps:
//
//   - step1: line classification (blank and comment lines are dropped)
//   - step2: indentation-stack nesting
//   - step3: structural depths and parent links
func ParseWithOptions(lines []string, opts Options) *cmn.Tree {
	classified := make([]parserstep1.Line, 0, len(lines))

	for i, text := range lines {
		text = strings.TrimRight(text, "\r\n")

		line, ok, err := parserstep1.Classify(text, i+1)
		if err != nil {
			// unsplit text still becomes a node rather than vanishing
			line, ok = parserstep1.EffectLine(text, i+1), true
		}

		if !ok {
			continue
		}

		classified = append(classified, line)
	}

	tree := parserstep2.Execute(classified)
	parserstep3.Execute(tree)

	if opts.Logger != nil && opts.Logger.Enabled(context.Background(), slog.LevelDebug) {
		var sb strings.Builder

		_ = tree.Dump(&sb)
		opts.Logger.Debug("Parsed nodes", "count", tree.Len(), "tree", sb.String())
	}

	return tree
}

// SplitLines splits script text on "\n", "\r\n" or "\r".
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	return strings.Split(text, "\n")
}
