// Package outline exports resolved trees as Language Server Protocol data:
// folding ranges, document symbols and diagnostics.
package outline

import (
	"go.lsp.dev/protocol"

	cmn "github.com/SkEditorPlus/skparse/parser/parsercommon"
)

// Source is the diagnostic source reported to editors.
const Source = "skparse"

// Outline is the editor view of one parsed document.
type Outline struct {
	FoldingRanges []protocol.FoldingRange   `json:"foldingRanges"`
	Symbols       []protocol.DocumentSymbol `json:"symbols"`
	Diagnostics   []protocol.Diagnostic     `json:"diagnostics"`
}

// New builds the outline of tree. lineOffset is added to every node line,
// so trees of embedded blocks report host document lines. Diagnostic lines
// are taken as they are.
func New(tree *cmn.Tree, diagnostics []cmn.Diagnostic, lineOffset int) Outline {
	return Outline{
		FoldingRanges: FoldingRanges(tree, lineOffset),
		Symbols:       Symbols(tree, lineOffset),
		Diagnostics:   Diagnostics(diagnostics),
	}
}

// FoldingRanges returns one region per section with children, from its
// header line to the line of its deepest last descendant.
func FoldingRanges(tree *cmn.Tree, lineOffset int) []protocol.FoldingRange {
	ranges := []protocol.FoldingRange{}

	for node := range tree.All() {
		if !node.IsSection() || node.ChildCount() == 0 {
			continue
		}

		ranges = append(ranges, protocol.FoldingRange{
			StartLine: position(node.Line, lineOffset),
			EndLine:   position(node.FindLastNode().Line, lineOffset),
			Kind:      protocol.RegionFoldingRange,
		})
	}

	return ranges
}

// Symbols returns a symbol per top-level node whose element has an icon.
// Resolved descendants become nested symbols.
func Symbols(tree *cmn.Tree, lineOffset int) []protocol.DocumentSymbol {
	symbols := []protocol.DocumentSymbol{}

	for _, root := range tree.Roots() {
		if root.Element == nil || root.IconSource() == cmn.IconNone {
			continue
		}

		symbols = append(symbols, symbol(root, lineOffset))
	}

	return symbols
}

func symbol(node *cmn.Node, lineOffset int) protocol.DocumentSymbol {
	name, ok := node.SectionDisplay()
	if !ok || name == "" {
		name = node.Key
	}

	start := protocol.Position{Line: position(node.Line, lineOffset)}

	s := protocol.DocumentSymbol{
		Name:   name,
		Detail: node.DisplayString(),
		Kind:   kind(node),
		Range: protocol.Range{
			Start: start,
			End:   protocol.Position{Line: position(node.FindLastNode().Line, lineOffset) + 1},
		},
		SelectionRange: protocol.Range{
			Start: start,
			End:   protocol.Position{Line: start.Line + 1},
		},
	}

	for _, child := range node.Children() {
		if child.Element == nil {
			continue
		}

		s.Children = append(s.Children, symbol(child, lineOffset))
	}

	return s
}

func kind(node *cmn.Node) protocol.SymbolKind {
	switch node.IconSource() {
	case cmn.IconCode:
		return protocol.SymbolKindMethod
	case cmn.IconFunction:
		return protocol.SymbolKindFunction
	case cmn.IconEvent:
		return protocol.SymbolKindEvent
	case cmn.IconOptions:
		return protocol.SymbolKindNamespace
	}

	if node.IsSimple() {
		return protocol.SymbolKindKey
	}

	return protocol.SymbolKindObject
}

// Diagnostics converts parser diagnostics. Each one covers its whole line.
func Diagnostics(diagnostics []cmn.Diagnostic) []protocol.Diagnostic {
	result := make([]protocol.Diagnostic, 0, len(diagnostics))

	for _, d := range diagnostics {
		line := position(d.Line, 0)

		result = append(result, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line},
				End:   protocol.Position{Line: line + 1},
			},
			Severity: severity(d.Severity),
			Code:     d.Warning.Code,
			Source:   Source,
			Message:  d.Message,
		})
	}

	return result
}

func severity(s cmn.Severity) protocol.DiagnosticSeverity {
	switch s {
	case cmn.WARNING:
		return protocol.DiagnosticSeverityWarning
	default:
		return protocol.DiagnosticSeverityError
	}
}

// position converts a 1-based line to a 0-based LSP line.
func position(line, offset int) uint32 {
	if line+offset < 1 {
		return 0
	}

	return uint32(line + offset - 1)
}
