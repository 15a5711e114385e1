package parserstep2

import (
	cmn "github.com/SkEditorPlus/skparse/parser/parsercommon"
	"github.com/SkEditorPlus/skparse/parser/parserstep1"
)

type frame struct {
	node   *cmn.Node
	indent int
}

// Execute builds the node hierarchy from classified lines using an
// indentation stack. Only sections are pushed, so a line indented under a
// simple or effect line still belongs to the closest open section.
//
// Depths and parent links are left unset; parserstep3 fills them.
func Execute(lines []parserstep1.Line) *cmn.Tree {
	tree := cmn.NewTree()
	stack := make([]frame, 0, 8)

	for _, line := range lines {
		node := tree.NewNode(line.Kind, line.Number, line.Key, line.Value)

		for len(stack) > 0 && stack[len(stack)-1].indent >= line.Indent {
			stack = stack[:len(stack)-1]
		}

		if len(stack) > 0 {
			stack[len(stack)-1].node.AppendChild(node)
		} else {
			tree.AppendRoot(node)
		}

		if node.IsSection() {
			stack = append(stack, frame{node: node, indent: line.Indent})
		}
	}

	return tree
}
