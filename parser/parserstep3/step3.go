package parserstep3

import (
	cmn "github.com/SkEditorPlus/skparse/parser/parsercommon"
)

// Execute finalizes a tree built by parserstep2: every node gets its
// structural depth (roots are 0, children are parent+1), then every child is
// wired back to its parent.
func Execute(tree *cmn.Tree) {
	assignDepths(tree)
	wireParents(tree)
}

func assignDepths(tree *cmn.Tree) {
	var walk func(n *cmn.Node, depth int)

	walk = func(n *cmn.Node, depth int) {
		n.Indent = depth
		for _, child := range n.Children() {
			walk(child, depth+1)
		}
	}

	for _, root := range tree.Roots() {
		walk(root, 0)
	}
}

func wireParents(tree *cmn.Tree) {
	for n := range tree.All() {
		for _, child := range n.Children() {
			child.SetParent(n)
		}
	}
}
