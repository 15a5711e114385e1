package parsercommon

import (
	"io"
	"iter"
)

// Tree is the arena owning every node of one parse.
type Tree struct {
	nodes []*Node
	roots []NodeID
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// NewNode allocates a detached node in the arena.
func (t *Tree) NewNode(kind Kind, line int, key, value string) *Node {
	n := &Node{
		tree:   t,
		id:     NodeID(len(t.nodes)),
		kind:   kind,
		Line:   line,
		Key:    key,
		Value:  value,
		Indent: UnsetIndent,
		parent: NoNode,
	}
	t.nodes = append(t.nodes, n)

	return n
}

// NewSimpleNode allocates a "key: value" node.
func (t *Tree) NewSimpleNode(key string, line int, value string) *Node {
	return t.NewNode(SimpleKind, line, key, value)
}

// NewSectionNode allocates a section node.
func (t *Tree) NewSectionNode(key string, line int) *Node {
	return t.NewNode(SectionKind, line, key, "")
}

// NewEffectNode allocates an effect node.
func (t *Tree) NewEffectNode(content string, line int) *Node {
	return t.NewNode(EffectKind, line, content, "")
}

// AppendRoot appends a node to the top-level sequence.
func (t *Tree) AppendRoot(n *Node) {
	t.roots = append(t.roots, n.id)
}

// Node returns the node with the id, or nil.
func (t *Tree) Node(id NodeID) *Node {
	if t == nil || id < 0 || int(id) >= len(t.nodes) {
		return nil
	}

	return t.nodes[id]
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int { return len(t.nodes) }

// Roots returns the top-level nodes in source order.
func (t *Tree) Roots() []*Node {
	roots := make([]*Node, 0, len(t.roots))
	for _, id := range t.roots {
		roots = append(roots, t.nodes[id])
	}

	return roots
}

// All iterates every node depth-first in pre-order.
func (t *Tree) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		var walk func(n *Node) bool

		walk = func(n *Node) bool {
			if !yield(n) {
				return false
			}

			for _, id := range n.children {
				if !walk(t.nodes[id]) {
					return false
				}
			}

			return true
		}

		for _, id := range t.roots {
			if !walk(t.nodes[id]) {
				return
			}
		}
	}
}

// Dump writes every top-level subtree.
func (t *Tree) Dump(w io.Writer) error {
	for _, root := range t.Roots() {
		if err := root.Dump(w, 0); err != nil {
			return err
		}
	}

	return nil
}
