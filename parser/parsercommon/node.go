package parsercommon

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Kind is the variant of a Node.
type Kind int

const (
	// SimpleKind is a "key: value" line.
	SimpleKind Kind = iota
	// SectionKind is a "key:" line owning the lines indented below it.
	SectionKind
	// EffectKind is a bare statement line.
	EffectKind
)

func (k Kind) String() string {
	switch k {
	case SimpleKind:
		return "Simple"
	case SectionKind:
		return "Section"
	case EffectKind:
		return "Effect"
	default:
		return "Unknown"
	}
}

// NodeID indexes a node inside its Tree.
type NodeID int

// NoNode is the NodeID of an absent node (the parent of a top-level node).
const NoNode NodeID = -1

// UnsetIndent is the Indent of a node before the depth pass ran.
const UnsetIndent = -1

var valueSeparator = regexp.MustCompile(`\s*,\s*|\s+(and|or)\s+`)

// Node is one parsed line of script text.
//
// Nodes live in the arena of their Tree: children and parent are stored as
// NodeIDs, so the parent link is a back-index rather than an owning pointer.
type Node struct {
	tree *Tree
	id   NodeID
	kind Kind

	// Line is the 1-based source line number.
	Line int
	// Key is the text before the separating colon, or the whole statement for effects.
	Key string
	// Value is the text after the separating colon of a simple node.
	Value string
	// Indent is the structural depth. It is UnsetIndent until the tree is complete.
	Indent int
	// Element is the semantic annotation attached during resolution.
	Element Element

	parent   NodeID
	children []NodeID
}

func (n *Node) ID() NodeID  { return n.id }
func (n *Node) Kind() Kind  { return n.kind }
func (n *Node) Tree() *Tree { return n.tree }

func (n *Node) IsSimple() bool  { return n.kind == SimpleKind }
func (n *Node) IsSection() bool { return n.kind == SectionKind }
func (n *Node) IsEffect() bool  { return n.kind == EffectKind }

// IsTopLevel reports whether the node sits at structural depth 0.
func (n *Node) IsTopLevel() bool { return n.Indent == 0 }

// Effect returns the statement text of an effect node.
func (n *Node) Effect() string { return n.Key }

// Parent returns the containing section, or nil for top-level nodes and for
// nodes whose parent has not been wired yet.
func (n *Node) Parent() *Node {
	return n.tree.Node(n.parent)
}

// SetParent records the back-reference to the containing section.
func (n *Node) SetParent(parent *Node) {
	if parent == nil {
		n.parent = NoNode
		return
	}

	n.parent = parent.id
}

// AppendChild appends child to the section's child sequence. It does not touch
// the child's parent link; that is wired in a separate pass.
func (n *Node) AppendChild(child *Node) {
	n.children = append(n.children, child.id)
}

// Children returns the child nodes in source order.
func (n *Node) Children() []*Node {
	children := make([]*Node, 0, len(n.children))
	for _, id := range n.children {
		children = append(children, n.tree.Node(id))
	}

	return children
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the first child whose key equals key.
func (n *Node) Child(key string) *Node {
	for _, id := range n.children {
		if child := n.tree.Node(id); child.Key == key {
			return child
		}
	}

	return nil
}

// SimpleChild returns the first child with the key, if it is a simple node.
func (n *Node) SimpleChild(key string) *Node {
	if child := n.Child(key); child != nil && child.IsSimple() {
		return child
	}

	return nil
}

// SectionChild returns the first child with the key, if it is a section node.
func (n *Node) SectionChild(key string) *Node {
	if child := n.Child(key); child != nil && child.IsSection() {
		return child
	}

	return nil
}

// Values splits the value of a simple node on commas and on "and"/"or".
func (n *Node) Values() []string {
	return SplitValues(n.Value)
}

// SplitValues splits a list such as "a, b and c".
func SplitValues(value string) []string {
	return valueSeparator.Split(value, -1)
}

// siblings returns the sequence the node belongs to and its index in it.
func (n *Node) siblings() ([]NodeID, int) {
	seq := n.tree.roots
	if parent := n.Parent(); parent != nil {
		seq = parent.children
	}

	for i, id := range seq {
		if id == n.id {
			return seq, i
		}
	}

	return seq, -1
}

// PreviousSibling returns the sibling before this node, or nil for the first one.
func (n *Node) PreviousSibling() *Node {
	seq, index := n.siblings()
	if index <= 0 {
		return nil
	}

	return n.tree.Node(seq[index-1])
}

// NextSibling returns the sibling after this node. For the last child of a
// section it returns the section itself, not nil. The last top-level node has
// no parent, so nil is returned.
func (n *Node) NextSibling() *Node {
	seq, index := n.siblings()
	if index < 0 {
		return nil
	}

	if index == len(seq)-1 {
		return n.Parent()
	}

	return n.tree.Node(seq[index+1])
}

// StructureNode walks the parent links up to the top-most ancestor.
func (n *Node) StructureNode() *Node {
	current := n
	for parent := current.Parent(); parent != nil; parent = current.Parent() {
		current = parent
	}

	return current
}

// FindLastNode returns the deepest last descendant, or the node itself when it
// has no children.
func (n *Node) FindLastNode() *Node {
	if len(n.children) == 0 {
		return n
	}

	return n.tree.Node(n.children[len(n.children)-1]).FindLastNode()
}

// SectionDisplay returns the folding label of the attached element.
func (n *Node) SectionDisplay() (string, bool) {
	return SectionDisplayOf(n.Element)
}

// IconSource returns the sidebar category of the attached element.
func (n *Node) IconSource() Icon {
	return IconOf(n.Element)
}

// DisplayString returns the filter label of the attached element.
func (n *Node) DisplayString() string {
	return DisplayStringOf(n.Element)
}

func (n *Node) String() string {
	switch n.kind {
	case SimpleKind:
		return fmt.Sprintf("%s: %s [Simple, Line #%d]", n.Key, n.Value, n.Line)
	case SectionKind:
		return fmt.Sprintf("%s [Section, Line #%d]", n.Key, n.Line)
	default:
		return fmt.Sprintf("%s [Effect, Line #%d]", n.Key, n.Line)
	}
}

// Dump writes the subtree, two spaces per level.
func (n *Node) Dump(w io.Writer, level int) error {
	_, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", level), n)
	if err != nil {
		return err
	}

	for _, child := range n.Children() {
		if err := child.Dump(w, level+1); err != nil {
			return err
		}
	}

	return nil
}
