package parserstep2

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	cmn "github.com/SkEditorPlus/skparse/parser/parsercommon"
	"github.com/SkEditorPlus/skparse/parser/parserstep1"
)

func classify(t *testing.T, lines ...string) []parserstep1.Line {
	t.Helper()

	result, err := parserstep1.Execute(lines)
	assert.NoError(t, err)

	return result
}

func keys(nodes []*cmn.Node) []string {
	result := make([]string, 0, len(nodes))
	for _, n := range nodes {
		result = append(result, n.Key)
	}

	return result
}

func TestSectionsOwnIndentedLines(t *testing.T) {
	tree := Execute(classify(t,
		"command /hello:",
		"    description: says hello",
		"    trigger:",
		`        send "hi"`,
		"on join:",
		"    broadcast \"joined\"",
	))

	roots := tree.Roots()
	assert.Equal(t, []string{"command /hello", "on join"}, keys(roots))
	assert.Equal(t, []string{"description", "trigger"}, keys(roots[0].Children()))
	assert.Equal(t, []string{`send "hi"`}, keys(roots[0].Children()[1].Children()))
	assert.Equal(t, []string{`broadcast "joined"`}, keys(roots[1].Children()))
}

func TestDedentReturnsToOuterSection(t *testing.T) {
	tree := Execute(classify(t,
		"a:",
		"  b:",
		"    c",
		"  d",
		"e",
	))

	roots := tree.Roots()
	assert.Equal(t, []string{"a", "e"}, keys(roots))
	assert.Equal(t, []string{"b", "d"}, keys(roots[0].Children()))
	assert.Equal(t, []string{"c"}, keys(roots[0].Children()[0].Children()))
}

func TestEqualIndentIsSibling(t *testing.T) {
	tree := Execute(classify(t,
		"a:",
		"b:",
	))

	assert.Equal(t, 2, len(tree.Roots()))
	assert.Equal(t, 0, tree.Roots()[0].ChildCount())
}

func TestNonSectionsDoNotOwnLines(t *testing.T) {
	tree := Execute(classify(t,
		"a:",
		"  stop",
		"      more",
	))

	a := tree.Roots()[0]
	assert.Equal(t, []string{"stop", "more"}, keys(a.Children()))
	assert.Equal(t, 0, a.Children()[0].ChildCount())
}

func TestStepLeavesDepthAndParentUnset(t *testing.T) {
	tree := Execute(classify(t, "a:", "  b"))

	b := tree.Roots()[0].Children()[0]
	assert.Equal(t, cmn.UnsetIndent, b.Indent)
	assert.Zero(t, b.Parent())
}

func TestEmptyInput(t *testing.T) {
	tree := Execute(nil)
	assert.Equal(t, 0, len(tree.Roots()))
	assert.Equal(t, 0, tree.Len())
}
