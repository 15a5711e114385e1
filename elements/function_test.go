package elements

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/stretchr/testify/require"

	cmn "github.com/SkEditorPlus/skparse/parser/parsercommon"
)

func TestFunctionHeader(t *testing.T) {
	tree, ctx := resolve(t, `
		function greet(p: player, times: integer = 1) :: text:
			return "hi"
		function reset():
			stop
	`)

	greet, ok := tree.Roots()[0].Element.(*Function)
	require.True(t, ok)
	assert.Equal(t, "greet", greet.Name)
	assert.Equal(t, "text", greet.ReturnType)
	assert.Equal(t, []Parameter{
		{Name: "p", Type: "player"},
		{Name: "times", Type: "integer", Default: "1"},
	}, greet.Parameters)
	assert.Equal(t, "greet(p: player, times: integer = 1) :: text", greet.Signature())

	reset, ok := tree.Roots()[1].Element.(*Function)
	require.True(t, ok)
	assert.Equal(t, 0, len(reset.Parameters))
	assert.Equal(t, "reset()", reset.Signature())

	label, _ := tree.Roots()[0].SectionDisplay()
	assert.Equal(t, "Function 'greet'", label)
	assert.Equal(t, cmn.IconFunction, tree.Roots()[0].IconSource())
	assert.Equal(t, 0, len(ctx.Diagnostics()))
}

func TestMalformedFunctionHeaderIsAnError(t *testing.T) {
	tree, ctx := resolve(t, `
		function broken:
			stop
		function bad(p player):
			stop
	`)

	for _, root := range tree.Roots() {
		assert.Zero(t, root.Element)

		diagnostics := ctx.DiagnosticsFor(root)
		require.Equal(t, 1, len(diagnostics))
		assert.Equal(t, cmn.ERROR, diagnostics[0].Severity)
		assert.Equal(t, "Function", diagnostics[0].Element)
	}

	assert.Equal(t, "Error at line 3: invalid parameter 'p player' in function 'bad'", ctx.DiagnosticsFor(tree.Roots()[1])[0].Message)
}

func TestDuplicateFunctions(t *testing.T) {
	tree, ctx := resolve(t, `
		function a():
			stop
		function A(x: number):
			stop
	`)

	assert.Equal(t, []string{"function_already_exists"}, codes(ctx.DiagnosticsFor(tree.Roots()[1])))
	_, ok := tree.Roots()[1].Element.(*Function)
	assert.True(t, ok)
}

func TestHasWordPrefix(t *testing.T) {
	assert.True(t, hasWordPrefix("function a()", "function"))
	assert.True(t, hasWordPrefix("On join", "on"))
	assert.True(t, hasWordPrefix("on", "on"))
	assert.False(t, hasWordPrefix("online", "on"))
	assert.False(t, hasWordPrefix("o", "on"))
}
