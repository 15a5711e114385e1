package elements

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	cmn "github.com/SkEditorPlus/skparse/parser/parsercommon"
)

func TestOptions(t *testing.T) {
	tree, ctx := resolve(t, `
		options:
			prefix: &7[Server]
			color: &a
			prefix: &c[Dup]
			nested:
				x: y
	`)

	root := tree.Roots()[0]
	options, ok := root.Element.(*Options)
	require.True(t, ok)

	assert.Equal(t, 3, len(options.Entries))

	value, ok := options.Lookup("prefix")
	assert.True(t, ok)
	assert.Equal(t, "&c[Dup]", value)

	_, ok = options.Lookup("missing")
	assert.False(t, ok)

	first := root.Children()[0].Element.(*OptionEntry)
	assert.Equal(t, "{@prefix}", first.Reference())
	assert.Equal(t, options, first.Options)

	assert.Equal(t, []string{"option_already_exists"}, codes(ctx.DiagnosticsFor(root.Children()[2])))
	assert.Equal(t, []string{"unknown_element"}, codes(ctx.DiagnosticsFor(root.Children()[3])))
	assert.Equal(t, cmn.IconOptions, root.IconSource())
}

func TestLocalizedLabels(t *testing.T) {
	tree, _ := resolve(t, `
		options:
			a: b
		command /x:
			stop
		function f():
			stop
		on join:
			stop
	`, cmn.WithLanguage(language.French))

	var labels []string
	for _, root := range tree.Roots() {
		labels = append(labels, root.DisplayString())
	}

	assert.Equal(t, []string{"Options", "Commandes", "Fonctions", "Événements"}, labels)
	assert.Equal(t, "Commands", Label(language.English, labelCommands))
}
