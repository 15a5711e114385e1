package elements

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/SkEditorPlus/skparse/parser"
	cmn "github.com/SkEditorPlus/skparse/parser/parsercommon"
	"github.com/SkEditorPlus/skparse/registry"
	"github.com/SkEditorPlus/skparse/testhelper"
)

func resolve(t *testing.T, src string, opts ...cmn.ContextOption) (*cmn.Tree, *cmn.ParsingContext) {
	t.Helper()

	regs := registry.NewRegistries()
	Register(regs)

	tree := parser.ParseTree(testhelper.Lines(t, src))
	ctx := regs.NewParsingContext(append([]cmn.ContextOption{cmn.WithLanguage(language.English)}, opts...)...)
	parser.ResolveAll(tree, ctx)

	return tree, ctx
}

func codes(diagnostics []cmn.Diagnostic) []string {
	result := []string{}
	for _, d := range diagnostics {
		result = append(result, d.Warning.Code)
	}

	return result
}
