package parsercommon

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"golang.org/x/text/language"
)

type labelled struct{}

func (labelled) Load(*Node, *ParsingContext) error { return nil }
func (labelled) SectionDisplay() (string, bool)    { return "Label", true }
func (labelled) IconSource() Icon                  { return IconEvent }
func (labelled) DisplayString() string             { return "Labels" }
func (labelled) Debug() string                     { return "labelled element" }

type plain struct{}

func (*plain) Load(*Node, *ParsingContext) error { return nil }

func TestContextDiagnostics(t *testing.T) {
	tree := NewTree()
	a := tree.NewSectionNode("command:", 1)
	b := tree.NewEffectNode("stop", 2)

	ctx := NewParsingContext(nil)
	ctx.Warning(a, UnknownElement)
	ctx.Error(b, "Broken", NewParsingError(b, "bad %s", "header"))
	ctx.Warning(a, NewParserWarning("custom", "value %d"), 3)
	ctx.Fatal(a, "Crashy", errors.New("boom"))

	all := ctx.Diagnostics()
	assert.Equal(t, 4, len(all))
	assert.Equal(t, "Can't understand this element.", all[0].Message)
	assert.Equal(t, ERROR, all[1].Severity)
	assert.Equal(t, "Error at line 2: bad header", all[1].Message)
	assert.Equal(t, "value 3", all[2].Message)
	assert.Equal(t, FATAL, all[3].Severity)
	assert.Equal(t, "An internal error occurred with element 'Crashy': boom", all[3].Message)

	forA := ctx.DiagnosticsFor(a)
	assert.Equal(t, 3, len(forA))
	assert.Equal(t, "custom", forA[1].Warning.Code)
	assert.Equal(t, 1, len(ctx.DiagnosticsFor(b)))

	assert.True(t, ctx.HasSeverity(FATAL))
}

func TestContextAttachRecordsOrder(t *testing.T) {
	tree := NewTree()
	a := tree.NewSectionNode("a", 1)
	b := tree.NewSectionNode("b", 2)

	ctx := NewParsingContext(nil, WithLanguage(language.French))
	ctx.Attach(b, &plain{})
	ctx.Attach(a, labelled{})

	assert.Equal(t, []*Node{b, a}, ctx.ResolvedNodes())
	assert.Equal(t, language.French, ctx.Language())
	assert.False(t, ctx.HasSeverity(WARNING))
	assert.NotZero(t, ctx.ID())
}

func TestContextCursor(t *testing.T) {
	tree := NewTree()
	a := tree.NewSectionNode("a", 1)
	b := tree.NewSectionNode("b", 2)

	ctx := NewParsingContext(nil)
	assert.Zero(t, ctx.SetCurrentNode(a))
	assert.Equal(t, a, ctx.SetCurrentNode(b))
	assert.Equal(t, b, ctx.CurrentNode())
}

func TestElementCapabilities(t *testing.T) {
	tree := NewTree()
	n := tree.NewSectionNode("a", 1)

	label, ok := n.SectionDisplay()
	assert.False(t, ok)
	assert.Equal(t, "", label)
	assert.Equal(t, IconNone, n.IconSource())

	n.Element = labelled{}
	label, ok = n.SectionDisplay()
	assert.True(t, ok)
	assert.Equal(t, "Label", label)
	assert.Equal(t, IconEvent, n.IconSource())
	assert.Equal(t, "Labels", n.DisplayString())
	assert.Equal(t, "labelled element", DebugOf(n.Element))

	n.Element = &plain{}
	assert.Equal(t, "plain", n.DisplayString())
	assert.Equal(t, "plain", DebugOf(n.Element))
}

func TestParseSeverity(t *testing.T) {
	s, ok := ParseSeverity("error")
	assert.True(t, ok)
	assert.Equal(t, ERROR, s)

	_, ok = ParseSeverity("loud")
	assert.False(t, ok)
}
