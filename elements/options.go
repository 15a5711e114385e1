package elements

import (
	"golang.org/x/text/language"

	"github.com/SkEditorPlus/skparse/parser"
	cmn "github.com/SkEditorPlus/skparse/parser/parsercommon"
)

var OptionAlreadyExists = cmn.NewParserWarning("option_already_exists", "Option '%s' is already defined.")

// Options is the "options:" structure holding script constants.
type Options struct {
	Entries []*OptionEntry

	language language.Tag
}

// OptionsRecognizer recognizes the top-level "options:" section.
var OptionsRecognizer = cmn.Recognizer{
	Name: "Options",
	Match: func(node *cmn.Node) bool {
		return node.IsSection() && node.IsTopLevel() && node.Key == "options"
	},
	New: func() cmn.Element { return &Options{} },
}

func (o *Options) Load(node *cmn.Node, ctx *cmn.ParsingContext) error {
	o.language = ctx.Language()
	seen := make(map[string]bool)

	for _, child := range node.Children() {
		if !child.IsSimple() {
			ctx.Warning(child, cmn.UnknownElement)
			continue
		}

		if seen[child.Key] {
			ctx.Warning(child, OptionAlreadyExists, child.Key)
		}

		seen[child.Key] = true

		entry := &OptionEntry{Name: child.Key, Value: child.Value, Options: o}
		if parser.ResolveAs(child, ctx, "OptionEntry", entry) {
			o.Entries = append(o.Entries, entry)
		}
	}

	return nil
}

// Lookup returns the last value defined for an option, as scripts see it.
func (o *Options) Lookup(name string) (string, bool) {
	for i := len(o.Entries) - 1; i >= 0; i-- {
		if o.Entries[i].Name == name {
			return o.Entries[i].Value, true
		}
	}

	return "", false
}

func (o *Options) SectionDisplay() (string, bool) { return "Options", true }

func (o *Options) IconSource() cmn.Icon { return cmn.IconOptions }

func (o *Options) DisplayString() string {
	return Label(o.language, labelOptions)
}

// OptionEntry is one "name: value" line of an options section.
type OptionEntry struct {
	Name    string
	Value   string
	Options *Options
}

// Load is a no-op: entries are filled by their options section.
func (e *OptionEntry) Load(*cmn.Node, *cmn.ParsingContext) error { return nil }

// Reference is how scripts use the option: {@name}.
func (e *OptionEntry) Reference() string { return "{@" + e.Name + "}" }
