// Package elements contains the built-in structure recognizers.
package elements

import (
	cmn "github.com/SkEditorPlus/skparse/parser/parsercommon"
	"github.com/SkEditorPlus/skparse/registry"
)

// Addon owns every built-in registry entry.
var Addon = registry.Addon{ID: "skeditor", Name: "SkEditor"}

// Recognizers lists the built-in recognizers. Their predicates are disjoint,
// so they share a priority.
var Recognizers = []cmn.Recognizer{
	CommandRecognizer,
	FunctionRecognizer,
	EventRecognizer,
	PeriodicalEventRecognizer,
	OptionsRecognizer,
}

// Warnings lists the warning kinds built-in recognizers report.
var Warnings = []cmn.ParserWarning{
	cmn.UnknownElement,
	cmn.ParsingFailed,
	cmn.InternalError,
	CommandAlreadyExists,
	UnknownCommandEntry,
	InvalidTimespan,
	FunctionAlreadyExists,
	OptionAlreadyExists,
}

// Register adds the built-in recognizers and warnings, owned by Addon.
func Register(regs *registry.Registries) {
	for _, r := range Recognizers {
		regs.ParserElements.Register(r, 0, Addon)
	}

	for _, w := range Warnings {
		regs.ParserWarnings.Register(w, 0, Addon)
	}
}
