package registry

import (
	cmn "github.com/SkEditorPlus/skparse/parser/parsercommon"
)

// Registries groups every extension point of the parser.
type Registries struct {
	ParserElements *Registry[cmn.Recognizer]
	ParserWarnings *Registry[cmn.ParserWarning]
}

// NewRegistries creates empty registries.
func NewRegistries() *Registries {
	return &Registries{
		ParserElements: New[cmn.Recognizer](),
		ParserWarnings: New[cmn.ParserWarning](),
	}
}

// Unload removes everything addon registered and returns how many entries went away.
func (r *Registries) Unload(addon Addon) int {
	return r.ParserElements.Unload(addon) + r.ParserWarnings.Unload(addon)
}

// Warning looks up a registered warning kind by code.
func (r *Registries) Warning(code string) (cmn.ParserWarning, bool) {
	return r.ParserWarnings.Find(func(w cmn.ParserWarning) bool { return w.Code == code })
}

// NewParsingContext creates a context over the current recognizer order.
func (r *Registries) NewParsingContext(opts ...cmn.ContextOption) *cmn.ParsingContext {
	return cmn.NewParsingContext(r.ParserElements.Ordered(), opts...)
}
