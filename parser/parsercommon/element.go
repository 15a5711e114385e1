package parsercommon

import (
	"fmt"
	"reflect"
)

// Element is a recognized language construct attached to a Node.
//
// Load reads the element's data from the node. Returning nil attaches the
// element; returning a *ParsingError stops every other recognizer for the node;
// returning ErrDeclined leaves the node unannotated without stopping. Any other
// error is treated as a recognizer defect.
type Element interface {
	Load(node *Node, ctx *ParsingContext) error
}

// Debugger is implemented by elements with a custom debug description.
type Debugger interface {
	Debug() string
}

// SectionDisplayer is implemented by elements that label their section when folded.
type SectionDisplayer interface {
	SectionDisplay() (string, bool)
}

// IconSourcer is implemented by elements shown as structures in the sidebar.
type IconSourcer interface {
	IconSource() Icon
}

// DisplayStringer is implemented by elements with a filterable display name.
type DisplayStringer interface {
	DisplayString() string
}

// Icon is the sidebar category of a structure element.
type Icon int

const (
	IconNone Icon = iota
	IconCode
	IconFunction
	IconEvent
	IconOptions
)

func (i Icon) String() string {
	switch i {
	case IconCode:
		return "code"
	case IconFunction:
		return "function"
	case IconEvent:
		return "event"
	case IconOptions:
		return "options"
	default:
		return "none"
	}
}

// Recognizer describes an element type: a cheap, side-effect free match
// predicate plus a constructor for fresh instances.
type Recognizer struct {
	Name  string
	Match func(node *Node) bool
	New   func() Element
}

// DebugOf returns the debug description of an element, defaulting to its type name.
func DebugOf(e Element) string {
	if d, ok := e.(Debugger); ok {
		return d.Debug()
	}

	return typeName(e)
}

// SectionDisplayOf returns the folding label of an element, if any.
func SectionDisplayOf(e Element) (string, bool) {
	if s, ok := e.(SectionDisplayer); ok {
		return s.SectionDisplay()
	}

	return "", false
}

// IconOf returns the sidebar category of an element, IconNone if it has none.
func IconOf(e Element) Icon {
	if i, ok := e.(IconSourcer); ok {
		return i.IconSource()
	}

	return IconNone
}

// DisplayStringOf returns the display name of an element, defaulting to its type name.
func DisplayStringOf(e Element) string {
	if d, ok := e.(DisplayStringer); ok {
		return d.DisplayString()
	}

	return typeName(e)
}

func typeName(e Element) string {
	if e == nil {
		return ""
	}

	t := reflect.TypeOf(e)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Name() == "" {
		return fmt.Sprintf("%T", e)
	}

	return t.Name()
}
