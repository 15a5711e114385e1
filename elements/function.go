package elements

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/language"

	cmn "github.com/SkEditorPlus/skparse/parser/parsercommon"
)

var FunctionAlreadyExists = cmn.NewParserWarning("function_already_exists", "Another function with the same name already exists.")

var (
	functionPattern  = regexp.MustCompile(`(?i)^function\s+([\p{L}_][\p{L}\p{N}_]*)\s*\((.*)\)\s*(?:::\s*(.+?))?\s*$`)
	parameterPattern = regexp.MustCompile(`^([\p{L}_][\p{L}\p{N}_]*)\s*:\s*([^=]+?)\s*(?:=\s*(.+))?$`)
)

// Parameter is one declared function parameter.
type Parameter struct {
	Name    string
	Type    string
	Default string
}

func (p Parameter) String() string {
	if p.Default == "" {
		return p.Name + ": " + p.Type
	}

	return p.Name + ": " + p.Type + " = " + p.Default
}

// Function is a "function name(params) :: type:" structure.
type Function struct {
	Name       string
	Parameters []Parameter
	ReturnType string

	language language.Tag
}

// FunctionRecognizer recognizes top-level sections starting with "function".
var FunctionRecognizer = cmn.Recognizer{
	Name: "Function",
	Match: func(node *cmn.Node) bool {
		return node.IsSection() && node.IsTopLevel() && hasWordPrefix(node.Key, "function")
	},
	New: func() cmn.Element { return &Function{} },
}

func (f *Function) Load(node *cmn.Node, ctx *cmn.ParsingContext) error {
	match := functionPattern.FindStringSubmatch(node.Key)
	if match == nil {
		return cmn.NewParsingError(node, "invalid function header '%s'", node.Key)
	}

	f.Name = match[1]
	f.ReturnType = match[3]
	f.language = ctx.Language()

	if params := strings.TrimSpace(match[2]); params != "" {
		for _, raw := range strings.Split(params, ",") {
			pm := parameterPattern.FindStringSubmatch(strings.TrimSpace(raw))
			if pm == nil {
				return cmn.NewParsingError(node, "invalid parameter '%s' in function '%s'", strings.TrimSpace(raw), f.Name)
			}

			f.Parameters = append(f.Parameters, Parameter{Name: pm[1], Type: pm[2], Default: pm[3]})
		}
	}

	for _, resolved := range ctx.ResolvedNodes() {
		if other, ok := resolved.Element.(*Function); ok && strings.EqualFold(other.Name, f.Name) {
			ctx.Warning(node, FunctionAlreadyExists)
			break
		}
	}

	return nil
}

// Signature renders the header back, normalized.
func (f *Function) Signature() string {
	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}

	signature := fmt.Sprintf("%s(%s)", f.Name, strings.Join(params, ", "))
	if f.ReturnType != "" {
		signature += " :: " + f.ReturnType
	}

	return signature
}

func (f *Function) SectionDisplay() (string, bool) {
	return "Function '" + f.Name + "'", true
}

func (f *Function) IconSource() cmn.Icon { return cmn.IconFunction }

func (f *Function) DisplayString() string {
	return Label(f.language, labelFunctions)
}

// hasWordPrefix reports whether key starts with word followed by a space or the end.
func hasWordPrefix(key, word string) bool {
	if len(key) < len(word) || !strings.EqualFold(key[:len(word)], word) {
		return false
	}

	return len(key) == len(word) || key[len(word)] == ' ' || key[len(word)] == '\t'
}
