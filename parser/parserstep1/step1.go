package parserstep1

import (
	"strings"
	"unicode"

	pc "github.com/shibukawa/parsercombinator"

	cmn "github.com/SkEditorPlus/skparse/parser/parsercommon"
	tok "github.com/SkEditorPlus/skparse/tokenizer"
)

// Line is one classified, non-blank, non-comment source line.
type Line struct {
	Number int
	Kind   cmn.Kind
	// Indent is the raw leading-whitespace length, not yet a depth.
	Indent int
	Key    string
	Value  string
}

// Entity is the parser value: a token plus whether it is the colon that
// separates key and value.
type Entity struct {
	Token     tok.Token
	Separator bool
}

func primitive(typeName string, accept func(e Entity) bool) pc.Parser[Entity] {
	return func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
		if len(tokens) > 0 && accept(tokens[0].Val) {
			token := tokens[0]
			token.Type = typeName

			return 1, []pc.Token[Entity]{token}, nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

// tag concatenates the matched tokens into one token of the given type.
func tag(typeName string, parser pc.Parser[Entity]) pc.Parser[Entity] {
	return pc.Trans(parser, func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) ([]pc.Token[Entity], error) {
		var sb strings.Builder
		for _, t := range tokens {
			sb.WriteString(t.Raw)
		}

		return []pc.Token[Entity]{{
			Type: typeName,
			Pos:  tokens[0].Pos,
			Val:  tokens[0].Val,
			Raw:  sb.String(),
		}}, nil
	})
}

var (
	space     = primitive("space", func(e Entity) bool { return e.Token.Type == tok.WHITESPACE })
	separator = primitive("separator", func(e Entity) bool { return e.Separator })
	word      = primitive("word", func(e Entity) bool { return !e.Separator && e.Token.Type != tok.WHITESPACE })
	text      = primitive("text", func(e Entity) bool { return !e.Separator })

	indent = pc.Drop(pc.Optional(space))
	// A key must start with a word, so "   : foo" is an effect rather than
	// a simple node with a blank key.
	key    = tag("key", pc.Seq(word, pc.ZeroOrMore("key text", text)))
	value  = tag("value", pc.Seq(pc.Drop(pc.ZeroOrMore("spaces", space)), word, pc.ZeroOrMore("value text", text)))
	eos    = pc.EOS[Entity]()

	simpleLine  = pc.Trace("simple", pc.Seq(indent, key, separator, value, eos))
	sectionLine = pc.Trace("section", pc.Seq(indent, key, separator, eos))
	line        = pc.Or(simpleLine, sectionLine)
)

// IsSkipped reports whether a line never becomes a node: blank lines and comments.
func IsSkipped(text string) bool {
	trimmed := strings.TrimSpace(text)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

// Classify turns one line into a Line. ok is false for skipped lines.
func Classify(text string, number int) (result Line, ok bool, err error) {
	if IsSkipped(text) {
		return Line{}, false, nil
	}

	text = strings.TrimRightFunc(text, unicode.IsSpace)

	tokens, err := tok.Tokenize(text, number)
	if err != nil {
		return Line{}, false, err
	}

	result = EffectLine(text, number)

	pctx := pc.NewParseContext[Entity]()
	pctx.OrMode = pc.OrModeTryFast

	_, parsed, err := line(pctx, toEntities(tokens))
	if err != nil {
		// anything without a usable key/separator shape is an effect
		return result, true, nil
	}

	for _, t := range parsed {
		switch t.Type {
		case "key":
			result.Key = strings.TrimRightFunc(t.Raw, unicode.IsSpace)
		case "value":
			result.Value = t.Raw
		}
	}

	result.Kind = cmn.SectionKind
	if result.Value != "" {
		result.Kind = cmn.SimpleKind
	}

	return result, true, nil
}

// EffectLine makes an effect of text, whatever its shape.
func EffectLine(text string, number int) Line {
	text = strings.TrimRightFunc(text, unicode.IsSpace)

	return Line{
		Number: number,
		Kind:   cmn.EffectKind,
		Indent: tok.LeadingWhitespace(text),
		Key:    strings.TrimLeftFunc(text, unicode.IsSpace),
	}
}

// Execute classifies every line of a script. Line numbers are 1-based.
func Execute(lines []string) ([]Line, error) {
	results := make([]Line, 0, len(lines))

	for i, text := range lines {
		l, ok, err := Classify(text, i+1)
		if err != nil {
			return nil, err
		}

		if ok {
			results = append(results, l)
		}
	}

	return results, nil
}

// toEntities drops EOF and marks the last colon of the line as the separator.
func toEntities(tokens []tok.Token) []pc.Token[Entity] {
	last := -1

	for i, token := range tokens {
		if token.Type == tok.COLON {
			last = i
		}
	}

	results := make([]pc.Token[Entity], 0, len(tokens))

	for i, token := range tokens {
		if token.Type == tok.EOF {
			continue
		}

		results = append(results, pc.Token[Entity]{
			Type: "raw",
			Pos: &pc.Pos{
				Line:  token.Position.Line,
				Col:   token.Position.Column,
				Index: token.Position.Offset,
			},
			Val: Entity{Token: token, Separator: i == last},
			Raw: token.Value,
		})
	}

	return results
}
