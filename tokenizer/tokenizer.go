package tokenizer

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenIterator uses Go 1.23 iterator pattern
type TokenIterator iter.Seq2[Token, error]

// LineTokenizer splits a single script line into tokens.
type LineTokenizer struct {
	input  string
	line   int
	option TokenizerOptions
}

// TokenizerOptions are options for the tokenizer
type TokenizerOptions struct {
	SkipWhitespace bool
}

// NewLineTokenizer creates a tokenizer for one line. lineNumber is 1-based and is
// only used to fill token positions.
func NewLineTokenizer(input string, lineNumber int, options ...TokenizerOptions) *LineTokenizer {
	opts := TokenizerOptions{}
	if len(options) > 0 {
		opts = options[0]
	}

	return &LineTokenizer{
		input:  input,
		line:   lineNumber,
		option: opts,
	}
}

// Tokens returns an iterator of tokens. The last token is always EOF unless
// the input contains a line feed, in which case ErrMultiLineInput is yielded.
// A carriage return is whitespace like any other.
func (t *LineTokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		if strings.Contains(t.input, "\n") {
			yield(Token{}, ErrMultiLineInput)
			return
		}

		offset := 0
		column := 1

		for offset < len(t.input) {
			r, _ := utf8.DecodeRuneInString(t.input[offset:])

			var (
				end       int
				tokenType TokenType
			)

			switch {
			case r == ':':
				tokenType = COLON
				end = offset + 1
			case unicode.IsSpace(r):
				tokenType = WHITESPACE
				end = scan(t.input, offset, func(r rune) bool { return unicode.IsSpace(r) })
			default:
				tokenType = WORD
				end = scan(t.input, offset, func(r rune) bool { return r != ':' && !unicode.IsSpace(r) })
			}

			token := Token{
				Type:  tokenType,
				Value: t.input[offset:end],
				Position: Position{
					Line:   t.line,
					Column: column,
					Offset: offset,
				},
			}

			column += utf8.RuneCountInString(token.Value)
			offset = end

			if t.option.SkipWhitespace && tokenType == WHITESPACE {
				continue
			}

			if !yield(token, nil) {
				return
			}
		}

		yield(Token{
			Type:     EOF,
			Position: Position{Line: t.line, Column: column, Offset: offset},
		}, nil)
	}
}

// AllTokens gets all tokens as a slice, EOF included.
func (t *LineTokenizer) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, 16)

	for token, err := range t.Tokens() {
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, token)
	}

	return tokens, nil
}

// Tokenize is a shorthand for NewLineTokenizer(line, lineNumber).AllTokens().
func Tokenize(line string, lineNumber int) ([]Token, error) {
	return NewLineTokenizer(line, lineNumber).AllTokens()
}

// LeadingWhitespace returns the number of whitespace characters at the start of line.
func LeadingWhitespace(line string) int {
	count := 0

	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}

		count++
	}

	return count
}

func scan(input string, offset int, accept func(rune) bool) int {
	for offset < len(input) {
		r, size := utf8.DecodeRuneInString(input[offset:])
		if !accept(r) {
			break
		}

		offset += size
	}

	return offset
}
