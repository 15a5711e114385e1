package tokenizer

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrMultiLineInput = errors.New("input spans more than one line")
)

// TokenType represents the type of a token
type TokenType int

const (
	EOF        TokenType = iota
	WHITESPACE           // run of unicode spaces (tabs are not normalized)
	WORD                 // run of anything that is neither whitespace nor a colon
	COLON                // :
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case WHITESPACE:
		return "WHITESPACE"
	case WORD:
		return "WORD"
	case COLON:
		return "COLON"
	default:
		return "UNKNOWN"
	}
}

// Position represents a position in the source code.
// Column counts runes and starts at 1; Offset is a byte offset into the line.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a token
type Token struct {
	Type     TokenType
	Value    string
	Position Position
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Type.String() + ": " + t.Value
}

// Width returns the number of characters in the token. Whitespace is counted
// literally, so a tab and a space both have width 1.
func (t Token) Width() int {
	return len([]rune(t.Value))
}
