package tokenizer

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTokenIterator(t *testing.T) {
	tokenizer := NewLineTokenizer("    description: says hello", 3)

	expectedTypes := []TokenType{
		WHITESPACE, WORD, COLON, WHITESPACE, WORD, WHITESPACE, WORD, EOF,
	}

	var actualTypes []TokenType
	for token, err := range tokenizer.Tokens() {
		assert.NoError(t, err)

		actualTypes = append(actualTypes, token.Type)
	}

	assert.Equal(t, expectedTypes, actualTypes)
}

func TestTokenIteratorWithOptions(t *testing.T) {
	tokenizer := NewLineTokenizer("\tcommand /hello:", 1, TokenizerOptions{SkipWhitespace: true})

	tokens, err := tokenizer.AllTokens()
	assert.NoError(t, err)

	values := make([]string, 0, len(tokens))
	for _, token := range tokens {
		values = append(values, token.Value)
	}

	assert.Equal(t, []string{"command", "/hello", ":", ""}, values)
}

func TestIteratorEarlyTermination(t *testing.T) {
	tokenizer := NewLineTokenizer("a b c d e f", 1)

	count := 0
	for _, err := range tokenizer.Tokens() {
		assert.NoError(t, err)

		count++
		if count >= 3 {
			break
		}
	}

	assert.Equal(t, 3, count)
}

func TestTokenPositions(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []Position
	}{
		{
			name: "spaces",
			line: "  a:b",
			expected: []Position{
				{Line: 7, Column: 1, Offset: 0},
				{Line: 7, Column: 3, Offset: 2},
				{Line: 7, Column: 4, Offset: 3},
				{Line: 7, Column: 5, Offset: 4},
				{Line: 7, Column: 6, Offset: 5},
			},
		},
		{
			name: "multibyte word",
			line: "é:x",
			expected: []Position{
				{Line: 7, Column: 1, Offset: 0},
				{Line: 7, Column: 2, Offset: 2},
				{Line: 7, Column: 3, Offset: 3},
				{Line: 7, Column: 4, Offset: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.line, 7)
			assert.NoError(t, err)

			positions := make([]Position, 0, len(tokens))
			for _, token := range tokens {
				positions = append(positions, token.Position)
			}

			assert.Equal(t, tt.expected, positions)
		})
	}
}

func TestTabsAreNotNormalized(t *testing.T) {
	tabs, err := Tokenize("\t\tsend", 1)
	assert.NoError(t, err)

	spaces, err := Tokenize("        send", 1)
	assert.NoError(t, err)

	assert.Equal(t, 2, tabs[0].Width())
	assert.Equal(t, 8, spaces[0].Width())
	assert.Equal(t, 2, LeadingWhitespace("\t\tsend"))
	assert.Equal(t, 0, LeadingWhitespace("send"))
}

func TestMultiLineInput(t *testing.T) {
	_, err := Tokenize("a\nb", 1)
	assert.IsError(t, err, ErrMultiLineInput)
}

func TestCarriageReturnIsWhitespace(t *testing.T) {
	tokens, err := Tokenize("a\rb", 1)
	assert.NoError(t, err)
	assert.Equal(t, []TokenType{WORD, WHITESPACE, WORD, EOF}, tokenTypes(tokens))
}

func TestEmptyLine(t *testing.T) {
	tokens, err := Tokenize("", 4)
	assert.NoError(t, err)
	assert.Equal(t, []Token{{Type: EOF, Position: Position{Line: 4, Column: 1}}}, tokens)
}

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, 0, len(tokens))
	for _, token := range tokens {
		types = append(types, token.Type)
	}

	return types
}
