package formatter

import (
	"bytes"
	"strings"
	"testing"

	"cogentcore.org/core/base/indent"
	"github.com/alecthomas/assert/v2"
)

func TestMarkdownFormatter(t *testing.T) {
	input := strings.Join([]string{
		"# Doc",
		"```skript",
		"on join:",
		"  stop",
		"```",
		"```yaml",
		"a:",
		"  b: c",
		"```",
	}, "\n")

	expected := strings.Join([]string{
		"# Doc",
		"```skript",
		"on join:",
		"    stop",
		"```",
		"```yaml",
		"a:",
		"  b: c",
		"```",
	}, "\n")

	formatted, err := NewMarkdownFormatter(DefaultOptions).Format(input)
	assert.NoError(t, err)
	assert.Equal(t, expected, formatted)
	assert.True(t, IsMarkdownFile("README.md"))
	assert.False(t, IsMarkdownFile("hello.sk"))
}

func TestMarkdownFormatterFromReader(t *testing.T) {
	var out bytes.Buffer

	f := NewMarkdownFormatter(Options{Style: indent.Space, Width: 2}, "sk")
	assert.NoError(t, f.FormatFromReader(strings.NewReader("```sk\na:\n\tb\n```"), &out))
	assert.Equal(t, "```sk\na:\n  b\n```", out.String())
}
