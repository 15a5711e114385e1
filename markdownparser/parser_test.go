package markdownparser

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/stretchr/testify/require"
)

func TestParseExtractsScriptBlocks(t *testing.T) {
	src := strings.Join([]string{
		"# Hello plugin",    // 1
		"",                  // 2
		"## Command",        // 3
		"",                  // 4
		"```skript",         // 5
		"command /hello:",   // 6
		"    trigger:",      // 7
		`        send "hi"`, // 8
		"```",               // 9
		"",                  // 10
		"```yaml",           // 11
		"ignored: true",     // 12
		"```",               // 13
		"",                  // 14
		"## Join",           // 15
		"",                  // 16
		"```sk",             // 17
		"on join:",          // 18
		"    stop",          // 19
		"```",               // 20
	}, "\n")

	doc, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "Hello plugin", doc.Title)
	require.Equal(t, 2, len(doc.Blocks))

	first := doc.Blocks[0]
	assert.Equal(t, "skript", first.Language)
	assert.Equal(t, "Command", first.Heading)
	assert.Equal(t, 6, first.StartLine)
	assert.Equal(t, []string{"command /hello:", "    trigger:", `        send "hi"`}, first.Lines)
	assert.Equal(t, 8, first.DocumentLine(3))

	second := doc.Blocks[1]
	assert.Equal(t, "sk", second.Language)
	assert.Equal(t, "Join", second.Heading)
	assert.Equal(t, 18, second.StartLine)
}

func TestParseFrontMatterShiftsLines(t *testing.T) {
	src := strings.Join([]string{
		"---",
		"title: Documented",
		"---",
		"```skript",
		"on join:",
		"```",
	}, "\n")

	doc, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "Documented", doc.Title)
	assert.Equal(t, "Documented", doc.FrontMatter["title"])
	require.Equal(t, 1, len(doc.Blocks))
	assert.Equal(t, 5, doc.Blocks[0].StartLine)
}

func TestParseCustomLanguages(t *testing.T) {
	src := "```vb\non join:\n```\n```skript\nstop\n```\n"

	doc, err := Parse(strings.NewReader(src), "VB")
	require.NoError(t, err)
	require.Equal(t, 1, len(doc.Blocks))
	assert.Equal(t, []string{"on join:"}, doc.Blocks[0].Lines)
}

func TestParseInvalidFrontMatter(t *testing.T) {
	_, err := Parse(strings.NewReader("---\ntitle: x\n"))
	assert.IsError(t, err, ErrInvalidFrontMatter)
}
