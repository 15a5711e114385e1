package testhelper

import (
	"regexp"
	"strings"
	"testing"
)

var (
	whiteSpaces = regexp.MustCompile(`(\s+)`)
	leadingTabs = regexp.MustCompile(`^(\t+)`)
)

func replaceTab(match string) string {
	return strings.Repeat("    ", strings.Count(match, "\t"))
}

// TrimIndent removes the indentation of the first line from every line of an
// inline fixture that starts with a line break, then turns the remaining
// leading tabs into four spaces each.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")

	var indent string
	if len(lines) > 1 {
		indent = whiteSpaces.FindString(lines[1])
	}

	for i, line := range lines {
		line = strings.TrimPrefix(line, indent)
		lines[i] = leadingTabs.ReplaceAllStringFunc(line, replaceTab)
	}

	return strings.Join(lines[1:], "\n")
}

// Lines is TrimIndent split into script lines.
func Lines(t *testing.T, src string) []string {
	t.Helper()

	return strings.Split(TrimIndent(t, src), "\n")
}
