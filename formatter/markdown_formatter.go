package formatter

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

var (
	codeBlockStartRe = regexp.MustCompile("^(\\s*)`{3,}\\s*([\\w-]*)")
	codeBlockEndRe   = regexp.MustCompile("^(\\s*)`{3,}\\s*$")
)

// MarkdownFormatter formats script code blocks within Markdown files
type MarkdownFormatter struct {
	scriptFormatter *ScriptFormatter
	languages       []string
}

// NewMarkdownFormatter creates a new Markdown formatter for code blocks
// tagged with one of languages.
func NewMarkdownFormatter(options Options, languages ...string) *MarkdownFormatter {
	if len(languages) == 0 {
		languages = []string{"skript", "sk"}
	}

	return &MarkdownFormatter{
		scriptFormatter: NewScriptFormatter(options),
		languages:       languages,
	}
}

// Format formats script code blocks within a Markdown file
func (f *MarkdownFormatter) Format(markdown string) (string, error) {
	var (
		result      strings.Builder
		inBlock     bool
		inOther     bool
		blockIndent string
		blockLines  []string
	)

	scanner := bufio.NewScanner(strings.NewReader(markdown))
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case inBlock && codeBlockEndRe.MatchString(line):
			inBlock = false

			for _, formatted := range f.scriptFormatter.FormatLines(blockLines) {
				if formatted != "" {
					result.WriteString(blockIndent)
					result.WriteString(formatted)
				}

				result.WriteString("\n")
			}

		case inBlock:
			// remove the block indentation
			blockLines = append(blockLines, strings.TrimPrefix(line, blockIndent))
			continue

		case inOther:
			if codeBlockEndRe.MatchString(line) {
				inOther = false
			}

		default:
			if match := codeBlockStartRe.FindStringSubmatch(line); match != nil {
				if f.isScript(match[2]) {
					inBlock = true
					blockIndent = match[1]
					blockLines = blockLines[:0]
				} else {
					inOther = true
				}
			}
		}

		result.WriteString(line)
		result.WriteString("\n")
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("error reading markdown: %w", err)
	}

	return strings.TrimRight(result.String(), "\n"), nil
}

// FormatFromReader formats script code blocks from a reader and writes to a writer
func (f *MarkdownFormatter) FormatFromReader(reader io.Reader, writer io.Writer) error {
	input, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	formatted, err := f.Format(string(input))
	if err != nil {
		return fmt.Errorf("failed to format markdown: %w", err)
	}

	_, err = io.WriteString(writer, formatted)

	return err
}

func (f *MarkdownFormatter) isScript(language string) bool {
	return slices.ContainsFunc(f.languages, func(l string) bool {
		return strings.EqualFold(l, language)
	})
}

// IsMarkdownFile checks if a file is a Markdown file
func IsMarkdownFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".md" || ext == ".markdown"
}
