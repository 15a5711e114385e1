// Package markdownparser extracts script blocks from Markdown documents.
package markdownparser

import (
	"errors"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var (
	ErrInvalidFrontMatter = errors.New("invalid front matter")
	ErrNoScriptBlock      = errors.New("no script code block found")
)

// DefaultLanguages are the info strings of script code blocks.
var DefaultLanguages = []string{"skript", "sk"}

// Block is one fenced script block.
type Block struct {
	Language string
	// Heading is the text of the closest heading above the block.
	Heading string
	// StartLine is the 1-based document line of the first script line.
	StartLine int
	Lines     []string
}

// DocumentLine maps a 1-based line of the block to its document line.
func (b Block) DocumentLine(line int) int {
	return b.StartLine + line - 1
}

// Document is a parsed Markdown document.
type Document struct {
	Title       string
	FrontMatter map[string]any
	Blocks      []Block
}

// Parse reads a Markdown document and extracts its script blocks. Languages
// defaults to DefaultLanguages.
func Parse(reader io.Reader, languages ...string) (*Document, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	if len(languages) == 0 {
		languages = DefaultLanguages
	}

	frontMatter, body, offset, err := parseFrontMatter(string(content))
	if err != nil {
		return nil, err
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
	)

	source := []byte(body)
	doc := md.Parser().Parse(text.NewReader(source))

	title, blocks := extractBlocksFromAST(doc, source, languages)
	for i := range blocks {
		blocks[i].StartLine += offset
	}

	document := &Document{
		Title:       title,
		FrontMatter: frontMatter,
		Blocks:      blocks,
	}

	if t, ok := frontMatter["title"].(string); ok && t != "" {
		document.Title = t
	}

	return document, nil
}
