package markdownparser

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
)

// extractBlocksFromAST collects the fenced code blocks whose info string is
// one of languages, with the text of the closest heading above each.
func extractBlocksFromAST(doc ast.Node, content []byte, languages []string) (string, []Block) {
	var (
		title   string
		heading string
		blocks  []Block
	)

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			heading = extractTextFromHeadingNode(node, content)
			if node.Level == 1 && title == "" {
				title = heading
			}

			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock:
			info := ""
			if node.Info != nil {
				info = strings.ToLower(strings.TrimSpace(string(node.Info.Value(content))))
			}

			// only the language word counts: "skript title=x" is still skript
			if fields := strings.Fields(info); len(fields) > 0 {
				info = fields[0]
			}

			if !containsFold(languages, info) {
				return ast.WalkSkipChildren, nil
			}

			blocks = append(blocks, newBlock(node, content, info, heading))

			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", nil
	}

	return title, blocks
}

func newBlock(node *ast.FencedCodeBlock, content []byte, language, heading string) Block {
	lines := node.Lines()
	block := Block{
		Language: language,
		Heading:  heading,
		Lines:    make([]string, 0, lines.Len()),
	}

	for i := range lines.Len() {
		line := lines.At(i)
		block.Lines = append(block.Lines, strings.TrimRight(string(line.Value(content)), "\r\n"))
	}

	if lines.Len() > 0 {
		block.StartLine = bytes.Count(content[:lines.At(0).Start], []byte("\n")) + 1
	} else if node.Info != nil {
		// an empty block starts after its opening fence
		block.StartLine = bytes.Count(content[:node.Info.Segment.Start], []byte("\n")) + 2
	}

	return block
}

// extractTextFromHeadingNode extracts text content from a heading node
func extractTextFromHeadingNode(n ast.Node, content []byte) string {
	var text strings.Builder

	err := ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindText {
			if textNode, ok := n.(*ast.Text); ok {
				text.Write(textNode.Value(content))
			}
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return ""
	}

	return strings.TrimSpace(text.String())
}

func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}

	return false
}
