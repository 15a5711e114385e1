package main

import (
	"fmt"
	"io"
	"strings"

	cmn "github.com/SkEditorPlus/skparse/parser/parsercommon"
)

// DumpCmd represents the dump command
type DumpCmd struct {
	Path     string `arg:"" help:"Script or Markdown file"`
	Elements bool   `short:"e" help:"Show the element attached to each node"`
}

// Run executes the dump command
func (cmd *DumpCmd) Run(ctx *Context) error {
	config, err := ctx.loadConfig()
	if err != nil {
		return err
	}

	results, err := ctx.analyzer(config).AnalyzeFile(cmd.Path)
	if err != nil {
		return err
	}

	for _, result := range results {
		if len(results) > 1 {
			fmt.Fprintf(ctx.Stdout, "== %s (line offset %d)\n", result.Name, result.LineOffset)
		}

		if err := dumpTree(ctx.Stdout, result.Tree, cmd.Elements); err != nil {
			return err
		}
	}

	return nil
}

func dumpTree(w io.Writer, tree *cmn.Tree, withElements bool) error {
	if !withElements {
		return tree.Dump(w)
	}

	for node := range tree.All() {
		line := strings.Repeat("  ", node.Indent) + node.String()
		if node.Element != nil {
			line += " => " + cmn.DebugOf(node.Element)
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
