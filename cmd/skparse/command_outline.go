package main

import (
	"encoding/json"

	"github.com/SkEditorPlus/skparse"
	"github.com/SkEditorPlus/skparse/outline"
)

// OutlineCmd represents the outline command
type OutlineCmd struct {
	Paths  []string `arg:"" optional:"" help:"Script files, Markdown files or directories (default: input_dir)"`
	Pretty bool     `short:"p" help:"Indent the JSON output"`
}

// documentOutline is the JSON form of one analyzed script.
type documentOutline struct {
	File string `json:"file"`
	Name string `json:"name"`
	outline.Outline
}

// Run executes the outline command
func (cmd *OutlineCmd) Run(ctx *Context) error {
	config, err := ctx.loadConfig()
	if err != nil {
		return err
	}

	files, err := collectFiles(config, cmd.Paths)
	if err != nil {
		return err
	}

	analyzer := ctx.analyzer(config)
	documents := []documentOutline{}

	for _, file := range files {
		results, err := analyzer.AnalyzeFile(file)
		if skparse.IsSkipped(err) {
			ctx.Logger.Debug("Skipping file", "file", file, "reason", err)
			continue
		}

		if err != nil {
			return err
		}

		for _, result := range results {
			documents = append(documents, documentOutline{
				File:    file,
				Name:    result.Name,
				Outline: result.Outline(),
			})
		}
	}

	encoder := json.NewEncoder(ctx.Stdout)
	if cmd.Pretty {
		encoder.SetIndent("", "  ")
	}

	return encoder.Encode(documents)
}
