package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/SkEditorPlus/skparse"
	cmn "github.com/SkEditorPlus/skparse/parser/parsercommon"
)

var (
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	fatalColor   = color.New(color.FgMagenta, color.Bold)
	successColor = color.New(color.FgGreen)
)

// CheckCmd represents the check command
type CheckCmd struct {
	Paths []string `arg:"" optional:"" help:"Script files, Markdown files or directories (default: input_dir)"`
}

// checkSummary counts what a check run saw.
type checkSummary struct {
	Files       int
	Diagnostics int
	Failed      int
}

// Run executes the check command
func (cmd *CheckCmd) Run(ctx *Context) error {
	config, err := ctx.loadConfig()
	if err != nil {
		return err
	}

	files, err := collectFiles(config, cmd.Paths)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("%w in %v", ErrNoScripts, cmd.Paths)
	}

	summary, err := checkFiles(ctx, ctx.analyzer(config), files)
	if err != nil {
		return err
	}

	if !ctx.Quiet {
		printSummary(ctx.Stdout, summary)
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d file(s)", ErrCheckFailed, summary.Failed, summary.Files)
	}

	return nil
}

// checkFiles analyzes every file and prints its diagnostics.
func checkFiles(ctx *Context, analyzer *skparse.Analyzer, files []string) (checkSummary, error) {
	var summary checkSummary

	for _, file := range files {
		results, err := analyzer.AnalyzeFile(file)
		if skparse.IsSkipped(err) {
			ctx.Logger.Debug("Skipping file", "file", file, "reason", err)
			continue
		}

		if err != nil {
			return summary, err
		}

		summary.Files++

		failed := false

		for _, result := range results {
			diagnostics := result.Diagnostics()
			summary.Diagnostics += len(diagnostics)

			for _, d := range diagnostics {
				printDiagnostic(ctx.Stdout, file, d)
			}

			failed = failed || result.Failed()
		}

		if failed {
			summary.Failed++
		}
	}

	return summary, nil
}

func printDiagnostic(w io.Writer, file string, d cmn.Diagnostic) {
	c := warningColor

	switch d.Severity {
	case cmn.ERROR:
		c = errorColor
	case cmn.FATAL:
		c = fatalColor
	}

	c.Fprintf(w, "%s:%d: %s: %s", file, d.Line, d.Severity, d.Message)
	fmt.Fprintf(w, " [%s]\n", d.Warning.Code)
}

func printSummary(w io.Writer, summary checkSummary) {
	if summary.Failed > 0 {
		errorColor.Fprintf(w, "%d of %d file(s) failed, %d diagnostic(s)\n", summary.Failed, summary.Files, summary.Diagnostics)
		return
	}

	successColor.Fprintf(w, "%d file(s) checked, %d diagnostic(s)\n", summary.Files, summary.Diagnostics)
}
