package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SkEditorPlus/skparse"
	"github.com/SkEditorPlus/skparse/formatter"
)

// FormatCmd represents the format command
type FormatCmd struct {
	Input string `arg:"" optional:"" help:"Input file or directory (default: stdin)"`
	Write bool   `short:"w" help:"Write result to input file instead of stdout"`
	Check bool   `short:"c" help:"Check if files are formatted (exit 1 if not)"`
}

// Run executes the format command
func (cmd *FormatCmd) Run(ctx *Context) error {
	config, err := ctx.loadConfig()
	if err != nil {
		return err
	}

	options := formatter.OptionsFor(config.Format.IndentStyle, config.Format.IndentWidth)

	// Read from stdin
	if cmd.Input == "" {
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		formatted, err := format(config, options, "<stdin>", string(input))
		if err != nil {
			return err
		}

		_, err = io.WriteString(ctx.Stdout, formatted)

		return err
	}

	files, err := collectFiles(config, []string{cmd.Input})
	if err != nil {
		return err
	}

	var unformatted int

	for _, file := range files {
		changed, err := cmd.formatFile(ctx, config, options, file)
		if err != nil {
			return err
		}

		if changed {
			unformatted++
		}
	}

	if cmd.Check && unformatted > 0 {
		return fmt.Errorf("%w: %d file(s)", ErrFileNotFormatted, unformatted)
	}

	return nil
}

// formatFile formats one file and reports whether its content changed.
func (cmd *FormatCmd) formatFile(ctx *Context, config *skparse.Config, options formatter.Options, filename string) (bool, error) {
	input, err := os.ReadFile(filename)
	if err != nil {
		return false, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	formatted, err := format(config, options, filename, string(input))
	if err != nil {
		return false, err
	}

	changed := strings.TrimSpace(string(input)) != strings.TrimSpace(formatted)

	switch {
	case cmd.Check:
		if changed {
			fmt.Fprintf(ctx.Stderr, "%s is not formatted\n", filename)
		}
	case cmd.Write:
		if !changed {
			return false, nil
		}

		if err := os.WriteFile(filename, []byte(formatted), 0o644); err != nil {
			return false, fmt.Errorf("failed to write file %s: %w", filename, err)
		}

		if !ctx.Quiet {
			fmt.Fprintf(ctx.Stdout, "Formatted: %s\n", filename)
		}
	default:
		if _, err := io.WriteString(ctx.Stdout, formatted); err != nil {
			return false, err
		}
	}

	return changed, nil
}

// format formats Markdown documents block by block and anything else as a
// script. The result ends with exactly one line break.
func format(config *skparse.Config, options formatter.Options, filename, input string) (string, error) {
	var formatted string

	if formatter.IsMarkdownFile(filename) {
		var err error

		formatted, err = formatter.NewMarkdownFormatter(options, config.Markdown.Languages...).Format(input)
		if err != nil {
			return "", fmt.Errorf("failed to format Markdown in %s: %w", filename, err)
		}
	} else {
		formatted = formatter.NewScriptFormatter(options).Format(input)
	}

	return strings.TrimRight(formatted, "\n") + "\n", nil
}
