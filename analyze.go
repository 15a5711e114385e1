package skparse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/SkEditorPlus/skparse/elements"
	"github.com/SkEditorPlus/skparse/markdownparser"
	"github.com/SkEditorPlus/skparse/outline"
	"github.com/SkEditorPlus/skparse/parser"
	cmn "github.com/SkEditorPlus/skparse/parser/parsercommon"
	"github.com/SkEditorPlus/skparse/registry"
)

// Analyzer parses and resolves documents with one set of registries.
type Analyzer struct {
	config *Config
	regs   *registry.Registries
	logger *slog.Logger
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithRegistries replaces the built-in registries.
func WithRegistries(regs *registry.Registries) AnalyzerOption {
	return func(a *Analyzer) {
		a.regs = regs
	}
}

// WithLogger sets the logger handed to every parsing context.
func WithLogger(logger *slog.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAnalyzer creates an analyzer. Without WithRegistries the built-in
// elements are registered. Addons listed in parser.disabled_addons are
// unloaded either way.
func NewAnalyzer(config *Config, opts ...AnalyzerOption) *Analyzer {
	if config == nil {
		config = getDefaultConfig()
	}

	a := &Analyzer{
		config: config,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.regs == nil {
		a.regs = registry.NewRegistries()
		elements.Register(a.regs)
	}

	for _, id := range config.Parser.DisabledAddons {
		if removed := a.regs.Unload(registry.Addon{ID: id}); removed == 0 {
			a.logger.Warn("Disabled addon is not registered", "addon", id)
		} else {
			a.logger.Debug("Unloaded addon", "addon", id, "entries", removed)
		}
	}

	return a
}

// Registries returns the registries the analyzer resolves against.
func (a *Analyzer) Registries() *registry.Registries { return a.regs }

// Analyze parses and resolves one script.
func (a *Analyzer) Analyze(name string, lines []string) *Result {
	logger := a.logger.With("document", name)

	options := parser.DefaultOptions
	if a.config.Parser.Debug {
		options.Logger = logger
	}

	tree := parser.ParseWithOptions(lines, options)
	ctx := a.regs.NewParsingContext(
		cmn.WithLogger(logger),
		cmn.WithLanguage(a.config.LanguageTag()),
	)

	parser.ResolveAll(tree, ctx)

	return &Result{
		Name:    name,
		Tree:    tree,
		Context: ctx,
		config:  a.config,
	}
}

// AnalyzeSource analyzes script text.
func (a *Analyzer) AnalyzeSource(name, source string) *Result {
	return a.Analyze(name, parser.SplitLines(source))
}

// AnalyzeMarkdown analyzes every script block of a Markdown document as an
// independent script. Result lines are document lines.
func (a *Analyzer) AnalyzeMarkdown(name string, reader io.Reader) ([]*Result, error) {
	doc, err := markdownparser.Parse(reader, a.config.Markdown.Languages...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	if len(doc.Blocks) == 0 {
		return nil, fmt.Errorf("%w: %s", markdownparser.ErrNoScriptBlock, name)
	}

	results := make([]*Result, 0, len(doc.Blocks))

	for i, block := range doc.Blocks {
		result := a.Analyze(fmt.Sprintf("%s#%d", name, i+1), block.Lines)
		result.LineOffset = block.DocumentLine(1) - 1
		results = append(results, result)
	}

	return results, nil
}

// AnalyzeFile analyzes a script or a Markdown file.
func (a *Analyzer) AnalyzeFile(path string) ([]*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadFile, path, err)
	}

	switch {
	case strings.EqualFold(filepath.Ext(path), ".md"):
		return a.AnalyzeMarkdown(path, bytes.NewReader(data))
	case a.config.HasScriptExtension(path):
		return []*Result{a.AnalyzeSource(path, string(data))}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
}

// IsSkipped reports whether err only means a file holds nothing to check.
func IsSkipped(err error) bool {
	return errors.Is(err, markdownparser.ErrNoScriptBlock) || errors.Is(err, ErrUnsupportedFile)
}

// Result is the resolved tree of one script.
type Result struct {
	Name    string
	Tree    *cmn.Tree
	Context *cmn.ParsingContext
	// LineOffset is added to node lines to get document lines.
	LineOffset int

	config *Config
}

// Diagnostics returns the reported diagnostics at document lines, without
// the disabled codes.
func (r *Result) Diagnostics() []cmn.Diagnostic {
	diagnostics := []cmn.Diagnostic{}

	for _, d := range r.Context.Diagnostics() {
		if r.config.IsDisabled(d.Warning.Code) {
			continue
		}

		d.Line += r.LineOffset
		diagnostics = append(diagnostics, d)
	}

	return diagnostics
}

// Failed reports whether a diagnostic reaches the configured fail_on severity.
func (r *Result) Failed() bool {
	threshold, ok := r.config.FailOnSeverity()
	if !ok {
		return false
	}

	for _, d := range r.Diagnostics() {
		if d.Severity >= threshold {
			return true
		}
	}

	return false
}

// Outline exports the result for editors.
func (r *Result) Outline() outline.Outline {
	return outline.New(r.Tree, r.Diagnostics(), r.LineOffset)
}
