package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/SkEditorPlus/skparse"
)

// Version is set at build time.
var Version = "v0.1.0"

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool

	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// loadConfig loads the configuration named by --config.
func (c *Context) loadConfig() (*skparse.Config, error) {
	config, err := skparse.LoadConfig(c.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return config, nil
}

// analyzer creates an analyzer logging through the context logger.
func (c *Context) analyzer(config *skparse.Config) *skparse.Analyzer {
	return skparse.NewAnalyzer(config, skparse.WithLogger(c.Logger))
}

// CLI represents the command-line interface
var CLI struct {
	Config  string     `help:"Configuration file path" default:"skparse.yaml"`
	Verbose bool       `help:"Enable verbose output" short:"v"`
	Quiet   bool       `help:"Suppress output" short:"q"`
	Check   CheckCmd   `cmd:"" help:"Parse scripts and report diagnostics"`
	Outline OutlineCmd `cmd:"" help:"Print folding ranges, symbols and diagnostics as JSON"`
	Format  FormatCmd  `cmd:"" help:"Re-indent scripts from their structure"`
	Dump    DumpCmd    `cmd:"" help:"Print the parsed node tree"`
	Watch   WatchCmd   `cmd:"" help:"Check scripts again whenever they change"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	_, err := fmt.Fprintf(ctx.Stdout, "skparse %s\n", Version)
	return err
}

// newLogger writes to stderr; --verbose enables debug records and --quiet
// keeps only errors.
func newLogger(w io.Writer, verbose, quiet bool) *slog.Logger {
	level := slog.LevelWarn

	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("skparse"),
		kong.Description("Structural and semantic checker for Skript scripts"),
		kong.UsageOnError(),
	)

	logger := newLogger(os.Stderr, CLI.Verbose, CLI.Quiet)
	slog.SetDefault(logger)

	appCtx := &Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Logger:  logger,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
