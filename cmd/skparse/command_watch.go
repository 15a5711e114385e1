package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/SkEditorPlus/skparse"
)

// WatchCmd represents the watch command
type WatchCmd struct {
	Paths []string `arg:"" optional:"" help:"Directories or files to watch (default: input_dir)"`
}

// Run executes the watch command
func (cmd *WatchCmd) Run(ctx *Context) error {
	config, err := ctx.loadConfig()
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cmd.watch(runCtx, ctx, config, nil)
}

// watch checks every input once, then again the files that changed, after
// the configured debounce delay. checked is called after each round.
func (cmd *WatchCmd) watch(runCtx context.Context, ctx *Context, config *skparse.Config, checked func(checkSummary)) error {
	paths := cmd.Paths
	if len(paths) == 0 {
		paths = []string{config.InputDir}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := addWatch(watcher, path); err != nil {
			return err
		}
	}

	analyzer := ctx.analyzer(config)

	round := func(files []string) error {
		summary, err := checkFiles(ctx, analyzer, files)
		if err != nil {
			return err
		}

		if !ctx.Quiet {
			printSummary(ctx.Stdout, summary)
		}

		if checked != nil {
			checked(summary)
		}

		return nil
	}

	files, err := collectFiles(config, paths)
	if err != nil {
		return err
	}

	if err := round(files); err != nil {
		return err
	}

	debounce := time.NewTimer(config.DebounceDuration())
	debounce.Stop()

	pending := map[string]struct{}{}

	for {
		select {
		case <-runCtx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) && isDirectory(event.Name) {
				if err := addWatch(watcher, event.Name); err != nil {
					ctx.Logger.Warn("Failed to watch directory", "dir", event.Name, "error", err)
				}

				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			if !isInput(config, event.Name) {
				continue
			}

			ctx.Logger.Debug("File changed", "file", event.Name, "op", event.Op.String())
			pending[event.Name] = struct{}{}
			debounce.Reset(config.DebounceDuration())

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			ctx.Logger.Warn("Watcher error", "error", err)

		case <-debounce.C:
			changed := make([]string, 0, len(pending))
			for file := range pending {
				if fileExists(file) {
					changed = append(changed, file)
				}
			}

			clear(pending)
			slices.Sort(changed)

			if len(changed) == 0 {
				continue
			}

			if err := round(changed); err != nil {
				ctx.Logger.Error("Check failed", "error", err)
			}
		}
	}
}

// addWatch watches path, every directory below it when it is a directory.
func addWatch(watcher *fsnotify.Watcher, path string) error {
	if !isDirectory(path) {
		return watcher.Add(filepath.Dir(path))
	}

	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if err := watcher.Add(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}

		return nil
	})
}
