package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/SkEditorPlus/skparse"
	"github.com/SkEditorPlus/skparse/formatter"
)

// collectFiles expands paths into the scripts and Markdown documents they
// contain. No paths means the configured input directory.
func collectFiles(config *skparse.Config, paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{config.InputDir}
	}

	var files []string

	for _, path := range paths {
		if !isDirectory(path) {
			if !fileExists(path) {
				return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
			}

			files = append(files, path)

			continue
		}

		err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() || !isInput(config, p) {
				return nil
			}

			files = append(files, p)

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk directory %s: %w", path, err)
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}

// isInput reports whether path is a file the commands read.
func isInput(config *skparse.Config, path string) bool {
	return config.HasScriptExtension(path) || formatter.IsMarkdownFile(path)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// isDirectory checks if a path is a directory
func isDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.IsDir()
}
