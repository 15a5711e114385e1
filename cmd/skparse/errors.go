package main

import "errors"

// Sentinel errors for command operations
var (
	ErrCheckFailed      = errors.New("check failed")
	ErrFileNotFormatted = errors.New("file is not formatted")
	ErrInputNotFound    = errors.New("input file does not exist")
	ErrNoScripts        = errors.New("no scripts found")
)
