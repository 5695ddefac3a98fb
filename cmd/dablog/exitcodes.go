package main

import (
	"errors"

	"github.com/dablog/dablog/internal/editor"
	"github.com/dablog/dablog/internal/storage"
)

// Exit codes
const (
	ExitSuccess     = 0 // Success, help or version
	ExitError       = 1 // General error (storage failure, editor failure)
	ExitConfigError = 2 // Configuration error (no editor, database not initialized, bad config file)
	ExitUsage       = 3 // Malformed arguments or unknown command
	ExitNotFound    = 4 // No post with the given id
	ExitUnsupported = 5 // Command exists but is not implemented yet
)

// exitCodeFor maps an error returned by a command to a process exit code.
func exitCodeFor(err error) int {
	var (
		usage  *usageError
		cfgErr *configError
	)

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usage):
		return ExitUsage
	case errors.Is(err, errUnsupported):
		return ExitUnsupported
	case storage.IsNotFound(err):
		return ExitNotFound
	case storage.IsNotInitialized(err),
		errors.Is(err, editor.ErrEditorNotConfigured),
		errors.As(err, &cfgErr):
		return ExitConfigError
	default:
		return ExitError
	}
}
