package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dablog/dablog/internal/storage"
	"github.com/spf13/cobra"
)

// errUnsupported marks verbs that are accepted but not implemented.
var errUnsupported = errors.New("not supported yet")

// usageError is a malformed invocation; its usage text is printed with the message.
type usageError struct {
	msg   string
	usage string
}

func (e *usageError) Error() string {
	return e.msg
}

func newUsageError(cmd *cobra.Command, format string, args ...interface{}) error {
	return &usageError{msg: fmt.Sprintf(format, args...), usage: cmd.UsageString()}
}

// configError wraps failures to resolve configuration.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }

func (e *configError) Unwrap() error { return e.err }

// unsupported returns the error reported by placeholder verbs.
func unsupported(verb string) error {
	return fmt.Errorf("%s is %w", verb, errUnsupported)
}

// exactlyOneID validates that a command got a single integer ID argument.
func exactlyOneID(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return newUsageError(cmd, "%s requires exactly one ID argument", cmd.Name())
	}
	if _, err := parseID(args[0]); err != nil {
		return newUsageError(cmd, "%v", err)
	}
	return nil
}

// parseID parses a post id given on the command line.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q: must be an integer", s)
	}
	return id, nil
}

// hintFor returns a follow-up line for errors the user can fix.
func hintFor(err error) string {
	if storage.IsNotInitialized(err) {
		return "Hint: run 'dablog init' to create the database"
	}
	return ""
}
