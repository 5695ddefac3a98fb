package editor

import (
	"errors"
	"fmt"
)

// ErrEditorNotConfigured is returned when neither the config file nor
// $EDITOR names an editor.
var ErrEditorNotConfigured = errors.New("no editor configured (set $EDITOR)")

// TempFileError reports that the scratch file could not be created.
type TempFileError struct {
	Dir string
	Err error
}

func (e *TempFileError) Error() string {
	return fmt.Sprintf("creating scratch file in %s: %v", e.Dir, e.Err)
}

func (e *TempFileError) Unwrap() error { return e.Err }

// ProcessError reports that the editor could not be started or exited with a failure status.
type ProcessError struct {
	Editor   string
	ExitCode int // -1 if the process never ran
	Err      error
}

func (e *ProcessError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("editor %q exited with status %d", e.Editor, e.ExitCode)
	}
	return fmt.Sprintf("running editor %q: %v", e.Editor, e.Err)
}

func (e *ProcessError) Unwrap() error { return e.Err }

// ContentReadError reports that the edited file could not be read back.
type ContentReadError struct {
	Path string
	Err  error
}

func (e *ContentReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ContentReadError) Unwrap() error { return e.Err }
