// Package editor runs the user's text editor on a scratch file and
// returns what was written.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

// EnvVar names the environment variable holding the editor command.
const EnvVar = "EDITOR"

// scratchPattern is passed to os.CreateTemp; the suffix lets editors pick Markdown mode.
const scratchPattern = "dablog-*.md"

// Resolve returns the editor command to run. A configured value wins over $EDITOR.
func Resolve(configured string, getenv func(string) string) (string, error) {
	if s := strings.TrimSpace(configured); s != "" {
		return s, nil
	}
	if s := strings.TrimSpace(getenv(EnvVar)); s != "" {
		return s, nil
	}
	return "", ErrEditorNotConfigured
}

// Bridge hands a scratch file to an external editor.
type Bridge struct {
	Editor  string // command line, e.g. "vim" or "code --wait"
	TempDir string // empty means os.TempDir()

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Logger *zap.Logger
}

// New creates a Bridge attached to the process's terminal.
func New(editorCmd string, logger *zap.Logger) *Bridge {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bridge{
		Editor: editorCmd,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}
}

func (b *Bridge) logger() *zap.Logger {
	if b.Logger == nil {
		return zap.NewNop()
	}
	return b.Logger
}

// Compose creates an empty, uniquely named scratch file and returns its path.
func (b *Bridge) Compose() (string, error) {
	f, err := os.CreateTemp(b.TempDir, scratchPattern)
	if err != nil {
		dir := b.TempDir
		if dir == "" {
			dir = os.TempDir()
		}
		return "", &TempFileError{Dir: dir, Err: err}
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", &TempFileError{Dir: b.TempDir, Err: err}
	}
	return path, nil
}

// waitDelay bounds how long Edit waits for the editor's output pipes after
// the context kills it.
const waitDelay = 2 * time.Second

// commandLine splits an editor setting into program and arguments.
// A value naming an existing executable is used whole, so paths may contain spaces.
func commandLine(editorCmd string) (string, []string) {
	editorCmd = strings.TrimSpace(editorCmd)
	if editorCmd == "" {
		return "", nil
	}
	if _, err := exec.LookPath(editorCmd); err == nil {
		return editorCmd, nil
	}
	fields := strings.Fields(editorCmd)
	return fields[0], fields[1:]
}

// Edit runs the editor on path and blocks until it exits or ctx is cancelled.
// Cancelling ctx kills the editor.
func (b *Bridge) Edit(ctx context.Context, path string) error {
	program, args := commandLine(b.Editor)
	if program == "" {
		return ErrEditorNotConfigured
	}

	cmd := exec.CommandContext(ctx, program, append(args, path)...)
	cmd.Stdin = b.Stdin
	cmd.Stdout = b.Stdout
	cmd.Stderr = b.Stderr
	cmd.WaitDelay = waitDelay

	b.logger().Debug("launching editor", zap.String("editor", b.Editor), zap.String("path", path))
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return &ProcessError{Editor: b.Editor, ExitCode: -1, Err: fmt.Errorf("editor interrupted: %w", ctx.Err())}
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ProcessError{Editor: b.Editor, ExitCode: exitErr.ExitCode(), Err: err}
		}
		return &ProcessError{Editor: b.Editor, ExitCode: -1, Err: err}
	}
	return nil
}

// Collect reads the edited file as UTF-8 text.
func (b *Bridge) Collect(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ContentReadError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &ContentReadError{Path: path, Err: fmt.Errorf("content is not valid UTF-8")}
	}
	return string(data), nil
}

// Run composes a scratch file, edits it and returns its final contents.
// The scratch file is removed on every path.
func (b *Bridge) Run(ctx context.Context) (string, error) {
	path, err := b.Compose()
	if err != nil {
		return "", err
	}
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			b.logger().Warn("removing scratch file", zap.String("path", path), zap.Error(err))
		}
	}()

	if err := b.Edit(ctx, path); err != nil {
		return "", err
	}

	content, err := b.Collect(path)
	if err != nil {
		return "", err
	}

	b.logger().Debug("collected editor output", zap.Int("bytes", len(content)))
	return content, nil
}
