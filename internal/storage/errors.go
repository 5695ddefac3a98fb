package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no post has the requested id.
	ErrNotFound = errors.New("post not found")

	// ErrNotInitialized is returned by Open when the database file or the
	// posts table does not exist yet.
	ErrNotInitialized = errors.New("database not initialized")

	// ErrAlreadyInitialized is returned by Initialize when a posts table exists.
	ErrAlreadyInitialized = errors.New("posts table already exists")
)

// InitError reports a failure to create or open the database file.
type InitError struct {
	Path string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initializing database %s: %v", e.Path, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// WriteError reports a failed mutation (insert, update or delete).
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s post: %v", e.Op, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if the error indicates a missing post.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsNotInitialized returns true if the database has not been set up with init.
func IsNotInitialized(err error) bool {
	return errors.Is(err, ErrNotInitialized)
}
