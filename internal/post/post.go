// Package post defines the journal entry type stored by dablog.
package post

import (
	"fmt"
	"time"
)

// Post is a single journal entry.
type Post struct {
	ID        int64  `json:"id" db:"id"`
	CreatedAt string `json:"created_at" db:"created_at"` // TimestampLayout, UTC
	Title     string `json:"title" db:"title"`
	Body      string `json:"body" db:"body"`
}

// Fixed content for the posts dablog creates on its own.
const (
	SeedTitle     = "Hello, World!"
	SeedBody      = "Hello, World! Welcome to my **dablog**."
	UntitledTitle = "Untitled post" // editor-created posts have no title yet
)

// TimestampLayout is RFC 3339 with fixed-width nanoseconds, so that
// lexical order of stored timestamps matches chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// New builds an unsaved post created at now.
func New(title, body string, now time.Time) Post {
	return Post{
		CreatedAt: FormatTimestamp(now),
		Title:     title,
		Body:      body,
	}
}

// Seed returns the greeting post written by init.
func Seed(now time.Time) Post {
	return New(SeedTitle, SeedBody, now)
}

// Untitled returns a post holding editor output under the placeholder title.
func Untitled(body string, now time.Time) Post {
	return New(UntitledTitle, body, now)
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a stored created_at value.
// Any RFC 3339 timestamp is accepted, including ones written by older tools.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}

// Created returns the parsed creation time, or the zero time if it is malformed.
func (p Post) Created() time.Time {
	t, _ := ParseTimestamp(p.CreatedAt)
	return t
}
