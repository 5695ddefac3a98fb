package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dablog/dablog/internal/post"
)

// stdout and stderr are swapped out by tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Fprintf(stdout, format, args...)
}

// reportError prints err in the selected format and returns the exit code.
func reportError(err error) int {
	code := exitCodeFor(err)

	if jsonOutput {
		outputJSON(ErrorResponse{Error: err.Error(), Code: code})
	} else {
		fmt.Fprintf(stderr, "error: %s\n", err)
		if hint := hintFor(err); hint != "" {
			fmt.Fprintln(stderr, hint)
		}
	}

	var usage *usageError
	if errors.As(err, &usage) {
		fmt.Fprint(stderr, usage.usage)
	}
	return code
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// StatusResponse is a generic response for commands that change the database.
type StatusResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id,omitempty"`
	Path   string `json:"path,omitempty"`
}

// printPost prints a post as its title line followed by its body.
func printPost(p *post.Post) error {
	if jsonOutput {
		return outputJSON(p)
	}
	outputHuman("%s\n%s\n", p.Title, p.Body)
	return nil
}

// printPostList prints one line per post: id, creation time, title.
func printPostList(posts []post.Post) error {
	if jsonOutput {
		return outputJSON(posts)
	}
	for _, p := range posts {
		outputHuman("%d\t%s\t%s\n", p.ID, formatCreated(p), p.Title)
	}
	return nil
}

// listTimeLayout is the local-time form of created_at shown by list.
const listTimeLayout = "2006-01-02 15:04"

// formatCreated renders a post's creation time in local time, falling back
// to the stored value when it does not parse.
func formatCreated(p post.Post) string {
	t := p.Created()
	if t.IsZero() {
		return p.CreatedAt
	}
	return t.Local().Format(listTimeLayout)
}
