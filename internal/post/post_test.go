package post

import (
	"sort"
	"testing"
	"time"
)

func TestFormatTimestamp_UTCFixedWidth(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)
	ts := time.Date(2024, 3, 9, 7, 5, 1, 120000000, loc)

	got := FormatTimestamp(ts)
	want := "2024-03-09T12:05:01.120000000Z"
	if got != want {
		t.Errorf("FormatTimestamp() = %q, want %q", got, want)
	}
}

func TestFormatTimestamp_Sortable(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{
		base.Add(10 * time.Millisecond),
		base,
		base.Add(1 * time.Nanosecond),
		base.Add(time.Second),
	}

	var stamps []string
	for _, ts := range times {
		stamps = append(stamps, FormatTimestamp(ts))
	}
	sort.Strings(stamps)

	for i := 1; i < len(stamps); i++ {
		prev, _ := ParseTimestamp(stamps[i-1])
		cur, _ := ParseTimestamp(stamps[i])
		if !prev.Before(cur) {
			t.Errorf("lexical order %q then %q is not chronological", stamps[i-1], stamps[i])
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"fixed width", "2024-03-09T12:05:01.120000000Z", false},
		{"offset form", "2024-03-09T12:05:01.12+00:00", false},
		{"no fraction", "2024-03-09T12:05:01Z", false},
		{"garbage", "yesterday", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTimestamp(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseTimestamp(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestSeedAndUntitled(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	seed := Seed(now)
	if seed.Title != "Hello, World!" {
		t.Errorf("Seed().Title = %q", seed.Title)
	}
	if seed.Body != "Hello, World! Welcome to my **dablog**." {
		t.Errorf("Seed().Body = %q", seed.Body)
	}
	if seed.ID != 0 {
		t.Errorf("Seed().ID = %d, want 0 (unsaved)", seed.ID)
	}

	p := Untitled("My test body", now)
	if p.Title != "Untitled post" || p.Body != "My test body" {
		t.Errorf("Untitled() = %+v", p)
	}
	if !p.Created().Equal(now) {
		t.Errorf("Created() = %v, want %v", p.Created(), now)
	}
}
