package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/chris-regnier/diarycal/internal/entry"
)

// FormatEntryFull prints an entry with a date header. The markdownStyle
// parameter controls glamour rendering; "" prints the raw text.
func FormatEntryFull(w io.Writer, e entry.Entry, markdownStyle string) {
	fmt.Fprintf(w, "Date: %s (%s)\n\n", e.DateString(), e.Date.Weekday())
	if markdownStyle == "" {
		fmt.Fprintln(w, e.Text)
		return
	}
	fmt.Fprintln(w, RenderMarkdown(e.Text, 80, markdownStyle))
}

// FormatDates prints one yyyy-MM-dd date per line.
func FormatDates(w io.Writer, dates []time.Time) {
	if len(dates) == 0 {
		fmt.Fprintln(w, "No diary entries found.")
		return
	}
	for _, d := range dates {
		fmt.Fprintln(w, entry.FormatDate(d))
	}
}

// FormatStatus prints the streak summary.
func FormatStatus(w io.Writer, s StatusResult) {
	mark := "✗"
	if s.Today {
		mark = "✓"
	}
	fmt.Fprintf(w, "Today:          %s\n", mark)
	fmt.Fprintf(w, "Entries:        %d\n", s.Total)
	fmt.Fprintf(w, "Current streak: %d\n", s.CurrentStreak)
	fmt.Fprintf(w, "Longest streak: %d\n", s.LongestStreak)
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EntryJSON is the JSON representation of an entry.
type EntryJSON struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

// ToEntryJSON converts an entry for JSON output.
func ToEntryJSON(e entry.Entry) EntryJSON {
	return EntryJSON{Date: e.DateString(), Text: e.Text}
}

// DatesResult is the JSON representation of the dates holding entries.
type DatesResult struct {
	Dates []string `json:"dates"`
}

// ToDatesResult converts dates for JSON output.
func ToDatesResult(dates []time.Time) DatesResult {
	out := DatesResult{Dates: make([]string, len(dates))}
	for i, d := range dates {
		out.Dates[i] = entry.FormatDate(d)
	}
	return out
}

// RemoveResult is the JSON representation for remove output.
type RemoveResult struct {
	Date    string `json:"date"`
	Removed bool   `json:"removed"`
}

// StatusResult summarises diary activity.
type StatusResult struct {
	Today         bool `json:"today"`
	Total         int  `json:"total"`
	CurrentStreak int  `json:"current_streak"`
	LongestStreak int  `json:"longest_streak"`
}
