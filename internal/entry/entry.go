package entry

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the on-disk and on-the-wire representation of an entry date.
const DateLayout = "2006-01-02"

// Entry is the diary text for one calendar day.
type Entry struct {
	Date time.Time `json:"date"`
	Text string    `json:"text"`
}

// Day truncates t to local midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// Today returns the local midnight of the current day.
func Today() time.Time {
	return Day(time.Now())
}

// FormatDate renders a date as yyyy-MM-dd.
func FormatDate(t time.Time) string {
	return Day(t).Format(DateLayout)
}

// ParseDate parses a yyyy-MM-dd string in the local timezone.
// The words "today" and "yesterday" are accepted as well.
func ParseDate(s string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return Today(), nil
	case "yesterday":
		return Today().AddDate(0, 0, -1), nil
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// Preview returns a single-line, truncated preview of the entry text.
func (e *Entry) Preview(maxLen int) string {
	text := strings.ReplaceAll(e.Text, "\n", " ")
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen-3] + "..."
}

// DateString returns the entry date as yyyy-MM-dd.
func (e *Entry) DateString() string {
	return FormatDate(e.Date)
}
