package diary

import (
	"sort"
	"time"

	"github.com/chris-regnier/diarycal/internal/entry"
)

// Streaks counts runs of consecutive days with entries. current is the run
// ending today, or ending yesterday while today is still unwritten; longest
// is the longest run anywhere in dates.
func Streaks(dates []time.Time, today time.Time) (current, longest int) {
	daySet := make(map[string]bool, len(dates))
	for _, d := range dates {
		daySet[entry.FormatDate(d)] = true
	}

	check := entry.Day(today)
	if !daySet[entry.FormatDate(check)] {
		check = check.AddDate(0, 0, -1)
	}
	for daySet[entry.FormatDate(check)] {
		current++
		check = check.AddDate(0, 0, -1)
	}

	sorted := make([]time.Time, 0, len(daySet))
	for _, d := range dates {
		sorted = append(sorted, entry.Day(d))
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	run := 0
	var prev time.Time
	for i, d := range sorted {
		switch {
		case i > 0 && d.Equal(prev):
			continue
		case i > 0 && d.Equal(prev.AddDate(0, 0, 1)):
			run++
		default:
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = d
	}

	return current, longest
}
