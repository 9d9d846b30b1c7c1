package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/diarycal/internal/entry"
)

// cellWidth is the rendered width of one calendar day, e.g. ">12•".
const cellWidth = 4

// MonthView describes one rendered month.
type MonthView struct {
	Month       time.Time       // any day within the month to render
	Selected    time.Time       // zero for no selection
	Today       time.Time       // zero to skip the today marker
	Highlights  map[string]bool // yyyy-MM-dd -> has entry
	MondayFirst bool
}

// Weekdays returns the column order of a calendar week.
func Weekdays(mondayFirst bool) []time.Weekday {
	days := make([]time.Weekday, 7)
	for i := range days {
		if mondayFirst {
			days[i] = time.Weekday((i + 1) % 7)
		} else {
			days[i] = time.Weekday(i)
		}
	}
	return days
}

// column returns the 0-based grid column of a weekday.
func column(wd time.Weekday, mondayFirst bool) int {
	if mondayFirst {
		return (int(wd) + 6) % 7
	}
	return int(wd)
}

// RenderMonth draws a month grid. Days with an entry carry a "•" marker and
// the highlight colour; the selected day is prefixed with ">" and reversed;
// today is underlined.
func (t Theme) RenderMonth(v MonthView) string {
	first := time.Date(v.Month.Year(), v.Month.Month(), 1, 0, 0, 0, 0, time.Local)
	daysIn := first.AddDate(0, 1, -1).Day()
	gridWidth := cellWidth * 7

	var b strings.Builder

	title := first.Format("January 2006")
	b.WriteString(t.HeaderStyle().Width(gridWidth).Align(lipgloss.Center).Render(title))
	b.WriteString("\n")

	var header strings.Builder
	for _, wd := range Weekdays(v.MondayFirst) {
		fmt.Fprintf(&header, " %2s ", wd.String()[:2])
	}
	b.WriteString(t.HelpStyle().Render(header.String()))

	col := column(first.Weekday(), v.MondayFirst)
	row := strings.Repeat(" ", col*cellWidth)
	for day := 1; day <= daysIn; day++ {
		date := first.AddDate(0, 0, day-1)
		row += t.renderDay(date, v)
		col++
		if col == 7 {
			b.WriteString("\n" + row)
			row = ""
			col = 0
		}
	}
	if row != "" {
		b.WriteString("\n" + row)
	}

	return b.String()
}

func (t Theme) renderDay(date time.Time, v MonthView) string {
	selected := !v.Selected.IsZero() && entry.SameDay(date, v.Selected)
	marked := v.Highlights[entry.FormatDate(date)]

	prefix, suffix := " ", " "
	if selected {
		prefix = ">"
	}
	if marked {
		suffix = "•"
	}
	cell := fmt.Sprintf("%s%2d%s", prefix, date.Day(), suffix)

	style := lipgloss.NewStyle()
	if marked {
		style = t.HighlightStyle()
	}
	if !v.Today.IsZero() && entry.SameDay(date, v.Today) {
		style = style.Underline(true).Bold(true)
	}
	if selected {
		style = style.Reverse(true)
	}
	return style.Render(cell)
}

// HighlightSet builds the lookup used by MonthView from a list of dates.
func HighlightSet(dates []time.Time) map[string]bool {
	set := make(map[string]bool, len(dates))
	for _, d := range dates {
		set[entry.FormatDate(d)] = true
	}
	return set
}

// addMonths moves by n months, clamping the day to the target month's length.
func addMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, n, 0)
	last := first.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.Local)
}
