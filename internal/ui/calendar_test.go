package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/diarycal/internal/config"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func testTheme() Theme {
	return ResolveTheme(config.ThemeConfig{Preset: "default-dark"})
}

func TestRenderMonthMondayFirst(t *testing.T) {
	out := testTheme().RenderMonth(MonthView{Month: date(2024, 3, 15), MondayFirst: true})
	lines := plainLines(out)

	if !strings.Contains(lines[0], "March 2024") {
		t.Errorf("title = %q", lines[0])
	}
	if got := strings.Join(strings.Fields(lines[1]), " "); got != "Mo Tu We Th Fr Sa Su" {
		t.Errorf("header = %q", got)
	}
	// 1 March 2024 is a Friday.
	if got := strings.Join(strings.Fields(lines[2]), " "); got != "1 2 3" {
		t.Errorf("first week = %q", got)
	}
	if !strings.HasPrefix(lines[2], strings.Repeat(" ", 4*cellWidth)) {
		t.Errorf("first week not offset to Friday: %q", lines[2])
	}
	last := lines[len(lines)-1]
	if got := strings.Join(strings.Fields(last), " "); got != "25 26 27 28 29 30 31" {
		t.Errorf("last week = %q", got)
	}
}

func TestRenderMonthSundayFirst(t *testing.T) {
	out := testTheme().RenderMonth(MonthView{Month: date(2024, 3, 1)})
	lines := plainLines(out)

	if got := strings.Join(strings.Fields(lines[1]), " "); got != "Su Mo Tu We Th Fr Sa" {
		t.Errorf("header = %q", got)
	}
	if got := strings.Join(strings.Fields(lines[2]), " "); got != "1 2" {
		t.Errorf("first week = %q", got)
	}
}

func TestRenderMonthMarkers(t *testing.T) {
	out := testTheme().RenderMonth(MonthView{
		Month:       date(2024, 3, 1),
		Selected:    date(2024, 3, 5),
		Highlights:  HighlightSet([]time.Time{date(2024, 3, 1), date(2024, 3, 5), date(2024, 4, 1)}),
		MondayFirst: true,
	})
	plain := stripANSI(out)

	if !strings.Contains(plain, " 1•") {
		t.Errorf("expected highlight marker on the 1st: %q", plain)
	}
	if !strings.Contains(plain, "> 5•") {
		t.Errorf("expected selected+highlighted 5th: %q", plain)
	}
	if strings.Count(plain, "•") != 2 {
		t.Errorf("expected exactly 2 markers, got %d", strings.Count(plain, "•"))
	}
	if strings.Count(plain, ">") != 1 {
		t.Errorf("expected exactly one selection, got %d", strings.Count(plain, ">"))
	}
}

func TestAddMonthsClamps(t *testing.T) {
	cases := []struct {
		from time.Time
		n    int
		want time.Time
	}{
		{date(2024, 1, 31), 1, date(2024, 2, 29)},
		{date(2023, 1, 31), 1, date(2023, 2, 28)},
		{date(2024, 3, 15), -1, date(2024, 2, 15)},
		{date(2024, 12, 10), 1, date(2025, 1, 10)},
	}
	for _, tc := range cases {
		if got := addMonths(tc.from, tc.n); !got.Equal(tc.want) {
			t.Errorf("addMonths(%s, %d) = %s, want %s",
				tc.from.Format("2006-01-02"), tc.n, got.Format("2006-01-02"), tc.want.Format("2006-01-02"))
		}
	}
}

func TestWeekdays(t *testing.T) {
	if w := Weekdays(true); w[0] != time.Monday || w[6] != time.Sunday {
		t.Errorf("monday-first = %v", w)
	}
	if w := Weekdays(false); w[0] != time.Sunday || w[6] != time.Saturday {
		t.Errorf("sunday-first = %v", w)
	}
}
