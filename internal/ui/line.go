package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/chris-regnier/diarycal/internal/diary"
	"github.com/chris-regnier/diarycal/internal/entry"
)

// LineDisplay is a diary.Display for one-shot commands: the selected date
// and buffer are fixed up front, status goes to Out and errors to Err.
type LineDisplay struct {
	Date  time.Time
	Buf   string
	Out   io.Writer // nil suppresses status lines
	Err   io.Writer
	Marks map[string]bool
}

var _ diary.Display = (*LineDisplay)(nil)

// NewLineDisplay creates a LineDisplay for date with initial text.
func NewLineDisplay(date time.Time, text string, out, errOut io.Writer) *LineDisplay {
	return &LineDisplay{
		Date:  entry.Day(date),
		Buf:   text,
		Out:   out,
		Err:   errOut,
		Marks: map[string]bool{},
	}
}

// SelectedDate implements diary.Display.
func (d *LineDisplay) SelectedDate() time.Time { return d.Date }

// Text implements diary.Display.
func (d *LineDisplay) Text() string { return d.Buf }

// SetText implements diary.Display.
func (d *LineDisplay) SetText(text string) { d.Buf = text }

// ClearHighlights implements diary.Display.
func (d *LineDisplay) ClearHighlights() { d.Marks = map[string]bool{} }

// Highlight implements diary.Display.
func (d *LineDisplay) Highlight(date time.Time) { d.Marks[entry.FormatDate(date)] = true }

// ReportError implements diary.Display.
func (d *LineDisplay) ReportError(err error) {
	if d.Err != nil {
		fmt.Fprintln(d.Err, "Error:", err)
	}
}

// ReportStatus implements diary.Display.
func (d *LineDisplay) ReportStatus(msg string) {
	if d.Out != nil {
		fmt.Fprintln(d.Out, msg)
	}
}
