package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chris-regnier/diarycal/internal/diary"
	"github.com/chris-regnier/diarycal/internal/entry"
	"github.com/chris-regnier/diarycal/internal/storage"
	"github.com/chris-regnier/diarycal/internal/ui"
	"golang.org/x/term"
)

// stdin is swapped out by tests.
var stdin io.Reader = os.Stdin

// parseDateArg parses the optional leading date argument.
func parseDateArg(args []string) (time.Time, error) {
	var s string
	if len(args) > 0 {
		s = args[0]
	}
	d, err := entry.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}
	return d, nil
}

// readText joins the text arguments; a lone "-" reads stdin.
func readText(args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}
	return strings.Join(args, " "), nil
}

// splitDateText separates an optional leading date from the entry text.
// Only a literal yyyy-MM-dd is taken as the date so words like "today"
// stay part of the text.
func splitDateText(args []string) (time.Time, []string) {
	if len(args) > 1 {
		if d, err := time.ParseInLocation(entry.DateLayout, args[0], time.Local); err == nil {
			return d, args[1:]
		}
	}
	return entry.Today(), args
}

// lineController builds a controller that reports to out/errOut for the
// given day and buffer.
func lineController(date time.Time, text string, out, errOut io.Writer) *diary.Controller {
	d := ui.NewLineDisplay(date, text, out, errOut)
	if jsonOutput {
		d.Out = nil
	}
	return diary.New(store, d, diary.WithLogger(logger))
}

// markdownStyle returns the glamour style for w, or "" when w is not a
// terminal.
func markdownStyle(w io.Writer) string {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return ""
	}
	if style := ui.ResolveTheme(appConfig.Theme).MarkdownStyle; style != "" {
		return style
	}
	return "dark"
}
