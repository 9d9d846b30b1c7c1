package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/chris-regnier/diarycal/internal/entry"
	"github.com/chris-regnier/diarycal/internal/storage"
	"github.com/chris-regnier/diarycal/internal/ui"
	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar [yyyy-mm]",
	Short: "Print a month with its diary days marked",
	Example: `  diarycal calendar
  diarycal calendar 2024-03`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		month := entry.Today()
		if len(args) == 1 {
			m, err := time.ParseInLocation("2006-01", args[0], time.Local)
			if err != nil {
				return fmt.Errorf("%w: invalid month %q (expected YYYY-MM)", storage.ErrValidation, args[0])
			}
			month = m
		}
		return calendarRun(cmd.OutOrStdout(), month)
	},
}

func calendarRun(w io.Writer, month time.Time) error {
	dates, err := store.ListDates()
	if err != nil {
		return err
	}
	if jsonOutput {
		var inMonth []time.Time
		for _, d := range dates {
			if d.Year() == month.Year() && d.Month() == month.Month() {
				inMonth = append(inMonth, d)
			}
		}
		return ui.FormatJSON(w, ui.ToDatesResult(inMonth))
	}

	theme := ui.ResolveTheme(appConfig.Theme)
	fmt.Fprintln(w, theme.RenderMonth(ui.MonthView{
		Month:       month,
		Today:       entry.Today(),
		Highlights:  ui.HighlightSet(dates),
		MondayFirst: appConfig.MondayFirst(),
	}))
	return nil
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}
