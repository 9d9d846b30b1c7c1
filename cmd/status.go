package cmd

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/chris-regnier/diarycal/internal/diary"
	"github.com/chris-regnier/diarycal/internal/entry"
	"github.com/chris-regnier/diarycal/internal/storage"
	"github.com/chris-regnier/diarycal/internal/ui"
	"github.com/spf13/cobra"
)

var statusFormat string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show entry count and streaks",
	Long: `Show whether today has an entry, how many days have one, and the
current and longest streak of consecutive days.

Use --format with a Go template for custom output, e.g. in a shell prompt.`,
	Example: `  diarycal status
  diarycal status --json
  diarycal status --format "{{if .Today}}✓{{else}}✗{{end}} {{.CurrentStreak}}"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statusRun(cmd.OutOrStdout(), entry.Today(), statusFormat)
	},
}

func statusRun(w io.Writer, today time.Time, format string) error {
	dates, err := store.ListDates()
	if err != nil {
		return err
	}

	res := ui.StatusResult{Total: len(dates)}
	for _, d := range dates {
		if entry.SameDay(d, today) {
			res.Today = true
			break
		}
	}
	res.CurrentStreak, res.LongestStreak = diary.Streaks(dates, today)

	switch {
	case jsonOutput:
		return ui.FormatJSON(w, res)
	case format != "":
		tmpl, err := template.New("status").Parse(format)
		if err != nil {
			return fmt.Errorf("%w: invalid format template: %v", storage.ErrValidation, err)
		}
		if err := tmpl.Execute(w, res); err != nil {
			return fmt.Errorf("%w: executing format template: %v", storage.ErrValidation, err)
		}
		fmt.Fprintln(w)
	default:
		ui.FormatStatus(w, res)
	}
	return nil
}

func init() {
	statusCmd.Flags().StringVar(&statusFormat, "format", "", "Go template for output")
	rootCmd.AddCommand(statusCmd)
}
