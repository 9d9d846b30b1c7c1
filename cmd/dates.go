package cmd

import (
	"io"

	"github.com/chris-regnier/diarycal/internal/ui"
	"github.com/spf13/cobra"
)

var datesCmd = &cobra.Command{
	Use:   "dates",
	Short: "List the days that have an entry",
	Example: `  diarycal dates
  diarycal dates --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return datesRun(cmd.OutOrStdout())
	},
}

func datesRun(w io.Writer) error {
	dates, err := store.ListDates()
	if err != nil {
		return err
	}
	if jsonOutput {
		return ui.FormatJSON(w, ui.ToDatesResult(dates))
	}
	ui.FormatDates(w, dates)
	return nil
}

func init() {
	rootCmd.AddCommand(datesCmd)
}
