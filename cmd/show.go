package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/chris-regnier/diarycal/internal/entry"
	"github.com/chris-regnier/diarycal/internal/storage"
	"github.com/chris-regnier/diarycal/internal/ui"
	"github.com/spf13/cobra"
)

var showTextOnly bool

var showCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show the entry for a day",
	Long:  "Display the diary entry for a day (default today). Markdown is rendered on a terminal.",
	Example: `  diarycal show
  diarycal show 2024-03-01
  diarycal show yesterday --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateArg(args)
		if err != nil {
			return err
		}
		return showRun(cmd.OutOrStdout(), date, showTextOnly)
	},
}

func showRun(w io.Writer, date time.Time, textOnly bool) error {
	e, err := store.Get(date)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: no entry for %s", err, entry.FormatDate(date))
		}
		return err
	}

	switch {
	case jsonOutput:
		return ui.FormatJSON(w, ui.ToEntryJSON(e))
	case textOnly:
		fmt.Fprintln(w, e.Text)
	default:
		ui.FormatEntryFull(w, e, markdownStyle(w))
	}
	return nil
}

func init() {
	showCmd.Flags().BoolVar(&showTextOnly, "text-only", false, "print just the entry text")
	rootCmd.AddCommand(showCmd)
}
