package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/chris-regnier/diarycal/internal/editor"
	"github.com/chris-regnier/diarycal/internal/entry"
	"github.com/chris-regnier/diarycal/internal/storage"
	"github.com/chris-regnier/diarycal/internal/ui"
	"github.com/spf13/cobra"
)

// editFunc opens text in an editor; tests replace it.
var editFunc = editor.Edit

var editCmd = &cobra.Command{
	Use:   "edit [date]",
	Short: "Edit the entry for a day in $EDITOR",
	Long: `Open the diary entry for a day (default today) in your editor.

The entry is added if the day has none yet and updated otherwise. Leaving
the file unchanged or empty saves nothing.`,
	Example: `  diarycal edit
  diarycal edit 2024-03-01`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateArg(args)
		if err != nil {
			return err
		}
		return editRun(cmd.OutOrStdout(), cmd.ErrOrStderr(), date)
	},
}

func editRun(out, errOut io.Writer, date time.Time) error {
	var current string
	e, err := store.Get(date)
	switch {
	case err == nil:
		current = e.Text
	case !errors.Is(err, storage.ErrNotFound):
		return err
	}

	day := entry.FormatDate(date)
	text, changed, err := editFunc(editor.ResolveEditor(appConfig.Editor), day, current)
	if err != nil {
		return err
	}
	if !changed {
		if !jsonOutput {
			fmt.Fprintf(out, "No changes to %s.\n", day)
		}
		return nil
	}

	ctrl := lineController(date, text, out, errOut)
	if err := ctrl.OnSave(); err != nil {
		return shown(err)
	}
	if jsonOutput {
		return ui.FormatJSON(out, ui.ToEntryJSON(entry.Entry{Date: date, Text: text}))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(editCmd)
}
