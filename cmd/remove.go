package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/chris-regnier/diarycal/internal/diary"
	"github.com/chris-regnier/diarycal/internal/entry"
	"github.com/chris-regnier/diarycal/internal/ui"
	"github.com/spf13/cobra"
)

var forceRemove bool

var removeCmd = &cobra.Command{
	Use:   "remove [date]",
	Short: "Remove the entry for a day",
	Long:  "Permanently remove the diary entry for a day (default today). Requires confirmation unless --force is used.",
	Example: `  diarycal remove 2024-03-01
  diarycal remove yesterday --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateArg(args)
		if err != nil {
			return err
		}

		confirm := diary.Confirmed
		if !forceRemove {
			if e, err := store.Get(date); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Entry: %s\nPreview: %s\n\n", e.DateString(), e.Preview(60))
			}
			confirm = ui.PromptConfirmer{Theme: ui.ResolveTheme(appConfig.Theme)}
		}
		return removeRun(cmd.OutOrStdout(), cmd.ErrOrStderr(), date, confirm)
	},
}

func removeRun(out, errOut io.Writer, date time.Time, confirm diary.Confirmer) error {
	removed := true
	ask := diary.ConfirmFunc(func(prompt string) (bool, error) {
		ok, err := confirm.Confirm(prompt)
		removed = ok && err == nil
		return ok, err
	})

	ctrl := lineController(date, "", out, errOut)
	if err := ctrl.OnRemove(ask); err != nil {
		return shown(err)
	}
	if jsonOutput {
		return ui.FormatJSON(out, ui.RemoveResult{Date: entry.FormatDate(date), Removed: removed})
	}
	return nil
}

func init() {
	removeCmd.Flags().BoolVar(&forceRemove, "force", false, "skip confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}
