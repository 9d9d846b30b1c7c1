package cmd

import (
	"io"
	"time"

	"github.com/chris-regnier/diarycal/internal/diary"
	"github.com/chris-regnier/diarycal/internal/entry"
	"github.com/chris-regnier/diarycal/internal/ui"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [date] <text|->",
	Short: "Add the entry for a day",
	Long:  "Add the diary entry for a day (default today, date as YYYY-MM-DD). Fails if the day already has one.",
	Example: `  diarycal add "Went hiking"
  diarycal add 2024-03-01 "Spring is coming"
  echo "from a pipe" | diarycal add -`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeCmdRun(cmd, args, (*diary.Controller).OnAdd)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update [date] <text|->",
	Short: "Replace the entry for a day",
	Long:  "Replace the text of an existing diary entry (default today, date as YYYY-MM-DD). Fails if the day has none.",
	Example: `  diarycal update "Went hiking, then it rained"
  echo "new text" | diarycal update 2024-03-01 -`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeCmdRun(cmd, args, (*diary.Controller).OnUpdate)
	},
}

func writeCmdRun(cmd *cobra.Command, args []string, op func(*diary.Controller) error) error {
	date, rest := splitDateText(args)
	text, err := readText(rest)
	if err != nil {
		return err
	}
	return writeRun(cmd.OutOrStdout(), cmd.ErrOrStderr(), date, text, op)
}

func writeRun(out, errOut io.Writer, date time.Time, text string, op func(*diary.Controller) error) error {
	ctrl := lineController(date, text, out, errOut)
	if err := op(ctrl); err != nil {
		return shown(err)
	}
	if jsonOutput {
		return ui.FormatJSON(out, ui.ToEntryJSON(entry.Entry{Date: entry.Day(date), Text: text}))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
}
