package mcptools

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/chris-regnier/diarycal/internal/diary"
	"github.com/chris-regnier/diarycal/internal/entry"
	"github.com/chris-regnier/diarycal/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// toolDisplay feeds one tool call's date and text to the controller and
// keeps the user-facing error it reports.
type toolDisplay struct {
	date time.Time
	text string
	err  error
}

func (d *toolDisplay) SelectedDate() time.Time { return d.date }
func (d *toolDisplay) Text() string            { return d.text }
func (d *toolDisplay) SetText(text string)     { d.text = text }
func (d *toolDisplay) ClearHighlights()        {}
func (d *toolDisplay) Highlight(time.Time)     {}
func (d *toolDisplay) ReportError(err error)   { d.err = err }
func (d *toolDisplay) ReportStatus(string)     {}

// run executes op against a fresh controller. A failure returns the
// described error the controller reported.
func run(store storage.Store, logger *log.Logger, d *toolDisplay, op func(*diary.Controller) error) error {
	ctrl := diary.New(store, d, diary.WithLogger(logger))
	if err := op(ctrl); err != nil {
		if d.err != nil {
			return d.err
		}
		return err
	}
	return nil
}

// GetEntryHandler returns the handler function for the get_entry MCP tool.
func GetEntryHandler(store storage.Store) func(ctx context.Context, req *mcp.CallToolRequest, input DateInput) (*mcp.CallToolResult, EntryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DateInput) (*mcp.CallToolResult, EntryOutput, error) {
		date, err := entry.ParseDate(input.Date)
		if err != nil {
			return nil, EntryOutput{}, err
		}

		out := EntryOutput{Date: entry.FormatDate(date)}
		e, err := store.Get(date)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, out, nil
		case err != nil:
			return nil, EntryOutput{}, err
		}
		out.Found = true
		out.Text = e.Text
		return nil, out, nil
	}
}

// ListDatesHandler returns the handler function for the list_dates MCP tool.
func ListDatesHandler(store storage.Store) func(ctx context.Context, req *mcp.CallToolRequest, input ListDatesInput) (*mcp.CallToolResult, ListDatesOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListDatesInput) (*mcp.CallToolResult, ListDatesOutput, error) {
		var from, to time.Time
		var err error
		if input.From != "" {
			if from, err = entry.ParseDate(input.From); err != nil {
				return nil, ListDatesOutput{}, err
			}
		}
		if input.To != "" {
			if to, err = entry.ParseDate(input.To); err != nil {
				return nil, ListDatesOutput{}, err
			}
		}

		dates, err := store.ListDates()
		if err != nil {
			return nil, ListDatesOutput{}, err
		}

		out := ListDatesOutput{Dates: []string{}}
		for _, d := range dates {
			if !from.IsZero() && d.Before(from) {
				continue
			}
			if !to.IsZero() && d.After(to) {
				continue
			}
			out.Dates = append(out.Dates, entry.FormatDate(d))
		}
		return nil, out, nil
	}
}

func writeHandler(store storage.Store, logger *log.Logger, op func(*diary.Controller) error) func(ctx context.Context, req *mcp.CallToolRequest, input WriteInput) (*mcp.CallToolResult, WriteOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input WriteInput) (*mcp.CallToolResult, WriteOutput, error) {
		date, err := entry.ParseDate(input.Date)
		if err != nil {
			return nil, WriteOutput{}, err
		}

		d := &toolDisplay{date: date, text: input.Text}
		if err := run(store, logger, d, op); err != nil {
			return nil, WriteOutput{}, err
		}

		e := entry.Entry{Date: date, Text: input.Text}
		return nil, WriteOutput{Date: e.DateString(), Preview: e.Preview(100)}, nil
	}
}

// AddEntryHandler returns the handler function for the add_entry MCP tool.
func AddEntryHandler(store storage.Store, logger *log.Logger) func(ctx context.Context, req *mcp.CallToolRequest, input WriteInput) (*mcp.CallToolResult, WriteOutput, error) {
	return writeHandler(store, logger, (*diary.Controller).OnAdd)
}

// UpdateEntryHandler returns the handler function for the update_entry MCP tool.
func UpdateEntryHandler(store storage.Store, logger *log.Logger) func(ctx context.Context, req *mcp.CallToolRequest, input WriteInput) (*mcp.CallToolResult, WriteOutput, error) {
	return writeHandler(store, logger, (*diary.Controller).OnUpdate)
}

// RemoveEntryHandler returns the handler function for the remove_entry MCP tool.
func RemoveEntryHandler(store storage.Store, logger *log.Logger) func(ctx context.Context, req *mcp.CallToolRequest, input RemoveInput) (*mcp.CallToolResult, RemoveOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RemoveInput) (*mcp.CallToolResult, RemoveOutput, error) {
		date, err := entry.ParseDate(input.Date)
		if err != nil {
			return nil, RemoveOutput{}, err
		}

		out := RemoveOutput{Date: entry.FormatDate(date)}
		if !input.Confirm {
			return nil, out, nil
		}

		d := &toolDisplay{date: date}
		err = run(store, logger, d, func(c *diary.Controller) error {
			return c.OnRemove(diary.Confirmed)
		})
		if err != nil {
			return nil, RemoveOutput{}, err
		}
		out.Removed = true
		return nil, out, nil
	}
}
