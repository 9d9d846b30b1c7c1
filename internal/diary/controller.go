// Package diary mediates between a calendar display and an entry store.
//
// The display owns the selected date and the text buffer; the controller
// reads them on demand, forwards user commands to the store and keeps the
// set of highlighted dates in step with what is stored.
package diary

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/chris-regnier/diarycal/internal/entry"
	"github.com/chris-regnier/diarycal/internal/storage"
)

// RemovePrompt is the question put to the user before an entry is removed.
const RemovePrompt = "Are you sure you want to remove this entry?"

// Display is the presentation side of the diary: a calendar with a
// selected date, a text buffer and per-date highlight marks.
type Display interface {
	SelectedDate() time.Time
	Text() string
	SetText(text string)
	ClearHighlights()
	Highlight(date time.Time)
	ReportError(err error)
	ReportStatus(msg string)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(prompt string) (bool, error)

// Confirm calls f(prompt).
func (f ConfirmFunc) Confirm(prompt string) (bool, error) { return f(prompt) }

// Confirmed is a Confirmer that always answers yes.
var Confirmed Confirmer = ConfirmFunc(func(string) (bool, error) { return true, nil })

// Controller implements the diary commands over a Store and a Display.
type Controller struct {
	store   storage.Store
	display Display
	logger  *log.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for operation outcomes.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Controller. Without WithLogger, logging is discarded.
func New(store storage.Store, display Display, opts ...Option) *Controller {
	c := &Controller{
		store:   store,
		display: display,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnDateSelected loads the entry for date into the buffer, or clears the
// buffer when the date has no entry.
func (c *Controller) OnDateSelected(date time.Time) error {
	e, err := c.store.Get(date)
	switch {
	case err == nil:
		c.display.SetText(e.Text)
		return nil
	case errors.Is(err, storage.ErrNotFound):
		c.display.SetText("")
		return nil
	default:
		return c.fail("loading", date, err)
	}
}

// OnAdd stores the buffer as a new entry for the selected date.
func (c *Controller) OnAdd() error {
	date := entry.Day(c.display.SelectedDate())
	if err := c.store.Add(date, c.display.Text()); err != nil {
		return c.fail("adding", date, err)
	}
	c.succeed("added", date)
	return c.RecomputeHighlights()
}

// OnUpdate replaces the entry for the selected date with the buffer.
func (c *Controller) OnUpdate() error {
	date := entry.Day(c.display.SelectedDate())
	if err := c.store.Update(date, c.display.Text()); err != nil {
		return c.fail("updating", date, err)
	}
	c.succeed("updated", date)
	return c.RecomputeHighlights()
}

// OnSave adds the buffer as the selected date's entry, or updates it when
// one already exists.
func (c *Controller) OnSave() error {
	date := entry.Day(c.display.SelectedDate())
	_, err := c.store.Get(date)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return c.OnAdd()
	case err != nil:
		return c.fail("saving", date, err)
	default:
		return c.OnUpdate()
	}
}

// OnRemove deletes the entry for the selected date once confirm agrees.
// A declined prompt leaves everything as it was.
func (c *Controller) OnRemove(confirm Confirmer) error {
	date := entry.Day(c.display.SelectedDate())

	ok, err := confirm.Confirm(RemovePrompt)
	if err != nil {
		return c.fail("confirming removal of", date, err)
	}
	if !ok {
		c.logger.Printf("remove %s cancelled", entry.FormatDate(date))
		c.display.ReportStatus("Cancelled.")
		return nil
	}

	if err := c.store.Remove(date); err != nil {
		return c.fail("removing", date, err)
	}
	c.display.SetText("")
	c.succeed("removed", date)
	return c.RecomputeHighlights()
}

// RecomputeHighlights clears every mark and highlights exactly the dates
// that hold an entry.
func (c *Controller) RecomputeHighlights() error {
	dates, err := c.store.ListDates()
	if err != nil {
		c.logger.Printf("listing dates: %v", err)
		c.display.ReportError(fmt.Errorf("refreshing calendar: %w", err))
		return err
	}

	c.display.ClearHighlights()
	for _, d := range dates {
		c.display.Highlight(d)
	}
	return nil
}

func (c *Controller) fail(action string, date time.Time, err error) error {
	day := entry.FormatDate(date)
	c.logger.Printf("error %s entry for %s: %v", action, day, err)
	c.display.ReportError(describe(day, err))
	return err
}

func (c *Controller) succeed(action string, date time.Time) {
	day := entry.FormatDate(date)
	c.logger.Printf("diary entry %s for %s", action, day)
	c.display.ReportStatus(fmt.Sprintf("Entry %s for %s.", action, day))
}

// describe turns a store error into a message meant for the user,
// keeping the original error in the chain.
func describe(day string, err error) error {
	switch {
	case errors.Is(err, storage.ErrDuplicate):
		return fmt.Errorf("%s already has an entry; use update instead: %w", day, err)
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%s has no entry yet; use add instead: %w", day, err)
	default:
		return fmt.Errorf("%s: %w", day, err)
	}
}
