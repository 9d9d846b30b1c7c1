package storage

import (
	"errors"
	"time"

	"github.com/chris-regnier/diarycal/internal/entry"
)

// Sentinel errors for storage operations.
var (
	ErrUnavailable = errors.New("storage unavailable")
	ErrStorage     = errors.New("storage error")
	ErrNotFound    = errors.New("entry not found")
	ErrDuplicate   = errors.New("entry already exists")
	ErrValidation  = errors.New("validation error")
)

// Store defines date-keyed persistence for diary entries.
// Every date is truncated to local midnight before use.
type Store interface {
	Get(date time.Time) (entry.Entry, error)
	Add(date time.Time, text string) error
	Update(date time.Time, text string) error
	Remove(date time.Time) error
	ListDates() ([]time.Time, error)
	Close() error
}
