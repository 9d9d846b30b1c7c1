package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/chris-regnier/diarycal/internal/storage"
)

// Exit statuses.
const (
	exitOK      = 0
	exitUser    = 1 // not found, duplicate, bad input or usage
	exitStorage = 2 // storage failure or unavailable
)

// shownError marks an error the controller already reported on stderr.
type shownError struct{ err error }

func (e shownError) Error() string { return e.err.Error() }
func (e shownError) Unwrap() error { return e.err }

func shown(err error) error {
	if err == nil {
		return nil
	}
	return shownError{err: err}
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, storage.ErrStorage), errors.Is(err, storage.ErrUnavailable):
		return exitStorage
	default:
		return exitUser
	}
}

// Execute runs the root command and returns the process exit status.
func Execute() int {
	err := rootCmd.Execute()
	closeResources()
	if err == nil {
		return exitOK
	}
	var se shownError
	if !errors.As(err, &se) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return ExitCode(err)
}
