package tape

import (
	"errors"
	"fmt"
)

// Common tape reading errors
var (
	// ErrEmptyInput is returned when the input contains no header row at all.
	ErrEmptyInput = errors.New("tape input is empty")

	// ErrMissingColumn is returned when the header row lacks one of the
	// required columns (cashier, date, receipt, amount).
	ErrMissingColumn = errors.New("required column missing from header")

	// ErrUnreadableInput is returned when the input cannot be read or is not
	// tab-delimited tabular data. This is a contract violation by the caller
	// and fails the whole load.
	ErrUnreadableInput = errors.New("input is not readable tabular data")
)

// TapeError wraps errors with additional context about tape reading failures.
type TapeError struct {
	// Op is the operation that failed (e.g., "ReadFile", "Read").
	Op string

	// Err is the underlying error.
	Err error

	// Details provides additional context about the failure.
	Details string
}

// Error implements the error interface.
func (e *TapeError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("tape: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("tape: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *TapeError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling.
func (e *TapeError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

func newTapeError(op string, err error, details string) *TapeError {
	return &TapeError{Op: op, Err: err, Details: details}
}
