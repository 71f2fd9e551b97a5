package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned (wrapped) when no session has the requested id.
var ErrNotFound = errors.New("session not found")

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// ContentionError reports a write that was still blocked by another
// connection after every retry attempt.
type ContentionError struct {
	// Op names the statement that was retried.
	Op string

	// Attempts is the number of times the statement was executed.
	Attempts int

	// Err is the last transient error.
	Err error
}

func (e *ContentionError) Error() string {
	return fmt.Sprintf("%s: store still busy after %d attempts: %v", e.Op, e.Attempts, e.Err)
}

func (e *ContentionError) Unwrap() error {
	return e.Err
}

// IsContention reports whether err wraps a *ContentionError.
func IsContention(err error) bool {
	var ce *ContentionError
	return errors.As(err, &ce)
}
