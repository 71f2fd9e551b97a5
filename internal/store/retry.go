package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/sethvargo/go-retry"
	moderncsqlite "modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

// RetryPolicy bounds how often a single write statement is re-executed
// after transient contention, and how long to wait in between.
type RetryPolicy struct {
	// MaxAttempts is the total number of executions, including the first.
	MaxAttempts int

	// Base is multiplied by the attempt number to get the delay after
	// that attempt fails.
	Base time.Duration
}

// Default policies.
var (
	// SchemaRetry applies to each ALTER TABLE issued by EnsureSchema.
	SchemaRetry = RetryPolicy{MaxAttempts: 6, Base: 200 * time.Millisecond}

	// WriteRetry applies to session inserts and deletes.
	WriteRetry = RetryPolicy{MaxAttempts: 8, Base: 250 * time.Millisecond}
)

// Delay returns the wait after the given (1-based) failed attempt.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	return p.Base * time.Duration(attempt)
}

// Do runs fn until it succeeds, fails with a non-transient error, or has
// been attempted MaxAttempts times. Exhaustion is reported as a
// *ContentionError for op. Cancelling ctx stops the wait between attempts.
func (p RetryPolicy) Do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	attempt := 0
	var last error
	backoff := retry.WithMaxRetries(uint64(maxAttempts-1), retry.BackoffFunc(func() (time.Duration, bool) {
		return p.Delay(attempt), false
	}))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err != nil && IsTransient(err) {
			last = err
			return retry.RetryableError(err)
		}
		return err
	})
	if err == nil {
		return nil
	}
	if last != nil && IsTransient(err) {
		return &ContentionError{Op: op, Attempts: attempt, Err: last}
	}
	return err
}

// IsTransient reports whether err is a "store busy/locked" condition that
// may clear on its own. Both registered drivers are recognised; other
// drivers fall back to the SQLite message text.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.Code == sqlite3.ErrBusy || se.Code == sqlite3.ErrLocked
	}

	var me *moderncsqlite.Error
	if errors.As(err, &me) {
		code := me.Code() & 0xff
		return code == sqlitelib.SQLITE_BUSY || code == sqlitelib.SQLITE_LOCKED
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "database table is locked")
}
