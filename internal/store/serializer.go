package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// Serializer grants exclusive write access to one Store. It is created once
// by Open and shared by every write operation of that Store; schema changes,
// inserts and deletes all pass through the same Serializer so a write can
// never race ahead of a not-yet-migrated schema.
//
// Serializer does not protect against other processes writing the same
// file. That case is left to busy_timeout and RetryPolicy.
type Serializer struct {
	sem    *semaphore.Weighted
	logger *slog.Logger
}

// NewSerializer creates an unlocked Serializer. A nil logger discards logs.
func NewSerializer(logger *slog.Logger) *Serializer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Serializer{
		sem:    semaphore.NewWeighted(1),
		logger: logger,
	}
}

type opIDKey struct{}

// OpID returns the correlation id of the write operation running in ctx,
// or "" outside WithWriteLock.
func OpID(ctx context.Context) string {
	id, _ := ctx.Value(opIDKey{}).(string)
	return id
}

// WithWriteLock runs fn while holding exclusive write ownership. Waiting for
// the lock is abandoned when ctx is done. fn receives a context carrying a
// fresh operation id (see OpID) for log correlation.
//
// WithWriteLock is not reentrant: fn must not call it again.
func (s *Serializer) WithWriteLock(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	id := uuid.Must(uuid.NewV7()).String()
	log := s.logger.With("op", op, "op_id", id)

	start := time.Now()
	if err := s.sem.Acquire(ctx, 1); err != nil {
		log.Debug("write lock not acquired", "error", err)
		return err
	}
	defer s.sem.Release(1)

	log.Debug("write lock acquired", "waited", time.Since(start))
	err := fn(context.WithValue(ctx, opIDKey{}, id))
	if err != nil {
		log.Warn("write failed", "error", err)
	} else {
		log.Debug("write done", "held", time.Since(start))
	}
	return err
}
