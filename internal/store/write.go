package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/cjr/internal/setup"
)

// CreateSession stores rec as a new session named name and returns its id.
//
// Under the write lock it ensures the schema, then inserts the row inside a
// transaction. The insert is retried on contention; any other failure rolls
// the transaction back. The store does not validate enum labels.
func (s *Store) CreateSession(ctx context.Context, rec setup.Record, name string) (int64, error) {
	var id int64

	err := s.writes.WithWriteLock(ctx, "create_session", func(ctx context.Context) error {
		if err := s.ensureSchemaLocked(ctx); err != nil {
			return err
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}
		defer tx.Rollback() // No-op if committed

		args := append([]any{
			s.clock.Now().UTC().Format(TimestampLayout),
			name,
		}, recordArgs(rec)...)

		var result sql.Result
		err = s.retrying(ctx, s.writeRetry, "insert session", func(ctx context.Context) error {
			var err error
			result, err = tx.ExecContext(ctx, insertSessionSQL, args...)
			return err
		})
		if err != nil {
			return fmt.Errorf("insert: %w", err)
		}

		id, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("session created", "id", id, "name", name)
	return id, nil
}

// DeleteSession removes the session with the given id and reports whether
// a row was removed. A missing id is not an error.
func (s *Store) DeleteSession(ctx context.Context, id int64) (bool, error) {
	var affected int64

	err := s.writes.WithWriteLock(ctx, "delete_session", func(ctx context.Context) error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}
		defer tx.Rollback()

		var result sql.Result
		err = s.retrying(ctx, s.writeRetry, "delete session", func(ctx context.Context) error {
			var err error
			result, err = tx.ExecContext(ctx, `DELETE FROM Sessions WHERE Id = ?`, id)
			return err
		})
		if err != nil {
			return fmt.Errorf("delete: %w", err)
		}

		affected, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete session %d: %w", id, err)
	}

	if affected > 0 {
		s.logger.Info("session deleted", "id", id)
	}
	return affected > 0, nil
}

// retrying runs fn under policy and logs each transient failure.
func (s *Store) retrying(ctx context.Context, policy RetryPolicy, op string, fn func(ctx context.Context) error) error {
	attempt := 0
	return policy.Do(ctx, op, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err != nil && IsTransient(err) {
			s.logger.Warn("store busy, retrying",
				"op", op,
				"op_id", OpID(ctx),
				"attempt", attempt,
				"max_attempts", policy.MaxAttempts,
				"error", err,
			)
		}
		return err
	})
}
