// Package store provides SQLite-backed persistence for saved car
// configurations ("sessions").
//
// Each session is one denormalised row of the Sessions table: identifier,
// creation timestamp, optional display name and one column per field of a
// setup.Record. Enum fields are stored as their display labels.
//
// # Write serialisation
//
// Every schema change, insert and delete runs inside Serializer.WithWriteLock,
// so at most one write is in flight per Store. Reads (ListSessions,
// LoadSession, ListDrivers) do not take the lock and may observe the state
// before a concurrent external writer commits.
//
// # Contention
//
// Individual write statements that fail with SQLITE_BUSY or SQLITE_LOCKED are
// retried under a RetryPolicy with linear backoff (Base * attempt). Schema
// edits default to 6 attempts, data writes to 8. Exhausting the bound yields
// a *ContentionError; any other error is returned immediately.
//
// # Schema
//
// EnsureSchema is additive only: it creates the table with the minimum
// columns and then adds each missing column, never dropping or renaming.
// Stores written by older versions (fewer columns) open without data loss.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout: Config.BusyTimeout, 10s by default
//   - foreign_keys=ON
package store
