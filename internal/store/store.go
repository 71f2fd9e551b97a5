package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

// Supported database/sql driver names.
const (
	// DriverCGO is github.com/mattn/go-sqlite3.
	DriverCGO = "sqlite3"

	// DriverPureGo is modernc.org/sqlite.
	DriverPureGo = "sqlite"
)

// Clock supplies the creation timestamp of new sessions.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Config controls how a Store is opened.
type Config struct {
	// Path is the database file. It is created if missing.
	Path string

	// Driver is DriverCGO or DriverPureGo. Empty means DriverCGO.
	Driver string

	// BusyTimeout is how long a statement waits on a locked database
	// before failing with SQLITE_BUSY.
	BusyTimeout time.Duration

	// Clock stamps CreatedAt. Nil means wall clock.
	Clock Clock

	// Logger receives write diagnostics. Nil means slog.Default().
	Logger *slog.Logger

	SchemaRetry RetryPolicy
	WriteRetry  RetryPolicy
}

// DefaultConfig returns the configuration used by the game for path.
func DefaultConfig(path string) Config {
	return Config{
		Path:        path,
		Driver:      DriverCGO,
		BusyTimeout: 10 * time.Second,
		SchemaRetry: SchemaRetry,
		WriteRetry:  WriteRetry,
	}
}

// Store persists sessions in a single SQLite file.
type Store struct {
	db     *sql.DB
	path   string
	writes *Serializer
	clock  Clock
	logger *slog.Logger

	schemaRetry RetryPolicy
	writeRetry  RetryPolicy
}

// Open creates or opens the database described by cfg, applies pragmas and
// makes sure the Sessions table has every required column.
//
// The pool is limited to one connection: SQLite allows a single writer and
// the Serializer already orders writes, so a second connection would only
// add SQLITE_BUSY.
func Open(cfg Config) (*Store, error) {
	if cfg.Driver == "" {
		cfg.Driver = DriverCGO
	}
	if cfg.Driver != DriverCGO && cfg.Driver != DriverPureGo {
		return nil, fmt.Errorf("unsupported sqlite driver %q", cfg.Driver)
	}
	if cfg.BusyTimeout <= 0 {
		cfg.BusyTimeout = 10 * time.Second
	}
	if cfg.Clock == nil {
		cfg.Clock = systemClock{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SchemaRetry.MaxAttempts == 0 {
		cfg.SchemaRetry = SchemaRetry
	}
	if cfg.WriteRetry.MaxAttempts == 0 {
		cfg.WriteRetry = WriteRetry
	}

	db, err := sql.Open(cfg.Driver, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db, cfg.BusyTimeout); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	logger := cfg.Logger.With("db", cfg.Path)
	s := &Store{
		db:          db,
		path:        cfg.Path,
		writes:      NewSerializer(logger),
		clock:       cfg.Clock,
		logger:      logger,
		schemaRetry: cfg.SchemaRetry,
		writeRetry:  cfg.WriteRetry,
	}

	if err := s.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// DB returns the underlying sql.DB for direct queries.
// Use with caution - writes made through it bypass the Serializer.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Serializer returns the write lock shared by this Store's writes.
func (s *Store) Serializer() *Serializer {
	return s.writes
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB, busyTimeout time.Duration) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeout.Milliseconds()),
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
