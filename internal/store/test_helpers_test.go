package store

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/roach88/cjr/internal/setup"
	"github.com/roach88/cjr/internal/testutil"
)

// testConfig returns a config for a fresh database file with a stepping
// clock and fast retry policies.
func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Path:        filepath.Join(t.TempDir(), "test.db"),
		Driver:      DriverCGO,
		BusyTimeout: time.Second,
		Clock:       testutil.NewSteppingClock(time.Time{}, time.Second),
		Logger:      slog.New(slog.DiscardHandler),
		SchemaRetry: RetryPolicy{MaxAttempts: 3, Base: time.Millisecond},
		WriteRetry:  RetryPolicy{MaxAttempts: 3, Base: time.Millisecond},
	}
}

// createTestStore opens a store on a fresh database file.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	return openTestStore(t, testConfig(t))
}

func openTestStore(t *testing.T, cfg Config) *Store {
	t.Helper()
	s, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func getTableColumns(t *testing.T, s *Store) []string {
	t.Helper()
	names, err := s.columnNames(t.Context())
	if err != nil {
		t.Fatalf("columnNames() failed: %v", err)
	}
	return names
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func sampleRecord() setup.Record {
	return testutil.SampleRecord()
}
