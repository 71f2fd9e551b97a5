package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cjr/internal/store"
	"github.com/roach88/cjr/internal/testutil"
)

// testOptions returns root options pointing at a fresh database file with
// a stepping clock starting at testutil.DefaultEpoch.
func testOptions(t *testing.T) *RootOptions {
	t.Helper()
	return &RootOptions{
		Format:      "text",
		Database:    filepath.Join(t.TempDir(), "cjr.db"),
		Driver:      store.DriverCGO,
		BusyTimeout: time.Second,
		Clock:       testutil.NewSteppingClock(time.Time{}, time.Second),
	}
}

// execute runs cmd with args and stdin and returns what it wrote.
func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

// seedSessions stores one session per name in the database of opts, using
// the same clock so timestamps stay ordered.
func seedSessions(t *testing.T, opts *RootOptions, names ...string) []int64 {
	t.Helper()
	s, err := store.Open(store.Config{
		Path:   opts.Database,
		Driver: opts.Driver,
		Clock:  opts.Clock,
		Logger: slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)
	defer s.Close()

	ids := make([]int64, len(names))
	for i, n := range names {
		id, err := s.CreateSession(t.Context(), testutil.SampleRecord(), n)
		require.NoError(t, err)
		ids[i] = id
	}
	return ids
}

// decodeResponse decodes a JSON envelope and re-decodes its data into v.
func decodeResponse(t *testing.T, out string, v any) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	if v != nil && resp.Data != nil {
		raw, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, v))
	}
	return resp
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}
