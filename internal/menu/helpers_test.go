package menu

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roach88/cjr/internal/store"
	"github.com/roach88/cjr/internal/testutil"
)

// sampleAnswers configures testutil.SampleRecord.
var sampleAnswers = []string{
	"Alice", "28", "3", // driver
	"3", "3", "1", "3", "2", // aerodynamics
	"2", "3", "4", "3", "1", // engine
	"1", "18", // wheels
	"1", "3", "3", "1", "2", // suspension
	"2", "3", "2", // brakes
}

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(store.Config{
		Path:   filepath.Join(t.TempDir(), "cjr.db"),
		Clock:  testutil.NewSteppingClock(time.Time{}, time.Second),
		Logger: slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// script joins answers into newline-terminated input.
func script(answers ...string) string {
	return strings.Join(answers, "\n") + "\n"
}

func newTestGame(s Sessions, input string) (*Game, *bytes.Buffer) {
	var out bytes.Buffer
	g := New(s, strings.NewReader(input), &out,
		WithTypeDelay(0),
		WithLogger(slog.New(slog.DiscardHandler)),
	)
	return g, &out
}

func seed(t *testing.T, s *store.Store, names ...string) []int64 {
	t.Helper()
	ids := make([]int64, len(names))
	for i, n := range names {
		id, err := s.CreateSession(t.Context(), testutil.RecordFor(n, 20+i, "Rookie"), "")
		require.NoError(t, err)
		ids[i] = id
	}
	return ids
}
