package menu

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cjr/internal/store"
)

func TestLoadGame_EmptyStore(t *testing.T) {
	s := openStore(t)
	g, out := newTestGame(s, script(""))

	require.NoError(t, g.LoadGame(t.Context()))
	assert.Contains(t, out.String(), "No saved game found.")
}

func TestLoadGame_ListsNewestFirst(t *testing.T) {
	s := openStore(t)
	seed(t, s, "Alice", "Bruno")
	g, out := newTestGame(s, script("C"))

	require.NoError(t, g.LoadGame(t.Context()))

	text := out.String()
	first := strings.Index(text, "(Id: 2)")
	second := strings.Index(text, "(Id: 1)")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
	assert.Contains(t, text, "[1] 2025-03-14T09:30:01Z (Id: 2)")
}

func TestLoadGame_LoadsSelectedSession(t *testing.T) {
	s := openStore(t)
	seed(t, s, "Alice", "Bruno")
	g, out := newTestGame(s, script("2", ""))

	require.NoError(t, g.LoadGame(t.Context()))

	text := out.String()
	assert.Contains(t, text, "LOADED CONFIGURATION")
	assert.Contains(t, text, "Session: 2025-03-14T09:30:00Z (Id: 1)")
	assert.Contains(t, text, "Name       : Alice")
}

func TestLoadGame_InvalidChoiceRedisplays(t *testing.T) {
	s := openStore(t)
	seed(t, s, "Alice")
	g, out := newTestGame(s, script("7", "", "x", "", "c"))

	require.NoError(t, g.LoadGame(t.Context()))

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "Invalid choice."))
	assert.Equal(t, 3, strings.Count(text, "Select a saved session to load"))
}

func TestLoadGame_ShowDrivers(t *testing.T) {
	s := openStore(t)
	seed(t, s, "Alice", "Bruno")
	g, out := newTestGame(s, script("a", "", "C"))

	require.NoError(t, g.LoadGame(t.Context()))

	text := out.String()
	assert.Contains(t, text, "All drivers:")
	assert.Contains(t, text, "   1  Alice")
	assert.Contains(t, text, "   2  Bruno")
}

func TestLoadGame_DeleteConfirmed(t *testing.T) {
	s := openStore(t)
	seed(t, s, "Alice", "Bruno")
	g, out := newTestGame(s, script("B", "1", "maybe", "Y", "", "C"))

	require.NoError(t, g.LoadGame(t.Context()))

	text := out.String()
	assert.Contains(t, text, "You are about to delete driver 'Alice' (Id: 1), age 20, Rookie.")
	assert.Contains(t, text, "Please answer Y or N.")
	assert.Contains(t, text, "Deletion successful!")

	_, err := s.LoadSession(t.Context(), 1)
	assert.True(t, store.IsNotFound(err))
}

func TestLoadGame_DeleteCancelled(t *testing.T) {
	s := openStore(t)
	seed(t, s, "Alice")
	g, out := newTestGame(s, script("B", "1", "n", "", "C"))

	require.NoError(t, g.LoadGame(t.Context()))
	assert.Contains(t, out.String(), "Delete cancelled.")

	_, err := s.LoadSession(t.Context(), 1)
	assert.NoError(t, err)
}

func TestLoadGame_DeleteMissingID(t *testing.T) {
	s := openStore(t)
	seed(t, s, "Alice")
	g, out := newTestGame(s, script("B", "42", "", "B", "zero", "", "C"))

	require.NoError(t, g.LoadGame(t.Context()))

	text := out.String()
	assert.Contains(t, text, "No session found with Id 42.")
	assert.Contains(t, text, "Invalid id.")
}

func TestLoadGame_LastSessionDeletedReturnsToMenu(t *testing.T) {
	s := openStore(t)
	seed(t, s, "Alice")
	g, out := newTestGame(s, script("B", "1", "Y", "", ""))

	require.NoError(t, g.LoadGame(t.Context()))
	assert.Contains(t, out.String(), "No saved game found.")
}

// racingSessions deletes a session between listing and loading it.
type racingSessions struct {
	*store.Store
}

func (r racingSessions) LoadSession(ctx context.Context, id int64) (store.Session, error) {
	if _, err := r.Store.DeleteSession(ctx, id); err != nil {
		return store.Session{}, err
	}
	return r.Store.LoadSession(ctx, id)
}

func TestLoadGame_SessionVanished(t *testing.T) {
	s := openStore(t)
	seed(t, s, "Alice", "Bruno")
	g, out := newTestGame(racingSessions{s}, script("1", "", "C"))

	require.NoError(t, g.LoadGame(t.Context()))
	assert.Contains(t, out.String(), "No session found with Id 2.")
}

type failingSessions struct {
	Sessions
	err error
}

func (f failingSessions) ListSessions(context.Context) ([]store.SessionSummary, error) {
	return nil, f.err
}

func TestLoadGame_StoreError(t *testing.T) {
	boom := errors.New("disk I/O error")
	g, _ := newTestGame(failingSessions{err: boom}, "")

	err := g.LoadGame(t.Context())
	assert.ErrorIs(t, err, boom)
}
