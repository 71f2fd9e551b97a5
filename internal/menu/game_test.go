package menu

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cjr/internal/render"
	"github.com/roach88/cjr/internal/store"
)

func TestRun_Exit(t *testing.T) {
	g, out := newTestGame(nil, script("5"))

	require.NoError(t, g.Run(t.Context()))

	text := out.String()
	for _, opt := range []string{"[1] New Game", "[2] Load Game", "[3] Campaign", "[4] Credits", "[5] Exit"} {
		assert.Contains(t, text, opt)
	}
	assert.Contains(t, text, "Exiting... See you on the track!")
}

func TestRun_InputClosedExits(t *testing.T) {
	g, out := newTestGame(nil, "")

	require.NoError(t, g.Run(t.Context()))
	assert.Contains(t, out.String(), "See you on the track!")
}

func TestRun_InvalidMenuChoice(t *testing.T) {
	g, out := newTestGame(nil, script("9", "5"))

	require.NoError(t, g.Run(t.Context()))
	assert.Contains(t, out.String(), "Invalid input! Choose 1-5.")
}

func TestRun_NewGameThenLoad(t *testing.T) {
	s := openStore(t)

	answers := []string{"1", "1"}
	answers = append(answers, sampleAnswers...)
	answers = append(answers, "Silverstone", "") // save name, pause
	answers = append(answers, "2", "1", "")      // load game, first session, pause
	answers = append(answers, "5")

	g, out := newTestGame(s, script(answers...))
	require.NoError(t, g.Run(t.Context()))

	text := out.String()
	assert.Contains(t, text, "Saved successfully! (Id: 1)")
	assert.Contains(t, text, "[1] Silverstone (Id: 1)")
	assert.Contains(t, text, "Session: Silverstone (Id: 1)")
}

func TestRun_CampaignAndCredits(t *testing.T) {
	g, out := newTestGame(nil, script("3", "", "4", "", "5"))

	require.NoError(t, g.Run(t.Context()))

	text := out.String()
	assert.Contains(t, text, "racing isn't just about speed")
	assert.Contains(t, text, "your true journey begins.")
	assert.Contains(t, text, "Chriz John Bonifacio")
}

func TestRun_StoreErrorReturnsToMenu(t *testing.T) {
	boom := errors.New("disk I/O error")
	g, out := newTestGame(failingSessions{err: boom}, script("2", "", "5"))

	require.NoError(t, g.Run(t.Context()))

	text := out.String()
	assert.Contains(t, text, "Error: disk I/O error")
	assert.Equal(t, 2, strings.Count(text, "[5] Exit"))
}

func TestRun_ContentionMessage(t *testing.T) {
	busy := &store.ContentionError{Op: "insert session", Attempts: 8, Err: errors.New("database is locked")}
	g, out := newTestGame(failingSessions{err: busy}, script("2", "", "5"))

	require.NoError(t, g.Run(t.Context()))
	assert.Contains(t, out.String(), "Error: the save file is busy, please try again later.")
}

func TestRun_CancelledContext(t *testing.T) {
	g, _ := newTestGame(nil, script("5"))
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	assert.ErrorIs(t, g.Run(ctx), context.Canceled)
}

func TestTypeText_Delay(t *testing.T) {
	var out bytes.Buffer
	g := New(nil, strings.NewReader(""), &out, WithTypeDelay(time.Millisecond))

	start := time.Now()
	require.NoError(t, g.typeText(t.Context(), "abcde"))

	assert.Equal(t, "abcde", out.String())
	assert.GreaterOrEqual(t, time.Since(start), 4*time.Millisecond)
}

func TestTypeText_Cancelled(t *testing.T) {
	var out bytes.Buffer
	g := New(nil, strings.NewReader(""), &out, WithTypeDelay(time.Hour))
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := g.typeText(ctx, "abc")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "a", out.String())
}

func TestClearScreenAndColor(t *testing.T) {
	var out bytes.Buffer
	g := New(nil, strings.NewReader(script("5")), &out,
		WithClearScreen(true),
		WithStyle(render.Style{Color: true}),
	)

	require.NoError(t, g.Run(t.Context()))
	assert.True(t, strings.HasPrefix(out.String(), "\x1b[H\x1b[2J"))
	assert.Contains(t, out.String(), "\x1b[33m")
}

func TestIsTerminal_NonFile(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.Len(t, TerminalOptions(&bytes.Buffer{}), 2)
}
