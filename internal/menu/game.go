package menu

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/roach88/cjr/internal/render"
	"github.com/roach88/cjr/internal/setup"
	"github.com/roach88/cjr/internal/store"
)

// Sessions is the part of *store.Store the game needs.
type Sessions interface {
	CreateSession(ctx context.Context, rec setup.Record, name string) (int64, error)
	ListSessions(ctx context.Context) ([]store.SessionSummary, error)
	LoadSession(ctx context.Context, id int64) (store.Session, error)
	ListDrivers(ctx context.Context) ([]store.DriverRow, error)
	LookupDriver(ctx context.Context, id int64) (store.DriverRow, error)
	DeleteSession(ctx context.Context, id int64) (bool, error)
}

// DefaultTypeDelay is the per-rune delay of the campaign and credits text.
const DefaultTypeDelay = time.Millisecond

// Game is one interactive session with the player.
type Game struct {
	sessions  Sessions
	p         *prompter
	logger    *slog.Logger
	style     render.Style
	clear     bool
	typeDelay time.Duration
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithStyle sets the rendering style (colour on or off).
func WithStyle(st render.Style) GameOption {
	return func(g *Game) {
		g.style = st
	}
}

// WithClearScreen makes every screen start by clearing the terminal.
func WithClearScreen(clear bool) GameOption {
	return func(g *Game) {
		g.clear = clear
	}
}

// WithTypeDelay sets the typewriter delay. Zero prints text at once.
func WithTypeDelay(d time.Duration) GameOption {
	return func(g *Game) {
		g.typeDelay = d
	}
}

// WithLogger sets the logger for store failures.
func WithLogger(logger *slog.Logger) GameOption {
	return func(g *Game) {
		g.logger = logger
	}
}

// New creates a game reading answers from in and drawing on out.
//
// Defaults: no colour, no screen clearing, DefaultTypeDelay and
// slog.Default(). Use TerminalOptions to enable decoration on a terminal.
func New(sessions Sessions, in io.Reader, out io.Writer, opts ...GameOption) *Game {
	g := &Game{
		sessions:  sessions,
		p:         newPrompter(in, out),
		logger:    slog.Default(),
		typeDelay: DefaultTypeDelay,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// TerminalOptions enables colour and screen clearing when out is a terminal.
func TerminalOptions(out io.Writer) []GameOption {
	tty := IsTerminal(out)
	return []GameOption{
		WithStyle(render.Style{Color: tty}),
		WithClearScreen(tty),
	}
}

var mainMenu = []string{"New Game", "Load Game", "Campaign", "Credits", "Exit"}

// Run shows the main menu until the player exits or input ends. Failures of
// a single screen are reported and the main menu is shown again; only
// cancellation of ctx ends Run with an error.
func (g *Game) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		g.screen("CJR RACING")
		for i, opt := range mainMenu {
			g.p.printf("[%d] %s\n", i+1, opt)
		}
		g.p.println()

		choice, err := g.p.index("Select an option: ", len(mainMenu))
		if errors.Is(err, ErrInputClosed) {
			g.p.println("Exiting... See you on the track!")
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = g.NewGame(ctx)
		case 2:
			err = g.LoadGame(ctx)
		case 3:
			err = g.Campaign(ctx)
		case 4:
			err = g.Credits(ctx)
		case 5:
			g.p.println("Exiting... See you on the track!")
			return nil
		}

		switch {
		case err == nil:
		case errors.Is(err, ErrInputClosed):
			g.p.println("Exiting... See you on the track!")
			return nil
		case ctx.Err() != nil:
			return ctx.Err()
		default:
			g.fail(err)
		}
	}
}

// fail reports a screen failure to the player and the log.
func (g *Game) fail(err error) {
	g.logger.Error("operation failed", "error", err)
	if store.IsContention(err) {
		g.p.println(g.style.Warn("Error: the save file is busy, please try again later."))
	} else {
		g.p.println(g.style.Warn("Error: " + err.Error()))
	}
	if perr := g.p.pause("Press Enter to return to the main menu..."); perr != nil {
		g.logger.Debug("pause aborted", "error", perr)
	}
}

// screen starts a new screen with a banner.
func (g *Game) screen(title string) {
	if g.clear {
		g.p.printf("\x1b[H\x1b[2J")
	}
	g.p.println(g.style.Banner(title))
	g.p.println()
}
