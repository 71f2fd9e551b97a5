package menu

import (
	"context"
	"strconv"
	"strings"

	"github.com/roach88/cjr/internal/render"
	"github.com/roach88/cjr/internal/store"
)

// LoadGame lists the saved sessions and handles the player's choice:
// a number loads that session, A shows the driver roster, B deletes a
// session by id and C goes back. The list is re-read every time it is
// shown. It returns to the main menu when the store is empty, after a
// session was displayed, or on C.
func (g *Game) LoadGame(ctx context.Context) error {
	for {
		sessions, err := g.sessions.ListSessions(ctx)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			g.p.println("No saved game found.")
			return g.p.pause("Press Enter to return to the main menu...")
		}

		g.screen("LOAD GAME")
		g.p.println("Select a saved session to load (enter number), or:")
		g.p.println("[A] Show all drivers")
		g.p.println("[B] Delete a driver by Id")
		g.p.println("[C] Back to main menu")
		g.p.println()
		if err := render.SessionList(g.p.w, sessions); err != nil {
			return err
		}
		g.p.println()

		input, err := g.p.line("Enter choice number or letter: ")
		if err != nil {
			return err
		}

		switch strings.ToUpper(strings.TrimSpace(input)) {
		case "A":
			if err := g.showDrivers(ctx); err != nil {
				return err
			}
			continue
		case "B":
			if err := g.deleteByID(ctx); err != nil {
				return err
			}
			continue
		case "C":
			return nil
		}

		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil || n < 1 || n > len(sessions) {
			g.p.println("Invalid choice.")
			if err := g.p.pause("Press Enter to try again..."); err != nil {
				return err
			}
			continue
		}

		shown, err := g.showSession(ctx, sessions[n-1])
		if err != nil {
			return err
		}
		if shown {
			return g.p.pause("\nPress Enter to return to the main menu...")
		}
	}
}

// showSession displays one session. It reports false when the session
// disappeared after the list was read.
func (g *Game) showSession(ctx context.Context, sum store.SessionSummary) (bool, error) {
	sess, err := g.sessions.LoadSession(ctx, sum.ID)
	if store.IsNotFound(err) {
		g.p.printf("No session found with Id %d.\n", sum.ID)
		return false, g.p.pause("Press Enter to return to the sessions menu...")
	}
	if err != nil {
		return false, err
	}

	g.screen("LOADED CONFIGURATION")
	g.p.printf("Session: %s (Id: %d)\n\n", sum.Label(), sess.ID)
	return true, render.Sheet(g.p.w, sess.Record, g.style)
}

func (g *Game) showDrivers(ctx context.Context) error {
	drivers, err := g.sessions.ListDrivers(ctx)
	if err != nil {
		return err
	}

	g.p.println()
	g.p.println("All drivers:")
	if err := render.DriverTable(g.p.w, drivers); err != nil {
		return err
	}
	g.p.println()
	return g.p.pause("Press Enter to return to the sessions menu...")
}

func (g *Game) deleteByID(ctx context.Context) error {
	input, err := g.p.line("Enter driver Id to delete: ")
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil || id <= 0 {
		g.p.println("Invalid id.")
		return g.p.pause("Press Enter to return to the sessions menu...")
	}

	driver, err := g.sessions.LookupDriver(ctx, id)
	if store.IsNotFound(err) {
		g.p.printf("No session found with Id %d.\n", id)
		return g.p.pause("Press Enter to return to the sessions menu...")
	}
	if err != nil {
		return err
	}

	g.p.println()
	g.p.println(render.DeleteTarget(driver))
	ok, err := g.p.confirm("Confirm delete? (Y/N): ")
	if err != nil {
		return err
	}
	if !ok {
		g.p.println("Delete cancelled.")
		return g.p.pause("Press Enter to return to the sessions menu...")
	}

	deleted, err := g.sessions.DeleteSession(ctx, id)
	if err != nil {
		return err
	}
	if deleted {
		g.p.println("Deletion successful!")
	} else {
		g.p.printf("No session found with Id %d.\n", id)
	}
	return g.p.pause("Press Enter to return to the sessions menu...")
}
