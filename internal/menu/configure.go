package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/cjr/internal/render"
	"github.com/roach88/cjr/internal/setup"
)

// Configure runs the six configurators in order and returns the record.
// Every answer is re-asked until it is valid, so the result always passes
// setup.Record.Validate.
func (g *Game) Configure() (setup.Record, error) {
	var rec setup.Record

	for i, sec := range setup.Sections {
		if i > 0 {
			g.p.println()
		}
		g.p.println(g.style.Heading(sec.Title))

		if i == 0 {
			if err := g.askDriver(&rec); err != nil {
				return setup.Record{}, err
			}
		}

		for _, f := range sec.Fields {
			label, err := g.p.choose(f)
			if err != nil {
				return setup.Record{}, err
			}
			rec.Set(f.Key, label)
		}

		// Tire pressure is free-form and follows the compound.
		if hasField(sec, setup.FieldTireCompound) {
			psi, err := g.p.number(
				fmt.Sprintf("Tire Pressure (%d-%d PSI, lower = more grip, higher = more speed): ",
					setup.MinTirePressure, setup.MaxTirePressure),
				setup.MinTirePressure, setup.MaxTirePressure,
				fmt.Sprintf("Invalid PSI! Must be between %d-%d.", setup.MinTirePressure, setup.MaxTirePressure),
			)
			if err != nil {
				return setup.Record{}, err
			}
			rec.Wheels.TirePressure = psi
		}
	}

	return rec.Normalize(), nil
}

func (g *Game) askDriver(rec *setup.Record) error {
	for {
		name, err := g.p.line("Driver Name: ")
		if err != nil {
			return err
		}
		if err := setup.CheckDriverName(name); err != nil {
			g.p.println(capitalize(err.Error()) + "!")
			continue
		}
		rec.Driver.Name = setup.NormalizeText(name)
		break
	}

	age, err := g.p.number("Driver Age: ", setup.MinDriverAge, setup.MaxDriverAge,
		fmt.Sprintf("Invalid age! Must be %d-%d.", setup.MinDriverAge, setup.MaxDriverAge))
	if err != nil {
		return err
	}
	rec.Driver.Age = age
	return nil
}

func hasField(sec setup.Section, key string) bool {
	for _, f := range sec.Fields {
		if f.Key == key {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// NewGame offers to start a configuration and, if accepted, builds and
// saves one (see Build).
func (g *Game) NewGame(ctx context.Context) error {
	g.screen("NEW GAME")
	g.p.println("[1] Start Configuration")
	g.p.println("[2] Back")
	g.p.println()

	choice, err := g.p.index("Select an option: ", 2)
	if err != nil {
		return err
	}
	if choice == 2 {
		return nil
	}

	if _, err := g.Build(ctx); err != nil {
		return err
	}
	return g.p.pause("\nPress Enter to return to the main menu...")
}

// Build runs the configurators, shows the result, asks for an optional
// save name and stores the session. It returns the new session id.
func (g *Game) Build(ctx context.Context) (int64, error) {
	g.screen("F1 Car Configuration")

	rec, err := g.Configure()
	if err != nil {
		return 0, err
	}

	g.screen("F1 Car Configuration")
	if err := render.Sheet(g.p.w, rec, g.style); err != nil {
		return 0, err
	}
	g.p.println()

	name, err := g.p.line("Enter a name for this save (optional): ")
	if err != nil {
		return 0, err
	}
	name = setup.NormalizeText(name)

	g.p.println("Please wait...")
	g.p.println("Saving...")
	id, err := g.sessions.CreateSession(ctx, rec, name)
	if err != nil {
		return 0, err
	}
	g.p.printf("Saved successfully! (Id: %d)\n", id)
	g.p.println(g.style.Rule())
	return id, nil
}
