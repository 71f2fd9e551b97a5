package render

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/roach88/cjr/internal/setup"
)

// Placeholder is shown for values that were never stored.
const Placeholder = "-"

type entry struct {
	label string
	value string
}

type block struct {
	title   string
	entries []entry
}

func text(v string) string {
	if v == "" {
		return Placeholder
	}
	return v
}

func number(n int, unit string) string {
	if n == 0 {
		return Placeholder
	}
	return strconv.Itoa(n) + unit
}

func blocks(r setup.Record) []block {
	return []block{
		{"Driver Info", []entry{
			{"Name", text(r.Driver.Name)},
			{"Age", number(r.Driver.Age, "")},
			{"Experience", text(r.Driver.Experience)},
		}},
		{"Aerodynamics", []entry{
			{"Front Wing", text(r.Aero.FrontWing)},
			{"Rear Wing", text(r.Aero.RearWing)},
			{"DRS Enabled", text(r.Aero.DRSEnabled)},
			{"Downforce", text(r.Aero.DownforceLevel)},
			{"Wing Angle", text(r.Aero.WingAngle)},
		}},
		{"Engine & Powertrain", []entry{
			{"Engine Type", text(r.Engine.EngineType)},
			{"Engine Power", text(r.Engine.EnginePower)},
			{"Transmission", text(r.Engine.Transmission)},
			{"ERS Mode", text(r.Engine.ERSMode)},
			{"ERS Boost", text(r.Engine.ERSBoost)},
		}},
		{"Wheels and Tires", []entry{
			{"Tire Compound", text(r.Wheels.TireCompound)},
			{"Tire Pressure", number(r.Wheels.TirePressure, " PSI")},
		}},
		{"Suspension & Handling", []entry{
			{"Suspension Type", text(r.Suspension.SuspensionType)},
			{"Suspension Level", text(r.Suspension.SuspensionLevel)},
			{"Steering Level", text(r.Suspension.SteeringLevel)},
			{"Ride Height", text(r.Suspension.RideHeight)},
			{"Alignment Setup", text(r.Suspension.CamberToeAngles)},
		}},
		{"Braking System", []entry{
			{"Brake Type", text(r.Brakes.BrakeType)},
			{"Sensitivity", text(r.Brakes.BrakeLevel)},
			{"ABS Enabled", text(r.Brakes.ABSEnabled)},
		}},
	}
}

// Sheet writes the full configuration, one headed block per category.
func Sheet(w io.Writer, r setup.Record, st Style) error {
	for i, b := range blocks(r) {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeBlock(w, b, st); err != nil {
			return err
		}
	}
	return nil
}

func writeBlock(w io.Writer, b block, st Style) error {
	width := 0
	for _, e := range b.entries {
		width = max(width, utf8.RuneCountInString(e.label))
	}

	if _, err := fmt.Fprintln(w, st.Heading(b.title)); err != nil {
		return err
	}
	for _, e := range b.entries {
		if _, err := fmt.Fprintf(w, "%-*s : %s\n", width, e.label, e.value); err != nil {
			return err
		}
	}
	return nil
}
