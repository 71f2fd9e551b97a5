package setup

import (
	"fmt"
	"strconv"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// schemaPaths maps catalog keys to their path in the encoded record.
var schemaPaths = map[string][2]string{
	FieldExperience:      {"driver", "experience"},
	FieldFrontWing:       {"aero", "front_wing"},
	FieldRearWing:        {"aero", "rear_wing"},
	FieldDRSEnabled:      {"aero", "drs_enabled"},
	FieldDownforceLevel:  {"aero", "downforce_level"},
	FieldWingAngle:       {"aero", "wing_angle"},
	FieldEngineType:      {"engine", "engine_type"},
	FieldEnginePower:     {"engine", "engine_power"},
	FieldTransmission:    {"engine", "transmission"},
	FieldERSMode:         {"engine", "ers_mode"},
	FieldERSBoost:        {"engine", "ers_boost"},
	FieldTireCompound:    {"wheels", "tire_compound"},
	FieldSuspensionType:  {"suspension", "suspension_type"},
	FieldSuspensionLevel: {"suspension", "suspension_level"},
	FieldSteeringLevel:   {"suspension", "steering_level"},
	FieldRideHeight:      {"suspension", "ride_height"},
	FieldCamberToeAngles: {"suspension", "camber_toe_angles"},
	FieldBrakeType:       {"brakes", "brake_type"},
	FieldBrakeLevel:      {"brakes", "brake_level"},
	FieldABSEnabled:      {"brakes", "abs_enabled"},
}

var groupOrder = []string{"driver", "aero", "engine", "wheels", "suspension", "brakes"}

// SchemaSource renders the catalog as a CUE definition named #Setup.
// The definition is closed, so unknown keys in a setup file are rejected.
func SchemaSource() string {
	groups := map[string][]string{
		"driver": {
			fmt.Sprintf("name: =~#\"^\\p{L}.{%d,}$\"#", MinDriverNameLen-1),
			fmt.Sprintf("age: int & >=%d & <=%d", MinDriverAge, MaxDriverAge),
		},
		"wheels": {
			fmt.Sprintf("tire_pressure: int & >=%d & <=%d", MinTirePressure, MaxTirePressure),
		},
	}

	for _, s := range Sections {
		for _, f := range s.Fields {
			path, ok := schemaPaths[f.Key]
			if !ok {
				continue
			}
			quoted := make([]string, len(f.Choices))
			for i, c := range f.Choices {
				quoted[i] = strconv.Quote(c.Label)
			}
			groups[path[0]] = append(groups[path[0]],
				fmt.Sprintf("%s: %s", path[1], strings.Join(quoted, " | ")))
		}
	}

	var b strings.Builder
	b.WriteString("#Setup: {\n")
	for _, g := range groupOrder {
		fmt.Fprintf(&b, "\t%s: {\n", g)
		for _, line := range groups[g] {
			fmt.Fprintf(&b, "\t\t%s\n", line)
		}
		b.WriteString("\t}\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// ValidateWithSchema checks r against the CUE rendering of the catalog.
// Failures are reported as a *ValidationError whose field names are
// dotted record paths such as "wheels.tire_pressure".
func ValidateWithSchema(r Record) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(SchemaSource(), cue.Filename("setup.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile setup schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Setup"))

	val := ctx.Encode(r)
	if err := val.Err(); err != nil {
		return fmt.Errorf("encode setup: %w", err)
	}

	err := def.Unify(val).Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var fields []FieldError
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		fields = append(fields, FieldError{
			Field:   strings.Join(e.Path(), "."),
			Message: fmt.Sprintf(format, args...),
		})
	}
	if len(fields) == 0 {
		fields = append(fields, FieldError{Field: "setup", Message: err.Error()})
	}
	return &ValidationError{Fields: fields}
}
