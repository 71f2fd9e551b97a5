package setup

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Driver is the driver profile.
type Driver struct {
	Name       string `json:"name" yaml:"name"`
	Age        int    `json:"age" yaml:"age"`
	Experience string `json:"experience" yaml:"experience"`
}

// Aero is the aerodynamics package.
type Aero struct {
	FrontWing      string `json:"front_wing" yaml:"front_wing"`
	RearWing       string `json:"rear_wing" yaml:"rear_wing"`
	DRSEnabled     string `json:"drs_enabled" yaml:"drs_enabled"`
	DownforceLevel string `json:"downforce_level" yaml:"downforce_level"`
	WingAngle      string `json:"wing_angle" yaml:"wing_angle"`
}

// Engine is the engine and powertrain package.
type Engine struct {
	EngineType   string `json:"engine_type" yaml:"engine_type"`
	EnginePower  string `json:"engine_power" yaml:"engine_power"`
	Transmission string `json:"transmission" yaml:"transmission"`
	ERSMode      string `json:"ers_mode" yaml:"ers_mode"`
	ERSBoost     string `json:"ers_boost" yaml:"ers_boost"`
}

// Wheels is the wheel and tire package. TirePressure is in PSI.
type Wheels struct {
	TireCompound string `json:"tire_compound" yaml:"tire_compound"`
	TirePressure int    `json:"tire_pressure" yaml:"tire_pressure"`
}

// Suspension is the suspension and handling package.
type Suspension struct {
	SuspensionType  string `json:"suspension_type" yaml:"suspension_type"`
	SuspensionLevel string `json:"suspension_level" yaml:"suspension_level"`
	SteeringLevel   string `json:"steering_level" yaml:"steering_level"`
	RideHeight      string `json:"ride_height" yaml:"ride_height"`
	CamberToeAngles string `json:"camber_toe_angles" yaml:"camber_toe_angles"`
}

// Brakes is the braking system package.
type Brakes struct {
	BrakeType  string `json:"brake_type" yaml:"brake_type"`
	BrakeLevel string `json:"brake_level" yaml:"brake_level"`
	ABSEnabled string `json:"abs_enabled" yaml:"abs_enabled"`
}

// Record is one complete car configuration. The six groups always travel
// together; there is no partial record.
type Record struct {
	Driver     Driver     `json:"driver" yaml:"driver"`
	Aero       Aero       `json:"aero" yaml:"aero"`
	Engine     Engine     `json:"engine" yaml:"engine"`
	Wheels     Wheels     `json:"wheels" yaml:"wheels"`
	Suspension Suspension `json:"suspension" yaml:"suspension"`
	Brakes     Brakes     `json:"brakes" yaml:"brakes"`
}

// Normalize returns a copy of r with every text field trimmed and in Unicode
// NFC form, so that labels typed or stored with different compositions
// ("16–20°" with a decomposed degree sign, a driver name with combining
// accents) compare equal.
func (r Record) Normalize() Record {
	for _, f := range r.textFields() {
		*f.ptr = NormalizeText(*f.ptr)
	}
	return r
}

// NormalizeText trims s and converts it to NFC.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// textField addresses one string field of a Record by its catalog key.
type textField struct {
	key string
	ptr *string
}

// textFields lists the record's string fields in column order. The pointers
// refer to r, so callers must hold a pointer receiver or a local copy.
func (r *Record) textFields() []textField {
	return []textField{
		{FieldDriverName, &r.Driver.Name},
		{FieldExperience, &r.Driver.Experience},
		{FieldFrontWing, &r.Aero.FrontWing},
		{FieldRearWing, &r.Aero.RearWing},
		{FieldDRSEnabled, &r.Aero.DRSEnabled},
		{FieldDownforceLevel, &r.Aero.DownforceLevel},
		{FieldWingAngle, &r.Aero.WingAngle},
		{FieldEngineType, &r.Engine.EngineType},
		{FieldEnginePower, &r.Engine.EnginePower},
		{FieldTransmission, &r.Engine.Transmission},
		{FieldERSMode, &r.Engine.ERSMode},
		{FieldERSBoost, &r.Engine.ERSBoost},
		{FieldTireCompound, &r.Wheels.TireCompound},
		{FieldSuspensionType, &r.Suspension.SuspensionType},
		{FieldSuspensionLevel, &r.Suspension.SuspensionLevel},
		{FieldSteeringLevel, &r.Suspension.SteeringLevel},
		{FieldRideHeight, &r.Suspension.RideHeight},
		{FieldCamberToeAngles, &r.Suspension.CamberToeAngles},
		{FieldBrakeType, &r.Brakes.BrakeType},
		{FieldBrakeLevel, &r.Brakes.BrakeLevel},
		{FieldABSEnabled, &r.Brakes.ABSEnabled},
	}
}
