package setup

// Field keys. They match the Sessions column names.
const (
	FieldDriverName      = "DriverName"
	FieldDriverAge       = "DriverAge"
	FieldExperience      = "Experience"
	FieldFrontWing       = "FrontWing"
	FieldRearWing        = "RearWing"
	FieldDRSEnabled      = "DRSEnabled"
	FieldDownforceLevel  = "DownforceLevel"
	FieldWingAngle       = "WingAngle"
	FieldEngineType      = "EngineType"
	FieldEnginePower     = "EnginePower"
	FieldTransmission    = "Transmission"
	FieldERSMode         = "ERSMode"
	FieldERSBoost        = "ERSBoost"
	FieldTireCompound    = "TireCompound"
	FieldTirePressure    = "TirePressure"
	FieldSuspensionType  = "SuspensionType"
	FieldSuspensionLevel = "SuspensionLevel"
	FieldSteeringLevel   = "SteeringLevel"
	FieldRideHeight      = "RideHeight"
	FieldCamberToeAngles = "CamberToeAngles"
	FieldBrakeType       = "BrakeType"
	FieldBrakeLevel      = "BrakeLevel"
	FieldABSEnabled      = "ABSEnabled"
)

// Numeric and name bounds enforced by the configurators.
const (
	MinDriverAge     = 16
	MaxDriverAge     = 60
	MinTirePressure  = 10
	MaxTirePressure  = 25
	MinDriverNameLen = 3
)

// Choice is one selectable label. Hint is shown next to the label in the
// menu but never stored.
type Choice struct {
	Label string
	Hint  string
}

// ChoiceField is an enum-valued field and the prompt used to ask for it.
type ChoiceField struct {
	Key     string
	Prompt  string
	Choices []Choice
}

// Labels returns the stored labels in menu order.
func (f ChoiceField) Labels() []string {
	labels := make([]string, len(f.Choices))
	for i, c := range f.Choices {
		labels[i] = c.Label
	}
	return labels
}

// Has reports whether label is one of the field's choices.
func (f ChoiceField) Has(label string) bool {
	for _, c := range f.Choices {
		if c.Label == label {
			return true
		}
	}
	return false
}

// Section groups the choice fields of one configurator screen.
type Section struct {
	Title  string
	Fields []ChoiceField
}

func plain(labels ...string) []Choice {
	out := make([]Choice, len(labels))
	for i, l := range labels {
		out[i] = Choice{Label: l}
	}
	return out
}

// Sections is the catalog in configurator order. Driver name, driver age and
// tire pressure are free-form and not listed as choice fields.
var Sections = []Section{
	{
		Title: "Driver Info",
		Fields: []ChoiceField{
			{Key: FieldExperience, Prompt: "Experience Level", Choices: plain("Rookie", "Intermediate", "Pro")},
		},
	},
	{
		Title: "Aerodynamics",
		Fields: []ChoiceField{
			{Key: FieldFrontWing, Prompt: "Front Wing Type", Choices: plain("Low", "High", "Balanced", "Heavy-load")},
			{Key: FieldRearWing, Prompt: "Rear Wing Type", Choices: plain("Low", "High", "DRS", "Balanced")},
			{Key: FieldDRSEnabled, Prompt: "Enable DRS? (Drag Reduction System)", Choices: []Choice{
				{Label: "Yes", Hint: "Increases speed in straight line paths"},
				{Label: "No", Hint: "Helps in having a smooth turn in curve paths"},
			}},
			{Key: FieldDownforceLevel, Prompt: "Downforce Level", Choices: plain("Low", "Medium", "High", "Extreme")},
			{Key: FieldWingAngle, Prompt: "Wing Angle Setup", Choices: plain("0–5°", "6–10°", "11–15°", "16–20°")},
		},
	},
	{
		Title: "Engine & Powertrain",
		Fields: []ChoiceField{
			{Key: FieldEngineType, Prompt: "Engine Type", Choices: plain("Inline-4", "V6", "V8", "V10")},
			{Key: FieldEnginePower, Prompt: "Engine Tune", Choices: plain("Standard", "Sport", "Performance", "Extreme")},
			{Key: FieldTransmission, Prompt: "Transmission", Choices: plain("Manual", "Automatic", "Sequential", "Paddle-Shift")},
			{Key: FieldERSMode, Prompt: "ERS Mode (Energy Recovery System)", Choices: plain("Charge", "Balanced", "Attack", "Overtake")},
			{Key: FieldERSBoost, Prompt: "Activate ERS Boost?", Choices: []Choice{
				{Label: "Yes", Hint: "gives a temporary speed or acceleration bonus"},
				{Label: "No", Hint: "slightly slower but greatly helps with control"},
			}},
		},
	},
	{
		Title: "Wheels and Tires",
		Fields: []ChoiceField{
			{Key: FieldTireCompound, Prompt: "Tire Compound", Choices: plain("Soft", "Medium", "Hard")},
		},
	},
	{
		Title: "Suspension & Handling",
		Fields: []ChoiceField{
			{Key: FieldSuspensionType, Prompt: "Suspension Type", Choices: plain("Push-rod", "Pull-rod", "Active", "Soft-ride")},
			{Key: FieldSuspensionLevel, Prompt: "Suspension Stiffness", Choices: plain("Soft", "Medium", "Hard", "Track-Extreme")},
			{Key: FieldSteeringLevel, Prompt: "Steering Sensitivity", Choices: plain("Low", "Medium", "High", "Extreme")},
			{Key: FieldRideHeight, Prompt: "Ride Height", Choices: plain("Low", "Medium", "High", "Ultra-Low")},
			{Key: FieldCamberToeAngles, Prompt: "Alignment Setup", Choices: plain("Neutral", "Negative Camber", "Positive Toe", "Aggressive Track")},
		},
	},
	{
		Title: "Braking System",
		Fields: []ChoiceField{
			{Key: FieldBrakeType, Prompt: "Brake Type", Choices: plain("Standard", "Carbon-Ceramic", "Carbon-Carbon", "Performance-Ventilated")},
			{Key: FieldBrakeLevel, Prompt: "Brake Sensitivity", Choices: plain("Low", "Medium", "High", "Track-Max")},
			{Key: FieldABSEnabled, Prompt: "Enable ABS (Anti-lock Braking System)?", Choices: plain("Yes", "No")},
		},
	},
}

// Lookup returns the choice field registered under key.
func Lookup(key string) (ChoiceField, bool) {
	for _, s := range Sections {
		for _, f := range s.Fields {
			if f.Key == key {
				return f, true
			}
		}
	}
	return ChoiceField{}, false
}

// Set stores value into the record field named by key. It reports false for
// keys that are not text fields of the record.
func (r *Record) Set(key, value string) bool {
	for _, f := range r.textFields() {
		if f.key == key {
			*f.ptr = value
			return true
		}
	}
	return false
}

// Get returns the text field named by key.
func (r *Record) Get(key string) (string, bool) {
	for _, f := range r.textFields() {
		if f.key == key {
			return *f.ptr, true
		}
	}
	return "", false
}
