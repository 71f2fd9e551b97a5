package testutil

import "github.com/roach88/cjr/internal/setup"

// SampleRecord returns a fully populated, valid configuration for a driver
// called "Alice" (28, Pro) on Soft tires at 18 PSI.
func SampleRecord() setup.Record {
	return setup.Record{
		Driver: setup.Driver{Name: "Alice", Age: 28, Experience: "Pro"},
		Aero: setup.Aero{
			FrontWing:      "Balanced",
			RearWing:       "DRS",
			DRSEnabled:     "Yes",
			DownforceLevel: "High",
			WingAngle:      "6–10°",
		},
		Engine: setup.Engine{
			EngineType:   "V6",
			EnginePower:  "Performance",
			Transmission: "Paddle-Shift",
			ERSMode:      "Attack",
			ERSBoost:     "Yes",
		},
		Wheels: setup.Wheels{TireCompound: "Soft", TirePressure: 18},
		Suspension: setup.Suspension{
			SuspensionType:  "Push-rod",
			SuspensionLevel: "Hard",
			SteeringLevel:   "High",
			RideHeight:      "Low",
			CamberToeAngles: "Negative Camber",
		},
		Brakes: setup.Brakes{BrakeType: "Carbon-Ceramic", BrakeLevel: "High", ABSEnabled: "No"},
	}
}

// RecordFor returns SampleRecord with the driver replaced.
func RecordFor(name string, age int, experience string) setup.Record {
	r := SampleRecord()
	r.Driver = setup.Driver{Name: name, Age: age, Experience: experience}
	return r
}
