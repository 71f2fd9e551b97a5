package setup

// validRecord returns a record that passes every check.
func validRecord() Record {
	return Record{
		Driver: Driver{Name: "Alice", Age: 28, Experience: "Pro"},
		Aero: Aero{
			FrontWing:      "Balanced",
			RearWing:       "DRS",
			DRSEnabled:     "Yes",
			DownforceLevel: "High",
			WingAngle:      "6–10°",
		},
		Engine: Engine{
			EngineType:   "V6",
			EnginePower:  "Performance",
			Transmission: "Paddle-Shift",
			ERSMode:      "Attack",
			ERSBoost:     "Yes",
		},
		Wheels: Wheels{TireCompound: "Soft", TirePressure: 18},
		Suspension: Suspension{
			SuspensionType:  "Push-rod",
			SuspensionLevel: "Hard",
			SteeringLevel:   "High",
			RideHeight:      "Low",
			CamberToeAngles: "Negative Camber",
		},
		Brakes: Brakes{BrakeType: "Carbon-Ceramic", BrakeLevel: "High", ABSEnabled: "No"},
	}
}
