package game

import "github.com/irondrift/irondrift/internal/grid"

// Params holds every tuning value the simulation reads. The cmd shell fills
// one in from config; tests use DefaultParams.
type Params struct {
	Grid      grid.Bounds
	StartCell grid.Cell

	// Movement integrator
	Accel          float64 // thrust, grid units per second^2
	BoostAccelMult float64
	MaxSpeed       float64 // grid units per second
	BoostSpeedMult float64
	Drag           float64 // exponential decay rate per second
	BrakeDrag      float64 // replaces Drag while braking
	OverspeedDamp  float64 // extra decay rate per unit of cap overage
	MaxDelta       float64 // time step clamp, seconds

	// Ship economy
	MaxHull               int
	MaxFuel               float64
	FuelPerUnit           float64 // fuel drained per grid unit traveled
	EmptyFuelDamageChance float64 // per-step hull damage odds while dry
	FragmentTotal         int

	// Interaction and presentation
	InteractRadius float64
	FogRadius      float64

	// POI layout
	FillerCount int
	MinHubDist  int
	MaxAttempts int

	// Persistence
	SaveThrottle float64 // min sim-seconds between movement-driven writes
}

// DefaultParams returns the stock tuning. Values mirror the config defaults.
func DefaultParams() Params {
	return Params{
		Grid:      grid.Bounds{Width: 48, Height: 48},
		StartCell: grid.Cell{X: 24, Y: 24},

		Accel:          18.0,
		BoostAccelMult: 1.8,
		MaxSpeed:       6.0,
		BoostSpeedMult: 1.6,
		Drag:           2.2,
		BrakeDrag:      7.5,
		OverspeedDamp:  4.0,
		MaxDelta:       0.05,

		MaxHull:               10,
		MaxFuel:               100.0,
		FuelPerUnit:           0.8,
		EmptyFuelDamageChance: 0.006,
		FragmentTotal:         10,

		InteractRadius: 0.70,
		FogRadius:      7.0,

		FillerCount: 26,
		MinHubDist:  6,
		MaxAttempts: 5000,

		SaveThrottle: 0.25,
	}
}
