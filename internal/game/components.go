package game

// ECS components for the vessel entity.

// Position is the vessel's continuous world position in grid units.
type Position struct {
	X, Y float64
}

// Velocity is the vessel's world velocity in grid units per second.
type Velocity struct {
	X, Y float64
}

// PlayerControlled tags the entity driven by input intents.
type PlayerControlled struct{}
