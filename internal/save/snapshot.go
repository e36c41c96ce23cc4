// Package save is the persistence gateway: it serializes the run state to a
// local SQLite database and restores it on boot. The simulation only sees the
// Snapshot type and the Store interface; how the blob is stored is not its
// concern.
package save

// ShipState is the persisted economy block.
type ShipState struct {
	Hull      int     `json:"hull"`
	MaxHull   int     `json:"maxHull"`
	Scrap     int     `json:"scrap"`
	Fuel      float64 `json:"fuel"`
	MaxFuel   float64 `json:"maxFuel"`
	Legendary bool    `json:"hasLegendary"`
	Fragments []int   `json:"fragments"`
}

// PlayerState is the persisted vessel position.
type PlayerState struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// POIState is one persisted point of interest.
type POIState struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"type"`
}

// Snapshot is the full persisted run state. Unknown or missing fields on load
// fall back to in-memory defaults; the layout carries no version marker.
type Snapshot struct {
	Ship        ShipState   `json:"ship"`
	Player      PlayerState `json:"player"`
	POIs        []POIState  `json:"pois"`
	RunID       string      `json:"runId,omitempty"`
	TerrainSeed int64       `json:"terrainSeed,omitempty"`
}

// Store is the narrow contract the simulation depends on. Save failures are
// the caller's to log and ignore; Load reports ok=false for any state that
// cannot be used, which the caller treats as a fresh start.
type Store interface {
	Save(snap Snapshot) error
	Load() (snap Snapshot, ok bool)
}
