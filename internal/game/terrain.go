package game

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/irondrift/irondrift/internal/grid"
)

// Terrain is the cosmetic ground-shade field under the grid. It is derived
// from a seed kept in the snapshot, so a run's terrain looks the same across
// sessions without the tiles themselves being persisted.
type Terrain struct {
	Seed  int64
	noise opensimplex.Noise
}

// terrainScale stretches the noise so shading varies over a handful of tiles.
const terrainScale = 0.17

// NewTerrain builds the shade field for a seed.
func NewTerrain(seed int64) *Terrain {
	return &Terrain{
		Seed:  seed,
		noise: opensimplex.NewNormalized(seed),
	}
}

// Shade returns a stable value in [0, 1) for a cell.
func (t *Terrain) Shade(c grid.Cell) float64 {
	return t.noise.Eval2(float64(c.X)*terrainScale, float64(c.Y)*terrainScale)
}
