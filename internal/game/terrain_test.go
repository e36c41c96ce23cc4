package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/irondrift/irondrift/internal/grid"
)

func TestTerrainShadeIsStablePerSeed(t *testing.T) {
	a := NewTerrain(12345)
	b := NewTerrain(12345)
	c := NewTerrain(54321)

	cell := grid.Cell{X: 7, Y: 31}
	assert.Equal(t, a.Shade(cell), b.Shade(cell), "same seed, same field")
	assert.NotEqual(t, a.Shade(cell), c.Shade(cell))
}

func TestTerrainShadeStaysNormalized(t *testing.T) {
	tr := NewTerrain(99)
	for x := 0; x < 48; x += 3 {
		for y := 0; y < 48; y += 3 {
			s := tr.Shade(grid.Cell{X: x, Y: y})
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0)
		}
	}
}
