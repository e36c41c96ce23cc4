package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irondrift/irondrift/internal/grid"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed>>16|7))
}

func TestGeneratePOIsHonorsConstraints(t *testing.T) {
	b := grid.Bounds{Width: 48, Height: 48}
	anchors := DefaultAnchors(b)

	for seed := uint64(1); seed <= 8; seed++ {
		rng := testRNG(seed)
		pois := GeneratePOIs(rng, b, anchors, 26, 6, 5000)

		require.Len(t, pois, len(anchors)+26, "seed %d", seed)

		// Anchors survive verbatim at the head of the layout.
		assert.Equal(t, anchors[0], pois[0])
		assert.Equal(t, anchors[1], pois[1])

		hub := anchors[0].Cell
		seen := map[grid.Cell]bool{}
		for i, p := range pois {
			assert.True(t, b.Contains(p.Cell), "seed %d: POI off grid", seed)
			assert.False(t, seen[p.Cell], "seed %d: duplicate cell %v", seed, p.Cell)
			seen[p.Cell] = true

			if i < len(anchors) {
				continue
			}
			assert.GreaterOrEqual(t, grid.Manhattan(p.Cell, hub), 6,
				"seed %d: filler crowds the hub", seed)
			assert.NotEqual(t, POIHub, p.Kind, "fillers never spawn a second hub")
			assert.NotEqual(t, POIVault, p.Kind, "fillers never spawn a second vault")
			for j := 0; j < i; j++ {
				assert.Greater(t, grid.Manhattan(p.Cell, pois[j].Cell), 1,
					"seed %d: POIs %d and %d adjacent", seed, i, j)
			}
		}
	}
}

func TestGeneratePOIsReturnsPartialLayoutWhenBudgetRunsOut(t *testing.T) {
	// A 3x3 grid with a large hub exclusion cannot fit 50 fillers.
	b := grid.Bounds{Width: 3, Height: 3}
	anchors := []POI{{Cell: grid.Cell{X: 1, Y: 1}, Kind: POIHub}}

	pois := GeneratePOIs(testRNG(42), b, anchors, 50, 6, 200)

	assert.Less(t, len(pois), 51)
	assert.Equal(t, anchors[0], pois[0], "anchors kept even when no filler fits")
}

func TestGeneratePOIsIsDeterministicPerSeed(t *testing.T) {
	b := grid.Bounds{Width: 48, Height: 48}
	anchors := DefaultAnchors(b)

	a := GeneratePOIs(testRNG(99), b, anchors, 26, 6, 5000)
	c := GeneratePOIs(testRNG(99), b, anchors, 26, 6, 5000)
	assert.Equal(t, a, c)
}

func TestPOIKindNameRoundTrip(t *testing.T) {
	for k := POIKind(0); k < POIKindCount; k++ {
		got, ok := POIKindFromName(k.Name())
		require.True(t, ok, "kind %d", k)
		assert.Equal(t, k, got)
	}

	_, ok := POIKindFromName("nebula")
	assert.False(t, ok)
	assert.Equal(t, "unknown", POIKindCount.Name())
}
