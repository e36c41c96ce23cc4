package game

import (
	"math/rand/v2"

	"github.com/irondrift/irondrift/internal/grid"
)

// POIKind identifies what a point of interest is.
type POIKind uint8

const (
	POIHub    POIKind = iota // station: services, no risk, always visible
	POIVault                 // gated behind the legendary flag
	POIWreck                 // salvage, some risk
	POIRuin                  // salvage and fragments, more risk
	POIBeacon                // fragment signals, safe
	POIDebris                // light salvage, light risk
	POIKindCount             // sentinel
)

// fillerKinds are the kinds eligible for random placement. Anchors (hub,
// vault) are never generated.
var fillerKinds = []POIKind{POIWreck, POIRuin, POIBeacon, POIDebris}

var poiNames = [POIKindCount]string{
	POIHub:    "hub",
	POIVault:  "vault",
	POIWreck:  "wreck",
	POIRuin:   "ruin",
	POIBeacon: "beacon",
	POIDebris: "debris",
}

// Name returns the persisted type tag for a kind.
func (k POIKind) Name() string {
	if k < POIKindCount {
		return poiNames[k]
	}
	return "unknown"
}

// POIKindFromName maps a persisted type tag back to a kind.
func POIKindFromName(name string) (POIKind, bool) {
	for k := POIKind(0); k < POIKindCount; k++ {
		if poiNames[k] == name {
			return k, true
		}
	}
	return POIKindCount, false
}

var poiLabels = [POIKindCount]string{
	POIHub:    "Haven Station",
	POIVault:  "Sealed Vault",
	POIWreck:  "Ship Wreck",
	POIRuin:   "Old Ruin",
	POIBeacon: "Signal Beacon",
	POIDebris: "Debris Field",
}

// Label returns the human-readable name for a kind.
func (k POIKind) Label() string {
	if k < POIKindCount {
		return poiLabels[k]
	}
	return "Unknown"
}

// POI is a fixed interactable on the grid. Placed once per run, never moved.
type POI struct {
	Cell grid.Cell
	Kind POIKind
}

// DefaultAnchors returns the fixed POIs every run starts with: the hub near
// the start cell and the vault in the far corner.
func DefaultAnchors(b grid.Bounds) []POI {
	return []POI{
		{Cell: grid.Cell{X: b.Width / 2, Y: b.Height/2 - 4}, Kind: POIHub},
		{Cell: grid.Cell{X: b.Width / 8, Y: b.Height - 6}, Kind: POIVault},
	}
}

// GeneratePOIs lays out a run's POI set: all anchors verbatim, then up to
// target randomly placed fillers. Every generated cell must be unoccupied,
// at least minHubDist (Manhattan) from the hub, and at Manhattan distance > 1
// from every placed POI. Sampling is uniform with rejection; when the attempt
// budget runs out the partial layout is returned as-is.
func GeneratePOIs(rng *rand.Rand, b grid.Bounds, anchors []POI, target, minHubDist, maxAttempts int) []POI {
	pois := make([]POI, 0, len(anchors)+target)
	pois = append(pois, anchors...)

	hub := grid.Cell{}
	for _, a := range anchors {
		if a.Kind == POIHub {
			hub = a.Cell
			break
		}
	}

	placed := 0
	for attempts := 0; placed < target && attempts < maxAttempts; attempts++ {
		c := grid.Cell{X: rng.IntN(b.Width), Y: rng.IntN(b.Height)}
		if !placeable(c, hub, minHubDist, pois) {
			continue
		}
		pois = append(pois, POI{
			Cell: c,
			Kind: fillerKinds[rng.IntN(len(fillerKinds))],
		})
		placed++
	}
	return pois
}

func placeable(c, hub grid.Cell, minHubDist int, placed []POI) bool {
	if grid.Manhattan(c, hub) < minHubDist {
		return false
	}
	for _, p := range placed {
		if grid.Manhattan(c, p.Cell) <= 1 {
			return false
		}
	}
	return true
}
