// Package grid holds the coordinate math shared by the simulation and the
// renderer: grid bounds, Manhattan distance, and the isometric projection.
// Everything here is pure: no state, no side effects.
package grid

import "math"

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

// Manhattan returns the Manhattan distance between two cells.
func Manhattan(a, b Cell) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y)
}

// Bounds describes the playable grid extent. Cells run [0, Width) x [0, Height);
// continuous world positions are clamped to [0, Width-1] x [0, Height-1].
type Bounds struct {
	Width  int
	Height int
}

// Contains reports whether a cell lies inside the bounds.
func (b Bounds) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// ClampX clamps a continuous X coordinate into the bounds.
func (b Bounds) ClampX(x float64) float64 {
	return clampFloat(x, 0, float64(b.Width-1))
}

// ClampY clamps a continuous Y coordinate into the bounds.
func (b Bounds) ClampY(y float64) float64 {
	return clampFloat(y, 0, float64(b.Height-1))
}

// Projection maps grid coordinates to screen space using the classic 2:1
// isometric transform. Origin is the screen position of grid cell (0, 0).
type Projection struct {
	OriginX, OriginY float64
	HalfTileW        float64
	HalfTileH        float64
}

// Project converts a continuous grid position to screen coordinates.
func (p Projection) Project(gx, gy float64) (float64, float64) {
	sx := p.OriginX + (gx-gy)*p.HalfTileW
	sy := p.OriginY + (gx+gy)*p.HalfTileH
	return sx, sy
}

// ProjectCell converts an integer cell to screen coordinates.
func (p Projection) ProjectCell(c Cell) (float64, float64) {
	return p.Project(float64(c.X), float64(c.Y))
}

// Recentered returns a copy of the projection with a new origin. Used when the
// window is resized; the transform itself never changes.
func (p Projection) Recentered(originX, originY float64) Projection {
	p.OriginX = originX
	p.OriginY = originY
	return p
}

// Dist returns the Euclidean distance between two continuous grid positions.
func Dist(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
