package game

import "math"

// Zoom bounds and the multiplicative step between zoom levels.
const (
	ZoomMin  = 0.5
	ZoomMax  = 2.0
	ZoomStep = 1.25
)

// Camera is a screen-space translation smoothed toward whatever keeps the
// vessel centered. It is never persisted; each session rebuilds it.
type Camera struct {
	OffsetX, OffsetY float64
	Zoom             float64

	FollowRate float64 // smoothing rate per second
	DeadZone   float64 // pixels; corrections below this are suppressed
}

// NewCamera returns a camera at rest with neutral zoom.
func NewCamera() Camera {
	return Camera{Zoom: 1.0, FollowRate: 5.0, DeadZone: 0.5}
}

// Follow eases the offset toward the target using exponential smoothing, so
// the approach speed is independent of frame rate.
func (c *Camera) Follow(targetX, targetY, dt float64) {
	blend := 1 - math.Exp(-c.FollowRate*dt)
	if math.Abs(targetX-c.OffsetX) > c.DeadZone {
		c.OffsetX += (targetX - c.OffsetX) * blend
	}
	if math.Abs(targetY-c.OffsetY) > c.DeadZone {
		c.OffsetY += (targetY - c.OffsetY) * blend
	}
}

// Snap jumps the offset straight to the target. Used after zoom changes and
// window resizes, where smoothing would read as a visible pop.
func (c *Camera) Snap(targetX, targetY float64) {
	c.OffsetX = targetX
	c.OffsetY = targetY
}

// ZoomIn steps zoom up one notch. Returns true if the zoom changed.
func (c *Camera) ZoomIn() bool {
	return c.setZoom(c.Zoom * ZoomStep)
}

// ZoomOut steps zoom down one notch. Returns true if the zoom changed.
func (c *Camera) ZoomOut() bool {
	return c.setZoom(c.Zoom / ZoomStep)
}

// ZoomReset restores neutral zoom. Returns true if the zoom changed.
func (c *Camera) ZoomReset() bool {
	return c.setZoom(1.0)
}

func (c *Camera) setZoom(z float64) bool {
	if z < ZoomMin {
		z = ZoomMin
	}
	if z > ZoomMax {
		z = ZoomMax
	}
	if z == c.Zoom {
		return false
	}
	c.Zoom = z
	return true
}
