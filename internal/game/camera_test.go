package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFollowConvergesWithoutOvershoot(t *testing.T) {
	c := NewCamera()
	c.Snap(0, 0)

	prev := 0.0
	for i := 0; i < 300; i++ {
		c.Follow(100, 0, 1.0/60)
		assert.GreaterOrEqual(t, c.OffsetX, prev, "approach is monotonic")
		assert.LessOrEqual(t, c.OffsetX, 100.0, "never overshoots the target")
		prev = c.OffsetX
	}
	assert.InDelta(t, 100.0, c.OffsetX, 1.0)
}

func TestFollowIsFrameRateIndependent(t *testing.T) {
	fine := NewCamera()
	coarse := NewCamera()

	for i := 0; i < 120; i++ {
		fine.Follow(50, 50, 1.0/120)
	}
	for i := 0; i < 30; i++ {
		coarse.Follow(50, 50, 1.0/30)
	}
	// Same wall-clock second of smoothing lands in the same neighborhood
	// regardless of step size.
	assert.InDelta(t, fine.OffsetX, coarse.OffsetX, 1.0)
	assert.InDelta(t, fine.OffsetY, coarse.OffsetY, 1.0)
}

func TestFollowDeadZoneSuppressesJitter(t *testing.T) {
	c := NewCamera()
	c.Snap(10, 10)

	c.Follow(10.2, 10.2, 1.0/60)
	assert.Equal(t, 10.0, c.OffsetX)
	assert.Equal(t, 10.0, c.OffsetY)
}

func TestSnapJumpsImmediately(t *testing.T) {
	c := NewCamera()
	c.Snap(-40, 75.5)
	assert.Equal(t, -40.0, c.OffsetX)
	assert.Equal(t, 75.5, c.OffsetY)
}

func TestZoomStepsAndBounds(t *testing.T) {
	c := NewCamera()
	assert.Equal(t, 1.0, c.Zoom)

	assert.True(t, c.ZoomIn())
	assert.InDelta(t, 1.25, c.Zoom, 1e-9)

	for i := 0; i < 10; i++ {
		c.ZoomIn()
	}
	assert.Equal(t, ZoomMax, c.Zoom)
	assert.False(t, c.ZoomIn(), "pinned at max")

	for i := 0; i < 20; i++ {
		c.ZoomOut()
	}
	assert.Equal(t, ZoomMin, c.Zoom)
	assert.False(t, c.ZoomOut(), "pinned at min")

	assert.True(t, c.ZoomReset())
	assert.Equal(t, 1.0, c.Zoom)
	assert.False(t, c.ZoomReset())
}

func TestZoomOutFromNeutralHitsMinimum(t *testing.T) {
	c := NewCamera()
	c.ZoomOut() // 0.8
	c.ZoomOut() // 0.64
	c.ZoomOut() // clamped
	assert.Equal(t, ZoomMin, c.Zoom)
	assert.True(t, math.Abs(c.Zoom-0.5) < 1e-9)
}
