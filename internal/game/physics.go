package game

import (
	"math"

	"github.com/irondrift/irondrift/internal/grid"
)

// Intents is the input state sampled once per simulation step. Opposing
// directions cancel; any subset may be active at once.
type Intents struct {
	Up, Down, Left, Right bool
	Boost, Brake          bool
}

// thrustDir derives a unit (or zero) thrust direction from the directional
// intents. Diagonals are normalized so they are not sqrt(2) faster.
func (in Intents) thrustDir() (float64, float64) {
	var dx, dy float64
	if in.Left {
		dx -= 1
	}
	if in.Right {
		dx += 1
	}
	if in.Up {
		dy -= 1
	}
	if in.Down {
		dy += 1
	}
	if dx != 0 && dy != 0 {
		dx *= 1.0 / math.Sqrt2
		dy *= 1.0 / math.Sqrt2
	}
	return dx, dy
}

// moveEpsilon is the displacement below which a step counts as standing still.
const moveEpsilon = 1e-4

// Mover advances the vessel's position and velocity each frame. Exponential
// drag and soft speed capping keep deceleration frame-rate independent; the
// grid edge clamps position without touching velocity.
type Mover struct {
	Accel          float64
	BoostAccelMult float64
	MaxSpeed       float64
	BoostSpeedMult float64
	Drag           float64
	BrakeDrag      float64
	OverspeedDamp  float64
	MaxDelta       float64
	Bounds         grid.Bounds
}

// NewMover builds a Mover from tuning params.
func NewMover(p Params) Mover {
	return Mover{
		Accel:          p.Accel,
		BoostAccelMult: p.BoostAccelMult,
		MaxSpeed:       p.MaxSpeed,
		BoostSpeedMult: p.BoostSpeedMult,
		Drag:           p.Drag,
		BrakeDrag:      p.BrakeDrag,
		OverspeedDamp:  p.OverspeedDamp,
		MaxDelta:       p.MaxDelta,
		Bounds:         p.Grid,
	}
}

// Step advances one frame with a variable delta (clamped to MaxDelta) and
// returns the distance actually traveled.
func (m *Mover) Step(pos *Position, vel *Velocity, in Intents, dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	if dt > m.MaxDelta {
		dt = m.MaxDelta
	}

	// Thrust
	dx, dy := in.thrustDir()
	accel := m.Accel
	cap := m.MaxSpeed
	if in.Boost {
		accel *= m.BoostAccelMult
		cap *= m.BoostSpeedMult
	}
	vel.X += dx * accel * dt
	vel.Y += dy * accel * dt

	// Drag. Braking swaps in a stronger decay rate.
	decay := m.Drag
	if in.Brake {
		decay = m.BrakeDrag
	}
	damp := math.Exp(-decay * dt)
	vel.X *= damp
	vel.Y *= damp

	// Soft speed cap: damp proportionally to the overage so the cap is
	// approached smoothly instead of clipped.
	speed := math.Hypot(vel.X, vel.Y)
	if speed > cap {
		over := (speed - cap) / cap
		soft := math.Exp(-m.OverspeedDamp * over * dt)
		vel.X *= soft
		vel.Y *= soft
	}

	// Integrate and clamp to the grid. Velocity is left alone on clamp so
	// sliding along an edge stays smooth.
	oldX, oldY := pos.X, pos.Y
	pos.X = m.Bounds.ClampX(pos.X + vel.X*dt)
	pos.Y = m.Bounds.ClampY(pos.Y + vel.Y*dt)

	return grid.Dist(oldX, oldY, pos.X, pos.Y)
}

// Speed returns the velocity magnitude.
func Speed(vel *Velocity) float64 {
	return math.Hypot(vel.X, vel.Y)
}
