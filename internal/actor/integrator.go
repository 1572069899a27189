package actor

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/pewpew/internal/core"
)

// Physics defaults.
const (
	ThrustAccel = 100.0 // Units per second squared
	MaxSpeed    = 250.0 // Units per second
)

// Integrator advances actors by one fixed tick.
// Call order within a tick is ApplyThrust, Integrate, WrapToScreen.
type Integrator struct {
	Thrust   float64
	MaxSpeed float64
}

// NewIntegrator returns an integrator with the default thrust and speed cap.
func NewIntegrator() Integrator {
	return Integrator{
		Thrust:   ThrustAccel,
		MaxSpeed: MaxSpeed,
	}
}

// ApplyThrust accelerates the actor along the input axes.
// The axis vector is not normalized, so diagonal input accelerates
// sqrt(2) times faster than a single axis.
func (it Integrator) ApplyThrust(a *Actor, in *core.InputState, dt float64) {
	axes := r2.Vec{X: in.XAxis, Y: in.YAxis}
	a.Velocity = r2.Add(a.Velocity, r2.Scale(it.Thrust*dt, axes))
}

// Integrate clamps the speed to MaxSpeed, then advances position by velocity*dt.
// Facing advances by AngVel per call with no dt scaling, so AngVel is
// effectively radians per tick.
func (it Integrator) Integrate(a *Actor, dt float64) {
	normSq := r2.Norm2(a.Velocity)
	if normSq > it.MaxSpeed*it.MaxSpeed {
		a.Velocity = r2.Scale(it.MaxSpeed/math.Sqrt(normSq), a.Velocity)
	}
	a.Pos = r2.Add(a.Pos, r2.Scale(dt, a.Velocity))
	a.Facing += a.AngVel
}

// WrapToScreen moves an actor that left the screen to the opposite edge.
// The world is centred on the origin with half extents w/2 and h/2. Each
// axis is shifted by at most one screen size per call, so the result is
// only back in bounds when the actor overshot by no more than one screen;
// SafeFor reports whether the speed cap guarantees that.
// It returns true if either axis wrapped.
func (it Integrator) WrapToScreen(a *Actor, w, h float64) bool {
	wrapped := false
	halfW := w / 2
	halfH := h / 2

	if a.Pos.X > halfW {
		a.Pos.X -= w
		wrapped = true
	} else if a.Pos.X < -halfW {
		a.Pos.X += w
		wrapped = true
	}

	if a.Pos.Y > halfH {
		a.Pos.Y -= h
		wrapped = true
	} else if a.Pos.Y < -halfH {
		a.Pos.Y += h
		wrapped = true
	}
	return wrapped
}

// TickLifespan counts the actor's remaining life down by dt.
// Reaching zero has no effect here.
func (it Integrator) TickLifespan(a *Actor, dt float64) {
	a.Life -= dt
}

// SafeFor reports whether single-step wrapping stays correct for a w x h
// screen at tick length dt: an actor at MaxSpeed must not cover more than
// one full screen size in one tick.
func (it Integrator) SafeFor(w, h, dt float64) bool {
	step := it.MaxSpeed * dt
	return step <= w && step <= h
}
