// Package actor holds the moving entities of the game and the fixed-timestep
// integrator that advances them.
package actor

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Kind tags an actor's variant. Behavior that differs per kind switches on it.
type Kind int

const (
	KindPlayer Kind = iota
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Player defaults.
const (
	PlayerLife = 1.0  // Seconds
	PlayerBBox = 12.0 // Bounding radius in pixels
)

// Actor is a single moving entity in world space.
// World space is centred on the origin with y pointing up.
type Actor struct {
	Kind     Kind
	Pos      r2.Vec  // World position
	Facing   float64 // Radians
	Velocity r2.Vec  // Units per second
	AngVel   float64 // Radians per tick, see Integrator.Integrate
	BBox     float64 // Bounding radius, unused by the integrator
	Life     float64 // Remaining lifespan in seconds
}

// NewPlayer creates a player at the origin, at rest.
func NewPlayer() Actor {
	return Actor{
		Kind: KindPlayer,
		BBox: PlayerBBox,
		Life: PlayerLife,
	}
}

// Speed returns the magnitude of the actor's velocity.
func (a *Actor) Speed() float64 {
	return r2.Norm(a.Velocity)
}

// Expired reports whether the lifespan has run out.
// Nothing in the integrator acts on it; removal is up to the caller.
func (a *Actor) Expired() bool {
	return a.Life <= 0
}
