package actor

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/pewpew/internal/core"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer()

	if p.Kind != KindPlayer {
		t.Errorf("Kind = %v, expected player", p.Kind)
	}
	if p.Pos != (r2.Vec{}) || p.Velocity != (r2.Vec{}) {
		t.Errorf("player should start at rest at the origin, got pos=%v vel=%v", p.Pos, p.Velocity)
	}
	if p.BBox != PlayerBBox || p.Life != PlayerLife {
		t.Errorf("BBox/Life = %v/%v, expected %v/%v", p.BBox, p.Life, PlayerBBox, PlayerLife)
	}
}

func TestApplyThrustSingleTick(t *testing.T) {
	it := NewIntegrator()
	a := NewPlayer()
	in := core.InputState{XAxis: 1}
	dt := 1.0 / 60.0

	it.ApplyThrust(&a, &in, dt)

	if !approx(a.Velocity.X, 100.0/60.0) {
		t.Errorf("Velocity.X = %f, expected %f", a.Velocity.X, 100.0/60.0)
	}
	if a.Velocity.Y != 0 {
		t.Errorf("Velocity.Y = %f, expected 0", a.Velocity.Y)
	}

	// Well below the cap, so Integrate leaves it alone.
	it.Integrate(&a, dt)
	if !approx(a.Velocity.X, 100.0/60.0) {
		t.Errorf("Integrate should not clamp %f", a.Velocity.X)
	}
}

func TestApplyThrustDiagonalNotNormalized(t *testing.T) {
	it := NewIntegrator()
	a := NewPlayer()
	in := core.InputState{XAxis: 1, YAxis: 1}

	it.ApplyThrust(&a, &in, 1.0)

	want := ThrustAccel * math.Sqrt2
	if got := a.Speed(); !approx(got, want) {
		t.Errorf("diagonal speed = %f, expected %f", got, want)
	}
}

func TestIntegrateClampsToMaxSpeed(t *testing.T) {
	it := NewIntegrator()
	a := NewPlayer()
	a.Velocity = r2.Vec{X: 300}

	it.Integrate(&a, 1.0/60.0)

	if a.Velocity != (r2.Vec{X: 250}) {
		t.Errorf("Velocity = %v, expected {250 0}", a.Velocity)
	}
	if !approx(a.Pos.X, 250.0/60.0) {
		t.Errorf("position should advance with the clamped velocity, got %f", a.Pos.X)
	}
}

func TestIntegrateSpeedNeverExceedsMax(t *testing.T) {
	it := NewIntegrator()
	axes := []float64{-1, 0, 1}
	dts := []float64{1.0 / 240.0, 1.0 / 60.0, 1.0 / 30.0, 0.5, 2}

	for _, dt := range dts {
		for _, x := range axes {
			for _, y := range axes {
				a := NewPlayer()
				in := core.InputState{XAxis: x, YAxis: y}
				for i := 0; i < 500; i++ {
					it.ApplyThrust(&a, &in, dt)
					it.Integrate(&a, dt)
					if s := a.Speed(); s > MaxSpeed+1e-9 {
						t.Fatalf("dt=%v axes=(%v,%v) tick %d: speed %f exceeds %f", dt, x, y, i, s, MaxSpeed)
					}
				}
			}
		}
	}
}

func TestIntegrateZeroVelocity(t *testing.T) {
	it := NewIntegrator()
	a := NewPlayer()

	it.Integrate(&a, 1.0/60.0)

	if a.Velocity != (r2.Vec{}) || a.Pos != (r2.Vec{}) {
		t.Errorf("resting actor should stay put, pos=%v vel=%v", a.Pos, a.Velocity)
	}
	if math.IsNaN(a.Velocity.X) || math.IsNaN(a.Velocity.Y) {
		t.Error("zero velocity must not produce NaN")
	}
}

func TestIntegrateFacingIgnoresDT(t *testing.T) {
	it := NewIntegrator()
	a := NewPlayer()
	a.AngVel = 0.5

	it.Integrate(&a, 1.0/60.0)
	it.Integrate(&a, 1.0/60.0)

	if !approx(a.Facing, 1.0) {
		t.Errorf("Facing = %f, expected 1.0 (AngVel added once per call)", a.Facing)
	}
}

func TestWrapToScreen(t *testing.T) {
	tests := []struct {
		name    string
		pos     r2.Vec
		want    r2.Vec
		wrapped bool
	}{
		{"inside", r2.Vec{X: 10, Y: -20}, r2.Vec{X: 10, Y: -20}, false},
		{"right edge exact", r2.Vec{X: 320, Y: 0}, r2.Vec{X: 320, Y: 0}, false},
		{"past right", r2.Vec{X: 330, Y: 0}, r2.Vec{X: -310, Y: 0}, true},
		{"past left", r2.Vec{X: -321, Y: 0}, r2.Vec{X: 319, Y: 0}, true},
		{"past top", r2.Vec{X: 0, Y: 245}, r2.Vec{X: 0, Y: -235}, true},
		{"past bottom", r2.Vec{X: 0, Y: -250}, r2.Vec{X: 0, Y: 230}, true},
		{"corner", r2.Vec{X: 330, Y: -250}, r2.Vec{X: -310, Y: 230}, true},
		{"two screens out wraps once", r2.Vec{X: 1000, Y: 0}, r2.Vec{X: 360, Y: 0}, true},
	}

	it := NewIntegrator()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewPlayer()
			a.Pos = tc.pos

			wrapped := it.WrapToScreen(&a, 640, 480)

			if a.Pos != tc.want {
				t.Errorf("Pos = %v, expected %v", a.Pos, tc.want)
			}
			if wrapped != tc.wrapped {
				t.Errorf("wrapped = %v, expected %v", wrapped, tc.wrapped)
			}
		})
	}
}

func TestWrapToScreenIdempotentInBounds(t *testing.T) {
	it := NewIntegrator()
	a := NewPlayer()
	a.Pos = r2.Vec{X: -100, Y: 200}

	it.WrapToScreen(&a, 640, 480)
	first := a.Pos
	it.WrapToScreen(&a, 640, 480)

	if a.Pos != first || first != (r2.Vec{X: -100, Y: 200}) {
		t.Errorf("wrapping an in-bounds actor should be a no-op, got %v then %v", first, a.Pos)
	}
}

func TestTickLifespan(t *testing.T) {
	it := NewIntegrator()
	a := NewPlayer()

	it.TickLifespan(&a, 1.0)
	if a.Life != 0 {
		t.Errorf("Life = %f, expected 0", a.Life)
	}
	if !a.Expired() {
		t.Error("actor with zero life should report expired")
	}

	it.TickLifespan(&a, 0.25)
	if a.Life != -0.25 {
		t.Errorf("Life should keep counting down past zero, got %f", a.Life)
	}
}

func TestSafeFor(t *testing.T) {
	it := NewIntegrator()

	if !it.SafeFor(640, 480, 1.0/60.0) {
		t.Error("default cap at 60Hz should be safe for 640x480")
	}
	if it.SafeFor(640, 200, 1.0) {
		t.Error("250 units per tick should not be safe for a 200px tall screen")
	}
}

func TestTransforms(t *testing.T) {
	origin := WorldToScreen(640, 480, r2.Vec{})
	if origin != (r2.Vec{X: 320, Y: 240}) {
		t.Errorf("world origin should map to screen centre, got %v", origin)
	}

	topLeft := WorldToScreen(640, 480, r2.Vec{X: -320, Y: 240})
	if topLeft != (r2.Vec{X: 0, Y: 0}) {
		t.Errorf("world top-left should map to (0,0), got %v", topLeft)
	}

	up := VecFromAngle(0)
	if !approx(up.X, 0) || !approx(up.Y, 1) {
		t.Errorf("VecFromAngle(0) = %v, expected up", up)
	}
	right := VecFromAngle(math.Pi / 2)
	if !approx(right.X, 1) || !approx(right.Y, 0) {
		t.Errorf("VecFromAngle(pi/2) = %v, expected right", right)
	}
}
