package core

import "fmt"

// Key identifies a physical key the game reacts to.
// Hosts translate their native key codes into these values.
type Key int

const (
	KeyNone Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyEscape
	KeyP
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyEscape:
		return "Escape"
	case KeyP:
		return "P"
	default:
		return "None"
	}
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// InputState is the per-session snapshot of control intent.
// The zero value is the documented default: no axis deflection, no click, not firing.
type InputState struct {
	XAxis  float64 // -1 (A), 0, or 1 (D)
	YAxis  float64 // -1 (S), 0, or 1 (W)
	XClick float64 // Last click position in screen pixels
	YClick float64
	Fire   bool
}

// AxisMode selects how key transitions map onto the axes.
type AxisMode string

const (
	// AxisEdge sets the whole axis on key-down and clears it on key-up.
	// Releasing one key while the opposite one is still held zeroes the axis.
	AxisEdge AxisMode = "edge"

	// AxisHeld tracks the set of held keys and derives each axis from it.
	AxisHeld AxisMode = "held"
)

// ParseAxisMode validates an axis mode name. Empty means AxisEdge.
func ParseAxisMode(s string) (AxisMode, error) {
	switch AxisMode(s) {
	case "", AxisEdge:
		return AxisEdge, nil
	case AxisHeld:
		return AxisHeld, nil
	}
	return "", fmt.Errorf("unknown axis mode %q (want %q or %q)", s, AxisEdge, AxisHeld)
}

// Controls applies key and mouse transitions to an InputState.
// It is the event-dispatch side of the input contract: hosts call these
// handlers synchronously as events arrive, and the simulation only reads
// the resulting InputState.
type Controls struct {
	mode AxisMode
	held map[Key]bool
}

// NewControls creates a handler for the given axis mode.
func NewControls(mode AxisMode) *Controls {
	if mode == "" {
		mode = AxisEdge
	}
	return &Controls{
		mode: mode,
		held: make(map[Key]bool),
	}
}

// KeyDown handles a key press. Non-movement keys are ignored.
func (c *Controls) KeyDown(in *InputState, k Key) {
	if !isMovementKey(k) {
		return
	}
	if c.mode == AxisHeld {
		c.held[k] = true
		c.deriveAxes(in)
		return
	}

	switch k {
	case KeyW:
		in.YAxis = 1
	case KeyS:
		in.YAxis = -1
	case KeyA:
		in.XAxis = -1
	case KeyD:
		in.XAxis = 1
	}
}

// KeyUp handles a key release. Non-movement keys are ignored.
func (c *Controls) KeyUp(in *InputState, k Key) {
	if !isMovementKey(k) {
		return
	}
	if c.mode == AxisHeld {
		delete(c.held, k)
		c.deriveAxes(in)
		return
	}

	switch k {
	case KeyW, KeyS:
		in.YAxis = 0
	case KeyA, KeyD:
		in.XAxis = 0
	}
}

// MouseDown records the click position and starts firing.
func (c *Controls) MouseDown(in *InputState, x, y float64) {
	in.XClick = x
	in.YClick = y
	in.Fire = true
}

// MouseUp clears the click position and stops firing.
func (c *Controls) MouseUp(in *InputState) {
	in.XClick = 0
	in.YClick = 0
	in.Fire = false
}

// Reset forgets all held keys.
func (c *Controls) Reset() {
	clear(c.held)
}

func (c *Controls) deriveAxes(in *InputState) {
	in.XAxis = axisValue(c.held[KeyD], c.held[KeyA])
	in.YAxis = axisValue(c.held[KeyW], c.held[KeyS])
}

func axisValue(positive, negative bool) float64 {
	var v float64
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}

func isMovementKey(k Key) bool {
	return k == KeyW || k == KeyA || k == KeyS || k == KeyD
}
