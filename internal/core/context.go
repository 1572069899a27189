package core

import "time"

// Tick rate bounds in ticks per second.
const (
	DefaultTickRate = 60
	MaxTickRate     = 1000
)

// NormalizeTickRate maps a non-positive rate to DefaultTickRate and caps
// the rest at MaxTickRate, so a tick always lasts at least a millisecond.
func NormalizeTickRate(tickRate int) int {
	if tickRate <= 0 {
		return DefaultTickRate
	}
	return min(tickRate, MaxTickRate)
}

// Context is the per-session frame context a host passes by pointer into
// every update and event entry point. Nothing in the game reaches for
// global engine state.
type Context struct {
	ScreenW  float64 // World width in pixels
	ScreenH  float64 // World height in pixels
	TickRate int     // Fixed ticks per second
	DT       float64 // Seconds per tick, 1/TickRate

	quit bool
}

// NewContext creates a context for a world of the given size.
// The tick rate goes through NormalizeTickRate.
func NewContext(screenW, screenH float64, tickRate int) *Context {
	tickRate = NormalizeTickRate(tickRate)
	return &Context{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: tickRate,
		DT:       1.0 / float64(tickRate),
	}
}

// TickDuration returns the wall-clock length of one tick.
func (c *Context) TickDuration() time.Duration {
	return time.Second / time.Duration(NormalizeTickRate(c.TickRate))
}

// Quit asks the host to end the session after the current event.
func (c *Context) Quit() {
	c.quit = true
}

// QuitRequested reports whether Quit has been called.
func (c *Context) QuitRequested() bool {
	return c.quit
}
