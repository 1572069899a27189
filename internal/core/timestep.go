package core

import "time"

// Timestep converts wall-clock time into whole fixed-length ticks.
// Hosts call Advance once per rendered frame and run the returned number of
// simulation ticks, so simulation time tracks real time at a fixed rate
// regardless of how fast frames are drawn.
type Timestep struct {
	Step     time.Duration // Length of one tick
	MaxSteps int           // Cap per Advance call, 0 means unlimited

	acc time.Duration
}

// NewTimestep creates a clock running at tickRate ticks per second.
// The rate goes through NormalizeTickRate.
func NewTimestep(tickRate, maxSteps int) *Timestep {
	return &Timestep{
		Step:     time.Second / time.Duration(NormalizeTickRate(tickRate)),
		MaxSteps: maxSteps,
	}
}

// Advance adds elapsed time and returns how many ticks are due.
// When the cap is hit the backlog is dropped rather than carried forward,
// so a long stall does not turn into a burst of catch-up ticks.
// A non-positive Step never produces ticks.
func (t *Timestep) Advance(elapsed time.Duration) int {
	if t.Step <= 0 {
		return 0
	}
	if elapsed > 0 {
		t.acc += elapsed
	}

	steps := 0
	for t.acc >= t.Step {
		t.acc -= t.Step
		steps++
		if t.MaxSteps > 0 && steps == t.MaxSteps {
			t.acc %= t.Step
			break
		}
	}
	return steps
}

// Reset clears the accumulator.
func (t *Timestep) Reset() {
	t.acc = 0
}
