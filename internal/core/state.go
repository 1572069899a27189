package core

// GameState is the session status a host needs for HUD and flow control.
type GameState struct {
	Level  int
	Score  int
	Paused bool
	Quit   bool
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}

// RunStats accumulates what happened during one session.
type RunStats struct {
	Ticks     int
	Distance  float64 // World units travelled
	Wraps     int     // Times the player crossed a screen edge
	PeakSpeed float64 // Highest speed observed after clamping
}
