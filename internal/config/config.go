// Package config provides YAML-based configuration loading for the game
// and its hosts.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/pewpew/internal/core"
)

// Config contains all tunable parameters.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Timing  TimingConfig  `yaml:"timing"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Input   InputConfig   `yaml:"input"`
	HUD     HUDConfig     `yaml:"hud"`
}

// WindowConfig describes the world size and the assets the window host loads.
type WindowConfig struct {
	Title       string  `yaml:"title"`
	Width       float64 `yaml:"width"`  // World width in pixels
	Height      float64 `yaml:"height"` // World height in pixels
	ResourceDir string  `yaml:"resource_dir"`
	PlayerImage string  `yaml:"player_image"`
	Font        string  `yaml:"font"`
	FontSize    float64 `yaml:"font_size"`
}

// TimingConfig controls the fixed timestep.
type TimingConfig struct {
	TickRate        int `yaml:"tick_rate"`         // Ticks per second
	MaxCatchupSteps int `yaml:"max_catchup_steps"` // Ticks per frame before backlog is dropped
}

// PhysicsConfig sets the integrator constants.
type PhysicsConfig struct {
	Thrust   float64 `yaml:"thrust"`    // Units per second squared
	MaxSpeed float64 `yaml:"max_speed"` // Units per second
}

// PlayerConfig sets player actor parameters.
type PlayerConfig struct {
	BBox      float64 `yaml:"bbox"`
	Life      float64 `yaml:"life"`
	TimedLife bool    `yaml:"timed_life"` // Count life down every tick
}

// InputConfig selects how keys drive the axes.
type InputConfig struct {
	AxisMode       string `yaml:"axis_mode"`        // "edge" or "held"
	ReleaseAfterMS int    `yaml:"release_after_ms"` // Terminal hosts: key-up after this long without a repeat
}

// HUDConfig positions the level and score counters in screen pixels.
type HUDConfig struct {
	LevelX float64 `yaml:"level_x"`
	LevelY float64 `yaml:"level_y"`
	ScoreX float64 `yaml:"score_x"`
	ScoreY float64 `yaml:"score_y"`
}

// ReleaseAfter returns the terminal key-release timeout.
func (c InputConfig) ReleaseAfter() time.Duration {
	return time.Duration(c.ReleaseAfterMS) * time.Millisecond
}

// Validate checks values that would break the simulation.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height))
	}
	if c.Timing.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.Timing.TickRate))
	}
	if c.Timing.TickRate > core.MaxTickRate {
		errs = append(errs, fmt.Errorf("tick_rate must be at most %d, got %d", core.MaxTickRate, c.Timing.TickRate))
	}
	if c.Timing.MaxCatchupSteps < 0 {
		errs = append(errs, fmt.Errorf("max_catchup_steps must not be negative, got %d", c.Timing.MaxCatchupSteps))
	}
	if c.Physics.MaxSpeed <= 0 {
		errs = append(errs, fmt.Errorf("max_speed must be positive, got %v", c.Physics.MaxSpeed))
	}
	if _, err := core.ParseAxisMode(c.Input.AxisMode); err != nil {
		errs = append(errs, err)
	}
	if c.Input.ReleaseAfterMS < 0 {
		errs = append(errs, fmt.Errorf("release_after_ms must not be negative, got %d", c.Input.ReleaseAfterMS))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// WrapIsSafe reports whether an actor at max speed moves less than one
// screen per tick, which single-step wrapping needs to stay correct.
func (c Config) WrapIsSafe() bool {
	if c.Timing.TickRate <= 0 {
		return false
	}
	step := c.Physics.MaxSpeed / float64(c.Timing.TickRate)
	return step <= c.Window.Width && step <= c.Window.Height
}
