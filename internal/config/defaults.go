package config

import (
	_ "embed"
)

//go:embed defaults/pewpew.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:       "PewPew die Zombies!",
			Width:       640,
			Height:      480,
			ResourceDir: "./resources",
			PlayerImage: "survivor.png",
			Font:        "DejaVuSerif.ttf",
			FontSize:    32,
		},
		Timing: TimingConfig{
			TickRate:        60,
			MaxCatchupSteps: 8,
		},
		Physics: PhysicsConfig{
			Thrust:   100.0,
			MaxSpeed: 250.0,
		},
		Player: PlayerConfig{
			BBox:      12.0,
			Life:      1.0,
			TimedLife: false,
		},
		Input: InputConfig{
			AxisMode:       "edge",
			ReleaseAfterMS: 700,
		},
		HUD: HUDConfig{
			LevelX: 10,
			LevelY: 10,
			ScoreX: 200,
			ScoreY: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
