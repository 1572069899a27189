package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/pewpew/internal/config"
)

func TestConfigCommandPrintsDefaults(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config command failed: %v", err)
	}

	cfg, err := config.Parse(out.Bytes())
	if err != nil {
		t.Fatalf("printed config should parse: %v", err)
	}
	if cfg != config.DefaultConfig() {
		t.Errorf("printed config differs from defaults: %+v", cfg)
	}
}

func TestCommandErrorsAreReturned(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown game for play", []string{"play", "nope"}, `unknown game "nope"`},
		{"unknown game for runs", []string{"runs", "nope"}, `unknown game "nope"`},
		{"tick rate too high", []string{"play", "--fps", "2000000000"}, "tick_rate must be at most 1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			t.Cleanup(func() { rootCmd.SetArgs(nil) })

			err := rootCmd.Execute()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Execute(%v) error = %v, want %q", tt.args, err, tt.want)
			}
		})
	}
}
