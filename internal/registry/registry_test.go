package registry

import (
	"testing"

	"github.com/vovakirdan/pewpew/internal/actor"
	"github.com/vovakirdan/pewpew/internal/config"
	"github.com/vovakirdan/pewpew/internal/core"
)

type stubGame struct {
	title string
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(*core.Context) {}
func (g *stubGame) Update(*core.Context) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) Actors() []actor.Actor { return nil }
func (g *stubGame) Stats() core.RunStats { return core.RunStats{} }
func (g *stubGame) KeyDown(*core.Context, core.Key) {}
func (g *stubGame) KeyUp(*core.Context, core.Key) {}
func (g *stubGame) MouseDown(*core.Context, core.MouseButton, float64, float64) {}
func (g *stubGame) MouseUp(*core.Context, core.MouseButton, float64, float64) {}

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", func(cfg config.Config) Game {
		return &stubGame{title: cfg.Window.Title}
	})

	if !Exists("zz-stub") {
		t.Fatal("registered game should exist")
	}

	cfg := config.DefaultConfig()
	cfg.Window.Title = "Custom"
	g, err := Create("zz-stub", cfg)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Custom" {
		t.Errorf("factory should receive the config, Title() = %q", g.Title())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" {
			found = true
			if info.Title != config.DefaultConfig().Window.Title {
				t.Errorf("listed title = %q, expected the default-config title", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist", config.DefaultConfig()); err == nil {
		t.Error("Create() of an unknown game should fail")
	}
	if Exists("does-not-exist") {
		t.Error("Exists() should be false for unknown games")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func(config.Config) Game { return &stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("registering the same ID twice should panic")
		}
	}()
	Register("zz-dup", func(config.Config) Game { return &stubGame{} })
}
