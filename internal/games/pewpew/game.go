// Package pewpew implements "PewPew die Zombies!", a top-down game where the
// player drifts around a wrap-around screen under WASD thrust.
package pewpew

import (
	"github.com/vovakirdan/pewpew/internal/actor"
	"github.com/vovakirdan/pewpew/internal/config"
	"github.com/vovakirdan/pewpew/internal/core"
	"github.com/vovakirdan/pewpew/internal/registry"
)

// ID is the registry and storage identifier of the game.
const ID = "pewpew"

// Game holds one play session: the player, its input and the HUD counters.
type Game struct {
	cfg        config.Config
	integrator actor.Integrator
	controls   *core.Controls

	player actor.Actor
	input  core.InputState
	level  int
	score  int
	paused bool
	quit   bool
	stats  core.RunStats

	// World size seen at the last Reset or Update, used by Render.
	screenW float64
	screenH float64
}

// New creates a game from the given configuration.
// An invalid axis mode falls back to edge-triggered axes.
func New(cfg config.Config) *Game {
	mode, err := core.ParseAxisMode(cfg.Input.AxisMode)
	if err != nil {
		mode = core.AxisEdge
	}

	g := &Game{
		cfg: cfg,
		integrator: actor.Integrator{
			Thrust:   cfg.Physics.Thrust,
			MaxSpeed: cfg.Physics.MaxSpeed,
		},
		controls: core.NewControls(mode),
		screenW:  cfg.Window.Width,
		screenH:  cfg.Window.Height,
	}
	g.player = g.newPlayer()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.cfg.Window.Title
}

// Reset starts a fresh session.
func (g *Game) Reset(ctx *core.Context) {
	g.player = g.newPlayer()
	g.input = core.InputState{}
	g.controls.Reset()
	g.level = 0
	g.score = 0
	g.paused = false
	g.quit = false
	g.stats = core.RunStats{}
	g.screenW = ctx.ScreenW
	g.screenH = ctx.ScreenH
}

func (g *Game) newPlayer() actor.Actor {
	p := actor.NewPlayer()
	p.BBox = g.cfg.Player.BBox
	p.Life = g.cfg.Player.Life
	return p
}

// Update runs one fixed tick: thrust from the current input, integrate,
// then wrap. Nothing moves while paused.
func (g *Game) Update(ctx *core.Context) core.StepResult {
	g.screenW = ctx.ScreenW
	g.screenH = ctx.ScreenH
	if ctx.QuitRequested() {
		g.quit = true
	}
	if g.paused || g.quit {
		return core.StepResult{State: g.State()}
	}

	dt := ctx.DT
	g.integrator.ApplyThrust(&g.player, &g.input, dt)
	g.integrator.Integrate(&g.player, dt)
	if g.integrator.WrapToScreen(&g.player, ctx.ScreenW, ctx.ScreenH) {
		g.stats.Wraps++
	}
	if g.cfg.Player.TimedLife {
		g.integrator.TickLifespan(&g.player, dt)
	}

	speed := g.player.Speed()
	g.stats.Ticks++
	g.stats.Distance += speed * dt
	if speed > g.stats.PeakSpeed {
		g.stats.PeakSpeed = speed
	}

	return core.StepResult{State: g.State()}
}

// KeyDown handles a key press. Escape asks the host to quit and P toggles pause.
// Pausing drops held movement keys so thrust does not resume on unpause.
func (g *Game) KeyDown(ctx *core.Context, k core.Key) {
	switch k {
	case core.KeyEscape:
		ctx.Quit()
		g.quit = true
	case core.KeyP:
		g.paused = !g.paused
		if g.paused {
			g.controls.Reset()
			g.input.XAxis, g.input.YAxis = 0, 0
		}
	default:
		g.controls.KeyDown(&g.input, k)
	}
}

// KeyUp handles a key release.
func (g *Game) KeyUp(_ *core.Context, k core.Key) {
	g.controls.KeyUp(&g.input, k)
}

// MouseDown starts firing at screen pixel (x, y). Any button fires.
func (g *Game) MouseDown(_ *core.Context, _ core.MouseButton, x, y float64) {
	g.controls.MouseDown(&g.input, x, y)
}

// MouseUp stops firing.
func (g *Game) MouseUp(_ *core.Context, _ core.MouseButton, _, _ float64) {
	g.controls.MouseUp(&g.input)
}

// State returns the current HUD and flow state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Level:  g.level,
		Score:  g.score,
		Paused: g.paused,
		Quit:   g.quit,
	}
}

// Actors returns the live actors, currently just the player.
func (g *Game) Actors() []actor.Actor {
	return []actor.Actor{g.player}
}

// Stats returns the session statistics.
func (g *Game) Stats() core.RunStats {
	return g.stats
}

// Player returns a copy of the player actor.
func (g *Game) Player() actor.Actor {
	return g.player
}

// Input returns a copy of the current input state.
func (g *Game) Input() core.InputState {
	return g.input
}

func init() {
	registry.Register(ID, func(cfg config.Config) registry.Game {
		return New(cfg)
	})
}
