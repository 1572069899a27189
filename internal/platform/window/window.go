// Package window hosts the game in a native desktop window through raylib.
// Unlike terminals, raylib reports real key releases, so events map one to
// one onto the game's handlers.
package window

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/pewpew/internal/actor"
	"github.com/vovakirdan/pewpew/internal/config"
	"github.com/vovakirdan/pewpew/internal/core"
	"github.com/vovakirdan/pewpew/internal/registry"
	"github.com/vovakirdan/pewpew/internal/storage"
)

var keyBindings = []struct {
	raylib int32
	key    core.Key
}{
	{rl.KeyW, core.KeyW},
	{rl.KeyA, core.KeyA},
	{rl.KeyS, core.KeyS},
	{rl.KeyD, core.KeyD},
	{rl.KeyEscape, core.KeyEscape},
	{rl.KeyP, core.KeyP},
}

var mouseBindings = []struct {
	raylib rl.MouseButton
	button core.MouseButton
}{
	{rl.MouseButtonLeft, core.MouseLeft},
	{rl.MouseButtonRight, core.MouseRight},
	{rl.MouseButtonMiddle, core.MouseMiddle},
}

// Options configures a window session.
type Options struct {
	Config config.Config
	Store  *storage.Store
	Logger *log.Logger
	Player string
}

// assets holds the loaded textures. Zero IDs mean the file was missing and
// primitive shapes are drawn instead.
type assets struct {
	player rl.Texture2D
	font   rl.Font
	custom bool // font came from disk
}

// Run opens the window and plays until it is closed or the game quits.
// It must be called from the main goroutine.
func Run(game registry.Game, opts Options) error {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("window: could not open a %vx%v window", cfg.Window.Width, cfg.Window.Height)
	}

	// Escape is a game key, not a close shortcut.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(cfg.Timing.TickRate))

	res := loadAssets(cfg.Window, logger)
	defer res.unload()

	ctx := core.NewContext(cfg.Window.Width, cfg.Window.Height, cfg.Timing.TickRate)
	clock := core.NewTimestep(cfg.Timing.TickRate, cfg.Timing.MaxCatchupSteps)
	game.Reset(ctx)
	logger.Info("window opened", "game", game.ID(), "size", fmt.Sprintf("%vx%v", cfg.Window.Width, cfg.Window.Height))

	for !rl.WindowShouldClose() && !ctx.QuitRequested() {
		pollInput(ctx, game)

		elapsed := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		for range clock.Advance(elapsed) {
			game.Update(ctx)
		}

		draw(game, cfg, res)
	}

	saveRun(game, opts.Store, opts.Player, logger)
	return nil
}

// pollInput forwards this frame's key and mouse transitions to the game.
func pollInput(ctx *core.Context, game registry.Game) {
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.raylib) {
			game.KeyDown(ctx, b.key)
		}
		if rl.IsKeyReleased(b.raylib) {
			game.KeyUp(ctx, b.key)
		}
	}

	mouse := rl.GetMousePosition()
	for _, b := range mouseBindings {
		if rl.IsMouseButtonPressed(b.raylib) {
			game.MouseDown(ctx, b.button, float64(mouse.X), float64(mouse.Y))
		}
		if rl.IsMouseButtonReleased(b.raylib) {
			game.MouseUp(ctx, b.button, float64(mouse.X), float64(mouse.Y))
		}
	}
}

func loadAssets(wc config.WindowConfig, logger *log.Logger) assets {
	var res assets

	imagePath := filepath.Join(wc.ResourceDir, wc.PlayerImage)
	if rl.FileExists(imagePath) {
		res.player = rl.LoadTexture(imagePath)
	}
	if res.player.ID == 0 {
		logger.Warn("player image not loaded, drawing shapes", "path", imagePath)
	}

	fontPath := filepath.Join(wc.ResourceDir, wc.Font)
	if rl.FileExists(fontPath) {
		res.font = rl.LoadFont(fontPath)
		res.custom = res.font.Texture.ID != 0
	}
	if !res.custom {
		logger.Warn("font not loaded, using default", "path", fontPath)
		res.font = rl.GetFontDefault()
	}
	return res
}

func (a assets) unload() {
	if a.player.ID != 0 {
		rl.UnloadTexture(a.player)
	}
	if a.custom {
		rl.UnloadFont(a.font)
	}
}

func draw(game registry.Game, cfg config.Config, res assets) {
	w, h := cfg.Window.Width, cfg.Window.Height

	rl.BeginDrawing()
	rl.ClearBackground(rl.White)

	for _, a := range game.Actors() {
		drawActor(a, actor.WorldToScreen(w, h, a.Pos), res)
	}

	state := game.State()
	size := float32(cfg.Window.FontSize)
	rl.DrawTextEx(res.font, fmt.Sprintf("Level: %d", state.Level),
		rl.NewVector2(float32(cfg.HUD.LevelX), float32(cfg.HUD.LevelY)), size, 1, rl.Black)
	rl.DrawTextEx(res.font, fmt.Sprintf("Score: %d", state.Score),
		rl.NewVector2(float32(cfg.HUD.ScoreX), float32(cfg.HUD.ScoreY)), size, 1, rl.Black)

	if state.Paused {
		msg := "PAUSED"
		tw := rl.MeasureText(msg, 40)
		rl.DrawText(msg, int32(w)/2-tw/2, int32(h)/2-20, 40, rl.DarkGray)
	}

	rl.EndDrawing()
}

// drawActor draws an actor centred on its screen position, rotated to its facing.
func drawActor(a actor.Actor, pos r2.Vec, res assets) {
	switch a.Kind {
	case actor.KindPlayer:
		if res.player.ID != 0 {
			tw, th := float32(res.player.Width), float32(res.player.Height)
			rl.DrawTexturePro(res.player,
				rl.NewRectangle(0, 0, tw, th),
				rl.NewRectangle(float32(pos.X), float32(pos.Y), tw, th),
				rl.NewVector2(tw/2, th/2),
				float32(a.Facing*180/math.Pi),
				rl.White,
			)
			return
		}
		center := rl.NewVector2(float32(pos.X), float32(pos.Y))
		rl.DrawCircleV(center, float32(a.BBox), rl.Gold)
		dir := actor.VecFromAngle(a.Facing)
		tip := rl.NewVector2(center.X+float32(dir.X*a.BBox*1.5), center.Y-float32(dir.Y*a.BBox*1.5))
		rl.DrawLineV(center, tip, rl.Black)
	}
}

func saveRun(game registry.Game, store *storage.Store, player string, logger *log.Logger) {
	stats := game.Stats()
	state := game.State()
	logger.Info("window closed", "ticks", stats.Ticks, "distance", stats.Distance, "wraps", stats.Wraps)
	if store == nil || stats.Ticks == 0 {
		return
	}
	if _, err := store.SaveRun(storage.NewRun(game.ID(), player, stats, state)); err != nil {
		logger.Warn("could not record run", "error", err)
	}
}
