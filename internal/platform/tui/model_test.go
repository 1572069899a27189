package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pewpew/internal/config"
	"github.com/vovakirdan/pewpew/internal/core"
	"github.com/vovakirdan/pewpew/internal/games/pewpew"
	"github.com/vovakirdan/pewpew/internal/storage"
)

// testClock is a controllable time source.
type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time { return c.t }

func (c *testClock) Advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

func newTestModel(t *testing.T, store *storage.Store) (Model, *pewpew.Game, *testClock) {
	t.Helper()
	game := pewpew.New(config.DefaultConfig())
	m := NewModel(game, Options{
		Config: config.DefaultConfig(),
		Store:  store,
		Player: "tester",
		Width:  80,
		Height: 25,
	})
	clock := &testClock{t: time.Unix(1000, 0)}
	m.now = clock.Now
	m.Init()
	return m, game, clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelThrustFromKey(t *testing.T) {
	m, game, clock := newTestModel(t, nil)

	m, _ = update(t, m, keyRune('d'))
	if game.Input().XAxis != 1 {
		t.Fatalf("XAxis = %v after d, want 1", game.Input().XAxis)
	}

	// First frame runs exactly one tick.
	m, _ = update(t, m, FrameMsg(clock.Advance(10*time.Millisecond)))
	if game.Stats().Ticks != 1 {
		t.Fatalf("Ticks = %d after first frame, want 1", game.Stats().Ticks)
	}
	if game.Player().Pos.X <= 0 {
		t.Errorf("player should move right, x = %v", game.Player().Pos.X)
	}

	// 50ms later three more ticks are due.
	update(t, m, FrameMsg(clock.Advance(50*time.Millisecond)))
	if game.Stats().Ticks != 4 {
		t.Errorf("Ticks = %d, want 4", game.Stats().Ticks)
	}
}

func TestModelSynthesizesKeyRelease(t *testing.T) {
	m, game, clock := newTestModel(t, nil)

	m, _ = update(t, m, keyRune('d'))
	m, _ = update(t, m, FrameMsg(clock.Advance(100*time.Millisecond)))
	if game.Input().XAxis != 1 {
		t.Fatalf("axis should still be held, XAxis = %v", game.Input().XAxis)
	}

	// Repeat keeps it held.
	clock.Advance(400 * time.Millisecond)
	m, _ = update(t, m, keyRune('d'))
	m, _ = update(t, m, FrameMsg(clock.Advance(300*time.Millisecond)))
	if game.Input().XAxis != 1 {
		t.Fatalf("repeat should keep the axis, XAxis = %v", game.Input().XAxis)
	}

	update(t, m, FrameMsg(clock.Advance(400*time.Millisecond)))
	if game.Input().XAxis != 0 {
		t.Errorf("axis should be released after the timeout, XAxis = %v", game.Input().XAxis)
	}
}

func TestModelEscapeQuitsAndRecordsRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, _, clock := newTestModel(t, store)
	m, _ = update(t, m, keyRune('w'))
	m, _ = update(t, m, FrameMsg(clock.Advance(time.Millisecond)))
	m, _ = update(t, m, FrameMsg(clock.Advance(100*time.Millisecond)))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("escape should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("escape should quit the program")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}

	runs, err := store.RecentRuns(pewpew.ID, 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}
	if runs[0].Player != "tester" || runs[0].Ticks != 7 {
		t.Errorf("unexpected run %+v", runs[0])
	}
}

func TestModelExitKeyWithoutTicksSkipsRecord(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, _, _ := newTestModel(t, store)
	_, cmd := update(t, m, keyRune('q'))
	if cmd == nil {
		t.Fatal("q should quit")
	}

	runs, _ := store.RecentRuns(pewpew.ID, 10)
	if len(runs) != 0 {
		t.Errorf("empty session should not be recorded, got %d runs", len(runs))
	}
}

func TestModelMouseFire(t *testing.T) {
	m, game, _ := newTestModel(t, nil)

	// 80x24 playfield over a 640x480 world: 8x20 pixels per cell.
	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	in := game.Input()
	if !in.Fire {
		t.Fatal("press should fire")
	}
	if in.XClick != 84 || in.YClick != 130 {
		t.Errorf("click = (%v, %v), want (84, 130)", in.XClick, in.YClick)
	}

	update(t, m, tea.MouseMsg{X: 10, Y: 6, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	in = game.Input()
	if in.Fire || in.XClick != 0 || in.YClick != 0 {
		t.Errorf("release should clear fire and click, got %+v", in)
	}
}

func TestModelPauseFreezes(t *testing.T) {
	m, game, clock := newTestModel(t, nil)

	m, _ = update(t, m, keyRune('p'))
	if !game.State().Paused {
		t.Fatal("p should pause")
	}
	update(t, m, FrameMsg(clock.Advance(100*time.Millisecond)))
	if game.Stats().Ticks != 0 {
		t.Errorf("paused game should not tick, got %d", game.Stats().Ticks)
	}
}

func TestModelPauseForgetsHeldKeys(t *testing.T) {
	m, game, clock := newTestModel(t, nil)

	m, _ = update(t, m, FrameMsg(clock.Advance(time.Millisecond)))
	m, _ = update(t, m, FrameMsg(clock.Advance(10*time.Millisecond)))
	m, _ = update(t, m, keyRune('d'))
	m, _ = update(t, m, keyRune('p'))
	if game.Input().XAxis != 0 {
		t.Fatalf("pause should drop thrust, XAxis = %v", game.Input().XAxis)
	}
	m, _ = update(t, m, keyRune('p'))

	// A fresh press right after resume is not mistaken for auto-repeat.
	m, _ = update(t, m, keyRune('d'))
	if game.Input().XAxis != 1 {
		t.Errorf("d after resume should thrust, XAxis = %v", game.Input().XAxis)
	}

	// The partial tick from before the pause was dropped.
	update(t, m, FrameMsg(clock.Advance(10*time.Millisecond)))
	if game.Stats().Ticks != 1 {
		t.Errorf("Ticks = %d, want 1", game.Stats().Ticks)
	}
}

func TestModelClampsTickRate(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Timing.TickRate = 2_000_000_000
	game := pewpew.New(cfg)
	m := NewModel(game, Options{Config: cfg, Width: 80, Height: 25})
	clock := &testClock{t: time.Unix(1000, 0)}
	m.now = clock.Now
	m.Init()

	if m.ctx.TickRate != core.MaxTickRate || m.fps != core.MaxTickRate {
		t.Fatalf("tick rate = %d, fps = %d, want %d", m.ctx.TickRate, m.fps, core.MaxTickRate)
	}

	m, _ = update(t, m, FrameMsg(clock.Advance(time.Millisecond)))
	update(t, m, FrameMsg(clock.Advance(5*time.Millisecond)))
	if game.Stats().Ticks != 6 {
		t.Errorf("Ticks = %d, want 6 at 1ms per tick", game.Stats().Ticks)
	}
}

func TestModelViewHasHUDAndHelp(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 25 {
		t.Fatalf("view has %d lines, want 25", len(lines))
	}
	if !strings.Contains(lines[0], "Level: 0") || !strings.Contains(lines[0], "Score: 0") {
		t.Errorf("first row should carry the HUD, got %q", lines[0])
	}
	if !strings.Contains(lines[24], "pause") {
		t.Errorf("last row should carry help, got %q", lines[24])
	}
}

func TestModelResize(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 13})
	if m.screen.Width() != 40 || m.screen.Height() != 12 {
		t.Errorf("screen = %dx%d, want 40x12", m.screen.Width(), m.screen.Height())
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 0, 'x', core.ColorRed)
	s.DrawText(0, 1, "hello")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "x") {
		t.Errorf("line 0 missing content: %q", lines[0])
	}
	if !strings.Contains(lines[1], "hello") {
		t.Errorf("line 1 missing content: %q", lines[1])
	}
}
