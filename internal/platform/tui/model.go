package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pewpew/internal/config"
	"github.com/vovakirdan/pewpew/internal/core"
	"github.com/vovakirdan/pewpew/internal/registry"
	"github.com/vovakirdan/pewpew/internal/storage"
)

// Options configures a terminal play session.
type Options struct {
	Config config.Config
	Store  *storage.Store // Optional; runs are not recorded when nil
	Logger *log.Logger    // Optional; discards when nil
	Player string         // Name stored with the run
	Width  int            // Initial terminal size in cells
	Height int
}

// Model is the Bubble Tea model for one play session.
type Model struct {
	game     registry.Game
	ctx      *core.Context
	clock    *core.Timestep
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	releaser *Releaser
	store    *storage.Store
	logger   *log.Logger
	player   string
	fps      int

	now       func() time.Time
	lastFrame time.Time
	quitting  bool
	saved     bool
}

// NewModel creates a model running the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	ctx := core.NewContext(cfg.Window.Width, cfg.Window.Height, cfg.Timing.TickRate)
	return Model{
		game:     game,
		ctx:      ctx,
		clock:    core.NewTimestep(cfg.Timing.TickRate, cfg.Timing.MaxCatchupSteps),
		screen:   core.NewScreen(opts.Width, playfieldHeight(opts.Height)),
		keys:     DefaultKeyMap(),
		help:     h,
		releaser: NewReleaser(cfg.Input.ReleaseAfter()),
		store:    opts.Store,
		logger:   logger,
		player:   opts.Player,
		fps:      ctx.TickRate,
		now:      time.Now,
	}
}

// playfieldHeight leaves the bottom row for the help line.
func playfieldHeight(termH int) int {
	if termH <= 1 {
		return termH
	}
	return termH - 1
}

// Init starts the game and the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.ctx)
	m.logger.Debug("session started", "game", m.game.ID(), "tick_rate", m.ctx.TickRate, "dt", m.ctx.DT)
	return frameCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey dispatches key presses. Movement keys go through the releaser
// so that auto-repeat does not re-trigger a press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Exit) {
		m.ctx.Quit()
		return m.finish()
	}

	k, ok := m.keys.GameKey(msg)
	if !ok {
		return m, nil
	}

	switch {
	case isMovementKey(k):
		if m.releaser.Press(k, m.now()) {
			m.game.KeyDown(m.ctx, k)
		}
	case k == core.KeyP:
		// The game drops held keys on pause; forget them here too and
		// do not let paused wall time turn into catch-up ticks.
		m.releaser.Reset()
		m.clock.Reset()
		m.game.KeyDown(m.ctx, k)
	default:
		m.game.KeyDown(m.ctx, k)
	}

	if m.ctx.QuitRequested() {
		return m.finish()
	}
	return m, nil
}

// handleMouse converts a cell position into world screen pixels.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	button, ok := mouseButton(msg.Button)
	if !ok {
		return m, nil
	}
	x, y := m.cellToPixel(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		m.game.MouseDown(m.ctx, button, x, y)
	case tea.MouseActionRelease:
		m.game.MouseUp(m.ctx, button, x, y)
	}
	return m, nil
}

func mouseButton(b tea.MouseButton) (core.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return core.MouseLeft, true
	case tea.MouseButtonRight:
		return core.MouseRight, true
	case tea.MouseButtonMiddle:
		return core.MouseMiddle, true
	case tea.MouseButtonNone:
		// Most terminals do not say which button was released.
		return core.MouseLeft, true
	}
	return 0, false
}

// cellToPixel maps the centre of a terminal cell to screen pixels.
func (m Model) cellToPixel(col, row int) (float64, float64) {
	w, h := m.screen.Width(), m.screen.Height()
	if w == 0 || h == 0 {
		return 0, 0
	}
	x := (float64(col) + 0.5) * m.ctx.ScreenW / float64(w)
	y := (float64(row) + 0.5) * m.ctx.ScreenH / float64(h)
	return x, y
}

// handleFrame releases stale keys and runs as many fixed ticks as the
// elapsed wall time allows.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.ctx.TickDuration()
	if !m.lastFrame.IsZero() {
		elapsed = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	for _, k := range m.releaser.Expired(m.now()) {
		m.game.KeyUp(m.ctx, k)
	}

	steps := m.clock.Advance(elapsed)
	for range steps {
		m.game.Update(m.ctx)
	}

	if m.ctx.QuitRequested() || m.game.State().Quit {
		return m.finish()
	}
	return m, frameCmd(m.fps)
}

// finish records the run once and stops the program.
func (m Model) finish() (tea.Model, tea.Cmd) {
	m.quitting = true
	if !m.saved {
		m.saveRun()
		m.saved = true
	}
	return m, tea.Quit
}

func (m Model) saveRun() {
	stats := m.game.Stats()
	state := m.game.State()
	m.logger.Info("session ended",
		"game", m.game.ID(),
		"player", m.player,
		"ticks", stats.Ticks,
		"distance", stats.Distance,
		"wraps", stats.Wraps,
	)
	if m.store == nil || stats.Ticks == 0 {
		return
	}
	_, err := m.store.SaveRun(storage.NewRun(m.game.ID(), m.player, stats, state))
	if err != nil {
		m.logger.Warn("could not record run", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game on the local terminal.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
