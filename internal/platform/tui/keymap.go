package tui

import (
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pewpew/internal/core"
)

// KeyMap defines the terminal key bindings for a play session.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Pause key.Binding
	Back  key.Binding
	Exit  key.Binding
}

// DefaultKeyMap returns the default bindings: WASD or arrows to thrust.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "thrust up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "thrust down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "thrust left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "thrust right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit game"),
		),
		Exit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "exit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Down, k.Right, k.Pause, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Back, k.Exit},
	}
}

// GameKey translates a terminal key message into a game key.
func (k KeyMap) GameKey(msg tea.KeyMsg) (core.Key, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return core.KeyW, true
	case key.Matches(msg, k.Down):
		return core.KeyS, true
	case key.Matches(msg, k.Left):
		return core.KeyA, true
	case key.Matches(msg, k.Right):
		return core.KeyD, true
	case key.Matches(msg, k.Pause):
		return core.KeyP, true
	case key.Matches(msg, k.Back):
		return core.KeyEscape, true
	}
	return core.KeyNone, false
}

// Releaser synthesizes key releases for terminals, which only report presses.
// A key counts as held while its presses (including auto-repeat) keep
// arriving; once none has arrived for the timeout it is released.
type Releaser struct {
	timeout  time.Duration
	lastSeen map[core.Key]time.Time
}

// NewReleaser creates a releaser with the given timeout.
func NewReleaser(timeout time.Duration) *Releaser {
	return &Releaser{
		timeout:  timeout,
		lastSeen: make(map[core.Key]time.Time),
	}
}

// Press records a press at now. It reports whether this is a new press
// rather than a repeat of a key already held.
func (r *Releaser) Press(k core.Key, now time.Time) bool {
	_, held := r.lastSeen[k]
	r.lastSeen[k] = now
	return !held
}

// Expired removes and returns the keys whose timeout elapsed by now,
// in key order.
func (r *Releaser) Expired(now time.Time) []core.Key {
	var released []core.Key
	for k, seen := range r.lastSeen {
		if now.Sub(seen) >= r.timeout {
			released = append(released, k)
		}
	}
	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })
	for _, k := range released {
		delete(r.lastSeen, k)
	}
	return released
}

// Reset forgets all held keys.
func (r *Releaser) Reset() {
	clear(r.lastSeen)
}

func isMovementKey(k core.Key) bool {
	switch k {
	case core.KeyW, core.KeyA, core.KeyS, core.KeyD:
		return true
	}
	return false
}
