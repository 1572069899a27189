// Package tui hosts the game in a terminal through Bubble Tea, locally or
// over SSH. It owns the frame loop, maps terminal input onto game events and
// draws the cell buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pewpew/internal/core"
)

// FrameMsg is sent once per rendered frame.
type FrameMsg time.Time

// frameCmd schedules the next frame at the given rate.
func frameCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(core.NormalizeTickRate(fps))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
