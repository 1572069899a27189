package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pewpew/internal/registry"
	"github.com/vovakirdan/pewpew/internal/storage"
)

// Runs board layout constants
const (
	maxRuns        = 100 // Max runs to load
	runsChromeRows = 8   // Title, tabs, borders and help
)

// RunsOrder selects how the board sorts runs.
type RunsOrder int

const (
	OrderRecent RunsOrder = iota
	OrderLongest
)

// String returns the tab label for the order.
func (o RunsOrder) String() string {
	if o == OrderLongest {
		return "Longest"
	}
	return "Recent"
}

// RunsKeyMap defines the key bindings for the runs board.
type RunsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Order    key.Binding
	NextGame key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Order, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Order, k.NextGame},
		{k.Clear, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Order: key.NewBinding(
			key.WithKeys("tab", "o"),
			key.WithHelp("tab", "recent/longest"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next game"),
		),
		Clear: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "clear runs"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for the recorded runs screen.
type RunsModel struct {
	games      []registry.GameInfo
	gameCursor int
	order      RunsOrder
	store      *storage.Store
	runs       []storage.Run
	best       float64
	err        error
	table      table.Model
	help       help.Model
	keys       RunsKeyMap
	width      int
	height     int
	quitting   bool
}

// NewRunsModel creates a runs board opened on gameID, or on the first
// registered game when gameID is unknown.
func NewRunsModel(store *storage.Store, gameID string, width, height int) RunsModel {
	h := help.New()
	h.Width = width

	m := RunsModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultRunsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	for i, g := range m.games {
		if g.ID == gameID {
			m.gameCursor = i
			break
		}
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m *RunsModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 12},
		{Title: "Distance", Width: 10},
		{Title: "Ticks", Width: 8},
		{Title: "Wraps", Width: 6},
		{Title: "Peak", Width: 7},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-runsChromeRows, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *RunsModel) currentGame() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.gameCursor].ID
}

// reload fetches runs for the current game and order.
func (m *RunsModel) reload() {
	m.runs, m.best, m.err = nil, 0, nil
	gameID := m.currentGame()
	if m.store == nil || gameID == "" {
		m.setRows()
		return
	}

	var err error
	if m.order == OrderLongest {
		m.runs, err = m.store.LongestRuns(gameID, maxRuns)
	} else {
		m.runs, err = m.store.RecentRuns(gameID, maxRuns)
	}
	if err == nil {
		m.best, err = m.store.BestDistance(gameID)
	}
	m.err = err
	m.setRows()
}

func (m *RunsModel) setRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			player,
			fmt.Sprintf("%.1f", r.Distance),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%d", r.Wraps),
			fmt.Sprintf("%.0f", r.PeakSpeed),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the runs board.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runs board.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Order):
			if m.order == OrderRecent {
				m.order = OrderLongest
			} else {
				m.order = OrderRecent
			}
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			if m.store != nil && m.currentGame() != "" {
				m.err = m.store.ClearRuns(m.currentGame())
				if m.err == nil {
					m.reload()
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.newTable()
		m.setRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the runs board.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	title := "RUNS"
	if len(m.games) > 0 {
		title = fmt.Sprintf("RUNS - %s", m.games[m.gameCursor].Title)
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, titleStyle.Render(title)))
	b.WriteString("\n\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.renderBody()))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m RunsModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, 0, 2)
	for _, o := range []RunsOrder{OrderRecent, OrderLongest} {
		if o == m.order {
			tabs = append(tabs, activeTabStyle.Render(o.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(o.String()))
		}
	}
	best := lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(fmt.Sprintf("  best distance %.1f", m.best))
	return lipgloss.JoinHorizontal(lipgloss.Top, append(tabs, best)...)
}

func (m RunsModel) renderBody() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Foreground(lipgloss.Color("1")).Render("Could not load runs: " + m.err.Error())
	case m.store == nil:
		return emptyStyle.Render("No runs database available.")
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nPlay a game to record one!")
	}
	return m.table.View()
}

// Order returns the active sort order.
func (m RunsModel) Order() RunsOrder {
	return m.order
}

// Runs returns the rows currently shown.
func (m RunsModel) Runs() []storage.Run {
	return m.runs
}

// RunRunsBoard runs the runs board full screen until the user quits.
func RunRunsBoard(store *storage.Store, gameID string, width, height int) error {
	p := tea.NewProgram(
		NewRunsModel(store, gameID, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
