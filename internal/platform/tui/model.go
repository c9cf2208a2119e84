package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rocketberry/internal/game"
	"github.com/vovakirdan/rocketberry/internal/registry"
)

func init() {
	registry.Register("tui", func() registry.Backend { return Backend{} })
}

// Backend runs the session inside a Bubble Tea program.
type Backend struct{}

// Title implements registry.Backend.
func (Backend) Title() string { return "Bubble Tea (half-block truecolor)" }

// Run implements registry.Backend.
func (Backend) Run(rt *registry.Runtime) error {
	p := tea.NewProgram(NewModel(rt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model for a running session.
type Model struct {
	rt       *registry.Runtime
	keys     KeyMap
	help     help.Model
	styles   styleCache
	width    int
	height   int
	last     game.StepResult
	quitting bool
}

// NewModel creates a model driving rt. The terminal size arrives with the
// first WindowSizeMsg.
func NewModel(rt *registry.Runtime) Model {
	return Model{
		rt:     rt,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: styleCache{},
		width:  80,
		height: 24,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.rt.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.last = m.rt.Step()
		return m, tickCmd(m.rt.TickRate)
	}

	return m, nil
}

// handleKey feeds the button and tilt. Keys are edges: a held key repeats
// at the terminal's rate and the button's debounce filters the repeats.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Fire):
		m.rt.Button.Edge()
	case key.Matches(msg, m.keys.Left):
		m.rt.Tilt.Left()
	case key.Matches(msg, m.keys.Right):
		m.rt.Tilt.Right()
	case key.Matches(msg, m.keys.Center):
		m.rt.Tilt.Center()
	}
	return m, nil
}

// View renders the front buffer, a status line and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	status := statusStyle.Render(fmt.Sprintf("%s  score %d  high %d  tilt %s  presses %d",
		m.last.Phase, m.last.Score, m.last.HighScore, m.rt.Tilt.Tier(), m.rt.Button.Presses()))

	cols, rows := m.rt.Session.Surface().FitCells(m.width, m.height-lipgloss.Height(footer)-1)
	frame := RenderSurface(m.rt.Session.Surface(), cols, rows, m.styles)

	return lipgloss.JoinVertical(lipgloss.Left, frame, status, footer)
}
