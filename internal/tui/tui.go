// Package tui is the interactive terminal front-end. bubbletea owns the raw
// terminal mode and restores it on every exit path.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"ising-ca/internal/control"
	"ising-ca/internal/core"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
)

// PanelHeight is the number of terminal lines the info panel occupies below
// the lattice when info is shown.
const PanelHeight = 8

type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return tickMsg(time.Now()) }
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model adapts a controller and its lattice to bubbletea.
type Model struct {
	ctrl *control.Controller
	view core.View

	pending    rune
	hasPending bool
	ticks      int
	quitting   bool
}

// New returns a model for ctrl rendering view.
func New(ctrl *control.Controller, view core.View) Model {
	return Model{ctrl: ctrl, view: view}
}

// Init schedules the first generation.
func (m Model) Init() tea.Cmd { return tick(m.ctrl.Delay()) }

// Update handles key and tick messages. Only the first key received between
// two generations is kept; later ones are dropped so keystrokes never queue.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !m.hasPending {
			m.pending = msg.Runes[0]
			m.hasPending = true
		}
		return m, nil
	case tickMsg:
		if m.hasPending {
			key := m.pending
			m.hasPending = false
			if ev, ok := control.KeyEvent(key); ok && !m.ctrl.Apply(ev) {
				m.quitting = true
				return m, tea.Quit
			}
		}
		m.ctrl.Tick()
		m.ticks++
		return m, tick(m.ctrl.Delay())
	}
	return m, nil
}

// Ticks returns the number of generations run.
func (m Model) Ticks() int { return m.ticks }

// View renders the lattice followed by the info panel.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	size := m.view.Size()
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			if m.view.At(r, c) == 1 {
				b.WriteByte('O')
			} else {
				b.WriteByte(' ')
			}
		}
		if r != size.Rows-1 {
			b.WriteByte('\n')
		}
	}
	status := m.ctrl.Status()
	if status == "" {
		return b.String()
	}
	parts := []string{b.String(), statusStyle.Render(status)}
	if hist := m.ctrl.History(); len(hist) > 1 {
		width := size.Cols - 12
		if width < 10 {
			width = 10
		}
		chart := asciigraph.Plot(hist,
			asciigraph.Height(PanelHeight-3),
			asciigraph.Width(width),
			asciigraph.LowerBound(-1),
			asciigraph.UpperBound(1),
			asciigraph.Caption("magnetization"))
		parts = append(parts, graphStyle.Render(chart))
	}
	parts = append(parts, legendStyle.Render("h/c hotter/colder  f/s faster/slower  m/l more/less steps  i info  w wolff flip  a algorithm  q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(ctrl *control.Controller, view core.View, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(New(ctrl, view), opts...).Run()
	return err
}
