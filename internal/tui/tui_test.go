package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ising-ca/internal/control"
	"ising-ca/internal/sims/ising"
)

func newModel(t *testing.T) (Model, *control.Controller) {
	t.Helper()
	cfg := ising.DefaultConfig()
	cfg.Rows = 4
	cfg.Cols = 6
	cfg.Params.Temperature = 2
	w, err := ising.New(cfg)
	require.NoError(t, err)
	ctrl := control.New(w, control.Options{Steps: 1, ShowInfo: true})
	return New(ctrl, w.Lattice()), ctrl
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func step(m tea.Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestKeysBetweenGenerationsAreDropped(t *testing.T) {
	m, ctrl := newModel(t)
	m, _ = step(m, key('m'))
	m, _ = step(m, key('m'))
	m, _ = step(m, key('m'))
	m, cmd := step(m, tickMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, 2, ctrl.EffectiveSteps(), "only the first key applies")
	assert.Equal(t, 1, m.Ticks())

	m, _ = step(m, tickMsg{})
	assert.Equal(t, 2, ctrl.EffectiveSteps())
	assert.Equal(t, 2, m.Ticks())
}

func TestQuitKeyStopsBeforeGeneration(t *testing.T) {
	m, _ := newModel(t)
	m, _ = step(m, key('q'))
	m, cmd := step(m, tickMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Zero(t, m.Ticks())
	assert.Empty(t, m.View())
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newModel(t)
	m, cmd := step(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestViewShowsLatticeAndStatus(t *testing.T) {
	m, ctrl := newModel(t)
	m, _ = step(m, tickMsg{})
	m, _ = step(m, tickMsg{})
	out := m.View()
	assert.Contains(t, out, "Algorithm: Metropolis")
	assert.Contains(t, out, "magnetization")

	ctrl.Apply(control.ToggleInfo)
	out = m.View()
	assert.NotContains(t, out, "Algorithm:")
	assert.Len(t, out, 4*6+3)
}
