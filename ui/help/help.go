package help

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmc/jobboard/ui/keymap"
	"github.com/tmc/jobboard/ui/theme"
)

var _ help.KeyMap = Model{}

// Model wraps the bubbles/help model for the board's keymap.
type Model struct {
	inner  help.Model
	keyMap keymap.KeyMap
	Show   bool // full help instead of the one-line summary
}

// New creates a help model showing the short summary.
func New(km keymap.KeyMap) Model {
	return Model{inner: help.New(), keyMap: km}
}

// Init does nothing.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update toggles between short and full help on '?'.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keyMap.ToggleHelp) {
			m.Show = !m.Show
			m.inner.ShowAll = m.Show
		}
	case tea.WindowSizeMsg:
		m.inner.Width = msg.Width
	}
	return m, nil
}

// SetPalette recolours the key and description text.
func (m Model) SetPalette(p theme.Palette) Model {
	keyStyle := lipgloss.NewStyle().Foreground(p.Accent)
	descStyle := lipgloss.NewStyle().Foreground(p.Muted)
	sepStyle := lipgloss.NewStyle().Foreground(p.Border)
	m.inner.Styles.ShortKey = keyStyle
	m.inner.Styles.FullKey = keyStyle
	m.inner.Styles.ShortDesc = descStyle
	m.inner.Styles.FullDesc = descStyle
	m.inner.Styles.ShortSeparator = sepStyle
	m.inner.Styles.FullSeparator = sepStyle
	return m
}

// View renders the help.
func (m Model) View() string {
	return m.inner.View(m)
}

// ShortHelp returns the bindings for the one-line summary.
func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keyMap.Apply,
		m.keyMap.LoadMore,
		m.keyMap.Filters,
		m.keyMap.Menu,
		m.keyMap.Theme,
		m.keyMap.Quit,
		m.keyMap.ToggleHelp,
	}
}

// FullHelp returns the bindings grouped into columns.
func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keyMap.Up, m.keyMap.Down, m.keyMap.PageUp, m.keyMap.PageDown},
		{m.keyMap.Apply, m.keyMap.LoadMore, m.keyMap.Filters, m.keyMap.ResetFilter, m.keyMap.NextOption, m.keyMap.PrevOption},
		{m.keyMap.Login, m.keyMap.Register, m.keyMap.Logout, m.keyMap.SwapToLogin, m.keyMap.SwapToReg},
		{m.keyMap.Menu, m.keyMap.Theme, m.keyMap.Quit, m.keyMap.ToggleHelp},
	}
}

// SetWidth updates the width for the help view.
func (m *Model) SetWidth(w int) {
	m.inner.Width = w
}
