package help

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmc/jobboard/ui/keymap"
)

func TestToggle(t *testing.T) {
	m := New(keymap.DefaultKeyMap())
	m.SetWidth(200)
	short := m.View()
	if !strings.Contains(short, "apply") || strings.Contains(short, "log in") {
		t.Errorf("short help = %q", short)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if !m.Show {
		t.Fatal("? did not switch to full help")
	}
	if full := m.View(); !strings.Contains(full, "log in") || !strings.Contains(full, "reset filters") {
		t.Errorf("full help = %q", full)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if m.Show {
		t.Error("second ? did not switch back")
	}
}

func TestGroupsCoverEveryBinding(t *testing.T) {
	m := New(keymap.DefaultKeyMap())
	n := 0
	for _, col := range m.FullHelp() {
		n += len(col)
	}
	if n != 19 {
		t.Errorf("full help lists %d bindings, want 19", n)
	}
}
