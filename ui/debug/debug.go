// Package debug renders a pane with the most recent messages and log lines.
// It is enabled with DEBUG_UI=1 or --debug.
package debug

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Enabled reports whether DEBUG_UI=1 is set.
func Enabled() bool { return os.Getenv("DEBUG_UI") == "1" }

// View is the debug pane.
type View struct {
	lines         []string
	events        []string
	eventCounter  int
	maxEvents     int
	maxLines      int
	ignoredEvents map[string]bool
	width         int
	columnWidth   int
	Visible       bool
}

// NewView creates a debug pane.
func NewView(visible bool) *View {
	ignored := map[string]bool{
		"spinner.TickMsg":        true,
		"cursor.BlinkMsg":        true,
		"cursor.initialBlinkMsg": true,
		"tea.FrameMsg":           true,
		"tea.MouseMsg":           true,
	}
	return &View{
		maxEvents:     6,
		maxLines:      10,
		ignoredEvents: ignored,
		width:         80,
		columnWidth:   36,
		Visible:       visible,
	}
}

// AddEvent records the type of msg unless it is a noisy one.
func (v *View) AddEvent(msg tea.Msg) {
	if !v.Visible || msg == nil {
		return
	}
	typ := reflect.TypeOf(msg).String()
	if v.ignoredEvents[strings.TrimPrefix(typ, "*")] {
		return
	}
	v.eventCounter++
	v.events = append(v.events, v.clip(fmt.Sprintf("%04d:%s", v.eventCounter, typ)))
	if len(v.events) > v.maxEvents {
		v.events = v.events[len(v.events)-v.maxEvents:]
	}
}

// Log adds a line to the pane.
func (v *View) Log(format string, args ...any) {
	if !v.Visible {
		return
	}
	for _, line := range strings.Split(strings.TrimRight(fmt.Sprintf(format, args...), "\n"), "\n") {
		v.lines = append(v.lines, line)
	}
	if len(v.lines) > v.maxLines {
		v.lines = v.lines[len(v.lines)-v.maxLines:]
	}
}

// Events returns the recorded event lines, oldest first.
func (v *View) Events() []string { return append([]string(nil), v.events...) }

// Lines returns the recorded log lines, oldest first.
func (v *View) Lines() []string { return append([]string(nil), v.lines...) }

// SetWidth updates the width parameters.
func (v *View) SetWidth(width int) {
	if width <= 0 {
		return
	}
	v.width = width
	v.columnWidth = max(width/2-4, 20)
}

func (v *View) clip(s string) string {
	if v.columnWidth > 3 && lipgloss.Width(s) > v.columnWidth {
		runes := []rune(s)
		if len(runes) > v.columnWidth-3 {
			return string(runes[:v.columnWidth-3]) + "..."
		}
	}
	return s
}

// View renders the pane, or "" when hidden or too narrow.
func (v *View) View() string {
	if !v.Visible || v.width < 40 {
		return ""
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Width(v.columnWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)

	var sections []string
	if len(v.lines) > 0 {
		clipped := make([]string, len(v.lines))
		for i, l := range v.lines {
			clipped[i] = v.clip(l)
		}
		sections = append(sections, style.Render("Logs:\n"+strings.Join(clipped, "\n")))
	}
	if len(v.events) > 0 {
		sections = append(sections, style.Render("Events:\n"+strings.Join(v.events, "\n")))
	}
	switch len(sections) {
	case 0:
		return ""
	case 1:
		return sections[0]
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, sections[0], "  ", sections[1])
}
