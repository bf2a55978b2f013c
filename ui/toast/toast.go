// Package toast shows short status messages that dismiss themselves.
//
// Every Notify call starts an independent lifecycle:
//
//	Pending --EnterDelay--> Shown --Visible--> Fading --Fade--> removed
//
// Transitions are messages delivered by a sched.Scheduler, so the timing can be
// driven by a virtual clock in tests. Toasts never cancel or delay each other;
// any number may be on screen at once.
package toast

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmc/jobboard/ui/sched"
	"github.com/tmc/jobboard/ui/theme"
)

// Level is the severity of a toast.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Phase is where a toast is in its lifecycle.
type Phase int

const (
	PhasePending Phase = iota
	PhaseShown
	PhaseFading
	PhaseRemoved
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseShown:
		return "shown"
	case PhaseFading:
		return "fading"
	case PhaseRemoved:
		return "removed"
	}
	return "unknown"
}

// Timing holds the lifecycle delays.
type Timing struct {
	EnterDelay time.Duration // Pending -> Shown
	Visible    time.Duration // Shown -> Fading
	Fade       time.Duration // Fading -> removed
}

// DefaultTiming is 10ms to enter, 3s on screen and a 300ms fade.
var DefaultTiming = Timing{
	EnterDelay: 10 * time.Millisecond,
	Visible:    3000 * time.Millisecond,
	Fade:       300 * time.Millisecond,
}

// Lifetime is the time from Notify until the toast is gone.
func (t Timing) Lifetime() time.Duration {
	return t.EnterDelay + t.Visible + t.Fade
}

// Toast is one notification.
type Toast struct {
	ID    int
	Text  string
	Level Level
	Phase Phase
	Born  time.Time
}

// NotifyMsg asks the notifier for a toast.
type NotifyMsg struct {
	Level Level
	Text  string
}

// NotifyCmd returns a command that requests a toast.
func NotifyCmd(level Level, text string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{Level: level, Text: text}
	}
}

// Success is NotifyCmd at LevelSuccess.
func Success(text string) tea.Cmd { return NotifyCmd(LevelSuccess, text) }

// Warning is NotifyCmd at LevelWarning.
func Warning(text string) tea.Cmd { return NotifyCmd(LevelWarning, text) }

// phaseMsg moves toast ID to phase To.
type phaseMsg struct {
	ID int
	To Phase
}

// Model is the stack of live toasts.
type Model struct {
	sched   sched.Scheduler
	timing  Timing
	palette theme.Palette
	toasts  []Toast
	nextID  int
	width   int
}

// New returns an empty notifier.
func New(s sched.Scheduler, timing Timing) Model {
	if s == nil {
		s = sched.Real{}
	}
	return Model{
		sched:   s,
		timing:  timing,
		palette: theme.For(theme.Light),
		width:   80,
	}
}

// SetPalette changes the colours used by View.
func (m Model) SetPalette(p theme.Palette) Model {
	m.palette = p
	return m
}

// SetWidth sets the width toasts are right-aligned against.
func (m Model) SetWidth(w int) Model {
	m.width = w
	return m
}

// Timing returns the lifecycle delays in use.
func (m Model) Timing() Timing { return m.timing }

// Notify adds a success toast. See NotifyLevel.
func (m Model) Notify(text string) (Model, tea.Cmd) {
	return m.NotifyLevel(LevelSuccess, text)
}

// NotifyLevel adds a toast in the pending phase and schedules its entry.
func (m Model) NotifyLevel(level Level, text string) (Model, tea.Cmd) {
	m.nextID++
	t := Toast{
		ID:    m.nextID,
		Text:  text,
		Level: level,
		Phase: PhasePending,
		Born:  m.sched.Now(),
	}
	m.toasts = append(append([]Toast(nil), m.toasts...), t)
	return m, m.sched.After(m.timing.EnterDelay, phaseMsg{ID: t.ID, To: PhaseShown})
}

// Init does nothing.
func (m Model) Init() tea.Cmd { return nil }

// Update handles toast requests and lifecycle transitions.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case NotifyMsg:
		return m.NotifyLevel(msg.Level, msg.Text)
	case phaseMsg:
		return m.advance(msg)
	case tea.WindowSizeMsg:
		return m.SetWidth(msg.Width), nil
	}
	return m, nil
}

// advance applies one transition. Transitions that skip or revisit a phase,
// or name a toast that is already gone, are dropped.
func (m Model) advance(msg phaseMsg) (Model, tea.Cmd) {
	i := m.index(msg.ID)
	if i < 0 || msg.To != m.toasts[i].Phase+1 {
		return m, nil
	}
	toasts := append([]Toast(nil), m.toasts...)
	switch msg.To {
	case PhaseShown:
		toasts[i].Phase = PhaseShown
		m.toasts = toasts
		return m, m.sched.After(m.timing.Visible, phaseMsg{ID: msg.ID, To: PhaseFading})
	case PhaseFading:
		toasts[i].Phase = PhaseFading
		m.toasts = toasts
		return m, m.sched.After(m.timing.Fade, phaseMsg{ID: msg.ID, To: PhaseRemoved})
	case PhaseRemoved:
		m.toasts = append(toasts[:i], toasts[i+1:]...)
	}
	return m, nil
}

func (m Model) index(id int) int {
	for i, t := range m.toasts {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Toasts returns a copy of the live toasts, oldest first.
func (m Model) Toasts() []Toast {
	return append([]Toast(nil), m.toasts...)
}

// Len reports how many toasts are on screen.
func (m Model) Len() int { return len(m.toasts) }

// Texts returns the text of every live toast, oldest first.
func (m Model) Texts() []string {
	out := make([]string, len(m.toasts))
	for i, t := range m.toasts {
		out[i] = t.Text
	}
	return out
}

var icons = map[Level]string{
	LevelSuccess: "✓",
	LevelInfo:    "i",
	LevelWarning: "!",
	LevelError:   "✗",
}

func (m Model) levelColor(l Level) lipgloss.Color {
	switch l {
	case LevelWarning:
		return m.palette.Warning
	case LevelError:
		return m.palette.Danger
	case LevelInfo:
		return m.palette.Accent
	}
	return m.palette.Success
}

// View renders the stack, newest at the bottom, right-aligned.
func (m Model) View() string {
	if len(m.toasts) == 0 {
		return ""
	}
	var rows []string
	for _, t := range m.toasts {
		c := m.levelColor(t.Level)
		s := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c).
			Foreground(m.palette.Foreground).
			Padding(0, 1)
		switch t.Phase {
		case PhasePending:
			s = s.Faint(true).BorderForeground(m.palette.Muted)
		case PhaseFading:
			s = s.Faint(true)
		}
		icon := lipgloss.NewStyle().Foreground(c).Render(icons[t.Level])
		rows = append(rows, s.Render(icon+" "+t.Text))
	}
	stack := lipgloss.JoinVertical(lipgloss.Right, rows...)
	if w := lipgloss.Width(stack); m.width > w {
		lines := strings.Split(stack, "\n")
		for i, l := range lines {
			lines[i] = strings.Repeat(" ", m.width-w) + l
		}
		stack = strings.Join(lines, "\n")
	}
	return stack
}
