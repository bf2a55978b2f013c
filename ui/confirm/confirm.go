// Package confirm implements a modal yes/no prompt for Bubble Tea programs.
//
// A Model owns a single prompt surface. Present shows a title, a message and
// two buttons; the caller's Action runs only when the user confirms. Cancel,
// Escape and a click on the backdrop close the prompt without running it.
//
// The surface is shared: presenting while a prompt is already open replaces
// the open request in place. The replaced request is dropped and its Action
// never runs.
package confirm

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/tmc/jobboard/ui/keymap"
	"github.com/tmc/jobboard/ui/theme"
)

// Action is run when the user confirms. The returned command, if any, is
// handed back to the program (typically a toast).
type Action func() tea.Cmd

// State is the visibility of the prompt.
type State int

const (
	Hidden State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// Outcome describes how a request was resolved.
type Outcome int

const (
	OutcomeConfirmed Outcome = iota
	OutcomeCancelled
	OutcomeBackdrop
	OutcomeEscaped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConfirmed:
		return "confirmed"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeBackdrop:
		return "backdrop"
	case OutcomeEscaped:
		return "escaped"
	}
	return "unknown"
}

// Request is one presentation of the prompt.
type Request struct {
	ID        string
	Title     string
	Message   string
	OnConfirm Action
}

// PresentMsg asks the prompt to show a request.
type PresentMsg struct {
	Title     string
	Message   string
	OnConfirm Action
}

// PresentCmd returns a command that presents a confirmation.
func PresentCmd(title, message string, onConfirm Action) tea.Cmd {
	return func() tea.Msg {
		return PresentMsg{Title: title, Message: message, OnConfirm: onConfirm}
	}
}

// ResolvedMsg is emitted after a request leaves the screen.
type ResolvedMsg struct {
	ID      string
	Title   string
	Outcome Outcome
}

type button int

const (
	buttonConfirm button = iota
	buttonCancel
)

// Labels for the two buttons.
var (
	ConfirmLabel = "Confirm"
	CancelLabel  = "Cancel"
)

// Model is the prompt surface.
type Model struct {
	keys    keymap.ConfirmKeyMap
	palette theme.Palette
	req     *Request
	focus   button
	width   int
	height  int
	newID   func() string

	// lastResolved is the ID of the most recent resolution, cleared by the
	// next Present.
	lastResolved string
}

// New returns a hidden prompt.
func New(keys keymap.ConfirmKeyMap) Model {
	return Model{
		keys:    keys,
		palette: theme.For(theme.Light),
		width:   80,
		height:  24,
		newID:   uuid.NewString,
	}
}

// SetSize records the terminal size the prompt is laid out against.
func (m Model) SetSize(width, height int) Model {
	m.width, m.height = width, height
	return m
}

// SetPalette changes the colours used by View.
func (m Model) SetPalette(p theme.Palette) Model {
	m.palette = p
	return m
}

// State reports whether the prompt is shown.
func (m Model) State() State {
	if m.req != nil {
		return Visible
	}
	return Hidden
}

// Visible is shorthand for State() == Visible.
func (m Model) Visible() bool { return m.req != nil }

// Active returns the request currently on screen.
func (m Model) Active() (Request, bool) {
	if m.req == nil {
		return Request{}, false
	}
	return *m.req, true
}

// LastResolved returns the ID of the request resolved most recently, or ""
// once another request has been presented since.
func (m Model) LastResolved() string { return m.lastResolved }

// Current reports whether msg belongs to the latest resolution. A ResolvedMsg
// that arrives after a newer request was presented is stale.
func (m Model) Current(msg ResolvedMsg) bool {
	return msg.ID != "" && msg.ID == m.lastResolved
}

// Present shows title and message verbatim. An open request is replaced.
func (m Model) Present(title, message string, onConfirm Action) Model {
	m.lastResolved = ""
	m.req = &Request{
		ID:        m.newID(),
		Title:     title,
		Message:   message,
		OnConfirm: onConfirm,
	}
	m.focus = buttonConfirm
	return m
}

// Init does nothing.
func (m Model) Init() tea.Cmd { return nil }

// Update handles presentation requests and, while visible, keys and clicks.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PresentMsg:
		return m.Present(msg.Title, msg.Message, msg.OnConfirm), nil
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	}
	if m.req == nil {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Escape):
			return m.resolve(OutcomeEscaped)
		case key.Matches(msg, m.keys.Yes):
			return m.resolve(OutcomeConfirmed)
		case key.Matches(msg, m.keys.No):
			return m.resolve(OutcomeCancelled)
		case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Prev):
			m.focus = 1 - m.focus
		case key.Matches(msg, m.keys.Confirm):
			if m.focus == buttonConfirm {
				return m.resolve(OutcomeConfirmed)
			}
			return m.resolve(OutcomeCancelled)
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		l := m.Layout()
		switch {
		case l.Confirm.Contains(msg.X, msg.Y):
			return m.resolve(OutcomeConfirmed)
		case l.Cancel.Contains(msg.X, msg.Y):
			return m.resolve(OutcomeCancelled)
		case !l.Box.Contains(msg.X, msg.Y):
			return m.resolve(OutcomeBackdrop)
		}
	}
	return m, nil
}

// resolve hides the prompt before running anything, so a second resolution
// for the same request finds nothing to act on.
func (m Model) resolve(o Outcome) (Model, tea.Cmd) {
	req := m.req
	m.req = nil
	m.focus = buttonConfirm
	m.lastResolved = req.ID

	var cmds []tea.Cmd
	if o == OutcomeConfirmed && req.OnConfirm != nil {
		cmds = append(cmds, req.OnConfirm())
	}
	resolved := ResolvedMsg{ID: req.ID, Title: req.Title, Outcome: o}
	cmds = append(cmds, func() tea.Msg { return resolved })
	return m, tea.Batch(cmds...)
}

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout is the geometry of the prompt on screen.
type Layout struct {
	Box     Rect
	Confirm Rect
	Cancel  Rect
	lines   []string
}

const (
	maxInner = 56
	padX     = 2
	padY     = 1
	border   = 1
	hintRows = 1
)

// Layout computes where the dialog and its buttons sit for the current size.
// View draws from the same result, so clicks and pixels agree.
func (m Model) Layout() Layout {
	inner := maxInner
	if avail := m.width - 2*(padX+border) - 2; avail < inner {
		inner = avail
	}
	if inner < 12 {
		inner = 12
	}

	var title, message string
	if m.req != nil {
		title, message = m.req.Title, m.req.Message
	}
	p := m.palette
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(p.Foreground)
	msgStyle := lipgloss.NewStyle().Foreground(p.Foreground)

	var content []string
	content = append(content, wrap(titleStyle, title, inner)...)
	content = append(content, pad("", inner))
	content = append(content, wrap(msgStyle, message, inner)...)
	content = append(content, pad("", inner))

	confirmBtn := m.renderButton(ConfirmLabel, m.focus == buttonConfirm, p.Primary)
	cancelBtn := m.renderButton(CancelLabel, m.focus == buttonCancel, p.Muted)
	gap := "  "
	rowW := lipgloss.Width(confirmBtn) + len(gap) + lipgloss.Width(cancelBtn)
	offset := (inner - rowW) / 2
	if offset < 0 {
		offset = 0
	}
	content = append(content, pad(strings.Repeat(" ", offset)+confirmBtn+gap+cancelBtn, inner))
	content = append(content, pad(m.hints(inner), inner))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Background(p.Surface).
		Padding(padY, padX).
		Render(strings.Join(content, "\n"))

	lines := strings.Split(box, "\n")
	bw := lipgloss.Width(box)
	bh := len(lines)
	x := (m.width - bw) / 2
	y := (m.height - bh) / 2
	if x < 0 {
		x = 0
	}
	// Row of the buttons inside the box.
	rowIdx := bh - border - padY - hintRows - 1
	switch {
	case m.height > 0 && bh > m.height:
		// Too tall: scroll the box up until the buttons are on screen.
		y = max(m.height-bh, -rowIdx)
	case y < 0:
		y = 0
	}

	rowY := y + rowIdx
	rowX := x + border + padX + offset
	return Layout{
		Box:     Rect{X: x, Y: y, W: bw, H: bh},
		Confirm: Rect{X: rowX, Y: rowY, W: lipgloss.Width(confirmBtn), H: 1},
		Cancel:  Rect{X: rowX + lipgloss.Width(confirmBtn) + len(gap), Y: rowY, W: lipgloss.Width(cancelBtn), H: 1},
		lines:   lines,
	}
}

// hints is the one-line key help shown under the buttons.
func (m Model) hints(width int) string {
	h := help.New()
	h.Width = width
	h.ShortSeparator = " · "
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(m.palette.Foreground)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(m.palette.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(m.palette.Muted)
	h.Styles.Ellipsis = lipgloss.NewStyle().Foreground(m.palette.Muted)
	return h.ShortHelpView(m.keys.ShortHelp())
}

func (m Model) renderButton(label string, focused bool, c lipgloss.Color) string {
	s := lipgloss.NewStyle().Padding(0, 1).Foreground(c)
	if focused {
		s = s.Reverse(true).Bold(true)
	}
	return s.Render(label)
}

// View renders the dimmed backdrop with the dialog centred on it. It returns
// "" while hidden. The output is exactly as tall as the terminal, so the rows
// drawn match the rows Layout reports.
func (m Model) View() string {
	if m.req == nil {
		return ""
	}
	l := m.Layout()
	backdrop := lipgloss.NewStyle().Background(m.palette.Backdrop)
	blank := backdrop.Render(strings.Repeat(" ", max(m.width, 0)))

	rows := m.height
	if rows <= 0 {
		rows = l.Box.Y + l.Box.H
	}
	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteString("\n")
		}
		i := row - l.Box.Y
		if i < 0 || i >= len(l.lines) {
			b.WriteString(blank)
			continue
		}
		left := backdrop.Render(strings.Repeat(" ", l.Box.X))
		rightW := m.width - l.Box.X - l.Box.W
		b.WriteString(left + l.lines[i])
		if rightW > 0 {
			b.WriteString(backdrop.Render(strings.Repeat(" ", rightW)))
		}
	}
	return b.String()
}

func wrap(s lipgloss.Style, text string, width int) []string {
	out := strings.Split(s.Width(width).Render(text), "\n")
	for i := range out {
		out[i] = pad(out[i], width)
	}
	return out
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
