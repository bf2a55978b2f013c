package board

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmc/jobboard/auth"
	"github.com/tmc/jobboard/ui/theme"
)

type field struct {
	label       string
	placeholder string
	secret      bool
}

// form is a titled column of text inputs with one focused at a time.
type form struct {
	title  string
	hint   string
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(title, hint string, animate bool, fields ...field) form {
	f := form{title: title, hint: hint}
	for _, fd := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = fd.placeholder
		ti.CharLimit = 120
		ti.Width = 36
		if fd.secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		if !animate {
			ti.Cursor.SetMode(cursor.CursorStatic)
		}
		f.labels = append(f.labels, fd.label)
		f.inputs = append(f.inputs, ti)
	}
	return f
}

func newLoginForm(animate bool) form {
	return newForm("Log in", "enter submit · tab next field · ctrl+r register · esc close", animate,
		field{label: "Email", placeholder: "you@example.com"},
		field{label: "Password", placeholder: "password", secret: true},
	)
}

func newRegisterForm(animate bool) form {
	return newForm("Create account", "enter submit · tab next field · ctrl+l log in · esc close", animate,
		field{label: "Full name", placeholder: "Ana Souza"},
		field{label: "Email", placeholder: "you@example.com"},
		field{label: "Password", placeholder: "at least 8 characters", secret: true},
		field{label: "Confirm password", placeholder: "repeat password", secret: true},
		field{label: "Phone", placeholder: "(11) 91234-5678"},
	)
}

func (f *form) focusAt(i int) tea.Cmd {
	n := len(f.inputs)
	f.focus = ((i % n) + n) % n
	for k := range f.inputs {
		f.inputs[k].Blur()
	}
	return f.inputs[f.focus].Focus()
}

func (f *form) blur() {
	for k := range f.inputs {
		f.inputs[k].Blur()
	}
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f form) values() []string {
	out := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		out[i] = in.Value()
	}
	return out
}

func (f *form) setValues(vals ...string) {
	for i := range f.inputs {
		v := ""
		if i < len(vals) {
			v = vals[i]
		}
		f.inputs[i].SetValue(v)
	}
}

func (f *form) reset() {
	f.setValues()
	f.focus = 0
	f.blur()
}

func (f form) credentials() auth.Credentials {
	v := f.values()
	return auth.Credentials{Email: v[0], Password: v[1]}
}

func (f form) registration() auth.Registration {
	v := f.values()
	return auth.Registration{Name: v[0], Email: v[1], Password: v[2], ConfirmPassword: v[3], Phone: v[4]}
}

// box renders the form as a bordered dialog. status replaces the hint line
// while a submission is in flight.
func (f form) box(p theme.Palette, status string) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(p.Foreground)
	labelStyle := lipgloss.NewStyle().Foreground(p.Muted)
	focusStyle := lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(p.Muted).Faint(true)

	lines := []string{titleStyle.Render(f.title), ""}
	for i, in := range f.inputs {
		label := labelStyle.Render(f.labels[i])
		marker := "  "
		if i == f.focus && in.Focused() {
			label = focusStyle.Render(f.labels[i])
			marker = focusStyle.Render("› ")
		}
		lines = append(lines, label, marker+in.View())
	}
	lines = append(lines, "")
	if status != "" {
		lines = append(lines, focusStyle.Render(status))
	} else {
		lines = append(lines, hintStyle.Render(f.hint))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Background(p.Surface).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}
