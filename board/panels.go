package board

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tmc/jobboard/jobs"
	"github.com/tmc/jobboard/ui/theme"
)

// filterPanel edits a draft filter. The list only changes when the draft is
// applied.
type filterPanel struct {
	open  bool
	draft jobs.Filter
	field jobs.Field
}

func (fp filterPanel) view(width int, p theme.Palette) string {
	label := lipgloss.NewStyle().Foreground(p.Muted)
	value := lipgloss.NewStyle().Foreground(p.Foreground)
	focused := lipgloss.NewStyle().Foreground(p.Accent).Bold(true)

	selector := func(f jobs.Field, name, v string) string {
		s := value
		if fp.field == f {
			s = focused
		}
		return label.Render(name+": ") + s.Render("‹ "+v+" ›")
	}
	row := selector(jobs.FieldMode, "Work mode", fp.draft.ModeLabel()) + "    " +
		selector(jobs.FieldContract, "Contract", fp.draft.ContractLabel())
	hint := label.Faint(true).Render("←/→ change · ↑/↓ field · enter apply · r reset · esc close")

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(p.Border).
		Width(width).
		Render(row + "\n" + hint)
}

// navMenu is the tab menu.
type navMenu struct {
	cursor int
}

type menuItem int

const (
	menuJobs menuItem = iota
	menuFilters
	menuLogin
	menuRegister
	menuLogout
)

func (mi menuItem) String() string {
	switch mi {
	case menuJobs:
		return "Jobs"
	case menuFilters:
		return "Filters"
	case menuLogin:
		return "Log in"
	case menuRegister:
		return "Register"
	case menuLogout:
		return "Log out"
	}
	return "?"
}

func menuItems(signedIn bool) []menuItem {
	if signedIn {
		return []menuItem{menuJobs, menuFilters, menuLogout}
	}
	return []menuItem{menuJobs, menuFilters, menuLogin, menuRegister}
}

func (nm navMenu) box(items []menuItem, p theme.Palette) string {
	rows := []string{lipgloss.NewStyle().Bold(true).Foreground(p.Foreground).Render("Menu"), ""}
	for i, it := range items {
		s := lipgloss.NewStyle().Foreground(p.Foreground).Padding(0, 1)
		prefix := "  "
		if i == nm.cursor {
			s = s.Foreground(p.Accent).Bold(true).Reverse(true)
			prefix = "› "
		}
		rows = append(rows, prefix+s.Render(it.String()))
	}
	rows = append(rows, "", lipgloss.NewStyle().Foreground(p.Muted).Faint(true).Render("enter select · esc close"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Background(p.Surface).
		Padding(1, 3).
		Render(strings.Join(rows, "\n"))
}
