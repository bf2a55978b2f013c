package board

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tmc/jobboard/ui/statusbar"
)

func (m *bubbleModel) header() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(m.palette.Primary).Render("jobboard")
	sub := lipgloss.NewStyle().Foreground(m.palette.Muted).Render(" · find your next job")
	right := lipgloss.NewStyle().Foreground(m.palette.Muted).Render("m load more")
	if m.status.loading {
		right = m.status.spinner.View() + lipgloss.NewStyle().Foreground(m.palette.Accent).Render(" Loading…")
	}
	left := title + sub
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (m *bubbleModel) footer() string {
	parts := []string{}
	if dv := m.debug.View(); dv != "" {
		parts = append(parts, dv)
	}
	parts = append(parts, m.status.help.View(), m.statusBar())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *bubbleModel) statusBar() string {
	mode := m.screen.String()
	switch {
	case m.confirm.Visible():
		mode = "Confirm"
	case m.screen == screenJobs && m.filters.open:
		mode = "Filters"
	}
	note := m.status.note
	if m.status.authPending {
		note = "authenticating…"
	}
	return statusbar.Render(m.width, statusbar.StatusData{
		Mode:     mode,
		Theme:    m.palette.Name,
		Shown:    len(m.list.shown),
		Total:    len(m.list.all),
		Filtered: !m.filter.IsZero(),
		User:     m.session.Email,
		Loading:  m.status.loading,
		Note:     note,
	}, m.palette)
}

// listTop is the screen row of the first list line.
func (m *bubbleModel) listTop() int {
	top := lipgloss.Height(m.header())
	if m.filters.open {
		top += lipgloss.Height(m.filters.view(m.width, m.palette))
	}
	return top
}

// relayout sizes the list to whatever the header, filter panel and footer
// leave over, and re-renders the cards.
func (m *bubbleModel) relayout() {
	h := m.height - m.listTop() - lipgloss.Height(m.footer())
	m.list.render(m.sched.Now(), m.width, h, m.palette)
}

// overlayBox renders the open menu or form, or "" on the job list.
func (m *bubbleModel) overlayBox() string {
	switch m.screen {
	case screenMenu:
		return m.menu.box(menuItems(m.session.SignedIn()), m.palette)
	case screenLogin, screenRegister:
		status := ""
		if m.status.authPending {
			status = m.status.spinner.View() + " Please wait…"
		}
		return m.activeForm().box(m.palette, status)
	}
	return ""
}

func (m *bubbleModel) mainView() string {
	parts := []string{m.header()}
	if m.filters.open {
		parts = append(parts, m.filters.view(m.width, m.palette))
	}
	parts = append(parts, m.list.vp.View(), m.footer())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// View renders the board. The confirmation prompt and the auth forms cover
// the whole screen; toasts are drawn on top of everything.
func (m *bubbleModel) View() string {
	if m.quitting {
		return ""
	}
	var screen string
	switch {
	case m.confirm.Visible():
		screen = m.confirm.View()
	case m.screen != screenJobs:
		box := m.overlayBox()
		backdrop := lipgloss.NewStyle().Background(m.palette.Backdrop)
		screen = onBackdrop(m.width, m.height, box, centre(m.width, m.height, box), backdrop)
	default:
		screen = m.mainView()
	}
	return overlayTopRight(screen, m.toasts.SetWidth(0).View(), m.width)
}
