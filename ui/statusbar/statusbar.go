package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tmc/jobboard/ui/theme"
)

// StatusData holds the information for the status bar
type StatusData struct {
	Mode     string // e.g. "Jobs", "Filters", "Login", "Confirm"
	Theme    theme.Name
	Shown    int // jobs passing the active filter
	Total    int
	Filtered bool
	User     string // signed-in email, "" for a guest
	Loading  bool
	Note     string // last outcome, e.g. "confirmed"
}

// Render creates the status bar string
func Render(width int, data StatusData, p theme.Palette) string {
	if width <= 0 {
		return ""
	}
	bar := lipgloss.NewStyle().Background(p.Surface).Foreground(p.Foreground)
	sep := bar.Foreground(p.Muted).Render(" │ ")
	mode := bar.Bold(true).Foreground(p.Accent).Render(fmt.Sprintf(" %s ", data.Mode))

	jobs := fmt.Sprintf("%d jobs", data.Total)
	if data.Filtered {
		jobs = fmt.Sprintf("%d of %d jobs", data.Shown, data.Total)
	}
	if data.Loading {
		jobs += " (loading…)"
	}
	left := strings.Join([]string{mode, bar.Render(jobs), bar.Render(string(data.Theme))}, sep)
	if data.Note != "" {
		left += sep + bar.Foreground(p.Muted).Render(data.Note)
	}

	user := "guest"
	if data.User != "" {
		user = "signed in as " + data.User
	}
	right := bar.Render(fmt.Sprintf(" %s ", user))

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	return bar.Width(width).MaxWidth(width).Render(left + bar.Render(strings.Repeat(" ", padding)) + right)
}
