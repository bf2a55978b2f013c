// Package card renders a job listing as a bordered card.
package card

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tmc/jobboard/jobs"
	"github.com/tmc/jobboard/ui/theme"
)

// ApplyLabel is the call to action shown on every card.
const ApplyLabel = "Apply"

func badgeColor(m jobs.Mode, p theme.Palette) lipgloss.Color {
	switch m {
	case jobs.Remote:
		return p.Success
	case jobs.Hybrid:
		return p.Warning
	}
	return p.Accent
}

// Render formats j for display at the given width. The selected card gets
// the accent border and a focused apply button.
func Render(j jobs.Job, now time.Time, width int, selected bool, p theme.Palette) string {
	inner := width - 4 // border + padding
	if inner < 20 {
		inner = 20
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(p.Foreground)
	mutedStyle := lipgloss.NewStyle().Foreground(p.Muted)
	textStyle := lipgloss.NewStyle().Foreground(p.Foreground)
	skillStyle := lipgloss.NewStyle().Foreground(p.Accent)
	salaryStyle := lipgloss.NewStyle().Bold(true).Foreground(p.Success)
	badge := lipgloss.NewStyle().
		Foreground(badgeColor(j.Mode, p)).
		Bold(true).
		Render("[" + j.Mode.Label() + "]")

	title := titleStyle.Render(j.Title)
	if gap := inner - lipgloss.Width(title) - lipgloss.Width(badge); gap > 0 {
		title += strings.Repeat(" ", gap) + badge
	} else {
		title += " " + badge
	}

	company := textStyle.Render(j.Company) + mutedStyle.Render(" · "+j.Location)
	if age := j.Age(now); age != "" {
		company += mutedStyle.Render(" · " + age)
	}

	skills := make([]string, len(j.Skills))
	for i, s := range j.Skills {
		skills[i] = skillStyle.Render("#" + s)
	}

	btn := lipgloss.NewStyle().Padding(0, 1).Foreground(p.Primary)
	label := ApplyLabel
	if j.Applied {
		label = "Applied ✓"
	}
	if selected {
		btn = btn.Reverse(true).Bold(true)
	}
	footer := salaryStyle.Render(j.Salary()) + mutedStyle.Render(" "+string(j.Contract))
	button := btn.Render(label)
	if gap := inner - lipgloss.Width(footer) - lipgloss.Width(button); gap > 0 {
		footer += strings.Repeat(" ", gap)
	} else {
		footer += " "
	}
	footer += button

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		company,
		textStyle.Width(inner).Render(j.Description),
		lipgloss.NewStyle().Width(inner).Render(strings.Join(skills, " ")),
		footer,
	)

	border := p.Border
	if selected {
		border = p.Accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(inner + 2).
		Render(body)
}
