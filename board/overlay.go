package board

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tmc/jobboard/ui/confirm"
)

// centre returns where box sits when centred on a width x height screen.
func centre(width, height int, box string) confirm.Rect {
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	return confirm.Rect{X: max((width-w)/2, 0), Y: max((height-h)/2, 0), W: w, H: h}
}

// onBackdrop draws box at r over a full screen of backdrop.
func onBackdrop(width, height int, box string, r confirm.Rect, backdrop lipgloss.Style) string {
	lines := strings.Split(box, "\n")
	blank := backdrop.Render(strings.Repeat(" ", max(width, 0)))
	rows := make([]string, 0, height)
	for row := 0; row < height || row < r.Y+r.H; row++ {
		i := row - r.Y
		if i < 0 || i >= len(lines) {
			rows = append(rows, blank)
			continue
		}
		line := backdrop.Render(strings.Repeat(" ", r.X)) + lines[i]
		if rest := width - r.X - r.W; rest > 0 {
			line += backdrop.Render(strings.Repeat(" ", rest))
		}
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n")
}

// overlayTopRight draws stack over the top-right corner of screen, one
// column in from the edge.
func overlayTopRight(screen, stack string, width int) string {
	if stack == "" {
		return screen
	}
	lines := strings.Split(screen, "\n")
	for i, s := range strings.Split(stack, "\n") {
		if i >= len(lines) {
			lines = append(lines, "")
		}
		keep := max(width-lipgloss.Width(s)-1, 0)
		base := ansi.Truncate(lines[i], keep, "")
		if gap := keep - ansi.StringWidth(base); gap > 0 {
			base += strings.Repeat(" ", gap)
		}
		lines[i] = base + s
	}
	return strings.Join(lines, "\n")
}
