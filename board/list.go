package board

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmc/jobboard/jobs"
	"github.com/tmc/jobboard/ui/card"
	"github.com/tmc/jobboard/ui/theme"
)

// jobList is the scrolling list of cards that pass the active filter.
type jobList struct {
	all      []jobs.Job
	shown    []int // indices into all
	selected int   // position in shown
	follow   bool  // scroll the selection into view on the next render

	vp      viewport.Model
	offsets []int // first content line of each shown card
	heights []int
}

func newJobList(all []jobs.Job) jobList {
	l := jobList{all: all, vp: viewport.New(80, 10)}
	l.filter(jobs.Filter{})
	return l
}

// filter recomputes the visible cards, keeping the selection on the same job
// when it survives.
func (l *jobList) filter(f jobs.Filter) {
	cur := -1
	if i, _, ok := l.current(); ok {
		cur = i
	}
	l.shown = f.Apply(l.all)
	l.selected = 0
	for k, i := range l.shown {
		if i == cur {
			l.selected = k
		}
	}
	l.follow = true
}

func (l *jobList) add(batch []jobs.Job, f jobs.Filter) {
	l.all = append(l.all, batch...)
	l.filter(f)
}

// current returns the selected job and its index in all.
func (l jobList) current() (int, jobs.Job, bool) {
	if l.selected < 0 || l.selected >= len(l.shown) {
		return -1, jobs.Job{}, false
	}
	i := l.shown[l.selected]
	return i, l.all[i], true
}

func (l *jobList) move(delta int) {
	if len(l.shown) == 0 {
		return
	}
	l.selected = min(max(l.selected+delta, 0), len(l.shown)-1)
	l.follow = true
}

// page is how many cards fit in the viewport, at least one.
func (l jobList) page() int {
	if len(l.heights) == 0 || l.heights[0] == 0 {
		return 1
	}
	return max(l.vp.Height/l.heights[0], 1)
}

func (l *jobList) render(now time.Time, width, height int, p theme.Palette) {
	l.vp.Width, l.vp.Height = width, max(height, 1)
	l.offsets, l.heights = l.offsets[:0], l.heights[:0]
	if len(l.shown) == 0 {
		l.vp.SetContent(lipgloss.NewStyle().Foreground(p.Muted).Padding(1, 2).
			Render("No jobs match the current filters."))
		return
	}

	cards := make([]string, 0, len(l.shown))
	line := 0
	for k, i := range l.shown {
		c := card.Render(l.all[i], now, width, k == l.selected, p)
		h := lipgloss.Height(c)
		l.offsets = append(l.offsets, line)
		l.heights = append(l.heights, h)
		line += h
		cards = append(cards, c)
	}
	l.vp.SetContent(strings.Join(cards, "\n"))
	if l.follow {
		l.scrollToSelected()
		l.follow = false
	}
}

func (l *jobList) scrollToSelected() {
	if l.selected >= len(l.offsets) {
		return
	}
	top := l.offsets[l.selected]
	bottom := top + l.heights[l.selected]
	switch {
	case top < l.vp.YOffset:
		l.vp.SetYOffset(top)
	case bottom > l.vp.YOffset+l.vp.Height:
		l.vp.SetYOffset(bottom - l.vp.Height)
	}
}

// hit maps a row inside the viewport to a card. onButton is true for the
// card's bottom content row, where the apply button sits.
func (l jobList) hit(row int) (pos int, onButton, ok bool) {
	if row < 0 || row >= l.vp.Height {
		return 0, false, false
	}
	line := row + l.vp.YOffset
	for k, top := range l.offsets {
		if line >= top && line < top+l.heights[k] {
			return k, line == top+l.heights[k]-2, true
		}
	}
	return 0, false, false
}
