// Package sched delivers delayed Bubble Tea messages through a pluggable clock.
//
// Components never sleep. They ask a Scheduler for a command that delivers a
// message later, and handle that message in Update like any other. In
// production the Real scheduler is backed by tea.Tick. Tests use Virtual,
// which only releases messages when the clock is advanced explicitly.
package sched

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler turns a delay into a command.
type Scheduler interface {
	// Now reports the scheduler's current time.
	Now() time.Time
	// After returns a command that delivers msg once d has elapsed.
	After(d time.Duration, msg tea.Msg) tea.Cmd
}

// Real schedules on the wall clock.
type Real struct{}

var _ Scheduler = Real{}

// Now returns time.Now.
func (Real) Now() time.Time { return time.Now() }

// After wraps tea.Tick.
func (Real) After(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

type entry struct {
	at  time.Time
	seq uint64
	msg tea.Msg
}

// Virtual is a manually advanced clock. It is not safe for concurrent use;
// like the Bubble Tea update loop it is meant to be driven from one goroutine.
type Virtual struct {
	now     time.Time
	seq     uint64
	pending []entry
}

var _ Scheduler = (*Virtual)(nil)

// NewVirtual returns a virtual clock starting at start.
func NewVirtual(start time.Time) *Virtual {
	return &Virtual{now: start}
}

// Now returns the virtual time.
func (v *Virtual) Now() time.Time { return v.now }

// After queues msg for delivery at Now()+d. The returned command is a no-op:
// queued messages are released by Advance.
func (v *Virtual) After(d time.Duration, msg tea.Msg) tea.Cmd {
	if d < 0 {
		d = 0
	}
	v.seq++
	v.pending = append(v.pending, entry{at: v.now.Add(d), seq: v.seq, msg: msg})
	return func() tea.Msg { return nil }
}

// Advance moves the clock forward by d. Each message that comes due is
// passed to deliver with the clock set to that message's deadline, in deadline
// order and then in scheduling order. Messages scheduled by deliver itself are
// released in the same call if they fall inside the window.
func (v *Virtual) Advance(d time.Duration, deliver func(tea.Msg)) {
	target := v.now.Add(d)
	for {
		v.sort()
		if len(v.pending) == 0 || v.pending[0].at.After(target) {
			break
		}
		e := v.pending[0]
		v.pending = v.pending[1:]
		if e.at.After(v.now) {
			v.now = e.at
		}
		if deliver != nil {
			deliver(e.msg)
		}
	}
	v.now = target
}

// Pending reports how many messages are still queued.
func (v *Virtual) Pending() int { return len(v.pending) }

// Next reports the earliest queued deadline.
func (v *Virtual) Next() (time.Time, bool) {
	if len(v.pending) == 0 {
		return time.Time{}, false
	}
	v.sort()
	return v.pending[0].at, true
}

func (v *Virtual) sort() {
	sort.SliceStable(v.pending, func(i, j int) bool {
		a, b := v.pending[i], v.pending[j]
		if a.at.Equal(b.at) {
			return a.seq < b.seq
		}
		return a.at.Before(b.at)
	})
}
