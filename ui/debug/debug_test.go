package debug

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

type loadedMsg struct{}

func TestHiddenRecordsNothing(t *testing.T) {
	v := NewView(false)
	v.AddEvent(loadedMsg{})
	v.Log("hello")
	if len(v.Events()) != 0 || len(v.Lines()) != 0 || v.View() != "" {
		t.Errorf("hidden view recorded output: %v %v", v.Events(), v.Lines())
	}
}

func TestEventsFilteredAndCapped(t *testing.T) {
	v := NewView(true)
	v.AddEvent(spinner.TickMsg{})
	v.AddEvent(tea.MouseMsg{})
	v.AddEvent(nil)
	for i := 0; i < 8; i++ {
		v.AddEvent(loadedMsg{})
	}
	got := v.Events()
	if len(got) != 6 {
		t.Fatalf("got %d events, want 6: %v", len(got), got)
	}
	if !strings.HasPrefix(got[0], "0003:") || !strings.HasSuffix(got[5], "debug.loadedMsg") {
		t.Errorf("events = %v", got)
	}
}

func TestLogCapped(t *testing.T) {
	v := NewView(true)
	for i := 0; i < 12; i++ {
		v.Log("line %d", i)
	}
	v.Log("a\nb\n")
	want := []string{"line 4", "line 5", "line 6", "line 7", "line 8", "line 9", "line 10", "line 11", "a", "b"}
	if diff := cmp.Diff(want, v.Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	v.SetWidth(100)
	if out := v.View(); !strings.Contains(out, "Logs:") || strings.Contains(out, "Events:") {
		t.Errorf("View() = %q", out)
	}
}

func TestEnabled(t *testing.T) {
	for _, val := range []string{"1", "0", ""} {
		t.Run(fmt.Sprintf("DEBUG_UI=%q", val), func(t *testing.T) {
			t.Setenv("DEBUG_UI", val)
			if got, want := Enabled(), val == "1"; got != want {
				t.Errorf("Enabled() = %v, want %v", got, want)
			}
		})
	}
}
