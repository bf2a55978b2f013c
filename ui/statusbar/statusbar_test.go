package statusbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/tmc/jobboard/ui/theme"
)

func TestRender(t *testing.T) {
	p := theme.For(theme.Dark)
	tests := []struct {
		name string
		data StatusData
		want []string
	}{
		{
			name: "guest",
			data: StatusData{Mode: "Jobs", Theme: theme.Dark, Shown: 3, Total: 3},
			want: []string{"Jobs", "3 jobs", "dark", "guest"},
		},
		{
			name: "filtered and signed in",
			data: StatusData{Mode: "Filters", Theme: theme.Light, Shown: 2, Total: 6, Filtered: true, User: "ana@example.com"},
			want: []string{"2 of 6 jobs", "signed in as ana@example.com"},
		},
		{
			name: "loading with note",
			data: StatusData{Mode: "Jobs", Total: 3, Loading: true, Note: "confirmed"},
			want: []string{"loading", "confirmed"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(120, tt.data, p)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Render() = %q, missing %q", got, w)
				}
			}
			if w := lipgloss.Width(got); w != 120 {
				t.Errorf("width = %d, want 120", w)
			}
		})
	}
	if got := Render(0, StatusData{}, p); got != "" {
		t.Errorf("Render(0) = %q, want empty", got)
	}
}
