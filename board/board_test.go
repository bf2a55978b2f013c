package board

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"github.com/tmc/jobboard/prefs"
	"github.com/tmc/jobboard/ui/confirm"
	"github.com/tmc/jobboard/ui/sched"
	"github.com/tmc/jobboard/ui/theme"
	"github.com/tmc/jobboard/ui/toast"
)

var epoch = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

// harness drives a bubbleModel the way the Bubble Tea runtime would:
// commands are run synchronously and their messages fed back into Update.
type harness struct {
	t     *testing.T
	m     *bubbleModel
	clock *sched.Virtual
	quit  bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	clock := sched.NewVirtual(epoch)
	m := newModel(deps{
		sched:     clock,
		log:       zaptest.NewLogger(t).Sugar(),
		timing:    toast.DefaultTiming,
		loadDelay: time.Second,
		authDelay: time.Second,
		prefsPath: filepath.Join(t.TempDir(), "prefs.yaml"),
		theme:     theme.Light,
	})
	h := &harness{t: t, m: m, clock: clock}
	h.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	return h
}

func (h *harness) send(msg tea.Msg) {
	_, cmd := h.m.Update(msg)
	h.run(cmd)
}

func (h *harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			h.run(c)
		}
	case tea.QuitMsg:
		h.quit = true
	default:
		h.send(msg)
	}
}

var specialKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"right":     tea.KeyRight,
	"left":      tea.KeyLeft,
	"ctrl+l":    tea.KeyCtrlL,
	"ctrl+r":    tea.KeyCtrlR,
	"ctrl+c":    tea.KeyCtrlC,
}

func (h *harness) key(names ...string) {
	for _, name := range names {
		if kt, ok := specialKeys[name]; ok {
			h.send(tea.KeyMsg{Type: kt})
			continue
		}
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)})
	}
}

// fill types each value into the focused field and tabs to the next one.
func (h *harness) fill(values ...string) {
	for _, v := range values {
		if v != "" {
			h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(v)})
		}
		h.key("tab")
	}
}

func (h *harness) click(x, y int) {
	h.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func (h *harness) advance(d time.Duration) {
	h.clock.Advance(d, h.send)
}

func (h *harness) toasts() []string {
	return h.m.toasts.Texts()
}

func (h *harness) wantToasts(want ...string) {
	h.t.Helper()
	if want == nil {
		want = []string{}
	}
	got := h.toasts()
	if got == nil {
		got = []string{}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		h.t.Errorf("toasts mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyConfirmed(t *testing.T) {
	h := newHarness(t)
	h.key("enter")

	req, ok := h.m.confirm.Active()
	if !ok {
		t.Fatal("apply did not present a confirmation")
	}
	if req.Title != "Confirm application" {
		t.Errorf("title = %q", req.Title)
	}
	if want := `Are you sure you want to apply to "Desenvolvedor Back-end Go"?`; req.Message != want {
		t.Errorf("message = %q, want %q", req.Message, want)
	}
	if !strings.Contains(h.m.View(), "Confirm application") {
		t.Error("prompt not rendered")
	}

	h.key("y")
	if h.m.confirm.Visible() {
		t.Error("prompt still visible after confirm")
	}
	if !h.m.list.all[0].Applied {
		t.Error("job not marked applied")
	}
	h.wantToasts(`Application to "Desenvolvedor Back-end Go" sent!`)
	if h.m.status.note != "Confirm application: confirmed" {
		t.Errorf("status note = %q", h.m.status.note)
	}
	if !strings.Contains(h.m.View(), "sent!") {
		t.Error("toast not drawn over the board")
	}

	h.advance(toast.DefaultTiming.Lifetime() - time.Millisecond)
	h.wantToasts(`Application to "Desenvolvedor Back-end Go" sent!`)
	h.advance(time.Millisecond)
	h.wantToasts()
}

func TestApplyDismissed(t *testing.T) {
	tests := []struct {
		name    string
		dismiss func(h *harness)
		outcome string
	}{
		{name: "escape", dismiss: func(h *harness) { h.key("esc") }, outcome: "escaped"},
		{name: "n key", dismiss: func(h *harness) { h.key("n") }, outcome: "cancelled"},
		{name: "cancel button", dismiss: func(h *harness) { h.key("tab", "enter") }, outcome: "cancelled"},
		{name: "backdrop click", dismiss: func(h *harness) { h.click(0, 0) }, outcome: "backdrop"},
		{name: "cancel click", dismiss: func(h *harness) {
			r := h.m.confirm.Layout().Cancel
			h.click(r.X, r.Y)
		}, outcome: "cancelled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.key("j", "enter")
			if !h.m.confirm.Visible() {
				t.Fatal("prompt not shown")
			}
			tt.dismiss(h)
			if h.m.confirm.Visible() {
				t.Error("prompt still visible")
			}
			for i, j := range h.m.list.all {
				if j.Applied {
					t.Errorf("job %d marked applied", i)
				}
			}
			h.wantToasts()
			if want := "Confirm application: " + tt.outcome; h.m.status.note != want {
				t.Errorf("status note = %q, want %q", h.m.status.note, want)
			}
		})
	}
}

func TestStaleResolutionIgnored(t *testing.T) {
	h := newHarness(t)
	h.key("enter")
	first, ok := h.m.confirm.Active()
	if !ok {
		t.Fatal("prompt not shown")
	}
	h.key("esc")
	if h.m.status.note != "Confirm application: escaped" {
		t.Fatalf("status note = %q", h.m.status.note)
	}

	h.m.status.note = ""
	h.key("j", "enter")
	second, ok := h.m.confirm.Active()
	if !ok || second.ID == first.ID {
		t.Fatalf("second prompt = %+v, %v", second, ok)
	}
	h.send(confirm.ResolvedMsg{ID: first.ID, Title: first.Title, Outcome: confirm.OutcomeEscaped})
	if h.m.status.note != "" {
		t.Errorf("late resolution of the first prompt changed the note to %q", h.m.status.note)
	}
	if !h.m.confirm.Visible() {
		t.Error("late resolution closed the second prompt")
	}

	h.key("n")
	if h.m.status.note != "Confirm application: cancelled" {
		t.Errorf("status note = %q after cancelling the second prompt", h.m.status.note)
	}
}

func TestPromptOwnsKeysWhileToastsRun(t *testing.T) {
	h := newHarness(t)
	h.key("m")
	h.key("enter")
	if !h.m.confirm.Visible() {
		t.Fatal("prompt not shown")
	}

	h.key("m", "f", "q")
	if h.m.filters.open || h.quit {
		t.Error("board handled keys while the prompt was open")
	}

	h.advance(time.Second)
	h.wantToasts("3 more jobs loaded")
	if !h.m.confirm.Visible() {
		t.Error("toast closed the prompt")
	}
	h.key("esc")
	h.wantToasts("3 more jobs loaded")
}

func TestLoadMore(t *testing.T) {
	h := newHarness(t)
	h.key("m")
	if !h.m.status.loading {
		t.Fatal("not loading after m")
	}
	h.key("m")
	if n := h.clock.Pending(); n != 1 {
		t.Errorf("pending = %d, want a single load", n)
	}

	h.advance(999 * time.Millisecond)
	if n := len(h.m.list.all); n != 3 {
		t.Errorf("jobs before delay = %d, want 3", n)
	}
	h.advance(time.Millisecond)
	if n := len(h.m.list.all); n != 6 {
		t.Errorf("jobs after delay = %d, want 6", n)
	}
	if h.m.status.loading {
		t.Error("still loading")
	}
	h.wantToasts("3 more jobs loaded")
	if got := h.m.list.all[5].Title; got != "Engenheiro de Software Sênior" {
		t.Errorf("last job = %q", got)
	}
}

func TestFilters(t *testing.T) {
	h := newHarness(t)
	h.key("f")
	if !h.m.filters.open {
		t.Fatal("panel not open")
	}
	h.key("right") // mode: Remote
	h.key("down", "right", "right") // contract: PJ
	h.key("enter")
	if h.m.filters.open {
		t.Error("panel still open after apply")
	}
	h.wantToasts("Filters applied")
	if diff := cmp.Diff([]int{0}, h.m.list.shown); diff != "" {
		t.Errorf("shown mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(h.m.statusBar(), "1 of 3 jobs") {
		t.Errorf("status bar = %q", h.m.statusBar())
	}

	h.key("f", "r")
	if !h.m.filters.draft.IsZero() {
		t.Errorf("draft after reset = %+v", h.m.filters.draft)
	}
	if len(h.m.list.shown) != 1 {
		t.Error("reset changed the list before apply")
	}
	h.key("enter")
	h.wantToasts("Filters applied", "Filters reset", "Filters applied")
	if len(h.m.list.shown) != 3 {
		t.Errorf("shown = %v, want all", h.m.list.shown)
	}

	h.key("f", "left", "esc")
	if h.m.filters.open || len(h.m.list.shown) != 3 {
		t.Error("esc should close without applying")
	}
}

func TestFilteredLoadMore(t *testing.T) {
	h := newHarness(t)
	h.key("f", "right", "right", "enter") // Hybrid
	h.key("m")
	h.advance(time.Second)
	var titles []string
	for _, i := range h.m.list.shown {
		titles = append(titles, h.m.list.all[i].Title)
	}
	want := []string{"Desenvolvedor Front-end React", "Designer UX/UI"}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Errorf("shown mismatch (-want +got):\n%s", diff)
	}
}

func TestThemePersisted(t *testing.T) {
	h := newHarness(t)
	h.key("t")
	if h.m.Theme() != theme.Dark {
		t.Fatalf("theme = %s, want dark", h.m.Theme())
	}
	p, err := prefs.Load(h.m.prefsPath)
	if err != nil {
		t.Fatal(err)
	}
	if p.Theme != "dark" {
		t.Errorf("saved theme = %q, want dark", p.Theme)
	}
	h.key("t")
	if p, _ := prefs.Load(h.m.prefsPath); p.Theme != "light" {
		t.Errorf("saved theme = %q, want light", p.Theme)
	}
	h.wantToasts()
}

func TestThemeSaveFailure(t *testing.T) {
	h := newHarness(t)
	h.m.prefsPath = filepath.Join(t.TempDir(), "file")
	if err := prefs.Save(prefs.Prefs{}, h.m.prefsPath); err != nil {
		t.Fatal(err)
	}
	h.m.prefsPath = filepath.Join(h.m.prefsPath, "nested.yaml")
	h.key("t")
	h.wantToasts("Could not save theme preference")
}

func TestLogin(t *testing.T) {
	h := newHarness(t)
	h.key("L")
	if h.m.screen != screenLogin {
		t.Fatalf("screen = %v", h.m.screen)
	}
	h.key("enter")
	h.wantToasts("Please fill in all fields")

	h.fill("ana@example.com", "segredo123")
	h.key("enter")
	if !h.m.status.authPending {
		t.Fatal("login not pending")
	}
	h.key("enter")
	if n := h.clock.Pending(); n != 2 { // toast entry + one login
		t.Errorf("pending = %d, want 2", n)
	}

	h.advance(time.Second)
	if h.m.screen != screenJobs {
		t.Errorf("screen = %v after login", h.m.screen)
	}
	if h.m.session.Email != "ana@example.com" {
		t.Errorf("session = %+v", h.m.session)
	}
	h.wantToasts("Please fill in all fields", "Logged in successfully!")

	h.key("L")
	if h.m.screen != screenJobs {
		t.Error("login form offered to a signed-in user")
	}
	h.key("o")
	if h.m.session.SignedIn() {
		t.Error("still signed in")
	}
	h.wantToasts("Please fill in all fields", "Logged in successfully!", "You have signed out")
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"missing phone", []string{"Ana", "ana@example.com", "segredo123", "segredo123", ""}, "Please fill in all fields"},
		{"mismatch", []string{"Ana", "ana@example.com", "segredo123", "segredo321", "11912345678"}, "Passwords do not match"},
		{"too short", []string{"Ana", "ana@example.com", "curta", "curta", "11912345678"}, "Password must be at least 8 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.key("R")
			h.fill(tt.values...)
			h.key("enter")
			h.wantToasts(tt.want)
			if h.m.status.authPending || h.m.screen != screenRegister {
				t.Errorf("pending=%v screen=%v", h.m.status.authPending, h.m.screen)
			}
		})
	}
}

func TestRegisterThenLogin(t *testing.T) {
	h := newHarness(t)
	h.key("R")
	h.fill("Ana Souza", "ana@example.com", "segredo123", "segredo123", "11912345678")
	h.key("enter")
	h.advance(time.Second)

	if h.m.screen != screenLogin {
		t.Fatalf("screen = %v, want login", h.m.screen)
	}
	h.wantToasts("Registration complete! Log in to continue.")
	if diff := cmp.Diff([]string{"ana@example.com", "segredo123"}, h.m.login.values()); diff != "" {
		t.Errorf("login form mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"", "", "", "", ""}, h.m.register.values()); diff != "" {
		t.Errorf("register form not cleared (-want +got):\n%s", diff)
	}

	h.key("enter")
	h.advance(time.Second)
	if h.m.session.Email != "ana@example.com" {
		t.Errorf("session = %+v", h.m.session)
	}
}

func TestFormNavigation(t *testing.T) {
	h := newHarness(t)
	h.key("L", "ctrl+r")
	if h.m.screen != screenRegister {
		t.Fatalf("ctrl+r: screen = %v", h.m.screen)
	}
	h.key("ctrl+l")
	if h.m.screen != screenLogin {
		t.Fatalf("ctrl+l: screen = %v", h.m.screen)
	}
	h.key("esc")
	if h.m.screen != screenJobs {
		t.Fatalf("esc: screen = %v", h.m.screen)
	}

	h.key("R")
	r := centre(h.m.width, h.m.height, h.m.overlayBox())
	h.click(r.X+1, r.Y+1)
	if h.m.screen != screenRegister {
		t.Error("click inside the form closed it")
	}
	h.click(0, 0)
	if h.m.screen != screenJobs {
		t.Error("backdrop click did not close the form")
	}
	h.wantToasts()
}

func TestMenu(t *testing.T) {
	h := newHarness(t)
	h.key("tab")
	if h.m.screen != screenMenu {
		t.Fatalf("screen = %v", h.m.screen)
	}
	h.key("down", "enter")
	if h.m.screen != screenJobs || !h.m.filters.open {
		t.Errorf("Filters entry: screen=%v open=%v", h.m.screen, h.m.filters.open)
	}

	h.key("esc", "tab", "down", "down", "enter")
	if h.m.screen != screenLogin {
		t.Errorf("Log in entry: screen = %v", h.m.screen)
	}
}

func TestMouseApply(t *testing.T) {
	h := newHarness(t)
	top := h.m.listTop()
	second := h.m.list.offsets[1]
	h.click(5, top+second+1)
	if h.m.list.selected != 1 || h.m.confirm.Visible() {
		t.Fatalf("selected=%d visible=%v", h.m.list.selected, h.m.confirm.Visible())
	}
	h.click(5, top+second+h.m.list.heights[1]-2)
	req, ok := h.m.confirm.Active()
	if !ok || !strings.Contains(req.Message, "Desenvolvedor Front-end React") {
		t.Errorf("active = %+v, %v", req, ok)
	}
}

func TestQuit(t *testing.T) {
	h := newHarness(t)
	h.key("q")
	if !h.quit || h.m.View() != "" {
		t.Error("q did not quit")
	}

	h = newHarness(t)
	h.key("L", "q")
	if h.quit {
		t.Error("q quit while typing in a form")
	}
	h.key("ctrl+c")
	if !h.quit {
		t.Error("ctrl+c did not quit")
	}
}
