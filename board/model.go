package board

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/tmc/jobboard/auth"
	"github.com/tmc/jobboard/jobs"
	"github.com/tmc/jobboard/ui/confirm"
	"github.com/tmc/jobboard/ui/debug"
	"github.com/tmc/jobboard/ui/help"
	"github.com/tmc/jobboard/ui/keymap"
	"github.com/tmc/jobboard/ui/sched"
	"github.com/tmc/jobboard/ui/theme"
	"github.com/tmc/jobboard/ui/toast"
)

// Helper function to create a command that sends a message
func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// screen is what currently has the keyboard.
type screen int

const (
	screenJobs screen = iota
	screenMenu
	screenLogin
	screenRegister
)

func (s screen) String() string {
	switch s {
	case screenMenu:
		return "Menu"
	case screenLogin:
		return "Log in"
	case screenRegister:
		return "Register"
	}
	return "Jobs"
}

// Messages internal to the board.
type (
	jobsLoadedMsg   struct{}
	appliedMsg      struct{ index int }
	loginDoneMsg    struct{ email string }
	registerDoneMsg struct{ creds auth.Credentials }
	themeSavedMsg   struct {
		name theme.Name
		err  error
	}
)

// deps is everything the model needs from its session.
type deps struct {
	sched     sched.Scheduler
	log       *zap.SugaredLogger
	timing    toast.Timing
	loadDelay time.Duration
	authDelay time.Duration
	prefsPath string
	theme     theme.Name
	debug     bool
	animate   bool // spinner frames and cursor blink
}

// StatusModel holds the footer state.
type StatusModel struct {
	spinner     spinner.Model
	help        help.Model
	loading     bool
	authPending bool
	note        string
}

// bubbleModel is the board's root model. Sub-models own their own state;
// this type routes messages between them.
type bubbleModel struct {
	sched     sched.Scheduler
	log       *zap.SugaredLogger
	prefsPath string
	loadDelay time.Duration
	authDelay time.Duration
	animate   bool

	keys    keymap.KeyMap
	palette theme.Palette

	confirm confirm.Model
	toasts  toast.Model

	list     jobList
	filter   jobs.Filter // applied
	filters  filterPanel
	menu     navMenu
	login    form
	register form
	session  auth.Session

	screen   screen
	status   StatusModel
	debug    *debug.View
	width    int
	height   int
	quitting bool
}

func newModel(d deps) *bubbleModel {
	if d.sched == nil {
		d.sched = sched.Real{}
	}
	if d.log == nil {
		d.log = zap.NewNop().Sugar()
	}
	keys := keymap.DefaultKeyMap()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	m := &bubbleModel{
		sched:     d.sched,
		log:       d.log,
		prefsPath: d.prefsPath,
		loadDelay: d.loadDelay,
		authDelay: d.authDelay,
		animate:   d.animate,
		keys:      keys,
		confirm:   confirm.New(keymap.DefaultConfirmKeyMap()),
		toasts:    toast.New(d.sched, d.timing),
		list:      newJobList(jobs.Seed(d.sched.Now())),
		login:     newLoginForm(d.animate),
		register:  newRegisterForm(d.animate),
		status: StatusModel{
			spinner: sp,
			help:    help.New(keys),
		},
		debug:  debug.NewView(d.debug),
		width:  80,
		height: 24,
	}
	m.setTheme(d.theme)
	m.resize(m.width, m.height)
	return m
}

func (m *bubbleModel) setTheme(n theme.Name) {
	m.palette = theme.For(n)
	m.confirm = m.confirm.SetPalette(m.palette)
	m.toasts = m.toasts.SetPalette(m.palette)
	m.status.help = m.status.help.SetPalette(m.palette)
	m.status.spinner.Style = lipgloss.NewStyle().Foreground(m.palette.Accent)
}

func (m *bubbleModel) resize(w, h int) {
	m.width, m.height = w, h
	m.confirm = m.confirm.SetSize(w, h)
	m.toasts = m.toasts.SetWidth(w)
	m.status.help.SetWidth(w)
	m.debug.SetWidth(w)
	m.relayout()
}

// Init starts nothing; the board is idle until the first key.
func (m *bubbleModel) Init() tea.Cmd {
	return nil
}
