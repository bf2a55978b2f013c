// Package board is the terminal job board: a scrolling list of job cards
// with filters, a theme switch and mock login. Applying to a job goes through
// the confirmation prompt, and every outcome is reported with a toast.
package board

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/tmc/jobboard/config"
	"github.com/tmc/jobboard/prefs"
	"github.com/tmc/jobboard/ui/debug"
	"github.com/tmc/jobboard/ui/sched"
	"github.com/tmc/jobboard/ui/theme"
)

// Option configures a Session.
type Option func(*Session)

// WithScheduler replaces the wall clock.
func WithScheduler(s sched.Scheduler) Option {
	return func(sess *Session) { sess.sched = s }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(sess *Session) { sess.log = log }
}

// WithInput reads terminal input from r instead of stdin.
func WithInput(r io.Reader) Option {
	return func(sess *Session) { sess.in = r }
}

// WithOutput renders to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(sess *Session) { sess.out = w }
}

// Session runs the board as a Bubble Tea program.
type Session struct {
	cfg     config.Config
	sched   sched.Scheduler
	log     *zap.SugaredLogger
	in      io.Reader
	out     io.Writer
	model   *bubbleModel
	program *tea.Program
}

// NewSession creates a session for cfg.
func NewSession(cfg *config.Config, opts ...Option) (*Session, error) {
	if cfg == nil {
		return nil, errors.New("board: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		cfg:   *cfg,
		sched: sched.Real{},
		log:   zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// startTheme picks the palette: --theme, then the saved preference, then
// the terminal background. The background is only queried when needed.
func (s *Session) startTheme() theme.Name {
	saved, err := prefs.Load(s.cfg.PrefsFile)
	if err != nil {
		s.log.Warnw("loading preferences", "path", s.cfg.PrefsFile, "error", err)
	}
	_, configured := theme.Parse(s.cfg.Theme)
	_, remembered := theme.Parse(saved.Theme)
	dark := false
	if !configured && !remembered {
		dark = lipgloss.HasDarkBackground()
	}
	return theme.Resolve(s.cfg.Theme, saved.Theme, dark)
}

func (s *Session) deps() deps {
	return deps{
		sched:     s.sched,
		log:       s.log,
		timing:    s.cfg.ToastTiming(),
		loadDelay: s.cfg.LoadDelay,
		authDelay: s.cfg.AuthDelay,
		prefsPath: s.cfg.PrefsFile,
		theme:     s.startTheme(),
		debug:     s.cfg.Debug || debug.Enabled(),
		animate:   true,
	}
}

// Run starts the Bubble Tea application loop and blocks until the user quits
// or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	s.model = newModel(s.deps())
	s.log.Infow("starting board", "theme", s.model.Theme(), "jobs", len(s.model.list.all))

	options := []tea.ProgramOption{tea.WithAltScreen()}
	if s.cfg.Mouse {
		options = append(options, tea.WithMouseCellMotion())
	}
	if s.in != nil {
		options = append(options, tea.WithInput(s.in))
	}
	if s.out != nil {
		options = append(options, tea.WithOutput(s.out))
	}
	s.program = tea.NewProgram(s.model, options...)

	progDone := make(chan error, 1)
	go func() { _, runErr := s.program.Run(); progDone <- runErr }()

	select {
	case <-ctx.Done():
		s.log.Debugw("context cancelled, quitting program")
		s.program.Quit()
		<-progDone
		return ctx.Err()
	case err := <-progDone:
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.log.Debugw("program finished", "error", err)
		return err
	}
}

// Quit signals the Bubble Tea program to quit.
func (s *Session) Quit() {
	if s.program != nil {
		s.program.Quit()
	}
}
