package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmc/jobboard/auth"
	"github.com/tmc/jobboard/jobs"
	"github.com/tmc/jobboard/prefs"
	"github.com/tmc/jobboard/ui/confirm"
	"github.com/tmc/jobboard/ui/theme"
	"github.com/tmc/jobboard/ui/toast"
)

// Update routes msg. While the confirmation prompt is open it receives every
// key and click; toasts keep running underneath.
func (m *bubbleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.debug.AddEvent(msg)
	cmd := m.update(msg)
	m.relayout()
	return m, cmd
}

func (m *bubbleModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return nil

	case confirm.PresentMsg:
		m.log.Debugw("confirmation presented", "title", msg.Title)
		m.debug.Log(" > Confirm: %s", msg.Title)
		m.confirm, _ = m.confirm.Update(msg)
		return nil

	case confirm.ResolvedMsg:
		if !m.confirm.Current(msg) {
			m.log.Debugw("stale confirmation dropped", "id", msg.ID)
			return nil
		}
		m.log.Infow("confirmation resolved", "id", msg.ID, "title", msg.Title, "outcome", msg.Outcome)
		m.status.note = fmt.Sprintf("%s: %s", msg.Title, msg.Outcome)
		return nil

	case toast.NotifyMsg:
		m.log.Infow("toast", "level", msg.Level, "text", msg.Text)
		m.debug.Log(" > Toast: %s", msg.Text)
		var cmd tea.Cmd
		m.toasts, cmd = m.toasts.Update(msg)
		return cmd

	case appliedMsg:
		if msg.index >= 0 && msg.index < len(m.list.all) {
			m.list.all[msg.index].Applied = true
			m.log.Infow("applied", "job", m.list.all[msg.index].Title)
		}
		return nil

	case jobsLoadedMsg:
		batch := jobs.Batch(m.sched.Now())
		m.list.add(batch, m.filter)
		m.status.loading = false
		m.log.Infow("jobs loaded", "added", len(batch), "total", len(m.list.all))
		return toast.Success(fmt.Sprintf("%d more jobs loaded", len(batch)))

	case loginDoneMsg:
		m.status.authPending = false
		m.session = auth.Session{Email: msg.email}
		m.login.reset()
		if m.screen == screenLogin {
			m.screen = screenJobs
		}
		m.log.Infow("signed in", "email", msg.email)
		return toast.Success("Logged in successfully!")

	case registerDoneMsg:
		m.status.authPending = false
		m.register.reset()
		m.login.setValues(msg.creds.Email, msg.creds.Password)
		m.log.Infow("registered", "email", msg.creds.Email)
		return tea.Batch(m.open(screenLogin), toast.Success("Registration complete! Log in to continue."))

	case themeSavedMsg:
		if msg.err != nil {
			m.log.Warnw("saving theme preference", "theme", msg.name, "error", msg.err)
			return toast.NotifyCmd(toast.LevelError, "Could not save theme preference")
		}
		m.log.Debugw("theme preference saved", "theme", msg.name, "path", m.prefsPath)
		return nil

	case spinner.TickMsg:
		if !m.status.loading && !m.status.authPending {
			return nil
		}
		var cmd tea.Cmd
		m.status.spinner, cmd = m.status.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return tea.Quit
		}
		if m.confirm.Visible() {
			var cmd tea.Cmd
			m.confirm, cmd = m.confirm.Update(msg)
			return cmd
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.confirm.Visible() {
			var cmd tea.Cmd
			m.confirm, cmd = m.confirm.Update(msg)
			return cmd
		}
		return m.handleMouse(msg)
	}

	// Toast transitions, cursor blinks and anything else.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.toasts, cmd = m.toasts.Update(msg)
	cmds = append(cmds, cmd)
	if f := m.activeForm(); f != nil {
		cmds = append(cmds, f.update(msg))
	}
	return tea.Batch(cmds...)
}

func (m *bubbleModel) activeForm() *form {
	switch m.screen {
	case screenLogin:
		return &m.login
	case screenRegister:
		return &m.register
	}
	return nil
}

func (m *bubbleModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.screen {
	case screenMenu:
		return m.handleMenuKey(msg)
	case screenLogin, screenRegister:
		return m.handleFormKey(msg)
	}
	if m.filters.open {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.ToggleHelp):
		var cmd tea.Cmd
		m.status.help, cmd = m.status.help.Update(msg)
		return cmd
	case key.Matches(msg, m.keys.Up):
		m.list.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.list.move(1)
	case key.Matches(msg, m.keys.PageUp):
		m.list.move(-m.list.page())
	case key.Matches(msg, m.keys.PageDown):
		m.list.move(m.list.page())
	case key.Matches(msg, m.keys.Apply):
		return m.applyToSelected()
	case key.Matches(msg, m.keys.LoadMore):
		return m.loadMore()
	case key.Matches(msg, m.keys.Filters):
		m.openFilters()
	case key.Matches(msg, m.keys.Menu):
		return m.open(screenMenu)
	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme()
	case key.Matches(msg, m.keys.Login):
		return m.open(screenLogin)
	case key.Matches(msg, m.keys.Register):
		return m.open(screenRegister)
	case key.Matches(msg, m.keys.Logout):
		return m.logout()
	}
	return nil
}

func (m *bubbleModel) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyEsc, key.Matches(msg, m.keys.Filters):
		m.filters.open = false
	case msg.Type == tea.KeyEnter:
		m.filter = m.filters.draft
		m.list.filter(m.filter)
		m.filters.open = false
		m.log.Infow("filters applied", "mode", m.filter.ModeLabel(), "contract", m.filter.ContractLabel(), "shown", len(m.list.shown))
		return toast.Success("Filters applied")
	case key.Matches(msg, m.keys.ResetFilter):
		m.filters.draft = jobs.Filter{}
		m.filters.field = jobs.FieldMode
		return toast.Success("Filters reset")
	case key.Matches(msg, m.keys.NextOption):
		m.filters.draft = m.filters.draft.Cycle(m.filters.field, 1)
	case key.Matches(msg, m.keys.PrevOption):
		m.filters.draft = m.filters.draft.Cycle(m.filters.field, -1)
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down), msg.Type == tea.KeyTab:
		m.filters.field = m.filters.field.NextField()
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *bubbleModel) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	items := menuItems(m.session.SignedIn())
	switch {
	case msg.Type == tea.KeyEsc, key.Matches(msg, m.keys.Menu):
		m.screen = screenJobs
	case key.Matches(msg, m.keys.Up):
		m.menu.cursor = max(m.menu.cursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.menu.cursor = min(m.menu.cursor+1, len(items)-1)
	case msg.Type == tea.KeyEnter:
		return m.selectMenu(items[m.menu.cursor])
	}
	return nil
}

func (m *bubbleModel) selectMenu(it menuItem) tea.Cmd {
	m.screen = screenJobs
	switch it {
	case menuFilters:
		m.openFilters()
	case menuLogin:
		return m.open(screenLogin)
	case menuRegister:
		return m.open(screenRegister)
	case menuLogout:
		return m.logout()
	}
	return nil
}

func (m *bubbleModel) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	f := m.activeForm()
	switch {
	case msg.Type == tea.KeyEsc:
		m.closeForm()
		return nil
	case key.Matches(msg, m.keys.SwapToLogin):
		return m.open(screenLogin)
	case key.Matches(msg, m.keys.SwapToReg):
		return m.open(screenRegister)
	case msg.Type == tea.KeyTab, msg.Type == tea.KeyDown:
		return f.focusAt(f.focus + 1)
	case msg.Type == tea.KeyShiftTab, msg.Type == tea.KeyUp:
		return f.focusAt(f.focus - 1)
	case msg.Type == tea.KeyEnter:
		return m.submit()
	}
	return f.update(msg)
}

func (m *bubbleModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch m.screen {
	case screenMenu, screenLogin, screenRegister:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if r := centre(m.width, m.height, m.overlayBox()); !r.Contains(msg.X, msg.Y) {
				if m.screen == screenMenu {
					m.screen = screenJobs
				} else {
					m.closeForm()
				}
			}
		}
		return nil
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		pos, onButton, ok := m.list.hit(msg.Y - m.listTop())
		if !ok {
			return nil
		}
		m.list.selected = pos
		if onButton {
			return m.applyToSelected()
		}
		return nil
	}
	var cmd tea.Cmd
	m.list.vp, cmd = m.list.vp.Update(msg)
	return cmd
}

// applyToSelected asks for confirmation before applying to the selected job.
func (m *bubbleModel) applyToSelected() tea.Cmd {
	idx, j, ok := m.list.current()
	if !ok {
		return nil
	}
	title := j.Title
	return confirm.PresentCmd(
		"Confirm application",
		fmt.Sprintf("Are you sure you want to apply to \"%s\"?", title),
		func() tea.Cmd {
			return tea.Batch(
				msgCmd(appliedMsg{index: idx}),
				toast.Success(fmt.Sprintf("Application to \"%s\" sent!", title)),
			)
		},
	)
}

func (m *bubbleModel) loadMore() tea.Cmd {
	if m.status.loading {
		return nil
	}
	m.status.loading = true
	m.log.Debugw("loading more jobs", "delay", m.loadDelay)
	cmds := []tea.Cmd{m.sched.After(m.loadDelay, jobsLoadedMsg{})}
	if m.animate {
		cmds = append(cmds, m.status.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m *bubbleModel) openFilters() {
	m.filters.open = true
	m.filters.draft = m.filter
	m.filters.field = jobs.FieldMode
}

func (m *bubbleModel) toggleTheme() tea.Cmd {
	next := m.palette.Name.Toggle()
	m.setTheme(next)
	m.log.Infow("theme changed", "theme", next)
	if m.prefsPath == "" {
		return nil
	}
	path := m.prefsPath
	return func() tea.Msg {
		return themeSavedMsg{name: next, err: prefs.Save(prefs.Prefs{Theme: string(next)}, path)}
	}
}

// open shows the menu or one of the auth forms. The forms are not offered
// to a signed-in user.
func (m *bubbleModel) open(s screen) tea.Cmd {
	if (s == screenLogin || s == screenRegister) && m.session.SignedIn() {
		return nil
	}
	if f := m.activeForm(); f != nil {
		f.blur()
	}
	m.screen = s
	switch s {
	case screenMenu:
		m.menu.cursor = 0
	case screenLogin:
		return m.login.focusAt(0)
	case screenRegister:
		return m.register.focusAt(0)
	}
	return nil
}

func (m *bubbleModel) closeForm() {
	if f := m.activeForm(); f != nil {
		f.blur()
	}
	m.screen = screenJobs
}

// submit validates the active form. A valid form completes after authDelay;
// further submissions are ignored until then.
func (m *bubbleModel) submit() tea.Cmd {
	if m.status.authPending {
		return nil
	}
	var (
		err  error
		done tea.Msg
	)
	switch m.screen {
	case screenLogin:
		creds := m.login.credentials()
		err = creds.Validate()
		done = loginDoneMsg{email: strings.TrimSpace(creds.Email)}
	case screenRegister:
		reg := m.register.registration()
		err = reg.Validate()
		done = registerDoneMsg{creds: reg.Credentials()}
	default:
		return nil
	}
	if err != nil {
		m.log.Debugw("form rejected", "form", m.screen, "error", err)
		return toast.Warning(auth.Message(err))
	}

	m.status.authPending = true
	cmds := []tea.Cmd{m.sched.After(m.authDelay, done)}
	if m.animate {
		cmds = append(cmds, m.status.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m *bubbleModel) logout() tea.Cmd {
	if !m.session.SignedIn() {
		return nil
	}
	m.log.Infow("signed out", "email", m.session.Email)
	m.session = auth.Session{}
	return toast.Success("You have signed out")
}

// Theme reports the palette in use.
func (m *bubbleModel) Theme() theme.Name { return m.palette.Name }
