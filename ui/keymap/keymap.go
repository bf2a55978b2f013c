package keymap

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the board's keybindings.
// Using bubbles/key allows for help generation and context-aware enabling.
type KeyMap struct {
	// Job list
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Apply    key.Binding // enter / a on the selected card
	LoadMore key.Binding

	// Panels
	Filters     key.Binding
	ResetFilter key.Binding
	NextOption  key.Binding // cycle the focused filter selector
	PrevOption  key.Binding
	Menu        key.Binding
	Theme       key.Binding

	// Auth
	Login       key.Binding
	Register    key.Binding
	Logout      key.Binding
	SwapToLogin key.Binding
	SwapToReg   key.Binding

	// Application Control
	Quit       key.Binding
	ToggleHelp key.Binding
}

// DefaultKeyMap returns the board's default bindings.
// Form fields and the confirmation prompt carry their own bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup/b", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn/space", "page down")),
		Apply:    key.NewBinding(key.WithKeys("enter", "a"), key.WithHelp("enter/a", "apply")),
		LoadMore: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "load more jobs")),

		Filters:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filters")),
		ResetFilter: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset filters")),
		NextOption:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next option")),
		PrevOption:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous option")),
		Menu:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "menu")),
		Theme:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),

		Login:       key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "log in")),
		Register:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "register")),
		Logout:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "log out")),
		SwapToLogin: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "go to login")),
		SwapToReg:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "go to register")),

		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		ToggleHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	}
}

// ConfirmKeyMap holds the bindings used while a confirmation prompt is open.
type ConfirmKeyMap struct {
	Confirm key.Binding // activates the focused button
	Yes     key.Binding
	No      key.Binding
	Escape  key.Binding
	Next    key.Binding
	Prev    key.Binding
}

// DefaultConfirmKeyMap returns the prompt bindings.
func DefaultConfirmKeyMap() ConfirmKeyMap {
	return ConfirmKeyMap{
		Confirm: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Yes:     key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
		No:      key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "cancel")),
		Escape:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Next:    key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next button")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab/←", "previous button")),
	}
}

// ShortHelp returns the bindings shown under the prompt's buttons.
func (k ConfirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Yes, k.No, k.Escape}
}

// FullHelp returns every prompt binding.
func (k ConfirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.Next, k.Prev}, {k.Yes, k.No, k.Escape}}
}
