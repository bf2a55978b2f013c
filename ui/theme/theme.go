// Package theme holds the light and dark palettes used across the board.
package theme

import "github.com/charmbracelet/lipgloss"

// Name identifies a palette.
type Name string

const (
	Light Name = "light"
	Dark  Name = "dark"
)

// Toggle returns the other palette name.
func (n Name) Toggle() Name {
	if n == Dark {
		return Light
	}
	return Dark
}

// Parse maps a stored or configured value to a palette. ok is false for
// anything other than "light" or "dark" (including "auto" and "").
func Parse(s string) (Name, bool) {
	switch Name(s) {
	case Light, Dark:
		return Name(s), true
	}
	return "", false
}

// Palette is the set of colours a view draws with.
type Palette struct {
	Name       Name
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Primary    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Danger     lipgloss.Color
	Surface    lipgloss.Color
	Backdrop   lipgloss.Color
	Border     lipgloss.Color
}

var palettes = map[Name]Palette{
	Light: {
		Name:       Light,
		Foreground: lipgloss.Color("235"),
		Muted:      lipgloss.Color("244"),
		Accent:     lipgloss.Color("25"),
		Primary:    lipgloss.Color("27"),
		Success:    lipgloss.Color("28"),
		Warning:    lipgloss.Color("130"),
		Danger:     lipgloss.Color("160"),
		Surface:    lipgloss.Color("255"),
		Backdrop:   lipgloss.Color("250"),
		Border:     lipgloss.Color("62"),
	},
	Dark: {
		Name:       Dark,
		Foreground: lipgloss.Color("252"),
		Muted:      lipgloss.Color("241"),
		Accent:     lipgloss.Color("39"),
		Primary:    lipgloss.Color("75"),
		Success:    lipgloss.Color("82"),
		Warning:    lipgloss.Color("214"),
		Danger:     lipgloss.Color("196"),
		Surface:    lipgloss.Color("236"),
		Backdrop:   lipgloss.Color("234"),
		Border:     lipgloss.Color("62"),
	},
}

// For returns the palette for n, falling back to Light.
func For(n Name) Palette {
	if p, ok := palettes[n]; ok {
		return p
	}
	return palettes[Light]
}

// Resolve picks the palette at startup. An explicit configured theme wins,
// then the saved preference, then the terminal background.
func Resolve(configured, saved string, darkBackground bool) Name {
	if n, ok := Parse(configured); ok {
		return n
	}
	if n, ok := Parse(saved); ok {
		return n
	}
	if darkBackground {
		return Dark
	}
	return Light
}
