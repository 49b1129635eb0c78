package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the window.
type keyMap struct {
	// Global
	Quit       key.Binding
	Hide       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Poll control
	Refresh          key.Binding
	IncreaseInterval key.Binding
	DecreaseInterval key.Binding

	// Panes
	ToggleLogs key.Binding
	OpenSite   key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Hide: key.NewBinding(
			key.WithKeys("x", "esc"),
			key.WithHelp("x/esc", "Hide to tray"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		// Poll control
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh now"),
		),
		IncreaseInterval: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Slower polling"),
		),
		DecreaseInterval: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "Faster polling"),
		),

		// Panes
		ToggleLogs: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Toggle logs"),
		),
		OpenSite: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Open website"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Page down"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.IncreaseInterval, k.DecreaseInterval, k.ToggleLogs, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Polling
		{k.Refresh, k.IncreaseInterval, k.DecreaseInterval},
		// Panes
		{k.ToggleLogs, k.OpenSite, k.Hide},
		// Navigation
		{k.Up, k.Down, k.Top, k.Bottom, k.PageUp, k.PageDown},
		// General
		{k.CycleTheme, k.Help, k.Quit},
	}
}
