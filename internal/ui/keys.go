package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"spotlight/internal/config"
	"spotlight/internal/selection"
)

// KeyMap defines the picker's key bindings. Nav is handed to the selection
// controller; the rest are handled by the model.
type KeyMap struct {
	Nav     selection.KeyMap
	Open    key.Binding
	Refresh key.Binding
	Rescan  key.Binding
	Focus   key.Binding
	Clear   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Nav: selection.DefaultKeyMap(),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "refresh results"),
		),
		Rescan: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("f5", "rescan"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear/back"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// KeyMapFromConfig applies the configured directional keys to the defaults
func KeyMapFromConfig(keys config.KeySettings) KeyMap {
	km := DefaultKeyMap()
	km.Nav = km.Nav.WithKeys(keys.Down, keys.Up, keys.First, keys.Last)
	return km
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Nav.Up, k.Nav.Down, k.Open, k.Focus, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Nav.Up, k.Nav.Down, k.Nav.First, k.Nav.Last},
		{k.Open, k.Refresh, k.Rescan, k.Focus},
		{k.Clear, k.Help, k.Quit},
	}
}

// keyEvent adapts a bubbletea key press to selection.InputEvent. The
// flags tell the model whether the key may still reach other components.
type keyEvent struct {
	msg                tea.KeyMsg
	defaultPrevented   bool
	propagationStopped bool
}

func (e *keyEvent) String() string { return e.msg.String() }

func (e *keyEvent) PreventDefault() { e.defaultPrevented = true }

func (e *keyEvent) StopPropagation() { e.propagationStopped = true }
