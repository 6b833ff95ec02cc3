package selection

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the directional bindings the controller recognizes
type KeyMap struct {
	Down  key.Binding
	Up    key.Binding
	First key.Binding
	Last  key.Binding
}

// DefaultKeyMap returns the default directional bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n", "ctrl+j"),
			key.WithHelp("↓", "next result"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p", "ctrl+k"),
			key.WithHelp("↑", "previous result"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first result"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last result"),
		),
	}
}

// WithKeys returns a copy of the map with the key names of each binding
// replaced. The help key shows the first new name. Empty lists keep the
// current keys.
func (k KeyMap) WithKeys(down, up, first, last []string) KeyMap {
	rebind := func(b key.Binding, keys []string) key.Binding {
		if len(keys) == 0 {
			return b
		}
		b.SetKeys(keys...)
		b.SetHelp(keys[0], b.Help().Desc)
		return b
	}
	k.Down = rebind(k.Down, down)
	k.Up = rebind(k.Up, up)
	k.First = rebind(k.First, first)
	k.Last = rebind(k.Last, last)
	return k
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.First, k.Last}}
}
