package dropdown

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings the control responds to. The zero value is
// unusable; start from DefaultKeyMap.
type KeyMap struct {
	Open    key.Binding // on the trigger, while closed
	Next    key.Binding // on a menu item, moves focus down with wrap
	Prev    key.Binding // on a menu item, moves focus up with wrap
	First   key.Binding
	Last    key.Binding
	Commit  key.Binding
	Dismiss key.Binding // closes and returns focus to the trigger
	Leave   key.Binding // closes without redirecting focus
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open:    key.NewBinding(key.WithKeys("down", "enter", " "), key.WithHelp("↓/enter", "open")),
		Next:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next option")),
		Prev:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous option")),
		First:   key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first option")),
		Last:    key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last option")),
		Commit:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Leave:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "leave")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Next, k.Prev, k.Commit, k.Dismiss}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Commit, k.Dismiss, k.Leave},
		{k.Next, k.Prev, k.First, k.Last},
	}
}
