package components

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// KeyMap holds the bindings shared by all screens.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Submit key.Binding
	Back   key.Binding
	Theme  key.Binding
	Quit   key.Binding
}

// Keys is the application key map.
var Keys = KeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k", "left", "h"), key.WithHelp("↑↓", "Navigate")),
	Down:   key.NewBinding(key.WithKeys("down", "j", "right", "l"), key.WithHelp("↑↓", "Navigate")),
	Select: key.NewBinding(key.WithKeys("space", " "), key.WithHelp("Space", "Select")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Submit")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Menu")),
	Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("T", "Theme")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "Quit")),
}

// optionKeys maps direct-selection keys to option indexes.
var optionKeys = []key.Binding{
	key.NewBinding(key.WithKeys("1", "a")),
	key.NewBinding(key.WithKeys("2", "b")),
	key.NewBinding(key.WithKeys("3", "c")),
	key.NewBinding(key.WithKeys("4", "d")),
}

// Hint converts a binding's help text into a footer hint, overriding the
// description when desc is non-empty.
func Hint(b key.Binding, desc string) layout.KeyHint {
	h := b.Help()
	if desc == "" {
		desc = h.Desc
	}
	return layout.KeyHint{Key: h.Key, Description: desc}
}
