package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Function keys follow the classic layout; ctrl fallbacks cover terminals
// that swallow F-keys.
type KeyMap struct {
	Up, Down, Left, Right key.Binding
	Home, End             key.Binding
	PageUp, PageDown      key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	Reload, Save, Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		Home: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "half page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "half page down")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Reload: key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "reload file")),
		Save:   key.NewBinding(key.WithKeys("f2", "ctrl+s"), key.WithHelp("F2", "save file")),
		Quit:   key.NewBinding(key.WithKeys("f12", "ctrl+q"), key.WithHelp("F12", "quit")),
	}
}

// FooterHelp lists the bindings shown in the footer.
func (km KeyMap) FooterHelp() []key.Binding {
	return []key.Binding{km.Reload, km.Save, km.Quit}
}
