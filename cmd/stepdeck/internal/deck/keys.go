package deck

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the deck's key bindings.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Decrement key.Binding
	Increment key.Binding
	Wrap      key.Binding
	Repeat    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous dial"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next dial"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "step down (hold to repeat)"),
		),
		Increment: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "step up (hold to repeat)"),
		),
		Wrap: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "toggle wrapping"),
		),
		Repeat: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "toggle auto-repeat"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
