package ui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/oakwood-commons/blackwood/internal/navigator"
)

// KeyMap holds the key bindings of the explore screen.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
	Abort key.Binding
}

// DefaultKeyMap binds the game keys, with arrows as aliases for the two
// directions. ctrl+c quits the investigation from anywhere.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("e", "E", "left"),
			key.WithHelp("e/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "D", "right"),
			key.WithHelp("d/→", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "quit"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Quit}
}

// choiceFor maps a key press to the rune handed to the session. Keys that
// are not bound still produce a rune so the session can report them as
// invalid.
func (k KeyMap) choiceFor(msg tea.KeyPressMsg) rune {
	switch {
	case key.Matches(msg, k.Left):
		return navigator.KeyLeft
	case key.Matches(msg, k.Right):
		return navigator.KeyRight
	case key.Matches(msg, k.Quit):
		return navigator.KeyQuit
	}
	if msg.Text != "" {
		return []rune(msg.Text)[0]
	}
	return msg.Code
}
