package timer

import "github.com/charmbracelet/bubbles/key"

// DefaultExitKey ends the active session early.
const DefaultExitKey = "ctrl+e"

type keymap struct {
	exit key.Binding
	quit key.Binding
}

func newKeymap(exitKey string) keymap {
	if exitKey == "" {
		exitKey = DefaultExitKey
	}

	return keymap{
		exit: key.NewBinding(
			key.WithKeys(exitKey),
			key.WithHelp(exitKey, "emergency exit"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
