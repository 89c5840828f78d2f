package dashboard

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// HelpBindings returns the help.KeyMap for the given mode,
// providing context-aware help bar content.
func HelpBindings(mode Mode, view RightView) help.KeyMap {
	switch mode {
	case ModeConfirm:
		return ConfirmKeyMap()
	default:
		km := BrowseKeyMap()
		if view == ViewBirthdays {
			km.Birthdays = key.NewBinding(
				key.WithKeys("b"),
				key.WithHelp("b", "contact"),
			)
		}
		return km
	}
}
