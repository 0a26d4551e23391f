package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tap-runner/internal/core"
)

// KeyMap defines the runner's key bindings.
type KeyMap struct {
	Jump       key.Binding
	Button     key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Button},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings. Space is the one gameplay key;
// enter activates the overlay button.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space/click", "jump"),
		),
		Button: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start / play again"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
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

// MapKey translates a key message to an action. Enter only counts while the
// overlay button is shown.
func (k KeyMap) MapKey(msg tea.KeyMsg, overlay bool) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Jump):
		return core.ActionPrimary
	case key.Matches(msg, k.Button) && overlay:
		return core.ActionPrimary
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}

// MapMouse translates a mouse message to an action. Only the press edge of
// the left button counts, so one click is one gesture.
func MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ActionPrimary
	}
	return core.ActionNone
}
