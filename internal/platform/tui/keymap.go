package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/slither-tui/slither/internal/core"
)

// KeyMap defines the key bindings for a game session. It satisfies the
// help.KeyMap interface so bubbles/help can render the footer line.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default key bindings: arrows plus vim-style
// hjkl for movement, q or ctrl+c to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Quit},
	}
}

// MapKey translates one key message into an engine signal. Keys outside
// the bindings map to a none signal, which the model discards before
// the engine ever sees it.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Signal {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Quit()
	case key.Matches(msg, k.Left):
		return core.Turn(core.DirLeft)
	case key.Matches(msg, k.Right):
		return core.Turn(core.DirRight)
	case key.Matches(msg, k.Up):
		return core.Turn(core.DirUp)
	case key.Matches(msg, k.Down):
		return core.Turn(core.DirDown)
	}
	return core.None()
}
