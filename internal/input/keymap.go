// Package input maps key symbols to board directions and app commands.
package input

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/vinser/go2048/internal/grid"
)

// KeyMap describes every key the game reacts to.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Mute  key.Binding
	Setup key.Binding
	About key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns w/a/s/d plus the arrow keys for moves.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("→/d", "right"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Setup: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "options"),
		),
		About: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "about"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Direction maps a symbol to a move. Unknown symbols report false and
// are not an error.
func (k KeyMap) Direction(symbol string) (grid.Direction, bool) {
	switch {
	case Is(symbol, k.Up):
		return grid.Up, true
	case Is(symbol, k.Down):
		return grid.Down, true
	case Is(symbol, k.Left):
		return grid.Left, true
	case Is(symbol, k.Right):
		return grid.Right, true
	}
	return 0, false
}

// Is reports whether symbol triggers one of the enabled bindings.
func Is(symbol string, bindings ...key.Binding) bool {
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		for _, k := range b.Keys() {
			if k == symbol {
				return true
			}
		}
	}
	return false
}

// ShortHelp is shown in the play screen footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Mute, k.Setup, k.About, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Mute, k.Setup, k.About, k.Quit},
	}
}
