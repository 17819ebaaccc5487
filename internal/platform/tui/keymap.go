package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/opencells/internal/game"
	"github.com/vovakirdan/opencells/internal/hex"
	"github.com/vovakirdan/opencells/internal/level"
)

// KeyMap defines the key bindings for the editor.
type KeyMap struct {
	Clear       key.Binding
	PlaceEmpty  key.Binding
	PlaceMarked key.Binding
	Reveal      key.Binding
	RingDebug   key.Binding

	North     key.Binding
	NorthEast key.Binding
	SouthEast key.Binding
	South     key.Binding
	SouthWest key.Binding
	NorthWest key.Binding

	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Clear, k.PlaceEmpty, k.PlaceMarked, k.Reveal, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Clear, k.PlaceEmpty, k.PlaceMarked, k.Reveal, k.RingDebug},
		{k.North, k.NorthEast, k.SouthEast},
		{k.South, k.SouthWest, k.NorthWest},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Clear: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "clear"),
		),
		PlaceEmpty: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "empty"),
		),
		PlaceMarked: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "marked"),
		),
		Reveal: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reveal"),
		),
		RingDebug: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "ring fill"),
		),
		North: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/up", "north"),
		),
		NorthEast: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "north-east"),
		),
		SouthEast: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "south-east"),
		),
		South: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/down", "south"),
		),
		SouthWest: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "south-west"),
		),
		NorthWest: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "north-west"),
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
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// Action translates a key to an editing action.
func (k KeyMap) Action(msg tea.KeyMsg) (game.Action, bool) {
	switch {
	case key.Matches(msg, k.Clear):
		return game.Clear(), true
	case key.Matches(msg, k.PlaceEmpty):
		return game.Place(level.KindEmpty), true
	case key.Matches(msg, k.PlaceMarked):
		return game.Place(level.KindMarked), true
	case key.Matches(msg, k.Reveal):
		return game.ToggleRevealed(), true
	case key.Matches(msg, k.RingDebug):
		return game.RingDebug(), true
	}
	return game.Action{}, false
}

// Move translates a key to a cursor step toward a neighboring hex.
func (k KeyMap) Move(msg tea.KeyMsg) (hex.Direction, bool) {
	switch {
	case key.Matches(msg, k.North):
		return hex.DirNorth, true
	case key.Matches(msg, k.NorthEast):
		return hex.DirNorthEast, true
	case key.Matches(msg, k.SouthEast):
		return hex.DirSouthEast, true
	case key.Matches(msg, k.South):
		return hex.DirSouth, true
	case key.Matches(msg, k.SouthWest):
		return hex.DirSouthWest, true
	case key.Matches(msg, k.NorthWest):
		return hex.DirNorthWest, true
	}
	return 0, false
}

// MouseAction translates a mouse press to an editing action.
// Left places an empty tile, right a marked tile, middle clears.
func MouseAction(msg tea.MouseMsg) (game.Action, bool) {
	if msg.Action != tea.MouseActionPress {
		return game.Action{}, false
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		return game.Place(level.KindEmpty), true
	case tea.MouseButtonRight:
		return game.Place(level.KindMarked), true
	case tea.MouseButtonMiddle:
		return game.Clear(), true
	}
	return game.Action{}, false
}
