package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/opencells/internal/game"
	"github.com/vovakirdan/opencells/internal/hex"
	"github.com/vovakirdan/opencells/internal/level"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected game.Action
	}{
		{"clear", runeKey("1"), game.Clear()},
		{"place empty", runeKey("2"), game.Place(level.KindEmpty)},
		{"place marked", runeKey("3"), game.Place(level.KindMarked)},
		{"reveal", runeKey("r"), game.ToggleRevealed()},
		{"ring debug", tea.KeyMsg{Type: tea.KeyF2}, game.RingDebug()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := km.Action(tc.msg)
			if !ok {
				t.Fatalf("Action(%q) not mapped", tc.msg.String())
			}
			if got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}

	if _, ok := km.Action(runeKey("x")); ok {
		t.Error("unbound key should not map to an action")
	}
}

func TestKeyMapMove(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg      tea.KeyMsg
		expected hex.Direction
	}{
		{runeKey("w"), hex.DirNorth},
		{tea.KeyMsg{Type: tea.KeyUp}, hex.DirNorth},
		{runeKey("e"), hex.DirNorthEast},
		{runeKey("d"), hex.DirSouthEast},
		{runeKey("s"), hex.DirSouth},
		{tea.KeyMsg{Type: tea.KeyDown}, hex.DirSouth},
		{runeKey("a"), hex.DirSouthWest},
		{runeKey("q"), hex.DirNorthWest},
	}

	for _, tc := range tests {
		got, ok := km.Move(tc.msg)
		if !ok || got != tc.expected {
			t.Errorf("Move(%q) = %v %v, expected %v", tc.msg.String(), got, ok, tc.expected)
		}
	}
}

func TestMouseAction(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.MouseMsg
		expected game.Action
		ok       bool
	}{
		{"left press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, game.Place(level.KindEmpty), true},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, game.Place(level.KindMarked), true},
		{"middle press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonMiddle}, game.Clear(), true},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, game.Action{}, false},
		{"release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, game.Action{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := MouseAction(tc.msg)
			if ok != tc.ok || got != tc.expected {
				t.Errorf("MouseAction() = %v %v, expected %v %v", got, ok, tc.expected, tc.ok)
			}
		})
	}
}
