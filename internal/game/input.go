package game

import (
	"github.com/vovakirdan/opencells/internal/hex"
	"github.com/vovakirdan/opencells/internal/level"
)

// ActionKind is a discrete editing intent, abstracted from the key or
// button that produced it.
type ActionKind int

const (
	ActionPlace          ActionKind = iota // Place a fresh tile under the cursor
	ActionClear                            // Remove the tile under the cursor
	ActionToggleRevealed                   // Flip start_revealed under the cursor
	ActionRingDebug                        // Fill the six neighbors with quiet empty tiles
)

// String returns a human-readable name for the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionPlace:
		return "Place"
	case ActionClear:
		return "Clear"
	case ActionToggleRevealed:
		return "ToggleRevealed"
	case ActionRingDebug:
		return "RingDebug"
	default:
		return "Unknown"
	}
}

// Action is one queued input. Tile is only read for ActionPlace.
type Action struct {
	Kind ActionKind
	Tile level.Kind
}

// Place returns an action that places a tile of kind k.
func Place(k level.Kind) Action {
	return Action{Kind: ActionPlace, Tile: k}
}

// Clear returns an action that removes the tile under the cursor.
func Clear() Action {
	return Action{Kind: ActionClear}
}

// ToggleRevealed returns an action that flips the start_revealed flag.
func ToggleRevealed() Action {
	return Action{Kind: ActionToggleRevealed}
}

// RingDebug returns the debug ring-fill action.
func RingDebug() Action {
	return Action{Kind: ActionRingDebug}
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a.Kind == ActionPlace {
		return "Place(" + a.Tile.String() + ")"
	}
	return a.Kind.String()
}

// Input is filled by the platform between ticks and drained by Step.
type Input struct {
	// Pointer is the absolute cursor position in pixels.
	Pointer hex.Vec2

	queue []Action
}

// Push appends an action to the queue.
func (in *Input) Push(a Action) {
	in.queue = append(in.queue, a)
}

// Drain returns the queued actions in arrival order and empties the queue.
func (in *Input) Drain() []Action {
	out := in.queue
	in.queue = nil
	return out
}
