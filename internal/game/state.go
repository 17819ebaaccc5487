// Package game owns the editable hex level and applies queued input to it
// once per tick.
package game

import (
	"github.com/vovakirdan/opencells/internal/hex"
	"github.com/vovakirdan/opencells/internal/level"
)

// DebugRingRadius is the spiral radius filled by ActionRingDebug.
const DebugRingRadius = 1

// State is the world mutated by Step and read by the renderer between ticks.
type State struct {
	Level *level.Level

	// Scale is the hex size in pixels.
	Scale float64

	// Offset is the pixel position of the center of hex (0,0).
	Offset hex.Vec2

	// Cursor is the hex under the pointer as of the last Step.
	Cursor hex.Axial

	// NearestEdge is the midpoint of the cursor hex edge closest to the
	// pointer, relative to Offset.
	NearestEdge hex.Vec2
}

// StepResult reports what a single Step did.
type StepResult struct {
	Applied         int  // Number of actions drained
	HintsRecomputed bool // Whether hints were recalculated
}

// NewState creates an empty level with the camera placed two hexes in and
// one and a half hexes down from the window origin.
func NewState(scale float64) *State {
	return &State{
		Level:  level.New(),
		Scale:  scale,
		Offset: hex.V(hex.Width(scale)*2, hex.Height(scale)*1.5),
	}
}

// PixelCenter returns the absolute pixel center of hex a.
func (s *State) PixelCenter(a hex.Axial) hex.Vec2 {
	return hex.HexToPixel(a, s.Scale).Add(s.Offset)
}

// Step updates the cursor from in.Pointer, applies every queued action in
// order and recomputes hints once if any action changed the tiles.
func (s *State) Step(in *Input) StepResult {
	p := in.Pointer.Sub(s.Offset)
	s.Cursor = hex.PixelToHex(p, s.Scale)
	s.NearestEdge = hex.NearestEdge(p, s.Scale)

	actions := in.Drain()
	invalidated := false

	for _, a := range actions {
		switch a.Kind {
		case ActionPlace:
			s.Level.Set(s.Cursor, level.NewCell(level.DefaultTile(a.Tile)))
			invalidated = true

		case ActionClear:
			s.Level.Remove(s.Cursor)
			invalidated = true

		case ActionRingDebug:
			for _, c := range hex.Spiral(s.Cursor.Cube(), DebugRingRadius) {
				s.Level.Set(c.Axial(), level.NewCell(level.Empty{ShowNeighborCount: false}))
			}
			invalidated = true

		case ActionToggleRevealed:
			// Hints only depend on marked neighbors, so no recompute.
			if c, ok := s.Level.Get(s.Cursor); ok {
				c.StartRevealed = !c.StartRevealed
			}
		}
	}

	if invalidated {
		s.Level.CalculateHints()
	}

	return StepResult{
		Applied:         len(actions),
		HintsRecomputed: invalidated,
	}
}
