package game

import (
	"testing"

	"github.com/vovakirdan/opencells/internal/hex"
	"github.com/vovakirdan/opencells/internal/level"
)

const testScale = 48.0

// stepAt points the cursor at a and runs one tick with the given actions.
func stepAt(s *State, a hex.Axial, actions ...Action) StepResult {
	in := &Input{Pointer: s.PixelCenter(a)}
	for _, act := range actions {
		in.Push(act)
	}
	return s.Step(in)
}

func TestCursorFollowsPointer(t *testing.T) {
	s := NewState(testScale)

	for _, a := range []hex.Axial{hex.A(0, 0), hex.A(4, -2), hex.A(-3, 5)} {
		stepAt(s, a)
		if s.Cursor != a {
			t.Errorf("Cursor = %v, expected %v", s.Cursor, a)
		}
	}
}

func TestNearestEdgeUsesOffset(t *testing.T) {
	s := NewState(testScale)
	s.Step(&Input{Pointer: s.Offset})

	expected := hex.NearestEdge(hex.V(0, 0), testScale)
	if s.NearestEdge != expected {
		t.Errorf("NearestEdge = %v, expected %v", s.NearestEdge, expected)
	}
}

func TestHintScenario(t *testing.T) {
	s := NewState(testScale)

	stepAt(s, hex.A(0, 0), Place(level.KindMarked))
	stepAt(s, hex.A(1, -1), Place(level.KindEmpty))

	c, ok := s.Level.Get(hex.A(1, -1))
	if !ok {
		t.Fatal("empty cell was not placed")
	}
	if c.MarkedNeighbors != 1 {
		t.Fatalf("count = %d, expected 1", c.MarkedNeighbors)
	}

	stepAt(s, hex.A(0, -1), Place(level.KindMarked))
	if c.MarkedNeighbors != 2 {
		t.Errorf("count = %d, expected 2", c.MarkedNeighbors)
	}
}

func TestOverwriteDiscardsState(t *testing.T) {
	s := NewState(testScale)
	a := hex.A(2, 2)

	stepAt(s, a, Place(level.KindEmpty), ToggleRevealed())
	c, _ := s.Level.Get(a)
	if !c.StartRevealed {
		t.Fatal("toggle should set start_revealed")
	}

	stepAt(s, a, Place(level.KindMarked))
	c, _ = s.Level.Get(a)
	if !c.IsMarked() {
		t.Errorf("tile = %#v, expected Marked", c.Tile)
	}
	if c.StartRevealed {
		t.Error("overwrite should reset start_revealed")
	}
}

func TestClear(t *testing.T) {
	s := NewState(testScale)
	a := hex.A(3, -3)

	stepAt(s, a, Place(level.KindEmpty))
	stepAt(s, a, Clear())
	if _, ok := s.Level.Get(a); ok {
		t.Error("cell should be gone after Clear")
	}

	// Clearing an empty position is a no-op but still recomputes.
	res := stepAt(s, a, Clear())
	if !res.HintsRecomputed {
		t.Error("Clear should trigger a hint recompute")
	}
}

func TestToggleRevealed(t *testing.T) {
	s := NewState(testScale)

	res := stepAt(s, hex.A(1, 1), ToggleRevealed())
	if res.HintsRecomputed {
		t.Error("toggle should not recompute hints")
	}
	if s.Level.Len() != 0 {
		t.Error("toggle on an empty position should not create a cell")
	}

	stepAt(s, hex.A(1, 1), Place(level.KindEmpty))
	stepAt(s, hex.A(1, 1), ToggleRevealed(), ToggleRevealed(), ToggleRevealed())
	c, _ := s.Level.Get(hex.A(1, 1))
	if !c.StartRevealed {
		t.Error("three toggles should leave start_revealed set")
	}
}

func TestToggleDoesNotRefreshHints(t *testing.T) {
	s := NewState(testScale)
	stepAt(s, hex.A(0, 0), Place(level.KindEmpty))

	// Sneak a marked neighbor in behind the update loop's back.
	s.Level.Set(hex.A(1, 0), level.NewCell(level.DefaultTile(level.KindMarked)))
	stepAt(s, hex.A(0, 0), ToggleRevealed())

	c, _ := s.Level.Get(hex.A(0, 0))
	if c.MarkedNeighbors != 0 {
		t.Errorf("count = %d, expected stale 0", c.MarkedNeighbors)
	}
}

func TestRingDebug(t *testing.T) {
	s := NewState(testScale)
	center := hex.A(-1, 2)

	stepAt(s, center.Neighbor(hex.DirNorth), Place(level.KindMarked))
	stepAt(s, center, RingDebug())

	if _, ok := s.Level.Get(center); ok {
		t.Error("ring fill should leave the center empty")
	}
	if s.Level.Len() != 6 {
		t.Fatalf("Len() = %d, expected 6", s.Level.Len())
	}
	for _, n := range center.Neighbors() {
		c, ok := s.Level.Get(n)
		if !ok {
			t.Fatalf("neighbor %v missing", n)
		}
		if c.IsMarked() || c.ShowsCount() {
			t.Errorf("neighbor %v = %#v, expected quiet empty tile", n, c.Tile)
		}
	}
}

func TestQueueOrderAndBatchedRecompute(t *testing.T) {
	s := NewState(testScale)
	a := hex.A(0, 0)

	// Place then clear in one tick: nothing remains.
	res := stepAt(s, a, Place(level.KindMarked), Clear())
	if res.Applied != 2 {
		t.Errorf("Applied = %d, expected 2", res.Applied)
	}
	if _, ok := s.Level.Get(a); ok {
		t.Error("actions should apply in arrival order")
	}

	// Clear then place: the cell survives.
	stepAt(s, a, Clear(), Place(level.KindEmpty))
	if _, ok := s.Level.Get(a); !ok {
		t.Error("actions should apply in arrival order")
	}

	// Hints reflect the final state of the tick.
	stepAt(s, hex.A(1, 0), Place(level.KindEmpty), Place(level.KindMarked))
	c, _ := s.Level.Get(a)
	if c.MarkedNeighbors != 1 {
		t.Errorf("count = %d, expected 1", c.MarkedNeighbors)
	}
}

func TestStepWithoutActions(t *testing.T) {
	s := NewState(testScale)
	res := stepAt(s, hex.A(0, 0))
	if res.Applied != 0 || res.HintsRecomputed {
		t.Errorf("empty tick = %+v, expected no work", res)
	}
}

func TestInputDrain(t *testing.T) {
	var in Input
	in.Push(Clear())
	in.Push(Place(level.KindMarked))

	got := in.Drain()
	if len(got) != 2 || got[0].Kind != ActionClear || got[1].Tile != level.KindMarked {
		t.Errorf("Drain() = %v", got)
	}
	if rest := in.Drain(); len(rest) != 0 {
		t.Errorf("Drain should empty the queue, %d left", len(rest))
	}
	if got[1].String() != "Place(marked)" {
		t.Errorf("String() = %q", got[1].String())
	}
}
