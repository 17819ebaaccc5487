package level

import "fmt"

// MaxNeighbors is the number of hexes adjacent to any hex.
const MaxNeighbors = 6

// Cell is a tile placed on the grid together with its per-cell state.
type Cell struct {
	Tile Tile

	// StartRevealed is the authoring flag toggled by the editor.
	StartRevealed bool

	// Revealed is the runtime flag, independent of the tile kind.
	Revealed bool

	// MarkedNeighbors is derived by CalculateHints. It is only meaningful
	// for cells that show a count.
	MarkedNeighbors int
}

// NewCell creates a hidden cell holding t.
func NewCell(t Tile) *Cell {
	return &Cell{Tile: t}
}

// ShowsCount reports whether the cell displays a neighbor count.
func (c *Cell) ShowsCount() bool {
	e, ok := c.Tile.(Empty)
	return ok && e.ShowNeighborCount
}

// IsMarked reports whether the cell holds a Marked tile.
func (c *Cell) IsMarked() bool {
	_, ok := c.Tile.(Marked)
	return ok
}

// Visible reports whether the cell is drawn revealed.
func (c *Cell) Visible() bool {
	return c.StartRevealed || c.Revealed
}

// HintText returns the neighbor count formatted for display.
func (c *Cell) HintText() string {
	return HintText(c.MarkedNeighbors)
}

// HintText formats a neighbor count as a single digit.
// A count outside 0..6 means neighbors were counted twice or the direction
// table is broken, so it panics.
func HintText(n int) string {
	if n < 0 || n > MaxNeighbors {
		panic(fmt.Sprintf("level: neighbor count %d out of range 0..%d", n, MaxNeighbors))
	}
	return string(rune('0' + n))
}
