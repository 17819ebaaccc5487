// Package level stores the tiles of a hex grid and derives the neighbor
// hints shown on counting cells.
package level

import (
	"sort"

	"github.com/vovakirdan/opencells/internal/hex"
)

// Level maps axial coordinates to cells. Cells are created by Set, mutated
// in place and removed only by Remove.
type Level struct {
	Name  string
	cells map[hex.Axial]*Cell
}

// New creates an empty level.
func New() *Level {
	return &Level{cells: make(map[hex.Axial]*Cell)}
}

// Set inserts c at a, replacing any cell already there.
func (l *Level) Set(a hex.Axial, c *Cell) {
	l.cells[a] = c
}

// Remove deletes the cell at a. Removing an absent cell is a no-op.
func (l *Level) Remove(a hex.Axial) {
	delete(l.cells, a)
}

// Get returns the cell at a, if any.
func (l *Level) Get(a hex.Axial) (*Cell, bool) {
	c, ok := l.cells[a]
	return c, ok
}

// IsMarked reports whether a holds a Marked cell. Absent and Empty cells
// are not marked.
func (l *Level) IsMarked(a hex.Axial) bool {
	c, ok := l.cells[a]
	return ok && c.IsMarked()
}

// Len returns the number of placed cells.
func (l *Level) Len() int {
	return len(l.cells)
}

// Each calls fn for every cell in unspecified order.
func (l *Level) Each(fn func(a hex.Axial, c *Cell)) {
	for a, c := range l.cells {
		fn(a, c)
	}
}

// Coords returns the occupied coordinates sorted by r, then q.
func (l *Level) Coords() []hex.Axial {
	out := make([]hex.Axial, 0, len(l.cells))
	for a := range l.cells {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].R != out[j].R {
			return out[i].R < out[j].R
		}
		return out[i].Q < out[j].Q
	})
	return out
}

// CountMarked returns how many of a's six neighbors are Marked.
func (l *Level) CountMarked(a hex.Axial) int {
	cube := a.Cube()
	n := 0
	for d := range hex.CubeDirections {
		if l.IsMarked(cube.Neighbor(hex.Direction(d)).Axial()) {
			n++
		}
	}
	return n
}

// CalculateHints recomputes MarkedNeighbors for every cell that shows a
// count. Other cells keep whatever value they had.
func (l *Level) CalculateHints() {
	for a, c := range l.cells {
		if c.ShowsCount() {
			c.MarkedNeighbors = l.CountMarked(a)
		}
	}
}

// ResetRevealed copies every cell's StartRevealed flag into Revealed.
func (l *Level) ResetRevealed() {
	for _, c := range l.cells {
		c.Revealed = c.StartRevealed
	}
}
