package tui

import (
	"math"

	"github.com/vovakirdan/opencells/internal/core"
	"github.com/vovakirdan/opencells/internal/game"
	"github.com/vovakirdan/opencells/internal/hex"
	"github.com/vovakirdan/opencells/internal/level"
)

// Glyphs used when rasterizing the grid.
const (
	glyphOutline     = '·'
	glyphEmpty       = '░'
	glyphMarked      = '▓'
	glyphRevealed    = '•'
	glyphEdgeMarker  = '='
	revealedFraction = 0.45 // Radius of the revealed indicator relative to the inner radius
)

// edgeNormals are the unit normals of the six edges of a flat-top hex.
// Edge k runs from corner k to corner k+1; its midpoint on a unit hex lies
// at the inner radius sqrt(3)/2.
var edgeNormals = func() [6]hex.Vec2 {
	var out [6]hex.Vec2
	for k := range out {
		mid := hex.Corner(hex.Vec2{}, 1, k).Midpoint(hex.Corner(hex.Vec2{}, 1, (k+1)%6))
		out[k] = mid.Scale(2 / math.Sqrt(3))
	}
	return out
}()

// Viewport maps terminal characters to pixel space.
type Viewport struct {
	CellW float64 // Pixels per column
	CellH float64 // Pixels per row
}

// PixelAt returns the pixel at the center of character (x, y).
func (v Viewport) PixelAt(x, y int) hex.Vec2 {
	return hex.V((float64(x)+0.5)*v.CellW, (float64(y)+0.5)*v.CellH)
}

// CharAt returns the character containing pixel p.
func (v Viewport) CharAt(p hex.Vec2) (x, y int) {
	return int(math.Floor(p.X / v.CellW)), int(math.Floor(p.Y / v.CellH))
}

// Center returns the pixel at the middle of a w x h character area.
func (v Viewport) Center(w, h int) hex.Vec2 {
	return hex.V(float64(w)*v.CellW/2, float64(h)*v.CellH/2)
}

// edgeDepth returns how far local (relative to a hex center) reaches toward
// the nearest edge: 0 at the center, the inner radius on an edge.
func edgeDepth(local hex.Vec2) float64 {
	depth := 0.0
	for _, n := range edgeNormals {
		depth = max(depth, local.X*n.X+local.Y*n.Y)
	}
	return depth
}

// DrawOptions controls the optional overlays of DrawGrid.
type DrawOptions struct {
	ShowEdgeMarker bool
}

// DrawGrid rasterizes the level into dst. Every character is resolved to
// the hex under its center; characters near a hex border form the outline.
func DrawGrid(dst *core.Screen, st *game.State, v Viewport, opts DrawOptions) {
	inner := hex.Height(st.Scale) / 2
	band := max(v.CellW, v.CellH) / 2

	for y := range dst.Height() {
		for x := range dst.Width() {
			p := v.PixelAt(x, y).Sub(st.Offset)
			a := hex.PixelToHex(p, st.Scale)
			depth := edgeDepth(p.Sub(hex.HexToPixel(a, st.Scale)))
			hovered := a == st.Cursor

			cell, placed := st.Level.Get(a)
			switch {
			case depth > inner-band:
				color := core.ColorDarkGray
				if placed {
					color = cell.Tile.Color(cell.Visible())
				}
				if hovered {
					color = core.ColorBrightWhite
				}
				dst.SetColored(x, y, glyphOutline, color)

			case placed:
				r, color := fillFor(cell)
				if cell.StartRevealed && depth < inner*revealedFraction {
					r, color = glyphRevealed, core.ColorBrightWhite
				}
				if hovered {
					color = color.Bright()
				}
				dst.SetColored(x, y, r, color)
			}
		}
	}

	drawHints(dst, st, v)

	if opts.ShowEdgeMarker {
		ex, ey := v.CharAt(st.NearestEdge.Add(st.Offset))
		dst.SetColored(ex, ey, glyphEdgeMarker, core.ColorBrightBlue)
	}
}

// fillFor picks the interior glyph and color for a placed cell.
func fillFor(c *level.Cell) (rune, core.Color) {
	color := c.Tile.Color(c.Visible())
	if level.KindOf(c.Tile) == level.KindMarked {
		return glyphMarked, color
	}
	return glyphEmpty, color
}

// drawHints writes the neighbor count at the center of every counting cell.
// Cells are visited top to bottom so overlapping digits resolve the same
// way every frame.
func drawHints(dst *core.Screen, st *game.State, v Viewport) {
	for _, a := range st.Level.Coords() {
		c, _ := st.Level.Get(a)
		if !c.ShowsCount() {
			continue
		}
		x, y := v.CharAt(st.PixelCenter(a))
		dst.DrawTextColored(x, y, c.HintText(), core.ColorBrightWhite)
	}
}
