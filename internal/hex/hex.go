// Package hex implements coordinate math for a flat-topped hexagon grid.
//
// Tiles are addressed with axial coordinates (q, r). Neighbor and ring
// arithmetic is done in cube coordinates (x, y, z) where x+y+z == 0, so all
// six directions are unit vectors. Conversions follow the flat-top layout
// described at https://www.redblobgames.com/grids/hexagons/.
package hex

import (
	"fmt"
	"math"
)

// Axial is a two-integer hex address.
type Axial struct {
	Q int
	R int
}

// Cube is a three-integer hex address with X+Y+Z == 0.
type Cube struct {
	X int
	Y int
	Z int
}

// AxialF is a fractional axial position, produced before rounding.
type AxialF struct {
	Q float64
	R float64
}

// CubeF is a fractional cube position, produced before rounding.
type CubeF struct {
	X float64
	Y float64
	Z float64
}

// A is a convenience constructor for Axial.
func A(q, r int) Axial {
	return Axial{Q: q, R: r}
}

// String returns a string representation of the coordinate.
func (a Axial) String() string {
	return fmt.Sprintf("(%d,%d)", a.Q, a.R)
}

// String returns a string representation of the coordinate.
func (c Cube) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Cube converts an axial coordinate to cube form: (q, -q-r, r).
func (a Axial) Cube() Cube {
	return Cube{X: a.Q, Y: -a.Q - a.R, Z: a.R}
}

// Axial drops the redundant Y component: (x, z).
func (c Cube) Axial() Axial {
	return Axial{Q: c.X, R: c.Z}
}

// Float returns the cube coordinate as a fractional position.
func (c Cube) Float() CubeF {
	return CubeF{X: float64(c.X), Y: float64(c.Y), Z: float64(c.Z)}
}

// Cube converts a fractional axial position to fractional cube form.
func (a AxialF) Cube() CubeF {
	return CubeF{X: a.Q, Y: -a.Q - a.R, Z: a.R}
}

// Axial drops the redundant Y component.
func (c CubeF) Axial() AxialF {
	return AxialF{Q: c.X, R: c.Z}
}

// Round returns the nearest hex as an axial coordinate.
func (a AxialF) Round() Axial {
	return a.Cube().Round().Axial()
}

// Round rounds every component and then recomputes the one with the largest
// rounding error from the other two, so the result sums to zero exactly.
// On equal errors X wins over Y and Y wins over Z.
func (c CubeF) Round() Cube {
	rx := math.Round(c.X)
	ry := math.Round(c.Y)
	rz := math.Round(c.Z)

	dx := math.Abs(rx - c.X)
	dy := math.Abs(ry - c.Y)
	dz := math.Abs(rz - c.Z)

	if dx > dy && dx > dz {
		rx = -ry - rz
	} else if dy > dz {
		ry = -rx - rz
	} else {
		rz = -rx - ry
	}

	return Cube{X: int(rx), Y: int(ry), Z: int(rz)}
}

// DistanceSq returns the squared euclidean distance between two cube positions.
func (c CubeF) DistanceSq(o CubeF) float64 {
	dx := c.X - o.X
	dy := c.Y - o.Y
	dz := c.Z - o.Z
	return dx*dx + dy*dy + dz*dz
}

// Add returns the component-wise sum of two cube coordinates.
func (c Cube) Add(o Cube) Cube {
	return Cube{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Scale multiplies every component by k.
func (c Cube) Scale(k int) Cube {
	return Cube{X: c.X * k, Y: c.Y * k, Z: c.Z * k}
}

// Distance returns the number of steps between two hexes.
func (c Cube) Distance(o Cube) int {
	return max(abs(c.X-o.X), abs(c.Y-o.Y), abs(c.Z-o.Z))
}

// Distance returns the number of steps between two hexes.
func (a Axial) Distance(o Axial) int {
	return a.Cube().Distance(o.Cube())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
