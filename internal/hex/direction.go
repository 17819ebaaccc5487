package hex

// Direction indexes the six neighbor directions. The order is fixed: ring
// walks and nearest-edge tie-breaks depend on it.
type Direction int

const (
	DirSouthEast Direction = iota
	DirNorthEast
	DirNorth
	DirNorthWest
	DirSouthWest
	DirSouth
)

// CubeDirections holds the six unit cube vectors in Direction order.
var CubeDirections = [6]Cube{
	{X: 1, Y: -1, Z: 0},
	{X: 1, Y: 0, Z: -1},
	{X: 0, Y: 1, Z: -1},
	{X: -1, Y: 1, Z: 0},
	{X: -1, Y: 0, Z: 1},
	{X: 0, Y: -1, Z: 1},
}

// AxialDirections is CubeDirections converted to axial form.
var AxialDirections = [6]Axial{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// String returns a compass name for the direction.
func (d Direction) String() string {
	switch d {
	case DirSouthEast:
		return "SE"
	case DirNorthEast:
		return "NE"
	case DirNorth:
		return "N"
	case DirNorthWest:
		return "NW"
	case DirSouthWest:
		return "SW"
	case DirSouth:
		return "S"
	default:
		return "?"
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 3) % 6
}

// Neighbor returns the adjacent hex in direction d.
func (c Cube) Neighbor(d Direction) Cube {
	return c.Add(CubeDirections[d])
}

// Neighbor returns the adjacent hex in direction d.
func (a Axial) Neighbor(d Direction) Axial {
	dir := AxialDirections[d]
	return Axial{Q: a.Q + dir.Q, R: a.R + dir.R}
}

// Neighbors returns all six adjacent hexes in Direction order.
func (a Axial) Neighbors() [6]Axial {
	var out [6]Axial
	for d := range out {
		out[d] = a.Neighbor(Direction(d))
	}
	return out
}
