package hex

// Ring returns the 6*radius hexes at exactly radius steps from center.
// The walk starts at center + CubeDirections[DirSouthWest]*radius and follows
// each direction in order for radius steps, tracing a closed loop.
// A radius below 1 yields nil; the center itself is never included.
func Ring(center Cube, radius int) []Cube {
	if radius < 1 {
		return nil
	}
	return AppendRing(make([]Cube, 0, 6*radius), center, radius)
}

// AppendRing appends the ring of the given radius to dst and returns it.
func AppendRing(dst []Cube, center Cube, radius int) []Cube {
	if radius < 1 {
		return dst
	}

	c := center.Add(CubeDirections[DirSouthWest].Scale(radius))
	for d := range CubeDirections {
		for range radius {
			dst = append(dst, c)
			c = c.Neighbor(Direction(d))
		}
	}
	return dst
}

// Spiral returns every hex within radius of center, excluding center,
// ordered ring by ring from radius 1 outward.
func Spiral(center Cube, radius int) []Cube {
	if radius < 1 {
		return nil
	}

	out := make([]Cube, 0, 3*radius*(radius+1))
	for k := 1; k <= radius; k++ {
		out = AppendRing(out, center, k)
	}
	return out
}
