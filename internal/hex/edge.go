package hex

import "math"

// tieEpsilon absorbs the rounding noise of the pixel projection so that
// equidistant neighbors still compare equal away from the origin.
const tieEpsilon = 1e-9

// NearestNeighbor finds the hex containing p and the neighbor whose center
// is closest to p in fractional cube space. That neighbor shares the edge
// nearest to p. Ties, up to tieEpsilon, go to the earlier direction.
func NearestNeighbor(p Vec2, scale float64) (Axial, Direction) {
	frac := PixelToFractional(p, scale)
	home := frac.Round()

	fc := frac.Cube()
	hc := home.Cube()

	best := DirSouthEast
	bestDist := math.MaxFloat64
	for d := range CubeDirections {
		dist := fc.DistanceSq(hc.Neighbor(Direction(d)).Float())
		if dist < bestDist-tieEpsilon {
			best = Direction(d)
			bestDist = dist
		}
	}
	return home, best
}

// NearestEdge returns the pixel midpoint between the center of the hex
// containing p and the center of its neighbor across the nearest edge.
func NearestEdge(p Vec2, scale float64) Vec2 {
	home, d := NearestNeighbor(p, scale)
	return HexToPixel(home, scale).Midpoint(HexToPixel(home.Neighbor(d), scale))
}
