package hex

import "math"

var sqrt3 = math.Sqrt(3)

// PixelToFractional inverts the flat-top projection without rounding.
// scale is the distance from a hex center to any of its corners.
func PixelToFractional(p Vec2, scale float64) AxialF {
	q := (2.0 / 3.0 * p.X) / scale
	r := (-1.0/3.0*p.X + sqrt3/3.0*p.Y) / scale
	return AxialF{Q: q, R: r}
}

// PixelToHex returns the hex that contains pixel p.
func PixelToHex(p Vec2, scale float64) Axial {
	return PixelToFractional(p, scale).Round()
}

// HexToPixel returns the pixel center of hex a.
func HexToPixel(a Axial, scale float64) Vec2 {
	q := float64(a.Q)
	r := float64(a.R)
	return Vec2{
		X: scale * (3.0 / 2.0 * q),
		Y: scale * (sqrt3/2.0*q + sqrt3*r),
	}
}

// Width returns the corner-to-corner width of a flat-top hex.
func Width(scale float64) float64 {
	return 2 * scale
}

// Height returns the edge-to-edge height of a flat-top hex.
func Height(scale float64) float64 {
	return sqrt3 * scale
}

// Corner returns corner i (0..5) of the flat-top hex centered at center.
// Corner 0 points right; the rest follow at 60 degree steps.
func Corner(center Vec2, size float64, i int) Vec2 {
	if i < 0 || i > 5 {
		panic("hex: corner index must be between 0 and 5")
	}
	rad := float64(60*i) * math.Pi / 180
	return Vec2{
		X: center.X + size*math.Cos(rad),
		Y: center.Y + size*math.Sin(rad),
	}
}
