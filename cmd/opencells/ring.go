package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/opencells/internal/hex"
)

var (
	flagQ      int
	flagR      int
	flagRadius int
	flagSpiral bool
	flagX      float64
	flagY      float64
)

var ringCmd = &cobra.Command{
	Use:   "ring",
	Short: "Print the hexes of a ring or spiral",
	Long: `Print the axial coordinates at exactly --radius steps from (--q, --r), in
traversal order. With --spiral, print every ring from 1 up to --radius.

Examples:
  opencells ring --radius 1
  opencells ring --q 2 --r -1 --radius 3 --spiral`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if flagRadius < 0 {
			return fmt.Errorf("radius must not be negative, got %d", flagRadius)
		}
		printRing(cmd.OutOrStdout(), hex.A(flagQ, flagR), flagRadius, flagSpiral)
		return nil
	},
}

var pixelCmd = &cobra.Command{
	Use:   "pixel",
	Short: "Show which hex and edge a pixel falls on",
	Long: `Resolve a pixel position (relative to the center of hex (0,0)) to the
enclosing hex, its fractional coordinate, its center and the nearest-edge
point.

Examples:
  opencells pixel --x 30 --y 12
  opencells pixel --x -5.5 --y 40 --scale 16`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		printPixel(cmd.OutOrStdout(), hex.V(flagX, flagY), cfg.Layout.Scale)
		return nil
	},
}

func init() {
	ringCmd.Flags().IntVar(&flagQ, "q", 0, "Center q coordinate")
	ringCmd.Flags().IntVar(&flagR, "r", 0, "Center r coordinate")
	ringCmd.Flags().IntVar(&flagRadius, "radius", 1, "Ring radius")
	ringCmd.Flags().BoolVar(&flagSpiral, "spiral", false, "Print rings 1..radius")

	pixelCmd.Flags().Float64Var(&flagX, "x", 0, "Pixel x")
	pixelCmd.Flags().Float64Var(&flagY, "y", 0, "Pixel y")
}

func printRing(w io.Writer, center hex.Axial, radius int, spiral bool) {
	var cubes []hex.Cube
	if spiral {
		cubes = hex.Spiral(center.Cube(), radius)
	} else {
		cubes = hex.Ring(center.Cube(), radius)
	}

	for i, c := range cubes {
		a := c.Axial()
		fmt.Fprintf(w, "%4d  %-10v %v  dist %d\n", i, a, c, a.Distance(center))
	}
	fmt.Fprintf(w, "%s hexes\n", humanize.Comma(int64(len(cubes))))
}

func printPixel(w io.Writer, p hex.Vec2, scale float64) {
	frac := hex.PixelToFractional(p, scale)
	home, dir := hex.NearestNeighbor(p, scale)

	fmt.Fprintf(w, "pixel       %v\n", p)
	fmt.Fprintf(w, "fractional  (%.3f,%.3f)\n", frac.Q, frac.R)
	fmt.Fprintf(w, "hex         %v\n", home)
	fmt.Fprintf(w, "center      %v\n", hex.HexToPixel(home, scale))
	fmt.Fprintf(w, "nearest     %v toward %v\n", home.Neighbor(dir), dir)
	fmt.Fprintf(w, "edge point  %v\n", hex.NearestEdge(p, scale))
}
