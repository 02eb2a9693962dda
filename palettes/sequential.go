package palettes

import (
	"github.com/kovidgoyal/colorspace"
)

// Sequential creates a palette going from a dark, colorful color (h1, c1,
// l1) to a light, pale one (h2, c2, l2) for ordered data. p1 is the power
// of the chroma trajectory and p2 that of the luminance. Setting cmax makes
// chroma peak in the middle of the palette.
func Sequential(opts ...Option) (*Palette, error) {
	return NewPalette("sequential_hcl", opts...)
}

// HeatHCL is a multi-hue sequential palette from red to yellow.
func HeatHCL(opts ...Option) (*Palette, error) {
	return Sequential(append([]Option{H(0, 90), C(100, 30), L(50, 90), Power(1.0/5, 1)}, opts...)...)
}

// TerrainHCL is a multi-hue sequential palette from green to light brown.
func TerrainHCL(opts ...Option) (*Palette, error) {
	return Sequential(append([]Option{H(130, 0), C(80, 0), L(60, 95), Power(1.0/10, 1)}, opts...)...)
}

type arm struct {
	h1, h2, c1, c2, l1, l2, p1, p2, cmax float64
}

// at returns the HCL color at position i of a sequential arm, i = 1 is the
// (h1, c1, l1) end and i = 0 the (h2, c2, l2) end
func (a arm) at(i float64) (h, c, l float64) {
	h = a.h2 - (a.h2-a.h1)*i
	c = ChromaTrajectory(i, a.p1, a.c1, a.c2, a.cmax)
	l = LuminanceTrajectory(i, a.p2, a.l1, a.l2)
	return
}

func sequential_arm(v map[string]float64) arm {
	return arm{v["h1"], v["h2"], v["c1"], v["c2"], v["l1"], v["l2"], v["p1"], v["p2"], v["cmax"]}
}

func sequential(n int, v map[string]float64) (*colorspace.Colors, error) {
	a := sequential_arm(v)
	h, c, l := make([]float64, n), make([]float64, n), make([]float64, n)
	for k, i := range Seq(1, 0, n) {
		h[k], c[k], l[k] = a.at(i)
	}
	return colorspace.HCLColors(h, c, l)
}
