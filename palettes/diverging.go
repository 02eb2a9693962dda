package palettes

import (
	"math"

	"github.com/kovidgoyal/colorspace"
)

// Diverging creates a palette of two sequential arms with hues h1 and h2
// that meet in a neutral center of chroma c2 (default zero) and luminance
// l2. l1 and c1 are the luminance and chroma of both ends.
func Diverging(opts ...Option) (*Palette, error) {
	return NewPalette("diverging_hcl", opts...)
}

// DivergeHCL is the classic blue to red diverging palette.
func DivergeHCL(opts ...Option) (*Palette, error) {
	return Diverging(append([]Option{H(260, 0), C(80), L(30, 90), Power(1.5)}, opts...)...)
}

// DivergingX creates a diverging palette whose two arms are independent
// sequential palettes, (h1, c1, l1) to (h2, c2, l2) with powers p1, p2 and
// maximum chroma cmax1 and (h3, c3, l3) to (h2, c2, l2) with powers p3, p4 and
// maximum chroma cmax2.
func DivergingX(opts ...Option) (*Palette, error) {
	return NewPalette("divergingx_hcl", opts...)
}

// position of color i of n along a diverging palette, from 1 to -1. Colors
// equally far from the center have exactly opposite positions.
func diverging_position(i, n int) float64 {
	return float64(n-1-2*i) / float64(n-1)
}

func diverging(n int, v map[string]float64) (*colorspace.Colors, error) {
	h, c, l := make([]float64, n), make([]float64, n), make([]float64, n)
	a := sequential_arm(v)
	for i := range n {
		t := diverging_position(i, n)
		_, c[i], l[i] = a.at(math.Abs(t))
		if t > 0 {
			h[i] = v["h1"]
		} else {
			h[i] = v["h2"]
		}
	}
	return colorspace.HCLColors(h, c, l)
}

func divergingx(n int, v map[string]float64) (*colorspace.Colors, error) {
	first := arm{v["h1"], v["h2"], v["c1"], v["c2"], v["l1"], v["l2"], v["p1"], v["p2"], v["cmax1"]}
	second := arm{v["h3"], v["h2"], v["c3"], v["c2"], v["l3"], v["l2"], v["p3"], v["p4"], v["cmax2"]}
	half := (n + 1) / 2
	h, c, l := make([]float64, 0, 2*half), make([]float64, 0, 2*half), make([]float64, 0, 2*half)
	for i := range half {
		hh, cc, ll := first.at(diverging_position(i, n))
		h, c, l = append(h, hh), append(c, cc), append(l, ll)
	}
	// the second arm runs from the center outwards, for odd n its first color
	// is the center, already present
	start := 0
	if n%2 == 1 {
		start = 1
	}
	for i := half - 1 - start; i >= 0; i-- {
		hh, cc, ll := second.at(diverging_position(i, n))
		h, c, l = append(h, hh), append(c, cc), append(l, ll)
	}
	return colorspace.HCLColors(h, c, l)
}
