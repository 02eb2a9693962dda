package palettes

import (
	"github.com/kovidgoyal/colorspace"
)

// Qualitative creates a palette of colors with equal chroma and luminance
// and evenly spaced hues, for unordered categories. By default the hues go
// around the full circle starting at h1.
func Qualitative(opts ...Option) (*Palette, error) {
	return NewPalette("qualitative_hcl", opts...)
}

// RainbowHCL is a qualitative palette with chroma c and luminance l whose
// hues go from start to end.
func RainbowHCL(c, l, start, end float64) (*Palette, error) {
	return Qualitative(H(start, end), C(c), L(l))
}

func qualitative(n int, v map[string]float64) (*colorspace.Colors, error) {
	h := Seq(v["h1"], v["h2"], n)
	c, l := make([]float64, n), make([]float64, n)
	for i := range n {
		c[i], l[i] = v["c1"], v["l1"]
	}
	return colorspace.HCLColors(h, c, l)
}
