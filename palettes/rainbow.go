package palettes

import (
	"math"

	"github.com/kovidgoyal/colorspace"
)

// Rainbow creates the classic HSV rainbow with saturation s and value v.
// start and end are fractions of the hue circle, the sweep wraps around
// when start > end.
func Rainbow(opts ...Option) (*Palette, error) {
	return NewPalette("rainbow_hsv", opts...)
}

// DivergingHSV creates a diverging palette in HSV space from hue h1 through
// white to hue h2. The saturation falls off towards the center with the
// specified power.
func DivergingHSV(opts ...Option) (*Palette, error) {
	return NewPalette("diverging_hsv", opts...)
}

func constant(n int, v float64) []float64 {
	ans := make([]float64, n)
	for i := range ans {
		ans[i] = v
	}
	return ans
}

func rainbow(n int, v map[string]float64) (*colorspace.Colors, error) {
	start, end := v["start"], v["end"]
	if start > end {
		end += 1
	}
	h := Seq(start, end, n)
	for i, x := range h {
		h[i] = 360 * (x - math.Floor(x))
	}
	return colorspace.HSVColors(h, constant(n, v["s"]), constant(n, v["v"]))
}

func diverging_hsv(n int, v map[string]float64) (*colorspace.Colors, error) {
	h, s := make([]float64, n), make([]float64, n)
	for i := range n {
		t := v["s"] * diverging_position(i, n)
		// the first color is at -s
		t = -t
		s[i] = math.Pow(math.Abs(t), v["power"])
		if t > 0 {
			h[i] = v["h2"]
		} else {
			h[i] = v["h1"]
		}
	}
	return colorspace.HSVColors(h, s, constant(n, v["v"]))
}
