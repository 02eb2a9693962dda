package cvd

import (
	"github.com/kovidgoyal/colorspace"
)

// Desaturate returns a copy of the colors with their HCL chroma reduced by
// the fraction amount. Black and white get zero chroma and hue. The result is
// in the space of the input.
func Desaturate(c *colorspace.Colors, amount float64) (*colorspace.Colors, error) {
	if err := check_fraction("desaturate", "amount", amount); err != nil {
		return nil, err
	}
	ans := c.Clone()
	orig := ans.Space()
	device := orig == colorspace.HSV || orig == colorspace.HLS
	if device {
		if err := ans.To(colorspace.SRGB, true); err != nil {
			return nil, err
		}
	}
	if err := ans.To(colorspace.HCL, true); err != nil {
		return nil, err
	}
	h, chroma, l := ans.MustGet("H"), ans.MustGet("C"), ans.MustGet("L")
	for i := range chroma {
		chroma[i] *= 1 - amount
		if l[i] <= 0 || l[i] >= 100 {
			h[i], chroma[i] = 0, 0
		}
	}
	if err := ans.Set("H", h); err != nil {
		return nil, err
	}
	if err := ans.Set("C", chroma); err != nil {
		return nil, err
	}
	if device {
		if err := ans.To(colorspace.SRGB, true); err != nil {
			return nil, err
		}
	}
	if err := ans.To(orig, true); err != nil {
		return nil, err
	}
	return ans, nil
}

// DesaturateHex desaturates hex colors, see Desaturate.
func DesaturateHex(hex []string, amount float64) ([]string, error) {
	ans, err := Desaturate(colorspace.FromHex(hex), amount)
	if err != nil {
		return nil, err
	}
	return ans.Colors(true, false)
}
