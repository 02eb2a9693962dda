package colorspace

import (
	"fmt"

	"github.com/kovidgoyal/colorspace/colorconv"
)

var _ = fmt.Print

// broadcast makes two lists of the same length, when one of them has a single
// entry it is repeated
func broadcast(a, b []string) ([]string, []string, error) {
	switch {
	case len(a) == len(b):
	case len(a) == 1:
		a = repeat(a[0], len(b))
	case len(b) == 1:
		b = repeat(b[0], len(a))
	default:
		return nil, nil, ErrLengthMismatch
	}
	return a, b, nil
}

func repeat(s string, n int) []string {
	ans := make([]string, n)
	for i := range ans {
		ans[i] = s
	}
	return ans
}

// RelativeLuminance is the WCAG relative luminance of each hex color, NaN
// for malformed colors.
func RelativeLuminance(hex []string) []float64 {
	c := FromHex(hex)
	_ = c.To(RGB, false)
	r, g, b := c.coords[0], c.coords[1], c.coords[2]
	ans := make([]float64, len(r))
	for i := range ans {
		ans[i] = 0.2126*r[i] + 0.7152*g[i] + 0.0722*b[i]
	}
	return ans
}

// ContrastRatio is the WCAG 2 contrast ratio between the colors of a and b,
// pairwise. Either list may have a single entry to compare it against every
// color of the other list. The result lies in [1,21].
func ContrastRatio(a, b []string) ([]float64, error) {
	a, b, err := broadcast(a, b)
	if err != nil {
		return nil, fmt.Errorf("contrast ratio: %w", err)
	}
	la, lb := RelativeLuminance(a), RelativeLuminance(b)
	ans := make([]float64, len(la))
	for i := range ans {
		hi, lo := max(la[i], lb[i]), min(la[i], lb[i])
		ans[i] = (hi + 0.05) / (lo + 0.05)
	}
	return ans, nil
}

// Mix mixes the colors of a and b, pairwise, by taking the weighted mean of
// their coordinates in the specified space. A weight of zero gives a and one
// gives b. Hues are interpolated along the shorter arc.
func Mix(a, b []string, weight float64, space Space) ([]string, error) {
	if !(weight >= 0 && weight <= 1) {
		return nil, fmt.Errorf("mix: weight: %w", ErrOutOfRange)
	}
	if space == HEX {
		space = SRGB
	}
	a, b, err := broadcast(a, b)
	if err != nil {
		return nil, fmt.Errorf("mix: %w", err)
	}
	ca, cb := FromHex(a), FromHex(b)
	if err = ca.To(space, false); err != nil {
		return nil, err
	}
	if err = cb.To(space, false); err != nil {
		return nil, err
	}
	hue := -1
	if space.IsPolar() {
		hue = space.DimIndex("H")
	}
	for d := range 3 {
		x, y := ca.coords[d], cb.coords[d]
		for i := range x {
			if d == hue {
				delta := y[i] - x[i]
				switch {
				case delta > 180:
					delta -= 360
				case delta < -180:
					delta += 360
				}
				x[i] = colorconv.NormalizeHue(x[i] + weight*delta)
			} else {
				x[i] = (1-weight)*x[i] + weight*y[i]
			}
		}
	}
	return ca.Colors(true, false)
}

// AdjustTransparency sets the alpha of every color. With no alpha values the
// alpha is removed, a single value applies to all colors.
func AdjustTransparency(hex []string, alpha ...float64) ([]string, error) {
	c := FromHex(hex)
	if len(alpha) == 0 {
		c.DropAlpha()
	} else if err := c.SetAlpha(alpha...); err != nil {
		return nil, fmt.Errorf("adjust transparency: %w", err)
	}
	return c.Colors(true, false)
}

func change_luminance(op string, hex []string, amount float64, f func(l float64) float64) ([]string, error) {
	if !(amount >= 0 && amount <= 1) {
		return nil, fmt.Errorf("%s: amount: %w", op, ErrOutOfRange)
	}
	c := FromHex(hex)
	if err := c.To(HCL, false); err != nil {
		return nil, err
	}
	l := c.coords[2]
	for i := range l {
		l[i] = max(0, min(f(l[i]), 100))
	}
	return c.Colors(true, false)
}

// Lighten increases the HCL luminance of the colors. When relative is set
// the luminance moves the fraction amount of the way towards 100, otherwise
// it increases by 100*amount.
func Lighten(hex []string, amount float64, relative bool) ([]string, error) {
	return change_luminance("lighten", hex, amount, func(l float64) float64 {
		if relative {
			return l + (100-l)*amount
		}
		return l + 100*amount
	})
}

// Darken is the opposite of Lighten.
func Darken(hex []string, amount float64, relative bool) ([]string, error) {
	return change_luminance("darken", hex, amount, func(l float64) float64 {
		if relative {
			return l * (1 - amount)
		}
		return l - 100*amount
	})
}
