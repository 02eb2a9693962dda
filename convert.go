package colorspace

import (
	"fmt"
	"math"
	"slices"

	"github.com/kovidgoyal/colorspace/colorconv"
)

var _ = fmt.Print

// Every space is directly connected to exactly one parent, which makes the
// spaces a tree rooted at CIEXYZ. The path between two spaces is the unique
// path through this tree.
var parent_space = map[Space]Space{
	RGB:      CIEXYZ,
	CIELUV:   CIEXYZ,
	CIELAB:   CIEXYZ,
	SRGB:     RGB,
	HSV:      SRGB,
	HLS:      SRGB,
	HEX:      SRGB,
	POLARLUV: CIELUV,
	POLARLAB: CIELAB,
}

func is_cie(s Space) bool {
	switch s {
	case CIEXYZ, CIELUV, POLARLUV, CIELAB, POLARLAB:
		return true
	}
	return false
}

// Ambiguous reports whether converting between the two spaces is refused.
// HSV and HLS are device dependent so they are not connected to the CIE
// family.
func Ambiguous(from, to Space) bool {
	return ((from == HSV || from == HLS) && is_cie(to)) || ((to == HSV || to == HLS) && is_cie(from))
}

func ancestors(s Space) (ans []Space) {
	for {
		ans = append(ans, s)
		p, ok := parent_space[s]
		if !ok {
			return
		}
		s = p
	}
}

// Route returns the spaces visited, in order, when converting from one space
// to another. The starting space is not included, the target is. Converting a
// space to itself has an empty route.
func Route(from, to Space) ([]Space, error) {
	if !from.IsValid() || !to.IsValid() {
		return nil, &ConversionError{Op: "route", From: from, To: to, Err: ErrUnknownSpace}
	}
	if Ambiguous(from, to) {
		return nil, &ConversionError{Op: "route", From: from, To: to, Err: ErrAmbiguousConversion}
	}
	if from == to {
		return []Space{}, nil
	}
	up, down := ancestors(from), ancestors(to)
	// strip the common tail, keeping the lowest common ancestor in up
	for len(up) > 1 && len(down) > 1 && up[len(up)-2] == down[len(down)-2] {
		up, down = up[:len(up)-1], down[:len(down)-1]
	}
	ans := make([]Space, 0, len(up)+len(down))
	ans = append(ans, up[1:]...)
	down = slices.Clone(down[:len(down)-1])
	slices.Reverse(down)
	return append(ans, down...), nil
}

// To converts the set in place into the target space. Conversions that are
// ambiguous fail without modifying the set. fixup is only used when the
// target is sRGB or hex: colors outside the sRGB gamut are then clamped into
// it, otherwise they become missing. Channels less than half an 8-bit step
// outside the gamut are always snapped onto its boundary.
func (self *Colors) To(target Space, fixup bool) error {
	route, err := Route(self.space, target)
	if err != nil {
		err.(*ConversionError).Op = "to"
		return err
	}
	for i, s := range route {
		self.step(s, i == len(route)-1, fixup)
	}
	return nil
}

// step moves the set to the adjacent space s, final is set for the last hop
// of a conversion
func (self *Colors) step(s Space, final, fixup bool) {
	x, y, z := self.coords[0], self.coords[1], self.coords[2]
	w := self.white
	switch from := self.space; {
	case from == CIEXYZ && s == RGB:
		for i := range x {
			x[i], y[i], z[i] = colorconv.XYZToRGB(x[i], y[i], z[i], w[1])
		}
	case from == RGB && s == CIEXYZ:
		for i := range x {
			x[i], y[i], z[i] = colorconv.RGBToXYZ(x[i], y[i], z[i], w[1])
		}
	case from == CIEXYZ && s == CIELUV:
		for i := range x {
			x[i], y[i], z[i] = colorconv.XYZToLUV(x[i], y[i], z[i], w)
		}
	case from == CIELUV && s == CIEXYZ:
		for i := range x {
			x[i], y[i], z[i] = colorconv.LUVToXYZ(x[i], y[i], z[i], w)
		}
	case from == CIEXYZ && s == CIELAB:
		for i := range x {
			x[i], y[i], z[i] = colorconv.XYZToLAB(x[i], y[i], z[i], w)
		}
	case from == CIELAB && s == CIEXYZ:
		for i := range x {
			x[i], y[i], z[i] = colorconv.LABToXYZ(x[i], y[i], z[i], w)
		}
	case from == RGB && s == SRGB:
		for i := range x {
			x[i] = colorconv.Gtrans(x[i], self.gamma[0])
			y[i] = colorconv.Gtrans(y[i], self.gamma[1])
			z[i] = colorconv.Gtrans(z[i], self.gamma[2])
		}
	case from == SRGB && s == RGB:
		for i := range x {
			x[i] = colorconv.Ftrans(x[i], self.gamma[0])
			y[i] = colorconv.Ftrans(y[i], self.gamma[1])
			z[i] = colorconv.Ftrans(z[i], self.gamma[2])
		}
	case from == CIELUV && s == POLARLUV:
		// L, U, V -> H, C, L
		for i := range x {
			c, h := colorconv.ToPolar(y[i], z[i])
			x[i], y[i], z[i] = h, c, x[i]
		}
	case from == POLARLUV && s == CIELUV:
		for i := range x {
			u, v := colorconv.FromPolar(y[i], x[i])
			x[i], y[i], z[i] = z[i], u, v
		}
	case from == CIELAB && s == POLARLAB:
		// L, A, B -> L, C, H
		for i := range x {
			y[i], z[i] = colorconv.ToPolar(y[i], z[i])
		}
	case from == POLARLAB && s == CIELAB:
		for i := range x {
			y[i], z[i] = colorconv.FromPolar(y[i], z[i])
		}
	case from == SRGB && s == HSV:
		for i := range x {
			x[i], y[i], z[i] = colorconv.RGBToHSV(x[i], y[i], z[i])
		}
	case from == HSV && s == SRGB:
		for i := range x {
			x[i], y[i], z[i] = colorconv.HSVToRGB(x[i], y[i], z[i])
		}
	case from == SRGB && s == HLS:
		for i := range x {
			x[i], y[i], z[i] = colorconv.RGBToHLS(x[i], y[i], z[i])
		}
	case from == HLS && s == SRGB:
		for i := range x {
			x[i], y[i], z[i] = colorconv.HLSToRGB(x[i], y[i], z[i])
		}
	case from == SRGB && s == HEX:
		self.hex = make([]string, len(x))
		for i := range x {
			self.hex[i] = colorconv.EncodeHex(x[i], y[i], z[i], 1, false, fixup)
		}
		self.coords = [3][]float64{}
	case from == HEX && s == SRGB:
		n := len(self.hex)
		x, y, z = make([]float64, n), make([]float64, n), make([]float64, n)
		for i, h := range self.hex {
			x[i], y[i], z[i], _, _ = colorconv.DecodeHex(h)
		}
		self.coords = [3][]float64{x, y, z}
		self.hex = nil
	default:
		panic(fmt.Sprintf("no direct conversion from %s to %s", from, s))
	}
	if s == SRGB && final {
		for i := range x {
			x[i], y[i], z[i] = colorconv.FixupRGB(x[i], y[i], z[i], fixup)
		}
	}
	self.space = s
}

// IsMissing reports which colors of the set are missing.
func (self *Colors) IsMissing() []bool {
	ans := make([]bool, self.Len())
	if self.space == HEX {
		for i, h := range self.hex {
			ans[i] = h == ""
		}
		return ans
	}
	for i := range ans {
		ans[i] = math.IsNaN(self.coords[0][i]) || math.IsNaN(self.coords[1][i]) || math.IsNaN(self.coords[2][i])
	}
	return ans
}
