package colorspace

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/kovidgoyal/colorspace/colorconv"
	"github.com/kovidgoyal/colorspace/types"
)

var _ = fmt.Print

type Space = types.Space

const (
	CIEXYZ   = types.CIEXYZ
	RGB      = types.RGB
	SRGB     = types.SRGB
	CIELUV   = types.CIELUV
	POLARLUV = types.POLARLUV
	HCL      = types.HCL
	CIELAB   = types.CIELAB
	POLARLAB = types.POLARLAB
	HSV      = types.HSV
	HLS      = types.HLS
	HEX      = types.HEX
)

// Colors is a set of N colors expressed in a single color space. Numeric
// spaces hold three coordinate slices named by Space.Dims(), the hex space
// holds one slice of "#RRGGBB" strings. A missing color is NaN in every
// coordinate, or the empty string in the hex space.
type Colors struct {
	space  Space
	coords [3][]float64
	hex    []string
	alpha  []float64
	white  colorconv.Vec3
	gamma  [3]float64
}

// bounded reports whether coordinate i of space s must lie in [0,1]
func bounded(s Space, i int) bool {
	switch s {
	case RGB, SRGB:
		return true
	case HSV, HLS:
		return i > 0
	}
	return false
}

func check_unit_range(vals []float64) bool {
	for _, v := range vals {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

func new_colors(space Space) *Colors {
	g := colorconv.DefaultGamma
	return &Colors{space: space, white: colorconv.D65, gamma: [3]float64{g, g, g}}
}

// New creates a set of colors in the specified numeric space from its three
// coordinate slices, given in the order of space.Dims(). The slices are
// copied.
func New(space Space, a, b, c []float64) (*Colors, error) {
	return NewWithAlpha(space, a, b, c, nil)
}

// NewWithAlpha is like New but also sets an alpha channel. A nil alpha
// means no alpha channel.
func NewWithAlpha(space Space, a, b, c, alpha []float64) (*Colors, error) {
	if !space.IsValid() || space == HEX {
		return nil, fmt.Errorf("new %s colors: %w", space, ErrUnknownSpace)
	}
	n := len(a)
	if len(b) != n || len(c) != n || (alpha != nil && len(alpha) != n) {
		return nil, fmt.Errorf("new %s colors: %w", space, ErrLengthMismatch)
	}
	ans := new_colors(space)
	for i, vals := range [3][]float64{a, b, c} {
		if bounded(space, i) && !check_unit_range(vals) {
			return nil, fmt.Errorf("new %s colors: %s: %w", space, space.Dims()[i], ErrOutOfRange)
		}
		ans.coords[i] = slices.Clone(vals)
		if ans.coords[i] == nil {
			ans.coords[i] = []float64{}
		}
	}
	if alpha != nil {
		if !check_unit_range(alpha) {
			return nil, fmt.Errorf("new %s colors: alpha: %w", space, ErrOutOfRange)
		}
		ans.alpha = slices.Clone(alpha)
	}
	return ans, nil
}

// FromHex creates a set of colors from "#RRGGBB" or "#RRGGBBAA" strings.
// Malformed strings become missing colors. If any string carries an alpha
// byte the set gets an alpha channel, with 1 for entries that have none.
func FromHex(hex []string) *Colors {
	ans := new_colors(HEX)
	ans.hex = make([]string, len(hex))
	var alpha []float64
	for i, h := range hex {
		if !colorconv.IsHex(h) {
			continue
		}
		ans.hex[i] = strings.ToUpper(h[:7])
		if len(h) == 9 {
			if alpha == nil {
				alpha = make([]float64, len(hex))
				for j := range alpha {
					alpha[j] = 1
				}
			}
			_, _, _, alpha[i], _ = colorconv.DecodeHex(h)
		}
	}
	ans.alpha = alpha
	return ans
}

func XYZ(x, y, z []float64) (*Colors, error)       { return New(CIEXYZ, x, y, z) }
func LinearRGB(r, g, b []float64) (*Colors, error) { return New(RGB, r, g, b) }
func SRGBColors(r, g, b []float64) (*Colors, error) {
	return New(SRGB, r, g, b)
}
func LUV(l, u, v []float64) (*Colors, error)      { return New(CIELUV, l, u, v) }
func HCLColors(h, c, l []float64) (*Colors, error) { return New(HCL, h, c, l) }
func LAB(l, a, b []float64) (*Colors, error)      { return New(CIELAB, l, a, b) }
func PolarLAB(l, c, h []float64) (*Colors, error) { return New(POLARLAB, l, c, h) }
func HSVColors(h, s, v []float64) (*Colors, error) {
	return New(HSV, h, s, v)
}
func HLSColors(h, l, s []float64) (*Colors, error) {
	return New(HLS, h, l, s)
}

func (self *Colors) Space() Space { return self.space }

// Len is the number of colors in the set.
func (self *Colors) Len() int {
	if self.space == HEX {
		return len(self.hex)
	}
	return len(self.coords[0])
}

func (self *Colors) dim_index(op, dim string) (int, error) {
	if self.space == HEX {
		return -1, fmt.Errorf("%s %q in %s: %w", op, dim, self.space, ErrUnknownDimension)
	}
	idx := self.space.DimIndex(dim)
	if idx < 0 {
		return -1, fmt.Errorf("%s %q in %s: %w", op, dim, self.space, ErrUnknownDimension)
	}
	return idx, nil
}

// Get returns a copy of the named coordinate, for example "H" of an HCL set.
func (self *Colors) Get(dim string) ([]float64, error) {
	idx, err := self.dim_index("get", dim)
	if err != nil {
		return nil, err
	}
	return slices.Clone(self.coords[idx]), nil
}

// MustGet is like Get but panics on an unknown dimension.
func (self *Colors) MustGet(dim string) []float64 {
	ans, err := self.Get(dim)
	if err != nil {
		panic(err)
	}
	return ans
}

// Hex returns a copy of the hex strings of a set in the hex space.
func (self *Colors) Hex() ([]string, error) {
	if self.space != HEX {
		return nil, fmt.Errorf("get \"hex\" in %s: %w", self.space, ErrUnknownDimension)
	}
	return slices.Clone(self.hex), nil
}

// Set replaces the named coordinate. The values must have the length of
// the set and respect the range of the coordinate.
func (self *Colors) Set(dim string, values []float64) error {
	idx, err := self.dim_index("set", dim)
	if err != nil {
		return err
	}
	if len(values) != self.Len() {
		return fmt.Errorf("set %q: %w", dim, ErrLengthMismatch)
	}
	if bounded(self.space, idx) && !check_unit_range(values) {
		return fmt.Errorf("set %q: %w", dim, ErrOutOfRange)
	}
	copy(self.coords[idx], values)
	return nil
}

// SetHex replaces the hex strings of a set in the hex space. Malformed
// strings become missing colors, alpha bytes are ignored.
func (self *Colors) SetHex(values []string) error {
	if self.space != HEX {
		return fmt.Errorf("set \"hex\" in %s: %w", self.space, ErrUnknownDimension)
	}
	if len(values) != len(self.hex) {
		return fmt.Errorf("set \"hex\": %w", ErrLengthMismatch)
	}
	for i, h := range values {
		if colorconv.IsHex(h) {
			self.hex[i] = strings.ToUpper(h[:7])
		} else {
			self.hex[i] = ""
		}
	}
	return nil
}

func (self *Colors) HasAlpha() bool { return self.alpha != nil }

// Alpha returns a copy of the alpha channel or ErrNoAlpha.
func (self *Colors) Alpha() ([]float64, error) {
	if self.alpha == nil {
		return nil, ErrNoAlpha
	}
	return slices.Clone(self.alpha), nil
}

// SetAlpha sets the alpha channel. A single value is broadcast to every color.
func (self *Colors) SetAlpha(alpha ...float64) error {
	n := self.Len()
	switch {
	case len(alpha) == 1 && n != 1:
		v := alpha[0]
		alpha = make([]float64, n)
		for i := range alpha {
			alpha[i] = v
		}
	case len(alpha) != n:
		return fmt.Errorf("set alpha: %w", ErrLengthMismatch)
	}
	if !check_unit_range(alpha) {
		return fmt.Errorf("set alpha: %w", ErrOutOfRange)
	}
	self.alpha = slices.Clone(alpha)
	return nil
}

func (self *Colors) DropAlpha() { self.alpha = nil }

func (self *Colors) WhitePoint() colorconv.Vec3 { return self.white }

// SetWhitePoint changes the reference white (XN, YN, ZN) used by the CIE
// conversions of this set only.
func (self *Colors) SetWhitePoint(xn, yn, zn float64) error {
	for _, v := range []float64{xn, yn, zn} {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("set white point: %w", ErrOutOfRange)
		}
	}
	self.white = colorconv.Vec3{xn, yn, zn}
	return nil
}

func (self *Colors) Gamma() [3]float64 { return self.gamma }

// SetGamma sets the gamma of the sRGB transfer function, either one value
// for all channels or one per channel.
func (self *Colors) SetGamma(g ...float64) error {
	switch len(g) {
	case 1:
		g = []float64{g[0], g[0], g[0]}
	case 3:
	default:
		return fmt.Errorf("set gamma: %w", ErrLengthMismatch)
	}
	for _, v := range g {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("set gamma: %w", ErrOutOfRange)
		}
	}
	copy(self.gamma[:], g)
	return nil
}

// Clone returns a deep copy of the set.
func (self *Colors) Clone() *Colors {
	ans := *self
	for i, c := range self.coords {
		ans.coords[i] = slices.Clone(c)
	}
	ans.hex = slices.Clone(self.hex)
	ans.alpha = slices.Clone(self.alpha)
	return &ans
}

// Reverse reverses the order of the colors in place.
func (self *Colors) Reverse() {
	for _, c := range self.coords {
		slices.Reverse(c)
	}
	slices.Reverse(self.hex)
	slices.Reverse(self.alpha)
}

// Colors returns the set as hex strings without modifying it. Colors with
// an alpha below one get a trailing alpha byte. See To for the meaning of
// fixup.
func (self *Colors) Colors(fixup, rev bool) ([]string, error) {
	c := self.Clone()
	if err := c.To(HEX, fixup); err != nil {
		return nil, err
	}
	if rev {
		c.Reverse()
	}
	ans := c.hex
	if c.alpha != nil {
		for i, h := range ans {
			if h != "" {
				r, g, b, _, _ := colorconv.DecodeHex(h)
				ans[i] = colorconv.EncodeHex(r, g, b, c.alpha[i], true, true)
			}
		}
	}
	return ans, nil
}

func (self *Colors) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s color object (%d colors)", self.space, self.Len())
	return b.String()
}
