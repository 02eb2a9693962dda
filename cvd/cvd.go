// Package cvd emulates color vision deficiencies and desaturation on sets of
// colors.
package cvd

import (
	"fmt"
	"math"
	"strings"

	"github.com/kovidgoyal/colorspace"
	"github.com/kovidgoyal/colorspace/colorconv"
)

var _ = fmt.Print

// Kind of color vision deficiency
type Kind int

const (
	Protan Kind = iota + 1
	Deutan
	Tritan
)

func (k Kind) String() string {
	switch k {
	case Protan:
		return "protan"
	case Deutan:
		return "deutan"
	case Tritan:
		return "tritan"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts the names of the kinds as well as the names of the full
// deficiencies, for example "protanopia" or "deuteranomaly".
func ParseKind(name string) (Kind, error) {
	q := strings.ToLower(strings.TrimSpace(name))
	switch {
	case strings.HasPrefix(q, "prot"):
		return Protan, nil
	case strings.HasPrefix(q, "deut"):
		return Deutan, nil
	case strings.HasPrefix(q, "trit"):
		return Tritan, nil
	}
	return 0, fmt.Errorf("unknown color vision deficiency: %q", name)
}

func (k Kind) matrices() (*[11]colorconv.Mat3, error) {
	switch k {
	case Protan:
		return &protan_matrices, nil
	case Deutan:
		return &deutan_matrices, nil
	case Tritan:
		return &tritan_matrices, nil
	}
	return nil, fmt.Errorf("unknown color vision deficiency: %s", k)
}

func check_fraction(op, what string, x float64) error {
	if !(x >= 0 && x <= 1) {
		return fmt.Errorf("%s: %s %v: %w", op, what, x, colorspace.ErrOutOfRange)
	}
	return nil
}

// Matrix returns the simulation matrix for the deficiency at the specified
// severity in [0,1]. Severities between the tabulated steps of 0.1 are
// interpolated linearly.
func Matrix(kind Kind, severity float64) (colorconv.Mat3, error) {
	if err := check_fraction("cvd matrix", "severity", severity); err != nil {
		return colorconv.Mat3{}, err
	}
	table, err := kind.matrices()
	if err != nil {
		return colorconv.Mat3{}, err
	}
	s := severity * 10
	lo := math.Floor(s)
	if s == lo {
		return table[int(lo)], nil
	}
	return colorconv.Lerp(table[int(lo)], table[int(lo)+1], s-lo), nil
}

// Simulate returns a copy of the colors as perceived with the deficiency. The
// matrix is applied in linear RGB when linear is set, in sRGB otherwise, and
// the results are clamped to [0,1]. The result is in the space of the input.
// At severity zero the copy is returned unchanged, a round trip through RGB
// would otherwise snap colors onto the gamut boundary.
func Simulate(c *colorspace.Colors, kind Kind, severity float64, linear bool) (*colorspace.Colors, error) {
	m, err := Matrix(kind, severity)
	if err != nil {
		return nil, err
	}
	ans := c.Clone()
	if m == colorconv.Identity {
		return ans, nil
	}
	orig := ans.Space()
	work := colorspace.SRGB
	if linear {
		work = colorspace.RGB
	}
	if err = ans.To(work, true); err != nil {
		return nil, err
	}
	r, g, b := ans.MustGet("R"), ans.MustGet("G"), ans.MustGet("B")
	for i := range r {
		x, y, z := m.MulVec(colorconv.Vec3{r[i], g[i], b[i]})
		r[i], g[i], b[i] = colorconv.Clamp01(x), colorconv.Clamp01(y), colorconv.Clamp01(z)
	}
	for i, d := range []string{"R", "G", "B"} {
		if err = ans.Set(d, [][]float64{r, g, b}[i]); err != nil {
			return nil, err
		}
	}
	if err = ans.To(orig, true); err != nil {
		return nil, err
	}
	return ans, nil
}

func simulate_hex(hex []string, kind Kind, severity float64, linear bool) ([]string, error) {
	ans, err := Simulate(colorspace.FromHex(hex), kind, severity, linear)
	if err != nil {
		return nil, err
	}
	return ans.Colors(true, false)
}

// ProtanHex simulates protanomaly (protanopia at severity 1) on hex colors.
func ProtanHex(hex []string, severity float64, linear bool) ([]string, error) {
	return simulate_hex(hex, Protan, severity, linear)
}

// DeutanHex simulates deuteranomaly (deuteranopia at severity 1) on hex colors.
func DeutanHex(hex []string, severity float64, linear bool) ([]string, error) {
	return simulate_hex(hex, Deutan, severity, linear)
}

// TritanHex simulates tritanomaly (tritanopia at severity 1) on hex colors.
func TritanHex(hex []string, severity float64, linear bool) ([]string, error) {
	return simulate_hex(hex, Tritan, severity, linear)
}
