/*
Package colorspace converts colors between CIEXYZ, linear RGB, sRGB, CIELUV, polar CIELUV (HCL),
CIELAB, polar CIELAB, HSV, HLS and hex strings.

A set of colors is held in a [Colors] value, which carries the coordinates of N colors in one
space together with optional alpha, a white point and a gamma. [Colors.To] converts the set
in place, walking a fixed path through the intermediate spaces. Missing colors are NaN (or
the empty string for hex) and propagate through every conversion.

Palettes built in HCL space live in the palettes sub-package and color vision deficiency
emulation in the cvd sub-package. The colorimage sub-package applies any of these to the
pixels of an image.
*/
package colorspace

import "fmt"

type ColorspaceVersion struct {
	Major, Minor, Patch uint
}

func (v ColorspaceVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v ColorspaceVersion) Equal(o ColorspaceVersion) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

func (v ColorspaceVersion) After(o ColorspaceVersion) bool {
	switch {
	case v.Major != o.Major:
		return v.Major > o.Major
	case v.Minor != o.Minor:
		return v.Minor > o.Minor
	}
	return v.Patch > o.Patch
}

func (v ColorspaceVersion) Before(o ColorspaceVersion) bool {
	return !v.Equal(o) && !v.After(o)
}

var Version = ColorspaceVersion{0, 3, 0}
