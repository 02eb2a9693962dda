package types

import (
	"fmt"
	"strings"
)

var _ = fmt.Print

// Space identifies the color model a set of coordinates is expressed in.
type Space int

// Color spaces. The zero value is deliberately not a valid space.
const (
	UNKNOWN_SPACE Space = iota
	CIEXYZ
	RGB
	SRGB
	CIELUV
	POLARLUV
	CIELAB
	POLARLAB
	HSV
	HLS
	HEX
)

// HCL is the common name for polar CIELUV.
const HCL = POLARLUV

var spaceNames = map[Space]string{
	CIEXYZ:   "CIEXYZ",
	RGB:      "RGB",
	SRGB:     "sRGB",
	CIELUV:   "CIELUV",
	POLARLUV: "polarLUV",
	CIELAB:   "CIELAB",
	POLARLAB: "polarLAB",
	HSV:      "HSV",
	HLS:      "HLS",
	HEX:      "hex",
}

// Dimension names of every space, in coordinate order.
var spaceDims = map[Space][]string{
	CIEXYZ:   {"X", "Y", "Z"},
	RGB:      {"R", "G", "B"},
	SRGB:     {"R", "G", "B"},
	CIELUV:   {"L", "U", "V"},
	POLARLUV: {"H", "C", "L"},
	CIELAB:   {"L", "A", "B"},
	POLARLAB: {"L", "C", "H"},
	HSV:      {"H", "S", "V"},
	HLS:      {"H", "L", "S"},
	HEX:      {"hex"},
}

func (s Space) String() string {
	if ans, ok := spaceNames[s]; ok {
		return ans
	}
	return fmt.Sprintf("Space(%d)", int(s))
}

func (s Space) IsValid() bool { return s > UNKNOWN_SPACE && s <= HEX }

// Dims returns the names of the coordinates of this space.
func (s Space) Dims() []string { return spaceDims[s] }

// DimIndex returns the index of the named coordinate or -1.
func (s Space) DimIndex(name string) int {
	for i, q := range spaceDims[s] {
		if q == name {
			return i
		}
	}
	return -1
}

// IsPolar is true for the spaces carrying a hue angle in degrees.
func (s Space) IsPolar() bool {
	switch s {
	case POLARLUV, POLARLAB, HSV, HLS:
		return true
	}
	return false
}

// ParseSpace converts a space name, as returned by String() or the alias
// "HCL", into a Space. Matching is case insensitive.
func ParseSpace(name string) (Space, error) {
	q := strings.ToLower(strings.TrimSpace(name))
	if q == "hcl" {
		return HCL, nil
	}
	for s, n := range spaceNames {
		if strings.ToLower(n) == q {
			return s, nil
		}
	}
	return UNKNOWN_SPACE, fmt.Errorf("unknown color space: %q", name)
}

// Format is an image file format.
type Format int

// Image file formats.
const (
	UNKNOWN Format = iota
	JPEG
	PNG
	GIF
	TIFF
	WEBP
	BMP
)

var FormatExts = map[string]Format{
	"jpg":  JPEG,
	"jpeg": JPEG,
	"png":  PNG,
	"gif":  GIF,
	"tif":  TIFF,
	"tiff": TIFF,
	"webp": WEBP,
	"bmp":  BMP,
}

var formatNames = map[Format]string{
	JPEG: "JPEG",
	PNG:  "PNG",
	GIF:  "GIF",
	TIFF: "TIFF",
	WEBP: "WEBP",
	BMP:  "BMP",
}

func (f Format) String() string {
	return formatNames[f]
}
