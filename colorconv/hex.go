package colorconv

import (
	"math"
	"regexp"
	"strconv"
)

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?$`)

const hexDigits = "0123456789ABCDEF"

// To8Bit maps a component in [0,1] onto a byte, rounding half up.
func To8Bit(x float64) uint8 {
	return uint8(math.Floor(Clamp01(x)*255 + 0.5))
}

func appendByte(buf []byte, x uint8) []byte {
	return append(buf, hexDigits[x>>4], hexDigits[x&0xf])
}

// EncodeHex converts an sRGB color to a "#RRGGBB" string, with a trailing
// alpha byte when hasAlpha is set and alpha < 1. Channels outside [0,1]
// are handled as described by Fixup. Colors that cannot be represented
// yield the empty string.
func EncodeHex(r, g, b, alpha float64, hasAlpha, fixup bool) string {
	r, g, b = FixupRGB(r, g, b, fixup)
	if math.IsNaN(r) {
		return ""
	}
	buf := make([]byte, 1, 9)
	buf[0] = '#'
	buf = appendByte(buf, To8Bit(r))
	buf = appendByte(buf, To8Bit(g))
	buf = appendByte(buf, To8Bit(b))
	if hasAlpha && alpha < 1 {
		buf = appendByte(buf, To8Bit(alpha))
	}
	return string(buf)
}

// IsHex reports whether s is a well formed "#RRGGBB" or "#RRGGBBAA" string.
func IsHex(s string) bool { return hexPattern.MatchString(s) }

func parseByte(s string) float64 {
	v, _ := strconv.ParseUint(s, 16, 8)
	return float64(v) / 255
}

// DecodeHex parses a "#RRGGBB" or "#RRGGBBAA" string into sRGB components
// in [0,1]. Malformed input is not an error, it yields NaN components so
// that batches containing bad entries can still be processed. When there
// is no alpha byte, a is 1.
func DecodeHex(s string) (r, g, b, a float64, hasAlpha bool) {
	if !hexPattern.MatchString(s) {
		return math.NaN(), math.NaN(), math.NaN(), math.NaN(), false
	}
	r, g, b, a = parseByte(s[1:3]), parseByte(s[3:5]), parseByte(s[5:7]), 1
	if len(s) == 9 {
		a, hasAlpha = parseByte(s[7:9]), true
	}
	return
}
