package colorconv

import (
	"math"
)

// This package holds the pairwise transforms between color spaces. Every
// function works on a single color so that callers can run them over
// slices in place. Coordinates follow these conventions:
//
// - RGB (linear) and sRGB components are nominally in [0,1].
// - CIEXYZ is scaled so that the white point has Y = 100.
// - L in CIELUV/CIELAB is in [0,100], hues are in degrees.
// - HSV and HLS work directly on a gamma encoded (sRGB) triplet.
//
// Missing colors are NaN and simply flow through the arithmetic.

type Vec3 [3]float64
type Mat3 [3][3]float64

// CIE constants, expressed as exact rationals.
const (
	Kappa   = 24389.0 / 27.0
	Epsilon = 216.0 / 24389.0
)

// DefaultGamma is the exponent of the sRGB transfer function.
const DefaultGamma = 2.4

// D65 reference white, scaled so that Y = 100.
var D65 = Vec3{95.047, 100.000, 108.883}

var Identity = Mat3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// Linear RGB to CIEXYZ, before scaling with the white point.
var xyzFromRGB = Mat3{
	{0.412453, 0.357580, 0.180423},
	{0.212671, 0.715160, 0.072169},
	{0.019334, 0.119193, 0.950227},
}

var rgbFromXYZ = Mat3{
	{3.240479, -1.537150, -0.498535},
	{-0.969256, 1.875992, 0.041556},
	{0.055648, -0.204043, 1.057311},
}

// Gtrans applies the sRGB transfer function to a linear component.
func Gtrans(u, gamma float64) float64 {
	if u > 0.00304 {
		return 1.055*math.Pow(u, 1/gamma) - 0.055
	}
	return 12.92 * u
}

// Ftrans is the inverse of Gtrans, mapping an encoded component to linear light.
func Ftrans(u, gamma float64) float64 {
	if u > 0.03928 {
		return math.Pow((u+0.055)/1.055, gamma)
	}
	return u / 12.92
}

// RGBToXYZ converts linear RGB to CIEXYZ. Only the Y component of the white
// point takes part in the scaling; X and Z are ignored. This mirrors the
// long standing behaviour of the R and Python colorspace packages.
func RGBToXYZ(r, g, b, yn float64) (x, y, z float64) {
	x, y, z = xyzFromRGB.MulVec(Vec3{r, g, b})
	return yn * x, yn * y, yn * z
}

// XYZToRGB is the inverse of RGBToXYZ, dividing by the white point Y only.
func XYZToRGB(x, y, z, yn float64) (r, g, b float64) {
	r, g, b = rgbFromXYZ.MulVec(Vec3{x, y, z})
	return r / yn, g / yn, b / yn
}

func xyToUV(x, y float64) (u, v float64) {
	t := 6*y - x + 1.5
	return 2 * x / t, 4.5 * y / t
}

func whiteUV(white Vec3) (u, v float64) {
	t := white[0] + white[1] + white[2]
	return xyToUV(white[0]/t, white[1]/t)
}

// XYZToLUV converts CIEXYZ to CIELUV relative to the given white point.
func XYZToLUV(X, Y, Z float64, white Vec3) (L, U, V float64) {
	var x, y float64
	if t := X + Y + Z; t != 0 {
		x, y = X/t, Y/t
	}
	u, v := xyToUV(x, y)
	un, vn := whiteUV(white)
	yr := Y / white[1]
	if yr > Epsilon {
		L = 116*math.Cbrt(yr) - 16
	} else {
		L = Kappa * yr
	}
	return L, 13 * L * (u - un), 13 * L * (v - vn)
}

// Floor for L when dividing by it on the way back from CIELUV
const luvMinL = 1e-10

// LUVToXYZ converts CIELUV to CIEXYZ relative to the given white point.
func LUVToXYZ(L, U, V float64, white Vec3) (X, Y, Z float64) {
	if L <= 0 && U == 0 && V == 0 {
		return 0, 0, 0
	}
	if L > Kappa*Epsilon {
		Y = white[1] * cube((L+16)/116)
	} else {
		Y = white[1] * L / Kappa
	}
	un, vn := whiteUV(white)
	d := 13 * max(L, luvMinL)
	u := U/d + un
	v := V/d + vn
	X = 9 * Y * u / (4 * v)
	Z = -X/3 - 5*Y + 3*Y/v
	return
}

func cube(t float64) float64 { return t * t * t }

func labF(t float64) float64 {
	if t > Epsilon {
		return math.Cbrt(t)
	}
	return (Kappa*t + 16) / 116
}

func labFinv(f float64) float64 {
	if f3 := cube(f); f3 > Epsilon {
		return f3
	}
	return (116*f - 16) / Kappa
}

// XYZToLAB converts CIEXYZ to CIELAB relative to the given white point.
func XYZToLAB(X, Y, Z float64, white Vec3) (L, A, B float64) {
	xr, yr, zr := X/white[0], Y/white[1], Z/white[2]
	if yr > Epsilon {
		L = 116*math.Cbrt(yr) - 16
	} else {
		L = Kappa * yr
	}
	fx, fy, fz := labF(xr), labF(yr), labF(zr)
	return L, 500 * (fx - fy), 200 * (fy - fz)
}

// LABToXYZ converts CIELAB to CIEXYZ relative to the given white point.
func LABToXYZ(L, A, B float64, white Vec3) (X, Y, Z float64) {
	var yr float64
	if L > Kappa*Epsilon {
		yr = cube((L + 16) / 116)
	} else {
		yr = L / Kappa
	}
	fy := labF(yr)
	fx := fy + A/500
	fz := fy - B/200
	return white[0] * labFinv(fx), white[1] * yr, white[2] * labFinv(fz)
}

// NormalizeHue brings an angle in degrees into [0,360) by repeatedly adding
// or subtracting 360. Angles beyond a hundred turns are first reduced with
// math.Mod, subtraction alone would not terminate for them in reasonable
// time, or at all once 360 is below their precision. Non finite angles
// become NaN.
func NormalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return math.NaN()
	}
	if math.Abs(h) > 36000 {
		h = math.Mod(h, 360)
	}
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

// ToPolar converts a pair of cartesian opponent coordinates (U,V or A,B)
// into chroma and hue in degrees.
func ToPolar(a, b float64) (c, h float64) {
	c = math.Sqrt(a*a + b*b)
	h = NormalizeHue(math.Atan2(b, a) * 180 / math.Pi)
	return
}

// FromPolar is the inverse of ToPolar.
func FromPolar(c, h float64) (a, b float64) {
	r := h * math.Pi / 180
	return c * math.Cos(r), c * math.Sin(r)
}

func anyNaN(v ...float64) bool {
	for _, x := range v {
		if math.IsNaN(x) {
			return true
		}
	}
	return false
}

func nan3() (float64, float64, float64) { return math.NaN(), math.NaN(), math.NaN() }

func minmax(r, g, b float64) (lo, hi float64) {
	return min(r, g, b), max(r, g, b)
}

// hue of an RGB triplet, shared by HSV and HLS. Requires lo != hi.
func rgbHue(r, g, b, lo, hi float64) (h float64) {
	delta := hi - lo
	switch hi {
	case r:
		h = (g - b) / delta
	case g:
		h = 2 + (b-r)/delta
	default:
		h = 4 + (r-g)/delta
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return
}

// RGBToHSV converts an RGB triplet to hue, saturation and value. Grays get
// H = 0 and S = 0.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	if anyNaN(r, g, b) {
		return nan3()
	}
	lo, hi := minmax(r, g, b)
	if lo == hi {
		return 0, 0, hi
	}
	return rgbHue(r, g, b, lo, hi), (hi - lo) / hi, hi
}

// HSVToRGB is the inverse of RGBToHSV. The hue may be any angle.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	if anyNaN(h, s, v) {
		return nan3()
	}
	h = NormalizeHue(h)
	if math.IsNaN(h) {
		return nan3()
	}
	h /= 60
	i := math.Floor(h)
	f := h - i
	if int(i)%2 == 0 {
		f = 1 - f
	}
	m := v * (1 - s)
	n := v * (1 - s*f)
	switch int(i) {
	case 0, 6:
		return v, n, m
	case 1:
		return n, v, m
	case 2:
		return m, v, n
	case 3:
		return m, n, v
	case 4:
		return n, m, v
	default:
		return v, m, n
	}
}

// RGBToHLS converts an RGB triplet to hue, lightness and saturation. Grays
// get H = 0 and S = 0.
func RGBToHLS(r, g, b float64) (h, l, s float64) {
	if anyNaN(r, g, b) {
		return nan3()
	}
	lo, hi := minmax(r, g, b)
	l = (hi + lo) / 2
	if lo == hi {
		return 0, l, 0
	}
	if l <= 0.5 {
		s = (hi - lo) / (hi + lo)
	} else {
		s = (hi - lo) / (2 - hi - lo)
	}
	return rgbHue(r, g, b, lo, hi), l, s
}

func qtrans(q1, q2, hue float64) float64 {
	if hue > 360 {
		hue -= 360
	}
	if hue < 0 {
		hue += 360
	}
	switch {
	case hue < 60:
		return q1 + (q2-q1)*hue/60
	case hue < 180:
		return q2
	case hue < 240:
		return q1 + (q2-q1)*(240-hue)/60
	}
	return q1
}

// HLSToRGB is the inverse of RGBToHLS. The hue may be any angle.
func HLSToRGB(h, l, s float64) (r, g, b float64) {
	if anyNaN(h, l, s) {
		return nan3()
	}
	if s == 0 {
		return l, l, l
	}
	h = NormalizeHue(h)
	if math.IsNaN(h) {
		return nan3()
	}
	var p2 float64
	if l <= 0.5 {
		p2 = l * (1 + s)
	} else {
		p2 = l + s - l*s
	}
	p1 := 2*l - p2
	return qtrans(p1, p2, h+120), qtrans(p1, p2, h), qtrans(p1, p2, h-120)
}

// Matrix & vector utilities

func (m Mat3) Mul(b Mat3) Mat3 {
	var out Mat3
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += m[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

func (m Mat3) MulVec(v Vec3) (x, y, z float64) {
	x = m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2]
	y = m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2]
	z = m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2]
	return
}

func (m Mat3) Transpose() (ans Mat3) {
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = m[j][i]
		}
	}
	return
}

// Lerp interpolates element wise between a (w = 0) and b (w = 1).
func Lerp(a, b Mat3, w float64) (ans Mat3) {
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = (1-w)*a[i][j] + w*b[i][j]
		}
	}
	return
}

// Clamp01 clamps value to [0,1]
func Clamp01(x float64) float64 {
	return max(0, min(x, 1))
}

// FixupTolerance is how far outside [0,1] an encoded channel may stray
// and still be snapped onto the boundary: half of one 8-bit step.
const FixupTolerance = 1.0 / 510.0

// Fixup handles a single channel that should lie in [0,1]. With fixup,
// it is clamped. Without, it is snapped onto the boundary if within
// FixupTolerance and becomes NaN otherwise. Non finite input is NaN.
func Fixup(x float64, fixup bool) float64 {
	switch {
	case math.IsNaN(x), math.IsInf(x, 0):
		return math.NaN()
	case fixup:
		return Clamp01(x)
	case x < -FixupTolerance, x > 1+FixupTolerance:
		return math.NaN()
	}
	return Clamp01(x)
}

// FixupRGB applies Fixup to a whole color. If any channel is invalid the
// whole color is.
func FixupRGB(r, g, b float64, fixup bool) (float64, float64, float64) {
	r, g, b = Fixup(r, fixup), Fixup(g, fixup), Fixup(b, fixup)
	if anyNaN(r, g, b) {
		return nan3()
	}
	return r, g, b
}
