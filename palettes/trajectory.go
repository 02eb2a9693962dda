package palettes

import (
	"math"
)

// Seq returns n values evenly spaced from start to end inclusive.
func Seq(start, end float64, n int) []float64 {
	ans := make([]float64, n)
	switch n {
	case 0:
	case 1:
		ans[0] = start
	default:
		step := (end - start) / float64(n-1)
		for i := range ans {
			ans[i] = start + float64(i)*step
		}
		ans[n-1] = end
	}
	return ans
}

// ChromaTrajectory is the chroma at position i in [0,1] of a sequential
// palette, with c1 at i = 1 and c2 at i = 0. Without cmax (NaN) chroma
// follows c2 - (c2-c1)*i^p. With cmax the trajectory is triangular: it rises
// from c2 to cmax and then falls to c1, with the peak placed where the two
// segments have the same slope. If the peak is not strictly inside (0,1) the
// linear form is used.
func ChromaTrajectory(i, p, c1, c2, cmax float64) float64 {
	if math.IsNaN(cmax) {
		return c2 - (c2-c1)*math.Pow(i, p)
	}
	j := 1 / (1 + math.Abs(cmax-c1)/math.Abs(cmax-c2))
	if math.IsNaN(j) || j <= 0 || j >= 1 {
		return c2 - (c2-c1)*math.Pow(i, p)
	}
	if i <= j {
		return c2 - (c2-cmax)*math.Pow(i/j, p)
	}
	return cmax - (cmax-c1)*math.Pow((i-j)/(1-j), p)
}

// LuminanceTrajectory is the luminance at position i in [0,1], l1 at i = 1
// and l2 at i = 0.
func LuminanceTrajectory(i, p, l1, l2 float64) float64 {
	return l2 - (l2-l1)*math.Pow(i, p)
}
