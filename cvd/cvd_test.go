package cvd

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovidgoyal/colorspace"
	"github.com/kovidgoyal/colorspace/colorconv"
)

var _ = fmt.Print

var samples = []string{"#FF0000", "#00FF00", "#0000FF", "#F5A623", "#4B5E8A", "#FFFFFF", "#000000", "#808080"}

func TestRowSums(t *testing.T) {
	for _, kind := range []Kind{Protan, Deutan, Tritan} {
		for s := range 11 {
			m, err := Matrix(kind, float64(s)/10)
			require.NoError(t, err)
			for r := range 3 {
				assert.InDelta(t, 1, m[r][0]+m[r][1]+m[r][2], 1e-5, "%s %d row %d", kind, s, r)
			}
		}
	}
}

func TestMatrixInterpolation(t *testing.T) {
	m, err := Matrix(Deutan, 0.5)
	require.NoError(t, err)
	assert.Equal(t, deutan_matrices[5], m)
	m, err = Matrix(Tritan, 1)
	require.NoError(t, err)
	assert.Equal(t, tritan_matrices[10], m)
	m, err = Matrix(Protan, 0)
	require.NoError(t, err)
	assert.Equal(t, colorconv.Identity, m)

	m, err = Matrix(Protan, 0.55)
	require.NoError(t, err)
	want := colorconv.Lerp(protan_matrices[5], protan_matrices[6], 0.5)
	if diff := cmp.Diff(want, m, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("Unexpected interpolated matrix (-want +got):\n%s", diff)
	}
	for _, bad := range []float64{-0.1, 1.01, math.NaN()} {
		_, err = Matrix(Protan, bad)
		assert.ErrorIs(t, err, colorspace.ErrOutOfRange)
	}
	_, err = Matrix(Kind(17), 0.5)
	assert.Error(t, err)
}

func TestSeverityZeroIsIdentity(t *testing.T) {
	for _, kind := range []Kind{Protan, Deutan, Tritan} {
		for _, linear := range []bool{true, false} {
			cols, err := simulate_hex(samples, kind, 0, linear)
			require.NoError(t, err)
			if diff := cmp.Diff(samples, cols); diff != "" {
				t.Fatalf("%s changed colors at severity 0 (-want +got):\n%s", kind, diff)
			}
			in := colorspace.FromHex(samples)
			require.NoError(t, in.To(colorspace.HCL, false))
			out, err := Simulate(in, kind, 0, linear)
			require.NoError(t, err)
			require.Equal(t, colorspace.HCL, out.Space())
			for _, d := range []string{"C", "L"} {
				a, b := in.MustGet(d), out.MustGet(d)
				for i := range a {
					require.InDelta(t, a[i], b[i], 1e-6, "%s %s[%d]", kind, d, i)
				}
			}
			require.NoError(t, out.Set("C", make([]float64, out.Len())))
			assert.NotEqual(t, 0.0, in.MustGet("C")[0], "input must not be modified")
		}
	}
}

func TestSeverityZeroOutOfGamut(t *testing.T) {
	// a saturated HCL red whose linear RGB has tiny negative residues
	in, err := colorspace.HCLColors([]float64{12.173946}, []float64{179.040762}, []float64{53.240588})
	require.NoError(t, err)
	for _, kind := range []Kind{Protan, Deutan, Tritan} {
		for _, linear := range []bool{true, false} {
			out, err := Simulate(in, kind, 0, linear)
			require.NoError(t, err)
			for _, d := range []string{"H", "C", "L"} {
				assert.Equal(t, in.MustGet(d), out.MustGet(d), "%s linear=%v %s", kind, linear, d)
			}
		}
	}
	out, err := Simulate(in, Protan, 0.05, true)
	require.NoError(t, err)
	assert.Equal(t, colorspace.HCL, out.Space())
}

func TestProtanGreen(t *testing.T) {
	// the second column of the severity 1 matrix, clamped
	c, err := colorspace.SRGBColors([]float64{0}, []float64{1}, []float64{0})
	require.NoError(t, err)
	out, err := Simulate(c, Protan, 1, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, out.MustGet("R"))
	assert.InDelta(t, 0.786281, out.MustGet("G")[0], 1e-12)
	assert.Equal(t, []float64{0}, out.MustGet("B"))

	cols, err := ProtanHex([]string{"#00FF00"}, 1, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"#FFC900"}, cols)
	cols, err = ProtanHex([]string{"#00FF00"}, 1, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"#FFE500"}, cols)
	cols, err = DeutanHex([]string{"#FF0000"}, 1, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"#A39000"}, cols)
	cols, err = TritanHex([]string{"#FFFFFF", "#000000"}, 0.7, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"#FFFFFF", "#000000"}, cols)
}

func TestSimulateKeepsAlphaAndMissing(t *testing.T) {
	cols, err := DeutanHex([]string{"#FF000080", "junk", "#FFFFFF"}, 0.5, true)
	require.NoError(t, err)
	assert.Equal(t, "", cols[1])
	assert.Equal(t, "80", cols[0][7:])
	assert.Equal(t, "#FFFFFF", cols[2])
	_, err = ProtanHex(samples, 2, true)
	assert.ErrorIs(t, err, colorspace.ErrOutOfRange)
}

func TestDesaturate(t *testing.T) {
	cols, err := DesaturateHex(samples, 0)
	require.NoError(t, err)
	if diff := cmp.Diff(samples, cols); diff != "" {
		t.Fatalf("Desaturating by zero changed colors (-want +got):\n%s", diff)
	}
	cols, err = DesaturateHex([]string{"#FF0000"}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []string{"#D05959"}, cols)
	cols, err = DesaturateHex([]string{"#FF0000"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"#7F7F7F"}, cols)

	c := colorspace.FromHex(samples)
	require.NoError(t, c.To(colorspace.HCL, false))
	out, err := Desaturate(c, 1)
	require.NoError(t, err)
	for i, v := range out.MustGet("C") {
		assert.Equal(t, 0.0, v, samples[i])
	}
	assert.NotEqual(t, 0.0, c.MustGet("C")[0], "input must not be modified")

	h, err := colorspace.HSVColors([]float64{0, 120}, []float64{1, 0.5}, []float64{1, 1})
	require.NoError(t, err)
	out, err = Desaturate(h, 1)
	require.NoError(t, err)
	require.Equal(t, colorspace.HSV, out.Space())
	for _, s := range out.MustGet("S") {
		assert.InDelta(t, 0, s, 1e-3)
	}
	_, err = Desaturate(h, -0.5)
	assert.ErrorIs(t, err, colorspace.ErrOutOfRange)
}

func TestParseKind(t *testing.T) {
	for name, want := range map[string]Kind{"protan": Protan, "Protanopia": Protan, "deuteranomaly": Deutan, " tritan ": Tritan} {
		k, err := ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, want, k)
	}
	_, err := ParseKind("achromat")
	assert.Error(t, err)
}
