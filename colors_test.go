package colorspace

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func TestNew(t *testing.T) {
	c, err := New(SRGB, []float64{1, 0}, []float64{0, 0.5}, []float64{0, 1})
	require.NoError(t, err)
	require.Equal(t, SRGB, c.Space())
	require.Equal(t, 2, c.Len())
	assert.Equal(t, []float64{0, 0.5}, c.MustGet("G"))
	assert.False(t, c.HasAlpha())

	_, err = New(SRGB, []float64{1, 0}, []float64{0}, []float64{0, 1})
	assert.ErrorIs(t, err, ErrLengthMismatch)
	_, err = New(SRGB, []float64{1.2}, []float64{0}, []float64{0})
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = New(HSV, []float64{720}, []float64{1.5}, []float64{0})
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = New(HLS, []float64{720}, []float64{0.5}, []float64{0.5})
	assert.NoError(t, err, "hue is not bounded")
	_, err = New(HCL, []float64{-30}, []float64{500}, []float64{120})
	assert.NoError(t, err)
	_, err = New(HEX, nil, nil, nil)
	assert.ErrorIs(t, err, ErrUnknownSpace)
	_, err = NewWithAlpha(SRGB, []float64{1}, []float64{0}, []float64{0}, []float64{1, 1})
	assert.ErrorIs(t, err, ErrLengthMismatch)
	_, err = NewWithAlpha(SRGB, []float64{1}, []float64{0}, []float64{0}, []float64{-0.1})
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = SRGBColors([]float64{math.NaN()}, []float64{0}, []float64{0})
	assert.NoError(t, err, "NaN marks a missing color")
}

func TestConstructorsCopy(t *testing.T) {
	h := []float64{10, 20}
	c, err := HCLColors(h, []float64{30, 40}, []float64{50, 60})
	require.NoError(t, err)
	h[0] = 99
	assert.Equal(t, []float64{10, 20}, c.MustGet("H"))
	got := c.MustGet("H")
	got[1] = 99
	assert.Equal(t, []float64{10, 20}, c.MustGet("H"))
}

func TestGetSet(t *testing.T) {
	c, err := HSVColors([]float64{0, 120}, []float64{1, 1}, []float64{1, 1})
	require.NoError(t, err)
	_, err = c.Get("L")
	assert.ErrorIs(t, err, ErrUnknownDimension)
	require.NoError(t, c.Set("S", []float64{0.5, 0.25}))
	assert.Equal(t, []float64{0.5, 0.25}, c.MustGet("S"))
	assert.ErrorIs(t, c.Set("S", []float64{0.5}), ErrLengthMismatch)
	assert.ErrorIs(t, c.Set("V", []float64{0.5, 2}), ErrOutOfRange)
	assert.ErrorIs(t, c.Set("Q", []float64{0.5, 2}), ErrUnknownDimension)
	assert.Equal(t, []float64{1, 1}, c.MustGet("V"), "failed Set must not modify")
	_, err = c.Hex()
	assert.ErrorIs(t, err, ErrUnknownDimension)

	hx := FromHex([]string{"#ff0000", "#00FF00"})
	assert.ErrorIs(t, hx.SetHex([]string{"#000000"}), ErrLengthMismatch)
	require.NoError(t, hx.SetHex([]string{"#abcdef", "nope"}))
	h, err := hx.Hex()
	require.NoError(t, err)
	assert.Equal(t, []string{"#ABCDEF", ""}, h)
	_, err = hx.Get("R")
	assert.ErrorIs(t, err, ErrUnknownDimension)
}

func TestAlpha(t *testing.T) {
	c := FromHex([]string{"#FF000080", "#00FF00", "garbage"})
	require.True(t, c.HasAlpha())
	a, err := c.Alpha()
	require.NoError(t, err)
	assert.Equal(t, []float64{128. / 255, 1, 1}, a)
	h, err := c.Hex()
	require.NoError(t, err)
	assert.Equal(t, []string{"#FF0000", "#00FF00", ""}, h)
	cols, err := c.Colors(false, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"#FF000080", "#00FF00", ""}, cols)

	require.NoError(t, c.SetAlpha(0.5))
	cols, err = c.Colors(false, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"#FF000080", "#00FF0080", ""}, cols)
	assert.ErrorIs(t, c.SetAlpha(0.5, 1), ErrLengthMismatch)
	assert.ErrorIs(t, c.SetAlpha(1, 1, 2), ErrOutOfRange)
	c.DropAlpha()
	_, err = c.Alpha()
	assert.ErrorIs(t, err, ErrNoAlpha)

	c = FromHex([]string{"#FF0000"})
	assert.False(t, c.HasAlpha())
}

func TestWhitePointAndGamma(t *testing.T) {
	c := FromHex([]string{"#808080"})
	assert.Equal(t, [3]float64{2.4, 2.4, 2.4}, c.Gamma())
	assert.ErrorIs(t, c.SetGamma(1, 2), ErrLengthMismatch)
	assert.ErrorIs(t, c.SetGamma(0), ErrOutOfRange)
	require.NoError(t, c.SetGamma(2.2))
	assert.Equal(t, [3]float64{2.2, 2.2, 2.2}, c.Gamma())
	assert.ErrorIs(t, c.SetWhitePoint(-1, 100, 100), ErrOutOfRange)
	require.NoError(t, c.SetWhitePoint(96.422, 100, 82.521))
	assert.Equal(t, 82.521, c.WhitePoint()[2])

	other := FromHex([]string{"#808080"})
	assert.Equal(t, 108.883, other.WhitePoint()[2], "white point is per instance")
	require.NoError(t, c.To(RGB, false))
	require.NoError(t, other.To(RGB, false))
	assert.NotEqual(t, c.MustGet("R"), other.MustGet("R"), "gamma changes the transfer function")
}

func TestCloneReverse(t *testing.T) {
	c := FromHex([]string{"#FF0000", "#00FF00", "#0000FF"})
	d := c.Clone()
	require.NoError(t, d.To(HCL, false))
	assert.Equal(t, HEX, c.Space())
	assert.Equal(t, HCL, d.Space())
	d.Reverse()
	cols, err := d.Colors(true, false)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"#0000FF", "#00FF00", "#FF0000"}, cols); diff != "" {
		t.Fatalf("Unexpected reversed colors (-want +got):\n%s", diff)
	}
	cols, err = d.Colors(true, true)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"#FF0000", "#00FF00", "#0000FF"}, cols); diff != "" {
		t.Fatalf("Unexpected colors (-want +got):\n%s", diff)
	}
	assert.Equal(t, HCL, d.Space(), "Colors must not convert the receiver")
}

func TestConversionErrorUnwrap(t *testing.T) {
	err := error(&ConversionError{Op: "to", From: HSV, To: HCL, Err: ErrAmbiguousConversion})
	assert.True(t, errors.Is(err, ErrAmbiguousConversion))
	assert.Equal(t, "to: colorspace: ambiguous conversion from HSV to polarLUV", err.Error())
}
