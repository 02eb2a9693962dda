package colorimage

import (
	"image"

	"github.com/kovidgoyal/colorspace"
	"github.com/kovidgoyal/colorspace/cvd"
)

// SimulateCVD returns a copy of img as seen with the specified color vision
// deficiency.
func SimulateCVD(img image.Image, kind cvd.Kind, severity float64, linear bool) (*image.NRGBA, error) {
	if _, err := cvd.Matrix(kind, severity); err != nil {
		return nil, err
	}
	return Apply(img, func(c *colorspace.Colors) (*colorspace.Colors, error) {
		return cvd.Simulate(c, kind, severity, linear)
	})
}

// Desaturate returns a copy of img with its HCL chroma reduced by the
// fraction amount.
func Desaturate(img image.Image, amount float64) (*image.NRGBA, error) {
	return Apply(img, func(c *colorspace.Colors) (*colorspace.Colors, error) {
		return cvd.Desaturate(c, amount)
	})
}
