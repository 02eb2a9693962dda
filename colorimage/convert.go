// Package colorimage applies colorspace transforms to the pixels of images.
package colorimage

import (
	"fmt"
	"image"
	"math"

	"github.com/kovidgoyal/go-parallel"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/kovidgoyal/colorspace"
)

var _ = fmt.Print

// Transform maps a row of sRGB colors to a new set of colors of the same
// length, in any space.
type Transform func(*colorspace.Colors) (*colorspace.Colors, error)

type row_buffers struct {
	r, g, b []float64
	alpha   []uint8
}

func new_row_buffers(width int) *row_buffers {
	return &row_buffers{r: make([]float64, width), g: make([]float64, width), b: make([]float64, width), alpha: make([]uint8, width)}
}

// apply runs the transform over one row and writes the result into drow
func (self *row_buffers) apply(tr Transform, drow []uint8) error {
	in, err := colorspace.SRGBColors(self.r, self.g, self.b)
	if err != nil {
		return err
	}
	out, err := tr(in)
	if err != nil {
		return err
	}
	if out.Len() != len(self.r) {
		return fmt.Errorf("transform returned %d colors for %d pixels: %w", out.Len(), len(self.r), colorspace.ErrLengthMismatch)
	}
	if err = out.To(colorspace.SRGB, true); err != nil {
		return err
	}
	r, g, b := out.MustGet("R"), out.MustGet("G"), out.MustGet("B")
	for x := range r {
		s := drow[4*x : 4*x+4 : 4*x+4]
		s[3] = self.alpha[x]
		if self.alpha[x] == 0 || math.IsNaN(r[x]) {
			continue
		}
		s[0], s[1], s[2] = colorful.Color{R: r[x], G: g[x], B: b[x]}.Clamped().RGB255()
	}
	return nil
}

// Apply returns a new image with every pixel of img passed through tr, one
// row at a time. Alpha is preserved. Fully transparent pixels and pixels the
// transform maps to missing colors keep their original values. Rows are
// processed in parallel and the first error encountered is returned.
func Apply(img image.Image, tr Transform) (*image.NRGBA, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	ans := image.NewNRGBA(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return ans, nil
	}
	errs := make([]error, height)
	var load func(y int, buf *row_buffers, drow []uint8)
	switch src := img.(type) {
	case *image.NRGBA:
		load = func(y int, buf *row_buffers, drow []uint8) {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			_ = row[4*(width-1)+3]
			copy(drow, row[:4*width])
			for x := range width {
				s := row[4*x : 4*x+4 : 4*x+4]
				buf.r[x], buf.g[x], buf.b[x] = float64(s[0])/255, float64(s[1])/255, float64(s[2])/255
				buf.alpha[x] = s[3]
			}
		}
	default:
		load = func(y int, buf *row_buffers, drow []uint8) {
			for x := range width {
				c := img.At(b.Min.X+x, b.Min.Y+y)
				_, _, _, a := c.RGBA()
				buf.alpha[x] = uint8(a >> 8)
				cf, ok := colorful.MakeColor(c)
				if !ok {
					buf.r[x], buf.g[x], buf.b[x] = 0, 0, 0
					continue
				}
				cf = cf.Clamped()
				buf.r[x], buf.g[x], buf.b[x] = cf.R, cf.G, cf.B
				s := drow[4*x : 4*x+4 : 4*x+4]
				s[0], s[1], s[2] = cf.RGB255()
				s[3] = buf.alpha[x]
			}
		}
	}
	f := func(start, limit int) {
		buf := new_row_buffers(width)
		for y := start; y < limit; y++ {
			drow := ans.Pix[ans.Stride*y : ans.Stride*y+4*width]
			load(y, buf, drow)
			errs[y] = buf.apply(tr, drow)
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, f, 0, height); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return ans, nil
}
