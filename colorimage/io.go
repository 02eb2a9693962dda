package colorimage

import (
	"errors"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/kovidgoyal/colorspace/types"
)

type fileSystem interface {
	Create(string) (io.WriteCloser, error)
	Open(string) (io.ReadCloser, error)
}

type localFS struct{}

func (localFS) Create(name string) (io.WriteCloser, error) { return os.Create(name) }
func (localFS) Open(name string) (io.ReadCloser, error)    { return os.Open(name) }

var fs fileSystem = localFS{}

type Format = types.Format

// ErrUnsupportedFormat means the given image format is not supported.
var ErrUnsupportedFormat = errors.New("colorimage: unsupported image format")

// FormatFromFilename parses the image format from the filename extension.
func FormatFromFilename(filename string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if f, ok := types.FormatExts[ext]; ok {
		return f, nil
	}
	return types.UNKNOWN, ErrUnsupportedFormat
}

// Decode reads an image from r. JPEG, PNG, GIF, TIFF, WEBP and BMP are
// supported. For animated images only the first frame is returned.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	return img, err
}

// Open loads an image from file.
func Open(filename string) (image.Image, error) {
	file, err := fs.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Decode(file)
}

const DefaultJPEGQuality = 95

// opaque_rgba returns the color channels of img with alpha dropped, not
// premultiplied, for JPEG output.
func opaque_rgba(img *image.NRGBA) *image.RGBA {
	if img.Opaque() {
		return &image.RGBA{Pix: img.Pix, Stride: img.Stride, Rect: img.Rect}
	}
	ans := image.NewRGBA(img.Rect)
	w := img.Rect.Dx() * 4
	for y := 0; y < img.Rect.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+w]
		dest := ans.Pix[y*ans.Stride : y*ans.Stride+w]
		copy(dest, src)
		for x := 3; x < w; x += 4 {
			dest[x] = 0xff
		}
	}
	slog.Warn("dropping the alpha channel for JPEG output")
	return ans
}

// Encode writes img to w in the specified format. quality is only used for
// JPEG, values outside 1 to 100 mean DefaultJPEGQuality. WEBP cannot be
// written.
func Encode(w io.Writer, img image.Image, format Format, quality int) error {
	switch format {
	case types.JPEG:
		if quality < 1 || quality > 100 {
			quality = DefaultJPEGQuality
		}
		if nrgba, ok := img.(*image.NRGBA); ok {
			img = opaque_rgba(nrgba)
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case types.PNG:
		return png.Encode(w, img)
	case types.GIF:
		return gif.Encode(w, img, nil)
	case types.TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case types.BMP:
		return bmp.Encode(w, img)
	}
	return ErrUnsupportedFormat
}

// Save writes img to filename, in the format given by its extension. See
// Encode for quality.
func Save(img image.Image, filename string, quality int) (err error) {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	if f == types.WEBP {
		return ErrUnsupportedFormat
	}
	file, err := fs.Create(filename)
	if err != nil {
		return err
	}
	err = Encode(file, img, f, quality)
	errc := file.Close()
	if err == nil {
		err = errc
	}
	return err
}
