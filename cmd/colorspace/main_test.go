package main

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovidgoyal/colorspace"
	"github.com/kovidgoyal/colorspace/colorimage"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := new_root_cmd(&stderr)
	cmd.SetOut(&stdout)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func lines(s string) []string { return strings.Fields(s) }

func TestPaletteCommand(t *testing.T) {
	out, err := run(t, "palette", "Blues 2", "-n", "5")
	require.NoError(t, err)
	assert.Equal(t, []string{"#023FA5", "#6A76B2", "#A1A6C8", "#CBCDD9", "#E2E2E2"}, lines(out))

	out, err = run(t, "palette", "blues2", "-n", "5", "--rev", "--raw")
	require.NoError(t, err)
	assert.Equal(t, "#E2E2E2 #CBCDD9 #A1A6C8 #6A76B2 #023FA5\n", out)

	out, err = run(t, "palette", "--method", "qualitative_hcl", "--hue", "0,360", "--chroma", "80", "--luminance", "60", "-n", "4")
	require.NoError(t, err)
	assert.Len(t, lines(out), 4)

	_, err = run(t, "palette", "no such palette")
	assert.Error(t, err)
	_, err = run(t, "palette")
	assert.Error(t, err)
	_, err = run(t, "palette", "Blues 2", "-n", "1")
	assert.Error(t, err)
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list", "--type", "divergingx")
	require.NoError(t, err)
	assert.Contains(t, out, "Earth")
	assert.NotContains(t, out, "Blues 2")
	_, err = run(t, "list", "--type", "nope")
	assert.Error(t, err)
}

func TestPresetsFlag(t *testing.T) {
	p := filepath.Join(t.TempDir(), "mine.yaml")
	require.NoError(t, os.WriteFile(p, []byte("palettes:\n  - {name: Mine, type: sequential, params: {h1: 260, c1: 80, l1: 30, l2: 90}}\n"), 0o600))
	out, err := run(t, "--presets", p, "list", "--type", "sequential")
	require.NoError(t, err)
	assert.Contains(t, out, "Mine")
	out, err = run(t, "--presets", p, "palette", "mine", "-n", "3")
	require.NoError(t, err)
	assert.Len(t, lines(out), 3)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func TestConvertCommand(t *testing.T) {
	out, err := run(t, "convert", "#FF0000", "junk")
	require.NoError(t, err)
	got := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, got, 2)
	assert.Equal(t, "H=12.1739 C=179.0408 L=53.2406", got[0])
	assert.Equal(t, "NA", got[1])

	out, err = run(t, "convert", "--from", "HSV", "--to", "hex", "0,1,1", "120,1,1")
	require.NoError(t, err)
	assert.Equal(t, []string{"#FF0000", "#00FF00"}, lines(out))

	_, err = run(t, "convert", "--from", "HSV", "--to", "HCL", "0,1,1")
	assert.ErrorIs(t, err, colorspace.ErrAmbiguousConversion)
	_, err = run(t, "convert", "--from", "sRGB", "1,2")
	assert.Error(t, err)
	_, err = run(t, "convert", "--to", "nowhere", "#000000")
	assert.Error(t, err)
}

func TestCVDCommands(t *testing.T) {
	out, err := run(t, "cvd", "-k", "protan", "#00FF00")
	require.NoError(t, err)
	assert.Equal(t, []string{"#FFE500"}, lines(out))
	out, err = run(t, "desaturate", "-a", "0.5", "#FF0000")
	require.NoError(t, err)
	assert.Equal(t, []string{"#D05959"}, lines(out))
	_, err = run(t, "cvd", "-k", "achromat", "#00FF00")
	assert.Error(t, err)

	out, err = run(t, "contrast", "#000000", "#FFFFFF", "#000000")
	require.NoError(t, err)
	assert.Equal(t, "#000000 #FFFFFF 21.00\n#000000 #000000 1.00\n", out)
}

func TestImageCommand(t *testing.T) {
	dir := t.TempDir()
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{0, 255, 0, 255})
	src.SetNRGBA(1, 0, color.NRGBA{255, 0, 0, 255})
	in, dest := filepath.Join(dir, "in.png"), filepath.Join(dir, "out.png")
	require.NoError(t, colorimage.Save(src, in, 0))
	_, err := run(t, "image", "-k", "protan", in, dest)
	require.NoError(t, err)
	img, err := colorimage.Open(dest)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0xFF, 0xE5, 0x00, 255}, color.NRGBAModel.Convert(img.At(0, 0)))

	_, err = run(t, "image", "--desaturate", "1", in, dest)
	require.NoError(t, err)
	img, err = colorimage.Open(dest)
	require.NoError(t, err)
	c := color.NRGBAModel.Convert(img.At(1, 0)).(color.NRGBA)
	assert.Equal(t, c.R, c.G)
	assert.Equal(t, c.G, c.B)

	_, err = run(t, "image", in, dest)
	assert.Error(t, err)
}
