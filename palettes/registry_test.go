package palettes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovidgoyal/colorspace/colorconv"
)

func TestDefaultRegistry(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	again, _ := Default()
	require.Same(t, r, again)
	require.Greater(t, r.Len(), 40)
	for _, rec := range r.Records() {
		p, err := rec.Palette()
		require.NoError(t, err, rec.Name)
		assert.Equal(t, rec.Type, p.Type(), rec.Name)
		for _, n := range []int{2, 7, 10} {
			cols, err := p.Colors(n)
			require.NoError(t, err, rec.Name)
			require.Len(t, cols, n)
			for _, c := range cols {
				require.True(t, colorconv.IsHex(c), "%s produced %q", rec.Name, c)
			}
		}
	}
	assert.Contains(t, r.Names(DIVERGINGX), "Earth")
	assert.NotContains(t, r.Names(SEQUENTIAL), "Earth")
}

func TestRegistryLookup(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	for _, name := range []string{"Blues 2", "blues2", " BLUES  2 "} {
		rec, err := r.Get(name)
		require.NoError(t, err)
		assert.Equal(t, "Blues 2", rec.Name)
	}
	_, err = r.Get("no such palette")
	assert.ErrorIs(t, err, ErrUnknownPalette)

	p, err := r.Palette("Blues 2")
	require.NoError(t, err)
	cols, err := p.Colors(5)
	require.NoError(t, err)
	assert.Equal(t, []string{"#023FA5", "#6A76B2", "#A1A6C8", "#CBCDD9", "#E2E2E2"}, cols)
	assert.Equal(t, "Blues 2", p.Name())
	assert.Equal(t, "sequential_hcl", p.Method())

	// qualitative presets spread hues by n
	p, err = r.Palette("Dark 3")
	require.NoError(t, err)
	cols, err = p.Colors(4)
	require.NoError(t, err)
	assert.Equal(t, []string{"#E16A86", "#909800", "#00AD9A", "#9183E6"}, cols)
}

func TestRegistryOverridesDoNotMutate(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	before, err := r.Get("Blue-Red")
	require.NoError(t, err)
	p, err := r.Palette("Blue-Red", H(0, 260), L(20, 95))
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Params()["h1"].Float())
	after, err := r.Get("Blue-Red")
	require.NoError(t, err)
	if diff := cmp.Diff(before.Params["h1"].String(), after.Params["h1"].String()); diff != "" {
		t.Fatalf("registry modified (-want +got):\n%s", diff)
	}
	assert.Equal(t, 260.0, after.Params["h1"].Float())
	assert.Equal(t, 30.0, after.Params["l1"].Float())

	rec, err := r.Get("Blue-Red")
	require.NoError(t, err)
	rec.Params["h1"] = Float(1)
	again, _ := r.Get("Blue-Red")
	assert.Equal(t, 260.0, again.Params["h1"].Float(), "Get must return a copy")
}

const user_toml = `
[[palettes]]
name = "Ocean"
type = "sequential"
params = { h1 = 200, h2 = 240, c1 = 60, c2 = 5, l1 = 30, l2 = 95, p1 = 1.2 }

[[palettes]]
name = "Blues 2"
type = "qualitative"
params = { h1 = 200, h2 = "fn:qualitative_h2", c1 = 40, l1 = 70, fixup = false }
`

const user_yaml = `
palettes:
  - name: Spread
    type: qualitative
    params: {h1: 15, c1: 50, l1: 65}
  - name: Rainbow Half
    type: qualitative
    method: rainbow_hsv
    params: {start: 0, end: 0.5}
`

func TestLoadRegistryFile(t *testing.T) {
	dir := t.TempDir()
	tp := filepath.Join(dir, "user.toml")
	require.NoError(t, os.WriteFile(tp, []byte(user_toml), 0o600))
	user, err := LoadRegistryFile(tp)
	require.NoError(t, err)
	require.Equal(t, []string{"Ocean", "Blues 2"}, user.Names())
	rec, err := user.Get("ocean")
	require.NoError(t, err)
	assert.Equal(t, SEQUENTIAL, rec.Type)
	assert.Equal(t, INT, rec.Params["h1"].Kind())
	assert.Equal(t, FLOAT, rec.Params["p1"].Kind())

	yp := filepath.Join(dir, "user.yml")
	require.NoError(t, os.WriteFile(yp, []byte(user_yaml), 0o600))
	y, err := LoadRegistryFile(yp)
	require.NoError(t, err)
	p, err := y.Palette("rainbow half")
	require.NoError(t, err)
	cols, err := p.Colors(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"#FF0000", "#80FF00", "#00FFFF"}, cols)

	def, err := Default()
	require.NoError(t, err)
	merged := def.Merge(user)
	assert.Equal(t, def.Len()+1, merged.Len())
	rec, err = merged.Get("Blues 2")
	require.NoError(t, err)
	assert.Equal(t, QUALITATIVE, rec.Type)
	orig, err := def.Get("Blues 2")
	require.NoError(t, err)
	assert.Equal(t, SEQUENTIAL, orig.Type)

	_, err = LoadRegistryFile(filepath.Join(dir, "user.json"))
	assert.Error(t, err)
	_, err = LoadRegistry([]byte("palettes:\n  - {name: X, type: sequential, params: {h1: 1}}\n"), YAML)
	assert.ErrorIs(t, err, ErrMissingParameter)
	_, err = LoadRegistry([]byte("palettes:\n  - {name: X, type: sequential, params: {h1: \"fn:nope\"}}\n"), YAML)
	assert.ErrorIs(t, err, ErrBadParameter)
	_, err = LoadRegistry([]byte("palettes:\n  - {name: X, type: nope}\n"), YAML)
	assert.Error(t, err)
	_, err = LoadRegistry([]byte("palettes:\n  - {name: X, type: qualitative}\n  - {name: x, type: qualitative}\n"), YAML)
	assert.ErrorIs(t, err, ErrBadParameter)
}
