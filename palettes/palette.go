package palettes

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/kovidgoyal/colorspace"
)

var _ = fmt.Print

var (
	ErrTooFewColors     = errors.New("palettes: at least two colors are needed")
	ErrUnknownPalette   = errors.New("palettes: unknown palette")
	ErrUnknownMethod    = errors.New("palettes: unknown method")
	ErrBadParameter     = errors.New("palettes: bad parameter")
	ErrMissingParameter = errors.New("palettes: missing parameter")
)

// Type is the kind of palette
type Type int

const (
	UNKNOWN_TYPE Type = iota
	QUALITATIVE
	SEQUENTIAL
	DIVERGING
	DIVERGINGX
)

var type_names = map[Type]string{
	QUALITATIVE: "qualitative",
	SEQUENTIAL:  "sequential",
	DIVERGING:   "diverging",
	DIVERGINGX:  "divergingx",
}

func (t Type) String() string {
	if ans, ok := type_names[t]; ok {
		return ans
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func ParseType(name string) (Type, error) {
	q := strings.ToLower(strings.TrimSpace(name))
	for t, n := range type_names {
		if n == q {
			return t, nil
		}
	}
	return UNKNOWN_TYPE, fmt.Errorf("unknown palette type: %q", name)
}

// how a parameter that was not specified gets its value
type fallback struct {
	from     string // copy this parameter
	value    Param
	required bool
	optional bool // NaN when absent
}

type generator func(n int, v map[string]float64) (*colorspace.Colors, error)

type method struct {
	name      string
	typ       Type
	keys      []string
	fallbacks map[string]fallback
	generate  generator
}

func val(v float64) fallback   { return fallback{value: Float(v)} }
func from(key string) fallback { return fallback{from: key} }
func fn(p Param) fallback      { return fallback{value: p} }
func required() fallback       { return fallback{required: true} }
func optional() fallback       { return fallback{optional: true} }

var methods map[string]*method

func init() {
	methods = map[string]*method{}
	for _, m := range []*method{
		{name: "qualitative_hcl", typ: QUALITATIVE, keys: []string{"h1", "h2", "c1", "l1"},
			fallbacks: map[string]fallback{"h1": val(0), "h2": fn(named_funcs["qualitative_h2"]), "c1": val(80), "l1": val(60)},
			generate:  qualitative},
		{name: "sequential_hcl", typ: SEQUENTIAL, keys: []string{"h1", "h2", "c1", "c2", "l1", "l2", "p1", "p2", "cmax"},
			fallbacks: map[string]fallback{
				"h1": required(), "h2": from("h1"), "c1": required(), "c2": val(0), "l1": required(), "l2": from("l1"),
				"p1": val(1), "p2": from("p1"), "cmax": optional()},
			generate: sequential},
		{name: "diverging_hcl", typ: DIVERGING, keys: []string{"h1", "h2", "c1", "c2", "l1", "l2", "p1", "p2", "cmax"},
			fallbacks: map[string]fallback{
				"h1": required(), "h2": from("h1"), "c1": required(), "c2": val(0), "l1": required(), "l2": from("l1"),
				"p1": val(1), "p2": from("p1"), "cmax": optional()},
			generate: diverging},
		{name: "divergingx_hcl", typ: DIVERGINGX, keys: []string{
			"h1", "h2", "h3", "c1", "c2", "c3", "l1", "l2", "l3", "p1", "p2", "p3", "p4", "cmax1", "cmax2"},
			fallbacks: map[string]fallback{
				"h1": required(), "h2": from("h1"), "h3": from("h2"),
				"c1": required(), "c2": val(0), "c3": from("c1"),
				"l1": required(), "l2": from("l1"), "l3": from("l1"),
				"p1": val(1), "p2": from("p1"), "p3": from("p1"), "p4": from("p2"),
				"cmax1": optional(), "cmax2": optional()},
			generate: divergingx},
		{name: "rainbow_hsv", typ: QUALITATIVE, keys: []string{"s", "v", "start", "end"},
			fallbacks: map[string]fallback{"s": val(1), "v": val(1), "start": val(0), "end": fn(named_funcs["rainbow_end"])},
			generate:  rainbow},
		{name: "diverging_hsv", typ: DIVERGING, keys: []string{"h1", "h2", "s", "v", "power"},
			fallbacks: map[string]fallback{"h1": val(240), "h2": val(0), "s": val(1), "v": val(1), "power": val(1)},
			generate:  diverging_hsv},
	} {
		methods[m.name] = m
	}
}

// Methods returns the names of all palette generation methods.
func Methods() []string {
	return slices.Sorted(maps.Keys(methods))
}

// Palette generates colors for any number of colors from a fixed set of
// parameters.
type Palette struct {
	name   string
	method *method
	params map[string]Param
	fixup  bool
	rev    bool
}

type Option func(*Palette) error

// set assigns values to the numbered keys prefix1, prefix2, ...
func set_numbered(p *Palette, prefix string, vals []float64) error {
	if len(vals) == 0 {
		return fmt.Errorf("%w: no values for %s", ErrBadParameter, prefix)
	}
	for i, v := range vals {
		if err := p.set(fmt.Sprintf("%s%d", prefix, i+1), Float(v)); err != nil {
			return err
		}
	}
	return nil
}

// H sets the hues h1, h2, ... in degrees.
func H(vals ...float64) Option {
	return func(p *Palette) error { return set_numbered(p, "h", vals) }
}

// C sets the chromas c1, c2, ...
func C(vals ...float64) Option {
	return func(p *Palette) error { return set_numbered(p, "c", vals) }
}

// L sets the luminances l1, l2, ...
func L(vals ...float64) Option {
	return func(p *Palette) error { return set_numbered(p, "l", vals) }
}

// Power sets the exponents p1, p2, ... of the trajectories. For the HSV
// diverging palette it sets the single exponent of the saturation.
func Power(vals ...float64) Option {
	return func(p *Palette) error {
		if p.method.name == "diverging_hsv" {
			if len(vals) != 1 {
				return fmt.Errorf("%w: power takes one value", ErrBadParameter)
			}
			return p.set("power", Float(vals[0]))
		}
		return set_numbered(p, "p", vals)
	}
}

// CMax sets the maximum chroma of the triangular chroma trajectory, two
// values (one per arm) for divergingx palettes.
func CMax(vals ...float64) Option {
	return func(p *Palette) error {
		if p.method.name == "divergingx_hcl" {
			return set_numbered(p, "cmax", vals)
		}
		if len(vals) != 1 {
			return fmt.Errorf("%w: cmax takes one value", ErrBadParameter)
		}
		return p.set("cmax", Float(vals[0]))
	}
}

// Set sets an arbitrary parameter.
func Set(key string, val Param) Option {
	return func(p *Palette) error { return p.set(key, val) }
}

// Rev makes the palette generate its colors in reverse order by default.
func Rev(rev bool) Option {
	return func(p *Palette) error { p.rev = rev; return nil }
}

// FixupDefault sets whether out of gamut colors are clamped (the default)
// or become missing.
func FixupDefault(fixup bool) Option {
	return func(p *Palette) error { p.fixup = fixup; return nil }
}

// Named sets the display name of the palette.
func Named(name string) Option {
	return func(p *Palette) error { p.name = name; return nil }
}

func (p *Palette) set(key string, val Param) error {
	if !slices.Contains(p.method.keys, key) {
		switch key {
		case "fixup":
			if val.kind == BOOL {
				p.fixup = val.flag
				return nil
			}
		case "rev":
			if val.kind == BOOL {
				p.rev = val.flag
				return nil
			}
		}
		return fmt.Errorf("%w: %s is not a parameter of %s", ErrBadParameter, key, p.method.name)
	}
	if val.kind == BOOL {
		return fmt.Errorf("%w: %s must be a number", ErrBadParameter, key)
	}
	if err := check_param(key, val); err != nil {
		return err
	}
	p.params[key] = val
	return nil
}

// NewPalette creates a palette using the named generation method, see
// Methods().
func NewPalette(method_name string, opts ...Option) (*Palette, error) {
	m, ok := methods[method_name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method_name)
	}
	p := &Palette{method: m, params: map[string]Param{}, fixup: true}
	return p.apply(opts)
}

func (p *Palette) apply(opts []Option) (*Palette, error) {
	for _, o := range opts {
		if err := o(p); err != nil {
			return nil, err
		}
	}
	for _, key := range p.method.keys {
		if _, err := p.source(key); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// source finds the key whose value a parameter ultimately comes from,
// failing for required parameters that are missing
func (p *Palette) source(key string) (string, error) {
	for {
		if _, ok := p.params[key]; ok {
			return key, nil
		}
		fb := p.method.fallbacks[key]
		switch {
		case fb.required:
			return "", fmt.Errorf("%w: %s needs %s", ErrMissingParameter, p.method.name, key)
		case fb.from != "":
			key = fb.from
		default:
			return key, nil
		}
	}
}

// With returns a copy of the palette with the options applied.
func (p *Palette) With(opts ...Option) (*Palette, error) {
	c := *p
	c.params = maps.Clone(p.params)
	return c.apply(opts)
}

func (p *Palette) Name() string   { return p.name }
func (p *Palette) Type() Type     { return p.method.typ }
func (p *Palette) Method() string { return p.method.name }

// Params returns the parameters that were set explicitly.
func (p *Palette) Params() map[string]Param { return maps.Clone(p.params) }

// Values returns the value of every parameter of the palette for n colors,
// including defaults. Unset optional parameters are NaN.
func (p *Palette) Values(n int) (map[string]float64, error) {
	ans := make(map[string]float64, len(p.method.keys))
	var eval func(key string) float64
	eval = func(key string) float64 {
		if v, ok := ans[key]; ok {
			return v
		}
		var v float64
		param, ok := p.params[key]
		if !ok {
			fb := p.method.fallbacks[key]
			switch {
			case fb.from != "":
				v = eval(fb.from)
			case fb.optional:
				v = math.NaN()
			default:
				param, ok = fb.value, true
			}
		}
		if ok {
			partner := math.NaN()
			if param.arity == 2 {
				partner = eval(partners[key])
			}
			v = param.Value(n, partner)
		}
		ans[key] = v
		return v
	}
	for _, key := range p.method.keys {
		if _, err := p.source(key); err != nil {
			return nil, err
		}
		eval(key)
	}
	return ans, nil
}

// Samples returns the n colors of the palette in the space they are
// computed in, HCL or HSV.
func (p *Palette) Samples(n int) (*colorspace.Colors, error) {
	if n < 2 {
		return nil, fmt.Errorf("%s: %w, got %d", p.method.name, ErrTooFewColors, n)
	}
	v, err := p.Values(n)
	if err != nil {
		return nil, err
	}
	return p.method.generate(n, v)
}

type color_options struct {
	fixup, rev bool
	alpha      []float64
}

type ColorOption func(*color_options)

// Fixup overrides the fixup default of the palette.
func Fixup(fixup bool) ColorOption { return func(o *color_options) { o.fixup = fixup } }

// Reverse overrides the order default of the palette.
func Reverse(rev bool) ColorOption { return func(o *color_options) { o.rev = rev } }

// Alpha sets the transparency of the colors, either one value for all of
// them or one per color.
func Alpha(alpha ...float64) ColorOption { return func(o *color_options) { o.alpha = alpha } }

// Colors returns n hex colors from the palette.
func (p *Palette) Colors(n int, opts ...ColorOption) ([]string, error) {
	o := color_options{fixup: p.fixup, rev: p.rev}
	for _, f := range opts {
		f(&o)
	}
	c, err := p.Samples(n)
	if err != nil {
		return nil, err
	}
	if len(o.alpha) > 0 {
		if err = c.SetAlpha(o.alpha...); err != nil {
			return nil, err
		}
	}
	return c.Colors(o.fixup, o.rev)
}

func (p *Palette) String() string {
	var b strings.Builder
	name := p.name
	if name == "" {
		name = "custom"
	}
	fmt.Fprintf(&b, "%s (%s, %s)", name, p.method.typ, p.method.name)
	for _, key := range p.method.keys {
		if v, ok := p.params[key]; ok {
			fmt.Fprintf(&b, " %s=%s", key, v)
		}
	}
	return b.String()
}
