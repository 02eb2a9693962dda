package palettes

import (
	"bytes"
	_ "embed"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var _ = fmt.Print

//go:embed presets.yaml
var presets_yaml []byte

// Record is a named palette with its generation method and parameters.
type Record struct {
	Type   Type
	Method string
	Name   string
	Params map[string]Param
}

func (r Record) Clone() Record {
	r.Params = maps.Clone(r.Params)
	return r
}

// Palette creates the palette described by the record, with the options
// applied on top of its parameters.
func (r Record) Palette(opts ...Option) (*Palette, error) {
	base := make([]Option, 0, len(r.Params)+1+len(opts))
	base = append(base, Named(r.Name))
	for _, key := range slices.Sorted(maps.Keys(r.Params)) {
		base = append(base, Set(key, r.Params[key]))
	}
	p, err := NewPalette(r.Method, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("palette %q: %w", r.Name, err)
	}
	return p, nil
}

// Registry is an immutable, ordered collection of named palettes.
type Registry struct {
	records []Record
	index   map[string]int
}

func normalize_name(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}

// NewRegistry creates a registry from the records, which are copied. Every
// record is validated by constructing its palette.
func NewRegistry(records ...Record) (*Registry, error) {
	ans := &Registry{records: make([]Record, 0, len(records)), index: make(map[string]int, len(records))}
	for _, r := range records {
		m, ok := methods[r.Method]
		if !ok {
			return nil, fmt.Errorf("palette %q: %w: %q", r.Name, ErrUnknownMethod, r.Method)
		}
		if r.Type == UNKNOWN_TYPE {
			r.Type = m.typ
		}
		if _, err := r.Palette(); err != nil {
			return nil, err
		}
		key := normalize_name(r.Name)
		if _, found := ans.index[key]; found {
			return nil, fmt.Errorf("%w: duplicate palette name %q", ErrBadParameter, r.Name)
		}
		ans.index[key] = len(ans.records)
		ans.records = append(ans.records, r.Clone())
	}
	return ans, nil
}

func (r *Registry) Len() int { return len(r.records) }

// Get returns a copy of the named record. Names are matched ignoring case
// and white space.
func (r *Registry) Get(name string) (Record, error) {
	idx, ok := r.index[normalize_name(name)]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	return r.records[idx].Clone(), nil
}

// Palette creates the named palette with the options applied on top of its
// preset parameters. The registry is not modified.
func (r *Registry) Palette(name string, opts ...Option) (*Palette, error) {
	rec, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return rec.Palette(opts...)
}

// Records returns copies of the records of the specified types, or of all
// records, in registry order.
func (r *Registry) Records(types ...Type) []Record {
	ans := make([]Record, 0, len(r.records))
	for _, rec := range r.records {
		if len(types) == 0 || slices.Contains(types, rec.Type) {
			ans = append(ans, rec.Clone())
		}
	}
	return ans
}

// Names returns the names of the palettes of the specified types, or of all
// palettes, in registry order.
func (r *Registry) Names(types ...Type) []string {
	recs := r.Records(types...)
	ans := make([]string, len(recs))
	for i, rec := range recs {
		ans[i] = rec.Name
	}
	return ans
}

// Merge returns a new registry with the records of both registries. Records
// of other replace records of r with the same name.
func (r *Registry) Merge(other *Registry) *Registry {
	ans := &Registry{records: slices.Clone(r.records), index: maps.Clone(r.index)}
	for _, rec := range other.records {
		key := normalize_name(rec.Name)
		if idx, found := ans.index[key]; found {
			ans.records[idx] = rec
		} else {
			ans.index[key] = len(ans.records)
			ans.records = append(ans.records, rec)
		}
	}
	return ans
}

type preset struct {
	Name   string         `yaml:"name" toml:"name"`
	Type   string         `yaml:"type" toml:"type"`
	Method string         `yaml:"method" toml:"method"`
	Params map[string]any `yaml:"params" toml:"params"`
}

type preset_file struct {
	Palettes []preset `yaml:"palettes" toml:"palettes"`
}

var default_methods = map[Type]string{
	QUALITATIVE: "qualitative_hcl",
	SEQUENTIAL:  "sequential_hcl",
	DIVERGING:   "diverging_hcl",
	DIVERGINGX:  "divergingx_hcl",
}

func (p preset) record() (r Record, err error) {
	if r.Type, err = ParseType(p.Type); err != nil {
		return r, fmt.Errorf("palette %q: %w", p.Name, err)
	}
	r.Name, r.Method = p.Name, p.Method
	if r.Method == "" {
		r.Method = default_methods[r.Type]
	}
	r.Params = make(map[string]Param, len(p.Params))
	for key, v := range p.Params {
		if r.Params[key], err = ParseParam(v); err != nil {
			return r, fmt.Errorf("palette %q: %s: %w", p.Name, key, err)
		}
	}
	return
}

// Format of a preset document
type Format int

const (
	YAML Format = iota
	TOML
)

// LoadRegistry parses a preset document. It has a top level list named
// palettes whose entries have a name, a type, an optional method and a
// mapping of parameters.
func LoadRegistry(data []byte, format Format) (*Registry, error) {
	var doc preset_file
	var err error
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	default:
		err = fmt.Errorf("unknown preset format: %d", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse palette presets: %w", err)
	}
	records := make([]Record, len(doc.Palettes))
	for i, p := range doc.Palettes {
		if records[i], err = p.record(); err != nil {
			return nil, err
		}
	}
	return NewRegistry(records...)
}

// LoadRegistryFile loads a preset document from a .yaml, .yml or .toml file.
func LoadRegistryFile(path string) (*Registry, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = YAML
	case ".toml":
		format = TOML
	default:
		return nil, fmt.Errorf("%s: unknown preset file type, must be YAML or TOML", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ans, err := LoadRegistry(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ans, nil
}

// Default returns the registry of builtin palettes. It is built once, on first use.
var Default = sync.OnceValues(func() (*Registry, error) {
	return LoadRegistry(presets_yaml, YAML)
})
