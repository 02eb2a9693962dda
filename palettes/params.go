package palettes

import (
	"fmt"
	"strconv"
	"strings"
)

var _ = fmt.Print

// Kind is the type of value held by a Param
type Kind int

const (
	INT Kind = iota
	FLOAT
	BOOL
	FUNC
)

func (k Kind) String() string {
	switch k {
	case INT:
		return "int"
	case FLOAT:
		return "float"
	case BOOL:
		return "bool"
	case FUNC:
		return "func"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Param is a single palette parameter. It is either a number, a flag or a
// function of the number of colors requested. Functions of arity two also
// receive the value of a partner parameter, for example the default for h2
// of qualitative palettes depends on h1.
type Param struct {
	kind  Kind
	num   float64
	flag  bool
	name  string
	arity int
	f1    func(n int) float64
	f2    func(n int, partner float64) float64
}

func Int(v int) Param       { return Param{kind: INT, num: float64(v)} }
func Float(v float64) Param { return Param{kind: FLOAT, num: v} }
func Bool(v bool) Param     { return Param{kind: BOOL, flag: v} }

// FuncOfN creates a parameter computed from the number of colors.
func FuncOfN(name string, f func(n int) float64) Param {
	return Param{kind: FUNC, name: name, arity: 1, f1: f}
}

// FuncOfNAnd creates a parameter computed from the number of colors and the
// value of the partner parameter (h1 for h2 and h3, start for end).
func FuncOfNAnd(name string, f func(n int, partner float64) float64) Param {
	return Param{kind: FUNC, name: name, arity: 2, f2: f}
}

func (p Param) Kind() Kind { return p.kind }

// Arity is the number of arguments of a function parameter, zero otherwise.
func (p Param) Arity() int { return p.arity }

func (p Param) IsNumber() bool { return p.kind == INT || p.kind == FLOAT }

// Float returns the value of a numeric parameter.
func (p Param) Float() float64 { return p.num }

func (p Param) Bool() bool { return p.flag }

// Value evaluates the parameter for n colors. partner is only used by
// functions of arity two.
func (p Param) Value(n int, partner float64) float64 {
	switch p.arity {
	case 1:
		return p.f1(n)
	case 2:
		return p.f2(n, partner)
	}
	return p.num
}

func (p Param) String() string {
	switch p.kind {
	case INT:
		return strconv.Itoa(int(p.num))
	case FLOAT:
		return strconv.FormatFloat(p.num, 'g', -1, 64)
	case BOOL:
		return strconv.FormatBool(p.flag)
	}
	if p.name == "" {
		return fmt.Sprintf("fn/%d", p.arity)
	}
	return "fn:" + p.name
}

// partners of keys that accept functions of arity two
var partners = map[string]string{
	"h2":  "h1",
	"h3":  "h1",
	"end": "start",
}

// keys that may hold a function
var func_keys = map[string]bool{"h1": true, "h2": true, "h3": true, "start": true, "end": true}

func check_param(key string, p Param) error {
	if p.kind != FUNC {
		return nil
	}
	if !func_keys[key] {
		return fmt.Errorf("%w: %s cannot be a function", ErrBadParameter, key)
	}
	if p.arity == 2 && partners[key] == "" {
		return fmt.Errorf("%w: %s has no partner for a function of arity two", ErrBadParameter, key)
	}
	if (p.arity == 1 && p.f1 == nil) || (p.arity == 2 && p.f2 == nil) || p.arity < 1 || p.arity > 2 {
		return fmt.Errorf("%w: %s is an invalid function", ErrBadParameter, key)
	}
	return nil
}

// QualitativeH2 spreads hues evenly around the circle without closing it.
func QualitativeH2(n int, h1 float64) float64 { return h1 + 360*float64(n-1)/float64(n) }

// RainbowEnd is the default end of the hue sweep of Rainbow as a fraction of
// the circle.
func RainbowEnd(n int) float64 { return float64(max(1, n-1)) / float64(n) }

var named_funcs = map[string]Param{
	"qualitative_h2": FuncOfNAnd("qualitative_h2", QualitativeH2),
	"rainbow_end":    FuncOfN("rainbow_end", RainbowEnd),
}

// NamedFunc returns one of the builtin functions usable in preset files as
// "fn:name".
func NamedFunc(name string) (Param, error) {
	p, ok := named_funcs[strings.TrimPrefix(name, "fn:")]
	if !ok {
		return Param{}, fmt.Errorf("%w: unknown function %q", ErrBadParameter, name)
	}
	return p, nil
}

// ParseParam converts a value decoded from a YAML or TOML document into a
// Param. Strings must name a builtin function.
func ParseParam(v any) (Param, error) {
	switch x := v.(type) {
	case int:
		return Int(x), nil
	case int64:
		return Int(int(x)), nil
	case uint64:
		return Int(int(x)), nil
	case float64:
		return Float(x), nil
	case bool:
		return Bool(x), nil
	case string:
		if strings.HasPrefix(x, "fn:") {
			return NamedFunc(x)
		}
		if f, err := strconv.ParseFloat(x, 64); err == nil {
			return Float(f), nil
		}
		return Param{}, fmt.Errorf("%w: cannot parse %q", ErrBadParameter, x)
	case Param:
		return x, nil
	}
	return Param{}, fmt.Errorf("%w: unsupported value %v of type %T", ErrBadParameter, v, v)
}
