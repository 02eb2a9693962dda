package colorspace

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch means coordinate, alpha or value slices differ in length.
	ErrLengthMismatch = errors.New("colorspace: slices differ in length")
	// ErrOutOfRange means a bounded component (RGB, S, V, L of HLS, alpha) is outside [0,1].
	ErrOutOfRange = errors.New("colorspace: component outside [0, 1]")
	// ErrUnknownDimension means a coordinate name that does not exist in the current space.
	ErrUnknownDimension = errors.New("colorspace: unknown dimension")
	// ErrUnknownSpace means an invalid Space value.
	ErrUnknownSpace = errors.New("colorspace: unknown color space")
	// ErrAmbiguousConversion means the conversion has no defined path.
	ErrAmbiguousConversion = errors.New("colorspace: ambiguous conversion")
	// ErrNoAlpha means the set carries no alpha channel.
	ErrNoAlpha = errors.New("colorspace: no alpha channel")
)

// ConversionError reports a failed conversion between two spaces.
type ConversionError struct {
	Op       string
	From, To Space
	Err      error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: %s from %s to %s", e.Op, e.Err, e.From, e.To)
}

func (e *ConversionError) Unwrap() error { return e.Err }
