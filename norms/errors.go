// Package norms: sentinel error set. Construction-time failures match one
// of the two kinds below via errors.Is; numeric passes never fail on
// in-domain input and reserve errors for nil/mis-shaped values.
package norms

import "errors"

var (
	// ErrInvalidExponent is returned when the requested exponent is 1,
	// infinite, 0 or otherwise unrecognized. p=1 and p=∞ are handled by
	// the dedicated OneNorm and InfNorm atoms; use the Norm factory to
	// route automatically.
	ErrInvalidExponent = errors.New("norms: invalid exponent")

	// ErrUnsupportedConfig is returned when a legal exponent is combined
	// with an unsupported configuration: a specific axis with p ≠ 2, or a
	// complex-valued argument with p < 1.
	ErrUnsupportedConfig = errors.New("norms: unsupported configuration")

	// ErrNilArgument indicates a nil argument node at construction.
	ErrNilArgument = errors.New("norms: argument node is nil")

	// ErrNilValue indicates a nil numeric value passed to Evaluate or Gradient.
	ErrNilValue = errors.New("norms: numeric value is nil")

	// ErrShapeMismatch indicates a numeric value whose shape differs from
	// the argument's declared shape.
	ErrShapeMismatch = errors.New("norms: value shape does not match argument")
)
