// Package norms: axis selectors, options and the compiler-facing Atom
// interface shared by all norm atoms.
package norms

import (
	"github.com/cvxgraph/cvxgraph/expr"
	"github.com/cvxgraph/cvxgraph/matrix"
)

// Axis selects how a norm reduces a matrix argument.
type Axis int

const (
	// AxisNone flattens the whole argument into one vector. It is the zero
	// value, so a zero Options reduces nothing.
	AxisNone Axis = iota

	// AxisRows collapses axis 0 (the rows), producing one value per column.
	AxisRows

	// AxisCols collapses axis 1 (the columns), producing one value per row.
	AxisCols
)

// String renders the axis selector for diagnostics.
func (a Axis) String() string {
	switch a {
	case AxisNone:
		return "none"
	case AxisRows:
		return "0"
	case AxisCols:
		return "1"
	default:
		return "invalid"
	}
}

// valid reports whether a is one of the three accepted selectors.
func (a Axis) valid() bool {
	return a == AxisNone || a == AxisRows || a == AxisCols
}

// DefaultMaxDenominator bounds the rational-exponent search when the
// caller does not supply a budget.
const DefaultMaxDenominator int64 = 1024

// Options configures norm atom construction.
//   - Axis: AxisNone (flatten), AxisRows or AxisCols. A specific axis is
//     accepted by PNorm only for the Euclidean exponent p=2.
//   - KeepDims: whether a collapsed axis remains as a singleton dimension
//     in the output shape (an AxisRows reduction becomes a 1×c row).
//   - MaxDenominator: rational-approximation budget; ≤ 0 means
//     DefaultMaxDenominator.
type Options struct {
	Axis           Axis
	KeepDims       bool
	MaxDenominator int64
}

// DefaultOptions returns the documented defaults: flatten-all, no kept
// dimensions, DefaultMaxDenominator budget.
func DefaultOptions() Options {
	return Options{Axis: AxisNone, KeepDims: false, MaxDenominator: DefaultMaxDenominator}
}

// gatherOptions resolves a possibly-nil caller Options against defaults.
func gatherOptions(opts *Options) Options {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.MaxDenominator <= 0 {
		o.MaxDenominator = DefaultMaxDenominator
	}

	return o
}

// Atom is the compiler-facing contract every norm atom satisfies: an
// expression node plus the curvature, monotonicity, sign and domain facts
// consumed during convexity compilation, and the numeric passes invoked
// during evaluation and differentiation.
//
// All methods are pure functions of immutable state; atoms are safe for
// concurrent use.
type Atom interface {
	expr.Node

	// Argument returns the normed sub-expression.
	Argument() expr.Node

	// Sign returns the value's sign facts (a norm is never negative).
	Sign() expr.Sign

	// IsConvex and IsConcave report the atom's curvature. Exactly one
	// holds for every accepted exponent.
	IsConvex() bool
	IsConcave() bool

	// IsPiecewiseLinear reports whether the atom is piecewise linear.
	IsPiecewiseLinear() bool

	// IsNonDecreasing / IsNonIncreasing report monotonicity in argument
	// arg (always 0 here; norms take a single argument).
	IsNonDecreasing(arg int) bool
	IsNonIncreasing(arg int) bool

	// Domain returns the implicit constraints describing the atom's
	// natural domain, possibly empty.
	Domain() []expr.Constraint

	// Evaluate computes the numeric norm of values, reduced along the
	// atom's axis. The result is 1×1 for AxisNone.
	Evaluate(values *matrix.Dense) (*matrix.Dense, error)

	// Gradient computes the (sub)gradient with respect to the argument at
	// values. ok=false signals "no gradient": the point is
	// non-differentiable or outside the extended domain.
	Gradient(values *matrix.Dense) (grad *matrix.Dense, ok bool, err error)
}
