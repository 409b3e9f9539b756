package norms

import (
	"fmt"
	"math"

	"github.com/cvxgraph/cvxgraph/expr"
	"github.com/cvxgraph/cvxgraph/rational"
)

// PNorm is the general p-norm atom ‖x‖_p for any accepted exponent — every
// real p except 1, ±∞ and 0 (p=1 and p=+∞ are routed to the dedicated
// OneNorm and InfNorm atoms by the Norm factory).
//
// The requested exponent is resolved once, at construction, into an exact
// rational approximation under the configured denominator budget; all
// fields are immutable afterwards. Identity is structural: two PNorm atoms
// are equal iff their resolved exponent and axis match and their arguments
// are structurally equal.
type PNorm struct {
	arg      expr.Node
	p        rational.Rational
	apxErr   float64
	axis     Axis
	keepDims bool
}

// NewPNorm constructs the p-norm atom of arg for requested exponent p.
//
// Stage 1 (Resolve): dispatch p by range to the rational approximators;
// p=1, infinite p, p=0 and NaN fail with ErrInvalidExponent.
// Stage 2 (Validate): a specific axis requires p=2; a complex-valued
// argument requires p ≥ 1. Violations fail with ErrUnsupportedConfig.
// Stage 3 (Finalize): freeze the atom; no later call mutates it.
//
// A failed construction never enters the graph.
func NewPNorm(arg expr.Node, p float64, opts *Options) (*PNorm, error) {
	if arg == nil {
		return nil, ErrNilArgument
	}
	o := gatherOptions(opts)

	resolved, apxErr, err := resolveExponent(p, o.MaxDenominator)
	if err != nil {
		return nil, err
	}
	if err = validateConfig(arg, resolved, o.Axis); err != nil {
		return nil, err
	}

	return &PNorm{arg: arg, p: resolved, apxErr: apxErr, axis: o.Axis, keepDims: o.KeepDims}, nil
}

// resolveExponent dispatches the requested exponent to the approximator
// variant owning its range and returns the resolved rational exponent with
// its absolute approximation error.
func resolveExponent(p float64, maxDen int64) (rational.Rational, float64, error) {
	switch {
	case math.IsNaN(p):
		return rational.Rational{}, 0, fmt.Errorf("norms: p is NaN: %w", ErrInvalidExponent)
	case math.IsInf(p, 1):
		return rational.Rational{}, 0,
			fmt.Errorf("norms: infinite p is handled by the dedicated infinity-norm atom: %w", ErrInvalidExponent)
	case math.IsInf(p, -1):
		return rational.Rational{}, 0, fmt.Errorf("norms: p=-Inf: %w", ErrInvalidExponent)
	case p == 1:
		return rational.Rational{}, 0,
			fmt.Errorf("norms: p=1 is handled by the dedicated one-norm atom: %w", ErrInvalidExponent)
	case p == 0:
		return rational.Rational{}, 0, fmt.Errorf("norms: p=0: %w", ErrInvalidExponent)
	case p < 0:
		return wrapResolve(rational.PowNeg(p, maxDen))
	case p < 1:
		return wrapResolve(rational.PowMid(p, maxDen))
	default:
		return wrapResolve(rational.PowHigh(p, maxDen))
	}
}

// wrapResolve tags approximator failures with the package's error kind.
func wrapResolve(r rational.Rational, apxErr float64, err error) (rational.Rational, float64, error) {
	if err != nil {
		return rational.Rational{}, 0, fmt.Errorf("norms: %v: %w", err, ErrInvalidExponent)
	}

	return r, apxErr, nil
}

// validateConfig confirms the (exponent, axis, argument) combination is
// legal. Axis reduction relies on the Euclidean second-order cone
// reformulation, hence the p=2 restriction; sub-1 exponents are defined
// only over reals.
func validateConfig(arg expr.Node, p rational.Rational, axis Axis) error {
	if !axis.valid() {
		return fmt.Errorf("norms: unknown axis selector %d: %w", int(axis), ErrUnsupportedConfig)
	}
	if axis != AxisNone && !(p.Num == 2 && p.Den == 1) {
		return fmt.Errorf("norms: axis reduction only supported for the Euclidean norm p=2 (got p=%s): %w",
			p, ErrUnsupportedConfig)
	}
	if p.CmpInt(1) < 0 && arg.IsComplex() {
		return fmt.Errorf("norms: p=%s < 1 requires a real-valued argument: %w", p, ErrUnsupportedConfig)
	}

	return nil
}

// Exponent returns the resolved rational exponent.
func (n *PNorm) Exponent() rational.Rational { return n.p }

// ApproxError returns |resolved exponent − requested p|. Increasing the
// denominator budget never increases this value for a fixed request.
func (n *PNorm) ApproxError() float64 { return n.apxErr }

// Axis returns the atom's reduction axis.
func (n *PNorm) Axis() Axis { return n.axis }

// KeepDims reports whether a collapsed axis keeps a singleton dimension.
func (n *PNorm) KeepDims() bool { return n.keepDims }

// Argument returns the normed sub-expression. The atom holds a shared,
// read-only reference; it does not own the node's lifetime.
func (n *PNorm) Argument() expr.Node { return n.arg }

// Rows returns the output row count after reduction.
func (n *PNorm) Rows() int {
	r, _ := outputShape(n.arg.Rows(), n.arg.Cols(), n.axis, n.keepDims)

	return r
}

// Cols returns the output column count after reduction.
func (n *PNorm) Cols() int {
	_, c := outputShape(n.arg.Rows(), n.arg.Cols(), n.axis, n.keepDims)

	return c
}

// Size returns the output element count.
func (n *PNorm) Size() int { return n.Rows() * n.Cols() }

// Name returns the stable display name encoding the atom class, argument
// name and resolved exponent, e.g. "PNorm(x, 3/2)".
func (n *PNorm) Name() string {
	return fmt.Sprintf("PNorm(%s, %s)", n.arg.Name(), n.p)
}

// IsComplex always reports false: a norm is real-valued.
func (n *PNorm) IsComplex() bool { return false }

// IsNonneg always reports true: a norm is never negative.
func (n *PNorm) IsNonneg() bool { return true }

// IsNonpos always reports false.
func (n *PNorm) IsNonpos() bool { return false }

// Equal reports structural equality: same resolved exponent and axis, and
// structurally equal arguments.
func (n *PNorm) Equal(other expr.Node) bool {
	o, ok := other.(*PNorm)

	return ok && n.p == o.p && n.axis == o.axis && n.arg.Equal(o.arg)
}
