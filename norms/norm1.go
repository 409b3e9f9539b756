package norms

import (
	"fmt"
	"math"

	"github.com/cvxgraph/cvxgraph/expr"
	"github.com/cvxgraph/cvxgraph/matrix"
)

// OneNorm is the dedicated 1-norm atom ‖x‖₁ = Σ|xᵢ|. The Norm factory
// routes p=1 here; the general PNorm rejects that exponent.
type OneNorm struct {
	arg      expr.Node
	axis     Axis
	keepDims bool
}

// NewOneNorm constructs the 1-norm atom of arg. Any axis selector is
// accepted; complex-valued arguments are legal (p ≥ 1).
func NewOneNorm(arg expr.Node, opts *Options) (*OneNorm, error) {
	if arg == nil {
		return nil, ErrNilArgument
	}
	o := gatherOptions(opts)
	if !o.Axis.valid() {
		return nil, fmt.Errorf("norms: unknown axis selector %d: %w", int(o.Axis), ErrUnsupportedConfig)
	}

	return &OneNorm{arg: arg, axis: o.Axis, keepDims: o.KeepDims}, nil
}

// Argument returns the normed sub-expression.
func (n *OneNorm) Argument() expr.Node { return n.arg }

// Axis returns the atom's reduction axis.
func (n *OneNorm) Axis() Axis { return n.axis }

// KeepDims reports whether a collapsed axis keeps a singleton dimension.
func (n *OneNorm) KeepDims() bool { return n.keepDims }

// Rows returns the output row count after reduction.
func (n *OneNorm) Rows() int {
	r, _ := outputShape(n.arg.Rows(), n.arg.Cols(), n.axis, n.keepDims)

	return r
}

// Cols returns the output column count after reduction.
func (n *OneNorm) Cols() int {
	_, c := outputShape(n.arg.Rows(), n.arg.Cols(), n.axis, n.keepDims)

	return c
}

// Size returns the output element count.
func (n *OneNorm) Size() int { return n.Rows() * n.Cols() }

// Name returns the stable display name, e.g. "OneNorm(x)".
func (n *OneNorm) Name() string { return fmt.Sprintf("OneNorm(%s)", n.arg.Name()) }

// IsComplex always reports false: a norm is real-valued.
func (n *OneNorm) IsComplex() bool { return false }

// IsNonneg always reports true.
func (n *OneNorm) IsNonneg() bool { return true }

// IsNonpos always reports false.
func (n *OneNorm) IsNonpos() bool { return false }

// Equal reports structural equality: same axis and structurally equal arguments.
func (n *OneNorm) Equal(other expr.Node) bool {
	o, ok := other.(*OneNorm)

	return ok && n.axis == o.axis && n.arg.Equal(o.arg)
}

// Sign reports the value's sign facts: always nonnegative.
func (n *OneNorm) Sign() expr.Sign { return expr.Sign{NonNeg: true, NonPos: false} }

// IsConvex always reports true: every true norm is convex.
func (n *OneNorm) IsConvex() bool { return true }

// IsConcave always reports false.
func (n *OneNorm) IsConcave() bool { return false }

// IsPiecewiseLinear always reports true: the 1-norm is a maximum of
// finitely many linear functions.
func (n *OneNorm) IsPiecewiseLinear() bool { return true }

// IsNonDecreasing reports monotonicity: non-decreasing when the argument
// is known entrywise nonnegative.
func (n *OneNorm) IsNonDecreasing(int) bool { return n.arg.IsNonneg() }

// IsNonIncreasing reports monotonicity: non-increasing when the argument
// is known entrywise nonpositive.
func (n *OneNorm) IsNonIncreasing(int) bool { return n.arg.IsNonpos() }

// Domain returns no implicit constraints: the 1-norm is defined everywhere.
func (n *OneNorm) Domain() []expr.Constraint { return nil }

// Evaluate computes Σ|xᵢ| reduced along the atom's axis.
func (n *OneNorm) Evaluate(values *matrix.Dense) (*matrix.Dense, error) {
	if err := checkValue(n.arg, values); err != nil {
		return nil, err
	}

	return reduce(values, n.axis, n.keepDims, func(v []float64) float64 {
		var sum float64
		for _, e := range v {
			sum += math.Abs(e)
		}

		return sum
	})
}

// Gradient computes a subgradient of the 1-norm: the entrywise sign
// vector, with 0 chosen at zero entries (a valid subdifferential element).
// The 1-norm subgradient exists everywhere, so ok is always true for
// well-shaped input.
func (n *OneNorm) Gradient(values *matrix.Dense) (*matrix.Dense, bool, error) {
	if err := checkValue(n.arg, values); err != nil {
		return nil, false, err
	}

	return assembleGradient(values, n.axis, func(col []float64) ([]float64, bool) {
		out := make([]float64, len(col))
		for i, e := range col {
			switch {
			case e > 0:
				out[i] = 1
			case e < 0:
				out[i] = -1
			}
		}

		return out, true
	})
}
