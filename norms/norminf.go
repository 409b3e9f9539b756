package norms

import (
	"fmt"
	"math"

	"github.com/cvxgraph/cvxgraph/expr"
	"github.com/cvxgraph/cvxgraph/matrix"
)

// InfNorm is the dedicated infinity-norm atom ‖x‖_∞ = max|xᵢ|. The Norm
// factory routes the infinity sentinel here; the general PNorm rejects it.
type InfNorm struct {
	arg      expr.Node
	axis     Axis
	keepDims bool
}

// NewInfNorm constructs the ∞-norm atom of arg. Any axis selector is
// accepted; complex-valued arguments are legal (p ≥ 1).
func NewInfNorm(arg expr.Node, opts *Options) (*InfNorm, error) {
	if arg == nil {
		return nil, ErrNilArgument
	}
	o := gatherOptions(opts)
	if !o.Axis.valid() {
		return nil, fmt.Errorf("norms: unknown axis selector %d: %w", int(o.Axis), ErrUnsupportedConfig)
	}

	return &InfNorm{arg: arg, axis: o.Axis, keepDims: o.KeepDims}, nil
}

// Argument returns the normed sub-expression.
func (n *InfNorm) Argument() expr.Node { return n.arg }

// Axis returns the atom's reduction axis.
func (n *InfNorm) Axis() Axis { return n.axis }

// KeepDims reports whether a collapsed axis keeps a singleton dimension.
func (n *InfNorm) KeepDims() bool { return n.keepDims }

// Rows returns the output row count after reduction.
func (n *InfNorm) Rows() int {
	r, _ := outputShape(n.arg.Rows(), n.arg.Cols(), n.axis, n.keepDims)

	return r
}

// Cols returns the output column count after reduction.
func (n *InfNorm) Cols() int {
	_, c := outputShape(n.arg.Rows(), n.arg.Cols(), n.axis, n.keepDims)

	return c
}

// Size returns the output element count.
func (n *InfNorm) Size() int { return n.Rows() * n.Cols() }

// Name returns the stable display name, e.g. "InfNorm(x)".
func (n *InfNorm) Name() string { return fmt.Sprintf("InfNorm(%s)", n.arg.Name()) }

// IsComplex always reports false: a norm is real-valued.
func (n *InfNorm) IsComplex() bool { return false }

// IsNonneg always reports true.
func (n *InfNorm) IsNonneg() bool { return true }

// IsNonpos always reports false.
func (n *InfNorm) IsNonpos() bool { return false }

// Equal reports structural equality: same axis and structurally equal arguments.
func (n *InfNorm) Equal(other expr.Node) bool {
	o, ok := other.(*InfNorm)

	return ok && n.axis == o.axis && n.arg.Equal(o.arg)
}

// Sign reports the value's sign facts: always nonnegative.
func (n *InfNorm) Sign() expr.Sign { return expr.Sign{NonNeg: true, NonPos: false} }

// IsConvex always reports true.
func (n *InfNorm) IsConvex() bool { return true }

// IsConcave always reports false.
func (n *InfNorm) IsConcave() bool { return false }

// IsPiecewiseLinear always reports true: the ∞-norm is a maximum of
// finitely many linear functions.
func (n *InfNorm) IsPiecewiseLinear() bool { return true }

// IsNonDecreasing reports monotonicity: non-decreasing when the argument
// is known entrywise nonnegative.
func (n *InfNorm) IsNonDecreasing(int) bool { return n.arg.IsNonneg() }

// IsNonIncreasing reports monotonicity: non-increasing when the argument
// is known entrywise nonpositive.
func (n *InfNorm) IsNonIncreasing(int) bool { return n.arg.IsNonpos() }

// Domain returns no implicit constraints: the ∞-norm is defined everywhere.
func (n *InfNorm) Domain() []expr.Constraint { return nil }

// Evaluate computes max|xᵢ| reduced along the atom's axis.
func (n *InfNorm) Evaluate(values *matrix.Dense) (*matrix.Dense, error) {
	if err := checkValue(n.arg, values); err != nil {
		return nil, err
	}

	return reduce(values, n.axis, n.keepDims, func(v []float64) float64 {
		var best float64
		for _, e := range v {
			if a := math.Abs(e); a > best {
				best = a
			}
		}

		return best
	})
}

// Gradient computes a subgradient of the ∞-norm: one unit of weight on the
// first entry attaining the maximum absolute value, signed to match that
// entry. At the origin the zero vector is returned (a valid subdifferential
// element), so ok is always true for well-shaped input.
func (n *InfNorm) Gradient(values *matrix.Dense) (*matrix.Dense, bool, error) {
	if err := checkValue(n.arg, values); err != nil {
		return nil, false, err
	}

	return assembleGradient(values, n.axis, func(col []float64) ([]float64, bool) {
		out := make([]float64, len(col))
		best, at := 0.0, -1
		for i, e := range col {
			if a := math.Abs(e); a > best {
				best, at = a, i
			}
		}
		if at >= 0 {
			if col[at] < 0 {
				out[at] = -1
			} else {
				out[at] = 1
			}
		}

		return out, true
	})
}
