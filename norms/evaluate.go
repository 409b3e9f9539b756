package norms

import (
	"math"

	"github.com/cvxgraph/cvxgraph/expr"
	"github.com/cvxgraph/cvxgraph/matrix"
)

// Evaluate computes the numeric p-norm of values under the extended-domain
// policy, reduced along the atom's axis.
//
// Extended-domain policy (checked before the standard formula — these are
// deliberate sentinels, not the mathematical norm):
//   - p < 1 and any entry < 0  → −Inf (the point is unbounded below for
//     the concave surrogate, not an error)
//   - p < 0 and any entry == 0 → 0 (conventional limit of the 0^negative term)
//   - otherwise                → (Σ|xᵢ|^p)^(1/p)
//
// Output shapes: AxisNone → 1×1; AxisRows → 1×c with KeepDims, c×1
// without; AxisCols → r×1.
func (n *PNorm) Evaluate(values *matrix.Dense) (*matrix.Dense, error) {
	if err := checkValue(n.arg, values); err != nil {
		return nil, err
	}
	p := n.p.Float64()

	return reduce(values, n.axis, n.keepDims, func(v []float64) float64 {
		return pnormValue(v, p)
	})
}

// pnormValue computes the extended-domain p-norm of one vector.
func pnormValue(v []float64, p float64) float64 {
	// Sentinel branches come first; delegating out-of-domain input to the
	// standard formula would silently produce NaNs.
	if p < 1 {
		for _, e := range v {
			if e < 0 {
				return math.Inf(-1)
			}
		}
	}
	if p < 0 {
		for _, e := range v {
			if e == 0 {
				return 0.0
			}
		}
	}

	return rawNorm(v, p)
}

// rawNorm computes the standard p-norm formula (Σ|xᵢ|^p)^(1/p) with no
// domain handling. Callers must have applied the sentinel branches.
func rawNorm(v []float64, p float64) float64 {
	var sum float64
	for _, e := range v {
		sum += math.Pow(math.Abs(e), p)
	}

	return math.Pow(sum, 1/p)
}

// checkValue validates a numeric input against the argument's declared shape.
func checkValue(arg expr.Node, values *matrix.Dense) error {
	if values == nil {
		return ErrNilValue
	}
	if values.Rows() != arg.Rows() || values.Cols() != arg.Cols() {
		return ErrShapeMismatch
	}

	return nil
}

// outputShape maps the argument shape through an axis reduction.
func outputShape(rows, cols int, axis Axis, keepDims bool) (int, int) {
	switch axis {
	case AxisRows:
		if keepDims {
			return 1, cols // collapsed axis stays as a singleton row
		}

		return cols, 1
	case AxisCols:
		return rows, 1
	default:
		return 1, 1
	}
}

// reduce applies fn to each slice selected by axis and shapes the result.
// Stage 1 (Slice): AxisNone feeds the flattened value as a single slice;
// AxisRows feeds each column; AxisCols feeds each row.
// Stage 2 (Assemble): results fill the outputShape-shaped matrix in slice
// order.
// Complexity: O(r*c) plus one fn call per slice.
func reduce(values *matrix.Dense, axis Axis, keepDims bool, fn func([]float64) float64) (*matrix.Dense, error) {
	outR, outC := outputShape(values.Rows(), values.Cols(), axis, keepDims)
	out, err := matrix.NewDense(outR, outC)
	if err != nil {
		return nil, err
	}

	switch axis {
	case AxisRows:
		for j := 0; j < values.Cols(); j++ {
			col, cerr := values.Column(j)
			if cerr != nil {
				return nil, cerr
			}
			if keepDims {
				err = out.Set(0, j, fn(col))
			} else {
				err = out.Set(j, 0, fn(col))
			}
			if err != nil {
				return nil, err
			}
		}
	case AxisCols:
		flat := values.Flatten()
		for i := 0; i < values.Rows(); i++ {
			row := flat[i*values.Cols() : (i+1)*values.Cols()]
			if err = out.Set(i, 0, fn(row)); err != nil {
				return nil, err
			}
		}
	default:
		if err = out.Set(0, 0, fn(values.Flatten())); err != nil {
			return nil, err
		}
	}

	return out, nil
}
