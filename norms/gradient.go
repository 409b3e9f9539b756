package norms

import (
	"math"

	"github.com/cvxgraph/cvxgraph/matrix"
)

// Gradient computes the (sub)gradient of the p-norm with respect to its
// argument at values.
//
// Each column is processed independently (AxisNone treats the flattened
// value as one column) and the per-column results are assembled into the
// output; a single column yielding "no gradient" invalidates the whole
// request, so ok=false is returned immediately.
//
// Shapes: AxisNone → n×1 where n is the argument size; axis reductions →
// the argument's shape, one gradient column per reduced slice.
func (n *PNorm) Gradient(values *matrix.Dense) (*matrix.Dense, bool, error) {
	if err := checkValue(n.arg, values); err != nil {
		return nil, false, err
	}

	return assembleGradient(values, n.axis, n.columnGradient)
}

// columnGradient computes the (sub)gradient for a single column.
//
// Algorithm:
//  1. p < 1 with any entry ≤ 0 → no gradient (outside the open domain
//     where the concave branch is differentiable).
//  2. denom = ‖column‖_p raised to the power p−1.
//  3. denom == 0: the convex branch (p > 1) returns the all-zero column —
//     a valid subgradient choice at the origin; the concave branch has no
//     gradient there.
//  4. Otherwise each entry maps to sign-preserving |entry|^(p−1) / denom.
func (n *PNorm) columnGradient(col []float64) ([]float64, bool) {
	p := n.p.Float64()

	if p < 1 {
		for _, e := range col {
			if e <= 0 {
				return nil, false
			}
		}
	}

	denom := math.Pow(rawNorm(col, p), p-1)
	if denom == 0 {
		if p > 1 {
			return make([]float64, len(col)), true // zero vector ∈ subdifferential at 0
		}

		return nil, false
	}

	out := make([]float64, len(col))
	for i, e := range col {
		out[i] = signedPow(e, p-1) / denom
	}

	return out, true
}

// signedPow is the sign-preserving power sign(x)·|x|^e, with 0 mapping to 0.
func signedPow(x, e float64) float64 {
	switch {
	case x == 0:
		return 0
	case x < 0:
		return -math.Pow(-x, e)
	default:
		return math.Pow(x, e)
	}
}

// assembleGradient runs colGrad over the slices selected by axis and
// assembles the per-column results. AxisNone produces a single flattened
// gradient column; axis reductions fill a matrix of the argument's shape.
// The first "no gradient" slice aborts the whole request with ok=false.
func assembleGradient(values *matrix.Dense, axis Axis,
	colGrad func([]float64) ([]float64, bool)) (*matrix.Dense, bool, error) {
	switch axis {
	case AxisRows:
		out, err := matrix.NewDense(values.Rows(), values.Cols())
		if err != nil {
			return nil, false, err
		}
		for j := 0; j < values.Cols(); j++ {
			col, cerr := values.Column(j)
			if cerr != nil {
				return nil, false, cerr
			}
			g, ok := colGrad(col)
			if !ok {
				return nil, false, nil
			}
			if err = out.SetColumn(j, g); err != nil {
				return nil, false, err
			}
		}

		return out, true, nil
	case AxisCols:
		out, err := matrix.NewDense(values.Rows(), values.Cols())
		if err != nil {
			return nil, false, err
		}
		flat := values.Flatten()
		cols := values.Cols()
		for i := 0; i < values.Rows(); i++ {
			g, ok := colGrad(flat[i*cols : (i+1)*cols])
			if !ok {
				return nil, false, nil
			}
			for j := 0; j < cols; j++ {
				if err = out.Set(i, j, g[j]); err != nil {
					return nil, false, err
				}
			}
		}

		return out, true, nil
	default:
		g, ok := colGrad(values.Flatten())
		if !ok {
			return nil, false, nil
		}
		out, err := matrix.FromColumn(g)
		if err != nil {
			return nil, false, err
		}

		return out, true, nil
	}
}
