package norms_test

import (
	"testing"

	"github.com/cvxgraph/cvxgraph/expr"
	"github.com/cvxgraph/cvxgraph/matrix"
	"github.com/cvxgraph/cvxgraph/norms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gradColumn builds the atom and requests the subgradient at column v.
func gradColumn(t *testing.T, p float64, v []float64) (*matrix.Dense, bool) {
	t.Helper()

	atom, err := norms.NewPNorm(vec(len(v)), p, nil)
	require.NoError(t, err)
	point, err := matrix.FromColumn(v)
	require.NoError(t, err)
	grad, ok, err := atom.Gradient(point)
	require.NoError(t, err)

	return grad, ok
}

// TestGradient_Euclidean verifies the standard Euclidean-norm gradient.
func TestGradient_Euclidean(t *testing.T) {
	grad, ok := gradColumn(t, 2, []float64{3, 4})
	require.True(t, ok)
	require.Equal(t, 2, grad.Rows())
	require.Equal(t, 1, grad.Cols())
	assert.InDelta(t, 0.6, mustAt(t, grad, 0, 0), 1e-12)
	assert.InDelta(t, 0.8, mustAt(t, grad, 1, 0), 1e-12)
}

// TestGradient_OriginConvexBranch verifies the subgradient choice at the
// origin: the zero vector for p>1.
func TestGradient_OriginConvexBranch(t *testing.T) {
	grad, ok := gradColumn(t, 2, []float64{0, 0})
	require.True(t, ok, "the convex branch has a subgradient at the origin")
	assert.Equal(t, []float64{0, 0}, grad.Flatten())
}

// TestGradient_ConcaveBranchDomainExit verifies "no gradient" when any
// entry leaves the open domain of the concave branch.
func TestGradient_ConcaveBranchDomainExit(t *testing.T) {
	_, ok := gradColumn(t, 0.5, []float64{0, 1})
	assert.False(t, ok, "a zero entry exits the open domain for p<1")

	_, ok = gradColumn(t, 0.5, []float64{-1, 1})
	assert.False(t, ok, "a negative entry exits the domain for p<1")

	_, ok = gradColumn(t, -1, []float64{0, 2})
	assert.False(t, ok, "the rule covers negative exponents")
}

// TestGradient_ConcaveBranchInterior checks the analytic gradient on the
// concave branch's open domain.
func TestGradient_ConcaveBranchInterior(t *testing.T) {
	// f(x) = (√x₁+√x₂)² at (1,4): ∂f/∂x₁ = 3, ∂f/∂x₂ = 1.5
	grad, ok := gradColumn(t, 0.5, []float64{1, 4})
	require.True(t, ok)
	assert.InDelta(t, 3.0, mustAt(t, grad, 0, 0), 1e-12)
	assert.InDelta(t, 1.5, mustAt(t, grad, 1, 0), 1e-12)
}

// TestGradient_NegativeExponentInterior checks the analytic gradient for p<0.
func TestGradient_NegativeExponentInterior(t *testing.T) {
	// f(x) = (x₁⁻¹+x₂⁻¹)⁻¹ at (1,1): ∂f/∂xᵢ = 1/4
	grad, ok := gradColumn(t, -1, []float64{1, 1})
	require.True(t, ok)
	assert.InDelta(t, 0.25, mustAt(t, grad, 0, 0), 1e-12)
	assert.InDelta(t, 0.25, mustAt(t, grad, 1, 0), 1e-12)
}

// TestGradient_MatrixFlattened returns a flattened n×1 gradient for a
// matrix argument under AxisNone.
func TestGradient_MatrixFlattened(t *testing.T) {
	arg := expr.NewVariable("A", 2, 2)
	atom, err := norms.NewPNorm(arg, 2, nil)
	require.NoError(t, err)

	point, err := matrix.FromRows([][]float64{{3, 4}, {0, 0}})
	require.NoError(t, err)
	grad, ok, err := atom.Gradient(point)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 4, grad.Rows(), "gradient is flattened, one row per argument entry")
	require.Equal(t, 1, grad.Cols())
	assert.InDelta(t, 0.6, mustAt(t, grad, 0, 0), 1e-12)
	assert.InDelta(t, 0.8, mustAt(t, grad, 1, 0), 1e-12)
	assert.Equal(t, 0.0, mustAt(t, grad, 2, 0))
}

// TestGradient_AxisPerColumn assembles independent per-column gradients,
// including a zero column handled by the origin subgradient rule.
func TestGradient_AxisPerColumn(t *testing.T) {
	arg := expr.NewVariable("A", 2, 2)
	atom, err := norms.NewPNorm(arg, 2, &norms.Options{Axis: norms.AxisRows})
	require.NoError(t, err)

	point, err := matrix.FromRows([][]float64{{3, 0}, {4, 0}})
	require.NoError(t, err)
	grad, ok, err := atom.Gradient(point)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, grad.Rows(), "axis gradients keep the argument's shape")
	require.Equal(t, 2, grad.Cols())
	assert.InDelta(t, 0.6, mustAt(t, grad, 0, 0), 1e-12)
	assert.InDelta(t, 0.8, mustAt(t, grad, 1, 0), 1e-12)
	assert.Equal(t, 0.0, mustAt(t, grad, 0, 1), "zero column takes the origin subgradient")
	assert.Equal(t, 0.0, mustAt(t, grad, 1, 1))
}

// TestGradient_InputValidation covers the nil and shape error sentinels.
func TestGradient_InputValidation(t *testing.T) {
	atom, err := norms.NewPNorm(vec(2), 2, nil)
	require.NoError(t, err)

	_, _, err = atom.Gradient(nil)
	assert.ErrorIs(t, err, norms.ErrNilValue)

	wrong, err := matrix.FromColumn([]float64{1, 2, 3})
	require.NoError(t, err)
	_, _, err = atom.Gradient(wrong)
	assert.ErrorIs(t, err, norms.ErrShapeMismatch)
}

// mustAt reads one matrix entry, failing the test on an indexing error.
func mustAt(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()

	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
