// Package matrix_test contains unit tests for the Dense matrix used by
// cvxgraph's numeric passes.
package matrix_test

import (
	"testing"

	"github.com/cvxgraph/cvxgraph/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsColsSize verifies that Rows(), Cols() and Size() report the shape.
func TestRowsColsSize(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, 12, m.Size())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)                                // negative row index
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds

	_, err = m.At(0, 2)                                 // column index out of range
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds

	err = m.Set(2, 0, 1.23)                             // row index out of range
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestFromRows builds a matrix from row slices and rejects ragged input.
func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, m.Flatten(), "row-major layout")

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}}) // ragged rows
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestFromColumnAndColumn verifies vector round-trips through n×1 matrices.
func TestFromColumnAndColumn(t *testing.T) {
	m, err := matrix.FromColumn([]float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 1, m.Cols())

	col, err := m.Column(0)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, col)

	_, err = m.Column(1) // only one column exists
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestSetColumn validates column assignment and its error modes.
func TestSetColumn(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.SetColumn(1, []float64{5, 6}))
	require.Equal(t, []float64{0, 5, 0, 6}, m.Flatten())

	err = m.SetColumn(2, []float64{1, 2}) // column index out of range
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.SetColumn(0, []float64{1}) // wrong vector length
	require.ErrorIs(t, err, matrix.ErrLengthMismatch)
}

// TestCloneIndependence ensures Clone() produces a deep copy.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9)) // mutate the clone only

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig, "original must be unaffected by clone mutation")
}

// TestFlattenCopies ensures Flatten() returns a defensive copy.
func TestFlattenCopies(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}})
	require.NoError(t, err)

	f := m.Flatten()
	f[0] = 100 // mutate the copy

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig)
}
