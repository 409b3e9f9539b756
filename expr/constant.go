package expr

import (
	"errors"
	"fmt"

	"github.com/cvxgraph/cvxgraph/matrix"
)

// ErrNilValue indicates that a Constant was built from a nil matrix.
var ErrNilValue = errors.New("expr: constant value is nil")

// Constant is a leaf node wrapping a fixed numeric matrix. Its sign facts
// are derived once from the entries at construction time.
type Constant struct {
	value *matrix.Dense
	sign  Sign
}

// NewConstant wraps value in an immutable Constant leaf.
// The matrix is cloned, so later mutation of value cannot leak into the graph.
func NewConstant(value *matrix.Dense) (*Constant, error) {
	if value == nil {
		return nil, ErrNilValue
	}

	clone := value.Clone()
	sign := Sign{NonNeg: true, NonPos: true}
	for _, e := range clone.Flatten() {
		if e > 0 {
			sign.NonPos = false
		}
		if e < 0 {
			sign.NonNeg = false
		}
	}

	return &Constant{value: clone, sign: sign}, nil
}

// MustConstant builds a Constant from row slices, panicking on malformed
// input. Intended for tests and examples where the literal is known good.
func MustConstant(rows [][]float64) *Constant {
	m, err := matrix.FromRows(rows)
	if err != nil {
		panic(fmt.Sprintf("expr: MustConstant: %v", err))
	}
	c, err := NewConstant(m)
	if err != nil {
		panic(fmt.Sprintf("expr: MustConstant: %v", err))
	}

	return c
}

// Value returns a defensive copy of the constant's matrix.
func (c *Constant) Value() *matrix.Dense { return c.value.Clone() }

// Rows returns the number of rows.
func (c *Constant) Rows() int { return c.value.Rows() }

// Cols returns the number of columns.
func (c *Constant) Cols() int { return c.value.Cols() }

// Size returns the total element count.
func (c *Constant) Size() int { return c.value.Rows() * c.value.Cols() }

// Name returns a compact display name encoding the constant's shape.
func (c *Constant) Name() string {
	return fmt.Sprintf("const(%dx%d)", c.value.Rows(), c.value.Cols())
}

// IsComplex always reports false: constants hold real entries.
func (c *Constant) IsComplex() bool { return false }

// IsNonneg reports whether every entry is ≥ 0.
func (c *Constant) IsNonneg() bool { return c.sign.NonNeg }

// IsNonpos reports whether every entry is ≤ 0.
func (c *Constant) IsNonpos() bool { return c.sign.NonPos }

// Sign returns the entrywise sign fact pair.
func (c *Constant) Sign() Sign { return c.sign }

// Equal reports structural equality: same shape and identical entries.
func (c *Constant) Equal(other Node) bool {
	o, ok := other.(*Constant)
	if !ok || c.value.Rows() != o.value.Rows() || c.value.Cols() != o.value.Cols() {
		return false
	}
	a, b := c.value.Flatten(), o.value.Flatten()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
