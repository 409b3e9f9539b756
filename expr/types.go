// Package expr: node interface, sign facts and constraint types shared by
// every element of the expression graph.
package expr

import "fmt"

// Node is the read-only surface every expression-graph element exposes.
// Atoms hold their argument through this interface and never mutate it;
// all methods must be pure readers of immutable state.
type Node interface {
	// Rows and Cols describe the node's shape; Size is Rows()*Cols().
	Rows() int
	Cols() int
	Size() int

	// Name returns a stable display name used in atom printing.
	Name() string

	// IsComplex reports whether the node may take complex values.
	IsComplex() bool

	// IsNonneg reports whether every entry is known to be ≥ 0.
	IsNonneg() bool

	// IsNonpos reports whether every entry is known to be ≤ 0.
	IsNonpos() bool

	// Equal reports structural equality with another node.
	Equal(other Node) bool
}

// Sign is the (nonnegative, nonpositive) fact pair an expression
// contributes to convexity analysis. Both flags set means identically zero;
// both clear means the sign is unknown.
type Sign struct {
	NonNeg bool
	NonPos bool
}

// String renders the sign fact for diagnostics.
func (s Sign) String() string {
	switch {
	case s.NonNeg && s.NonPos:
		return "zero"
	case s.NonNeg:
		return "nonneg"
	case s.NonPos:
		return "nonpos"
	default:
		return "unknown"
	}
}

// ConstraintKind enumerates the implicit constraint shapes atoms synthesize.
type ConstraintKind int

const (
	// NonNegConstraint requires every entry of the constrained node to be ≥ 0.
	NonNegConstraint ConstraintKind = iota
)

// Constraint is an implicit inequality an atom hands to the compiler to
// describe its natural domain. It references, and does not own, the node.
type Constraint struct {
	Expr Node
	Kind ConstraintKind
}

// NonNeg builds the "node ≥ 0" domain constraint.
func NonNeg(n Node) Constraint {
	return Constraint{Expr: n, Kind: NonNegConstraint}
}

// String renders the constraint in solver-facing notation, e.g. "x >= 0".
func (c Constraint) String() string {
	return fmt.Sprintf("%s >= 0", c.Expr.Name())
}
