package norms

import "github.com/cvxgraph/cvxgraph/expr"

// Curvature, sign and monotonicity facts of the p-norm atom. These are
// pure functions of the resolved exponent and of the argument's sign
// annotations; the convexity compiler combines them with the standard
// composition rules (convex nondecreasing ∘ convex stays convex, etc.).

// Sign reports the value's sign facts: a norm is always nonnegative.
func (n *PNorm) Sign() expr.Sign { return expr.Sign{NonNeg: true, NonPos: false} }

// IsConvex reports whether the atom is convex: exactly when p > 1.
func (n *PNorm) IsConvex() bool { return n.p.CmpInt(1) > 0 }

// IsConcave reports whether the atom is concave: exactly when p < 1,
// negative exponents included. Exactly one of IsConvex/IsConcave holds for
// every accepted exponent (p = 1 is rejected at construction).
func (n *PNorm) IsConcave() bool { return n.p.CmpInt(1) < 0 }

// IsPiecewiseLinear always reports false for the general p-norm.
func (n *PNorm) IsPiecewiseLinear() bool { return false }

// IsNonDecreasing reports whether the atom is non-decreasing in its
// argument: always for p < 1, and for p > 1 when the argument is known
// entrywise nonnegative.
func (n *PNorm) IsNonDecreasing(int) bool {
	return n.p.CmpInt(1) < 0 || (n.p.CmpInt(1) > 0 && n.arg.IsNonneg())
}

// IsNonIncreasing reports whether the atom is non-increasing in its
// argument: for p > 1 when the argument is known entrywise nonpositive.
func (n *PNorm) IsNonIncreasing(int) bool {
	return n.p.CmpInt(1) > 0 && n.arg.IsNonpos()
}

// Domain returns the implicit constraints describing the atom's natural
// domain: for 0 < p < 1 the argument must lie in the nonnegative orthant,
// so an "argument ≥ 0" constraint is synthesized for the compiler.
// Negative exponents carry no domain constraint — their semantics are
// defined by the extended evaluation policy instead.
func (n *PNorm) Domain() []expr.Constraint {
	if n.p.CmpInt(0) > 0 && n.p.CmpInt(1) < 0 {
		return []expr.Constraint{expr.NonNeg(n.arg)}
	}

	return nil
}
