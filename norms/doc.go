// Package norms provides the norm atoms of the cvxgraph expression graph:
// the general p-norm (PNorm) for any accepted exponent, plus the dedicated
// 1-norm (OneNorm) and ∞-norm (InfNorm) atoms the factory routes to.
//
// 🚀 What is a norm atom?
//
//	An immutable, curvature-annotated graph element representing ‖x‖_p.
//	Construction resolves the requested real exponent into an exact
//	rational approximation (a power-cone requirement downstream) and
//	validates the configuration once; afterwards the atom answers the
//	convexity compiler's queries and runs numeric passes statelessly.
//
// ✨ Key features:
//   - exponent resolution via range-keyed rational approximators
//     (denominator budget, exact for integers and simple fractions)
//   - curvature facts: convex iff p>1, concave iff p<1, never both
//   - monotonicity facts driven by the argument's sign annotations
//   - implicit domain constraint x ≥ 0 synthesized for 0<p<1
//   - extended-domain evaluation: p<1 with a negative entry → −Inf,
//     p<0 with a zero entry → 0 (compatibility semantics, not the
//     mathematical norm)
//   - (sub)gradients with defined behavior at the origin and outside
//     the concave branch's open domain
//
// Atoms are pure values after construction: evaluation and gradient calls
// are safe to run concurrently on the same atom with different inputs.
//
// ⚙️ Usage:
//
//	x := expr.NewVariable("x", 2, 1)
//	atom, err := norms.Norm(x, 2, nil) // Euclidean norm
//	point, _ := matrix.FromColumn([]float64{3, 4})
//	val, _ := atom.Evaluate(point)     // 1×1 matrix holding 5
//	grad, ok, _ := atom.Gradient(point)
//
// Error policy: invalid exponents and configurations fail construction
// with ErrInvalidExponent / ErrUnsupportedConfig and never enter the
// graph; numeric passes never fail on in-domain input — out-of-domain
// points yield sentinel results (−Inf, 0, or "no gradient") so that an
// optimizer probing infeasible points does not abort.
package norms
