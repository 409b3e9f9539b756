// Package cvxgraph is an in-memory toolkit for building and analyzing
// convex-optimization expression graphs — immutable, curvature-annotated
// nodes that a convexity-checking compiler can certify and a numeric
// pass can evaluate and differentiate.
//
// 🚀 What is cvxgraph?
//
//	A pure-Go library of expression-graph building blocks:
//		• Leaf nodes: variables (with sign and complex annotations) & constants
//		• Norm atoms: the general p-norm plus dedicated 1-norm and ∞-norm
//		• Rational exponents: bounded-denominator approximation of real powers
//		• Numeric passes: extended-domain evaluation and (sub)gradients
//
// ✨ Why choose cvxgraph?
//
//   - Deterministic – every operation is a pure function of immutable state
//   - Rock-solid validation – invalid atoms never enter the graph
//   - Pure Go – no cgo, no hidden deps
//   - Compiler-ready – sign, curvature and monotonicity facts per atom
//
// Everything is organized under four subpackages:
//
//	expr/     — expression-node interface, Variable, Constant, constraints
//	matrix/   — Dense row-major float64 matrices for numeric passes
//	norms/    — p-norm, 1-norm and ∞-norm atoms with gradients
//	rational/ — rational exponent type & range-keyed approximators
//
// Quick example:
//
//	x := expr.NewVariable("x", 2, 1)
//	atom, err := norms.Norm(x, 2, nil)     // Euclidean norm atom
//	val, _ := atom.Evaluate(point)         // ‖point‖₂
//
// Dive into examples/ for full walkthroughs.
//
//	go get github.com/cvxgraph/cvxgraph
package cvxgraph
