// Package expr defines the node surface of the cvxgraph expression graph:
// the Node interface every graph element implements, the two leaf node
// kinds (Variable and Constant), sign facts, and the implicit domain
// constraints atoms hand to the convexity compiler.
//
// ✨ Key concepts:
//
//   - Node — anything with a shape, a display name, sign facts and a
//     complex-valued predicate. Atoms query their argument exclusively
//     through this interface.
//   - Sign — the (nonnegative, nonpositive) fact pair propagated through
//     the graph during convexity analysis.
//   - Constraint — an implicit inequality (currently "node ≥ 0") that an
//     atom synthesizes when its natural domain is restricted.
//
// Nodes are immutable after construction; every method is a pure reader,
// so nodes may be shared freely between atoms and goroutines.
//
// ⚙️ Usage:
//
//	x := expr.NewVariable("x", 4, 1, expr.WithNonneg())
//	x.IsNonneg() // true
//	c := expr.MustConstant([][]float64{{1, 2}, {3, 4}})
//	c.Sign()     // {NonNeg: true, NonPos: false}
package expr
