// Package rational provides exact rational exponents for cvxgraph atoms:
// a Rational value type plus bounded-denominator approximation of real
// exponents, keyed by exponent range.
//
// 🚀 Why rational exponents?
//
//	Downstream convexity proofs and power-cone reformulations require an
//	exact fractional power a/b, so every requested real exponent p is
//	resolved to a best-fit fraction with denominator ≤ a caller-supplied
//	budget before an atom enters the graph.
//
// ✨ Key features:
//   - Pow ranges: PowNeg (p<0), PowMid (0<p<1), PowHigh (p>1) — each
//     variant approximates in the parameterization its range reformulates
//     through, then maps back to the exponent itself
//   - continued-fraction search (limit-denominator) over math/big.Rat,
//     exact for float64 inputs
//   - budget safety: a budget too small to represent a legal exponent
//     fails with ErrDenominatorBudget instead of resolving to 0 or 1
//
// Increasing the denominator budget never worsens the approximation error
// for a fixed requested exponent.
//
// ⚙️ Usage:
//
//	r, apxErr, err := rational.PowHigh(math.Pi, 1024)
//	// r ≈ 355/113, apxErr = |r − π|
package rational
