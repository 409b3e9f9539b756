package norms

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cvxgraph/cvxgraph/expr"
)

// Norm is the factory entry point for norm atoms. It routes the requested
// exponent to the atom class owning it:
//   - p == 1     → OneNorm
//   - p == +Inf  → InfNorm
//   - all other accepted p → PNorm
//
// Invalid exponents (0, NaN, −Inf, or a budget that cannot represent the
// request) fail with ErrInvalidExponent. opts may be nil for defaults.
//
// Example:
//
//	atom, err := norms.Norm(x, 2, nil)          // Euclidean norm
//	atom, err = norms.Norm(x, 1, nil)           // routed to OneNorm
//	atom, err = norms.Norm(x, math.Inf(1), nil) // routed to InfNorm
func Norm(x expr.Node, p float64, opts *Options) (Atom, error) {
	switch {
	case p == 1:
		return NewOneNorm(x, opts)
	case math.IsInf(p, 1):
		return NewInfNorm(x, opts)
	default:
		return NewPNorm(x, p, opts)
	}
}

// NormOf is the string-exponent convenience wrapper around Norm: the
// exponent may be numeric text or the case-insensitive sentinel "inf".
func NormOf(x expr.Node, p string, opts *Options) (Atom, error) {
	v, err := ParseExponent(p)
	if err != nil {
		return nil, err
	}

	return Norm(x, v, opts)
}

// ParseExponent parses a textual exponent: numeric text in any float
// syntax, or the case-insensitive infinity sentinel "inf". Unparseable
// input fails with ErrInvalidExponent.
func ParseExponent(s string) (float64, error) {
	t := strings.TrimSpace(s)
	if strings.EqualFold(t, "inf") {
		return math.Inf(1), nil
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("norms: cannot parse exponent %q: %w", s, ErrInvalidExponent)
	}

	return v, nil
}
