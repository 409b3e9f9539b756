package rational

import (
	"errors"
	"fmt"
)

// ErrZeroDenominator indicates a Rational was requested with denominator 0.
var ErrZeroDenominator = errors.New("rational: denominator must be non-zero")

// Rational is an exact exponent value: Num/Den with Den > 0 and the pair
// reduced to lowest terms. The zero value represents 0/1.
type Rational struct {
	Num int64
	Den int64
}

// New builds a normalized Rational from numerator and denominator.
// Stage 1 (Validate): reject den == 0.
// Stage 2 (Normalize): move the sign to Num, divide out the gcd.
// Complexity: O(log min(|num|,|den|)) for the gcd.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrZeroDenominator
	}
	// Sign lives on the numerator
	if den < 0 {
		num, den = -num, -den
	}
	// Reduce to lowest terms
	if g := gcd(abs64(num), den); g > 1 {
		num /= g
		den /= g
	}

	return Rational{Num: num, Den: den}, nil
}

// FromInt builds the integer Rational n/1.
func FromInt(n int64) Rational { return Rational{Num: n, Den: 1} }

// Float64 returns the floating-point value of the fraction.
func (r Rational) Float64() float64 { return float64(r.Num) / float64(r.Den) }

// IsInt reports whether the fraction is an integer.
func (r Rational) IsInt() bool { return r.Den == 1 }

// CmpInt compares the fraction with integer n: -1 if r < n, 0 if equal, +1 if r > n.
// Exact; no floating-point round-off.
func (r Rational) CmpInt(n int64) int {
	lhs, rhs := r.Num, n*r.Den
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// String renders the fraction as "a/b", or "a" for integers.
func (r Rational) String() string {
	if r.Den == 1 {
		return fmt.Sprintf("%d", r.Num)
	}

	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// gcd returns the greatest common divisor of non-negative a and b.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// abs64 returns the absolute value of an int64.
func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
