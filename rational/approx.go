package rational

import (
	"errors"
	"math"
	"math/big"
)

// Sentinel errors for the exponent approximators.
var (
	// ErrExponentRange indicates the requested exponent lies outside the
	// range the invoked variant handles (including NaN and ±Inf).
	ErrExponentRange = errors.New("rational: exponent outside variant range")

	// ErrBadDenominator indicates a non-positive denominator budget.
	ErrBadDenominator = errors.New("rational: max denominator must be >= 1")

	// ErrDenominatorBudget indicates the budget is too small to represent
	// any legal exponent in the variant's range (the search would collapse
	// to 0 or 1, which are not valid atom exponents).
	ErrDenominatorBudget = errors.New("rational: denominator budget cannot represent a legal exponent")
)

// PowHigh resolves a requested exponent p > 1 into a rational exponent
// with denominator ≤ maxDen, returning the resolved value and the absolute
// approximation error |resolved − p|.
//
// The high range reformulates through the reciprocal: the search
// approximates 1/p ∈ (0,1) and returns its inverse, so the resolved
// exponent is always a fraction b/a with a ≤ maxDen and b/a > 1.
func PowHigh(p float64, maxDen int64) (Rational, float64, error) {
	if maxDen < 1 {
		return Rational{}, 0, ErrBadDenominator
	}
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 1 {
		return Rational{}, 0, ErrExponentRange
	}

	// Approximate the reciprocal 1/p in (0,1).
	recip := new(big.Rat).Inv(new(big.Rat).SetFloat64(p))
	fr := limitDenominator(recip, maxDen)
	// A reciprocal of 0 or 1 would resolve p to ∞ or 1.
	if fr.Num == 0 || fr.Num == fr.Den {
		return Rational{}, 0, ErrDenominatorBudget
	}

	resolved := Rational{Num: fr.Den, Den: fr.Num} // invert; already in lowest terms

	return resolved, math.Abs(resolved.Float64() - p), nil
}

// PowMid resolves a requested exponent 0 < p < 1 into a rational exponent
// with denominator ≤ maxDen, returning the resolved value and the absolute
// approximation error |resolved − p|. The mid range approximates p directly.
func PowMid(p float64, maxDen int64) (Rational, float64, error) {
	if maxDen < 1 {
		return Rational{}, 0, ErrBadDenominator
	}
	if math.IsNaN(p) || p <= 0 || p >= 1 {
		return Rational{}, 0, ErrExponentRange
	}

	fr := limitDenominator(new(big.Rat).SetFloat64(p), maxDen)
	// Collapsing to 0 or 1 would leave the (0,1) range.
	if fr.Num == 0 || fr.Num == fr.Den {
		return Rational{}, 0, ErrDenominatorBudget
	}

	return fr, math.Abs(fr.Float64() - p), nil
}

// PowNeg resolves a requested exponent p < 0 into a rational exponent with
// denominator ≤ maxDen, returning the resolved value and the absolute
// approximation error |resolved − p|.
//
// The negative range reformulates through q = p/(p−1) ∈ (0,1): the search
// approximates q and maps the result back via p' = q/(q−1), which keeps
// the resolved denominator within the budget.
func PowNeg(p float64, maxDen int64) (Rational, float64, error) {
	if maxDen < 1 {
		return Rational{}, 0, ErrBadDenominator
	}
	if math.IsNaN(p) || math.IsInf(p, 0) || p >= 0 {
		return Rational{}, 0, ErrExponentRange
	}

	// q = p/(p-1), exact over big.Rat.
	rp := new(big.Rat).SetFloat64(p)
	q := new(big.Rat).Quo(rp, new(big.Rat).Sub(rp, big.NewRat(1, 1)))
	fq := limitDenominator(q, maxDen)
	// q resolved to 0 maps back to exponent 0; q resolved to 1 maps to ±∞.
	if fq.Num == 0 || fq.Num == fq.Den {
		return Rational{}, 0, ErrDenominatorBudget
	}

	// Map back: a/b → a/(a-b), normalized to a positive denominator b-a ≤ maxDen.
	resolved, err := New(fq.Num, fq.Num-fq.Den)
	if err != nil {
		return Rational{}, 0, err
	}

	return resolved, math.Abs(resolved.Float64() - p), nil
}

// limitDenominator returns the closest fraction to non-negative x with
// denominator ≤ maxDen, as a reduced Rational.
//
// Algorithm Outline (continued-fraction convergents):
//  1. If x's own denominator fits the budget, return x exactly.
//  2. Walk the continued-fraction expansion, tracking the last two
//     convergents p0/q0 and p1/q1, until the next denominator would
//     exceed maxDen. Termination with a zero remainder cannot occur here:
//     that would mean an exact in-budget fraction, handled by step 1.
//  3. Form the two candidate bounds — the best semiconvergent
//     (p0+k·p1)/(q0+k·q1) with k = ⌊(maxDen−q0)/q1⌋, and the last
//     convergent p1/q1 — and return whichever is closer to x
//     (ties favor the convergent).
//
// Complexity: O(log maxDen) big-integer steps.
func limitDenominator(x *big.Rat, maxDen int64) Rational {
	md := big.NewInt(maxDen)
	if x.Denom().Cmp(md) <= 0 {
		return Rational{Num: x.Num().Int64(), Den: x.Denom().Int64()}
	}

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n := new(big.Int).Set(x.Num())
	d := new(big.Int).Set(x.Denom())
	for {
		a := new(big.Int).Quo(n, d)
		q2 := new(big.Int).Add(q0, new(big.Int).Mul(a, q1))
		if q2.Cmp(md) > 0 {
			break
		}
		p2 := new(big.Int).Add(p0, new(big.Int).Mul(a, p1))
		p0, q0 = p1, q1
		p1, q1 = p2, q2
		n, d = d, new(big.Int).Sub(n, new(big.Int).Mul(a, d))
	}

	// Best semiconvergent under the budget.
	k := new(big.Int).Quo(new(big.Int).Sub(md, q0), q1)
	bound1 := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	bound2 := new(big.Rat).SetFrac(p1, q1)

	d1 := new(big.Rat).Abs(new(big.Rat).Sub(bound1, x))
	d2 := new(big.Rat).Abs(new(big.Rat).Sub(bound2, x))
	best := bound2
	if d2.Cmp(d1) > 0 {
		best = bound1
	}

	return Rational{Num: best.Num().Int64(), Den: best.Denom().Int64()}
}
