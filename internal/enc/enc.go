// Package enc implements the scalar significance arithmetic shared by
// the exported precision front ends. All carriers are float64: every
// binary16 and binary32 value converts to float64 exactly, and the
// epsilon floor guarantees the results convert back exactly (see
// Encode).
package enc

import (
	"math"
	"math/bits"

	"github.com/calebcase/signifl/layout"
)

// OuterMultiplier widens the inner interval for significance
// comparison. The convention fixes it at 5 as the safety margin
// against one-bound-off comparisons; it is a policy parameter, not a
// derived quantity.
const OuterMultiplier = 5

// fmax returns the larger argument, ignoring NaN (unlike math.Max,
// which propagates it).
func fmax(a, b float64) float64 {
	if math.IsNaN(a) || a < b {
		return b
	}

	return a
}

// Encode returns val snapped to the midpoint of the width-bound
// interval that contains it, where bound is unc rounded down to a
// power of two.
//
// The uncertainty is one-sided: a negative unc counts as its
// magnitude. A zero or NaN unc is lifted to the representable
// resolution floor 2*max(tiny, |val|*eps), so the quotient |val|/bound
// stays below 2^nmant and the midpoint (2*floor(|val|/bound)+1) *
// bound/2 carries at most nmant+1 significand bits: the result is
// exactly representable in the target layout and is never zero or
// subnormal. NaN and infinite values pass through unchanged, and an
// infinite uncertainty swallows the value into an infinity of its
// sign.
func Encode(l layout.Layout, val, unc float64) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return val
	}

	abs := math.Abs(val)

	err := fmax(math.Abs(unc), 2*fmax(l.Tiny, abs*l.Eps))

	// An infinite uncertainty means an infinite bound and an infinite
	// midpoint. Frexp(+Inf) would otherwise yield exponent 0 and a
	// spurious finite bound of 1/2.
	if math.IsInf(err, 1) {
		return math.Copysign(math.Inf(1), val)
	}

	// 2^floor(log2(err)) without the rounding hazard of Log2 near
	// exact powers of two: Frexp yields err = frac * 2^e with frac
	// in [1/2, 1), so floor(log2(err)) = e-1.
	_, e := math.Frexp(err)
	bound := math.Ldexp(1, e-1)

	enc := (2*math.Floor(abs/bound) + 1) * bound / 2

	return math.Copysign(enc, val)
}

// Bound recovers the uncertainty bound from an encoded bit pattern.
// It reports ok=false when the pattern belongs to the zero/subnormal
// exponent class, which Encode never produces.
func Bound(l layout.Layout, pattern uint64) (bound float64, ok bool) {
	_, exponent, significand := l.Decompose(pattern)
	if l.Subnormal(exponent) {
		return 0, false
	}

	if significand != 0 {
		exponent += bits.TrailingZeros64(significand) - l.Nmant
	}

	return math.Ldexp(2, exponent), true
}

// RoundDecimal rounds val to the nearest multiple of the largest
// decimal power not exceeding bound. Ties round toward zero: val is an
// odd multiple of bound/2, so a tie away from zero would land on the
// next interval edge and re-encode to a different midpoint.
func RoundDecimal(val, bound float64) float64 {
	step := math.Pow(10, math.Floor(math.Log10(bound)))

	q := val / step
	if q >= 0 {
		q = math.Ceil(q - 0.5)
	} else {
		q = math.Floor(q + 0.5)
	}

	// A negative value rounding to zero must keep its sign bit:
	// Encode restores the sign from the value alone.
	return math.Copysign(q*step, val)
}
