// Package signifl encodes a one-sided uncertainty bound into the bit
// pattern of an IEEE-754 binary floating point value, and recovers it
// again without any side channel.
//
// Convention
//
// A measurement (value, uncertainty) is stored as a single float. The
// uncertainty is first rounded down to a power of two:
//
//  bound = 2^floor(log2(|uncertainty|))
//
// and the value is then snapped to the midpoint of the width-bound
// interval that contains it:
//
//  encoded = sign * (2*floor(|value|/bound) + 1) * bound/2
//
// The midpoint is an odd multiple of bound/2, so the lowest set bit of
// the encoded significand (implicit leading 1 included) sits exactly
// at the weight bound/2. For example, 10/3 with uncertainty 0.1 in
// binary32 (bound 2^-4, midpoint 3.34375 = 107 * 2^-5):
//
//  | s | e ....... e | m ................... m |
//  |---|-------------|-------------------------|
//  | 0 | 1 0 0 0 0 0 0 0 | 1 0 1 0 1 1 0 0 0 ... 0 |
//  |---|-------------|---------------^---------|
//                                    bound/2 = 2^-5
//
// Reading the position of that bit recovers the bound; no bits are
// spent outside the value itself. The price is the value's trailing
// precision, which the convention deems insignificant anyway.
//
// Because the uncertainty is floored to the representable resolution
// of the value before quantization, an encoded value is never zero and
// never subnormal. Encountering one in Bound (or anything built on it)
// therefore means the input was never produced by Encode, and it fails
// with ErrInvalidEncodedValue. NaN and infinities are not errors: they
// pass through Encode unchanged and carry a NaN bound, meaning
// "uncertainty unknown". An infinite uncertainty likewise swallows a
// finite value into an infinity of its sign.
//
// Derived Views
//
// InnerBounds returns the tightest interval consistent with the
// convention (encoded ± bound/2): the original value lay inside it.
// OuterBounds widens that to encoded ± 5*bound/2 and backs the
// significance predicates: GreaterThan(a, b) holds only when the outer
// intervals of a and b are disjoint and ordered. Incomparable is not
// equality — it is true whenever the outer intervals overlap, and the
// predicates do not form a total order.
//
// RoundDecimal converts an encoded value back to a human-presentable
// (value, uncertainty) pair, rounded to the last significant decimal
// digit, such that Encode(value, uncertainty) reproduces the encoded
// float bit for bit.
//
// All operations are element-wise over slices, pure, and never mutate
// their inputs. The generic functions serve float32 and float64; the
// half package carries the same operation set for binary16 patterns.
package signifl
