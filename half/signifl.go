package half

import (
	"math"

	"github.com/zeebo/errs"

	"github.com/calebcase/signifl/internal/enc"
	"github.com/calebcase/signifl/layout"
)

// Error Classes
var (
	Error                  = errs.Class("half")
	ErrInvalidEncodedValue = errs.Class("invalid encoded value")
)

// Encode returns vals encoded with their one-sided uncertainties as
// binary16 patterns.
//
// uncs must either match vals in length or hold a single uncertainty
// that applies to every value. The contract matches the parent
// package's Encode with binary16 constants: the uncertainty floor is
// 2*max(2^-14, |val|*2^-10), so every finite result is exactly
// representable and never zero or subnormal.
func Encode(vals, uncs []float32) (encs []Num, err error) {
	defer Error.WrapP(&err)

	if len(uncs) != len(vals) && len(uncs) != 1 {
		return nil, Error.New("length mismatch: %d values, %d uncertainties", len(vals), len(uncs))
	}

	encs = make([]Num, len(vals))
	for i, v := range vals {
		u := uncs[0]
		if len(uncs) > 1 {
			u = uncs[i]
		}

		encs[i] = New(float32(enc.Encode(layout.Half, float64(v), float64(u))))
	}

	return encs, nil
}

// Bound extracts the uncertainty bound of encoded values. NaN and
// infinite elements yield a NaN bound; zero or subnormal elements fail
// with ErrInvalidEncodedValue.
func Bound(encs []Num) (bounds []float32, err error) {
	defer Error.WrapP(&err)

	bounds = make([]float32, len(encs))
	for i, e := range encs {
		if e.IsNaN() || e.IsInf() {
			bounds[i] = float32(math.NaN())

			continue
		}

		b, ok := enc.Bound(layout.Half, uint64(e.Val))
		if !ok {
			return nil, ErrInvalidEncodedValue.New("zero or subnormal value at index %d: %v", i, e)
		}

		bounds[i] = float32(b)
	}

	return bounds, nil
}

func intervals(encs []Num, multiplier float64) (lower, upper []float32, err error) {
	bounds, err := Bound(encs)
	if err != nil {
		return nil, nil, err
	}

	lower = make([]float32, len(encs))
	upper = make([]float32, len(encs))
	for i, e := range encs {
		f := float64(e.Float32())
		margin := multiplier * float64(bounds[i]) / 2

		lower[i] = float32(f - margin)
		upper[i] = float32(f + margin)
	}

	return lower, upper, nil
}

// InnerBounds returns the tightest bounds on the values the encoded
// elements were produced from: encoded ± bound/2.
func InnerBounds(encs []Num) (lower, upper []float32, err error) {
	defer Error.WrapP(&err)

	return intervals(encs, 1)
}

// OuterBounds returns the widened bounds used for significance
// comparison: encoded ± 5*bound/2.
func OuterBounds(encs []Num) (lower, upper []float32, err error) {
	defer Error.WrapP(&err)

	return intervals(encs, enc.OuterMultiplier)
}

// GreaterThan reports, element-wise, whether a is greater than b in a
// significant way. Elements involving NaN or an infinity compare
// false.
func GreaterThan(a, b []Num) (gt []bool, err error) {
	defer Error.WrapP(&err)

	if len(a) != len(b) {
		return nil, Error.New("length mismatch: %d vs %d", len(a), len(b))
	}

	alower, _, err := OuterBounds(a)
	if err != nil {
		return nil, err
	}

	_, bupper, err := OuterBounds(b)
	if err != nil {
		return nil, err
	}

	gt = make([]bool, len(a))
	for i := range gt {
		gt[i] = alower[i] > bupper[i]
	}

	return gt, nil
}

// LessThan reports, element-wise, whether a is less than b in a
// significant way.
func LessThan(a, b []Num) (lt []bool, err error) {
	defer Error.WrapP(&err)

	return GreaterThan(b, a)
}

// Incomparable reports, element-wise, whether neither value is
// significantly greater than the other.
func Incomparable(a, b []Num) (ic []bool, err error) {
	defer Error.WrapP(&err)

	gt, err := GreaterThan(a, b)
	if err != nil {
		return nil, err
	}

	lt, err := GreaterThan(b, a)
	if err != nil {
		return nil, err
	}

	ic = make([]bool, len(a))
	for i := range ic {
		ic[i] = !(gt[i] || lt[i])
	}

	return ic, nil
}

// RoundDecimal rounds encoded values to the last decimal digit their
// uncertainty bound leaves significant. Encode(vals, uncs) reproduces
// encs exactly for finite elements; NaN and infinite elements keep
// their value and carry a NaN uncertainty.
func RoundDecimal(encs []Num) (vals, uncs []float32, err error) {
	defer Error.WrapP(&err)

	uncs, err = Bound(encs)
	if err != nil {
		return nil, nil, err
	}

	vals = make([]float32, len(encs))
	for i, e := range encs {
		if e.IsNaN() || e.IsInf() {
			vals[i] = e.Float32()

			continue
		}

		vals[i] = float32(enc.RoundDecimal(float64(e.Float32()), float64(uncs[i])))
	}

	return vals, uncs, nil
}
