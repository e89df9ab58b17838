package signifl

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/calebcase/signifl/internal/enc"
)

// RoundDecimal rounds encoded values to the last decimal digit their
// uncertainty bound leaves significant, returning the rounded values
// and their bounds.
//
// The binary-exact encoded float would print with spurious precision
// (3.34375 for a value only known to ±0.0625); the returned pair is
// presentable and still lossless: Encode(vals, uncs) reproduces encs
// exactly for finite elements. NaN and infinite elements keep their
// value and carry a NaN uncertainty.
func RoundDecimal[T constraints.Float](encs []T) (vals, uncs []T, err error) {
	defer Error.WrapP(&err)

	uncs, err = Bound(encs)
	if err != nil {
		return nil, nil, err
	}

	vals = make([]T, len(encs))
	for i, e := range encs {
		f := float64(e)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			vals[i] = e

			continue
		}

		vals[i] = T(enc.RoundDecimal(f, float64(uncs[i])))
	}

	return vals, uncs, nil
}
