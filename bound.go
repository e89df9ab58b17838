package signifl

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/calebcase/signifl/internal/enc"
)

// Bound extracts the uncertainty bound of encoded values: the largest
// power of two not exceeding the uncertainty they were encoded with.
//
// NaN and infinite elements yield a NaN bound. A zero or subnormal
// element fails with ErrInvalidEncodedValue: the convention never
// produces one, so the input was not encoded (or was corrupted).
func Bound[T constraints.Float](encs []T) (bounds []T, err error) {
	defer Error.WrapP(&err)

	l := layoutOf[T]()

	bounds = make([]T, len(encs))
	for i, e := range encs {
		f := float64(e)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			bounds[i] = T(math.NaN())

			continue
		}

		b, ok := enc.Bound(l, pattern(e))
		if !ok {
			return nil, ErrInvalidEncodedValue.New("zero or subnormal value at index %d: %v", i, e)
		}

		bounds[i] = T(b)
	}

	return bounds, nil
}
