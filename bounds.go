package signifl

import (
	"golang.org/x/exp/constraints"

	"github.com/calebcase/signifl/internal/enc"
)

func intervals[T constraints.Float](encs []T, multiplier float64) (lower, upper []T, err error) {
	bounds, err := Bound(encs)
	if err != nil {
		return nil, nil, err
	}

	lower = make([]T, len(encs))
	upper = make([]T, len(encs))
	for i, e := range encs {
		margin := multiplier * float64(bounds[i]) / 2

		lower[i] = T(float64(e) - margin)
		upper[i] = T(float64(e) + margin)
	}

	return lower, upper, nil
}

// InnerBounds returns the tightest bounds on the values the encoded
// elements were produced from: encoded ± bound/2. NaN and infinite
// elements yield NaN bounds.
func InnerBounds[T constraints.Float](encs []T) (lower, upper []T, err error) {
	defer Error.WrapP(&err)

	return intervals(encs, 1)
}

// OuterBounds returns the widened bounds used for significance
// comparison: encoded ± 5*bound/2. NaN and infinite elements yield
// NaN bounds.
func OuterBounds[T constraints.Float](encs []T) (lower, upper []T, err error) {
	defer Error.WrapP(&err)

	return intervals(encs, enc.OuterMultiplier)
}
