package signifl

import (
	"math"
	"unsafe"

	"github.com/zeebo/errs"
	"golang.org/x/exp/constraints"

	"github.com/calebcase/signifl/internal/enc"
	"github.com/calebcase/signifl/layout"
)

// Error Classes
var (
	Error                  = errs.Class("signifl")
	ErrInvalidEncodedValue = errs.Class("invalid encoded value")
)

// layoutOf selects the layout for the type parameter. The constraint
// admits only 4 and 8 byte floats, so the size decides.
func layoutOf[T constraints.Float]() layout.Layout {
	var z T
	if unsafe.Sizeof(z) == 4 {
		return layout.Single
	}

	return layout.Double
}

// pattern returns the bit pattern of v in its own width.
func pattern[T constraints.Float](v T) uint64 {
	if unsafe.Sizeof(v) == 4 {
		return uint64(math.Float32bits(float32(v)))
	}

	return math.Float64bits(float64(v))
}

// Encode returns vals encoded with their one-sided uncertainties.
//
// uncs must either match vals in length or hold a single uncertainty
// that applies to every value. Negative uncertainties count as their
// magnitude; zero and NaN uncertainties are lifted to the value's own
// representable resolution, while an infinite uncertainty swallows the
// value into an infinity of its sign. NaN and infinite values pass
// through unchanged. Finite results are never zero or subnormal.
func Encode[T constraints.Float](vals, uncs []T) (encs []T, err error) {
	defer Error.WrapP(&err)

	if len(uncs) != len(vals) && len(uncs) != 1 {
		return nil, Error.New("length mismatch: %d values, %d uncertainties", len(vals), len(uncs))
	}

	l := layoutOf[T]()

	encs = make([]T, len(vals))
	for i, v := range vals {
		u := uncs[0]
		if len(uncs) > 1 {
			u = uncs[i]
		}

		encs[i] = T(enc.Encode(l, float64(v), float64(u)))
	}

	return encs, nil
}
