package signifl

import (
	"golang.org/x/exp/constraints"
)

// GreaterThan reports, element-wise, whether a is greater than b in a
// significant way: the outer interval of a lies entirely above the
// outer interval of b.
//
// Any element involving NaN or an infinity compares false. Together
// with LessThan and Incomparable this is not a total order: elements
// whose outer intervals overlap are incomparable, which is weaker than
// equality.
func GreaterThan[T constraints.Float](a, b []T) (gt []bool, err error) {
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
// significant way. It is GreaterThan with the arguments swapped.
func LessThan[T constraints.Float](a, b []T) (lt []bool, err error) {
	defer Error.WrapP(&err)

	return GreaterThan(b, a)
}

// Incomparable reports, element-wise, whether neither value is
// significantly greater than the other. Elements involving NaN or an
// infinity are always incomparable.
func Incomparable[T constraints.Float](a, b []T) (ic []bool, err error) {
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
