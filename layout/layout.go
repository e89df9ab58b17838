package layout

import (
	"github.com/zeebo/errs"
)

// Error Classes
var (
	Error               = errs.Class("layout")
	ErrInvalidInputType = errs.Class("invalid input type")
)

// Layout is an IEEE-754 binary interchange format.
type Layout struct {
	Name   string
	Width  int
	Nmant  int
	MinExp int
	MaxExp int

	// Tiny is the smallest positive normal value and Eps the unit
	// round-off (the gap between 1 and the next larger value).
	Tiny float64
	Eps  float64
}

// Supported Layouts
var (
	Half   = Layout{"binary16", 16, 10, -14, 16, 0x1p-14, 0x1p-10}
	Single = Layout{"binary32", 32, 23, -126, 128, 0x1p-126, 0x1p-23}
	Double = Layout{"binary64", 64, 52, -1022, 1024, 0x1p-1022, 0x1p-52}

	Layouts = []Layout{
		Half,
		Single,
		Double,
	}
)

func (l Layout) String() string {
	return l.Name
}

// Bias is the offset stored in the biased exponent field.
func (l Layout) Bias() int {
	return l.MaxExp - 1
}

// Decompose splits the bit pattern of a value into its sign, unbiased
// exponent, and explicit significand (without the implicit leading 1).
func (l Layout) Decompose(bits uint64) (negative bool, exponent int, significand uint64) {
	negative = bits>>(l.Width-1)&1 == 1

	abs := bits &^ (1 << (l.Width - 1))
	exponent = int(abs>>l.Nmant) - l.Bias()
	significand = abs & (1<<l.Nmant - 1)

	return negative, exponent, significand
}

// Subnormal returns true if a decomposed exponent belongs to the
// zero/subnormal exponent class.
func (l Layout) Subnormal(exponent int) bool {
	return exponent == l.MinExp-1
}

// ForWidth returns the layout with the given bit width.
func ForWidth(width int) (_ Layout, err error) {
	for _, l := range Layouts {
		if l.Width == width {
			return l, nil
		}
	}

	return Layout{}, ErrInvalidInputType.New("unsupported floating-point width: %d", width)
}
