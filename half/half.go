package half

import (
	"math"
	"strconv"
)

// Num is a binary16 value carried as its bit pattern.
type Num struct {
	Val uint16
}

// New converts a float32 to binary16, truncating excess significand
// bits and clamping out-of-range magnitudes to infinity. Conversion is
// exact for every float32 that binary16 represents.
func New(f float32) Num {
	b := math.Float32bits(f)
	sn := uint16(b>>31) & 0x1
	exp := (b >> 23) & 0xff
	res := int16(exp) - 127 + 15
	fc := uint16(b>>13) & 0x3ff

	switch {
	case exp == 0:
		res = 0
	case exp == 0xff:
		res = 0x1f
	case res > 0x1e:
		res = 0x1f
		fc = 0
	case res < 0x01:
		res = 0
		fc = 0
	}

	return Num{Val: sn<<15 | uint16(res)<<10 | fc}
}

// Float32 converts back to float32. Exact for all inputs, subnormals
// included.
func (f Num) Float32() float32 {
	sn := uint32(f.Val>>15) & 0x1
	exp := uint32(f.Val>>10) & 0x1f
	fc := uint32(f.Val & 0x3ff)

	switch {
	case exp == 0x1f:
		return math.Float32frombits(sn<<31 | 0xff<<23 | fc<<13)
	case exp == 0:
		v := float32(fc) * 0x1p-24
		if sn == 1 {
			v = -v
		}

		return v
	}

	return math.Float32frombits(sn<<31 | (exp+127-15)<<23 | fc<<13)
}

// IsNaN returns true if the value is a NaN.
func (f Num) IsNaN() bool {
	return f.Val&0x7c00 == 0x7c00 && f.Val&0x03ff != 0
}

// IsInf returns true if the value is an infinity of either sign.
func (f Num) IsInf() bool {
	return f.Val&0x7fff == 0x7c00
}

// Signbit returns true if the sign bit is set.
func (f Num) Signbit() bool {
	return f.Val&0x8000 != 0
}

// Negate returns the value with the sign bit flipped.
func (f Num) Negate() Num {
	return Num{Val: f.Val ^ 0x8000}
}

func (f Num) String() string {
	return strconv.FormatFloat(float64(f.Float32()), 'g', -1, 32)
}
