package signifl_test

import (
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/signifl"
)

func TestBound(t *testing.T) {
	t.Run("float32", func(t *testing.T) {
		type TC struct {
			Encoded []float32
			Bounds  []float32
			Mark    error
		}

		tcs := []TC{
			{
				Encoded: []float32{3.34375},
				Bounds:  []float32{0.0625},
				Mark:    oops.New("unexpected"),
			},
			{
				Encoded: []float32{-1235},
				Bounds:  []float32{2},
				Mark:    oops.New("unexpected"),
			},
			{
				// Significand of zero: the bound is one full
				// exponent step, 2 * 2^exponent.
				Encoded: []float32{0x1p-126, 1, -8},
				Bounds:  []float32{0x1p-125, 2, 16},
				Mark:    oops.New("unexpected"),
			},
			{
				Encoded: []float32{float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1))},
				Bounds:  []float32{float32(math.NaN()), float32(math.NaN()), float32(math.NaN())},
				Mark:    oops.New("unexpected"),
			},
		}

		for _, tc := range tcs {
			bounds, err := signifl.Bound(tc.Encoded)
			require.NoError(t, err, tc.Mark)
			requireFloats(t, tc.Bounds, bounds, tc.Mark)
		}
	})

	t.Run("float64", func(t *testing.T) {
		type TC struct {
			Encoded []float64
			Bounds  []float64
			Mark    error
		}

		tcs := []TC{
			{
				Encoded: []float64{3.34375},
				Bounds:  []float64{0.0625},
				Mark:    oops.New("unexpected"),
			},
			{
				Encoded: []float64{-1235},
				Bounds:  []float64{2},
				Mark:    oops.New("unexpected"),
			},
			{
				// Maximal precision near 1: the trailing
				// significand bit carries 2^-52.
				Encoded: []float64{1 + 0x1p-52},
				Bounds:  []float64{0x1p-51},
				Mark:    oops.New("unexpected"),
			},
			{
				Encoded: []float64{math.NaN(), math.Inf(1)},
				Bounds:  []float64{math.NaN(), math.NaN()},
				Mark:    oops.New("unexpected"),
			},
		}

		for _, tc := range tcs {
			bounds, err := signifl.Bound(tc.Encoded)
			require.NoError(t, err, tc.Mark)
			requireFloats(t, tc.Bounds, bounds, tc.Mark)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		type TC struct {
			Encoded []float64
			Mark    error
		}

		tcs := []TC{
			{
				Encoded: []float64{0},
				Mark:    oops.New("unexpected"),
			},
			{
				Encoded: []float64{1.5, -0.0},
				Mark:    oops.New("unexpected"),
			},
			{
				// Subnormal: never produced by Encode.
				Encoded: []float64{5e-324},
				Mark:    oops.New("unexpected"),
			},
		}

		for _, tc := range tcs {
			_, err := signifl.Bound(tc.Encoded)
			require.Error(t, err, tc.Mark)
			require.True(t, signifl.ErrInvalidEncodedValue.Has(err), tc.Mark)
		}

		_, err := signifl.Bound([]float32{0, 1e-40})
		require.Error(t, err)
		require.True(t, signifl.ErrInvalidEncodedValue.Has(err))
	})

	t.Run("exponent-range", func(t *testing.T) {
		// The bit-index arithmetic must hold over the whole normal
		// exponent range, boundaries included.
		for exp := -126; exp < 128; exp++ {
			v := math.Ldexp(1, exp)

			encoded, err := signifl.Encode([]float32{float32(v)}, []float32{0})
			require.NoError(t, err, "exponent %d", exp)

			bounds, err := signifl.Bound(encoded)
			require.NoError(t, err, "exponent %d", exp)
			require.Positive(t, bounds[0], "exponent %d", exp)
		}

		for exp := -1022; exp < 1024; exp++ {
			v := math.Ldexp(1, exp)

			encoded, err := signifl.Encode([]float64{v}, []float64{0})
			require.NoError(t, err, "exponent %d", exp)

			bounds, err := signifl.Bound(encoded)
			require.NoError(t, err, "exponent %d", exp)
			require.Positive(t, bounds[0], "exponent %d", exp)
		}
	})
}

func TestBoundDeterministic(t *testing.T) {
	values := []float64{10.0 / 3.0, -1234, 0.1, 1e-300, 1e300}
	uncertainties := []float64{0.1}

	encoded, err := signifl.Encode(values, uncertainties)
	require.NoError(t, err)

	first, err := signifl.Bound(encoded)
	require.NoError(t, err)

	second, err := signifl.Bound(encoded)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestBoundMonotonic(t *testing.T) {
	// For a fixed value, a smaller uncertainty never yields a larger
	// bound.
	values := []float64{10.0 / 3.0, -1234, 0.1, 1, 98765.4}
	uncertainties := []float64{0, 1e-12, 1e-3, 0.1, 0.5, 1, 3, 100, 1e6}

	for _, v := range values {
		prev := math.Inf(-1)
		for _, u := range uncertainties {
			encoded, err := signifl.Encode([]float64{v}, []float64{u})
			require.NoError(t, err)

			bounds, err := signifl.Bound(encoded)
			require.NoError(t, err)

			require.GreaterOrEqual(t, bounds[0], prev, "value %g uncertainty %g", v, u)
			prev = bounds[0]
		}
	}
}
