package rational

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/couchbase/tools-sum/maths"
)

func randomRational(rng *rand.Rand) Rational {
	return MustNew(rng.Int63n(2001)-1000, rng.Int63n(1000)+1)
}

func TestNew(t *testing.T) {
	type test struct {
		name     string
		num, den int64
		expected Rational
		err      error
	}

	tests := []*test{
		{
			name:     "AlreadyReduced",
			num:      3,
			den:      4,
			expected: Rational{num: 3, den: 4},
		},
		{
			name:     "Reduces",
			num:      6,
			den:      8,
			expected: Rational{num: 3, den: 4},
		},
		{
			name:     "NegativeDenominator",
			num:      3,
			den:      -6,
			expected: Rational{num: -1, den: 2},
		},
		{
			name:     "BothNegative",
			num:      -3,
			den:      -6,
			expected: Rational{num: 1, den: 2},
		},
		{
			name:     "ZeroNumerator",
			num:      0,
			den:      -5,
			expected: Zero,
		},
		{
			name: "ZeroDenominator",
			num:  1,
			err:  ErrZeroDenominator,
		},
		{
			name:     "SmallestOverNegativeTwo",
			num:      math.MinInt64,
			den:      -2,
			expected: Rational{num: 1 << 62, den: 1},
		},
		{
			name:     "SmallestOverTwo",
			num:      math.MinInt64,
			den:      2,
			expected: Rational{num: -1 << 62, den: 1},
		},
		{
			name:     "SmallestOverItself",
			num:      math.MinInt64,
			den:      math.MinInt64,
			expected: One,
		},
		{
			name: "UnrepresentableSign",
			num:  1,
			den:  math.MinInt64,
			err:  maths.ErrOverflow,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual, err := New(test.num, test.den)
			if test.err != nil {
				require.ErrorIs(t, err, test.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.expected, actual)
		})
	}
}

func TestNewRandomKeepsProportion(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		n, d := rng.Int63n(201)-100, rng.Int63n(100)+1

		r, err := New(n, d)
		require.NoError(t, err)

		require.Equal(t, n*r.Den(), r.Num()*d)
		require.Positive(t, r.Den())
	}
}

func TestMustNewPanics(t *testing.T) {
	require.Panics(t, func() { MustNew(1, 0) })
}

func TestZeroValue(t *testing.T) {
	var r Rational

	require.True(t, r.IsZero())
	require.True(t, r.IsInt())
	require.True(t, r.Equal(Zero))
	require.Equal(t, int64(1), r.Den())
	require.Equal(t, "0", r.String())
	require.True(t, r.Add(One).Equal(One))
}

func TestCmp(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 100; i++ {
		a, b := randomRational(rng), randomRational(rng)
		require.Equal(t, a.Num()*b.Den() < b.Num()*a.Den(), a.Less(b))
	}

	require.Equal(t, 0, MustNew(1, 2).Cmp(MustNew(2, 4)))
	require.Equal(t, 1, MustNew(1, 2).Cmp(MustNew(1, 3)))
	require.Equal(t, -1, MustNew(-1, 2).Cmp(Zero))
}

func TestCmpLarge(t *testing.T) {
	a := MustNew(math.MaxInt64, math.MaxInt64-1)
	b := MustNew(math.MaxInt64-1, math.MaxInt64-2)

	require.Equal(t, -1, a.Cmp(b))
	require.Equal(t, 1, b.Cmp(a))
}

func TestString(t *testing.T) {
	require.Equal(t, "3", FromInt(3).String())
	require.Equal(t, "-3/4", MustNew(3, -4).String())
	require.Equal(t, "1/2", MustNew(2, 4).String())
}

func TestFloat64(t *testing.T) {
	require.InDelta(t, 0.75, MustNew(3, 4).Float64(), 1e-12)
}
