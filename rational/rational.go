// Package rational implements exact fractions backed by int64 numerators/denominators. Values are immutable and always
// kept in lowest terms with a positive denominator; arithmetic which would overflow an int64 is reported rather than
// silently wrapped.
package rational

import (
	"fmt"
	"math/big"

	"github.com/couchbase/tools-sum/maths"
)

// Rational is a fraction in lowest terms. The zero value is 0.
//
// NOTE: Use 'Equal' rather than '==' since the zero value and 'Zero' have different representations.
type Rational struct {
	num int64
	den int64
}

var (
	// Zero is the additive identity.
	Zero = Rational{num: 0, den: 1}

	// One is the multiplicative identity.
	One = Rational{num: 1, den: 1}
)

// New returns the fraction num/den in lowest terms.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrZeroDenominator
	}

	// Reduce before fixing the sign, the reduced parts may be representable when the originals aren't negatable.
	g := maths.GCD(num, den)
	num, den = num/g, den/g

	if den < 0 {
		var err error

		if num, err = maths.NegChecked(num); err != nil {
			return Rational{}, fmt.Errorf("failed to normalize sign: %w", err)
		}

		if den, err = maths.NegChecked(den); err != nil {
			return Rational{}, fmt.Errorf("failed to normalize sign: %w", err)
		}
	}

	return Rational{num: num, den: den}, nil
}

// MustNew is like 'New' but panics if the fraction is invalid; intended for literals.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// FromInt returns the integer n as a fraction.
func FromInt(n int64) Rational {
	return Rational{num: n, den: 1}
}

// Num returns the numerator.
func (r Rational) Num() int64 {
	return r.num
}

// Den returns the denominator, which is always positive.
func (r Rational) Den() int64 {
	if r.den == 0 {
		return 1
	}

	return r.den
}

// IsZero returns a boolean indicating whether the fraction is 0.
func (r Rational) IsZero() bool {
	return r.num == 0
}

// IsInt returns a boolean indicating whether the fraction is a whole number.
func (r Rational) IsInt() bool {
	return r.Den() == 1
}

// Equal returns a boolean indicating whether both fractions have the same value.
func (r Rational) Equal(o Rational) bool {
	return r.num == o.num && r.Den() == o.Den()
}

// Cmp returns -1, 0 or +1 depending on whether r is less than, equal to or greater than o.
func (r Rational) Cmp(o Rational) int {
	// Cross multiplication may not fit in an int64, fall back to arbitrary precision when it doesn't.
	lhs, errL := maths.MulChecked(r.num, o.Den())
	rhs, errR := maths.MulChecked(o.num, r.Den())

	if errL == nil && errR == nil {
		switch {
		case lhs < rhs:
			return -1
		case lhs > rhs:
			return 1
		default:
			return 0
		}
	}

	bl := new(big.Int).Mul(big.NewInt(r.num), big.NewInt(o.Den()))
	br := new(big.Int).Mul(big.NewInt(o.num), big.NewInt(r.Den()))

	return bl.Cmp(br)
}

// Less returns a boolean indicating whether r is strictly less than o.
func (r Rational) Less(o Rational) bool {
	return r.Cmp(o) < 0
}

// Float64 returns the nearest float64 to the fraction.
func (r Rational) Float64() float64 {
	return float64(r.num) / float64(r.Den())
}

// String returns "n" for whole numbers and "n/d" otherwise.
func (r Rational) String() string {
	if r.IsInt() {
		return fmt.Sprintf("%d", r.num)
	}

	return fmt.Sprintf("%d/%d", r.num, r.den)
}
