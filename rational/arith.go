package rational

import (
	"fmt"

	"github.com/couchbase/tools-sum/maths"
)

// AddChecked returns r+o, or an error matching 'maths.ErrOverflow' if the result doesn't fit.
func (r Rational) AddChecked(o Rational) (Rational, error) {
	return r.combine(o, 1)
}

// SubChecked returns r-o, or an error matching 'maths.ErrOverflow' if the result doesn't fit.
func (r Rational) SubChecked(o Rational) (Rational, error) {
	return r.combine(o, -1)
}

// MulChecked returns r*o, or an error matching 'maths.ErrOverflow' if the result doesn't fit.
func (r Rational) MulChecked(o Rational) (Rational, error) {
	// Cancel across the operands first so that the intermediate products stay as small as possible.
	g1 := maths.GCD(r.num, o.Den())
	g2 := maths.GCD(o.num, r.Den())

	num, err := maths.MulChecked(r.num/g1, o.num/g2)
	if err != nil {
		return Rational{}, fmt.Errorf("failed to multiply numerators: %w", err)
	}

	den, err := maths.MulChecked(r.Den()/g2, o.Den()/g1)
	if err != nil {
		return Rational{}, fmt.Errorf("failed to multiply denominators: %w", err)
	}

	return New(num, den)
}

// Div returns r/o, dividing by zero is reported as 'ErrDivisionByZero'.
func (r Rational) Div(o Rational) (Rational, error) {
	if o.IsZero() {
		return Rational{}, ErrDivisionByZero
	}

	inv, err := o.Inverse()
	if err != nil {
		return Rational{}, err
	}

	return r.MulChecked(inv)
}

// Add returns r+o.
//
// NOTE: Panics if the result overflows, use 'AddChecked' when the operands aren't trusted.
func (r Rational) Add(o Rational) Rational {
	return must(r.AddChecked(o))
}

// Sub returns r-o, see 'Add' regarding overflow.
func (r Rational) Sub(o Rational) Rational {
	return must(r.SubChecked(o))
}

// Mul returns r*o, see 'Add' regarding overflow.
func (r Rational) Mul(o Rational) Rational {
	return must(r.MulChecked(o))
}

// Neg returns -r.
func (r Rational) Neg() (Rational, error) {
	num, err := maths.NegChecked(r.num)
	if err != nil {
		return Rational{}, err
	}

	return Rational{num: num, den: r.Den()}, nil
}

// Inverse returns 1/r, inverting zero is reported as 'ErrZeroInverse'.
func (r Rational) Inverse() (Rational, error) {
	if r.IsZero() {
		return Rational{}, ErrZeroInverse
	}

	return New(r.Den(), r.num)
}

// Pow returns r raised to the integer power n; negative powers invert r first.
func (r Rational) Pow(n int) (Rational, error) {
	base := r

	if n < 0 {
		neg, err := maths.NegChecked(n)
		if err != nil {
			return Rational{}, fmt.Errorf("cannot raise %s to power %d: %w", r, n, err)
		}

		if base, err = r.Inverse(); err != nil {
			return Rational{}, fmt.Errorf("cannot raise zero to negative power %d: %w", n, err)
		}

		n = neg
	}

	result := One

	for ; n > 0; n >>= 1 {
		var err error

		if n&1 == 1 {
			if result, err = result.MulChecked(base); err != nil {
				return Rational{}, err
			}
		}

		if n > 1 {
			if base, err = base.MulChecked(base); err != nil {
				return Rational{}, err
			}
		}
	}

	return result, nil
}

// PowRational returns r raised to the power e, which must be a whole number.
func (r Rational) PowRational(e Rational) (Rational, error) {
	if !e.IsInt() {
		return Rational{}, fmt.Errorf("cannot raise %s to %s: %w", r, e, ErrFractionalPower)
	}

	return r.Pow(int(e.num))
}

// combine returns r + sign*o.
func (r Rational) combine(o Rational, sign int64) (Rational, error) {
	// Scale both numerators to the least common multiple of the denominators.
	g := maths.GCD(r.Den(), o.Den())
	rScale, oScale := o.Den()/g, r.Den()/g

	lhs, err := maths.MulChecked(r.num, rScale)
	if err != nil {
		return Rational{}, err
	}

	rhs, err := maths.MulChecked(o.num, oScale)
	if err != nil {
		return Rational{}, err
	}

	var num int64
	if sign > 0 {
		num, err = maths.AddChecked(lhs, rhs)
	} else {
		num, err = maths.SubChecked(lhs, rhs)
	}

	if err != nil {
		return Rational{}, err
	}

	den, err := maths.MulChecked(r.Den(), rScale)
	if err != nil {
		return Rational{}, err
	}

	return New(num, den)
}

// must unwraps the result of a checked operation, panicking on error.
func must(r Rational, err error) Rational {
	if err != nil {
		panic(fmt.Errorf("rational: %w", err))
	}

	return r
}
