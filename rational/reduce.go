package rational

import (
	"fmt"

	"github.com/couchbase/tools-sum/functional/slices"
)

// Sum returns the summation of the given fractions, starting from 'Zero'.
func Sum(rs []Rational) (Rational, error) {
	return foldChecked(rs, Zero, Rational.AddChecked)
}

// Product returns the product of the given fractions, starting from 'One'.
func Product(rs []Rational) (Rational, error) {
	return foldChecked(rs, One, Rational.MulChecked)
}

// MapParts applies fn to both the numerator and denominator of r, returning the resulting fraction in lowest terms.
func MapParts(fn func(int64) int64, r Rational) (Rational, error) {
	return New(fn(r.num), fn(r.Den()))
}

// Filter returns the fractions which satisfy the given predicate.
func Filter(pred func(Rational) bool, rs []Rational) []Rational {
	return slices.Filter(rs, pred)
}

// Strings returns the string form of each fraction.
func Strings(rs []Rational) []string {
	return slices.Map[[]Rational, []string](rs, Rational.String)
}

// foldChecked combines the fractions from left to right, stopping at the first error.
func foldChecked(rs []Rational, init Rational, fn func(a, b Rational) (Rational, error)) (Rational, error) {
	acc := init

	for i, r := range rs {
		var err error

		if acc, err = fn(acc, r); err != nil {
			return Rational{}, fmt.Errorf("failed to combine element %d (%s): %w", i, r, err)
		}
	}

	return acc, nil
}
