// Package slices provides generic slice utility functions, most notably reductions which are written once and reused
// for every element type that supports them.
package slices

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/couchbase/tools-sum/maths"
)

// Addable is satisfied by every type which has both a zero value acting as the additive identity and a built-in '+'
// operator; for strings '+' is concatenation and the identity is "".
type Addable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// Adder is satisfied by user defined types which expose addition as a method, for example a rational number.
type Adder[E any] interface {
	Add(E) E
}

// Sum returns the summation of the elements in the provided slice.
//
// NOTE: Elements are added in order starting from the zero value; integer overflow wraps and floating point rounding
// error accumulates as it would for a hand written loop.
func Sum[S ~[]E, E Addable](s S) E {
	var total E

	for _, e := range s {
		total += e
	}

	return total
}

// SumN returns the summation of the first n elements in the provided slice.
//
// An error wrapping 'ErrIndexOutOfRange' is returned, without reading the slice, when n is negative or exceeds the
// length of the slice.
func SumN[S ~[]E, E Addable](s S, n int) (E, error) {
	if n < 0 || n > len(s) {
		var zero E
		return zero, fmt.Errorf("cannot sum %d elements of slice with length %d: %w", n, len(s), ErrIndexOutOfRange)
	}

	return Sum(s[:n]), nil
}

// SumChecked returns the summation of the integers in the provided slice, or an error matching 'maths.ErrOverflow' as
// soon as a partial sum is not representable.
//
// NOTE: Overflow is detected on partial sums so '{MaxInt, 1, -1}' is an error even though the total fits.
func SumChecked[S ~[]E, E constraints.Integer](s S) (E, error) {
	var total E

	for i, e := range s {
		var err error

		total, err = maths.AddChecked(total, e)
		if err != nil {
			return 0, fmt.Errorf("failed to add element %d: %w", i, err)
		}
	}

	return total, nil
}

// SumSaturating returns the summation of the integers in the provided slice, partial sums are clamped to the bounds of
// the element type.
func SumSaturating[S ~[]E, E constraints.Integer](s S) E {
	return Fold(s, E(0), maths.AddSaturating[E])
}

// SumMonoid returns the summation of the provided elements using their 'Add' method, starting from the given zero
// value.
func SumMonoid[S ~[]E, E Adder[E]](s S, zero E) E {
	return Fold(s, zero, func(acc, e E) E { return acc.Add(e) })
}
