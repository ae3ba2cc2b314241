// Package maths provides generic numeric helpers along with overflow aware integer arithmetic.
package maths

import "golang.org/x/exp/constraints"

// Min returns the smallest of the two values given as input.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}

	return b
}

// Max returns the largest of the two values given as input.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}

	return b
}

// Abs returns the absolute value of the given integer.
//
// NOTE: The absolute value of the smallest signed value is not representable, in which case it's returned unchanged;
// use 'NegChecked' where this matters.
func Abs[T constraints.Signed](a T) T {
	if a < 0 {
		return -a
	}

	return a
}

// GCD returns the greatest common divisor of the two given integers, the result is always non-negative.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}

	if a < 0 {
		return -a
	}

	return a
}
