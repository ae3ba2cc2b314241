package maths

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is matched by every 'OverflowError' so that callers may use 'errors.Is' without caring about the operands.
var ErrOverflow = errors.New("integer overflow")

// OverflowError is returned by the checked arithmetic functions when the result is not representable in the operand
// type.
type OverflowError struct {
	Op   string
	A, B any
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%v %s %v: %s", e.A, e.Op, e.B, ErrOverflow)
}

// Is allows 'errors.Is(err, ErrOverflow)'.
func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}

// Signed returns a boolean indicating whether T is a signed integer type.
func Signed[T constraints.Integer]() bool {
	var zero T
	return ^zero < zero
}

// BitSize returns the width in bits of the integer type T.
func BitSize[T constraints.Integer]() int {
	var (
		v T = 1
		n   int
	)

	for v != 0 {
		v <<= 1
		n++
	}

	return n
}

// MaxOf returns the largest value representable by the integer type T.
func MaxOf[T constraints.Integer]() T {
	var zero T
	if !Signed[T]() {
		return ^zero
	}

	// Wraps from the smallest value to the largest, which is well defined for Go integers.
	return T(1)<<(BitSize[T]()-1) - 1
}

// MinOf returns the smallest value representable by the integer type T.
func MinOf[T constraints.Integer]() T {
	var zero T
	if !Signed[T]() {
		return zero
	}

	return -MaxOf[T]() - 1
}

// AddChecked returns a+b, or an 'OverflowError' if the sum wraps.
func AddChecked[T constraints.Integer](a, b T) (T, error) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, &OverflowError{Op: "+", A: a, B: b}
	}

	return c, nil
}

// SubChecked returns a-b, or an 'OverflowError' if the difference wraps.
func SubChecked[T constraints.Integer](a, b T) (T, error) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return 0, &OverflowError{Op: "-", A: a, B: b}
	}

	return c, nil
}

// MulChecked returns a*b, or an 'OverflowError' if the product wraps.
func MulChecked[T constraints.Integer](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	c := a * b

	// Operands with the same sign must give a positive product, this catches MinOf * -1 which survives the division
	// check below.
	if c/b != a || ((a < 0) == (b < 0) && c < 0) {
		return 0, &OverflowError{Op: "*", A: a, B: b}
	}

	return c, nil
}

// NegChecked returns -a, or an 'OverflowError' if a is the smallest value of a signed type.
func NegChecked[T constraints.Signed](a T) (T, error) {
	if a == MinOf[T]() {
		return 0, &OverflowError{Op: "-", A: 0, B: a}
	}

	return -a, nil
}

// AddSaturating returns a+b clamped to the bounds of T.
func AddSaturating[T constraints.Integer](a, b T) T {
	c, err := AddChecked(a, b)
	if err == nil {
		return c
	}

	if b > 0 {
		return MaxOf[T]()
	}

	return MinOf[T]()
}
