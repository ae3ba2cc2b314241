package rational

import "errors"

var (
	// ErrZeroDenominator is returned when constructing a fraction with a zero denominator.
	ErrZeroDenominator = errors.New("denominator cannot be zero")

	// ErrDivisionByZero is returned when dividing by a zero fraction.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrZeroInverse is returned when inverting zero, including raising it to a negative power.
	ErrZeroInverse = errors.New("cannot invert zero")

	// ErrFractionalPower is returned when raising a fraction to a non-integer power.
	ErrFractionalPower = errors.New("only integer powers are supported")

	// ErrInvalidFormat is returned when parsing a string which is neither "n" nor "n/d".
	ErrInvalidFormat = errors.New("invalid rational format")
)
