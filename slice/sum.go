// Package slice provides non-generic summation functions, one per element type.
package slice

// SumInt returns the summation of the ints in the provided slice.
//
// NOTE: Integer overflow wraps, see 'slices.SumChecked' for a checked alternative.
func SumInt(s []int) int {
	var total int
	for _, e := range s {
		total += e
	}

	return total
}

// SumInt64 returns the summation of the int64s in the provided slice.
func SumInt64(s []int64) int64 {
	var total int64
	for _, e := range s {
		total += e
	}

	return total
}

// SumUint64 returns the summation of the uint64s in the provided slice.
func SumUint64(s []uint64) uint64 {
	var total uint64
	for _, e := range s {
		total += e
	}

	return total
}

// SumFloat32 returns the summation of the float32s in the provided slice.
func SumFloat32(s []float32) float32 {
	var total float32
	for _, e := range s {
		total += e
	}

	return total
}

// SumFloat64 returns the summation of the float64s in the provided slice.
//
// NOTE: Elements are added in order without any compensation, rounding error accumulates as it would for a hand
// written loop.
func SumFloat64(s []float64) float64 {
	var total float64
	for _, e := range s {
		total += e
	}

	return total
}

// SumIntN returns the summation of the first n ints in the provided slice.
//
// An 'IndexOutOfRangeError' is returned, without reading the slice, if n is negative or larger than its length.
func SumIntN(s []int, n int) (int, error) {
	if err := checkCount(len(s), n); err != nil {
		return 0, err
	}

	return SumInt(s[:n]), nil
}

// SumFloat64N returns the summation of the first n float64s in the provided slice, see 'SumIntN'.
func SumFloat64N(s []float64, n int) (float64, error) {
	if err := checkCount(len(s), n); err != nil {
		return 0, err
	}

	return SumFloat64(s[:n]), nil
}

// checkCount returns an error if a count of n elements can't be taken from a slice of the given length.
func checkCount(length, n int) error {
	if n < 0 || n > length {
		return IndexOutOfRangeError{length: length, i: n}
	}

	return nil
}
