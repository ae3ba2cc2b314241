package slices

// Fold combines the elements of the provided slice from left to right using the given function, starting with init.
func Fold[S ~[]E, E, A any](s S, init A, fn func(acc A, e E) A) A {
	acc := init

	for _, e := range s {
		acc = fn(acc, e)
	}

	return acc
}

// Reduce combines the elements of the provided slice from left to right using the first element as the initial value.
//
// NOTE: Returns false when the slice is empty since there's no element to start from.
func Reduce[S ~[]E, E any](s S, fn func(acc, e E) E) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return Fold(s[1:], s[0], fn), true
}
