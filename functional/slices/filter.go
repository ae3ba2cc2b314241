package slices

// Filter returns the elements of the given slice which match every one of the given predicates, the input slice is not
// modified.
//
// NOTE: Providing no predicates results in a no-op.
func Filter[S ~[]E, E any](s S, p ...func(e E) bool) S {
	if len(p) == 0 {
		return s
	}

	filtered := make(S, 0, len(s))

	for _, e := range s {
		if matches(e, p...) {
			filtered = append(filtered, e)
		}
	}

	return filtered
}

// matches returns a boolean indicating whether the given element matches all the provided predicates.
func matches[E any](e E, p ...func(e E) bool) bool {
	for _, fn := range p {
		if !fn(e) {
			return false
		}
	}

	return true
}
