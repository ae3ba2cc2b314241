package rational

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/couchbase/tools-sum/errors/definitions"
)

// Parse converts a string of the form "n" or "n/d" into a fraction, surrounding whitespace is ignored. Only a leading
// '-' is accepted as a sign, "+5" is rejected.
func Parse(s string) (Rational, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) > 2 {
		return Rational{}, fmt.Errorf("%q: %w", s, ErrInvalidFormat)
	}

	num, err := parsePart(parts[0])
	if err != nil {
		return Rational{}, fmt.Errorf("%q: %w: %v", s, ErrInvalidFormat, err)
	}

	if len(parts) == 1 {
		return FromInt(num), nil
	}

	den, err := parsePart(parts[1])
	if err != nil {
		return Rational{}, fmt.Errorf("%q: %w: %v", s, ErrInvalidFormat, err)
	}

	r, err := New(num, den)
	if err != nil {
		return Rational{}, fmt.Errorf("%q: %w", s, err)
	}

	return r, nil
}

// ParseAll parses every one of the given strings, the returned error lists every string which failed to parse.
func ParseAll(ss []string) ([]Rational, error) {
	var (
		parsed = make([]Rational, 0, len(ss))
		errs   = definitions.MultiError{Prefix: "failed to parse rationals: "}
	)

	for _, s := range ss {
		r, err := Parse(s)
		if err != nil {
			errs.Add(err)
			continue
		}

		parsed = append(parsed, r)
	}

	if err := errs.ErrOrNil(); err != nil {
		return nil, err
	}

	return parsed, nil
}

// parsePart parses a base 10 numerator/denominator, unlike 'strconv.ParseInt' an explicit '+' sign is rejected.
func parsePart(s string) (int64, error) {
	if strings.HasPrefix(s, "+") {
		return 0, fmt.Errorf("unexpected sign in %q", s)
	}

	return strconv.ParseInt(s, 10, 64)
}
