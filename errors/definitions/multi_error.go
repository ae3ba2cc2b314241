// Package definitions provides useful error types such as 'MultiError'.
package definitions

import "strings"

// capHitMessage is written in place of the remaining errors once 'OutputCap' would be exceeded.
const capHitMessage = "error message output cap hit - not all errors are shown"

// MultiError aggregates multiple errors into a single error value.
//
// The zero value of MultiError is ready for use.
//
// NOTE: MultiError is not safe for concurrent use and needs to be wrapped in a lock to be shared safely between
// threads.
type MultiError struct {
	errs []error

	// Prefix will be printed before the errors in this MultiError.
	Prefix string

	// Separator will separate the errors in this MultiError. If omitted, defaults to "; ".
	Separator string

	// OutputCap limits the length of the string returned by 'Error', once hit the remaining errors are replaced by a
	// single notice. A value of zero means no limit.
	OutputCap int
}

// Add adds a new error to this MultiError, nested MultiErrors are flattened.
//
// NOTE: Adding a MultiError to itself is a no-op.
func (m *MultiError) Add(err error) {
	if err == nil {
		return
	}

	if nested, ok := err.(*MultiError); ok {
		if nested == m {
			return
		}

		m.errs = append(m.errs, nested.errs...)

		return
	}

	m.errs = append(m.errs, err)
}

func (m *MultiError) Error() string {
	if len(m.errs) == 0 {
		return ""
	}

	var errStr strings.Builder

	errStr.WriteString(m.Prefix)

	sep := m.Separator
	if sep == "" {
		sep = "; "
	}

	for i, err := range m.errs {
		msg := err.Error()

		if m.OutputCap > 0 && errStr.Len()+len(msg) > m.OutputCap {
			errStr.WriteString(capHitMessage)
			break
		}

		errStr.WriteString(msg)

		if i < len(m.errs)-1 {
			errStr.WriteString(sep)
		}
	}

	return errStr.String()
}

// Unwrap allows 'errors.Is' and 'errors.As' to match against any of the accumulated errors.
func (m *MultiError) Unwrap() []error {
	return m.errs
}

// Len returns the number of accumulated errors.
func (m *MultiError) Len() int {
	return len(m.errs)
}

// Errors returns the full list of errors accumulated by this MultiError, or nil if there are none.
//
// NOTE: Callers must not modify the returned slice.
func (m *MultiError) Errors() []error {
	return m.errs
}

// ErrOrNil returns this MultiError if it has at least one error, or nil otherwise. The intended use case is the
// following:
//
//	return foo, errs.ErrOrNil()
func (m *MultiError) ErrOrNil() error {
	if len(m.errs) > 0 {
		return m
	}

	return nil
}
