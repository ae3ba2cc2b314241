package slices

import "errors"

// ErrIndexOutOfRange is returned when a count/index would read beyond the end of a slice.
var ErrIndexOutOfRange = errors.New("index out of range")
