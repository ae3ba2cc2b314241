package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// WriterLogger writes one line per log statement to the given writer, statements below 'MinLevel' are dropped.
type WriterLogger struct {
	W        io.Writer
	MinLevel Level

	// now is overridden in tests.
	now func() time.Time

	lock sync.Mutex
}

// NewWriterLogger returns a logger writing statements at or above the given level to w.
func NewWriterLogger(w io.Writer, minLevel Level) *WriterLogger {
	return &WriterLogger{W: w, MinLevel: minLevel, now: time.Now}
}

// Log writes '<timestamp> <prefix>: <message>' to the underlying writer.
func (w *WriterLogger) Log(level Level, format string, args ...any) {
	if level < w.MinLevel {
		return
	}

	now := time.Now
	if w.now != nil {
		now = w.now
	}

	w.lock.Lock()
	defer w.lock.Unlock()

	fmt.Fprintf(w.W, "%s %s: %s\n", now().UTC().Format(time.RFC3339Nano), level, fmt.Sprintf(format, args...))
}
