package testutil

import (
	"fmt"

	"github.com/stretchr/testify/mock"

	"github.com/couchbase/tools-sum/log"
)

// MockLogger is a 'log.Logger' which records every call, messages are formatted before being recorded so expectations
// may be set on the final text.
type MockLogger struct {
	mock.Mock
}

// Log implements 'log.Logger'.
func (m *MockLogger) Log(level log.Level, format string, args ...any) {
	m.Called(level, fmt.Sprintf(format, args...))
}

// Install sets this logger as the package level logger, returning a function which restores the previous one.
func (m *MockLogger) Install() func() {
	previous := log.SetLogger(m)
	return func() { log.SetLogger(previous) }
}
