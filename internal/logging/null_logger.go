package logging

import "github.com/vvka-141/fsops/pkg/fsops"

var (
	_ fsops.Logger = (*ConsoleLogger)(nil)
	_ fsops.Logger = (*NullLogger)(nil)
)

// NullLogger discards every message. Ops falls back to it when no logger is given.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(format string, args ...interface{}) {}

func (l *NullLogger) Info(format string, args ...interface{}) {}

func (l *NullLogger) Error(format string, args ...interface{}) {}
