package logger

// Logger is the diagnostics sink the scanner, classifier and mover report
// through. Messages arrive fully formatted; implementations decide
// destination, filtering and presentation.
type Logger interface {
	// Debug logs internal detail useful when troubleshooting a run
	Debug(message string)

	// Info logs regular progress
	Info(message string)

	// Success logs a completed operation
	Success(message string)

	// Warning logs a recoverable problem that did not stop the run
	Warning(message string)

	// Error logs a failed operation
	Error(message string)

	// Summary logs the final counters of an organize run
	Summary(total, moved, failed, warnings int)
}

// NoOpLogger is a Logger implementation that discards all messages.
// Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// Debug is a no-op implementation.
func (n *NoOpLogger) Debug(message string) {}

// Info is a no-op implementation.
func (n *NoOpLogger) Info(message string) {}

// Success is a no-op implementation.
func (n *NoOpLogger) Success(message string) {}

// Warning is a no-op implementation.
func (n *NoOpLogger) Warning(message string) {}

// Error is a no-op implementation.
func (n *NoOpLogger) Error(message string) {}

// Summary is a no-op implementation.
func (n *NoOpLogger) Summary(total, moved, failed, warnings int) {}
