// Package logger defines the structured logging surface used by the
// validator, the HTTP server and the CLI.
package logger

// Logger writes structured log entries. Fields are attached to the entry as
// key/value pairs.
type Logger interface {
	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)

	// With returns a logger that adds fields to every entry.
	With(fields map[string]any) Logger

	// Sync flushes buffered entries.
	Sync() error
}

// NoopLogger discards everything.
type NoopLogger struct{}

var _ Logger = NoopLogger{}

func (NoopLogger) Debug(string, map[string]any) {}
func (NoopLogger) Info(string, map[string]any)  {}
func (NoopLogger) Warn(string, map[string]any)  {}
func (NoopLogger) Error(string, map[string]any) {}

func (n NoopLogger) With(map[string]any) Logger { return n }
func (NoopLogger) Sync() error                  { return nil }
