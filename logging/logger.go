// Package logging defines the leveled logging facade used across the kernel.
// Backends stay outside; the Kratos adapter in this package is the default
// bridge for applications already carrying go-kratos.
package logging

// Logger is a leveled logging facade independent of any backend. Templates
// use fmt-style verbs with positional arguments.
type Logger interface {
	// Trace logs fine-grained diagnostic detail.
	Trace(template string, args ...any)
	// Info logs normal operational messages.
	Info(template string, args ...any)
	// Warn logs conditions that deserve attention but are not failures.
	Warn(template string, args ...any)
	// Error logs a failure together with its cause.
	Error(err error, template string, args ...any)
}

type nopLogger struct{}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

func (nopLogger) Trace(string, ...any)        {}
func (nopLogger) Info(string, ...any)         {}
func (nopLogger) Warn(string, ...any)         {}
func (nopLogger) Error(error, string, ...any) {}
