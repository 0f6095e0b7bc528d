package svgtypes

import "log"

// Logger receives recoverable warnings from the lazy tokenizers (path,
// transform, style, points; NumberList and LengthList take no Logger and
// stop without logging): conditions that stop iteration of a
// single value without failing the whole document, per spec.md section 1's
// "logging of recoverable warnings is an out-of-scope external
// collaborator". gosaxml, the package this module's ambient style is
// grounded on, has no such collaborator of its own (it returns errors
// instead), so this interface is new glue rather than an adapted type.
type Logger interface {
	Warnf(format string, args ...any)
}

// NopLogger discards every warning. It is the default used by tokenizers
// constructed without an explicit Logger.
type NopLogger struct{}

// Warnf implements Logger.
func (NopLogger) Warnf(format string, args ...any) {}

// StdLogger forwards warnings to the standard library's log package.
type StdLogger struct{}

// Warnf implements Logger.
func (StdLogger) Warnf(format string, args ...any) {
	log.Printf(format, args...)
}

var defaultLogger Logger = NopLogger{}

func warnf(logger Logger, format string, args ...any) {
	if logger == nil {
		logger = defaultLogger
	}
	logger.Warnf(format, args...)
}
