package logger

var _ Logger = (*noopLogger)(nil)

type noopLogger struct{}

// NewNoop returns a Logger that discards everything. It is the default
// diagnostic sink of the codec packages; applications that want the
// diagnostics install a real Logger instead.
func NewNoop() Logger {
	return &noopLogger{}
}

func (l noopLogger) Debug(msg string) {
}

func (l noopLogger) Info(msg string) {
}

func (l noopLogger) Warn(msg string) {
}

func (l noopLogger) Error(msg string) {
}
