// Package logger provides the leveled diagnostic sink consumed by the
// codec packages: severity, component tag, message, fire-and-forget.
// Records are written as JSON with a UTC timestamp.
package logger

import (
	"io"

	kitlog "github.com/go-kit/log"
	"github.com/pkg/errors"
)

// Logger specifies logging API.
type Logger interface {
	// Debug logs any object in JSON format on debug level.
	Debug(msg string)
	// Info logs any object in JSON format on info level.
	Info(msg string)
	// Warn logs any object in JSON format on warn level.
	Warn(msg string)
	// Error logs any object in JSON format on error level.
	Error(msg string)
}

var _ Logger = (*logger)(nil)

type logger struct {
	kitLogger kitlog.Logger
	level     Level
}

// New returns a Logger writing JSON records to out, discarding records
// above the severity named by levelText ("error", "warn", "info", "debug").
func New(out io.Writer, levelText string) (Logger, error) {
	var level Level
	if err := level.UnmarshalText(levelText); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", levelText)
	}
	l := kitlog.NewJSONLogger(kitlog.NewSyncWriter(out))
	l = kitlog.With(l, "ts", kitlog.DefaultTimestampUTC)
	return &logger{l, level}, nil
}

// WithComponent returns a Logger tagging every record with the named
// component. Loggers created by New get a "component" field on each JSON
// record; foreign Logger implementations get the name prefixed to the
// message text instead.
func WithComponent(l Logger, name string) Logger {
	if kl, ok := l.(*logger); ok {
		return &logger{kitlog.With(kl.kitLogger, "component", name), kl.level}
	}
	return &componentLogger{l, name}
}

func (l logger) Debug(msg string) {
	if Debug.isAllowed(l.level) {
		l.kitLogger.Log("level", Debug.String(), "message", msg)
	}
}

func (l logger) Info(msg string) {
	if Info.isAllowed(l.level) {
		l.kitLogger.Log("level", Info.String(), "message", msg)
	}
}

func (l logger) Warn(msg string) {
	if Warn.isAllowed(l.level) {
		l.kitLogger.Log("level", Warn.String(), "message", msg)
	}
}

func (l logger) Error(msg string) {
	if Error.isAllowed(l.level) {
		l.kitLogger.Log("level", Error.String(), "message", msg)
	}
}

var _ Logger = (*componentLogger)(nil)

type componentLogger struct {
	inner Logger
	name  string
}

func (c componentLogger) Debug(msg string) { c.inner.Debug(c.name + ": " + msg) }
func (c componentLogger) Info(msg string)  { c.inner.Info(c.name + ": " + msg) }
func (c componentLogger) Warn(msg string)  { c.inner.Warn(c.name + ": " + msg) }
func (c componentLogger) Error(msg string) { c.inner.Error(c.name + ": " + msg) }
