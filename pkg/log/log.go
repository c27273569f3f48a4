package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface used by every component.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger writing plain text to stderr at info
// level.
func New() Logger {
	return NewWithWriter(os.Stderr, logrus.InfoLevel)
}

// NewDebug returns a Logger writing plain text to stderr at
// debug level.
func NewDebug() Logger {
	return NewWithWriter(os.Stderr, logrus.DebugLevel)
}

// NewWithWriter returns a Logger writing plain text to w at
// the given level.
func NewWithWriter(w io.Writer, level logrus.Level) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// WithComponent returns a Logger that tags every entry with
// the component it came from. Loggers that are not backed by
// logrus are returned as is.
func WithComponent(l Logger, component string) Logger {
	switch lr := l.(type) {
	case *logrus.Logger:
		return lr.WithField("component", component)
	case *logrus.Entry:
		return lr.WithField("component", component)
	}
	return l
}
