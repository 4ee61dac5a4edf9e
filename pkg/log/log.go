// Package log provides the logging interface used throughout gomechip,
// along with a logrus backed implementation and a null logger.
package log

import (
	"github.com/sirupsen/logrus"
	"io"
	"os"
)

// Logger is the logging contract that components accept. *logrus.Logger
// satisfies it directly.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// Option configures the logger returned by New.
type Option func(l *logrus.Logger)

// WithLevel sets the minimum level that will be emitted. Unknown level
// names leave the default (info) in place.
func WithLevel(level string) Option {
	return func(l *logrus.Logger) {
		if lvl, err := logrus.ParseLevel(level); err == nil {
			l.SetLevel(lvl)
		}
	}
}

// WithOutput redirects the log output.
func WithOutput(w io.Writer) Option {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// New returns a logrus backed Logger writing to stderr.
func New(opts ...Option) Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.Formatter = &logrus.TextFormatter{
		FullTimestamp:  true,
		DisableSorting: true,
		DisableQuote:   true,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}
