package memtable

import (
	"github.com/sirupsen/logrus"
)

var (
	_ Logger = (*nopLogger)(nil)
	_ Logger = (*logrusLogger)(nil)
)

// Logger receives the few events a memtable reports, such as crossing its
// size threshold.
type Logger interface {
	Log(format string, args ...interface{})
}

// NopLogger returns a Logger that discards everything.
func NopLogger() Logger {
	return &nopLogger{}
}

type nopLogger struct{}

func (n *nopLogger) Log(format string, args ...interface{}) {}

type logrusLogger struct {
	entry *logrus.Entry
}

func newLogrusLogger(l *logrus.Logger) *logrusLogger {
	return &logrusLogger{
		entry: l.WithField("component", "memtable"),
	}
}

func (s *logrusLogger) Log(format string, args ...interface{}) {
	s.entry.Infof(format, args...)
}
