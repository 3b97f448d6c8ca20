// Package logger holds the process-wide logrus logger used by the lsroute
// command and handed to the spf and service packages.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It writes text to stderr at info level until
// InitLogger reconfigures it.
var Log = newLogger(os.Stderr, logrus.InfoLevel)

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableQuote:     true,
	})

	return l
}

// InitLogger sets the level of Log from its textual name ("debug", "info",
// "warn", ...) and redirects its output to out. A nil out keeps the current
// writer.
func InitLogger(level string, out io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	if out != nil {
		Log.SetOutput(out)
	}
	Log.SetLevel(lvl)

	return nil
}
