package audio

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// log carries capture-side diagnostics. The render path owns the terminal,
// so output goes to a file only when AUVIZ_DEBUG points at one; otherwise
// everything is discarded.
var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	if path := os.Getenv("AUVIZ_DEBUG"); path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			l.SetOutput(f)
			l.SetLevel(logrus.DebugLevel)
		}
	}
	return l
}
