package logging

import (
	"io"
	"log"
	"os"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

// MakeDefaultLoggers returns a Loggers instance with the standard log format. Output goes to stdout,
// except Error level which goes to stderr. Debug level is disabled.
func MakeDefaultLoggers() ldlog.Loggers {
	return MakeLoggers(os.Stdout, os.Stderr)
}

// MakeLoggers is the same as MakeDefaultLoggers but with arbitrary destinations.
func MakeLoggers(out, errOut io.Writer) ldlog.Loggers {
	loggers := ldlog.NewDefaultLoggers()
	loggers.SetBaseLogger(makeLog(out))
	loggers.SetBaseLoggerForLevel(ldlog.Error, makeLog(errOut))
	loggers.SetMinLevel(ldlog.Info)
	return loggers
}

func makeLog(w io.Writer) *log.Logger {
	return log.New(w, "", log.Ldate|log.Ltime|log.Lmicroseconds)
}
