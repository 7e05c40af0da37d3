// Package log is a thin, module-scoped leveled logger wrapping
// github.com/op/go-logging, used by both kd-tree builders to report
// build timing and tree statistics.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is a logging verbosity level.
type Level logging.Level

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

// Logger is the interface exposed to callers; the concrete type is a
// named go-logging logger.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

func init() {
	SetSink(os.Stderr)
}

// New creates a new named logger, e.g. log.New("kdtree") or
// log.New("sah").
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all logger output to sink.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(logging.WARNING, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets the minimum verbosity for all module loggers.
func SetLevel(level Level) {
	var loggerLevel logging.Level
	switch level {
	case Debug:
		loggerLevel = logging.DEBUG
	case Info:
		loggerLevel = logging.INFO
	case Notice:
		loggerLevel = logging.NOTICE
	case Warning:
		loggerLevel = logging.WARNING
	case Error:
		loggerLevel = logging.ERROR
	}
	leveledBackend.SetLevel(loggerLevel, "")
}
