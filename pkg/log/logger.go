package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

type Level logging.Level

// The levels that can be passed to the SetLevel function.
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

// currentLevel survives sink swaps
var currentLevel = logging.NOTICE

// Logger is the leveled logger used throughout the photon mapper.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New creates a named logger.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink overrides the backend output sink, keeping the current level.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(currentLevel, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets logger verbosity for all modules.
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

	currentLevel = loggerLevel
	leveledBackend.SetLevel(loggerLevel, "")
}

// IsEnabled reports whether messages at level would be emitted.
func IsEnabled(level Level, module string) bool {
	switch level {
	case Debug:
		return leveledBackend.IsEnabledFor(logging.DEBUG, module)
	case Info:
		return leveledBackend.IsEnabledFor(logging.INFO, module)
	case Notice:
		return leveledBackend.IsEnabledFor(logging.NOTICE, module)
	case Warning:
		return leveledBackend.IsEnabledFor(logging.WARNING, module)
	default:
		return leveledBackend.IsEnabledFor(logging.ERROR, module)
	}
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
