package logger

import (
	"bytes"
	"fmt"

	"github.com/lyraproj/boxiter/eval"
	"github.com/lyraproj/boxiter/types"
	"github.com/lyraproj/issue/issue"
	"github.com/rs/zerolog"
)

type (
	LogLevel string

	Logger interface {
		Log(level LogLevel, args ...eval.Value)

		Logf(level LogLevel, format string, args ...interface{})

		LogIssue(issue issue.Reported)
	}

	zeroLog struct {
		zl zerolog.Logger
	}

	LogEntry struct {
		level   LogLevel
		message string
	}

	ArrayLogger struct {
		entries []*LogEntry
	}
)

const (
	ALERT   = LogLevel(`alert`)
	CRIT    = LogLevel(`crit`)
	DEBUG   = LogLevel(`debug`)
	EMERG   = LogLevel(`emerg`)
	ERR     = LogLevel(`err`)
	INFO    = LogLevel(`info`)
	NOTICE  = LogLevel(`notice`)
	WARNING = LogLevel(`warning`)
)

var LogLevels = []LogLevel{ALERT, CRIT, DEBUG, EMERG, ERR, INFO, NOTICE, WARNING}

// Discard is a Logger that drops everything
var Discard Logger = NewZeroLogger(zerolog.Nop())

func Alert(logger Logger, format string, args ...interface{}) {
	logger.Logf(ALERT, format, args...)
}

func Crit(logger Logger, format string, args ...interface{}) {
	logger.Logf(CRIT, format, args...)
}

func Debug(logger Logger, format string, args ...interface{}) {
	logger.Logf(DEBUG, format, args...)
}

func Emerg(logger Logger, format string, args ...interface{}) {
	logger.Logf(EMERG, format, args...)
}

func Err(logger Logger, format string, args ...interface{}) {
	logger.Logf(ERR, format, args...)
}

func Info(logger Logger, format string, args ...interface{}) {
	logger.Logf(INFO, format, args...)
}

func Notice(logger Logger, format string, args ...interface{}) {
	logger.Logf(NOTICE, format, args...)
}

func Warning(logger Logger, format string, args ...interface{}) {
	logger.Logf(WARNING, format, args...)
}

// NewZeroLogger returns a Logger that writes to the given zerolog.Logger
func NewZeroLogger(zl zerolog.Logger) Logger {
	return &zeroLog{zl}
}

func (l *zeroLog) Log(level LogLevel, args ...eval.Value) {
	w := bytes.NewBufferString(``)
	for _, arg := range args {
		types.ToString(arg, w)
	}
	l.event(level).Msg(w.String())
}

func (l *zeroLog) Logf(level LogLevel, format string, args ...interface{}) {
	l.event(level).Msgf(format, args...)
}

func (l *zeroLog) LogIssue(i issue.Reported) {
	level, ok := levelOf(i)
	if !ok {
		return
	}
	l.event(level).Str(`issue_code`, string(i.Code())).Msg(i.Error())
}

func (l *zeroLog) event(level LogLevel) *zerolog.Event {
	var e *zerolog.Event
	switch level {
	case DEBUG:
		e = l.zl.Debug()
	case INFO, NOTICE:
		e = l.zl.Info()
	case WARNING:
		e = l.zl.Warn()
	default:
		e = l.zl.Error()
	}
	return e.Str(`severity`, string(level))
}

func levelOf(i issue.Reported) (LogLevel, bool) {
	switch i.Severity() {
	case issue.SEVERITY_ERROR:
		return ERR, true
	case issue.SEVERITY_WARNING, issue.SEVERITY_DEPRECATION:
		return WARNING, true
	default:
		return ``, false
	}
}

func NewArrayLogger() *ArrayLogger {
	return &ArrayLogger{make([]*LogEntry, 0, 16)}
}

func (l *ArrayLogger) Entries(level LogLevel) (result []string) {
	result = make([]string, 0, 8)
	for _, entry := range l.entries {
		if entry.level == level {
			result = append(result, entry.message)
		}
	}
	return
}

func (l *ArrayLogger) Log(level LogLevel, args ...eval.Value) {
	w := bytes.NewBufferString(``)
	for _, arg := range args {
		types.ToString(arg, w)
	}
	l.entries = append(l.entries, &LogEntry{level, w.String()})
}

func (l *ArrayLogger) Logf(level LogLevel, format string, args ...interface{}) {
	l.entries = append(l.entries, &LogEntry{level, fmt.Sprintf(format, args...)})
}

func (l *ArrayLogger) LogIssue(i issue.Reported) {
	if level, ok := levelOf(i); ok {
		l.entries = append(l.entries, &LogEntry{level, i.Error()})
	}
}
