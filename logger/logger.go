package logger

import (
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	logstash "github.com/bshuster-repo/logrus-logstash-hook"
	"github.com/sirupsen/logrus"
)

// Verbosity levels understood by the tools in this repository, on top of
// the plain logrus level names.
const (
	Silent  = "silent"
	Normal  = "normal"
	Verbose = "verbose"
	Debug   = "debug"
)

type Logger interface {
	SetLogLevel(level string)

	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)
	Debug(msg string, fields ...Field)

	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Debugf(format string, args ...interface{})

	SweetenFields(args []interface{}) []Field
}

type Field struct {
	Key string
	Val interface{}
}

func WithField(key string, val interface{}) Field {
	return Field{Key: key, Val: val}
}

func WithError(err error) Field {
	return Field{Key: "error", Val: err}
}

type LogrusLogger struct {
	logger *logrus.Logger
	out    io.Writer
}

var _ Logger = (*LogrusLogger)(nil)

// NewLogger returns a text logger writing to stderr, tagged with the name of
// the tool that owns it.
func NewLogger(name string, level string) Logger {
	return newLogrusLogger(name, level, os.Stderr)
}

func newLogrusLogger(name string, level string, out io.Writer) *LogrusLogger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if name != "" {
		l.AddHook(&nameHook{name: name})
	}
	lg := &LogrusLogger{logger: l, out: out}
	lg.SetLogLevel(level)
	return lg
}

// NewLogstashLogger is NewLogger plus a logstash hook shipping every entry to
// addr over tcp.
func NewLogstashLogger(name string, level string, addr string) (Logger, error) {
	lg := newLogrusLogger(name, level, os.Stderr)
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("connect to logstash %s: %w", addr, err)
	}
	hook := logstash.New(conn, logstash.DefaultFormatter(logrus.Fields{
		"tool": name,
	}))
	lg.logger.Hooks.Add(hook)
	return lg, nil
}

// FromEnv builds the logger for a tool: LOGSTASH_ADDR switches on the
// logstash hook, failing back to plain stderr output if it is unreachable.
func FromEnv(name string, level string) Logger {
	addr := os.Getenv("LOGSTASH_ADDR")
	if addr == "" {
		return NewLogger(name, level)
	}
	lg, err := NewLogstashLogger(name, level, addr)
	if err != nil {
		fallback := NewLogger(name, level)
		fallback.Warn("logstash unavailable, logging locally", WithError(err))
		return fallback
	}
	return lg
}

func (l *LogrusLogger) SetLogLevel(level string) {
	l.logger.SetOutput(l.out)
	l.logger.SetReportCaller(false)
	switch strings.ToLower(strings.TrimSpace(level)) {
	case Silent:
		l.logger.SetOutput(io.Discard)
		l.logger.SetLevel(logrus.PanicLevel)
	case Verbose:
		l.logger.SetLevel(logrus.DebugLevel)
	case Debug, "trace":
		// debug is verbose plus call sites
		l.logger.SetLevel(logrus.TraceLevel)
		l.logger.SetReportCaller(true)
	default:
		lvl, err := ParseLevel(level)
		if err != nil {
			lvl = logrus.InfoLevel
		}
		l.logger.SetLevel(lvl)
	}
}

// ParseLevel accepts the verbosity names and the plain logrus level names.
// An empty level is normal.
func ParseLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", Normal:
		return logrus.InfoLevel, nil
	case Silent:
		return logrus.PanicLevel, nil
	case Verbose:
		return logrus.DebugLevel, nil
	case Debug:
		return logrus.TraceLevel, nil
	}
	return logrus.ParseLevel(strings.TrimSpace(level))
}

func (l *LogrusLogger) Info(msg string, fields ...Field) {
	l.logger.WithFields(l.fmtFields(fields...)).Info(msg)
}

func (l *LogrusLogger) Warn(msg string, fields ...Field) {
	l.logger.WithFields(l.fmtFields(fields...)).Warn(msg)
}

func (l *LogrusLogger) Error(msg string, fields ...Field) {
	l.logger.WithFields(l.fmtFields(fields...)).Error(msg)
}

func (l *LogrusLogger) Fatal(msg string, fields ...Field) {
	l.logger.WithFields(l.fmtFields(fields...)).Fatal(msg)
}

func (l *LogrusLogger) Debug(msg string, fields ...Field) {
	l.logger.WithFields(l.fmtFields(fields...)).Debug(msg)
}

func (l *LogrusLogger) Infof(format string, args ...interface{}) {
	l.logger.Infof(format, args...)
}

func (l *LogrusLogger) Warnf(format string, args ...interface{}) {
	l.logger.Warnf(format, args...)
}

func (l *LogrusLogger) Errorf(format string, args ...interface{}) {
	l.logger.Errorf(format, args...)
}

func (l *LogrusLogger) Fatalf(format string, args ...interface{}) {
	l.logger.Fatalf(format, args...)
}

func (l *LogrusLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

func (l *LogrusLogger) SweetenFields(args []interface{}) []Field {
	if len(args) == 0 {
		return []Field{}
	}

	var (
		fields    = make([]Field, 0, len(args))
		seenError bool
	)

	for i := 0; i < len(args); {
		if f, ok := args[i].(Field); ok {
			fields = append(fields, f)
			i++
			continue
		}

		if err, ok := args[i].(error); ok {
			if !seenError {
				seenError = true
				fields = append(fields, WithError(err))
			}
			i++
			continue
		}
		if i == len(args)-1 {
			break
		}

		key, val := args[i], args[i+1]
		if keyStr, ok := key.(string); ok {
			fields = append(fields, WithField(keyStr, val))
		}
		i += 2
	}
	return fields
}

func (l *LogrusLogger) fmtFields(fields ...Field) logrus.Fields {
	if len(fields) == 0 {
		return logrus.Fields{}
	}
	fieldsMap := make(logrus.Fields, len(fields))
	for _, field := range fields {
		fieldsMap[field.Key] = field.Val
	}
	return fieldsMap
}

type nameHook struct {
	name string
}

func (h *nameHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *nameHook) Fire(e *logrus.Entry) error {
	e.Data["tool"] = h.name
	return nil
}
