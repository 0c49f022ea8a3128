package logger

import (
	"fmt"
	"sync"
)

// MockLogger records every entry instead of printing it, tests read them
// back through Entries.
type MockLogger struct {
	mu      sync.Mutex
	entries []Entry
}

type Entry struct {
	Level  string
	Msg    string
	Fields []Field
}

var _ Logger = (*MockLogger)(nil)

func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, Entry{Level: level, Msg: msg, Fields: fields})
}

// Entries returns a copy of what has been logged so far.
func (m *MockLogger) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Messages returns the messages logged at level.
func (m *MockLogger) Messages(level string) []string {
	var msgs []string
	for _, e := range m.Entries() {
		if e.Level == level {
			msgs = append(msgs, e.Msg)
		}
	}
	return msgs
}

func (m *MockLogger) SetLogLevel(level string) {
	// mock logger
}

func (m *MockLogger) Info(msg string, fields ...Field) {
	m.record("info", msg, fields)
}

func (m *MockLogger) Warn(msg string, fields ...Field) {
	m.record("warn", msg, fields)
}

func (m *MockLogger) Error(msg string, fields ...Field) {
	m.record("error", msg, fields)
}

func (m *MockLogger) Fatal(msg string, fields ...Field) {
	m.record("fatal", msg, fields)
}

func (m *MockLogger) Debug(msg string, fields ...Field) {
	m.record("debug", msg, fields)
}

func (m *MockLogger) Infof(format string, args ...interface{}) {
	m.record("info", fmt.Sprintf(format, args...), nil)
}

func (m *MockLogger) Warnf(format string, args ...interface{}) {
	m.record("warn", fmt.Sprintf(format, args...), nil)
}

func (m *MockLogger) Errorf(format string, args ...interface{}) {
	m.record("error", fmt.Sprintf(format, args...), nil)
}

func (m *MockLogger) Fatalf(format string, args ...interface{}) {
	m.record("fatal", fmt.Sprintf(format, args...), nil)
}

func (m *MockLogger) Debugf(format string, args ...interface{}) {
	m.record("debug", fmt.Sprintf(format, args...), nil)
}

func (m *MockLogger) SweetenFields(args []interface{}) []Field {
	// mock logger
	return []Field{}
}
