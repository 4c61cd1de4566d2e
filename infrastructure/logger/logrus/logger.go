// ABOUTME: Logrus-backed logger implementation with structured JSON output
// ABOUTME: Maps the library's field maps onto logrus entries

package logrus

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// Logger implements the Logger interface using logrus
type Logger struct {
	log *log.Logger
}

// NewLogger creates a logger emitting JSON at debug level, so every message
// the library produces is visible until a caller raises the level.
func NewLogger() *Logger {
	l := log.New()
	l.SetFormatter(&log.JSONFormatter{})
	l.SetLevel(log.DebugLevel)
	return &Logger{log: l}
}

// NewLoggerWithLevel creates a logger at the named logrus level. Unknown
// level names fall back to info.
func NewLoggerWithLevel(level string) *Logger {
	l := NewLogger()
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	l.log.SetLevel(parsed)
	return l
}

// SetOutput redirects log output, primarily for tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.log.SetOutput(w)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(log.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(log.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(log.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(log.Fields(fields)).Error(msg)
}
