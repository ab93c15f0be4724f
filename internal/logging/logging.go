// Package logging provides structured logging for utask.
// It wraps log/slog to produce JSON-formatted logs with level control.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Log levels accepted in configuration.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Logger wraps slog with persistent attributes.
type Logger struct {
	logger *slog.Logger
}

// New creates a Logger writing JSON entries to w at the given level.
// Unrecognized levels default to info.
func New(w io.Writer, level string) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return &Logger{logger: slog.New(handler)}
}

// Discard returns a Logger that drops everything. Used in tests and
// when debug output is disabled.
func Discard() *Logger {
	return New(io.Discard, LevelError)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// With returns a child Logger with key-value attributes added to all entries.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...)}
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }

// Info logs at info level.
func (l *Logger) Info(msg string, args ...any) { l.logger.Info(msg, args...) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string, args ...any) { l.logger.Warn(msg, args...) }

// Error logs at error level.
func (l *Logger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }
