// Package logger provides the colored, prefixed leveled logger used across the service.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
)

const (
	errorColor = "\033[31m"
	warnColor  = "\033[33m"
	infoColor  = "\033[32m"
	colorReset = "\033[0m"
)

var (
	ErrNilWriter   = errors.New("logger writer is nil")
	ErrEmptyPrefix = errors.New("logger prefix is empty")
)

// Logger writes lines of the form "[PREFIX] [LEVEL] message" where the prefix
// carries its own color so interleaved component logs stay readable.
type Logger struct {
	out *log.Logger
}

// New creates a logger for a component. color is an ANSI escape sequence
// applied to the prefix, it may be empty.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	reset := colorReset
	if color == "" {
		reset = ""
	}

	return &Logger{
		out: log.New(w, fmt.Sprintf("%s[%s]%s ", color, prefix, reset), log.LstdFlags|log.Lmsgprefix),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print(infoColor, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.print(warnColor, "WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.print(errorColor, "ERROR", msg)
}

func (l *Logger) print(color, level, msg string) {
	l.out.Printf("%s[%s]%s %s", color, level, colorReset, msg)
}
