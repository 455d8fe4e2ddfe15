// Package logger provides the prefixed, colored loggers handed to each component.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/gookit/color"
)

// Level colors used inside a log line.
const (
	errorColor   = color.FgRed
	warningColor = color.FgYellow
	infoColor    = color.FgGreen
	debugColor   = color.FgGray
)

// ErrEmptyPrefix is returned when a logger is created without a prefix.
var ErrEmptyPrefix = errors.New("logger prefix must not be empty")

// Logger writes lines of the form "date time [PREFIX] [LEVEL] message".
type Logger struct {
	out *log.Logger
}

// New creates a logger that writes to w with the prefix rendered in c.
func New(prefix string, c color.Color, w io.Writer) (*Logger, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if w == nil {
		w = io.Discard
	}

	return &Logger{
		out: log.New(w, c.Sprint("["+strings.ToUpper(prefix)+"]")+" ", log.Ldate|log.Ltime|log.Lmsgprefix),
	}, nil
}

// Info logs a message at INFO level.
func (l *Logger) Info(msg string) {
	l.write(infoColor, "INFO", msg)
}

// Warning logs a message at WARNING level.
func (l *Logger) Warning(msg string) {
	l.write(warningColor, "WARNING", msg)
}

// Error logs a message at ERROR level.
func (l *Logger) Error(msg string) {
	l.write(errorColor, "ERROR", msg)
}

// Debug logs a message at DEBUG level.
func (l *Logger) Debug(msg string) {
	l.write(debugColor, "DEBUG", msg)
}

func (l *Logger) write(c color.Color, level, msg string) {
	l.out.Print(fmt.Sprintf("%s %s", c.Sprint("["+level+"]"), msg))
}
