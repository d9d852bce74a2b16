// Package logger provides console logging for the search CLI: a
// level-filtered, thread-safe writer with timestamps and optional ANSI
// color, the same shape Conductor's ConsoleLogger uses, trimmed down to the
// handful of generic severity methods a search/grep run actually needs.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering.
const (
	levelDebug int = iota
	levelInfo
	levelWarn
	levelError
)

// ConsoleLogger logs to a writer with "[HH:MM:SS] LEVEL: message" lines. It
// is safe for concurrent use by multiple workerpool goroutines. Color
// output is enabled automatically when the writer is a TTY.
type ConsoleLogger struct {
	writer   io.Writer
	minLevel int
	mu       sync.Mutex
	color    bool
}

// New creates a ConsoleLogger writing to w. level selects the minimum
// severity printed ("debug", "info", "warn", "error"); an empty or
// unrecognized value defaults to "info". A nil w discards everything.
func New(w io.Writer, level string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:   w,
		minLevel: parseLevel(level),
		color:    isTerminal(w),
	}
}

func parseLevel(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return levelDebug
	case "warn", "warning":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func isTerminal(w io.Writer) bool {
	switch w {
	case os.Stdout:
		return isatty.IsTerminal(os.Stdout.Fd())
	case os.Stderr:
		return isatty.IsTerminal(os.Stderr.Fd())
	default:
		return false
	}
}

func (cl *ConsoleLogger) log(level int, label string, colorFn func(format string, a ...interface{}) string, format string, args ...interface{}) {
	if cl == nil || cl.writer == nil || level < cl.minLevel {
		return
	}
	msg := fmt.Sprintf(format, args...)
	ts := time.Now().Format("15:04:05")

	cl.mu.Lock()
	defer cl.mu.Unlock()
	if cl.color {
		fmt.Fprintf(cl.writer, "[%s] %s\n", ts, colorFn("%s: %s", label, msg))
		return
	}
	fmt.Fprintf(cl.writer, "[%s] %s: %s\n", ts, label, msg)
}

// Debugf logs a debug-level message.
func (cl *ConsoleLogger) Debugf(format string, args ...interface{}) {
	cl.log(levelDebug, "DEBUG", color.New(color.FgHiBlack).SprintfFunc(), format, args...)
}

// Infof logs an info-level message.
func (cl *ConsoleLogger) Infof(format string, args ...interface{}) {
	cl.log(levelInfo, "INFO", color.New(color.FgCyan).SprintfFunc(), format, args...)
}

// Warnf logs a warn-level message.
func (cl *ConsoleLogger) Warnf(format string, args ...interface{}) {
	cl.log(levelWarn, "WARN", color.New(color.FgYellow).SprintfFunc(), format, args...)
}

// Errorf logs an error-level message.
func (cl *ConsoleLogger) Errorf(format string, args ...interface{}) {
	cl.log(levelError, "ERROR", color.New(color.FgRed).SprintfFunc(), format, args...)
}
