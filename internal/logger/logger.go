// Package logger provides the console logger used by the filelister command.
//
// Messages are written as "[HH:MM:SS] [LEVEL] message" lines. Levels below
// the configured minimum are dropped, and the level is colored when writing
// to a terminal.
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

// Levels, from most to least verbose.
var Levels = []string{"trace", "debug", "info", "warn", "error"}

// ConsoleLogger writes leveled messages to a writer. It is safe for
// concurrent use.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// New creates a ConsoleLogger that writes to w.
// If w is nil, messages are discarded. An empty or unknown level gives "info".
func New(w io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      w,
		logLevel:    NormalizeLevel(logLevel),
		colorOutput: isTerminal(w),
	}
}

// isTerminal checks if w is a terminal that can show colors.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	// NO_COLOR is respected by the color package
	return !color.NoColor && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// ValidLevel returns true if level is one of Levels.
func ValidLevel(level string) bool {
	return levelToInt(strings.ToLower(strings.TrimSpace(level))) >= 0
}

// NormalizeLevel lowercases level and returns "info" if it is not valid.
func NormalizeLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if levelToInt(normalized) < 0 {
		return "info"
	}
	return normalized
}

func levelToInt(level string) int {
	for i, l := range Levels {
		if l == level {
			return i
		}
	}
	return -1
}

// Level returns the minimum level that is written.
func (cl *ConsoleLogger) Level() string {
	return cl.logLevel
}

func (cl *ConsoleLogger) shouldLog(level string) bool {
	return levelToInt(level) >= levelToInt(cl.logLevel)
}

// LogTrace logs a trace message.
func (cl *ConsoleLogger) LogTrace(message string) { cl.log("TRACE", message) }

// LogDebug logs a debug message.
func (cl *ConsoleLogger) LogDebug(message string) { cl.log("DEBUG", message) }

// LogInfo logs an info message.
func (cl *ConsoleLogger) LogInfo(message string) { cl.log("INFO", message) }

// LogWarn logs a warning.
func (cl *ConsoleLogger) LogWarn(message string) { cl.log("WARN", message) }

// LogError logs an error.
func (cl *ConsoleLogger) LogError(message string) { cl.log("ERROR", message) }

func (cl *ConsoleLogger) log(level, message string) {
	if cl.writer == nil || !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := time.Now().Format("15:04:05")
	shown := level
	if cl.colorOutput {
		shown = colorLevel(level)
	}
	fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", ts, shown, message)
}

func colorLevel(level string) string {
	switch level {
	case "TRACE":
		return color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		return color.New(color.FgCyan).Sprint(level)
	case "INFO":
		return color.New(color.FgBlue).Sprint(level)
	case "WARN":
		return color.New(color.FgYellow).Sprint(level)
	case "ERROR":
		return color.New(color.FgRed).Sprint(level)
	}
	return level
}
