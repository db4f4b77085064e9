// Package logger provides the diagnostics sinks for organize runs.
//
// The logger package offers leveled logging of scan, classification and
// move progress. Implementations are thread-safe and cover the two
// destinations a run writes to: the console and a per-run log file.
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

// Log level constants for filtering
const (
	levelDebug int = 0
	levelInfo  int = 1
	levelWarn  int = 2
	levelError int = 3
)

// ConsoleLogger mirrors diagnostics to the console with timestamps and
// thread safety. Error messages are routed to a separate writer so they
// can reach stderr while regular progress goes to stdout.
// It supports log level filtering to control message verbosity.
// Color output is automatically enabled when writing to a TTY.
type ConsoleLogger struct {
	out         io.Writer
	errOut      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger writing regular messages to out
// and error messages to errOut. If a writer is nil, messages for it are
// silently discarded.
// logLevel determines the minimum log level for messages to be output.
// Valid levels: debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(out, errOut io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		out:         out,
		errOut:      errOut,
		logLevel:    normalizeLogLevel(logLevel),
		mutex:       sync.Mutex{},
		colorOutput: isTerminal(out),
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
// color.NoColor covers both the NO_COLOR convention and explicit opt-out.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if validLevels[normalized] {
		return normalized
	}

	return "info" // Default level
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo // Default to info if unknown
	}
}

// filterLevel maps a message tag to the level used for filtering.
// Success messages filter like info.
func filterLevel(tag string) string {
	switch tag {
	case "SUCCESS":
		return "info"
	case "WARN":
		return "warn"
	default:
		return strings.ToLower(tag)
	}
}

// shouldLog checks if a message at the given level should be logged.
// Returns true if messageLevel >= configured logLevel.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	configuredLevel := logLevelToInt(cl.logLevel)
	msgLevel := logLevelToInt(messageLevel)
	return msgLevel >= configuredLevel
}

// Debug logs a debug-level message.
// Format: "[HH:MM:SS] [DEBUG] <message>"
func (cl *ConsoleLogger) Debug(message string) {
	cl.logWithTag("DEBUG", message)
}

// Info logs an info-level message.
// Format: "[HH:MM:SS] [INFO] <message>"
func (cl *ConsoleLogger) Info(message string) {
	cl.logWithTag("INFO", message)
}

// Success logs a completed operation. Success filters at info level.
// Format: "[HH:MM:SS] [SUCCESS] <message>"
func (cl *ConsoleLogger) Success(message string) {
	cl.logWithTag("SUCCESS", message)
}

// Warning logs a warning-level message.
// Format: "[HH:MM:SS] [WARN] <message>"
func (cl *ConsoleLogger) Warning(message string) {
	cl.logWithTag("WARN", message)
}

// Error logs an error-level message to the error writer.
// Format: "[HH:MM:SS] [ERROR] <message>"
func (cl *ConsoleLogger) Error(message string) {
	cl.logWithTag("ERROR", message)
}

// logWithTag is a helper that writes one formatted line if filtering
// allows it. Error lines go to the error writer, everything else to out.
func (cl *ConsoleLogger) logWithTag(tag string, message string) {
	target := cl.out
	if tag == "ERROR" {
		target = cl.errOut
	}
	if target == nil {
		return
	}

	if !cl.shouldLog(filterLevel(tag)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	var formatted string

	if cl.colorOutput {
		formatted = formatWithColor(ts, tag, message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, tag, message)
	}

	target.Write([]byte(formatted))
}

// formatWithColor formats a log line with the level tag colored.
func formatWithColor(ts, tag, message string) string {
	var coloredTag string

	switch tag {
	case "DEBUG":
		coloredTag = color.New(color.FgCyan).Sprint(tag)
	case "INFO":
		coloredTag = color.New(color.FgBlue).Sprint(tag)
	case "SUCCESS":
		coloredTag = color.New(color.FgGreen).Sprint(tag)
	case "WARN":
		coloredTag = color.New(color.FgYellow).Sprint(tag)
	case "ERROR":
		coloredTag = color.New(color.FgRed).Sprint(tag)
	default:
		coloredTag = tag
	}

	return fmt.Sprintf("[%s] [%s] %s\n", ts, coloredTag, message)
}

// Summary logs the run counters at INFO level.
// Format:
//
//	[HH:MM:SS] === Organize Summary ===
//	[HH:MM:SS] Total files: <n>
//	[HH:MM:SS] Moved: <n>
//	[HH:MM:SS] Failed: <n>
//	[HH:MM:SS] Warnings: <n>
func (cl *ConsoleLogger) Summary(total, moved, failed, warnings int) {
	if cl.out == nil {
		return
	}

	if !cl.shouldLog("info") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	var output string

	if cl.colorOutput {
		header := color.New(color.Bold).Sprint("=== Organize Summary ===")
		output = fmt.Sprintf("[%s] %s\n", ts, header)
		output += fmt.Sprintf("[%s] Total files: %d\n", ts, total)

		movedText := color.New(color.FgGreen).Sprintf("Moved: %d", moved)
		output += fmt.Sprintf("[%s] %s\n", ts, movedText)

		if failed > 0 {
			failedText := color.New(color.FgRed).Sprintf("Failed: %d", failed)
			output += fmt.Sprintf("[%s] %s\n", ts, failedText)
		} else {
			output += fmt.Sprintf("[%s] Failed: %d\n", ts, failed)
		}

		if warnings > 0 {
			warnText := color.New(color.FgYellow).Sprintf("Warnings: %d", warnings)
			output += fmt.Sprintf("[%s] %s\n", ts, warnText)
		} else {
			output += fmt.Sprintf("[%s] Warnings: %d\n", ts, warnings)
		}
	} else {
		output = fmt.Sprintf("[%s] === Organize Summary ===\n", ts)
		output += fmt.Sprintf("[%s] Total files: %d\n", ts, total)
		output += fmt.Sprintf("[%s] Moved: %d\n", ts, moved)
		output += fmt.Sprintf("[%s] Failed: %d\n", ts, failed)
		output += fmt.Sprintf("[%s] Warnings: %d\n", ts, warnings)
	}

	cl.out.Write([]byte(output))
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}
