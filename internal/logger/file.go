package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FileLogger writes run diagnostics to files in the log directory.
// It creates a timestamped per-run log file and maintains a latest.log
// symlink pointing to the most recent run. The run log is append-only;
// nothing already written is ever rewritten.
// It is thread-safe and supports log level filtering.
type FileLogger struct {
	logDir   string
	runLog   *os.File
	runFile  string
	runID    string
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger creates a FileLogger that writes to .tidy/logs/ in the
// current working directory. Uses default log level "info".
func NewFileLogger() (*FileLogger, error) {
	logDir := filepath.Join(".tidy", "logs")
	return NewFileLoggerWithDirAndLevel(logDir, "info")
}

// NewFileLoggerWithDir creates a FileLogger with a custom log directory.
// Uses default log level "info".
func NewFileLoggerWithDir(logDir string) (*FileLogger, error) {
	return NewFileLoggerWithDirAndLevel(logDir, "info")
}

// NewFileLoggerWithDirAndLevel creates a FileLogger with a custom log
// directory and log level. It creates the log directory if it doesn't
// exist, opens a timestamped run log file, and creates/updates the
// latest.log symlink.
func NewFileLoggerWithDirAndLevel(logDir string, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Timestamped filename: run-YYYYMMDD-HHMMSS.log
	stamp := time.Now().Format("20060102-150405")
	runFile := filepath.Join(logDir, fmt.Sprintf("run-%s.log", stamp))

	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	// Repoint latest.log at the new run
	symlinkPath := filepath.Join(logDir, "latest.log")
	if _, err := os.Lstat(symlinkPath); err == nil {
		if err := os.Remove(symlinkPath); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}
	if err := os.Symlink(filepath.Base(runFile), symlinkPath); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create symlink: %w", err)
	}

	logger := &FileLogger{
		logDir:   logDir,
		runLog:   file,
		runFile:  runFile,
		runID:    uuid.New().String(),
		logLevel: normalizeLogLevel(logLevel),
		mu:       sync.Mutex{},
	}

	// Session header
	logger.writeRunLog("=== tidy run log ===\n")
	logger.writeRunLog(fmt.Sprintf("Run ID: %s\n", logger.runID))
	logger.writeRunLog(fmt.Sprintf("Started at: %s\n\n", time.Now().Format(time.RFC3339)))

	return logger, nil
}

// RunID returns the unique identifier assigned to this run.
func (fl *FileLogger) RunID() string {
	return fl.runID
}

// Path returns the run log file path.
func (fl *FileLogger) Path() string {
	return fl.runFile
}

// shouldLog checks if a message at the given level should be logged.
// Returns true if messageLevel >= configured logLevel.
func (fl *FileLogger) shouldLog(messageLevel string) bool {
	configuredLevel := logLevelToInt(fl.logLevel)
	msgLevel := logLevelToInt(messageLevel)
	return msgLevel >= configuredLevel
}

// Debug logs a debug-level message.
func (fl *FileLogger) Debug(message string) {
	fl.logWithTag("DEBUG", message)
}

// Info logs an info-level message.
func (fl *FileLogger) Info(message string) {
	fl.logWithTag("INFO", message)
}

// Success logs a completed operation. Success filters at info level.
func (fl *FileLogger) Success(message string) {
	fl.logWithTag("SUCCESS", message)
}

// Warning logs a warning-level message.
func (fl *FileLogger) Warning(message string) {
	fl.logWithTag("WARN", message)
}

// Error logs an error-level message.
func (fl *FileLogger) Error(message string) {
	fl.logWithTag("ERROR", message)
}

// logWithTag is a helper that logs a message at the specified level if
// filtering allows it. Run log lines carry the full date, unlike the
// console, so a log file read later still dates its run.
func (fl *FileLogger) logWithTag(tag string, message string) {
	if !fl.shouldLog(filterLevel(tag)) {
		return
	}

	formatted := fmt.Sprintf("[%s] [%s] %s\n", time.Now().Format("2006-01-02 15:04:05"), tag, message)
	fl.writeRunLog(formatted)
}

// Summary logs the run counters at INFO level, with an overall status of
// SUCCESS, PARTIAL or FAILED derived from the counters.
func (fl *FileLogger) Summary(total, moved, failed, warnings int) {
	if !fl.shouldLog("info") {
		return
	}

	ts := time.Now().Format("2006-01-02 15:04:05")

	status := "SUCCESS"
	if failed > 0 {
		if moved == 0 {
			status = "FAILED"
		} else {
			status = "PARTIAL"
		}
	}

	message := fmt.Sprintf(
		"\n[%s] === ORGANIZE SUMMARY ===\n"+
			"[%s] Total files: %d\n"+
			"[%s] Moved:       %d\n"+
			"[%s] Failed:      %d\n"+
			"[%s] Warnings:    %d\n"+
			"[%s] Status:      %s\n",
		ts,
		ts, total,
		ts, moved,
		ts, failed,
		ts, warnings,
		ts, status,
	)

	fl.writeRunLog(message)
}

// Close writes the session footer, then flushes and closes the run log
// file. It should be called when the logger is no longer needed.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		fl.runLog.WriteString(fmt.Sprintf("\nCompleted at: %s\n", time.Now().Format(time.RFC3339)))
		if err := fl.runLog.Sync(); err != nil {
			return fmt.Errorf("failed to sync run log: %w", err)
		}
		if err := fl.runLog.Close(); err != nil {
			return fmt.Errorf("failed to close run log: %w", err)
		}
		fl.runLog = nil
	}

	return nil
}

// writeRunLog is a thread-safe helper to write to the run log file.
func (fl *FileLogger) writeRunLog(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		fl.runLog.WriteString(message)
		// Flush after each write for real-time logging
		fl.runLog.Sync()
	}
}
