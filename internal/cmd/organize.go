package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/harrison/tidy/internal/classifier"
	"github.com/harrison/tidy/internal/config"
	"github.com/harrison/tidy/internal/display"
	"github.com/harrison/tidy/internal/filelock"
	"github.com/harrison/tidy/internal/logger"
	"github.com/harrison/tidy/internal/mover"
	"github.com/harrison/tidy/internal/scanner"
)

// NewOrganizeCommand creates the organize command
func NewOrganizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize [directory]",
		Short: "Move files into category subdirectories",
		Long: `Scan the target directory (default: current working directory), classify
every regular file by its extension, and move each file into a category
subdirectory created next to it.

A file that already exists at its destination is renamed with a
_YYYYMMDD_HHMMSS suffix instead of being overwritten. Subdirectories,
symlinks and other special entries are left untouched; the scan never
recurses.

A failed move is logged and counted but does not stop the run or change
the exit status. The command fails only when the directory cannot be
scanned, a category directory cannot be created, or another organize run
already holds the lock for the same directory.

Configuration is loaded from .tidy/config.yaml if present.
CLI flags override configuration file settings.

Examples:
  # Preview without moving anything
  tidy organize --dry-run ~/Desktop

  # Organize the current directory
  tidy organize

  # Custom thresholds for the large/old file report
  tidy organize --size=50 --age=30 ~/Downloads

  # Verbose run with a custom log directory
  tidy organize --verbose --log-dir ./logs ~/Desktop`,
		Args: cobra.MaximumNArgs(1),
		RunE: runOrganize,
	}

	// Add flags
	cmd.Flags().String("config", "", "Path to config file (default: .tidy/config.yaml)")
	cmd.Flags().Bool("dry-run", false, "Preview actions without moving files")
	cmd.Flags().Int64("size", 100, "Large file threshold in MB")
	cmd.Flags().Int("age", 90, "Old file threshold in days")
	cmd.Flags().Bool("verbose", false, "Show debug-level output")
	cmd.Flags().String("log-dir", "", "Directory for log files")
	cmd.Flags().String("log-level", "", "Log verbosity (debug, info, warn, error)")
	cmd.Flags().Bool("no-color", false, "Disable colored output")

	return cmd
}

// runOrganize implements the organize command logic
func runOrganize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Validate conflicting flags
	if cmd.Flags().Changed("verbose") && cmd.Flags().Changed("log-level") {
		return fmt.Errorf("cannot use both --verbose and --log-level")
	}

	// Get flag values
	sizeFlag, _ := cmd.Flags().GetInt64("size")
	ageFlag, _ := cmd.Flags().GetInt("age")
	dryRunFlag, _ := cmd.Flags().GetBool("dry-run")
	logDirFlag, _ := cmd.Flags().GetString("log-dir")
	logLevelFlag, _ := cmd.Flags().GetString("log-level")
	noColorFlag, _ := cmd.Flags().GetBool("no-color")

	// Build flag pointers for merge (only explicitly set values)
	var sizePtr *int64
	if cmd.Flags().Changed("size") {
		sizePtr = &sizeFlag
	}
	var agePtr *int
	if cmd.Flags().Changed("age") {
		agePtr = &ageFlag
	}
	var dryRunPtr *bool
	if cmd.Flags().Changed("dry-run") {
		dryRunPtr = &dryRunFlag
	}
	var logDirPtr *string
	if cmd.Flags().Changed("log-dir") {
		logDirPtr = &logDirFlag
	}
	var logLevelPtr *string
	if cmd.Flags().Changed("log-level") {
		logLevelPtr = &logLevelFlag
	}
	var noColorPtr *bool
	if cmd.Flags().Changed("no-color") {
		noColorPtr = &noColorFlag
	}

	// Merge CLI flags with config (flags take precedence)
	cfg.MergeWithFlags(sizePtr, agePtr, dryRunPtr, logDirPtr, logLevelPtr, noColorPtr)

	// Verbose flag overrides the merged log level
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.LogLevel = "debug"
	}

	// Validate merged configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Resolve the target directory
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve directory %s: %w", dir, err)
	}

	return organize(cfg, absDir, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// organize runs the scan, classify, analyze, organize pipeline against dir.
func organize(cfg *config.Config, dir string, out, errOut io.Writer) error {
	if cfg.NoColor {
		color.NoColor = true
	}

	// Refuse to run while another organize holds the lock for this directory
	lock, err := filelock.LockDir(dir)
	if err != nil {
		return err
	}
	acquired, err := lock.TryLock()
	if err != nil {
		return err
	}
	if !acquired {
		return fmt.Errorf("another organize run holds the lock for %s", dir)
	}
	defer lock.Unlock()

	consoleLog := logger.NewConsoleLogger(out, errOut, cfg.LogLevel)

	// The file logger is best-effort: without it the run continues
	// console-only, mirroring the scan itself being the point of the run.
	var log logger.Logger = consoleLog
	logPath := ""
	fileLog, err := logger.NewFileLoggerWithDirAndLevel(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		consoleLog.Warning(fmt.Sprintf("Could not create log file: %v. Logging may not work properly", err))
		fileLog = nil
	} else {
		defer fileLog.Close()
		logPath = fileLog.Path()
		log = &multiLogger{loggers: []logger.Logger{consoleLog, fileLog}}
	}

	display.Banner(out, Version)

	if fileLog != nil {
		log.Debug("Run ID: " + fileLog.RunID())
	}
	log.Info("Target directory: " + dir)
	if cfg.DryRun {
		log.Info("Dry-run mode: ON")
	}

	steps := display.NewSteps(out, 4)

	// Step 1: scan the directory
	steps.Next("SCAN", "Scanning files...")

	fsys := afero.NewOsFs()
	scan := scanner.New(fsys, log)
	scan.SetSizeThresholdMB(cfg.SizeThresholdMB)
	scan.SetAgeThresholdDays(cfg.AgeThresholdDays)

	result, err := scan.Scan(dir)
	if err != nil {
		log.Error(fmt.Sprintf("Failed to scan directory: %v", err))
		return err
	}

	fmt.Fprintf(out, "[SCAN] Found %d file(s)\n", len(result.Files))

	if len(result.Skipped) > 0 {
		names := make([]string, 0, len(result.Skipped))
		for _, skip := range result.Skipped {
			names = append(names, skip.Path)
		}
		display.WarnSkipped(names).Display(out)
	}

	if len(result.Files) == 0 {
		fmt.Fprintln(out, "\nNo files to organize. Exiting.")
		return nil
	}

	// Step 2: classify by extension
	steps.Next("CLASSIFY", "Categorizing files...")
	groups := classifier.Classify(result.Files, log)

	// Step 3: report large and old files
	steps.Next("ANALYZE", "Analyzing files...")
	display.Analysis{
		SizeThresholdMB:  cfg.SizeThresholdMB,
		AgeThresholdDays: cfg.AgeThresholdDays,
		Now:              time.Now(),
	}.Display(out, result.Large, result.Old)

	// Step 4: move the files
	if cfg.DryRun {
		steps.Next("ORGANIZE", "[DRY-RUN] Organizing files...")
	} else {
		steps.Next("ORGANIZE", "Organizing files...")
	}

	moveResult, err := mover.New(fsys, log, cfg.DryRun).Organize(dir, groups)
	if err != nil {
		return err
	}

	display.Completion(out, moveResult.Summary.Failed, logPath)

	return nil
}

// multiLogger implements logger.Logger by delegating to multiple loggers
type multiLogger struct {
	loggers []logger.Logger
}

// Debug forwards to all loggers
func (ml *multiLogger) Debug(message string) {
	for _, log := range ml.loggers {
		log.Debug(message)
	}
}

// Info forwards to all loggers
func (ml *multiLogger) Info(message string) {
	for _, log := range ml.loggers {
		log.Info(message)
	}
}

// Success forwards to all loggers
func (ml *multiLogger) Success(message string) {
	for _, log := range ml.loggers {
		log.Success(message)
	}
}

// Warning forwards to all loggers
func (ml *multiLogger) Warning(message string) {
	for _, log := range ml.loggers {
		log.Warning(message)
	}
}

// Error forwards to all loggers
func (ml *multiLogger) Error(message string) {
	for _, log := range ml.loggers {
		log.Error(message)
	}
}

// Summary forwards to all loggers
func (ml *multiLogger) Summary(total, moved, failed, warnings int) {
	for _, log := range ml.loggers {
		log.Summary(total, moved, failed, warnings)
	}
}
