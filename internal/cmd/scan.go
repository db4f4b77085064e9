package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/harrison/tidy/internal/classifier"
	"github.com/harrison/tidy/internal/display"
	"github.com/harrison/tidy/internal/logger"
	"github.com/harrison/tidy/internal/scanner"
)

// NewScanCommand creates the scan command
func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "Preview the categorization without moving anything",
		Long: `Scan the target directory (default: current working directory) and report
how its files would be categorized, plus which files exceed the size and
age thresholds. Nothing is moved, created or locked.

Examples:
  # Preview the desktop
  tidy scan ~/Desktop

  # Preview with custom thresholds
  tidy scan --size=50 --age=30 ~/Downloads`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScan,
	}

	// Add flags
	cmd.Flags().String("config", "", "Path to config file (default: .tidy/config.yaml)")
	cmd.Flags().Int64("size", 100, "Large file threshold in MB")
	cmd.Flags().Int("age", 90, "Old file threshold in days")
	cmd.Flags().Bool("no-color", false, "Disable colored output")

	return cmd
}

// runScan implements the scan command logic
func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Get flag values
	sizeFlag, _ := cmd.Flags().GetInt64("size")
	ageFlag, _ := cmd.Flags().GetInt("age")
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
	var noColorPtr *bool
	if cmd.Flags().Changed("no-color") {
		noColorPtr = &noColorFlag
	}

	// Merge CLI flags with config (flags take precedence)
	cfg.MergeWithFlags(sizePtr, agePtr, nil, nil, nil, noColorPtr)

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

	if cfg.NoColor {
		color.NoColor = true
	}

	out := cmd.OutOrStdout()
	log := logger.NewConsoleLogger(out, cmd.ErrOrStderr(), cfg.LogLevel)

	display.Banner(out, Version)
	log.Info("Target directory: " + absDir)

	steps := display.NewSteps(out, 3)

	// Step 1: scan the directory
	steps.Next("SCAN", "Scanning files...")

	scan := scanner.New(afero.NewOsFs(), log)
	scan.SetSizeThresholdMB(cfg.SizeThresholdMB)
	scan.SetAgeThresholdDays(cfg.AgeThresholdDays)

	result, err := scan.Scan(absDir)
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

	// Step 2: classify by extension
	steps.Next("CLASSIFY", "Categorizing files...")
	classifier.Classify(result.Files, log)

	// Step 3: report large and old files
	steps.Next("ANALYZE", "Analyzing files...")
	display.Analysis{
		SizeThresholdMB:  cfg.SizeThresholdMB,
		AgeThresholdDays: cfg.AgeThresholdDays,
		Now:              time.Now(),
	}.Display(out, result.Large, result.Old)

	fmt.Fprintln(out, display.Separator())

	return nil
}
