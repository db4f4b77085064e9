// Package display provides terminal output helpers for banners, step
// headers, analysis previews, and warnings.
//
// The package centralizes user-facing console formatting for the tidy CLI.
// Leveled diagnostics go through internal/logger; display covers the
// structural output around them:
//
// # Step Headers
//
// Use Steps to number the pipeline stages:
//
//	steps := display.NewSteps(os.Stdout, 4)
//	steps.Next("SCAN", "Scanning files...")
//	steps.Next("CLASSIFY", "Categorizing files...")
//
// # Analysis Preview
//
// Analysis renders the large/old file report after a scan:
//
//	analysis := display.Analysis{
//	    SizeThresholdMB:  100,
//	    AgeThresholdDays: 90,
//	    Now:              time.Now(),
//	}
//	analysis.Display(os.Stdout, result.Large, result.Old)
//
// # Warning Messages
//
// Display warnings with optional components:
//
//	warning := display.Warning{
//	    Title:      "Some entries could not be read",
//	    Files:      []string{"locked.dat"},
//	    Suggestion: "Check file permissions and re-run.",
//	}
//	warning.Display(os.Stdout)
//
// Colors come from github.com/fatih/color and honor its global NoColor
// switch, so --no-color and non-terminal output degrade to plain text.
// All functions accept io.Writer interfaces for testability.
package display
