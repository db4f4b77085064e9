//go:build ignore
// +build ignore

// Demo script that seeds a scratch directory and organizes it in dry-run mode
// Run with: go run scripts/demo-dry-run.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/harrison/tidy/internal/classifier"
	"github.com/harrison/tidy/internal/logger"
	"github.com/harrison/tidy/internal/mover"
	"github.com/harrison/tidy/internal/scanner"
)

func main() {
	dir, err := os.MkdirTemp("", "tidy-demo-")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create demo directory: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(dir)

	seeds := []string{"report.pdf", "photo.jpg", "clip.mp4", "backup.zip", "main.go", "notes.xyz"}
	for _, name := range seeds {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("demo"), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed %s: %v\n", name, err)
			os.Exit(1)
		}
	}

	log := logger.NewConsoleLogger(os.Stdout, os.Stderr, "debug")
	log.Info("Demo directory: " + dir)

	fsys := afero.NewOsFs()
	result, err := scanner.New(fsys, log).Scan(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Scan failed: %v\n", err)
		os.Exit(1)
	}

	groups := classifier.Classify(result.Files, log)

	if _, err := mover.New(fsys, log, true).Organize(dir, groups); err != nil {
		fmt.Fprintf(os.Stderr, "Organize failed: %v\n", err)
		os.Exit(1)
	}
}
