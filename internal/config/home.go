package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Home returns the directory holding tidy's configuration.
// Priority order:
//  1. TIDY_HOME environment variable (if set)
//  2. .tidy under the current working directory
//
// The directory is not created; callers that write into it create it.
func Home() (string, error) {
	if home := os.Getenv("TIDY_HOME"); home != "" {
		return home, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	return filepath.Join(cwd, ".tidy"), nil
}
