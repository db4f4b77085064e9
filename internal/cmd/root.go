package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrison/tidy/internal/config"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for tidy
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tidy",
		Short: "Organize a directory by moving files into category folders",
		Long: `Tidy scans a single directory, classifies every regular file by its
extension into Documents, Images, Videos, Archives, Code or Others, and
moves each file into the matching subdirectory.

A file already present at its destination is never overwritten: the
incoming file is renamed with a timestamp suffix instead. Oversized and
stale files are reported before anything moves.

Configuration is loaded from .tidy/config.yaml if present.
CLI flags override configuration file settings.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints the error once together with the exit status
		SilenceErrors: true,
	}

	// Add subcommands
	cmd.AddCommand(NewOrganizeCommand())
	cmd.AddCommand(NewScanCommand())

	return cmd
}

// loadConfig resolves the effective configuration for a command: an explicit
// --config path if given, otherwise config.yaml under the tidy home
// directory.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
		return cfg, nil
	}

	home, err := config.Home()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config location: %w", err)
	}
	cfg, err := config.LoadConfig(filepath.Join(home, "config.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
