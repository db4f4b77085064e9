// Package scanner discovers the regular files in a single directory and
// partitions them by size and age thresholds.
//
// Scans are non-recursive: subdirectories and other non-regular entries
// are skipped. An entry whose metadata cannot be read is recorded and
// logged but never aborts the scan.
package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/afero"

	"github.com/harrison/tidy/internal/logger"
	"github.com/harrison/tidy/internal/models"
)

// Default thresholds for flagging files in the scan report.
const (
	DefaultSizeThresholdMB  int64 = 100
	DefaultAgeThresholdDays int   = 90
)

var (
	// ErrNotFound reports a scan target that does not exist.
	ErrNotFound = errors.New("directory not found")

	// ErrNotDir reports a scan target that exists but is not a directory.
	ErrNotDir = errors.New("not a directory")
)

// SkipError records a directory entry whose metadata could not be read.
type SkipError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e SkipError) Error() string {
	return fmt.Sprintf("skipped %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e SkipError) Unwrap() error {
	return e.Err
}

// Result holds the outcome of a single scan. Large and Old are views over
// Files evaluated against the thresholds in force when Scan ran; changing
// a threshold afterwards does not alter an existing Result.
type Result struct {
	// Files lists every regular file found, in name order
	Files []models.FileRecord

	// Large lists the files at or above the size threshold
	Large []models.FileRecord

	// Old lists the files at or above the age threshold
	Old []models.FileRecord

	// Skipped lists entries whose metadata could not be read
	Skipped []SkipError
}

// Scanner reads one directory level and builds FileRecords for its
// regular files. Thresholds can be adjusted between scans; a Scanner is
// not safe for concurrent use.
type Scanner struct {
	fs               afero.Fs
	log              logger.Logger
	sizeThresholdMB  int64
	ageThresholdDays int
	now              func() time.Time
}

// New creates a Scanner over the given filesystem with the default
// thresholds. A nil log discards diagnostics.
func New(fsys afero.Fs, log logger.Logger) *Scanner {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Scanner{
		fs:               fsys,
		log:              log,
		sizeThresholdMB:  DefaultSizeThresholdMB,
		ageThresholdDays: DefaultAgeThresholdDays,
		now:              time.Now,
	}
}

// SetSizeThresholdMB changes the large-file threshold for subsequent scans.
func (s *Scanner) SetSizeThresholdMB(mb int64) {
	s.sizeThresholdMB = mb
	s.log.Info(fmt.Sprintf("Large file threshold set to %d MB", mb))
}

// SetAgeThresholdDays changes the old-file threshold for subsequent scans.
func (s *Scanner) SetAgeThresholdDays(days int) {
	s.ageThresholdDays = days
	s.log.Info(fmt.Sprintf("Old file threshold set to %d days", days))
}

// Scan reads the immediate entries of dir and returns the regular files
// found there, partitioned by the current thresholds.
//
// A missing target returns ErrNotFound, a non-directory target ErrNotDir;
// both are wrapped with the offending path. Per-entry metadata failures
// are logged as warnings, collected in Result.Skipped, and do not stop
// the scan.
func (s *Scanner) Scan(dir string) (*Result, error) {
	info, err := s.fs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return nil, fmt.Errorf("failed to access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDir, dir)
	}

	s.log.Info(fmt.Sprintf("Scanning directory: %s", dir))

	names, err := s.readNames(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	result := &Result{
		Files: make([]models.FileRecord, 0, len(names)),
	}
	now := s.now()

	for _, name := range names {
		path := filepath.Join(dir, name)

		entry, err := s.lstat(path)
		if err != nil {
			skip := SkipError{Path: path, Err: err}
			result.Skipped = append(result.Skipped, skip)
			s.log.Warning(fmt.Sprintf("Could not read entry: %s (%v)", path, err))
			continue
		}

		// Only regular files are organized; directories, symlinks and
		// special files stay where they are.
		if !entry.Mode().IsRegular() {
			continue
		}

		rec := models.FileRecord{
			Path:    path,
			Name:    name,
			Ext:     models.ExtensionOf(name),
			Size:    entry.Size(),
			ModTime: entry.ModTime(),
		}
		result.Files = append(result.Files, rec)

		if rec.SizeMB() >= s.sizeThresholdMB {
			result.Large = append(result.Large, rec)
		}
		if rec.AgeDays(now) >= s.ageThresholdDays {
			result.Old = append(result.Old, rec)
		}
	}

	s.log.Info(fmt.Sprintf("Scan complete: %d file(s) found", len(result.Files)))

	return result, nil
}

// readNames lists the entry names of dir in sorted order.
func (s *Scanner) readNames(dir string) ([]string, error) {
	f, err := s.fs.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, err
	}

	sort.Strings(names)
	return names, nil
}

// lstat stats a path without following symlinks where the filesystem
// supports it, so links show up as non-regular entries.
func (s *Scanner) lstat(path string) (os.FileInfo, error) {
	if lst, ok := s.fs.(afero.Lstater); ok {
		info, _, err := lst.LstatIfPossible(path)
		return info, err
	}
	return s.fs.Stat(path)
}
