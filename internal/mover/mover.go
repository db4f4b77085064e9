// Package mover relocates classified files into per-category
// subdirectories of the scanned directory.
//
// Organizing is two-phase: category directories are prepared first, then
// files are moved one by one. A failed move is recorded and counted but
// never aborts the run; a failed directory preparation aborts before any
// file is moved.
package mover

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/harrison/tidy/internal/category"
	"github.com/harrison/tidy/internal/classifier"
	"github.com/harrison/tidy/internal/logger"
	"github.com/harrison/tidy/internal/models"
)

// Result reports one Organize call: aggregate counters plus the per-file
// outcome records they are derived from.
type Result struct {
	Summary models.Summary
	Moves   []models.MoveResult
}

// Mover moves files into category directories, renaming on collision.
type Mover struct {
	fs     afero.Fs
	log    logger.Logger
	dryRun bool
	now    func() time.Time
}

// New creates a Mover. In dry-run mode every operation is logged but the
// filesystem is never touched.
func New(fsys afero.Fs, log logger.Logger, dryRun bool) *Mover {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Mover{
		fs:     fsys,
		log:    log,
		dryRun: dryRun,
		now:    time.Now,
	}
}

// Organize moves every grouped file into baseDir/<Category>. Counters start
// from zero on each call. The returned error is non-nil only when a category
// directory could not be prepared; per-file move failures are recorded in
// the Result instead.
func (m *Mover) Organize(baseDir string, groups classifier.Grouping) (*Result, error) {
	m.log.Info("Starting file organization...")
	if m.dryRun {
		m.log.Info("[DRY-RUN MODE] No files will be actually moved")
	}

	result := &Result{}

	if err := m.prepareDirectories(baseDir, groups); err != nil {
		return result, err
	}

	for _, cat := range category.All() {
		files := groups[cat]
		if len(files) == 0 {
			continue
		}

		targetDir := filepath.Join(baseDir, string(cat))
		for _, rec := range files {
			result.Moves = append(result.Moves, m.moveFile(rec, cat, targetDir, &result.Summary))
		}
	}

	result.Summary.Total = result.Summary.Moved + result.Summary.Failed
	m.log.Summary(result.Summary.Total, result.Summary.Moved, result.Summary.Failed, result.Summary.Warnings)

	return result, nil
}

// prepareDirectories ensures a subdirectory exists for every non-empty
// category before any file is moved.
func (m *Mover) prepareDirectories(baseDir string, groups classifier.Grouping) error {
	m.log.Info("Creating category directories...")

	for _, cat := range category.All() {
		if len(groups[cat]) == 0 {
			continue
		}

		path := filepath.Join(baseDir, string(cat))
		exists, err := afero.DirExists(m.fs, path)
		if err != nil {
			m.log.Error(fmt.Sprintf("Failed to create directory: %s - %v", cat, err))
			return fmt.Errorf("failed to create directory %s: %w", path, err)
		}

		if m.dryRun {
			if !exists {
				m.log.Info(fmt.Sprintf("[DRY-RUN] Would create directory: %s", cat))
			}
			continue
		}

		if exists {
			m.log.Info(fmt.Sprintf("Directory already exists: %s", cat))
			continue
		}

		if err := m.fs.MkdirAll(path, 0755); err != nil {
			m.log.Error(fmt.Sprintf("Failed to create directory: %s - %v", cat, err))
			return fmt.Errorf("failed to create directory %s: %w", path, err)
		}
		m.log.Success(fmt.Sprintf("Created directory: %s", cat))
	}

	return nil
}

// moveFile moves a single file into targetDir and updates the counters.
func (m *Mover) moveFile(rec models.FileRecord, cat category.Category, targetDir string, sum *models.Summary) models.MoveResult {
	res := models.MoveResult{
		Record:   rec,
		Category: string(cat),
		DestName: rec.Name,
	}

	target := filepath.Join(targetDir, rec.Name)
	exists, err := afero.Exists(m.fs, target)
	if err != nil {
		return m.failMove(res, sum, err)
	}
	if exists {
		res.DestName = m.collisionName(rec.Name)
		res.Renamed = true
		target = filepath.Join(targetDir, res.DestName)
		m.log.Warning(fmt.Sprintf("File collision detected: %s renamed to: %s", rec.Name, res.DestName))
		sum.Warnings++
	}

	if m.dryRun {
		m.log.Info(fmt.Sprintf("[DRY-RUN] Would move: %s → %s/", rec.Name, cat))
		res.Status = models.StatusSimulated
		sum.Moved++
		return res
	}

	if err := m.fs.Rename(rec.Path, target); err != nil {
		return m.failMove(res, sum, err)
	}

	m.log.Success(fmt.Sprintf("Moved: %s → %s/", rec.Name, cat))
	res.Status = models.StatusMoved
	sum.Moved++
	return res
}

func (m *Mover) failMove(res models.MoveResult, sum *models.Summary, err error) models.MoveResult {
	m.log.Error(fmt.Sprintf("Failed to move: %s - %v", res.Record.Name, err))
	res.Status = models.StatusFailed
	res.Err = err
	sum.Failed++
	return res
}

// collisionName builds stem_YYYYMMDD_HHMMSS.ext from the original name.
// Two collisions for the same name within one second produce the same
// suffix.
func (m *Mover) collisionName(name string) string {
	stem, ext := models.SplitName(name)
	return stem + "_" + m.now().Format("20060102_150405") + ext
}
