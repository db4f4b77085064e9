package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/tidy/internal/filelock"
	"github.com/harrison/tidy/internal/scanner"
)

const mib = 1024 * 1024

// executeCommand runs the root command with args and captures both output
// streams.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := NewRootCommand()

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), errOut.String(), err
}

// isolateHome points TIDY_HOME at an empty location so the test cannot pick
// up a config file from the real environment.
func isolateHome(t *testing.T) string {
	t.Helper()

	home := filepath.Join(t.TempDir(), "tidy-home")
	t.Setenv("TIDY_HOME", home)
	return home
}

// writeAgedFile creates a sparse file of the given size whose modification
// time lies ageDays in the past. The extra hour keeps the age safely above
// the day boundary while the test runs.
func writeAgedFile(t *testing.T, path string, size int64, ageDays int) {
	t.Helper()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	require.NoError(t, err)
	if size > 0 {
		require.NoError(t, f.Truncate(size))
	}
	require.NoError(t, f.Close())

	if ageDays > 0 {
		mtime := time.Now().Add(-time.Duration(ageDays)*24*time.Hour - time.Hour)
		require.NoError(t, os.Chtimes(path, mtime, mtime))
	}
}

// seedDesktop builds a directory with one document, one large old video,
// one unclassifiable file and a subdirectory that must be left alone.
func seedDesktop(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	writeAgedFile(t, filepath.Join(dir, "report.pdf"), 50*mib, 10)
	writeAgedFile(t, filepath.Join(dir, "video.mp4"), 200*mib, 200)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.xyz"), []byte("misc"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "keep.txt"), []byte("keep"), 0644))
	return dir
}

func TestOrganizeCommandMovesFiles(t *testing.T) {
	isolateHome(t)
	dir := seedDesktop(t)
	logDir := filepath.Join(t.TempDir(), "logs")

	stdout, _, err := executeCommand(t, "organize", dir, "--no-color", "--log-dir", logDir)
	require.NoError(t, err)

	// Files land in their category directories
	assert.FileExists(t, filepath.Join(dir, "Documents", "report.pdf"))
	assert.FileExists(t, filepath.Join(dir, "Videos", "video.mp4"))
	assert.FileExists(t, filepath.Join(dir, "Others", "notes.xyz"))
	assert.NoFileExists(t, filepath.Join(dir, "report.pdf"))
	assert.NoFileExists(t, filepath.Join(dir, "video.mp4"))
	assert.NoFileExists(t, filepath.Join(dir, "notes.xyz"))

	// Subdirectories are never touched, empty categories get no directory
	assert.FileExists(t, filepath.Join(dir, "nested", "keep.txt"))
	assert.NoDirExists(t, filepath.Join(dir, "Images"))
	assert.NoDirExists(t, filepath.Join(dir, "Archives"))
	assert.NoDirExists(t, filepath.Join(dir, "Code"))

	// Pipeline output
	assert.Contains(t, stdout, "tidy v"+Version)
	assert.Contains(t, stdout, "Target directory: "+dir)
	assert.Contains(t, stdout, "[1/4] [SCAN] Scanning files...")
	assert.Contains(t, stdout, "[SCAN] Found 3 file(s)")
	assert.Contains(t, stdout, "[2/4] [CLASSIFY] Categorizing files...")
	assert.Contains(t, stdout, "Documents: 1 file(s)")
	assert.Contains(t, stdout, "Videos: 1 file(s)")
	assert.Contains(t, stdout, "Others: 1 file(s)")
	assert.Contains(t, stdout, "[3/4] [ANALYZE] Analyzing files...")
	assert.Contains(t, stdout, "Large files (>= 100 MB): 1")
	assert.Contains(t, stdout, "- video.mp4 (200 MiB)")
	assert.Contains(t, stdout, "Old files (>= 90 days): 1")
	assert.Contains(t, stdout, "- video.mp4 (200 days old)")
	assert.Contains(t, stdout, "[4/4] [ORGANIZE] Organizing files...")
	assert.Contains(t, stdout, "Moved: report.pdf → Documents/")
	assert.Contains(t, stdout, "Total files: 3")
	assert.Contains(t, stdout, "Moved: 3")
	assert.Contains(t, stdout, "Failed: 0")
	assert.Contains(t, stdout, "Warnings: 0")
	assert.Contains(t, stdout, "✓ Operation completed successfully!")
	assert.Contains(t, stdout, "Log file: ")

	// The run log records the same moves
	logs, err := filepath.Glob(filepath.Join(logDir, "run-*.log"))
	require.NoError(t, err)
	require.Len(t, logs, 1)
	data, err := os.ReadFile(logs[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "=== tidy run log ===")
	assert.Contains(t, string(data), "Moved: video.mp4 → Videos/")
	assert.Contains(t, string(data), "Status:      SUCCESS")

	_, err = os.Lstat(filepath.Join(logDir, "latest.log"))
	assert.NoError(t, err, "latest.log symlink should point at the run log")
}

func TestOrganizeCommandDryRunLeavesTreeUntouched(t *testing.T) {
	isolateHome(t)
	dir := seedDesktop(t)
	logDir := filepath.Join(t.TempDir(), "logs")

	stdout, _, err := executeCommand(t, "organize", dir, "--dry-run", "--no-color", "--log-dir", logDir)
	require.NoError(t, err)

	// Everything stays where it was
	assert.FileExists(t, filepath.Join(dir, "report.pdf"))
	assert.FileExists(t, filepath.Join(dir, "video.mp4"))
	assert.FileExists(t, filepath.Join(dir, "notes.xyz"))
	assert.NoDirExists(t, filepath.Join(dir, "Documents"))
	assert.NoDirExists(t, filepath.Join(dir, "Videos"))
	assert.NoDirExists(t, filepath.Join(dir, "Others"))

	assert.Contains(t, stdout, "Dry-run mode: ON")
	assert.Contains(t, stdout, "[DRY-RUN MODE] No files will be actually moved")
	assert.Contains(t, stdout, "[4/4] [ORGANIZE] [DRY-RUN] Organizing files...")
	assert.Contains(t, stdout, "[DRY-RUN] Would create directory: Documents")
	assert.Contains(t, stdout, "[DRY-RUN] Would move: report.pdf → Documents/")
	assert.Contains(t, stdout, "Moved: 3")

	// Dry runs still produce a run log
	logs, err := filepath.Glob(filepath.Join(logDir, "run-*.log"))
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestOrganizeCommandCollisionRenames(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "report.pdf"), []byte("incoming"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Documents"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Documents", "report.pdf"), []byte("existing"), 0644))

	stdout, _, err := executeCommand(t, "organize", dir, "--no-color",
		"--log-dir", filepath.Join(t.TempDir(), "logs"))
	require.NoError(t, err)

	assert.Contains(t, stdout, "Directory already exists: Documents")
	assert.Contains(t, stdout, "File collision detected: report.pdf renamed to: report_")
	assert.Contains(t, stdout, "Warnings: 1")

	// The existing file keeps its content, the incoming one gets a suffix
	existing, err := os.ReadFile(filepath.Join(dir, "Documents", "report.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "existing", string(existing))

	entries, err := os.ReadDir(filepath.Join(dir, "Documents"))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	renamed := regexp.MustCompile(`^report_\d{8}_\d{6}\.pdf$`)
	found := false
	for _, entry := range entries {
		if renamed.MatchString(entry.Name()) {
			found = true
		}
	}
	assert.True(t, found, "expected a report_YYYYMMDD_HHMMSS.pdf entry, got %v", entries)
}

func TestOrganizeCommandEmptyDirectory(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()

	stdout, _, err := executeCommand(t, "organize", dir, "--no-color",
		"--log-dir", filepath.Join(t.TempDir(), "logs"))
	require.NoError(t, err)

	assert.Contains(t, stdout, "[SCAN] Found 0 file(s)")
	assert.Contains(t, stdout, "No files to organize. Exiting.")
	assert.NotContains(t, stdout, "✓ Operation completed")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "an empty target must stay empty")
}

func TestOrganizeCommandBadDirectory(t *testing.T) {
	isolateHome(t)
	missing := filepath.Join(t.TempDir(), "missing")

	stdout, stderr, err := executeCommand(t, "organize", missing, "--no-color",
		"--log-dir", filepath.Join(t.TempDir(), "logs"))
	require.Error(t, err)
	assert.ErrorIs(t, err, scanner.ErrNotFound)
	assert.Contains(t, stderr, "Failed to scan directory")
	assert.NotContains(t, stdout, "Failed to scan directory", "error lines belong on the error stream only")
}

func TestOrganizeCommandValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantContain string
	}{
		{
			name:        "zero size threshold",
			args:        []string{"--size", "0"},
			wantContain: "size_threshold_mb must be > 0",
		},
		{
			name:        "negative age threshold",
			args:        []string{"--age", "-3"},
			wantContain: "age_threshold_days must be > 0",
		},
		{
			name:        "unknown log level",
			args:        []string{"--log-level", "loud"},
			wantContain: "invalid log_level",
		},
		{
			name:        "verbose conflicts with log-level",
			args:        []string{"--verbose", "--log-level", "debug"},
			wantContain: "cannot use both --verbose and --log-level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateHome(t)
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644))

			_, _, err := executeCommand(t, append([]string{"organize", dir}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantContain)

			// Nothing ran: the file is still in place
			assert.FileExists(t, filepath.Join(dir, "a.txt"))
		})
	}
}

func TestOrganizeCommandConfigFile(t *testing.T) {
	home := isolateHome(t)
	require.NoError(t, os.MkdirAll(home, 0755))
	configYAML := "size_threshold_mb: 1\ndry_run: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(configYAML), 0644))

	dir := t.TempDir()
	writeAgedFile(t, filepath.Join(dir, "data.bin"), 2*mib, 0)

	// Config alone: 1 MB threshold and dry-run both apply
	stdout, _, err := executeCommand(t, "organize", dir, "--no-color",
		"--log-dir", filepath.Join(t.TempDir(), "logs"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "[DRY-RUN MODE]")
	assert.Contains(t, stdout, "Large files (>= 1 MB): 1")
	assert.FileExists(t, filepath.Join(dir, "data.bin"))

	// A flag overrides its config key, the rest of the config still applies
	stdout, _, err = executeCommand(t, "organize", dir, "--no-color", "--size", "500",
		"--log-dir", filepath.Join(t.TempDir(), "logs"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "[DRY-RUN MODE]")
	assert.Contains(t, stdout, "No large files detected")
	assert.FileExists(t, filepath.Join(dir, "data.bin"))

	// An explicit --dry-run=false beats dry_run: true from the config
	stdout, _, err = executeCommand(t, "organize", dir, "--no-color", "--dry-run=false",
		"--log-dir", filepath.Join(t.TempDir(), "logs"))
	require.NoError(t, err)
	assert.NotContains(t, stdout, "[DRY-RUN MODE]")
	assert.FileExists(t, filepath.Join(dir, "Others", "data.bin"))
}

func TestOrganizeCommandDirectoryPreparationFails(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "report.pdf"), []byte("r"), 0644))
	// A regular file squatting on the category name makes MkdirAll fail
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Documents"), []byte("squatter"), 0644))

	_, _, err := executeCommand(t, "organize", dir, "--no-color",
		"--log-dir", filepath.Join(t.TempDir(), "logs"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create directory")

	// Nothing moved before the abort
	assert.FileExists(t, filepath.Join(dir, "report.pdf"))
	data, readErr := os.ReadFile(filepath.Join(dir, "Documents"))
	require.NoError(t, readErr)
	assert.Equal(t, "squatter", string(data))
}

func TestOrganizeCommandLockBusy(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644))

	lock, err := filelock.LockDir(dir)
	require.NoError(t, err)
	acquired, err := lock.TryLock()
	require.NoError(t, err)
	require.True(t, acquired)
	defer lock.Unlock()

	_, _, err = executeCommand(t, "organize", dir, "--no-color",
		"--log-dir", filepath.Join(t.TempDir(), "logs"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "another organize run holds the lock")
	assert.FileExists(t, filepath.Join(dir, "a.txt"))
}

func TestOrganizeCommandContinuesWithoutLogFile(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644))

	// A file where the log directory parent should be makes MkdirAll fail
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	stdout, _, err := executeCommand(t, "organize", dir, "--no-color",
		"--log-dir", filepath.Join(blocker, "logs"))
	require.NoError(t, err)

	assert.Contains(t, stdout, "Could not create log file")
	assert.NotContains(t, stdout, "Log file: ")
	assert.FileExists(t, filepath.Join(dir, "Documents", "a.txt"))
}
