package models

import (
	"path/filepath"
	"strings"
	"time"
)

// FileRecord describes a single regular file discovered during a directory scan.
// Records are immutable snapshots: size and modification time reflect the
// moment the scan observed the file, not its current state on disk.
type FileRecord struct {
	// Path is the full path of the file inside the scanned directory
	Path string

	// Name is the base name of the file, including its extension
	Name string

	// Ext is the lowercased extension with the leading dot ("" when the
	// name has no extension)
	Ext string

	// Size is the file size in bytes
	Size int64

	// ModTime is the last modification time reported by the filesystem
	ModTime time.Time
}

// SizeMB returns the file size in whole megabytes.
// The division truncates, so a file qualifies for a megabyte only once it
// reaches the full 1048576 bytes.
func (f FileRecord) SizeMB() int64 {
	return f.Size / (1024 * 1024)
}

// AgeDays returns the file age in whole days relative to now.
// Whole seconds are divided by 86400 and truncated, so a file becomes one
// day older only when the full day has elapsed. Files modified in the
// future report an age of zero.
func (f FileRecord) AgeDays(now time.Time) int {
	secs := now.Unix() - f.ModTime.Unix()
	if secs < 0 {
		return 0
	}
	return int(secs / 86400)
}

// ExtensionOf returns the lowercased extension of a file name, including
// the leading dot. A name whose only dot is the leading one (".bashrc")
// has no extension, matching how stem and extension split in SplitName.
func ExtensionOf(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return ""
	}
	return strings.ToLower(ext)
}

// SplitName splits a file name into stem and extension, preserving case.
// "Report.PDF" yields ("Report", ".PDF"); ".bashrc" yields (".bashrc", "").
func SplitName(name string) (stem, ext string) {
	ext = filepath.Ext(name)
	if ext == name {
		return name, ""
	}
	return strings.TrimSuffix(name, ext), ext
}
