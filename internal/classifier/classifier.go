// Package classifier groups scanned files by category.
//
// Classification is pure: it reads the extension already recorded on each
// file and never touches the filesystem.
package classifier

import (
	"fmt"

	"github.com/harrison/tidy/internal/category"
	"github.com/harrison/tidy/internal/logger"
	"github.com/harrison/tidy/internal/models"
)

// Grouping maps each category to the files assigned to it. After Classify
// every category is present as a key, so callers can range over
// category.All() without existence checks.
type Grouping map[category.Category][]models.FileRecord

// Count returns the total number of files across all categories.
func (g Grouping) Count() int {
	total := 0
	for _, files := range g {
		total += len(files)
	}
	return total
}

// Classify assigns each record to a category by its extension. Files keep
// their scan order within a bucket. Unmatched extensions land in Others.
func Classify(records []models.FileRecord, log logger.Logger) Grouping {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	groups := make(Grouping, len(category.All()))
	for _, cat := range category.All() {
		groups[cat] = []models.FileRecord{}
	}

	for _, rec := range records {
		cat := category.FromExtension(rec.Ext)
		groups[cat] = append(groups[cat], rec)
	}

	for _, cat := range category.All() {
		if len(groups[cat]) == 0 {
			continue
		}
		log.Info(fmt.Sprintf("%s: %d file(s)", cat, len(groups[cat])))
	}

	return groups
}
