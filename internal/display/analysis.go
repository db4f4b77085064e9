package display

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/harrison/tidy/internal/models"
)

// previewLimit caps how many flagged files are listed per section; the
// heading always carries the true total.
const previewLimit = 5

// Analysis renders the large/old file report shown after a scan.
type Analysis struct {
	SizeThresholdMB  int64
	AgeThresholdDays int
	Now              time.Time
}

// Display writes the large and old file sections. Each section previews at
// most previewLimit entries, then an overflow line with the remainder.
func (a Analysis) Display(w io.Writer, large, old []models.FileRecord) {
	if len(large) == 0 {
		fmt.Fprintln(w, "  No large files detected")
	} else {
		fmt.Fprintf(w, "  Large files (>= %d MB): %d\n", a.SizeThresholdMB, len(large))
		for i, rec := range large {
			if i == previewLimit {
				break
			}
			fmt.Fprintf(w, "    - %s (%s)\n", rec.Name, humanize.IBytes(uint64(rec.Size)))
		}
		if len(large) > previewLimit {
			fmt.Fprintf(w, "    ... and %d more\n", len(large)-previewLimit)
		}
	}

	if len(old) == 0 {
		fmt.Fprintln(w, "  No old files detected")
	} else {
		fmt.Fprintf(w, "  Old files (>= %d days): %d\n", a.AgeThresholdDays, len(old))
		for i, rec := range old {
			if i == previewLimit {
				break
			}
			fmt.Fprintf(w, "    - %s (%d days old)\n", rec.Name, rec.AgeDays(a.Now))
		}
		if len(old) > previewLimit {
			fmt.Fprintf(w, "    ... and %d more\n", len(old)-previewLimit)
		}
	}
}
