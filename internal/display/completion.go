package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Completion prints the closing status block. A run with per-file move
// failures still completes; the failure count is surfaced here and in the
// summary, not in the exit status.
func Completion(w io.Writer, failed int, logPath string) {
	fmt.Fprintln(w, Separator())
	if failed == 0 {
		color.New(color.FgGreen).Fprintln(w, "✓ Operation completed successfully!")
	} else {
		color.New(color.FgYellow).Fprintf(w, "Operation completed with %d failed move(s)\n", failed)
	}
	if logPath != "" {
		fmt.Fprintf(w, "\nLog file: %s\n", logPath)
	}
	fmt.Fprintln(w, Separator())
}
