package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const separatorWidth = 40

// Separator returns the console rule printed between pipeline steps.
func Separator() string {
	return strings.Repeat("=", separatorWidth)
}

// Banner prints the application header.
func Banner(w io.Writer, version string) {
	fmt.Fprintln(w, Separator())
	color.New(color.Bold).Fprintf(w, "  tidy v%s\n", version)
	fmt.Fprintln(w, Separator())
}
