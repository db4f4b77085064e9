package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Steps numbers the pipeline stages shown on the console.
type Steps struct {
	writer  io.Writer
	total   int
	current int
}

// NewSteps creates a step header printer for a pipeline of total stages.
func NewSteps(w io.Writer, total int) *Steps {
	return &Steps{
		writer: w,
		total:  total,
	}
}

// Next prints the separator and the tagged header for the next stage:
// [N/Total] [TAG] message, in cyan.
func (s *Steps) Next(tag, message string) {
	s.current++
	fmt.Fprintln(s.writer, Separator())
	color.New(color.FgCyan).Fprintf(s.writer, "[%d/%d] [%s] %s\n", s.current, s.total, tag, message)
}
