package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletionSuccess(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	Completion(&buf, 0, "/home/me/.tidy/logs/run-20240601-120000.log")

	output := buf.String()
	assert.Contains(t, output, "✓ Operation completed successfully!\n")
	assert.Contains(t, output, "Log file: /home/me/.tidy/logs/run-20240601-120000.log\n")
	assert.NotContains(t, output, "failed")
}

func TestCompletionWithFailures(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	Completion(&buf, 2, "/tmp/run.log")

	output := buf.String()
	assert.Contains(t, output, "Operation completed with 2 failed move(s)\n")
	assert.NotContains(t, output, "successfully")
}

func TestCompletionWithoutLogFile(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	Completion(&buf, 0, "")

	assert.NotContains(t, buf.String(), "Log file:")
}
