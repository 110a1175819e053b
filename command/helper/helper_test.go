package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatKV(t *testing.T) {
	t.Parallel()

	out := FormatKV([]string{
		"Number|300",
		"Base fee|",
	})

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Number")
	assert.Contains(t, lines[0], "300")
	assert.Contains(t, lines[0], "=")
	assert.Contains(t, lines[1], "<none>")
}

func TestFormatList(t *testing.T) {
	t.Parallel()

	out := FormatList([]string{
		"0|0xaa",
		"1|0xbb",
	})

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[1], "0xbb")
	assert.NotContains(t, out, "=")
}
