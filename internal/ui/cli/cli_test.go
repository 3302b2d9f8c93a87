package cli

import (
	"bytes"
	"github.com/janpfeifer/depthplot/internal/results"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestBarLength(t *testing.T) {
	assert.Equal(t, 0, barLength(0, 10, 20))
	assert.Equal(t, 20, barLength(10, 10, 20))
	assert.Equal(t, 10, barLength(5, 10, 20))
	assert.Equal(t, 1, barLength(1, 1000, 20))
	assert.Equal(t, 0, barLength(3, 0, 20))
	assert.Equal(t, 0, barLength(3, 10, -5))
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 6, displayWidth("\x1b[31;1mrobot1\x1b[0m"))
	assert.Equal(t, 10, displayWidth("Profondeur"))
	assert.Equal(t, 3, displayWidth(strings.Repeat(barSymbol, 3)))
}

func TestPrintResults(t *testing.T) {
	rs := results.FromMap(map[results.Depth]map[string]results.WinCount{
		2: {"robot1": 3, "robot2": 6},
		1: {"robot2": 0, "robot10": 1},
	})
	var buf bytes.Buffer
	ui := New(&buf, false)
	ui.SetWidth(40)
	ui.PrintResults("Résultats", rs)
	out := buf.String()
	assert.NotContains(t, out, "\x1b[")

	lines := strings.Split(out, "\n")
	var content []string
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			content = append(content, line)
		}
	}
	// Name column is 7 wide ("robot10"), count column 1, so bars take 40-4-7-1-2 = 26 symbols at most.
	want := []string{
		"Profondeur 1",
		"    robot10 " + strings.Repeat(barSymbol, 4) + " 1",
		"    robot2  " + " 0",
		"Profondeur 2",
		"    robot1  " + strings.Repeat(barSymbol, 13) + " 3",
		"    robot2  " + strings.Repeat(barSymbol, 26) + " 6",
	}
	if assert.Len(t, content, len(want)+1) {
		assert.Contains(t, content[0], "Résultats")
		assert.Equal(t, want, content[1:])
	}
}

func TestPrintEmptyResults(t *testing.T) {
	var buf bytes.Buffer
	ui := New(&buf, false)
	ui.PrintResults("Résultats", results.FromMap(nil))
	assert.Contains(t, buf.String(), "(no results)")
}
