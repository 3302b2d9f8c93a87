// Package cli displays experiment results in the terminal, as horizontal bars per depth.
package cli

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/chewxy/math32"
	"github.com/janpfeifer/depthplot/internal/results"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"io"
	"os"
	"regexp"
	"strings"
)

const (
	// DefaultWidth is used when the output is not a terminal.
	DefaultWidth = 80

	barSymbol = "█"
	indent    = "    "
)

var (
	ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

	// playerColors are ANSI colors, cycled over the players in order.
	playerColors = []lipgloss.Color{"1", "4", "2", "3", "5", "6", "9", "12"}
)

// displayWidth of s removes its color/control sequences and returns the number of runes left.
func displayWidth(s string) int {
	return len([]rune(ansiFilter.ReplaceAllString(s, "")))
}

// UI prints results to a writer, usually os.Stdout.
type UI struct {
	w        io.Writer
	width    int
	renderer *lipgloss.Renderer
}

// New creates a UI writing to w.
// If w is a terminal, its width is used, otherwise DefaultWidth.
// If color is false, no color or styling is used.
func New(w io.Writer, color bool) *UI {
	ui := &UI{
		w:        w,
		width:    DefaultWidth,
		renderer: lipgloss.NewRenderer(w),
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			ui.width = width
		}
	}
	if !color {
		ui.renderer.SetColorProfile(termenv.Ascii)
	}
	return ui
}

// SetWidth overrides the width of the output.
func (ui *UI) SetWidth(width int) {
	ui.width = width
}

func (ui *UI) printCentered(block string) {
	lines := strings.Split(block, "\n")
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, displayWidth(line))
	}
	margin := max((ui.width-blockWidth)/2, 0)
	for _, line := range lines {
		if len(line) == 0 {
			_, _ = fmt.Fprintln(ui.w)
			continue
		}
		_, _ = fmt.Fprintf(ui.w, "%s%s\n", strings.Repeat(" ", margin), line)
	}
}

// barLength returns the number of symbols to represent count, given maxCount should take available symbols.
// Non-zero counts always get at least one symbol.
func barLength(count, maxCount results.WinCount, available int) int {
	if count <= 0 || maxCount <= 0 || available <= 0 {
		return 0
	}
	scale := float32(available) / float32(maxCount)
	length := int(math32.Round(float32(count) * scale))
	return min(max(length, 1), available)
}

// PrintResults prints the title and one block per depth (in increasing order), with a bar for each
// player proportional to their number of wins.
func (ui *UI) PrintResults(title string, rs *results.ResultSet) {
	titleStyle := ui.renderer.NewStyle().Bold(true).Padding(0, 2).
		Background(lipgloss.Color("13")).
		Foreground(lipgloss.Color("0"))
	_, _ = fmt.Fprintln(ui.w)
	ui.printCentered(titleStyle.Render(title))
	_, _ = fmt.Fprintln(ui.w)

	depths := rs.Depths()
	if len(depths) == 0 {
		_, _ = fmt.Fprintf(ui.w, "%s(no results)\n", indent)
		return
	}

	players := rs.Players()
	nameWidth := 0
	for _, player := range players {
		nameWidth = max(nameWidth, displayWidth(player))
	}
	maxWins := rs.MaxWins()
	countWidth := len(fmt.Sprintf("%d", maxWins))
	available := ui.width - len(indent) - nameWidth - countWidth - 2

	depthStyle := ui.renderer.NewStyle().Bold(true).Underline(true)
	for _, depth := range depths {
		_, _ = fmt.Fprintf(ui.w, "%s\n", depthStyle.Render(fmt.Sprintf("Profondeur %d", depth)))
		for playerIdx, player := range players {
			count, found := rs.Wins(depth, player)
			if !found {
				continue
			}
			barStyle := ui.renderer.NewStyle().Foreground(playerColors[playerIdx%len(playerColors)])
			bar := strings.Repeat(barSymbol, barLength(count, maxWins, available))
			_, _ = fmt.Fprintf(ui.w, "%s%s%s %s %d\n",
				indent, player, strings.Repeat(" ", nameWidth-displayWidth(player)),
				barStyle.Render(bar), count)
		}
	}
	_, _ = fmt.Fprintln(ui.w)
}
