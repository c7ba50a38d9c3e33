package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ddmsim/internal/ddm"
)

const (
	// VisibleTrials is how many of the most recent trajectories are drawn.
	VisibleTrials = 2
	// MinPathSpan is the narrowest time axis, in steps.
	MinPathSpan = 200
)

// PathSpan is the time axis length in steps: the longest recorded path,
// at least MinPathSpan.
func PathSpan(trials []ddm.Trial) int {
	span := MinPathSpan
	for _, tr := range trials {
		if len(tr.Path) > span {
			span = len(tr.Path)
		}
	}
	return span
}

type layer struct {
	canvas *Canvas
	color  lipgloss.Color
}

type cell struct {
	r     rune
	color lipgloss.Color
}

func plotPath(c *Canvas, path []float64, a float64, span int) {
	px := func(i int) int { return i * (c.DotsX() - 1) / span }
	py := func(v float64) int { return int((1 - v/a) * float64(c.DotsY()-1)) }

	if len(path) == 1 {
		c.Set(px(0), py(path[0]))
		return
	}
	for i := 1; i < len(path); i++ {
		c.Line(px(i-1), py(path[i-1]), px(i), py(path[i]))
	}
}

// pathGrid overlays the boundaries and each trajectory. Where layers share a
// cell their dots are merged and the latest trajectory sets the color.
func pathGrid(trials []ddm.Trial, a float64, span, w, h int, th Theme) [][]cell {
	bounds := NewCanvas(w, h)
	bounds.HLine(0)
	bounds.HLine(bounds.DotsY() - 1)

	layers := []layer{{bounds, th.Boundary}}
	for _, tr := range trials {
		c := NewCanvas(w, h)
		plotPath(c, tr.Path, a, span)
		layers = append(layers, layer{c, th.outcomeColor(tr.Outcome == ddm.Upper)})
	}

	grid := make([][]cell, h)
	for row := range grid {
		grid[row] = make([]cell, w)
		for col := range grid[row] {
			r := rune(brailleBlank)
			var color lipgloss.Color
			for _, l := range layers {
				if l.canvas.Empty(col, row) {
					continue
				}
				r |= l.canvas.Grid[row][col]
				color = l.color
			}
			grid[row][col] = cell{r, color}
		}
	}
	return grid
}

// RenderPaths draws the two boundaries and the given trajectories on a
// w x h cell canvas. span is the time axis length in steps.
func RenderPaths(trials []ddm.Trial, a float64, span, w, h int, th Theme) string {
	if a <= 0 || w < 1 || h < 1 {
		return ""
	}
	if span < 1 {
		span = MinPathSpan
	}

	label := th.style(th.Text).Bold(true)
	var b strings.Builder
	b.WriteString(label.Render(fmt.Sprintf("upper boundary (a=%.2f)", a)) + "\n")
	for _, row := range pathGrid(trials, a, span, w, h, th) {
		for _, c := range row {
			if c.r == brailleBlank {
				b.WriteRune(' ')
				continue
			}
			b.WriteString(th.style(c.color).Render(string(c.r)))
		}
		b.WriteByte('\n')
	}
	b.WriteString(label.Render("lower boundary (0)"))
	return b.String()
}
