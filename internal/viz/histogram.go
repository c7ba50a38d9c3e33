package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/ddmsim/internal/ddm"
)

var riseBlocks = []rune(" ▁▂▃▄▅▆▇█")

func eighths(count, maxCount, rows int) int {
	return int(math.Round(float64(count) / float64(maxCount) * float64(rows*8)))
}

func clampFill(v int) int {
	if v < 0 {
		return 0
	}
	if v > 8 {
		return 8
	}
	return v
}

func fallBlock(fill int) rune {
	switch {
	case fill >= 8:
		return '█'
	case fill >= 4:
		return '▀'
	case fill > 0:
		return '▔'
	}
	return ' '
}

// histogramRows lays out a mirrored histogram with one column per bin. The
// upper rows are returned top to bottom ending at the axis; the lower rows
// start at the axis and go down. Both halves share the scale MaxCount.
func histogramRows(d ddm.Distribution, rows int) (upper, lower [][]rune) {
	bins := d.Bins()
	maxCount := d.MaxCount()

	upper = make([][]rune, rows)
	lower = make([][]rune, rows)
	for r := 0; r < rows; r++ {
		upper[r] = make([]rune, bins)
		lower[r] = make([]rune, bins)
	}

	for i := 0; i < bins; i++ {
		uh := eighths(d.Upper[i], maxCount, rows)
		lh := eighths(d.Lower[i], maxCount, rows)
		for r := 0; r < rows; r++ {
			upper[rows-1-r][i] = riseBlocks[clampFill(uh-r*8)]
			lower[r][i] = fallBlock(clampFill(lh - r*8))
		}
	}
	return upper, lower
}

// RenderHistogram draws the decision time distribution with upper choices
// above the axis and lower choices below, rows lines for each half.
func RenderHistogram(d ddm.Distribution, rows int, th Theme) string {
	if d.Bins() == 0 || rows < 1 {
		return ""
	}
	upper, lower := histogramRows(d, rows)
	up, low, muted := th.style(th.Upper), th.style(th.Lower), th.style(th.Muted)

	var b strings.Builder
	for _, row := range upper {
		b.WriteString(up.Render(string(row)) + "\n")
	}
	b.WriteString(muted.Render(strings.Repeat("─", d.Bins())) + "\n")
	for _, row := range lower {
		b.WriteString(low.Render(string(row)) + "\n")
	}

	right := fmt.Sprintf("%.2fs", d.MaxRT)
	pad := d.Bins() - len(right) - 1
	if pad < 1 {
		pad = 1
	}
	b.WriteString(muted.Render("0" + strings.Repeat(" ", pad) + right))
	b.WriteString("\n" + th.style(th.Text).Bold(true).Render("decision time (s) →"))
	return b.String()
}
