package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/ddmsim/internal/ddm"
)

const (
	UpperFill = "#889E81"
	LowerFill = "#BC6C51"
	AxisColor = "#6e7681"
)

// HistogramSVG draws the mirrored decision time histogram: upper counts as
// bars above the axis, lower counts below it, both scaled by MaxCount.
func HistogramSVG(d ddm.Distribution, width, height int) string {
	bins := d.Bins()
	if bins == 0 || width <= 0 || height <= 0 {
		return ""
	}

	w := float64(width)
	h := float64(height)
	mid := h / 2
	barW := w / float64(bins)
	scale := (mid - 4) / float64(d.MaxCount())

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	writeBars(&sb, d.Upper, barW, scale, mid, true)
	writeBars(&sb, d.Lower, barW, scale, mid, false)

	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>
`, mid, w, mid, AxisColor))
	sb.WriteString("</svg>")
	return sb.String()
}

func writeBars(sb *strings.Builder, counts []int, barW, scale, mid float64, up bool) {
	fill := LowerFill
	if up {
		fill = UpperFill
	}

	sb.WriteString(fmt.Sprintf("<g fill=\"%s\">\n", fill))
	for i, c := range counts {
		if c == 0 {
			continue
		}
		bh := float64(c) * scale
		y := mid
		if up {
			y = mid - bh
		}
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, float64(i)*barW, y, barW*0.9, bh))
	}
	sb.WriteString("</g>\n")
}

// PathSVG draws one trajectory between the two boundaries. The x axis spans
// max(len(path), span) steps so short trials keep a stable scale.
func PathSVG(path []float64, a float64, span, width, height int, stroke string) string {
	if len(path) < 2 || a <= 0 || width <= 0 || height <= 0 {
		return ""
	}
	if span < len(path) {
		span = len(path)
	}

	w := float64(width)
	h := float64(height)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for _, y := range []float64{0.5, h - 0.5} {
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>
`, y, w, y, AxisColor))
	}

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke))
	for i, v := range path {
		x := float64(i) / float64(span-1) * w
		y := h - v/a*h
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// TrialColor picks the fill used for a trial's outcome.
func TrialColor(t ddm.Trial) string {
	if t.Outcome == ddm.Upper {
		return UpperFill
	}
	return LowerFill
}
