package dosplot

import (
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// legendEntry is one legend row: a line swatch and its label.
type legendEntry struct {
	label  string
	color  gg.RGBA
	dashed bool
	width  float64
}

const (
	legendPad    = 10 // gap between plot frame and legend block
	legendSwatch = 18 // swatch line length
	legendGap    = 5  // gap between swatch and label
	legendRowPad = 4  // extra vertical space per row
)

// drawLegend lays the entries out in cols columns anchored at the configured
// corner of the plot area and draws them frameless, the way the figures
// this replaces did.
func drawLegend(dc *gg.Context, a plotArea, face text.Face, entries []legendEntry, loc string, cols int) {
	if len(entries) == 0 {
		return
	}
	if cols < 1 {
		cols = 1
	}
	if cols > len(entries) {
		cols = len(entries)
	}

	dc.SetFont(face)
	rowH := 0.0
	for i := range entries {
		w, h := dc.MeasureString(entries[i].label)
		entries[i].width = legendSwatch + legendGap + w
		if h+legendRowPad > rowH {
			rowH = h + legendRowPad
		}
	}

	// Column widths from the widest entry in each column; entries fill
	// column-major like the original layout.
	rows := (len(entries) + cols - 1) / cols
	colW := make([]float64, cols)
	for i, e := range entries {
		c := i / rows
		if e.width > colW[c] {
			colW[c] = e.width
		}
	}
	totalW := 0.0
	for _, w := range colW {
		totalW += w + legendPad
	}
	totalW -= legendPad
	totalH := float64(rows) * rowH

	ox, oy := legendOrigin(a, loc, totalW, totalH)

	x := ox
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			i := c*rows + r
			if i >= len(entries) {
				break
			}
			e := entries[i]
			y := oy + float64(r)*rowH + rowH/2
			dc.SetColor(e.color.Color())
			dc.SetLineWidth(1.5)
			if e.dashed {
				dc.SetDash(5, 3)
			}
			dc.DrawLine(x, y, x+legendSwatch, y)
			dc.Stroke()
			if e.dashed {
				dc.ClearDash()
			}
			dc.SetColor(gg.Black.Color())
			dc.DrawStringAnchored(e.label, x+legendSwatch+legendGap, y, 0, 0.4)
		}
		x += colW[c] + legendPad
	}
}

// legendOrigin resolves a matplotlib-style corner spec ("upper left",
// "lower right", "center", ...) to the top-left pixel of the legend block.
// Unknown specs fall back to the upper left.
func legendOrigin(a plotArea, loc string, w, h float64) (x, y float64) {
	x = a.x0 + legendPad
	y = a.y0 + legendPad

	fields := strings.Fields(strings.ToLower(loc))
	vert, horiz := "upper", "left"
	switch len(fields) {
	case 1:
		if fields[0] == "center" {
			vert, horiz = "center", "center"
		}
	case 2:
		vert, horiz = fields[0], fields[1]
	}

	switch vert {
	case "lower":
		y = a.y1 - legendPad - h
	case "center":
		y = (a.y0+a.y1)/2 - h/2
	}
	switch horiz {
	case "right":
		x = a.x1 - legendPad - w
	case "center":
		x = (a.x0+a.x1)/2 - w/2
	}
	return x, y
}
