package dosplot

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// plotArea maps data coordinates onto a pixel rectangle. Pixel y grows
// downward, so py flips the data axis.
type plotArea struct {
	x0, y0, x1, y1         float64 // pixel rectangle, top-left to bottom-right
	xmin, xmax, ymin, ymax float64 // data window
}

func (a plotArea) px(x float64) float64 {
	return a.x0 + (x-a.xmin)/(a.xmax-a.xmin)*(a.x1-a.x0)
}

func (a plotArea) py(y float64) float64 {
	return a.y1 - (y-a.ymin)/(a.ymax-a.ymin)*(a.y1-a.y0)
}

// tickStep picks a step of the form {1, 2, 2.5, 5, 10}·10^k so that the span
// holds at most maxTicks intervals.
func tickStep(span float64, maxTicks int) float64 {
	if span <= 0 || maxTicks < 1 {
		return 1
	}
	raw := span / float64(maxTicks)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		if m*mag >= raw {
			return m * mag
		}
	}
	return 10 * mag
}

// ticks returns tick positions covering [lo, hi] at a step chosen by
// tickStep. Positions land on multiples of the step.
func ticks(lo, hi float64, maxTicks int) []float64 {
	step := tickStep(hi-lo, maxTicks)
	first := math.Ceil(lo/step) * step
	var out []float64
	// Half-step tolerance absorbs accumulated floating-point error.
	for v := first; v <= hi+step/2; v += step {
		if v > hi+step*1e-9 {
			break
		}
		// Snap -0 and near-integer noise for stable labels.
		out = append(out, math.Round(v/step)*step)
	}
	return out
}

// formatTick renders a tick value with just enough decimals for the step.
func formatTick(v, step float64) string {
	decimals := 0
	for s := step; decimals < 6 && math.Abs(s-math.Round(s)) > 1e-9; s *= 10 {
		decimals++
	}
	out := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.TrimLeft(out, "-0.") == "" {
		out = strings.TrimPrefix(out, "-")
	}
	return out
}

// axisStyle mirrors the figure styling of the renderer: heavy spines,
// short outward tick marks.
const (
	spineWidth = 1.5
	tickLen    = 5
	tickWidth  = 1.2
	xTickCount = 8
	yTickCount = 6
)

// drawAxes draws the frame, tick marks, tick labels, and axis titles.
func drawAxes(dc *gg.Context, a plotArea, faces faceSet, xLabel, yLabel string) {
	dc.SetColor(gg.Black.Color())

	// Tick marks and labels.
	dc.SetFont(faces.tick)
	dc.SetLineWidth(tickWidth)
	xs := ticks(a.xmin, a.xmax, xTickCount)
	xstep := tickStep(a.xmax-a.xmin, xTickCount)
	for _, v := range xs {
		p := a.px(v)
		dc.DrawLine(p, a.y1, p, a.y1+tickLen)
		dc.Stroke()
		dc.DrawStringAnchored(formatTick(v, xstep), p, a.y1+tickLen+3, 0.5, 1)
	}
	ys := ticks(a.ymin, a.ymax, yTickCount)
	ystep := tickStep(a.ymax-a.ymin, yTickCount)
	for _, v := range ys {
		p := a.py(v)
		dc.DrawLine(a.x0-tickLen, p, a.x0, p)
		dc.Stroke()
		dc.DrawStringAnchored(formatTick(v, ystep), a.x0-tickLen-4, p, 1, 0.4)
	}

	// Axis titles: x centered below the tick labels, y rotated along the
	// left edge.
	dc.SetFont(faces.label)
	_, th := dc.MeasureString(xLabel)
	dc.DrawStringAnchored(xLabel, (a.x0+a.x1)/2, a.y1+tickLen+th+8, 0.5, 1)

	yx := a.x0 - tickLen - 30
	yy := (a.y0 + a.y1) / 2
	dc.Push()
	dc.RotateAbout(-math.Pi/2, yx, yy)
	dc.DrawStringAnchored(yLabel, yx, yy, 0.5, 0)
	dc.Pop()

	// Spines last so traces never overdraw the frame.
	dc.SetLineWidth(spineWidth)
	dc.DrawRectangle(a.x0, a.y0, a.x1-a.x0, a.y1-a.y0)
	dc.Stroke()
}
