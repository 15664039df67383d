package dosplot

import "github.com/gogpu/gg"

// Trace styling shared by the renderer.
const (
	totalLineWidth = 1.0
	pdosLineWidth  = 1.5
	zeroLineWidth  = 0.5
	fermiLineWidth = 1.0

	pdosFillAlpha  = 0.2
	totalFillAlpha = 0.1
)

var fermiGray = gg.RGB(0.5, 0.5, 0.5)

// Render draws one DOS chart and returns the canvas it was drawn on. The
// caller typically hands dc.Image() to a display or keeps probing it in
// tests; Show wraps the common render-and-display path.
//
// The steps, in order: validate the table, align energies to the Fermi
// level, detect spin polarization, sort the labels, auto-scale the
// intensity axis from the visible window, then draw total DOS, PDOS traces
// with translucent fills (down channels mirrored negative when
// spin-polarized), the zero and Fermi lines, axes, and legend.
func Render(t *Table, opts ...Option) (*gg.Context, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if t == nil {
		return nil, ErrNoEnergies
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	faces, err := loadFaces(&cfg)
	if err != nil {
		return nil, err
	}

	energies := t.AlignedEnergies(cfg.AlignToFermi)
	fermiX := t.FermiEnergy
	xLabel := "Absolute Energy (eV)"
	if cfg.AlignToFermi {
		fermiX = 0
		xLabel = "Energy (eV) relative to E_F"
	}

	spin := t.SpinPolarized()
	labels := SortLabels(t.Labels(), cfg.OrderMode, cfg.ManualOrder)
	pal := activePalette(&cfg)

	// Peak intensities inside the x-window, for auto-scaling. Series with
	// no visible samples contribute nothing.
	var peaks []float64
	track := func(y []float64) {
		if m, ok := windowMax(energies, y, cfg.XLim[0], cfg.XLim[1]); ok {
			peaks = append(peaks, m)
		}
	}
	if cfg.ShowTotal && t.TotalUp != nil {
		track(t.TotalUp)
		if spin {
			track(t.TotalDown)
		}
	}
	for _, label := range labels {
		up, down := t.Channel(label)
		track(up)
		if spin {
			track(down)
		}
	}

	var ymin, ymax float64
	if cfg.YLim != nil {
		ymin, ymax = cfg.YLim[0], cfg.YLim[1]
	} else {
		ymin, ymax = autoYLimits(peaks, spin)
	}

	dc := gg.NewContext(cfg.Width, cfg.Height)
	dc.ClearWithColor(gg.White)

	a := plotArea{
		x0: 72, y0: 18,
		x1: float64(cfg.Width) - 18, y1: float64(cfg.Height) - 58,
		xmin: cfg.XLim[0], xmax: cfg.XLim[1],
		ymin: ymin, ymax: ymax,
	}

	var entries []legendEntry

	// Traces are clipped to the plot rectangle; axes and legend are not.
	dc.Push()
	dc.ClipRect(a.x0, a.y0, a.x1-a.x0, a.y1-a.y0)

	if cfg.ShowTotal && t.TotalUp != nil {
		strokeTrace(dc, a, energies, t.TotalUp, 1, cfg.TotalColor, totalLineWidth)
		if spin {
			down := t.TotalDown
			if down == nil {
				down = make([]float64, len(energies))
			}
			strokeTrace(dc, a, energies, down, -1, cfg.TotalColor, totalLineWidth)
		} else {
			fillTrace(dc, a, energies, t.TotalUp, 1, fermiGray, totalFillAlpha)
		}
		entries = append(entries, legendEntry{label: "Total", color: cfg.TotalColor})
	}

	for i, label := range labels {
		col := pal.Color(i)
		up, down := t.Channel(label)
		strokeTrace(dc, a, energies, up, 1, col, pdosLineWidth)
		fillTrace(dc, a, energies, up, 1, col, pdosFillAlpha)
		if spin {
			strokeTrace(dc, a, energies, down, -1, col, pdosLineWidth)
			fillTrace(dc, a, energies, down, -1, col, pdosFillAlpha)
		}
		entries = append(entries, legendEntry{label: label, color: col})
	}

	if cfg.ShowFermiLine {
		dc.SetColor(fermiGray.Color())
		dc.SetLineWidth(fermiLineWidth)
		dc.SetDash(5, 3)
		dc.DrawLine(a.px(fermiX), a.y0, a.px(fermiX), a.y1)
		dc.Stroke()
		dc.ClearDash()
		entries = append(entries, legendEntry{label: "E_F", color: fermiGray, dashed: true})
	}

	// Zero intensity line across the full window.
	dc.SetColor(gg.Black.Color())
	dc.SetLineWidth(zeroLineWidth)
	dc.DrawLine(a.x0, a.py(0), a.x1, a.py(0))
	dc.Stroke()

	dc.Pop()

	drawAxes(dc, a, faces, xLabel, "Density of states (states/eV)")
	drawLegend(dc, a, faces.legend, entries, cfg.LegendLoc, cfg.LegendCols)

	Logger().Debug("dos chart rendered",
		"labels", labels,
		"spin_polarized", spin,
		"ylim_low", ymin,
		"ylim_high", ymax,
	)
	return dc, nil
}

// tracePath builds the polyline of one spin channel. sign is -1 for the
// mirrored down channel.
func tracePath(dc *gg.Context, a plotArea, xs, ys []float64, sign float64) {
	dc.MoveTo(a.px(xs[0]), a.py(sign*ys[0]))
	for i := 1; i < len(xs); i++ {
		dc.LineTo(a.px(xs[i]), a.py(sign*ys[i]))
	}
}

// strokeTrace strokes one channel as a line.
func strokeTrace(dc *gg.Context, a plotArea, xs, ys []float64, sign float64, col gg.RGBA, width float64) {
	if len(xs) == 0 {
		return
	}
	dc.SetColor(col.Color())
	dc.SetLineWidth(width)
	tracePath(dc, a, xs, ys, sign)
	dc.Stroke()
}

// fillTrace shades the area between one channel and the zero line.
func fillTrace(dc *gg.Context, a plotArea, xs, ys []float64, sign float64, col gg.RGBA, alpha float64) {
	if len(xs) == 0 {
		return
	}
	dc.SetRGBA(col.R, col.G, col.B, alpha)
	tracePath(dc, a, xs, ys, sign)
	dc.LineTo(a.px(xs[len(xs)-1]), a.py(0))
	dc.LineTo(a.px(xs[0]), a.py(0))
	dc.ClosePath()
	dc.Fill()
}
