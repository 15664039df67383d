package dosplot

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// windowMax returns the maximum absolute intensity of y over the samples
// whose x value falls inside [lo, hi]. ok is false when no sample is
// visible in the window.
func windowMax(x, y []float64, lo, hi float64) (max float64, ok bool) {
	visible := make([]float64, 0, len(y))
	for i, xv := range x {
		if xv >= lo && xv <= hi {
			visible = append(visible, math.Abs(y[i]))
		}
	}
	if len(visible) == 0 {
		return 0, false
	}
	return floats.Max(visible), true
}

// headroom is the factor between the tallest visible trace and the axis top.
const headroom = 1.25

// autoYLimits computes the intensity window from the tallest visible trace.
// The window is symmetric around zero for spin-polarized data and starts at
// zero otherwise. With no visible samples the peak falls back to 1.0 so the
// axis never degenerates.
func autoYLimits(peaks []float64, spin bool) (lo, hi float64) {
	peak := 1.0
	if len(peaks) > 0 {
		peak = floats.Max(peaks)
	}
	top := peak * headroom
	if spin {
		return -top, top
	}
	return 0, top
}
