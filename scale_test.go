package dosplot

import (
	"math"
	"testing"
)

func TestWindowMax(t *testing.T) {
	x := []float64{-10, -5, 0, 5, 10}
	y := []float64{100, 2, -3, 1, 200}

	got, ok := windowMax(x, y, -5, 5)
	if !ok {
		t.Fatal("expected visible samples")
	}
	// The -3 sample wins on absolute value; the 100 and 200 peaks sit
	// outside the window.
	if got != 3 {
		t.Errorf("windowMax = %v, want 3", got)
	}
}

func TestWindowMaxEmptyWindow(t *testing.T) {
	if _, ok := windowMax([]float64{-10, 10}, []float64{1, 1}, -5, 5); ok {
		t.Error("expected no visible samples")
	}
}

func TestAutoYLimits(t *testing.T) {
	tests := []struct {
		name   string
		peaks  []float64
		spin   bool
		wantLo float64
		wantHi float64
	}{
		{"unpolarized", []float64{2.0}, false, 0, 2.5},
		{"polarized symmetric", []float64{2.0}, true, -2.5, 2.5},
		{"tallest peak wins", []float64{0.5, 4.0, 1.0}, false, 0, 5.0},
		{"fallback when nothing visible", nil, false, 0, 1.25},
		{"fallback polarized", nil, true, -1.25, 1.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := autoYLimits(tt.peaks, tt.spin)
			if math.Abs(lo-tt.wantLo) > 1e-12 || math.Abs(hi-tt.wantHi) > 1e-12 {
				t.Errorf("autoYLimits = (%v, %v), want (%v, %v)", lo, hi, tt.wantLo, tt.wantHi)
			}
		})
	}
}
