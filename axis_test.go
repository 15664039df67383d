package dosplot

import (
	"math"
	"reflect"
	"testing"
)

func TestTickStep(t *testing.T) {
	tests := []struct {
		span     float64
		maxTicks int
		want     float64
	}{
		{10, 5, 2},
		{10, 8, 2},
		{1, 5, 0.2},
		{2.5, 6, 0.5},
		{100, 5, 20},
		{0.05, 5, 0.01},
	}
	for _, tt := range tests {
		if got := tickStep(tt.span, tt.maxTicks); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("tickStep(%v, %d) = %v, want %v", tt.span, tt.maxTicks, got, tt.want)
		}
	}
}

func TestTicks(t *testing.T) {
	got := ticks(-5, 5, 5)
	want := []float64{-4, -2, 0, 2, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ticks(-5, 5, 5) = %v, want %v", got, want)
	}

	got = ticks(0, 1.25, 6)
	want = []float64{0, 0.25, 0.5, 0.75, 1, 1.25}
	for i := range want {
		if i >= len(got) || math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("ticks(0, 1.25, 6) = %v, want %v", got, want)
		}
	}
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		v    float64
		step float64
		want string
	}{
		{2, 2, "2"},
		{-4, 2, "-4"},
		{0.5, 0.25, "0.50"},
		{0, 1, "0"},
		{math.Copysign(0, -1), 1, "0"},
		{1.25, 0.25, "1.25"},
	}
	for _, tt := range tests {
		if got := formatTick(tt.v, tt.step); got != tt.want {
			t.Errorf("formatTick(%v, %v) = %q, want %q", tt.v, tt.step, got, tt.want)
		}
	}
}

func TestPlotAreaTransform(t *testing.T) {
	a := plotArea{
		x0: 100, y0: 0, x1: 200, y1: 100,
		xmin: -5, xmax: 5, ymin: 0, ymax: 10,
	}
	if got := a.px(-5); got != 100 {
		t.Errorf("px(xmin) = %v, want 100", got)
	}
	if got := a.px(5); got != 200 {
		t.Errorf("px(xmax) = %v, want 200", got)
	}
	if got := a.px(0); got != 150 {
		t.Errorf("px(0) = %v, want 150", got)
	}
	// Pixel y is flipped: data minimum maps to the bottom edge.
	if got := a.py(0); got != 100 {
		t.Errorf("py(ymin) = %v, want 100", got)
	}
	if got := a.py(10); got != 0 {
		t.Errorf("py(ymax) = %v, want 0", got)
	}
}
