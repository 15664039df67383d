package dosplot

import (
	"errors"
	"image"
	"testing"
)

// denseTable builds a table over [-5, 5] eV with constant unit intensity
// for one Fe curve. With auto scaling this puts the filled area across the
// center of the plot, which makes pixel probes stable.
func denseTable(t *testing.T, spin bool) *Table {
	t.Helper()
	n := 101
	energies := make([]float64, n)
	ones := make([]float64, n)
	for i := range energies {
		energies[i] = -5 + float64(i)*0.1
		ones[i] = 1
	}
	series := map[string][]float64{"Fe_up": ones}
	if spin {
		series["Fe_down"] = ones
		series["down"] = ones
	}
	tbl, err := FromSeries(energies, 0, series)
	if err != nil {
		t.Fatalf("FromSeries: %v", err)
	}
	return tbl
}

func probe(img image.Image, x, y int) (r, g, b uint8) {
	pr, pg, pb, _ := img.At(x, y).RGBA()
	return uint8(pr >> 8), uint8(pg >> 8), uint8(pb >> 8)
}

func TestRenderFillsCurveArea(t *testing.T) {
	dc, err := Render(denseTable(t, false))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	img := dc.Image()

	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 600 || h != 450 {
		t.Fatalf("canvas = %dx%d, want 600x450", w, h)
	}

	// Outside the plot frame: untouched white background.
	if r, g, b := probe(img, 5, 5); r < 250 || g < 250 || b < 250 {
		t.Errorf("corner pixel = (%d,%d,%d), want white", r, g, b)
	}

	// Center of the shaded region (energy 0, half the curve height):
	// translucent tab blue over white, so visibly blue-tinted.
	r, _, b := probe(img, 327, 242)
	if r > 245 {
		t.Errorf("fill pixel red = %d, area does not look shaded", r)
	}
	if b <= r {
		t.Errorf("fill pixel = r%d b%d, want a blue tint", r, b)
	}
}

func TestRenderMirrorsSpinChannels(t *testing.T) {
	dc, err := Render(denseTable(t, true))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	img := dc.Image()

	// With spin the y-axis is symmetric and the down channel fills below
	// the zero line.
	if r, _, b := probe(img, 327, 280); r > 245 || b <= r {
		t.Errorf("mirrored fill pixel = r%d b%d, want a blue tint", r, b)
	}
}

func TestRenderUnpolarizedLeavesLowerHalfEmpty(t *testing.T) {
	dc, err := Render(denseTable(t, false), WithYLim(-1.25, 1.25))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	// Same geometry as the spin test, but no down channel: below the zero
	// line stays white.
	if r, g, b := probe(dc.Image(), 327, 280); r < 250 || g < 250 || b < 250 {
		t.Errorf("lower half pixel = (%d,%d,%d), want white", r, g, b)
	}
}

func TestRenderOptionsSmoke(t *testing.T) {
	tbl := denseTable(t, true)
	tbl.TotalUp = make([]float64, len(tbl.Energies))
	for i := range tbl.TotalUp {
		tbl.TotalUp[i] = 2
	}

	dc, err := Render(tbl,
		WithTotalDOS(true),
		WithFermiLine(true),
		WithAlignToFermi(false),
		WithManualOrder("O", "Fe"),
		WithManualColors("#d62728", "#1f77b4"),
		WithLegend("upper right", 2),
		WithFontSizes(16, 9),
		WithSize(400, 300),
	)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if w, h := dc.Width(), dc.Height(); w != 400 || h != 300 {
		t.Errorf("canvas = %dx%d, want 400x300", w, h)
	}
}

func TestRenderRejectsBadTables(t *testing.T) {
	if _, err := Render(nil); !errors.Is(err, ErrNoEnergies) {
		t.Errorf("nil table: err = %v, want ErrNoEnergies", err)
	}

	bad := &Table{
		Energies: []float64{0, 1, 2},
		PDOS:     map[string]Series{"Fe": {Up: []float64{1}}},
	}
	if _, err := Render(bad); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("short series: err = %v, want ErrLengthMismatch", err)
	}
}
