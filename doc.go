// Package dosplot renders density-of-states (DOS) charts from
// electronic-structure calculations.
//
// # Overview
//
// dosplot takes a table of per-species projected DOS curves (PDOS), aligns
// them to the Fermi level, orders and colors them deterministically, and
// draws the result onto a gg canvas. Spin-polarized data is drawn as
// mirrored up/down traces around the zero line.
//
// # Quick Start
//
//	import "github.com/vasputil/dosplot"
//
//	t, err := dosplot.FromSeries(energies, fermi, map[string][]float64{
//	    "Fe_up": feUp, "Fe_down": feDown,
//	    "O_up": oUp, "O_down": oDown,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Render to an image
//	dc, err := dosplot.Render(t, dosplot.WithFermiLine(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	img := dc.Image()
//
//	// Or open a window directly
//	err = dosplot.Show(t, dosplot.WithXLim(-8, 4))
//
// # Ordering
//
// Curves are plotted (and colored) in a deterministic order. In auto mode
// metallic species come first, then the fixed non-metal set, then anything
// unrecognized, each group alphabetical. In manual mode the caller supplies
// a priority list of element symbols; unranked labels follow alphabetically.
//
// # Configuration
//
// Every toggle of the renderer is a functional option on Render and Show:
// Fermi alignment, the total-DOS trace, axis limits, ordering and color
// modes, legend placement, and font sizes. See Config for the defaults.
package dosplot
