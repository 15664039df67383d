package dosplot

import "github.com/vasputil/dosplot/viewer"

// Show renders the table and displays the chart in an on-screen window,
// blocking until the window is closed. Options are the same as Render's.
func Show(t *Table, opts ...Option) error {
	dc, err := Render(t, opts...)
	if err != nil {
		return err
	}
	return viewer.Show(dc.Image(), "dosplot")
}
