package dosplot

import "github.com/gogpu/gg"

// ColorMode selects where trace colors come from.
type ColorMode int

const (
	// ColorAuto cycles through DefaultPalette.
	ColorAuto ColorMode = iota

	// ColorManual cycles through the caller-supplied color list.
	ColorManual
)

// Config holds every renderer toggle. The zero value is not useful; start
// from DefaultConfig (Render does this for you and then applies options).
type Config struct {
	// AlignToFermi shifts the energy axis so the Fermi level sits at 0 eV.
	AlignToFermi bool

	// ShowTotal draws the total-DOS trace below the PDOS traces.
	ShowTotal bool

	// ShowFermiLine draws a dashed vertical marker at the Fermi level.
	ShowFermiLine bool

	// XLim is the plotted energy window in eV, low then high.
	XLim [2]float64

	// YLim overrides the auto-scaled intensity window when non-nil.
	YLim *[2]float64

	// OrderMode and ManualOrder control label ordering; see SortLabels.
	OrderMode   OrderMode
	ManualOrder []string

	// ColorMode and ManualColors control the trace palette.
	ColorMode    ColorMode
	ManualColors []string

	// LegendLoc is a corner spec: "upper left", "lower right", "upper
	// center", "center left", or "center". LegendCols lays entries out in
	// that many columns.
	LegendLoc  string
	LegendCols int

	// TotalColor is the line color of the total-DOS trace.
	TotalColor gg.RGBA

	// FontSize is the general font size in pixels (axis labels, ticks);
	// LegendFontSize independently controls the legend.
	FontSize       float64
	LegendFontSize float64

	// Width and Height are the canvas dimensions in pixels.
	Width  int
	Height int
}

// DefaultConfig returns the renderer defaults: Fermi alignment on, no total
// trace, no Fermi marker, a [-5, 5] eV window with auto-scaled intensity,
// auto ordering and colors, and a single-column legend in the upper left.
func DefaultConfig() Config {
	return Config{
		AlignToFermi:   true,
		XLim:           [2]float64{-5, 5},
		LegendLoc:      "upper left",
		LegendCols:     1,
		TotalColor:     gg.Black,
		FontSize:       14,
		LegendFontSize: 10,
		Width:          600,
		Height:         450,
	}
}

// Option configures a single Render or Show call.
// The ambient global configuration this replaces lived at module level in
// earlier tooling; here each call carries its own explicit Config.
//
// Example:
//
//	dc, err := dosplot.Render(t,
//	    dosplot.WithTotalDOS(true),
//	    dosplot.WithXLim(-8, 4),
//	    dosplot.WithManualOrder("O", "Fe"),
//	)
type Option func(*Config)

// WithAlignToFermi toggles shifting the energy axis so the Fermi level is
// at 0 eV. Enabled by default.
func WithAlignToFermi(align bool) Option {
	return func(c *Config) { c.AlignToFermi = align }
}

// WithTotalDOS toggles the total-DOS trace.
func WithTotalDOS(show bool) Option {
	return func(c *Config) { c.ShowTotal = show }
}

// WithFermiLine toggles the dashed vertical Fermi marker.
func WithFermiLine(show bool) Option {
	return func(c *Config) { c.ShowFermiLine = show }
}

// WithXLim sets the plotted energy window in eV.
func WithXLim(lo, hi float64) Option {
	return func(c *Config) { c.XLim = [2]float64{lo, hi} }
}

// WithYLim fixes the intensity window, disabling auto-scaling.
func WithYLim(lo, hi float64) Option {
	return func(c *Config) { c.YLim = &[2]float64{lo, hi} }
}

// WithOrderMode sets the label ordering mode.
func WithOrderMode(mode OrderMode) Option {
	return func(c *Config) { c.OrderMode = mode }
}

// WithManualOrder switches to manual ordering with the given element
// priority list.
func WithManualOrder(elements ...string) Option {
	return func(c *Config) {
		c.OrderMode = OrderManual
		c.ManualOrder = elements
	}
}

// WithManualColors switches to a caller-supplied hex color cycle.
func WithManualColors(hexes ...string) Option {
	return func(c *Config) {
		c.ColorMode = ColorManual
		c.ManualColors = hexes
	}
}

// WithLegend sets the legend corner and column count.
func WithLegend(loc string, cols int) Option {
	return func(c *Config) {
		c.LegendLoc = loc
		if cols > 0 {
			c.LegendCols = cols
		}
	}
}

// WithTotalColor sets the total-DOS line color.
func WithTotalColor(col gg.RGBA) Option {
	return func(c *Config) { c.TotalColor = col }
}

// WithFontSizes sets the general and legend font sizes in pixels.
func WithFontSizes(general, legend float64) Option {
	return func(c *Config) {
		if general > 0 {
			c.FontSize = general
		}
		if legend > 0 {
			c.LegendFontSize = legend
		}
	}
}

// WithSize sets the canvas dimensions in pixels.
func WithSize(width, height int) Option {
	return func(c *Config) {
		if width > 0 {
			c.Width = width
		}
		if height > 0 {
			c.Height = height
		}
	}
}

// activePalette resolves the palette for a config.
func activePalette(c *Config) Palette {
	if c.ColorMode == ColorManual && len(c.ManualColors) > 0 {
		return PaletteFromHex(c.ManualColors)
	}
	return DefaultPalette
}
