package dosplot

import "github.com/gogpu/gg"

// Palette is a cyclic sequence of trace colors. Colors are assigned to
// labels by sorted position, wrapping around when there are more labels
// than palette entries.
type Palette []gg.RGBA

// DefaultPalette is the built-in qualitative palette used in auto color
// mode, in assignment order.
var DefaultPalette = Palette{
	gg.Hex("#1f77b4"), // blue
	gg.Hex("#d62728"), // red
	gg.Hex("#2ca02c"), // green
	gg.Hex("#ff7f0e"), // orange
	gg.Hex("#9467bd"), // purple
	gg.Hex("#8c564b"), // brown
	gg.Hex("#e377c2"), // pink
}

// Color returns the palette entry for a sorted label index, cycling through
// the palette. An empty palette yields black so rendering stays total.
func (p Palette) Color(i int) gg.RGBA {
	if len(p) == 0 {
		return gg.Black
	}
	return p[i%len(p)]
}

// PaletteFromHex builds a palette from hex color strings ("#d62728",
// "aabbcc", short forms included). Invalid entries become opaque black,
// the same fallback gg.Hex applies.
func PaletteFromHex(hexes []string) Palette {
	p := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		p = append(p, gg.Hex(h))
	}
	return p
}
