package dosplot

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// faceSet holds the faces used by one render pass. Axis labels are bold,
// tick and legend text regular.
type faceSet struct {
	label  text.Face
	tick   text.Face
	legend text.Face
}

// Font sources are heavyweight; parse the embedded fonts once per process
// and derive per-size faces from them.
var (
	fontOnce      sync.Once
	boldSource    *text.FontSource
	regularSource *text.FontSource
	fontErr       error
)

func loadFontSources() error {
	fontOnce.Do(func() {
		boldSource, fontErr = text.NewFontSource(gobold.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("dosplot: parsing embedded bold font: %w", fontErr)
			return
		}
		regularSource, fontErr = text.NewFontSource(goregular.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("dosplot: parsing embedded font: %w", fontErr)
		}
	})
	return fontErr
}

// loadFaces derives the faces for a config from the embedded Go fonts.
func loadFaces(cfg *Config) (faceSet, error) {
	if err := loadFontSources(); err != nil {
		return faceSet{}, err
	}
	return faceSet{
		label:  boldSource.Face(cfg.FontSize),
		tick:   regularSource.Face(cfg.FontSize * 0.85),
		legend: regularSource.Face(cfg.LegendFontSize),
	}, nil
}
