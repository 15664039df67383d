package dosplot

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Errors returned by table construction and validation.
var (
	// ErrNoEnergies is returned when the table has no energy samples.
	ErrNoEnergies = errors.New("dosplot: table has no energy samples")

	// ErrLengthMismatch is returned when a DOS series does not align
	// index-for-index with the energy axis.
	ErrLengthMismatch = errors.New("dosplot: series length does not match energies")
)

// Series holds the two spin channels of one projected DOS curve. A nil
// channel means the data was not supplied; readers treat it as all zero.
type Series struct {
	Up   []float64
	Down []float64
}

// Table is one DOS data set: the shared energy axis, the Fermi level, the
// optional total DOS, and the per-label projected curves. Every non-nil
// series must have the same length as Energies.
type Table struct {
	// Energies is the ordered energy axis in eV.
	Energies []float64

	// FermiEnergy is the reference level used for alignment, in eV.
	FermiEnergy float64

	// TotalUp and TotalDown are the total-DOS spin channels. TotalDown
	// doubles as the spin-polarization probe: present and non-zero means
	// the calculation was spin-polarized.
	TotalUp   []float64
	TotalDown []float64

	// PDOS maps a species label to its projected curves.
	PDOS map[string]Series
}

// Reserved keys in the flat series mapping accepted by FromSeries.
const (
	keyTotalUp   = "up"
	keyTotalDown = "down"

	suffixUp   = "_up"
	suffixDown = "_down"
)

// FromSeries builds a Table from the flat string-keyed mapping produced by
// calculation post-processing: "up"/"down" hold the total DOS, and
// "<label>_up"/"<label>_down" hold per-species channels that merge into one
// PDOS entry. A key without a channel suffix still registers its label, with
// both channels defaulting to zero.
//
// The mapping is validated before the Table is returned.
func FromSeries(energies []float64, fermi float64, series map[string][]float64) (*Table, error) {
	t := &Table{
		Energies:    energies,
		FermiEnergy: fermi,
		PDOS:        make(map[string]Series),
	}
	for key, data := range series {
		switch key {
		case keyTotalUp:
			t.TotalUp = data
		case keyTotalDown:
			t.TotalDown = data
		default:
			label := key
			s := t.PDOS[label]
			switch {
			case strings.HasSuffix(key, suffixUp):
				label = strings.TrimSuffix(key, suffixUp)
				s = t.PDOS[label]
				s.Up = data
			case strings.HasSuffix(key, suffixDown):
				label = strings.TrimSuffix(key, suffixDown)
				s = t.PDOS[label]
				s.Down = data
			}
			t.PDOS[label] = s
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the table invariants: a non-empty energy axis and every
// supplied series aligned with it.
func (t *Table) Validate() error {
	n := len(t.Energies)
	if n == 0 {
		return ErrNoEnergies
	}
	check := func(name string, data []float64) error {
		if data != nil && len(data) != n {
			return fmt.Errorf("%w: %s has %d samples, energies has %d",
				ErrLengthMismatch, name, len(data), n)
		}
		return nil
	}
	if err := check("total up", t.TotalUp); err != nil {
		return err
	}
	if err := check("total down", t.TotalDown); err != nil {
		return err
	}
	for label, s := range t.PDOS {
		if err := check(label+suffixUp, s.Up); err != nil {
			return err
		}
		if err := check(label+suffixDown, s.Down); err != nil {
			return err
		}
	}
	return nil
}

// SpinPolarized reports whether the data set carries a spin-down total
// series with at least one non-zero sample. An absent or all-zero down
// channel means the calculation was not spin-polarized.
func (t *Table) SpinPolarized() bool {
	for _, v := range t.TotalDown {
		if v != 0 {
			return true
		}
	}
	return false
}

// Labels returns the PDOS labels in alphabetical order. Plotting order is a
// separate concern; see SortLabels.
func (t *Table) Labels() []string {
	labels := make([]string, 0, len(t.PDOS))
	for label := range t.PDOS {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Channel returns both spin channels for a label, substituting all-zero
// sequences for anything missing so callers never branch on partial data.
func (t *Table) Channel(label string) (up, down []float64) {
	s := t.PDOS[label]
	up, down = s.Up, s.Down
	if up == nil {
		up = make([]float64, len(t.Energies))
	}
	if down == nil {
		down = make([]float64, len(t.Energies))
	}
	return up, down
}

// AlignedEnergies returns a copy of the energy axis, shifted by the Fermi
// energy when align is true.
func (t *Table) AlignedEnergies(align bool) []float64 {
	out := make([]float64, len(t.Energies))
	copy(out, t.Energies)
	if align {
		floats.AddConst(-t.FermiEnergy, out)
	}
	return out
}
