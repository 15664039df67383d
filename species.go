package dosplot

import "regexp"

// Class buckets a species for auto ordering.
type Class int

const (
	// ClassMetal covers every recognized element symbol outside the
	// non-metal set. Auto ordering plots metals first.
	ClassMetal Class = iota

	// ClassNonMetal covers the fixed closed set of non-metal symbols.
	ClassNonMetal

	// ClassOther covers labels with no leading element symbol.
	ClassOther
)

// String returns a human-readable class name.
func (c Class) String() string {
	switch c {
	case ClassMetal:
		return "metal"
	case ClassNonMetal:
		return "non-metal"
	default:
		return "other"
	}
}

// nonMetals is the closed set of element symbols treated as non-metals
// for ordering purposes.
var nonMetals = map[string]struct{}{
	"H": {}, "He": {}, "B": {}, "C": {}, "N": {}, "O": {}, "F": {}, "Ne": {},
	"Si": {}, "P": {}, "S": {}, "Cl": {}, "Ar": {}, "Se": {}, "Br": {},
}

// elementRe matches a leading element symbol: one capital letter optionally
// followed by one lowercase letter ("Fe", "O", "Cl").
var elementRe = regexp.MustCompile(`^[A-Z][a-z]?`)

// Species is the structured identity behind a PDOS label. Labels follow the
// convention "<element><qualifier>" ("Fe", "Fe_d", "O2p"); the element
// symbol is extracted once at parse time instead of being re-matched
// wherever the identity is needed.
type Species struct {
	// Label is the raw label as it appears in the input table.
	Label string

	// Element is the leading element symbol, or the raw label when no
	// symbol could be extracted.
	Element string
}

// ParseSpecies extracts the species identity from a raw PDOS label.
func ParseSpecies(label string) Species {
	if sym := elementRe.FindString(label); sym != "" {
		return Species{Label: label, Element: sym}
	}
	return Species{Label: label, Element: label}
}

// Class reports the ordering bucket for the species. Symbols in the
// non-metal set are non-metals; any other label with a leading capital
// letter counts as a metal; everything else is unrecognized.
func (s Species) Class() Class {
	if _, ok := nonMetals[s.Element]; ok {
		return ClassNonMetal
	}
	if elementRe.MatchString(s.Element) {
		return ClassMetal
	}
	return ClassOther
}
