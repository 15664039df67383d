package dosplot

import "sort"

// OrderMode selects how PDOS labels are ordered for plotting and color
// assignment.
type OrderMode int

const (
	// OrderAuto groups labels by class: metals, then non-metals, then
	// unrecognized labels, each group alphabetical.
	OrderAuto OrderMode = iota

	// OrderManual ranks labels by the position of their element symbol in
	// a caller-supplied priority list. Unranked labels follow all ranked
	// ones, alphabetically.
	OrderManual
)

// unranked sorts after every explicit priority index.
const unranked = 1 << 30

// SortLabels returns the labels in a deterministic plotting order.
// The input slice is not modified. The order drives color assignment, so
// the same label set always produces the same figure.
//
// Manual mode falls back to auto ordering when the priority list is empty,
// matching the behavior of the configuration it replaces.
func SortLabels(labels []string, mode OrderMode, manualOrder []string) []string {
	out := make([]string, len(labels))
	copy(out, labels)

	if mode == OrderManual && len(manualOrder) > 0 {
		rank := make(map[string]int, len(manualOrder))
		for i, k := range manualOrder {
			if _, ok := rank[k]; !ok {
				rank[k] = i
			}
		}
		key := func(label string) int {
			if r, ok := rank[ParseSpecies(label).Element]; ok {
				return r
			}
			if r, ok := rank[label]; ok {
				return r
			}
			return unranked
		}
		sort.SliceStable(out, func(i, j int) bool {
			ri, rj := key(out[i]), key(out[j])
			if ri != rj {
				return ri < rj
			}
			return out[i] < out[j]
		})
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := ParseSpecies(out[i]).Class(), ParseSpecies(out[j]).Class()
		if ci != cj {
			return ci < cj
		}
		return out[i] < out[j]
	})
	return out
}
