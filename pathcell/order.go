package pathcell

import (
	"slices"

	"github.com/hupe1980/geocell/cellid"
)

// Compare orders a and b along the Hilbert curve by comparing their
// canonical forms. The raw integer values do not sort in that order.
func Compare(a, b CellID) int {
	return cellid.Compare(a.Canonical(), b.Canonical())
}

// Less reports whether a precedes b in Hilbert order.
func Less(a, b CellID) bool { return Compare(a, b) < 0 }

type keyed struct {
	key cellid.CellID
	id  CellID
}

// Sort sorts ids in place into Hilbert order. Each id is converted once.
func Sort(ids []CellID) {
	if len(ids) < 2 {
		return
	}
	ks := make([]keyed, len(ids))
	for k, id := range ids {
		ks[k] = keyed{key: id.Canonical(), id: id}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int { return cellid.Compare(a.key, b.key) })
	for k := range ks {
		ids[k] = ks[k].id
	}
}

// IsSorted reports whether ids are in Hilbert order.
func IsSorted(ids []CellID) bool {
	for k := 1; k < len(ids); k++ {
		if Less(ids[k], ids[k-1]) {
			return false
		}
	}
	return true
}
