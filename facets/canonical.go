// Package facets: canonical forms of facet connectivities.
package facets

import (
	"sort"

	"github.com/katalvlaran/lvlmesh/incidence"
)

// Orientation tells how a facet winding relates to a reference winding.
type Orientation int

const (
	// SameOrientation means the two windings are identical.
	SameOrientation Orientation = iota

	// OppositeOrientation means one winding is the reversal of the other.
	OppositeOrientation
)

// String renders the orientation for diagnostics.
func (o Orientation) String() string {
	if o == SameOrientation {
		return "same"
	}

	return "opposite"
}

// Canonical returns the lexicographic minimum of c and its reversal,
// together with the orientation of c relative to that canonical form.
// Two cells referencing a shared facet with opposite winding canonicalize
// to equal values with opposite orientation flags. Canonical is
// idempotent. Complexity: O(n).
func Canonical(c incidence.Conn) (incidence.Conn, Orientation) {
	r := c.Reverse()
	if r.Less(c) {
		return r, OppositeOrientation
	}

	return c, SameOrientation
}

// Key returns the sorted copy of c's id sequence: the identity of the
// facet independent of winding and starting corner. Registry keys are
// built from it. Complexity: O(n log n).
func Key(c incidence.Conn) []incidence.ID {
	ids := c.IDs()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// compareKeys orders two canonical keys lexicographically; it is the
// comparator behind the registry tree. Complexity: O(n).
func compareKeys(a, b []incidence.ID) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}
