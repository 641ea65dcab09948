// SPDX-License-Identifier: MIT
// Package incidence: Conn, the fixed-form connectivity container, with its
// validated constructors, accessors, lexicographic ordering and reversal.
package incidence

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlmesh/cell"
)

// Conn is an ordered, fixed-length sequence of incidentee cell ids attached
// to one incidenter cell. Its length is derived entirely from the kind pair
// via Count and never stored explicitly.
//
// Conn is an immutable value: every constructor copies its input, Reverse
// returns a new value, and accessors never expose internal storage. A
// constructed Conn is safe for unsynchronized concurrent reads.
type Conn struct {
	incidenter cell.Kind
	incidentee cell.Kind
	ids        []ID
}

// New constructs a fixed-form connectivity from an explicit id sequence.
//
// Failure modes, all construction-time and fail-fast:
//   - resolver failures propagate (ErrVertexRelation, ErrCrossKind,
//     ErrUnbounded, ErrNilKind);
//   - len(ids) != Count(incidenter, incidentee) → ErrLength;
//   - any zero id when dim(incidenter) > dim(incidentee) → ErrUnsetID
//     (a cell's own boundary is always fully populated).
//
// The ids slice is copied. Complexity: O(n).
func New(incidenter, incidentee cell.Kind, ids []ID) (Conn, error) {
	n, err := Count(incidenter, incidentee)
	if err != nil {
		return Conn{}, err
	}
	if len(ids) != n {
		return Conn{}, ErrLength
	}
	if incidenter.Dim() > incidentee.Dim() {
		for _, id := range ids {
			if id == Unset {
				return Conn{}, ErrUnsetID
			}
		}
	}
	cp := make([]ID, n)
	copy(cp, ids)

	return Conn{incidenter: incidenter, incidentee: incidentee, ids: cp}, nil
}

// NewUnset constructs the placeholder instance for a fixed relation: every
// slot holds the Invalid marker. It is used to pre-fill topology tables
// before population and is distinguishable from any populated instance via
// Equal. Complexity: O(n).
func NewUnset(incidenter, incidentee cell.Kind) (Conn, error) {
	n, err := Count(incidenter, incidentee)
	if err != nil {
		return Conn{}, err
	}
	ids := make([]ID, n)
	for i := range ids {
		ids[i] = Invalid
	}

	return Conn{incidenter: incidenter, incidentee: incidentee, ids: ids}, nil
}

// Incidenter returns the kind owning this connectivity.
func (c Conn) Incidenter() cell.Kind { return c.incidenter }

// Incidentee returns the kind of the referenced cells.
func (c Conn) Incidentee() cell.Kind { return c.incidentee }

// Len returns the number of incident ids. Complexity: O(1).
func (c Conn) Len() int { return len(c.ids) }

// At returns the i-th incident id (0-based). Indexing outside [0, Len)
// fails with ErrIndexRange. Complexity: O(1).
func (c Conn) At(i int) (ID, error) {
	if i < 0 || i >= len(c.ids) {
		return Unset, ErrIndexRange
	}

	return c.ids[i], nil
}

// AtUnchecked returns the i-th incident id without bounds checking.
//
// UNSAFE: this is the opt-in fast path for performance-critical inner
// loops only; an out-of-range index panics. Use At everywhere else.
func (c Conn) AtUnchecked(i int) ID { return c.ids[i] }

// VertexID returns the i-th incident vertex id. It is a readability
// specialization of At for call sites that specifically want vertex ids:
// it fails with ErrNotVertexKind when the incidentee kind is not of
// dimension 0. Complexity: O(1).
func (c Conn) VertexID(i int) (ID, error) {
	if c.incidentee == nil || c.incidentee.Dim() != 0 {
		return Unset, ErrNotVertexKind
	}

	return c.At(i)
}

// IDs returns a copy of the id sequence. Complexity: O(n).
func (c Conn) IDs() []ID {
	cp := make([]ID, len(c.ids))
	copy(cp, c.ids)

	return cp
}

// Compare orders two connectivities lexicographically over their id
// sequences: -1 if c < o, 0 if equal, +1 if c > o. A strict prefix
// compares less. The order is total and kind-agnostic; facet
// deduplication uses it to pick canonical representatives.
// Complexity: O(n).
func (c Conn) Compare(o Conn) int {
	n := len(c.ids)
	if len(o.ids) < n {
		n = len(o.ids)
	}
	for i := 0; i < n; i++ {
		switch {
		case c.ids[i] < o.ids[i]:
			return -1
		case c.ids[i] > o.ids[i]:
			return 1
		}
	}
	switch {
	case len(c.ids) < len(o.ids):
		return -1
	case len(c.ids) > len(o.ids):
		return 1
	}

	return 0
}

// Less reports whether c orders strictly before o. Complexity: O(n).
func (c Conn) Less(o Conn) bool { return c.Compare(o) < 0 }

// Equal reports whether the two id sequences are identical. Complexity: O(n).
func (c Conn) Equal(o Conn) bool { return c.Compare(o) == 0 }

// Reverse returns a new connectivity with the id order reversed; the
// receiver is not mutated. Reversal is an involution and is the primitive
// used to detect whether two cells reference a shared facet with opposite
// orientation. Complexity: O(n).
func (c Conn) Reverse() Conn {
	ids := make([]ID, len(c.ids))
	for i, id := range c.ids {
		ids[len(c.ids)-1-i] = id
	}

	return Conn{incidenter: c.incidenter, incidentee: c.incidentee, ids: ids}
}

// String renders the incidentee kind name followed by the plain integer
// ids, e.g. "Edge[4 7 2]". Diagnostic only. Complexity: O(n).
func (c Conn) String() string {
	var sb strings.Builder
	if c.incidentee != nil {
		sb.WriteString(c.incidentee.Name())
	}
	sb.WriteByte('[')
	for i, id := range c.ids {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(int64(id), 10))
	}
	sb.WriteByte(']')

	return sb.String()
}
