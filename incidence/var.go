// Package incidence: Var, the variable-form relation for cardinalities
// only known at mesh-build time.
package incidence

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlmesh/cell"
)

// Var is a growable, ordered sequence of incidentee cell ids for a
// relation whose cardinality cannot be derived from the kind pair (e.g.
// the cells touching a vertex in an unstructured mesh).
//
// Unlike Conn there is no sentinel filling: unset entries are simply
// absent, and every populated entry must be a valid (>= 1) id.
//
// Var is a build-time structure owned by a single mesh-construction pass;
// it performs no internal locking.
type Var struct {
	incidenter cell.Kind
	incidentee cell.Kind
	ids        []ID
}

// NewVar constructs an empty variable-form relation. It fails with
// ErrFixedRelation when the pair's cardinality is statically fixed (the
// two forms are deliberately disjoint) and propagates ErrNilKind from the
// resolver. Complexity: O(1).
func NewVar(incidenter, incidentee cell.Kind) (*Var, error) {
	sk, err := Sizing(incidenter, incidentee)
	if err != nil {
		return nil, err
	}
	if sk == Fixed {
		return nil, ErrFixedRelation
	}

	return &Var{incidenter: incidenter, incidentee: incidentee}, nil
}

// Incidenter returns the kind owning this relation.
func (v *Var) Incidenter() cell.Kind { return v.incidenter }

// Incidentee returns the kind of the referenced cells.
func (v *Var) Incidentee() cell.Kind { return v.incidentee }

// Append adds one incident id. Unset (0), Invalid (-1) and any other
// non-positive value fail with ErrUnsetID: populated entries must be real
// identifiers. Complexity: amortized O(1).
func (v *Var) Append(id ID) error {
	if id < 1 {
		return ErrUnsetID
	}
	v.ids = append(v.ids, id)

	return nil
}

// Len returns the number of populated ids. Complexity: O(1).
func (v *Var) Len() int { return len(v.ids) }

// At returns the i-th incident id (0-based), ErrIndexRange outside
// [0, Len). Complexity: O(1).
func (v *Var) At(i int) (ID, error) {
	if i < 0 || i >= len(v.ids) {
		return Unset, ErrIndexRange
	}

	return v.ids[i], nil
}

// IDs returns a copy of the id sequence. Complexity: O(n).
func (v *Var) IDs() []ID {
	cp := make([]ID, len(v.ids))
	copy(cp, v.ids)

	return cp
}

// String renders the incidentee kind name followed by the plain integer
// ids, mirroring Conn.String. Diagnostic only.
func (v *Var) String() string {
	var sb strings.Builder
	if v.incidentee != nil {
		sb.WriteString(v.incidentee.Name())
	}
	sb.WriteByte('[')
	for i, id := range v.ids {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(int64(id), 10))
	}
	sb.WriteByte(']')

	return sb.String()
}
