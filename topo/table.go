// Package topo: Table, the owner of a fixed relation's connectivities.
package topo

import (
	"github.com/katalvlaran/lvlmesh/cell"
	"github.com/katalvlaran/lvlmesh/incidence"
)

// Table holds one connectivity value per incidenter cell for a relation
// with statically fixed cardinality. Slots start as the sentinel
// placeholder (all ids incidence.Invalid) and are overwritten by Set
// during the build pass; Freeze then makes the table read-only.
//
// Table performs no locking. Writes belong to a single build pass (or to
// caller-partitioned id ranges); after Freeze, reads are safe from any
// number of goroutines.
type Table struct {
	incidenter cell.Kind
	incidentee cell.Kind
	unset      incidence.Conn
	conns      []incidence.Conn
	frozen     bool
}

// NewTable constructs a table for n incidenter cells (ids 1..n), every
// slot pre-filled with the placeholder. Resolver failures propagate
// (vertex/vertex relation, unbounded relation, nil kinds); n <= 0 fails
// with ErrTableSize. Complexity: O(n).
func NewTable(incidenter, incidentee cell.Kind, n int) (*Table, error) {
	if n <= 0 {
		return nil, ErrTableSize
	}
	unset, err := incidence.NewUnset(incidenter, incidentee)
	if err != nil {
		return nil, err
	}
	conns := make([]incidence.Conn, n)
	for i := range conns {
		conns[i] = unset
	}

	return &Table{
		incidenter: incidenter,
		incidentee: incidentee,
		unset:      unset,
		conns:      conns,
	}, nil
}

// Incidenter returns the relation's owning kind.
func (t *Table) Incidenter() cell.Kind { return t.incidenter }

// Incidentee returns the relation's referenced kind.
func (t *Table) Incidentee() cell.Kind { return t.incidentee }

// Len returns the number of incidenter cells. Complexity: O(1).
func (t *Table) Len() int { return len(t.conns) }

// Set stores the connectivity of cell id (1-based). It fails with
// ErrFrozen after Freeze, ErrCellRange outside [1, Len], and
// ErrKindMismatch when c belongs to a different relation. Complexity: O(1).
func (t *Table) Set(id incidence.ID, c incidence.Conn) error {
	if t.frozen {
		return ErrFrozen
	}
	if id < 1 || int(id) > len(t.conns) {
		return ErrCellRange
	}
	if c.Incidenter() != t.incidenter || c.Incidentee() != t.incidentee {
		return ErrKindMismatch
	}
	t.conns[id-1] = c

	return nil
}

// At returns the connectivity of cell id (1-based), ErrCellRange outside
// [1, Len]. The returned value is immutable. Complexity: O(1).
func (t *Table) At(id incidence.ID) (incidence.Conn, error) {
	if id < 1 || int(id) > len(t.conns) {
		return incidence.Conn{}, ErrCellRange
	}

	return t.conns[id-1], nil
}

// IsUnset reports whether cell id still holds the placeholder.
// Complexity: O(n) over the connectivity length.
func (t *Table) IsUnset(id incidence.ID) (bool, error) {
	c, err := t.At(id)
	if err != nil {
		return false, err
	}

	return c.Equal(t.unset), nil
}

// Freeze flips the table read-only; further Set calls fail with ErrFrozen.
// Freezing twice is a no-op.
func (t *Table) Freeze() { t.frozen = true }

// Frozen reports whether the table has been frozen.
func (t *Table) Frozen() bool { return t.frozen }
