// Package topo: VarTable, the owner of an unbounded relation's rows.
package topo

import (
	"github.com/katalvlaran/lvlmesh/cell"
	"github.com/katalvlaran/lvlmesh/incidence"
)

// VarTable holds one growable id sequence per incidenter cell for a
// relation whose cardinality is only known at build time (e.g. the
// triangles around each vertex). Rows start empty; Append grows them
// during the build pass; Freeze then makes the table read-only.
//
// Like Table, VarTable performs no locking.
type VarTable struct {
	incidenter cell.Kind
	incidentee cell.Kind
	rows       []*incidence.Var
	frozen     bool
}

// NewVarTable constructs a table for n incidenter cells (ids 1..n) with
// empty rows. It fails with ErrTableSize for n <= 0 and propagates
// incidence.ErrFixedRelation when the pair is statically sized (such
// relations belong in a Table). Complexity: O(n).
func NewVarTable(incidenter, incidentee cell.Kind, n int) (*VarTable, error) {
	if n <= 0 {
		return nil, ErrTableSize
	}
	rows := make([]*incidence.Var, n)
	for i := range rows {
		row, err := incidence.NewVar(incidenter, incidentee)
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}

	return &VarTable{incidenter: incidenter, incidentee: incidentee, rows: rows}, nil
}

// Incidenter returns the relation's owning kind.
func (t *VarTable) Incidenter() cell.Kind { return t.incidenter }

// Incidentee returns the relation's referenced kind.
func (t *VarTable) Incidentee() cell.Kind { return t.incidentee }

// Len returns the number of incidenter cells. Complexity: O(1).
func (t *VarTable) Len() int { return len(t.rows) }

// Append adds one incident id to cell id's row. It fails with ErrFrozen
// after Freeze, ErrCellRange outside [1, Len], and propagates
// incidence.ErrUnsetID for non-positive ids. Complexity: amortized O(1).
func (t *VarTable) Append(id, incident incidence.ID) error {
	if t.frozen {
		return ErrFrozen
	}
	if id < 1 || int(id) > len(t.rows) {
		return ErrCellRange
	}

	return t.rows[id-1].Append(incident)
}

// At returns a copy of cell id's incident ids, ErrCellRange outside
// [1, Len]. Complexity: O(n) over the row length.
func (t *VarTable) At(id incidence.ID) ([]incidence.ID, error) {
	if id < 1 || int(id) > len(t.rows) {
		return nil, ErrCellRange
	}

	return t.rows[id-1].IDs(), nil
}

// Degree returns the number of incident ids recorded for cell id.
// Complexity: O(1).
func (t *VarTable) Degree(id incidence.ID) (int, error) {
	if id < 1 || int(id) > len(t.rows) {
		return 0, ErrCellRange
	}

	return t.rows[id-1].Len(), nil
}

// Freeze flips the table read-only; further Append calls fail with
// ErrFrozen. Freezing twice is a no-op.
func (t *VarTable) Freeze() { t.frozen = true }

// Frozen reports whether the table has been frozen.
func (t *VarTable) Frozen() bool { return t.frozen }
