// Package incidence: the cardinality resolver. Sizing classifies a kind
// pair as Fixed or Unbounded; Count resolves the fixed count. Both are
// pure, deterministic and side-effect-free, so fixed storage can always be
// sized from them.
package incidence

import "github.com/katalvlaran/lvlmesh/cell"

// Sizing reports whether the relation "incidentee cells incident to one
// incidenter cell" has a statically fixed cardinality.
//
// Rule: Fixed iff dim(incidenter) >= dim(incidentee) — a cell's relation
// to its own boundary substructure is derivable from its shape — plus the
// canonical vertex/edge pair (dim 0 vs dim 1), whose count is pinned to 2
// by Count rule 2. Everything else is mesh-dependent and Unbounded.
//
// Note that Fixed classification does not guarantee Count succeeds: the
// vertex/vertex pair is Fixed by dimension yet has no defined relation,
// and Count rejects it with ErrVertexRelation.
//
// Complexity: O(1).
func Sizing(incidenter, incidentee cell.Kind) (SizeKind, error) {
	if incidenter == nil || incidentee == nil {
		return Unbounded, ErrNilKind
	}
	d1, d2 := incidenter.Dim(), incidentee.Dim()
	if d1 >= d2 || (d1 == 0 && d2 == 1) {
		return Fixed, nil
	}

	return Unbounded, nil
}

// Count resolves the fixed cardinality of the relation (incidenter,
// incidentee). It is only meaningful for pairs Sizing classifies as Fixed;
// for Unbounded pairs it fails with ErrUnbounded and the caller must use
// the Var form.
//
// Resolution order:
//
//  1. both kinds of dimension 0        → ErrVertexRelation;
//  2. dimension 0 against dimension 1  → 2, after checking that the edge
//     kind itself reports exactly 2 vertices (ErrModelMismatch otherwise —
//     the cell model stays the single source of truth);
//  3. equal dimensions                 → the incidenter's boundary facet
//     count: one same-dimension neighbour per facet. Only the relation of
//     a kind with itself is defined; differing kinds of equal dimension
//     fail with ErrCrossKind;
//  4. incidenter dimension higher      → the count of incidentee-kind
//     facets on one incidenter cell (vertices of a triangle, edges of a
//     tetrahedron, …);
//  5. otherwise                        → ErrUnbounded.
//
// Complexity: O(1).
func Count(incidenter, incidentee cell.Kind) (int, error) {
	if incidenter == nil || incidentee == nil {
		return 0, ErrNilKind
	}
	d1, d2 := incidenter.Dim(), incidentee.Dim()
	switch {
	case d1 == 0 && d2 == 0:
		return 0, ErrVertexRelation

	case d1 == 0 && d2 == 1:
		n, err := incidentee.FaceCount(incidenter)
		if err != nil {
			return 0, err
		}
		if n != edgeVertexCount {
			return 0, ErrModelMismatch
		}

		return edgeVertexCount, nil

	case d1 == d2:
		if incidenter != incidentee {
			return 0, ErrCrossKind
		}

		return incidenter.FaceCount(incidenter.Subcell())

	case d1 > d2:
		return incidenter.FaceCount(incidentee)

	default:
		return 0, ErrUnbounded
	}
}
