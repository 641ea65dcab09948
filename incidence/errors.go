// SPDX-License-Identifier: MIT
// Package incidence: sentinel error set. All public operations MUST return
// these sentinels on failure and tests MUST check them via errors.Is.
// The only function allowed to panic on misuse is Conn.AtUnchecked, which
// is documented as the unchecked opt-in fast path.
package incidence

import "errors"

var (
	// ErrNilKind indicates a nil cell.Kind was supplied to the resolver
	// or a constructor.
	ErrNilKind = errors.New("incidence: nil cell kind")

	// ErrVertexRelation indicates a relation requested between two
	// vertex kinds; vertices have no sub-structure to enumerate, so the
	// relation is undefined.
	ErrVertexRelation = errors.New("incidence: relation between two vertex kinds is undefined")

	// ErrUnbounded indicates a fixed cardinality was requested for a
	// relation whose count depends on the mesh; use the Var form instead.
	ErrUnbounded = errors.New("incidence: cardinality is not determinable from cell kinds")

	// ErrCrossKind indicates a same-dimension relation between two
	// different kinds (e.g. Triangle/Quad). Only the neighbour relation
	// of a kind with itself is defined.
	ErrCrossKind = errors.New("incidence: same-dimension relation requires identical kinds")

	// ErrModelMismatch indicates the cell-kind model disagrees with the
	// canonical edge shape (an edge kind whose vertex count is not 2).
	ErrModelMismatch = errors.New("incidence: edge kind does not have exactly 2 vertices")

	// ErrLength indicates fixed-form construction with an id sequence
	// whose length differs from the resolved cardinality.
	ErrLength = errors.New("incidence: id count does not match the fixed cardinality")

	// ErrUnsetID indicates an unset (zero) or invalid id where a
	// populated identifier is required.
	ErrUnsetID = errors.New("incidence: unset id where a populated id is required")

	// ErrIndexRange indicates indexing outside the id sequence.
	ErrIndexRange = errors.New("incidence: index out of range")

	// ErrNotVertexKind indicates VertexID was called on a connectivity
	// whose incidentee kind is not of dimension 0.
	ErrNotVertexKind = errors.New("incidence: incidentee kind is not of dimension 0")

	// ErrFixedRelation indicates NewVar was called for a relation whose
	// cardinality is statically fixed; use New/NewUnset instead.
	ErrFixedRelation = errors.New("incidence: relation has fixed cardinality; use the fixed form")
)
