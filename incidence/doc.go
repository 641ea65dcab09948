// Package incidence models the incidence relations of a mesh: which cells
// of one kind are incident to a cell of another kind, with
// dimension-dependent cardinality rules, fixed and variable storage forms,
// and the ordering/reversal primitives facet canonicalization builds on.
//
// What:
//
//   - Sizing / Count: classify a kind pair as Fixed or Unbounded and
//     resolve the fixed cardinality from pure cell-kind metadata.
//   - Conn: a fixed-length, immutable sequence of incidentee ids attached
//     to one incidenter cell; its length is always derived from Count,
//     never stored independently.
//   - Var: a growable id sequence for relations whose cardinality is only
//     known at mesh-build time (e.g. cells around a vertex).
//   - Compare / Less / Reverse: the lexicographic total order and the
//     orientation-reversal used to canonicalize shared facets.
//
// Why:
//
//   - A cell's relation to its own boundary (same or lower dimension) has
//     a count derivable from its shape alone; its relation to surrounding
//     cells (higher dimension) is mesh-dependent. Separating the two forms
//     keeps fixed storage tight and makes every length auditable.
//
// Identifier conventions (single source of truth, see ID):
//
//   - 0 (Unset) is reserved for "not populated" and is illegal wherever
//     the incidenter dimension exceeds the incidentee dimension.
//   - -1 (Invalid) fills placeholder connectivities produced by NewUnset.
//
// Complexity:
//
//   - Count: O(1). Construction, Compare, Reverse, String: O(n) over the
//     id sequence (n ≤ 12 for the built-in kinds).
//
// Errors:
//
//   - ErrVertexRelation, ErrUnbounded, ErrCrossKind, ErrModelMismatch:
//     definition errors from the cardinality resolver.
//   - ErrLength, ErrUnsetID, ErrFixedRelation: validation errors at
//     construction/population time.
//   - ErrIndexRange, ErrNotVertexKind: access errors.
//   - ErrNilKind: nil kind argument.
//
// All errors fail fast and propagate as distinguishable sentinels; nothing
// is defaulted. Conn values are immutable once constructed and safe for
// unsynchronized concurrent reads.
package incidence
