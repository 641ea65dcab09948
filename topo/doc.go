// Package topo owns the connectivity values of one mesh relation: a table
// indexed by incidenter cell id, populated during mesh construction and
// frozen read-only afterwards.
//
// What:
//
//   - Table: one fixed relation (e.g. triangle → its 3 edges), every slot
//     pre-filled with the sentinel placeholder until Set.
//   - VarTable: one unbounded relation (e.g. vertex → incident triangles),
//     rows grown with Append.
//   - Freeze flips a table read-only; frozen tables are safely shared
//     across any number of concurrent readers without locking, because
//     every contained value is immutable.
//
// Why:
//
//   - All mutation is deliberately pushed to build time. Tables take no
//     locks: construction is single-threaded, or partitioned by cell id
//     ranges with no overlapping writes under the caller's coordination.
//
// Complexity:
//
//   - Set / At / Append / Degree: O(1) plus the O(n) id copy of the
//     accessed connectivity.
//
// Errors:
//
//   - ErrTableSize: non-positive cell count at construction.
//   - ErrCellRange: cell id outside [1, Len].
//   - ErrKindMismatch: connectivity kinds differ from the table relation.
//   - ErrFrozen: mutation after Freeze.
//
// Cell ids are 1-based: id 0 is the reserved unset id (see incidence.Unset).
package topo
