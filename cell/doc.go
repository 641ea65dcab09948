// Package cell defines the cell-kind dimension model for mesh topology:
// which kinds of cells exist (vertex, edge, triangle, tetrahedron, …),
// their topological dimension, their boundary subcell kind, and how many
// facets of a given kind bound one cell.
//
// What:
//
//   - Kind is a capability interface: Name, Dim, Subcell, FaceCount.
//   - Built-in kinds: Vertex, Edge, Triangle, Quad, Tetrahedron, Hexahedron.
//   - NewKind defines custom kinds with construction-time validation, so
//     user kinds flow through the incidence resolver and containers exactly
//     like the built-ins.
//
// Why:
//
//   - Finite-element-style codes size their connectivity storage from pure
//     kind metadata (a triangle always has 3 edges); keeping that metadata
//     in one validated model makes every downstream count derivable and
//     auditable.
//
// Complexity:
//
//   - All lookups are O(1) map/field accesses on immutable values.
//
// Errors:
//
//   - ErrEmptyKindName, ErrNegativeDim, ErrMissingSubcell, ErrBadSubcell,
//     ErrBadFaceCount, ErrMissingFaceCount: malformed kind definitions,
//     rejected by NewKind.
//   - ErrNoFaceCount: face-count lookup for a kind not on the boundary.
//   - ErrNilKind: nil Kind argument.
//
// Kinds are immutable once constructed and safe for unsynchronized
// concurrent use.
package cell
