// Package facets canonicalizes facet connectivities and deduplicates
// shared facets between adjacent cells. It is the consumer of the ordering
// and reversal primitives in package incidence.
//
// What:
//
//   - Canonical: the lexicographic minimum of a connectivity and its
//     reversal, plus the orientation flag telling which one won.
//   - Key: the sorted id sequence, a facet's identity independent of
//     winding and starting corner.
//   - Registry: records each facet once per owning cell during a build
//     pass; the second occurrence reports the first owner and the relative
//     orientation, a third occurrence is rejected as non-manifold.
//
// Why:
//
//   - Two cells sharing a facet reference the same id set with different
//     order/orientation. Canonical comparison after sorting or reversal is
//     exactly what shared-facet detection and orientation checks need.
//
// Complexity:
//
//   - Canonical / Key: O(n) / O(n log n) over the facet length (n ≤ 4 for
//     the built-in kinds).
//   - Registry.Add: O(log F) tree lookup over F distinct facets.
//   - Registry.Walk: O(F), keys visited in canonical order.
//
// Errors:
//
//   - ErrUnsetID: zero owner cell id.
//   - ErrEmptyFacet: facet with no ids.
//   - ErrNonManifold: a facet added a third time under the manifold check.
//   - ErrOrientation: shared windings not related by reversal.
//
// The registry is a single-goroutine build-time structure, like the
// topology tables.
package facets
