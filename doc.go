// Package lvlmesh is an in-memory model of mesh topology: which cells of
// a mesh (vertices, edges, faces, volumes) are incident to which, with the
// dimension-dependent rules that size and validate those relations.
//
// 🚀 What is lvlmesh?
//
//	A small, deterministic library that brings together:
//		• Cell kinds: Vertex, Edge, Triangle, Quad, Tetrahedron, Hexahedron,
//		  plus validated custom kinds, each with dimension, subcell and
//		  face counts
//		• Incidence relations: fixed-cardinality connectivities sized from
//		  pure kind metadata, variable ones for mesh-dependent counts
//		• Ordering & orientation: lexicographic comparison and reversal,
//		  the primitives behind shared-facet detection
//		• Topology tables: build once, freeze, then read from any number
//		  of goroutines without locks
//		• Facet registry: canonical-key deduplication with orientation
//		  tracking over a red-black tree
//
// ✨ Why choose lvlmesh?
//
//   - Fail-fast – every malformed relation is a distinguishable sentinel
//     error, never a best-guess connectivity
//   - Auditable – the unset/invalid id conventions live in two named
//     constants, not in zero-value folklore
//   - Pure Go – no cgo, deterministic, side-effect-free resolvers
//   - Extensible – cell kinds are a capability interface, not an enum
//
// Under the hood, everything is organized under four subpackages:
//
//	cell/      — cell-kind dimension model (dimension, subcell, face counts)
//	incidence/ — cardinality resolver + fixed/variable connectivity containers
//	topo/      — build-then-freeze relation tables owning the connectivities
//	facets/    — canonicalization and shared-facet deduplication
//
// Quick ASCII example:
//
//	    1───2
//	    │ A╱│
//	    │╱ B│
//	    3───4
//
//	two triangles sharing edge {2,3}, each seeing it with opposite winding.
//
// Dive into the per-package docs for full examples and error contracts.
//
//	go get github.com/katalvlaran/lvlmesh
package lvlmesh
