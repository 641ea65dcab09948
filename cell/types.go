// Package cell: Kind interface, the built-in kinds, and the NewKind
// constructor with full definition validation.
package cell

// Kind describes one kind of mesh cell. It is pure metadata: a kind has
// no runtime state, and all methods are deterministic and side-effect-free.
//
// Implementations must be immutable and comparable, so that Kind values
// can be used as map keys and compared with ==.
type Kind interface {
	// Name returns the kind's identifier, unique within one cell model
	// (face-count lookups are keyed by name).
	Name() string

	// Dim returns the topological dimension: 0 for vertices, 1 for edges,
	// 2 for faces, 3 for volumes.
	Dim() int

	// Subcell returns the kind forming the boundary facets of this kind,
	// or nil for kinds of dimension 0.
	Subcell() Kind

	// FaceCount returns how many facet-kind cells bound one cell of this
	// kind (e.g. Triangle.FaceCount(Edge) = 3). It returns ErrNoFaceCount
	// when facet does not lie on this kind's boundary, and ErrNilKind for
	// a nil facet.
	FaceCount(facet Kind) (int, error)
}

// kind is the single implementation backing all built-in kinds and every
// kind produced by NewKind.
type kind struct {
	name    string
	dim     int
	subcell Kind
	faces   map[string]int // boundary kind name → count on one cell
}

// Name returns the kind's identifier.
func (k *kind) Name() string { return k.name }

// Dim returns the kind's topological dimension.
func (k *kind) Dim() int { return k.dim }

// Subcell returns the boundary facet kind, nil for dimension 0.
func (k *kind) Subcell() Kind { return k.subcell }

// FaceCount returns the number of facet-kind cells bounding one cell of
// kind k. Complexity: O(1).
func (k *kind) FaceCount(facet Kind) (int, error) {
	if facet == nil {
		return 0, ErrNilKind
	}
	if facet.Dim() >= k.dim {
		return 0, ErrNoFaceCount
	}
	n, ok := k.faces[facet.Name()]
	if !ok {
		return 0, ErrNoFaceCount
	}

	return n, nil
}

// NewKind defines a custom cell kind.
//
// Validation (all construction-time, all fail-fast):
//   - name must be non-empty (ErrEmptyKindName);
//   - dim must be non-negative (ErrNegativeDim);
//   - dim == 0 kinds must have nil subcell and no face counts
//     (ErrBadSubcell / ErrBadFaceCount);
//   - dim > 0 kinds require a subcell (ErrMissingSubcell) of dimension
//     exactly dim-1 (ErrBadSubcell);
//   - faceCounts must hold a positive count for every kind on the boundary
//     chain (subcell, subcell's subcell, … down to dimension 0); missing
//     entries yield ErrMissingFaceCount, non-positive ones ErrBadFaceCount;
//   - counts for kinds of dimension >= dim are rejected (ErrBadFaceCount).
//
// The faceCounts map is copied; the returned Kind is immutable.
func NewKind(name string, dim int, subcell Kind, faceCounts map[Kind]int) (Kind, error) {
	if name == "" {
		return nil, ErrEmptyKindName
	}
	if dim < 0 {
		return nil, ErrNegativeDim
	}
	if dim == 0 {
		if subcell != nil {
			return nil, ErrBadSubcell
		}
		if len(faceCounts) != 0 {
			return nil, ErrBadFaceCount
		}

		return &kind{name: name, dim: 0}, nil
	}
	if subcell == nil {
		return nil, ErrMissingSubcell
	}
	if subcell.Dim() != dim-1 {
		return nil, ErrBadSubcell
	}

	faces := make(map[string]int, len(faceCounts))
	for fk, n := range faceCounts {
		if fk == nil {
			return nil, ErrNilKind
		}
		if fk.Dim() >= dim {
			return nil, ErrBadFaceCount
		}
		if n <= 0 {
			return nil, ErrBadFaceCount
		}
		faces[fk.Name()] = n
	}
	// The whole boundary chain must be covered so that the incidence
	// resolver can size any cell-to-boundary relation.
	for sc := subcell; sc != nil; sc = sc.Subcell() {
		if _, ok := faces[sc.Name()]; !ok {
			return nil, ErrMissingFaceCount
		}
	}

	return &kind{name: name, dim: dim, subcell: subcell, faces: faces}, nil
}

// mustKind backs the built-in kind table; definitions below are statically
// correct, so a failure here is a programmer error.
func mustKind(k Kind, err error) Kind {
	if err != nil {
		panic(err)
	}

	return k
}

// Built-in kinds covering the common simplicial and hexahedral zoo.
var (
	// Vertex is the dimension-0 kind; it has no subcell.
	Vertex = mustKind(NewKind("Vertex", 0, nil, nil))

	// Edge is the dimension-1 kind: 2 bounding vertices.
	Edge = mustKind(NewKind("Edge", 1, Vertex, map[Kind]int{Vertex: 2}))

	// Triangle is a dimension-2 simplex: 3 edges, 3 vertices.
	Triangle = mustKind(NewKind("Triangle", 2, Edge, map[Kind]int{Edge: 3, Vertex: 3}))

	// Quad is a dimension-2 quadrilateral: 4 edges, 4 vertices.
	Quad = mustKind(NewKind("Quad", 2, Edge, map[Kind]int{Edge: 4, Vertex: 4}))

	// Tetrahedron is a dimension-3 simplex: 4 triangles, 6 edges, 4 vertices.
	Tetrahedron = mustKind(NewKind("Tetrahedron", 3, Triangle,
		map[Kind]int{Triangle: 4, Edge: 6, Vertex: 4}))

	// Hexahedron is a dimension-3 brick: 6 quads, 12 edges, 8 vertices.
	Hexahedron = mustKind(NewKind("Hexahedron", 3, Quad,
		map[Kind]int{Quad: 6, Edge: 12, Vertex: 8}))
)
