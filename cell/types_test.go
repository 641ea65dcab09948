package cell_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmesh/cell"
)

//----------------------------------------------------------------------------//
// Built-in kind metadata
//----------------------------------------------------------------------------//

// TestBuiltinDimensions verifies dimension and subcell wiring of the
// built-in kinds.
func TestBuiltinDimensions(t *testing.T) {
	cases := []struct {
		kind    cell.Kind
		dim     int
		subcell cell.Kind
	}{
		{cell.Vertex, 0, nil},
		{cell.Edge, 1, cell.Vertex},
		{cell.Triangle, 2, cell.Edge},
		{cell.Quad, 2, cell.Edge},
		{cell.Tetrahedron, 3, cell.Triangle},
		{cell.Hexahedron, 3, cell.Quad},
	}
	for _, tc := range cases {
		t.Run(tc.kind.Name(), func(t *testing.T) {
			if tc.kind.Dim() != tc.dim {
				t.Errorf("Dim() = %d; want %d", tc.kind.Dim(), tc.dim)
			}
			if tc.kind.Subcell() != tc.subcell {
				t.Errorf("Subcell() = %v; want %v", tc.kind.Subcell(), tc.subcell)
			}
		})
	}
}

// TestBuiltinFaceCounts checks every defined face count of the built-in zoo.
func TestBuiltinFaceCounts(t *testing.T) {
	cases := []struct {
		of, facet cell.Kind
		want      int
	}{
		{cell.Edge, cell.Vertex, 2},
		{cell.Triangle, cell.Edge, 3},
		{cell.Triangle, cell.Vertex, 3},
		{cell.Quad, cell.Edge, 4},
		{cell.Quad, cell.Vertex, 4},
		{cell.Tetrahedron, cell.Triangle, 4},
		{cell.Tetrahedron, cell.Edge, 6},
		{cell.Tetrahedron, cell.Vertex, 4},
		{cell.Hexahedron, cell.Quad, 6},
		{cell.Hexahedron, cell.Edge, 12},
		{cell.Hexahedron, cell.Vertex, 8},
	}
	for _, tc := range cases {
		n, err := tc.of.FaceCount(tc.facet)
		if err != nil {
			t.Fatalf("FaceCount(%s, %s) error: %v", tc.of.Name(), tc.facet.Name(), err)
		}
		if n != tc.want {
			t.Errorf("FaceCount(%s, %s) = %d; want %d", tc.of.Name(), tc.facet.Name(), n, tc.want)
		}
	}
}

// TestFaceCountRejections verifies lookups off the boundary fail with
// ErrNoFaceCount and nil facets with ErrNilKind.
func TestFaceCountRejections(t *testing.T) {
	// Equal dimension is never a boundary.
	_, err := cell.Triangle.FaceCount(cell.Quad)
	require.ErrorIs(t, err, cell.ErrNoFaceCount)

	// Higher dimension is never a boundary.
	_, err = cell.Edge.FaceCount(cell.Triangle)
	require.ErrorIs(t, err, cell.ErrNoFaceCount)

	// A vertex has no boundary at all.
	_, err = cell.Vertex.FaceCount(cell.Vertex)
	require.ErrorIs(t, err, cell.ErrNoFaceCount)

	_, err = cell.Triangle.FaceCount(nil)
	require.ErrorIs(t, err, cell.ErrNilKind)

	// Triangles are not on a hexahedron's boundary chain.
	_, err = cell.Hexahedron.FaceCount(cell.Triangle)
	require.ErrorIs(t, err, cell.ErrNoFaceCount)
}

//----------------------------------------------------------------------------//
// NewKind validation
//----------------------------------------------------------------------------//

// TestNewKindErrors exercises every malformed-definition rejection.
func TestNewKindErrors(t *testing.T) {
	cases := []struct {
		name    string
		defName string
		dim     int
		subcell cell.Kind
		faces   map[cell.Kind]int
		err     error
	}{
		{"EmptyName", "", 1, cell.Vertex, map[cell.Kind]int{cell.Vertex: 2}, cell.ErrEmptyKindName},
		{"NegativeDim", "Weird", -1, nil, nil, cell.ErrNegativeDim},
		{"VertexWithSubcell", "Point", 0, cell.Vertex, nil, cell.ErrBadSubcell},
		{"VertexWithFaces", "Point", 0, nil, map[cell.Kind]int{cell.Vertex: 1}, cell.ErrBadFaceCount},
		{"MissingSubcell", "Face", 2, nil, map[cell.Kind]int{cell.Vertex: 3}, cell.ErrMissingSubcell},
		{"SubcellGap", "Volume", 3, cell.Edge, map[cell.Kind]int{cell.Edge: 6}, cell.ErrBadSubcell},
		{"ZeroCount", "Segment", 1, cell.Vertex, map[cell.Kind]int{cell.Vertex: 0}, cell.ErrBadFaceCount},
		{"CountAboveDim", "Segment", 1, cell.Vertex, map[cell.Kind]int{cell.Vertex: 2, cell.Triangle: 1}, cell.ErrBadFaceCount},
		{"MissingChainCount", "Pentagon", 2, cell.Edge, map[cell.Kind]int{cell.Edge: 5}, cell.ErrMissingFaceCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cell.NewKind(tc.defName, tc.dim, tc.subcell, tc.faces)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewKind(%q) error = %v; want %v", tc.defName, err, tc.err)
			}
		})
	}
}

// TestNewKindCustom builds a pentagon kind and checks it behaves like the
// built-ins.
func TestNewKindCustom(t *testing.T) {
	pent, err := cell.NewKind("Pentagon", 2, cell.Edge,
		map[cell.Kind]int{cell.Edge: 5, cell.Vertex: 5})
	require.NoError(t, err)

	require.Equal(t, 2, pent.Dim())
	require.Equal(t, cell.Edge, pent.Subcell())

	n, err := pent.FaceCount(cell.Edge)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	n, err = pent.FaceCount(cell.Vertex)
	require.NoError(t, err)
	require.Equal(t, 5, n)
}
