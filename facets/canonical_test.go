package facets_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmesh/cell"
	"github.com/katalvlaran/lvlmesh/facets"
	"github.com/katalvlaran/lvlmesh/incidence"
)

// edgeConn builds an edge→vertex connectivity for tests.
func edgeConn(t *testing.T, ids ...incidence.ID) incidence.Conn {
	t.Helper()
	c, err := incidence.New(cell.Edge, cell.Vertex, ids)
	require.NoError(t, err)

	return c
}

// triConn builds a triangle-face→vertex connectivity for tests.
func triConn(t *testing.T, ids ...incidence.ID) incidence.Conn {
	t.Helper()
	c, err := incidence.New(cell.Triangle, cell.Vertex, ids)
	require.NoError(t, err)

	return c
}

//----------------------------------------------------------------------------//
// Canonical and Key
//----------------------------------------------------------------------------//

// TestCanonical verifies two opposite windings of a shared edge
// canonicalize to the same value with opposite orientation flags.
func TestCanonical(t *testing.T) {
	fwd := edgeConn(t, 4, 7)
	bwd := edgeConn(t, 7, 4)

	cf, of := facets.Canonical(fwd)
	cb, ob := facets.Canonical(bwd)

	require.True(t, cf.Equal(cb))
	require.Equal(t, facets.SameOrientation, of)
	require.Equal(t, facets.OppositeOrientation, ob)

	// Idempotence.
	again, o := facets.Canonical(cf)
	require.True(t, again.Equal(cf))
	require.Equal(t, facets.SameOrientation, o)
}

// TestKey verifies the sorted key is winding- and rotation-independent.
func TestKey(t *testing.T) {
	a := triConn(t, 9, 2, 5)
	b := triConn(t, 5, 9, 2) // rotated winding of the same facet
	c := triConn(t, 5, 2, 9) // reversed-rotated winding

	want := []incidence.ID{2, 5, 9}
	require.Equal(t, want, facets.Key(a))
	require.Equal(t, want, facets.Key(b))
	require.Equal(t, want, facets.Key(c))

	// Key copies: mutating the result leaves the connectivity intact.
	k := facets.Key(a)
	k[0] = 99
	require.Equal(t, []incidence.ID{9, 2, 5}, a.IDs())
}
