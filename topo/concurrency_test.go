// Package topo_test verifies that frozen tables are safe for concurrent
// readers without locking.
package topo_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmesh/cell"
	"github.com/katalvlaran/lvlmesh/incidence"
	"github.com/katalvlaran/lvlmesh/topo"
)

// TestFrozenTableConcurrentReads populates a triangle→edge table
// single-threaded, freezes it, then hammers it from many readers.
// Run with -race: the frozen table must expose no write anywhere.
func TestFrozenTableConcurrentReads(t *testing.T) {
	const cells = 64
	tbl, err := topo.NewTable(cell.Triangle, cell.Edge, cells)
	require.NoError(t, err)

	// Single-threaded build pass.
	for id := incidence.ID(1); id <= cells; id++ {
		c, err := incidence.New(cell.Triangle, cell.Edge,
			[]incidence.ID{incidence.ID(id * 3), incidence.ID(id*3 + 1), incidence.ID(id*3 + 2)})
		require.NoError(t, err)
		require.NoError(t, tbl.Set(id, c))
	}
	tbl.Freeze()

	const readers = 16
	var wg sync.WaitGroup
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			for id := incidence.ID(1); id <= cells; id++ {
				c, err := tbl.At(id)
				require.NoError(t, err)
				require.Equal(t, 3, c.Len())
				_ = c.Reverse()
				_ = c.IDs()
			}
		}()
	}
	wg.Wait()
}
