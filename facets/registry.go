// Package facets: the shared-facet registry used during a mesh-build pass.
package facets

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/lvlmesh/incidence"
)

// Match reports the previously registered occurrence of a shared facet.
type Match struct {
	// Owner is the cell id that registered the facet first.
	Owner incidence.ID

	// Local is the facet's local index within the first owner.
	Local int

	// Relative is the orientation of the new winding relative to the
	// first one: OppositeOrientation means the two cells see the facet
	// with opposite winding, the usual case for a consistently oriented
	// manifold mesh.
	Relative Orientation
}

// entry is the stored first occurrence plus a share counter.
type entry struct {
	owner incidence.ID
	local int
	conn  incidence.Conn
	count int
}

// Registry deduplicates facets across the cells of a mesh-build pass.
// It is backed by a red-black tree keyed by canonical facet keys, so
// Walk visits facets in a deterministic order.
//
// Registry takes no locks: it belongs to a single build goroutine.
type Registry struct {
	tree     *redblacktree.Tree
	manifold bool
}

// Option configures a Registry before use.
type Option func(*Registry)

// WithManifoldCheck toggles the at-most-two-owners rule (default true).
// Disable it to ingest deliberately non-manifold data, e.g. shell meshes
// with T-junctions under external validation.
func WithManifoldCheck(enabled bool) Option {
	return func(r *Registry) { r.manifold = enabled }
}

// NewRegistry constructs an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		tree: redblacktree.NewWith(func(a, b interface{}) int {
			return compareKeys(a.([]incidence.ID), b.([]incidence.ID))
		}),
		manifold: true,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Add registers one facet occurrence: facet is the winding under which
// cell owner sees its local-th facet.
//
// The first occurrence of a facet key stores owner/local/winding and
// returns shared=false. The second returns shared=true with the stored
// first occurrence and the relative orientation of the two windings.
// Failure modes:
//   - owner < 1 → ErrUnsetID;
//   - facet with no ids → ErrEmptyFacet;
//   - third occurrence under the manifold check → ErrNonManifold;
//   - windings that are neither equal nor reversals → ErrOrientation.
//
// Complexity: O(n log n + log F).
func (r *Registry) Add(owner incidence.ID, local int, facet incidence.Conn) (Match, bool, error) {
	if owner < 1 {
		return Match{}, false, ErrUnsetID
	}
	if facet.Len() == 0 {
		return Match{}, false, ErrEmptyFacet
	}

	key := Key(facet)
	v, found := r.tree.Get(key)
	if !found {
		r.tree.Put(key, &entry{owner: owner, local: local, conn: facet, count: 1})

		return Match{}, false, nil
	}

	e := v.(*entry)
	if r.manifold && e.count >= 2 {
		return Match{}, false, ErrNonManifold
	}

	var rel Orientation
	switch {
	case facet.Equal(e.conn):
		rel = SameOrientation
	case facet.Reverse().Equal(e.conn):
		rel = OppositeOrientation
	default:
		return Match{}, false, ErrOrientation
	}
	e.count++

	return Match{Owner: e.owner, Local: e.local, Relative: rel}, true, nil
}

// Len returns the number of distinct facets registered. Complexity: O(1).
func (r *Registry) Len() int { return r.tree.Size() }

// Entry is one registered facet as visited by Walk.
type Entry struct {
	// Key is the canonical (sorted) id sequence of the facet.
	Key []incidence.ID

	// Owner and Local locate the first registration.
	Owner incidence.ID
	Local int

	// Count is the number of cells that registered the facet (1 for
	// boundary facets, 2 for interior ones in a manifold mesh).
	Count int
}

// Walk visits every registered facet in ascending canonical-key order,
// stopping early when fn returns false. Boundary extraction iterates the
// Count==1 entries. Complexity: O(F).
func (r *Registry) Walk(fn func(Entry) bool) {
	it := r.tree.Iterator()
	for it.Next() {
		e := it.Value().(*entry)
		key := it.Key().([]incidence.ID)
		cp := make([]incidence.ID, len(key))
		copy(cp, key)
		if !fn(Entry{Key: cp, Owner: e.owner, Local: e.local, Count: e.count}) {
			return
		}
	}
}
