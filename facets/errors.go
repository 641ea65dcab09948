package facets

import "errors"

// Sentinel errors for facet canonicalization and deduplication.
var (
	// ErrUnsetID indicates a zero owner cell id; owners must be real
	// identifiers (>= 1).
	ErrUnsetID = errors.New("facets: owner cell id is unset")

	// ErrEmptyFacet indicates a facet connectivity with no ids.
	ErrEmptyFacet = errors.New("facets: facet has no ids")

	// ErrNonManifold indicates a facet registered by more than two cells;
	// a manifold mesh shares each facet between at most two.
	ErrNonManifold = errors.New("facets: facet already shared by two cells")

	// ErrOrientation indicates two windings of the same facet that are
	// not equal and not reversals of each other; relative orientation is
	// then undefined and the mesh data is inconsistent.
	ErrOrientation = errors.New("facets: shared facet windings are not related by reversal")
)
