// Package cell: sentinel errors for kind definition and face-count lookup.
// All errors are construction-time or lookup-time failures; tests match them
// via errors.Is. No function in this package panics on user input.
package cell

import "errors"

// Sentinel errors for cell-kind definitions.
var (
	// ErrNilKind indicates a nil Kind was supplied where a kind is required.
	ErrNilKind = errors.New("cell: nil kind")

	// ErrEmptyKindName indicates a kind definition with an empty name.
	ErrEmptyKindName = errors.New("cell: kind name is empty")

	// ErrNegativeDim indicates a kind definition with a negative dimension.
	ErrNegativeDim = errors.New("cell: kind dimension is negative")

	// ErrMissingSubcell indicates a kind of dimension > 0 defined without
	// a boundary subcell kind.
	ErrMissingSubcell = errors.New("cell: kind of dimension > 0 requires a subcell kind")

	// ErrBadSubcell indicates a subcell whose dimension is not exactly one
	// below the kind's own dimension, or a subcell given for a vertex kind.
	ErrBadSubcell = errors.New("cell: subcell dimension must be one below the kind dimension")

	// ErrBadFaceCount indicates a non-positive face count in a kind definition.
	ErrBadFaceCount = errors.New("cell: face count must be positive")

	// ErrMissingFaceCount indicates a kind definition lacking a face count
	// for one of the kinds on its boundary chain.
	ErrMissingFaceCount = errors.New("cell: missing face count for boundary kind")

	// ErrNoFaceCount indicates a face-count lookup against a kind that does
	// not lie on the receiver's boundary.
	ErrNoFaceCount = errors.New("cell: no face count defined for kind pair")
)
