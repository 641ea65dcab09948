package topo

import "errors"

// Sentinel errors for topology-table operations.
var (
	// ErrTableSize indicates a table requested for a non-positive number
	// of cells.
	ErrTableSize = errors.New("topo: table size must be positive")

	// ErrCellRange indicates a cell id outside the table's [1, Len] range.
	ErrCellRange = errors.New("topo: cell id out of table range")

	// ErrKindMismatch indicates a connectivity whose kind pair differs
	// from the table's relation.
	ErrKindMismatch = errors.New("topo: connectivity kinds do not match the table relation")

	// ErrFrozen indicates a mutation attempted after Freeze.
	ErrFrozen = errors.New("topo: table is frozen")
)
