// Package incidence: identifier and size-kind types shared by the resolver
// and both container forms.
package incidence

// ID identifies one cell of a given kind within a mesh.
//
// Two values are reserved and centralized here so the unset state stays
// auditable instead of leaning on Go's zero-value semantics:
//
//   - Unset (0): a slot that was never populated. Legal only in a
//     variable-cardinality relation, and there only by absence; wherever
//     the incidenter dimension exceeds the incidentee dimension every id
//     must be non-zero.
//   - Invalid (-1): the marker filling placeholder connectivities built
//     by NewUnset, distinguishable from any populated instance.
//
// Real cell identifiers are therefore always >= 1.
type ID int64

const (
	// Unset is the reserved zero id meaning "not populated".
	Unset ID = 0

	// Invalid is the placeholder marker used by NewUnset.
	Invalid ID = -1
)

// SizeKind classifies the cardinality of an incidence relation.
type SizeKind int

const (
	// Fixed means the incident-cell count is derivable from the two cell
	// kinds alone and never stored.
	Fixed SizeKind = iota

	// Unbounded means the count depends on the mesh and is only known at
	// build time; such relations use the Var form.
	Unbounded
)

// String renders the size kind for diagnostics.
func (s SizeKind) String() string {
	if s == Fixed {
		return "Fixed"
	}

	return "Unbounded"
}

// edgeVertexCount is the canonical vertex count of any edge kind; the
// vertex/edge relation is pinned to it by Count rule 2.
const edgeVertexCount = 2
