// Package graph defines the flat, content-addressed knowledge graph the
// pipeline builds for one document: nodes, inter-node references, and the
// Document container the rest of the pipeline populates and the
// serializer walks.
package graph

// Ref is an inter-node reference. Multi-valued relations are ordered
// sequences of Ref; every Ref must resolve to a node id within the same
// Document (§3 invariant I1).
type Ref struct {
	ID string `json:"id"`
}

// RefTo is a convenience constructor.
func RefTo(id string) Ref { return Ref{ID: id} }

// RefsTo builds an ordered Ref sequence from a list of node ids.
func RefsTo(ids ...string) []Ref {
	if len(ids) == 0 {
		return nil
	}
	refs := make([]Ref, len(ids))
	for i, id := range ids {
		refs[i] = Ref{ID: id}
	}
	return refs
}

// Node is satisfied by every entity variant in §3: DiscourseReferent,
// RealWorldEntity, Act, StructuralAssertion, Role, ObjectAggregate, ICE,
// IBE, ComplexDesignator, and AlternativeNode. Rather than a single struct
// with optional fields for every variant's properties (§9 design note:
// "dynamic per-node properties"), each variant is its own Go type and
// exposes its predicate-keyed properties through Properties().
type Node interface {
	// NodeID returns the node's stable, namespace-prefixed id.
	NodeID() string

	// NodeTypes returns the node's types, most specific first.
	NodeTypes() []string

	// NodeLabel returns the human-readable label.
	NodeLabel() string

	// Properties returns the node's type-specific fields keyed by compact
	// predicate IRI. Values are one of: a literal (string, int, float64,
	// bool, time.Time), a Ref, or a []Ref/[]string for multi-valued
	// relations. The JSON-LD serializer (§4.15) is the only consumer that
	// needs to know this shape.
	Properties() map[string]any
}
