package graph

import "github.com/c360studio/tagteam/vocabulary/tagteam"

// StructuralAssertion is the sibling variant of Act that records
// copular, locative, possessive, existential, or verb-derived relations
// (§3, §4.5).
type StructuralAssertion struct {
	ID    string
	Types []string
	Label string

	Subject  Ref
	Object   *Ref
	Copula   string // surface copula token, e.g. "is"
	Negated  bool

	// Pattern is one of: predication, negated_predication, locative,
	// possessive, existential.
	Pattern string

	// Relation is the inferred predicate IRI for "predication" patterns,
	// e.g. cco:has_part, bfo:part_of, rdf:type, rdfs:subClassOf,
	// bfo:located_in, cco:has_function, cco:member_of (§4.5 step 1).
	Relation string
}

func (s *StructuralAssertion) NodeID() string      { return s.ID }
func (s *StructuralAssertion) NodeTypes() []string { return s.Types }
func (s *StructuralAssertion) NodeLabel() string    { return s.Label }

func (s *StructuralAssertion) Properties() map[string]any {
	p := map[string]any{
		"subject": s.Subject,
		"pattern": s.Pattern,
	}
	if s.Object != nil {
		p["object"] = *s.Object
	}
	if s.Copula != "" {
		p["copula"] = s.Copula
	}
	if s.Negated {
		p["negated"] = true
	}
	if s.Relation != "" {
		p["relation"] = s.Relation
	}
	return p
}

// NewStructuralAssertion constructs a StructuralAssertion with the
// tagteam:StructuralAssertion marker type.
func NewStructuralAssertion(id, label string) *StructuralAssertion {
	return &StructuralAssertion{ID: id, Label: label, Types: []string{tagteam.StructuralAssertion}}
}
