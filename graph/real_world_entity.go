package graph

import "time"

// RealWorldEntity is a Tier 2 node: an independent or generically-dependent
// continuant the text is about, built by RealWorldEntityFactory (§4.7).
type RealWorldEntity struct {
	ID    string
	Types []string // specific type plus owl:NamedIndividual or owl:Class
	Label string   // canonical label: determiners/modal adjectives stripped, lemmatized head

	InstantiatedAt time.Time
	InstantiatedBy string // document IRI, optional

	// Class nomination record, present only for GEN/UNIV entities (§3, I7).
	ClassNominationStatus string // "unresolved" when present
	NominatedClassLabel   string
	NominationBasis       string
	RequiresOntologyResolution bool

	// ScarcityAssertion-related fields must never appear here (I6, P5);
	// intentionally no fields exist for is_scarce/scarcity_marker/quantity.
}

func (e *RealWorldEntity) NodeID() string      { return e.ID }
func (e *RealWorldEntity) NodeTypes() []string { return e.Types }
func (e *RealWorldEntity) NodeLabel() string    { return e.Label }

func (e *RealWorldEntity) Properties() map[string]any {
	p := map[string]any{}
	if !e.InstantiatedAt.IsZero() {
		p["instantiated_at"] = e.InstantiatedAt
	}
	if e.InstantiatedBy != "" {
		p["instantiated_by"] = e.InstantiatedBy
	}
	if e.ClassNominationStatus != "" {
		p["classNominationStatus"] = e.ClassNominationStatus
		p["nominatedClassLabel"] = e.NominatedClassLabel
		p["nominationBasis"] = e.NominationBasis
		p["requiresOntologyResolution"] = e.RequiresOntologyResolution
	}
	return p
}

// IsClassNomination reports whether e carries owl:Class among its types,
// which invariant I7 requires for GEN/UNIV Tier 1 subjects.
func (e *RealWorldEntity) IsClassNomination() bool {
	for _, t := range e.Types {
		if t == "owl:Class" {
			return true
		}
	}
	return false
}
