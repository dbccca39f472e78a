package graph

import (
	"time"

	"github.com/c360studio/tagteam/vocabulary/cco"
)

// ICEKind distinguishes the InformationContentEntity subkinds this
// pipeline emits (§3).
type ICEKind string

const (
	ICEGeneric            ICEKind = "Generic"
	ICEScarcityAssertion   ICEKind = "ScarcityAssertion"
	ICEDirectiveContent    ICEKind = "DirectiveContent"
	ICEValueAssertionEvent ICEKind = "ValueAssertionEvent"
	ICEContextAssessment   ICEKind = "ContextAssessmentEvent"
)

// ICE is an InformationContentEntity: an abstract claim concretized by
// exactly the IBEs that bear its literal text (§3, invariant I9).
type ICE struct {
	ID    string
	Types []string
	Label string

	Kind ICEKind

	IsConcretizedBy []Ref // usually exactly one

	// ScarcityAssertion fields.
	IsAbout        *Ref // Tier 2 resource the scarcity concerns (I6)
	ExtractedFrom  *Ref // Tier 1 referent this was promoted from
	EvidenceText   string
	SupplyCount    *int
	ScarcityMarker string
	DetectedAt     time.Time

	// DirectiveContent / DeonticContent fields.
	ModalType   string // "obligation" | "permission" | ...
	ModalMarker string
	Prescribes  *Ref // the Act this directive governs

	// ValueAssertionEvent / ContextAssessmentEvent / generic fields.
	Asserts *Ref
}

func (i *ICE) NodeID() string      { return i.ID }
func (i *ICE) NodeTypes() []string { return i.Types }
func (i *ICE) NodeLabel() string    { return i.Label }

func (i *ICE) Properties() map[string]any {
	p := map[string]any{}
	if len(i.IsConcretizedBy) == 1 {
		p["is_concretized_by"] = i.IsConcretizedBy[0]
	} else if len(i.IsConcretizedBy) > 1 {
		p["is_concretized_by"] = i.IsConcretizedBy
	}
	if i.IsAbout != nil {
		p["is_about"] = *i.IsAbout
	}
	if i.ExtractedFrom != nil {
		p["extracted_from"] = *i.ExtractedFrom
	}
	if i.EvidenceText != "" {
		p["evidenceText"] = i.EvidenceText
	}
	if i.SupplyCount != nil {
		p["supplyCount"] = *i.SupplyCount
	}
	if i.ScarcityMarker != "" {
		p["scarcityMarker"] = i.ScarcityMarker
	}
	if !i.DetectedAt.IsZero() {
		p["detected_at"] = i.DetectedAt
	}
	if i.ModalType != "" {
		p["modalType"] = i.ModalType
	}
	if i.ModalMarker != "" {
		p["modalMarker"] = i.ModalMarker
	}
	if i.Prescribes != nil {
		p["prescribes"] = *i.Prescribes
	}
	if i.Asserts != nil {
		p["asserts"] = *i.Asserts
	}
	return p
}

// NewScarcityAssertion constructs an ICE of kind ScarcityAssertion with
// cco:ScarcityAssertion among its types (§4.13).
func NewScarcityAssertion(id, label string) *ICE {
	return &ICE{ID: id, Label: label, Kind: ICEScarcityAssertion, Types: []string{cco.ScarcityAssertion, cco.InformationContentEntity}}
}

// NewDirectiveContent constructs an ICE of kind DirectiveContent.
func NewDirectiveContent(id, label string) *ICE {
	return &ICE{ID: id, Label: label, Kind: ICEDirectiveContent, Types: []string{cco.DirectiveContent, cco.InformationContentEntity}}
}

// NewGenericICE constructs a plain InformationContentEntity.
func NewGenericICE(id, label string) *ICE {
	return &ICE{ID: id, Label: label, Kind: ICEGeneric, Types: []string{cco.InformationContentEntity}}
}
