package graph

import "github.com/c360studio/tagteam/vocabulary/bfo"

// Pattern enumerates the act-extraction pattern that produced an Act
// (§3, §4.5).
type Pattern string

const (
	PatternRegular    Pattern = "regular"
	PatternPossessive Pattern = "possessive"
	PatternExistential Pattern = "existential"
)

// Modality enumerates the modal force attached to an Act (§3).
type Modality string

const (
	ModalityObligation      Modality = "obligation"
	ModalityPermission      Modality = "permission"
	ModalityAbility         Modality = "ability"
	ModalityExpectation     Modality = "expectation"
	ModalityPossibility     Modality = "possibility"
	ModalityInference       Modality = "inference"
	ModalityConditional     Modality = "conditional"
	ModalityHabitual        Modality = "habitual"
	ModalityRecommendation  Modality = "recommendation"
)

// ActualityStatus enumerates an Act's realized-ness (§3, GLOSSARY).
type ActualityStatus string

const (
	Actual       ActualityStatus = "Actual"
	Prescribed   ActualityStatus = "Prescribed"
	Planned      ActualityStatus = "Planned"
	HypotheticalStatus ActualityStatus = "Hypothetical"
	Potential    ActualityStatus = "Potential"
	Permitted    ActualityStatus = "Permitted"
)

// Act is a root verb with its passive/negation/lemma flags and
// participant relations (§3, §4.5).
type Act struct {
	ID    string
	Types []string
	Label string // verb surface form

	Verb    string
	Lemma   string
	Tag     string
	Pattern Pattern

	IsPassive  bool
	IsNegated  bool
	IsCopular  bool

	Modality       Modality
	ActualityStatus ActualityStatus

	HasAgent       *Ref
	Affects        *Ref
	HasParticipant []Ref
	OccursDuring   *Ref

	// Scope is set by AlternativeGraphBuilder when cloning a scope-ambiguity
	// reading (§4.11).
	Scope string
}

func (a *Act) NodeID() string      { return a.ID }
func (a *Act) NodeTypes() []string { return a.Types }
func (a *Act) NodeLabel() string    { return a.Label }

func (a *Act) Properties() map[string]any {
	p := map[string]any{
		"verb":    a.Verb,
		"lemma":   a.Lemma,
		"tag":     a.Tag,
		"pattern": string(a.Pattern),
	}
	if a.IsPassive {
		p["isPassive"] = true
	}
	if a.IsNegated {
		p["isNegated"] = true
	}
	if a.IsCopular {
		p["isCopular"] = true
	}
	if a.Modality != "" {
		p["modality"] = string(a.Modality)
	}
	if a.ActualityStatus != "" {
		p["actualityStatus"] = string(a.ActualityStatus)
	}
	if a.HasAgent != nil {
		p["has_agent"] = *a.HasAgent
	}
	if a.Affects != nil {
		p["affects"] = *a.Affects
	}
	if len(a.HasParticipant) > 0 {
		p["has_participant"] = a.HasParticipant
	}
	if a.OccursDuring != nil {
		p["occurs_during"] = *a.OccursDuring
	}
	if a.Scope != "" {
		p["scope"] = a.Scope
	}
	return p
}

// Participants returns the full set of entity ids the act involves,
// regardless of role: agent, affected, and has_participant, in that
// order, deduplicated. Used by RoleDetector (§4.8) and the socio-primal
// validation pattern (§4.14 pattern 6).
func (a *Act) Participants() []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(r *Ref) {
		if r == nil {
			return
		}
		if _, ok := seen[r.ID]; ok {
			return
		}
		seen[r.ID] = struct{}{}
		out = append(out, r.ID)
	}
	add(a.HasAgent)
	add(a.Affects)
	for i := range a.HasParticipant {
		add(&a.HasParticipant[i])
	}
	return out
}

// NewAct constructs an Act with bfo:Process prepended to its types.
func NewAct(id, verb string) *Act {
	return &Act{ID: id, Label: verb, Verb: verb, Types: []string{bfo.Process}}
}
