package graph

import "github.com/c360studio/tagteam/vocabulary/tagteam"

// Definiteness enumerates a DiscourseReferent's determiner class (§3).
type Definiteness string

const (
	Definite                  Definiteness = "definite"
	Indefinite                Definiteness = "indefinite"
	Anaphoric                 Definiteness = "anaphoric"
	Interrogative             Definiteness = "interrogative"
	InterrogativeSelective    Definiteness = "interrogative_selective"
)

// ReferentialStatus enumerates how a DiscourseReferent was introduced (§3).
type ReferentialStatus string

const (
	Introduced   ReferentialStatus = "introduced"
	Presupposed  ReferentialStatus = "presupposed"
	AnaphoricRef ReferentialStatus = "anaphoric"
	Hypothetical ReferentialStatus = "hypothetical"
	Interrog     ReferentialStatus = "interrogative"
)

// TemporalUnit enumerates the recognised temporal granularities (§3).
type TemporalUnit string

const (
	Day    TemporalUnit = "day"
	Week   TemporalUnit = "week"
	Month  TemporalUnit = "month"
	Year   TemporalUnit = "year"
	Hour   TemporalUnit = "hour"
	Minute TemporalUnit = "minute"
	Second TemporalUnit = "second"
)

// GenericityCategory enumerates the GEN/INST/UNIV/AMB classification
// produced by the GenericityDetector (§4.10, GLOSSARY).
type GenericityCategory string

const (
	GEN GenericityCategory = "GEN"
	INST GenericityCategory = "INST"
	UNIV GenericityCategory = "UNIV"
	AMB  GenericityCategory = "AMB"
)

// DiscourseReferent is a Tier 1 / ICE-layer node: one per noun phrase,
// pronoun, Wh-word, or proper name the extractor finds (§3, §4.6).
type DiscourseReferent struct {
	ID    string
	Types []string
	Label string // equals the surface text

	Start, End int // character offsets of the source-text span

	Definiteness     Definiteness
	ReferentialStat  ReferentialStatus
	DenotedType      string // compact IRI chosen by the typing cascade

	ScarcityMarker string // optional
	Quantity       *int   // optional
	Quantifier     string // optional

	TemporalUnit TemporalUnit // optional, "" if not temporal

	IntroducingPreposition string // optional

	TypeRefinedBy string // optional governing verb lemma (§4.6 verb-context refinement)

	IsConjunct        bool
	CoordinationType  string // "and" | "or"

	IsPossessor bool

	IsPPObject  bool
	Preposition string

	IsPronoun   bool
	PronounType string

	GenericityCategory GenericityCategory
	GenericityBasis    string

	// IsAbout links to the Tier 2 RealWorldEntity once the factory runs
	// (§3, invariant I10 companion link maintained on the Tier 2 side).
	IsAbout *Ref

	// IsBearerOf accumulates once role detection runs, mirroring the
	// inverse of each Role's inheres_in (§4.8).
	IsBearerOf []Ref
}

func (d *DiscourseReferent) NodeID() string      { return d.ID }
func (d *DiscourseReferent) NodeTypes() []string { return d.Types }
func (d *DiscourseReferent) NodeLabel() string    { return d.Label }

func (d *DiscourseReferent) Properties() map[string]any {
	p := map[string]any{
		"start":            d.Start,
		"end":              d.End,
		"definiteness":     string(d.Definiteness),
		"referentialStatus": string(d.ReferentialStat),
		"denotedType":      d.DenotedType,
	}
	if d.ScarcityMarker != "" {
		p["is_scarce"] = true
		p["scarcity_marker"] = d.ScarcityMarker
	}
	if d.Quantity != nil {
		p["quantity"] = *d.Quantity
	}
	if d.Quantifier != "" {
		p["quantifier"] = d.Quantifier
	}
	if d.TemporalUnit != "" {
		p["temporalUnit"] = string(d.TemporalUnit)
	}
	if d.IntroducingPreposition != "" {
		p["introducingPreposition"] = d.IntroducingPreposition
	}
	if d.TypeRefinedBy != "" {
		p["typeRefinedBy"] = d.TypeRefinedBy
	}
	if d.IsConjunct {
		p["isConjunct"] = true
		p["coordinationType"] = d.CoordinationType
	}
	if d.IsPossessor {
		p["isPossessor"] = true
	}
	if d.IsPPObject {
		p["isPPObject"] = true
		p["preposition"] = d.Preposition
	}
	if d.IsPronoun {
		p["isPronoun"] = true
		p["pronounType"] = d.PronounType
	}
	if d.GenericityCategory != "" {
		p["genericityCategory"] = string(d.GenericityCategory)
		p["genericityBasis"] = d.GenericityBasis
	}
	if d.IsAbout != nil {
		p["is_about"] = *d.IsAbout
	}
	if len(d.IsBearerOf) > 0 {
		p["is_bearer_of"] = d.IsBearerOf
	}
	return p
}

// NewDiscourseReferent constructs a Tier 1 node with the
// tagteam:DiscourseReferent marker type prepended ahead of any
// caller-supplied more-specific types.
func NewDiscourseReferent(id, label string, types []string) *DiscourseReferent {
	allTypes := append([]string{tagteam.DiscourseReferent}, types...)
	return &DiscourseReferent{ID: id, Label: label, Types: allTypes}
}
