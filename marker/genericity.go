package marker

import (
	"strings"

	"github.com/c360studio/tagteam/graph"
	"github.com/c360studio/tagteam/lexicon"
)

// SubjectContext carries the signals GenericityDetector combines for one
// subject-position entity (§4.10). Only subject-position entities
// (nsubj/nsubj:pass) are classified; callers filter for that role before
// calling ClassifyGenericity.
type SubjectContext struct {
	Determiner       string // lower-cased, "" if none
	IsProperNoun     bool
	IsPlural         bool
	IsMassNoun       bool
	IsBareSingular   bool // singular count noun; also read with Determiner "the" for the institutional-the case
	PredicateLemma   string
	Tense            string // "present" | "past"
	HasPerfectAspect bool
	Modal            string // lower-cased aux modal, "" if none
}

// Classification is the §4.10 GenericityDetector output for one subject.
type Classification struct {
	Category    graph.GenericityCategory
	Confidence  float64
	Basis       string
	Alternative *Classification
}

var instDeterminers = map[string]bool{
	"the": true, "this": true, "that": true, "these": true, "those": true,
	"my": true, "your": true, "his": true, "her": true, "its": true, "our": true, "their": true,
}

var quantifierINST = map[string]bool{"some": true, "several": true, "few": true, "many": true}
var universalDet = map[string]bool{"all": true, "every": true, "each": true}

// ClassifyGenericity implements §4.10: determiner, tense/aspect, predicate
// type, modality, and proper-noun signals combine deterministically into
// one of {GEN, INST, UNIV, AMB}.
func ClassifyGenericity(sc SubjectContext) Classification {
	if sc.IsProperNoun {
		return Classification{Category: graph.INST, Confidence: 0.9, Basis: "proper_noun"}
	}

	det := strings.ToLower(sc.Determiner)
	lemma := strings.ToLower(sc.PredicateLemma)
	stative := lexicon.StativeVerbs[lemma]

	switch {
	case universalDet[det]:
		return Classification{Category: graph.UNIV, Confidence: 0.85, Basis: "universal_determiner"}
	case det == "no":
		return Classification{Category: graph.UNIV, Confidence: 0.8, Basis: "negative_polarity_determiner"}
	case quantifierINST[det]:
		return Classification{Category: graph.INST, Confidence: 0.7, Basis: "existential_quantifier"}
	case instDeterminers[det]:
		if det == "the" && sc.IsBareSingular && stative {
			// Institutional-the exception.
			alt := Classification{Category: graph.GEN, Confidence: 0.4, Basis: "institutional_the_alternative"}
			return Classification{Category: graph.AMB, Confidence: 0.55, Basis: "institutional_the", Alternative: &alt}
		}
		return Classification{Category: graph.INST, Confidence: 0.8, Basis: "definite_determiner"}
	case det == "a" || det == "an":
		conf := 0.4
		if stative && sc.Tense == "present" {
			conf = 0.55
		}
		return Classification{Category: graph.GEN, Confidence: conf, Basis: "indefinite_determiner"}
	}

	base := Classification{}
	switch {
	case sc.IsPlural && det == "":
		base = Classification{Category: graph.GEN, Confidence: 0.75, Basis: "bare_plural"}
	case sc.IsMassNoun && det == "":
		base = Classification{Category: graph.GEN, Confidence: 0.75, Basis: "bare_mass_noun"}
	case sc.IsBareSingular:
		base = Classification{Category: graph.AMB, Confidence: 0.5, Basis: "bare_singular_count_noun"}
	default:
		base = Classification{Category: graph.AMB, Confidence: 0.4, Basis: "unclassified"}
	}

	if stative && sc.Tense == "present" {
		base.Confidence = boost(base.Confidence, graph.GEN == base.Category, 0.1)
	}
	if sc.Tense == "past" && !stative {
		if base.Category != graph.INST {
			alt := base
			base = Classification{Category: graph.INST, Confidence: 0.3, Basis: "past_tense_dynamic_predicate"}
			base.Alternative = &alt
		}
	}
	if sc.HasPerfectAspect && (sc.Modal == "might" || sc.Modal == "may" || sc.Modal == "could") {
		alt := base
		return Classification{Category: graph.INST, Confidence: 0.45, Basis: "perfect_aspect_epistemic_modal", Alternative: &alt}
	}
	if lexicon.DeonticModals[sc.Modal] && (det == "a" || det == "an" || det == "") {
		base.Category = graph.GEN
		base.Basis = "deontic_modal_indefinite_subject"
		base.Confidence = boost(base.Confidence, true, 0.15)
	}
	if lexicon.EpistemicModals[sc.Modal] && (det == "a" || det == "an" || det == "") {
		alt := base
		return Classification{Category: graph.AMB, Confidence: 0.45, Basis: "epistemic_modal_indefinite_subject", Alternative: &alt}
	}

	return base
}

func boost(conf float64, matches bool, delta float64) float64 {
	if !matches {
		return conf
	}
	conf += delta
	if conf > 1 {
		conf = 1
	}
	return conf
}
