// Package ambiguity implements AmbiguityDetector and
// AlternativeGraphBuilder (§4.11): five ambiguity classes over extracted
// entities, acts, and roles, and the construction of reading-specific
// AlternativeNode clones.
package ambiguity

import (
	"strings"

	"github.com/c360studio/tagteam/lexicon"
)

// Class enumerates the five ambiguity classes (§4.11).
type Class string

const (
	ClassNounCategory Class = "noun_category"
	ClassSelectional  Class = "selectional_violation"
	ClassModalForce   Class = "modal_force"
	ClassScope        Class = "scope"
	ClassMetonymy     Class = "metonymy"
)

// Reading is one candidate interpretation an Ambiguity offers.
// Types/Overrides describe how AlternativeGraphBuilder should mutate a
// clone of the ambiguous node for this reading; they are nil for the
// default reading, which needs no clone.
type Reading struct {
	Name      string
	IsDefault bool
	Types     []string
	Overrides map[string]any
}

// Ambiguity is one detected ambiguity over a node, with its candidate
// readings and detection signal (§4.11).
type Ambiguity struct {
	Class      Class
	NodeID     string
	Span       string // the surface text the intensifier scan runs over
	Confidence float64
	Signal     string
	Readings   []Reading
}

// DetectNounCategory flags a nominalization-suffixed head noun not in the
// continuant-dominant blocklist as ambiguous between a process and a
// continuant reading (§4.11).
func DetectNounCategory(nodeID, head string, hasOfComplement, isSubjectOfIntentionalAct bool) (Ambiguity, bool) {
	lw := strings.ToLower(head)
	if lexicon.NominationContinuantBlocklist[lw] {
		return Ambiguity{}, false
	}
	if !hasNominalizationSuffix(lw) {
		return Ambiguity{}, false
	}
	signal := ""
	processDefault := false
	switch {
	case hasOfComplement:
		signal = "of-complement"
		processDefault = true
	case isSubjectOfIntentionalAct:
		signal = "subject-of-intentional-act"
	}
	return Ambiguity{
		Class: ClassNounCategory, NodeID: nodeID, Signal: signal, Confidence: 0.7,
		Readings: []Reading{
			{Name: "process", IsDefault: processDefault, Types: []string{"bfo:BFO_0000015"}},
			{Name: "continuant", IsDefault: !processDefault, Types: []string{"bfo:BFO_0000002"}},
		},
	}, true
}

var nominalizationSuffixes = []string{"tion", "ment", "sis", "ance", "ence", "ity", "ness", "ing"}

func hasNominalizationSuffix(head string) bool {
	for _, suf := range nominalizationSuffixes {
		if strings.HasSuffix(head, suf) {
			return true
		}
	}
	return false
}

// DetectSelectionalViolation flags an inanimate subject of an intentional
// verb, or an abstract subject of a physical verb (§4.11).
func DetectSelectionalViolation(nodeID, verbLemma string, subjectIsAnimate, subjectIsAbstract bool) (Ambiguity, bool) {
	lemma := strings.ToLower(verbLemma)
	switch {
	case lexicon.IntentionalVerbs[lemma] && !subjectIsAnimate:
		return Ambiguity{
			Class: ClassSelectional, NodeID: nodeID, Confidence: 0.85,
			Signal: "inanimate_subject_of_intentional_verb",
			Readings: []Reading{
				{Name: "literal", IsDefault: true},
				{Name: "metaphorical_or_metonymic"},
			},
		}, true
	case lexicon.PhysicalVerbs[lemma] && subjectIsAbstract:
		return Ambiguity{
			Class: ClassSelectional, NodeID: nodeID, Confidence: 0.85,
			Signal: "abstract_subject_of_physical_verb",
			Readings: []Reading{
				{Name: "literal", IsDefault: true},
				{Name: "metaphorical_or_metonymic"},
			},
		}, true
	}
	return Ambiguity{}, false
}

// DetectModalForce classifies should/must/may/could/might/need-to modal
// force ambiguity (§4.11).
func DetectModalForce(nodeID, modal string, hasPerfectAspect, isAgentSubject, isSecondPerson, isNegated bool) (Ambiguity, bool) {
	lm := strings.ToLower(modal)
	if !lexicon.AmbiguousModals[lm] && lm != "need" {
		return Ambiguity{}, false
	}
	deontic := isAgentSubject || isSecondPerson
	epistemic := hasPerfectAspect

	readings := []Reading{
		{Name: "obligation", Types: nil, Overrides: overridesFor("obligation", "Prescribed")},
		{Name: "expectation", Overrides: overridesFor("expectation", "Prescribed")},
		{Name: "inference", Overrides: overridesFor("inference", "Hypothetical")},
		{Name: "permission", Overrides: overridesFor("permission", "Permitted")},
		{Name: "possibility", Overrides: overridesFor("possibility", "Potential")},
	}
	defaultName := "inference"
	switch {
	case epistemic:
		defaultName = "inference"
	case deontic:
		defaultName = "obligation"
	}
	for i := range readings {
		readings[i].IsDefault = readings[i].Name == defaultName
	}
	signal := "default"
	if isNegated {
		signal = "negation_under_modal"
	}
	return Ambiguity{Class: ClassModalForce, NodeID: nodeID, Confidence: 0.7, Signal: signal, Readings: readings}, true
}

func overridesFor(modality, actualityStatus string) map[string]any {
	return map[string]any{"modality": modality, "actualityStatus": actualityStatus}
}

// DetectScope flags universal-quantifier+negation, double-quantifier, and
// modal+negation scope ambiguity (§4.11).
func DetectScope(nodeID, span string, hasUniversalQuantifier, hasNegation, hasTwoQuantifiers bool, modal string) (Ambiguity, bool) {
	lm := strings.ToLower(modal)
	switch {
	case hasUniversalQuantifier && hasNegation:
		return Ambiguity{
			Class: ClassScope, NodeID: nodeID, Span: span, Confidence: 0.7,
			Signal: "universal_quantifier_negation",
			Readings: []Reading{
				{Name: "wide", IsDefault: true, Overrides: map[string]any{"scope": "wide", "formalization": "¬∃x.P(x)"}},
				{Name: "narrow", Overrides: map[string]any{"scope": "narrow", "formalization": "∃x.¬P(x)"}},
			},
		}, true
	case hasTwoQuantifiers:
		return Ambiguity{
			Class: ClassScope, NodeID: nodeID, Span: span, Confidence: 0.7,
			Signal: "two_quantifiers",
			Readings: []Reading{
				{Name: "subject_wide", IsDefault: true, Overrides: map[string]any{"scope": "subject_wide"}},
				{Name: "object_wide", Overrides: map[string]any{"scope": "object_wide"}},
			},
		}, true
	case (lm == "may" || lm == "might" || lm == "could") && hasNegation:
		return Ambiguity{
			Class: ClassScope, NodeID: nodeID, Span: span, Confidence: 0.7,
			Signal: "modal_negation",
			Readings: []Reading{
				{Name: "permission_denied", IsDefault: true, Overrides: map[string]any{"scope": "permission_denied"}},
				{Name: "possibility_denied", Overrides: map[string]any{"scope": "possibility_denied"}},
			},
		}, true
	}
	return Ambiguity{}, false
}

// DetectMetonymy flags a location noun appearing as agent as a potential
// metonymic bridge to Organization (§4.11).
func DetectMetonymy(nodeID, agentHead string) (Ambiguity, bool) {
	if !lexicon.MetonymyLocationNouns[strings.ToLower(agentHead)] {
		return Ambiguity{}, false
	}
	return Ambiguity{
		Class: ClassMetonymy, NodeID: nodeID, Confidence: 0.6,
		Signal: "location_noun_as_agent",
		Readings: []Reading{
			{Name: "literal_location", IsDefault: true},
			{
				Name:  "metonymic_institution",
				Types: []string{"cco:Organization", "bfo:BFO_0000002"},
				Overrides: map[string]any{
					"literalType":  "cco:Artifact",
					"metonymyType": "location_for_institution",
				},
			},
		},
	}, true
}
