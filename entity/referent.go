package entity

import (
	"strconv"
	"strings"

	"github.com/c360studio/tagteam/graph"
	"github.com/c360studio/tagteam/lexicon"
	"github.com/c360studio/tagteam/pos"
)

// definiteDeterminers and indefiniteDeterminers classify the determiner
// scan result (§4.6 Definiteness).
var definiteDeterminers = map[string]bool{"the": true, "this": true, "that": true, "these": true, "those": true}
var indefiniteDeterminers = map[string]bool{"a": true, "an": true}

// clauseBoundaryWords stop the backward determiner scan (§4.6
// Definiteness): coordinating conjunctions, subordinators, Wh-words,
// auxiliaries, modals.
var clauseBoundaryWords = map[string]bool{
	"and": true, "or": true, "but": true, "nor": true,
	"if": true, "because": true, "although": true, "while": true,
	"since": true, "before": true, "after": true,
	"who": true, "whom": true, "whose": true, "which": true, "what": true,
	"is": true, "are": true, "was": true, "were": true, "be": true, "been": true,
	"have": true, "has": true, "had": true, "do": true, "does": true, "did": true,
	"must": true, "should": true, "shall": true, "will": true, "would": true,
	"can": true, "could": true, "may": true, "might": true,
}

var leadingHedgeAdjectives = map[string]bool{
	"possible": true, "likely": true, "probable": true, "suspected": true,
	"potential": true, "presumed": true, "apparent": true, "alleged": true,
	"uncertain": true, "questionable": true,
}

var hypotheticalContextMarkers = []string{
	"if", "would", "could", "might", "suppose", "assuming", "hypothetically",
}

// ToDiscourseReferents builds one Tier 1 node per candidate, detecting
// definiteness and referential status against the full sentence token
// stream and source text (§4.6).
func ToDiscourseReferents(cands []Candidate, tagged []pos.Tagged, sourceText string, isFirstMention func(normalizedLabel string) bool) []*graph.DiscourseReferent {
	out := make([]*graph.DiscourseReferent, 0, len(cands))
	for _, c := range cands {
		out = append(out, toDiscourseReferent(c, tagged, sourceText, isFirstMention))
	}
	return out
}

func toDiscourseReferent(c Candidate, tagged []pos.Tagged, sourceText string, isFirstMention func(string) bool) *graph.DiscourseReferent {
	id := graph.InstanceID("DiscourseReferent",
		graph.ContentHash(8, "label", cleanLabel(c.Text)),
		graph.ContentHash(8, strconv.Itoa(c.Start), strconv.Itoa(c.End)))
	d := graph.NewDiscourseReferent(id, c.Text, nil)
	d.Start, d.End = c.Start, c.End
	d.DenotedType = c.DenotedType
	d.TypeRefinedBy = c.TypeRefinedBy
	d.IsConjunct, d.CoordinationType = c.IsConjunct, c.CoordinationType
	d.IsPossessor = c.IsPossessor
	d.IsPPObject, d.Preposition = c.IsPPObject, c.Preposition
	d.IsPronoun, d.PronounType = c.IsPronoun, c.PronounType

	if c.IsPPObject {
		d.IntroducingPreposition = c.Preposition
	}
	if unit, ok := temporalUnitOf(c); ok {
		d.TemporalUnit = unit
	}
	if marker, ok := scarcityMarkerOf(c); ok {
		d.ScarcityMarker = marker
	}
	if qty, quantifier, ok := quantityOf(c); ok {
		if qty != 0 {
			q := qty
			d.Quantity = &q
		}
		d.Quantifier = quantifier
	}

	d.Definiteness = definiteness(c, tagged)
	d.ReferentialStat = referentialStatus(c, tagged, sourceText, isFirstMention)
	return d
}

func cleanLabel(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func temporalUnitOf(c Candidate) (graph.TemporalUnit, bool) {
	head := strings.ToLower(strings.TrimSuffix(c.Head.Word, "s"))
	switch head {
	case "day":
		return graph.Day, true
	case "week":
		return graph.Week, true
	case "month":
		return graph.Month, true
	case "year":
		return graph.Year, true
	case "hour":
		return graph.Hour, true
	case "minute":
		return graph.Minute, true
	case "second":
		return graph.Second, true
	}
	return "", false
}

func scarcityMarkerOf(c Candidate) (string, bool) {
	for _, tk := range c.Tokens {
		lw := strings.ToLower(tk.Word)
		if lexicon.ScarcityMarkers[lw] {
			return lw, true
		}
	}
	return "", false
}

// quantityOf extracts a leading integer quantity and/or quantifier word
// from the phrase's determiner position (§4.6, §3 DiscourseReferent).
func quantityOf(c Candidate) (int, string, bool) {
	for _, tk := range c.Tokens {
		if n, err := strconv.Atoi(tk.Word); err == nil {
			return n, "", true
		}
	}
	switch strings.ToLower(c.Determiner) {
	case "all", "every", "each", "no", "some", "several", "few", "many":
		return 0, strings.ToLower(c.Determiner), true
	}
	return 0, "", false
}

// definiteness implements §4.6 Definiteness: look first at the chunk's
// own determiner, otherwise scan backward up to six tokens for a
// definite/indefinite determiner, stopping at punctuation or
// clause-boundary words.
func definiteness(c Candidate, tagged []pos.Tagged) graph.Definiteness {
	if c.IsPronoun {
		switch c.PronounType {
		case string(lexicon.PronounDemonstrative):
			return graph.Interrogative
		default:
			return graph.Anaphoric
		}
	}
	if c.Determiner != "" {
		if definiteDeterminers[c.Determiner] {
			return graph.Definite
		}
		if indefiniteDeterminers[c.Determiner] {
			return graph.Indefinite
		}
	}
	if head := strings.ToLower(c.Head.Word); head == "who" || head == "whom" || head == "whose" {
		return graph.InterrogativeSelective
	}
	if head := strings.ToLower(c.Head.Word); head == "which" || head == "what" {
		return graph.Interrogative
	}

	idx := indexBefore(tagged, c.Start)
	scanned := 0
	for i := idx; i >= 0 && scanned < 6; i-- {
		w := tagged[i]
		if isPunctuationTag(w.Tag) {
			break
		}
		lw := strings.ToLower(w.Word)
		if clauseBoundaryWords[lw] {
			break
		}
		if definiteDeterminers[lw] {
			return graph.Definite
		}
		if indefiniteDeterminers[lw] {
			return graph.Indefinite
		}
		scanned++
	}
	return graph.Indefinite
}

// referentialStatus implements §4.6 Referential status.
func referentialStatus(c Candidate, tagged []pos.Tagged, sourceText string, isFirstMention func(string) bool) graph.ReferentialStatus {
	if hasLeadingHedgeAdjective(c) {
		return graph.Hypothetical
	}
	if hasHypotheticalContext(sourceText, c.Start) {
		return graph.Hypothetical
	}
	if c.IsPronoun {
		return graph.AnaphoricRef
	}
	def := definiteness(c, tagged)
	if def == graph.Interrogative || def == graph.InterrogativeSelective {
		return graph.Interrog
	}
	if def == graph.Definite {
		if isFirstMention != nil && isFirstMention(cleanLabel(c.Text)) {
			return graph.Introduced
		}
		return graph.Presupposed
	}
	return graph.Introduced
}

func hasLeadingHedgeAdjective(c Candidate) bool {
	for _, tk := range c.Tokens {
		if tk.Tag != "JJ" && tk.Tag != "DT" {
			break
		}
		if leadingHedgeAdjectives[strings.ToLower(tk.Word)] {
			return true
		}
	}
	return false
}

func hasHypotheticalContext(sourceText string, start int) bool {
	from := start - 50
	if from < 0 {
		from = 0
	}
	if from >= len(sourceText) || start > len(sourceText) {
		return false
	}
	window := strings.ToLower(sourceText[from:start])
	for _, marker := range hypotheticalContextMarkers {
		if strings.Contains(window, marker) {
			return true
		}
	}
	return false
}

func indexBefore(tagged []pos.Tagged, offset int) int {
	for i := len(tagged) - 1; i >= 0; i-- {
		if tagged[i].End <= offset {
			return i
		}
	}
	return -1
}

func isPunctuationTag(tag string) bool {
	switch tag {
	case ".", ",", "SYM":
		return true
	default:
		return false
	}
}
