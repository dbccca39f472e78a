// Package entity implements the EntityExtractor (§4.6): NP-chunk and
// proper-name candidates, the fifteen-step typing cascade, verb-context
// refinement, definiteness/referential-status detection, and
// post-filtering.
package entity

import (
	"strings"

	"github.com/c360studio/tagteam/chunk"
	"github.com/c360studio/tagteam/lexicon"
	"github.com/c360studio/tagteam/pos"
	"github.com/c360studio/tagteam/vocabulary/bfo"
	"github.com/c360studio/tagteam/vocabulary/cco"
)

// ProperName is one NER-identified proper-name span, supplied by an
// external recognizer (§4.6, §1 Non-goals: NER is out of scope for this
// module and is taken as an input signal).
type ProperName struct {
	Text     string
	Start    int
	End      int
	Category string // "person" | "organization" | "place"
}

// DomainConfigLoader optionally specialises a head noun's type beyond the
// cascade's built-in tables (§4.6 step 6).
type DomainConfigLoader interface {
	ProcessRootWord(head string) (iri string, ok bool)
}

// Candidate is one typed entity candidate prior to Tier 1 node
// construction, carrying everything the cascade and downstream detectors
// need.
type Candidate struct {
	Text  string
	Start int
	End   int

	Tokens []pos.Tagged
	Head   pos.Tagged

	DenotedType   string
	TypeRefinedBy string

	Determiner string // explicit DT token text, if any

	IsConjunct       bool
	CoordinationType string

	IsPossessor bool
	IsPPObject  bool
	Preposition string

	IsPronoun   bool
	PronounType string
}

// Extractor runs the EntityExtractor over one sentence's chunks, tags,
// and proper names.
type Extractor struct {
	DomainConfig DomainConfigLoader
}

// New builds an Extractor, optionally wired to a domain config loader.
func New(cfg DomainConfigLoader) *Extractor {
	return &Extractor{DomainConfig: cfg}
}

// Extract combines NP-chunk and proper-name candidates for one sentence's
// tagged tokens, types each by the cascade, and returns them in discovery
// order after post-filtering.
func (e *Extractor) Extract(tagged []pos.Tagged, names []ProperName) []Candidate {
	chunks := chunk.Chunk(tagged)
	var cands []Candidate
	seen := map[string]bool{}

	for _, c := range chunks {
		for _, split := range splitCoordination(c) {
			if isPureTemporalAdverb(split) {
				continue
			}
			for _, comp := range chunk.ExtractComponents(split.Chunk) {
				cand := e.buildCandidate(split, comp)
				norm := strings.ToLower(strings.TrimSpace(cand.Text))
				if norm == "" || seen[norm] {
					continue
				}
				seen[norm] = true
				cands = append(cands, cand)
			}
		}
	}

	for _, name := range names {
		upgraded := false
		for i := range cands {
			if strings.EqualFold(cands[i].Text, name.Text) && cands[i].DenotedType == bfo.MaterialEntity {
				cands[i].DenotedType = properNameType(name.Category)
				upgraded = true
			}
		}
		if !upgraded {
			norm := strings.ToLower(name.Text)
			if !seen[norm] {
				seen[norm] = true
				cands = append(cands, Candidate{
					Text: name.Text, Start: name.Start, End: name.End,
					DenotedType: properNameType(name.Category),
				})
			}
		}
	}

	cands = e.refineVerbContext(tagged, cands)
	return postFilter(tagged, cands)
}

func properNameType(category string) string {
	switch category {
	case "person":
		return cco.Person
	case "organization":
		return cco.Organization
	case "place":
		return cco.GeopoliticalEntity
	default:
		return bfo.MaterialEntity
	}
}

// coordSplit is one conjunct of a coordinated chunk, or the chunk itself
// when no coordination was found.
type coordSplit struct {
	chunk.Chunk
	coordination string // "and" | "or" | ""
}

// splitCoordination detects "X and Y" / "X or Y" within a chunk's tokens
// and splits it into its conjuncts (§4.6 NP-chunk candidates).
func splitCoordination(c chunk.Chunk) []coordSplit {
	for i, tk := range c.Tokens {
		if tk.Tag == "CC" {
			left := c.Tokens[:i]
			right := c.Tokens[i+1:]
			if len(left) == 0 || len(right) == 0 {
				break
			}
			coordType := strings.ToLower(tk.Word)
			return []coordSplit{
				{Chunk: subChunk(c, left), coordination: coordType},
				{Chunk: subChunk(c, right), coordination: coordType},
			}
		}
	}
	return []coordSplit{{Chunk: c}}
}

func subChunk(c chunk.Chunk, span []pos.Tagged) chunk.Chunk {
	sub := c
	sub.Tokens = span
	sub.Head = span[len(span)-1]
	sub.Start = span[0].Start
	sub.End = span[len(span)-1].End
	var b strings.Builder
	for i, tk := range span {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tk.Word)
	}
	sub.Text = b.String()
	return sub
}

func isPureTemporalAdverb(c coordSplit) bool {
	if len(c.Tokens) != 1 {
		return false
	}
	return lexicon.RelativeTemporalTerms[strings.ToLower(c.Tokens[0].Word)]
}

// buildCandidate materialises one entity from an extracted component of
// a (possibly coordination-split) chunk, per §4.6: the possessor of a
// possessive chunk, the head NP / PP object of a PP-modified chunk, or
// the full phrase of a simple chunk (also the fallback "phrase" role the
// possessive/PP-modified templates also emit).
func (e *Extractor) buildCandidate(c coordSplit, comp chunk.Component) Candidate {
	head := comp.Tokens[len(comp.Tokens)-1]
	cand := Candidate{
		Text: phraseText(comp.Tokens), Start: comp.Tokens[0].Start, End: comp.Tokens[len(comp.Tokens)-1].End,
		Tokens: comp.Tokens, Head: head,
	}
	if c.coordination != "" {
		cand.IsConjunct = true
		cand.CoordinationType = c.coordination
	}
	switch comp.Role {
	case "possessor":
		cand.IsPossessor = true
	case "pp-object":
		cand.IsPPObject = true
		cand.Preposition = comp.Preposition
	}
	for _, tk := range comp.Tokens {
		if tk.Tag == "DT" {
			cand.Determiner = strings.ToLower(tk.Word)
			break
		}
	}
	if pron, ok := lexicon.IsPronoun(head.Word); ok {
		cand.IsPronoun = true
		cand.PronounType = string(pron.Type)
	}
	cand.DenotedType = e.cascade(cand)
	return cand
}

func phraseText(tokens []pos.Tagged) string {
	var b strings.Builder
	for i, tk := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tk.Word)
	}
	return b.String()
}

// cascade runs the fifteen-step typing cascade (§4.6); first match wins.
func (e *Extractor) cascade(c Candidate) string {
	head := strings.ToLower(c.Head.Word)

	// Step 1: pronoun presupposition.
	if c.IsPronoun {
		if pron, ok := lexicon.IsPronoun(c.Head.Word); ok {
			return pron.PresupposedType
		}
	}

	// Step 2: compound-noun disambiguation.
	if lexicon.AmbiguousCompoundHeads[head] && len(c.Tokens) > 1 {
		modifier := strings.ToLower(c.Tokens[len(c.Tokens)-2].Word)
		if lexicon.EntityArtifactKeywords[modifier] {
			return bfo.Process
		}
	}

	// Step 3: unambiguous result nouns.
	if t, ok := lexicon.ResultNouns[head]; ok {
		return t
	}

	// Step 4: ambiguous nominalizations with context.
	if base, ok := lexicon.AmbiguousNominalizations[head]; ok {
		if c.IsPPObject || hasOfComplement(c) {
			return bfo.Process
		}
		if c.Determiner == "the" || c.Determiner == "this" || c.Determiner == "that" {
			return base
		}
		return base
	}

	// Step 5: result-noun exceptions (same table as step 3).
	if t, ok := lexicon.ResultNouns[head]; ok {
		return t
	}

	// Step 6: domain-config specialization.
	if e.DomainConfig != nil {
		if iri, ok := e.DomainConfig.ProcessRootWord(head); ok {
			return iri
		}
	}

	// Step 7: action nominalizations.
	if lexicon.ActionNominalizations[head] {
		return cco.Act
	}

	// Step 8: process suffixes.
	if !lexicon.NominationContinuantBlocklist[head] && hasProcessSuffix(head) {
		return bfo.Process
	}

	// Step 9: deprecated domain-process table when no config loader is
	// registered (kept for backward compatibility with documents produced
	// before domain config loaders existed).
	if e.DomainConfig == nil {
		if t, ok := deprecatedDomainProcesses[head]; ok {
			return t
		}
	}

	// Step 10: direct entity-type mapping.
	switch {
	case lexicon.PersonNouns[head]:
		return cco.Person
	case lexicon.OrganizationNouns[head]:
		return cco.Organization
	case lexicon.ArtifactNouns[head]:
		return cco.Artifact
	case lexicon.FacilityNouns[head]:
		return cco.Facility
	case lexicon.QualityNouns[head]:
		return bfo.Quality
	}

	// Step 11: temporal.
	if t, ok := temporalType(c); ok {
		return t
	}

	// Step 12: symptom/disease/quality.
	if t, ok := symptomDiseaseQualityType(c, head); ok {
		return t
	}

	// Step 13: ontological vocabulary fallback, including plural
	// normalisation.
	if t, ok := vocabularyFallback(head); ok {
		return t
	}
	singular := lexicon.LemmatizePlural(head)
	if singular != head {
		if t, ok := vocabularyFallback(singular); ok {
			return t
		}
	}

	// Step 14: proper-name heuristics.
	if t, ok := properNameHeuristic(c); ok {
		return t
	}

	// Step 15: default.
	return bfo.MaterialEntity
}

func hasOfComplement(c Candidate) bool {
	return c.IsPPObject && c.Preposition == "of"
}

func hasProcessSuffix(head string) bool {
	for _, suf := range lexicon.ProcessSuffixes {
		s := strings.TrimPrefix(suf, "-")
		if strings.HasSuffix(head, s) {
			return true
		}
	}
	return false
}

// deprecatedDomainProcesses is the backward-compatibility table consulted
// only when no domain config loader is registered (§4.6 step 9).
var deprecatedDomainProcesses = map[string]string{
	"surgery":    cco.Act,
	"diagnosis":  cco.Act,
	"procedure":  cco.Act,
}

func vocabularyFallback(head string) (string, bool) {
	switch {
	case lexicon.PersonNouns[head]:
		return cco.Person, true
	case lexicon.OrganizationNouns[head]:
		return cco.Organization, true
	case lexicon.ArtifactNouns[head]:
		return cco.Artifact, true
	case lexicon.FacilityNouns[head]:
		return cco.Facility, true
	case lexicon.QualityNouns[head]:
		return bfo.Quality, true
	case lexicon.DiseaseTerms[head] || lexicon.DispositionTerms[head]:
		return bfo.Disposition, true
	case lexicon.SymptomHeads[head]:
		return bfo.Quality, true
	}
	return "", false
}

func temporalType(c Candidate) (string, bool) {
	head := strings.ToLower(c.Head.Word)
	if isTemporalUnit(head) && len(c.Tokens) > 1 {
		return bfo.TemporalRegion1D, true
	}
	if len(c.Tokens) > 1 {
		first := strings.ToLower(c.Tokens[0].Word)
		if lexicon.RelativeTemporalPrefixes[first] && isTemporalUnit(head) {
			return bfo.TemporalRegion1D, true
		}
	}
	if lexicon.RelativeTemporalTerms[head] {
		return bfo.TemporalRegion1D, true
	}
	return "", false
}

func isTemporalUnit(word string) bool {
	switch word {
	case "day", "days", "week", "weeks", "month", "months", "year", "years",
		"hour", "hours", "minute", "minutes", "second", "seconds":
		return true
	default:
		return false
	}
}

func symptomDiseaseQualityType(c Candidate, head string) (string, bool) {
	text := strings.ToLower(c.Text)
	if lexicon.SymptomPhrases[text] {
		return bfo.Quality, true
	}
	if lexicon.DiseaseTerms[head] {
		return bfo.Disposition, true
	}
	if lexicon.DispositionTerms[head] {
		return bfo.Disposition, true
	}
	if lexicon.QualityNouns[head] {
		return bfo.Quality, true
	}
	if lexicon.SymptomHeads[head] {
		return bfo.Quality, true
	}
	if c.IsConjunct {
		// Coordinated symptom conjuncts inherit the disease-bearing
		// reading if any conjunct in the phrase is a disease term.
		for _, tk := range c.Tokens {
			if lexicon.DiseaseTerms[strings.ToLower(tk.Word)] {
				return bfo.Disposition, true
			}
		}
	}
	return "", false
}

func properNameHeuristic(c Candidate) (string, bool) {
	words := c.Tokens
	if len(words) == 0 {
		return "", false
	}
	first := strings.ToLower(strings.TrimSuffix(words[0].Word, "."))
	if lexicon.TitlePrefixes[first] || lexicon.TitlePrefixes[first+"."] {
		return cco.Person, true
	}
	head := strings.ToLower(c.Head.Word)
	if lexicon.ProductNames[head] {
		return cco.Artifact, true
	}
	last := strings.ToLower(strings.TrimSuffix(words[len(words)-1].Word, "."))
	if lexicon.OrganizationSuffixes[last] || lexicon.OrganizationSuffixes[last+"."] {
		return cco.Organization, true
	}
	if !isCapitalized(words[0].Word) {
		return "", false
	}
	allCapitalized := true
	for _, w := range words {
		if !isCapitalized(w.Word) {
			allCapitalized = false
			break
		}
	}
	if !allCapitalized {
		return "", false
	}
	switch {
	case len(words) >= 2 && len(words) <= 3:
		return cco.Person, true
	case len(words) >= 4:
		return cco.Organization, true
	case len(words) == 1 && len(words[0].Word) <= 8:
		return cco.Person, true
	}
	return "", false
}

func isCapitalized(w string) bool {
	if w == "" {
		return false
	}
	r := w[0]
	return r >= 'A' && r <= 'Z'
}

// refineVerbContext applies the post-cascade verb-context refinement for
// ambiguous object nouns (§4.6): locate the nearest governing verb whose
// span ends before the candidate, uninterrupted by an intervening content
// noun, and refine by its cognitive/physical-action class.
func (e *Extractor) refineVerbContext(tagged []pos.Tagged, cands []Candidate) []Candidate {
	for i := range cands {
		head := strings.ToLower(cands[i].Head.Word)
		if !lexicon.AmbiguousObjectNouns[head] {
			continue
		}
		verb, ok := nearestGoverningVerb(tagged, cands[i].Start)
		if !ok {
			continue
		}
		lemma := lexicon.Lemmatize(verb, "VB")
		switch {
		case lexicon.CognitiveVerbs[lemma]:
			cands[i].DenotedType = cco.InformationContentEntity
			cands[i].TypeRefinedBy = lemma
		case lexicon.PhysicalActionVerbs[lemma]:
			cands[i].DenotedType = cco.Artifact
			cands[i].TypeRefinedBy = lemma
		}
	}
	return cands
}

// nearestGoverningVerb scans tagged tokens backward from the candidate's
// start offset for the nearest verb, stopping if a content noun
// intervenes.
func nearestGoverningVerb(tagged []pos.Tagged, beforeOffset int) (string, bool) {
	for i := len(tagged) - 1; i >= 0; i-- {
		tk := tagged[i]
		if tk.Start >= beforeOffset {
			continue
		}
		if isContentNoun(tk.Tag) {
			return "", false
		}
		if isVerbTag(tk.Tag) {
			return tk.Word, true
		}
	}
	return "", false
}

func isVerbTag(tag string) bool {
	switch tag {
	case "VB", "VBD", "VBG", "VBN", "VBP", "VBZ":
		return true
	default:
		return false
	}
}

func isContentNoun(tag string) bool {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	default:
		return false
	}
}

// postFilter drops single-word entities that are strict subsets of a
// longer multi-word entity (title-fragment suppression) and appositive
// entities (a second comma-flanked NP immediately following another),
// per §4.6.
func postFilter(tagged []pos.Tagged, cands []Candidate) []Candidate {
	var out []Candidate
	for i, c := range cands {
		if isTitleFragment(c, cands) {
			continue
		}
		if isAppositive(i, cands, tagged) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func isTitleFragment(c Candidate, all []Candidate) bool {
	if len(strings.Fields(c.Text)) != 1 {
		return false
	}
	for _, other := range all {
		if len(strings.Fields(other.Text)) <= 1 || other.Text == c.Text {
			continue
		}
		if strings.HasPrefix(strings.ToLower(other.Text), strings.ToLower(c.Text)) {
			return true
		}
	}
	return false
}

func isAppositive(i int, all []Candidate, tagged []pos.Tagged) bool {
	if i == 0 {
		return false
	}
	prev := all[i-1]
	cur := all[i]
	if cur.Start != prev.End+2 { // ", " between the two spans
		return false
	}
	for _, tk := range tagged {
		if tk.Word == "," && tk.Start == prev.End {
			return true
		}
	}
	return false
}
