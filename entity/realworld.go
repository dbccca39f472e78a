package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/c360studio/tagteam/graph"
	"github.com/c360studio/tagteam/lexicon"
)

// passThroughTypes are DenotedType values the Tier 1 typing cascade
// already resolved to a concrete process/continuant type; the factory
// passes these through unchanged rather than re-deriving them from the
// head noun (§4.7 "process-type table (pass-through)").
var passThroughTypes = map[string]bool{
	"bfo:BFO_0000015": true, // Process
	"bfo:BFO_0000016": true, // Disposition
	"bfo:BFO_0000019": true, // Quality
	"bfo:BFO_0000023": true, // Role
	"cco:InformationContentEntity":              true,
	"cco:GenericInformationContentEntity":        true,
	"cco:InformationBearingEntity":               true,
	"cco:DirectiveInformationContentEntity":      true,
	"cco:Person":                                 true,
	"cco:Organization":                           true,
	"cco:GroupOfPersons":                         true,
	"cco:Artifact":                               true,
	"cco:Facility":                               true,
}

var acronymPattern = regexp.MustCompile(`^[A-Z]{2,}$`)

// singularNounsEndingInS are singular nouns whose trailing "s" is part
// of the stem, not a plural marker; LemmatizePlural's naive suffix rule
// would otherwise mangle them (§4.6 step 13 plural normalisation covers
// true plurals, not these).
var singularNounsEndingInS = map[string]bool{
	"diabetes": true, "physics": true, "mathematics": true, "news": true,
	"species": true, "series": true, "measles": true,
}

// RealWorldEntityFactory builds Tier 2 entities from Tier 1 referents and
// deduplicates them within one document scope (§4.7).
type RealWorldEntityFactory struct {
	documentScope string
	now           func() time.Time
	cache         map[string]*graph.RealWorldEntity
	order         []string
}

// NewRealWorldEntityFactory constructs a factory scoped to one document
// (documentIRI or sessionId — whichever the pipeline configured; empty
// string is a valid scope for single-shot calls with no document
// identity). now defaults to time.Now if nil.
func NewRealWorldEntityFactory(documentScope string, now func() time.Time) *RealWorldEntityFactory {
	if now == nil {
		now = time.Now
	}
	return &RealWorldEntityFactory{documentScope: documentScope, now: now, cache: map[string]*graph.RealWorldEntity{}}
}

// specificType chooses the Tier 2 specific type for one referent: pass
// through a concrete process/continuant type already resolved at Tier 1,
// else fall back to keyword tables over the head noun, else any other
// non-empty Tier 1 type, else the BFO root (§4.7).
func specificType(d *graph.DiscourseReferent, headWord string) string {
	if d.DenotedType != "" && passThroughTypes[d.DenotedType] {
		return d.DenotedType
	}
	lw := strings.ToLower(headWord)
	switch {
	case lexicon.PersonNouns[lw]:
		return "cco:Person"
	case lexicon.OrganizationNouns[lw]:
		return "cco:Organization"
	case lexicon.ArtifactNouns[lw]:
		return "cco:Artifact"
	case lexicon.FacilityNouns[lw]:
		return "cco:Facility"
	case lexicon.QualityNouns[lw]:
		return "bfo:BFO_0000019"
	}
	if d.DenotedType != "" {
		return d.DenotedType
	}
	return "bfo:BFO_0000001"
}

// normalizeLabel implements §4.7's label normalisation: lower-case, strip
// a leading determiner, strip leading modal/hedge adjectives, strip
// trailing punctuation, then lemmatize the head noun (acronyms are left
// untouched).
func normalizeLabel(text string) (normalized, headNoun string) {
	words := strings.Fields(text)
	i := 0
	for i < len(words) {
		w := words[i]
		lw := strings.ToLower(w)
		if definiteDeterminers[lw] || indefiniteDeterminers[lw] || leadingHedgeAdjectives[lw] {
			i++
			continue
		}
		break
	}
	kept := words[i:]
	if len(kept) == 0 {
		kept = words
	}
	for k, w := range kept {
		kept[k] = strings.TrimRight(w, ".,;:!?")
	}
	head := kept[len(kept)-1]
	lemma := head
	if !acronymPattern.MatchString(head) && !singularNounsEndingInS[strings.ToLower(head)] {
		lemma = lexicon.LemmatizePlural(strings.ToLower(head))
	} else {
		lemma = strings.ToLower(head)
	}
	out := make([]string, len(kept))
	copy(out, kept)
	out[len(out)-1] = lemma
	for k, w := range out {
		if !acronymPattern.MatchString(w) {
			out[k] = strings.ToLower(w)
		}
	}
	return strings.Join(out, " "), head
}

// titleCaseWord upper-cases a word's first rune for the canonical class
// label (§4.7 "each word title-cased").
func titleCaseWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

// Build converts one Tier 1 referent into its Tier 2 entity, reusing a
// cached node when an identical (normalizedLabel, specificType,
// documentScope) triple was already produced in this factory's lifetime
// (§3 P2, §4.7).
func (f *RealWorldEntityFactory) Build(d *graph.DiscourseReferent) *graph.RealWorldEntity {
	normalized, headWord := normalizeLabel(d.Label)
	typ := specificType(d, headWord)

	hash := graph.ContentHash(12, normalized, typ, f.documentScope)
	typeLabel := typeLabelFor(typ)
	id := graph.InstanceID(typeLabel, graph.ContentHash(8, normalized), hash)

	if cached, ok := f.cache[id]; ok {
		return cached
	}

	isClassNomination := d.GenericityCategory == graph.GEN || d.GenericityCategory == graph.UNIV
	owlType := "owl:NamedIndividual"
	if isClassNomination {
		owlType = "owl:Class"
	}

	e := &graph.RealWorldEntity{
		ID:             id,
		Types:          []string{typ, owlType},
		Label:          normalized,
		InstantiatedAt: f.now(),
		InstantiatedBy: f.documentScope,
	}
	if isClassNomination {
		e.ClassNominationStatus = "unresolved"
		e.NominatedClassLabel = titleCaseClassLabel(headWord)
		e.NominationBasis = d.GenericityBasis
		e.RequiresOntologyResolution = true
	}

	f.cache[id] = e
	f.order = append(f.order, id)
	return e
}

// titleCaseClassLabel singularises and title-cases the head noun for the
// canonical class label (§4.7).
func titleCaseClassLabel(headWord string) string {
	singular := headWord
	if !acronymPattern.MatchString(headWord) && !singularNounsEndingInS[strings.ToLower(headWord)] {
		singular = lexicon.LemmatizePlural(headWord)
	}
	parts := strings.Fields(singular)
	for i, p := range parts {
		if !acronymPattern.MatchString(p) {
			parts[i] = titleCaseWord(p)
		}
	}
	return strings.Join(parts, " ")
}

// bfoFriendlyLabels gives readable id-segment names for the BFO numeric
// classes this factory may pass through, instead of the raw "BFO_NNNNNNN"
// code.
var bfoFriendlyLabels = map[string]string{
	"bfo:BFO_0000001": "Entity",
	"bfo:BFO_0000015": "Process",
	"bfo:BFO_0000016": "Disposition",
	"bfo:BFO_0000019": "Quality",
	"bfo:BFO_0000023": "Role",
	"bfo:BFO_0000040": "MaterialEntity",
}

func typeLabelFor(compactIRI string) string {
	if label, ok := bfoFriendlyLabels[compactIRI]; ok {
		return label
	}
	idx := strings.IndexByte(compactIRI, ':')
	if idx < 0 {
		return compactIRI
	}
	return compactIRI[idx+1:]
}

// LinkReferentsToTier2 attaches is_about back to every Tier 1 referent
// whose id appears in linkMap, per §4.7's linkReferentsToTier2.
func LinkReferentsToTier2(referents []*graph.DiscourseReferent, linkMap map[string]*graph.RealWorldEntity) {
	for _, r := range referents {
		if e, ok := linkMap[r.ID]; ok {
			ref := graph.RefTo(e.ID)
			r.IsAbout = &ref
		}
	}
}
