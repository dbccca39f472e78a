// Package validate implements the SHMLValidator (§4.14): eight named
// structural-health-and-modeling-language patterns run over a finished
// graph.Document, each producing VIOLATION/WARNING/INFO findings and a
// per-pattern compliance score, rolled up into one overall score.
package validate

import (
	"fmt"
	"sort"
	"time"

	"github.com/c360studio/tagteam/graph"
	"github.com/c360studio/tagteam/vocabulary/bfo"
	"github.com/c360studio/tagteam/vocabulary/cco"
	"github.com/c360studio/tagteam/vocabulary/tagteam"
)

// Severity enumerates a finding's strength (§4.14, §7 — validation
// outcomes are always returned, never thrown).
type Severity string

const (
	Violation Severity = "VIOLATION"
	Warning   Severity = "WARNING"
	Info      Severity = "INFO"
)

// Pattern names the eight SHML patterns.
const (
	PatternInformationStaircase = "INFORMATION_STAIRCASE"
	PatternRole                 = "ROLEPATTERN"
	PatternDesignation          = "DESIGNATION"
	PatternTemporalInterval     = "TEMPORAL_INTERVAL"
	PatternMeasurement          = "MEASUREMENT"
	PatternSocioPrimal          = "SOCIO_PRIMAL"
	PatternDomainRange          = "DOMAINRANGE"
	PatternVocabulary           = "VOCABULARY"
)

// Finding is one pattern's verdict about one node (or node pair).
type Finding struct {
	Pattern  string
	Severity Severity
	NodeID   string
	Message  string
}

// Result is the SHMLValidator's output: every finding, the per-pattern
// scores, and the rolled-up overall compliance score.
type Result struct {
	Findings      []Finding
	PatternScores map[string]float64
	OverallScore  float64
}

// Violations returns findings with Severity == Violation.
func (r Result) Violations() []Finding {
	return r.bySeverity(Violation)
}

// Warnings returns findings with Severity == Warning.
func (r Result) Warnings() []Finding {
	return r.bySeverity(Warning)
}

func (r Result) bySeverity(s Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == s {
			out = append(out, f)
		}
	}
	return out
}

// Options configures one validation run (§6 strict/verbose config).
type Options struct {
	// Strict promotes every WARNING to a VIOLATION after all patterns run
	// (§7: in strict mode any VIOLATION is fatal to the pipeline caller).
	Strict bool
}

// tally accumulates one pattern's passed/total counts plus its findings.
type tally struct {
	passed, total int
	findings      []Finding
}

func (t *tally) check(ok bool, pattern, nodeID, msg string, sev Severity) {
	t.total++
	if ok {
		t.passed++
		return
	}
	t.findings = append(t.findings, Finding{Pattern: pattern, Severity: sev, NodeID: nodeID, Message: msg})
}

func (t *tally) score() float64 {
	if t.total == 0 {
		return 100
	}
	return float64(t.passed) / float64(t.total) * 100
}

// Validate runs all eight SHML patterns over doc and rolls up the result.
func Validate(doc *graph.Document, opts Options) Result {
	tallies := map[string]*tally{
		PatternInformationStaircase: {},
		PatternRole:                 {},
		PatternDesignation:          {},
		PatternTemporalInterval:     {},
		PatternMeasurement:          {},
		PatternSocioPrimal:          {},
		PatternDomainRange:          {},
		PatternVocabulary:           {},
	}

	checkInformationStaircase(doc, tallies[PatternInformationStaircase])
	checkRolePattern(doc, tallies[PatternRole])
	checkDesignation(doc, tallies[PatternDesignation])
	checkTemporalInterval(doc, tallies[PatternTemporalInterval])
	checkMeasurement(doc, tallies[PatternMeasurement])
	checkSocioPrimal(doc, tallies[PatternSocioPrimal])
	checkDomainRange(doc, tallies[PatternDomainRange])
	checkVocabulary(doc, tallies[PatternVocabulary])

	var res Result
	res.PatternScores = make(map[string]float64, len(tallies))
	names := make([]string, 0, len(tallies))
	for name := range tallies {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t := tallies[name]
		res.PatternScores[name] = t.score()
		for _, f := range t.findings {
			if opts.Strict && f.Severity == Warning {
				f.Severity = Violation
			}
			res.Findings = append(res.Findings, f)
		}
	}

	res.OverallScore = overallScore(res.PatternScores, res.Violations(), res.Warnings())
	return res
}

func overallScore(patternScores map[string]float64, violations, warnings []Finding) float64 {
	sum := 0.0
	for _, s := range patternScores {
		sum += s
	}
	mean := sum / float64(len(patternScores))
	score := mean - 10*float64(len(violations)) - 2*float64(len(warnings))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// --- pattern 1: information staircase ---

func checkInformationStaircase(doc *graph.Document, t *tally) {
	for _, n := range doc.Nodes {
		switch v := n.(type) {
		case *graph.ICE:
			t.check(len(v.IsConcretizedBy) > 0, PatternInformationStaircase, v.ID,
				"ICE should be concretized by at least one IBE", Warning)
		case *graph.IBE:
			t.check(v.HasTextValue != "", PatternInformationStaircase, v.ID,
				"IBE should carry a has_text_value", Warning)
			t.check(len(v.Concretizes) > 0, PatternInformationStaircase, v.ID,
				"IBE should concretize at least one ICE", Warning)
		}
	}
}

// --- pattern 2: role pattern ---

var independentContinuantTypes = map[string]bool{
	cco.Person: true, cco.Organization: true, cco.GroupOfPersons: true,
	cco.Artifact: true, cco.Facility: true, cco.GeopoliticalEntity: true,
	bfo.MaterialEntity: true, bfo.IndependentContinuant: true, bfo.ObjectAggregate: true,
}

func checkRolePattern(doc *graph.Document, t *tally) {
	for _, n := range doc.Nodes {
		role, ok := n.(*graph.Role)
		if !ok {
			continue
		}
		bearer := doc.ByID(role.InheresIn.ID)
		t.check(bearer != nil, PatternRole, role.ID,
			fmt.Sprintf("role bearer %q does not resolve", role.InheresIn.ID), Violation)
		if bearer == nil {
			continue
		}
		t.check(hasAnyType(bearer.NodeTypes(), independentContinuantTypes), PatternRole, role.ID,
			"role bearer should be an independent continuant", Warning)
		t.check(len(role.RealizedIn) > 0 || len(role.WouldBeRealizedIn) > 0, PatternRole, role.ID,
			"role should be realized in at least one act", Warning)
	}
}

func hasAnyType(types []string, set map[string]bool) bool {
	for _, ty := range types {
		if set[ty] {
			return true
		}
	}
	return false
}

// --- pattern 3: designation ---

func checkDesignation(doc *graph.Document, t *tally) {
	for _, n := range doc.Nodes {
		if !hasType(n, cco.DesignativeICE) {
			continue
		}
		props := n.Properties()
		_, hasDesignates := props["designates"]
		_, hasDesignatedBy := props["is_designated_by"]
		t.check(hasDesignates || hasDesignatedBy, PatternDesignation, n.NodeID(),
			"designative ICE must designate or be designated by some node", Violation)
	}
}

func hasType(n graph.Node, ty string) bool {
	for _, t := range n.NodeTypes() {
		if t == ty {
			return true
		}
	}
	return false
}

// --- pattern 4: temporal interval ---

func checkTemporalInterval(doc *graph.Document, t *tally) {
	for _, n := range doc.Nodes {
		props := n.Properties()
		start, hasStart := props["has_start_time"]
		end, hasEnd := props["has_end_time"]
		if !hasStart && !hasEnd {
			continue
		}
		t.check(hasStart, PatternTemporalInterval, n.NodeID(), "temporal interval should set has_start_time", Warning)
		t.check(hasEnd, PatternTemporalInterval, n.NodeID(), "temporal interval should set has_end_time", Warning)
		if hasStart && hasEnd {
			ok := compareTemporal(start, end)
			t.check(ok, PatternTemporalInterval, n.NodeID(), "has_start_time must not be after has_end_time", Violation)
		}
	}
}

func compareTemporal(start, end any) bool {
	if st, ok := start.(time.Time); ok {
		if et, ok := end.(time.Time); ok {
			return !st.After(et)
		}
	}
	// Falls back to lexical RFC3339 comparison, which orders correctly for
	// same-zone timestamps of equal precision.
	return fmt.Sprint(start) <= fmt.Sprint(end)
}

// --- pattern 5: measurement ---

func checkMeasurement(doc *graph.Document, t *tally) {
	for _, n := range doc.Nodes {
		if !hasType(n, cco.QualityMeasurement) {
			continue
		}
		props := n.Properties()
		_, measures := props["measures"]
		_, measuredBy := props["is_measured_by"]
		t.check(measures || measuredBy, PatternMeasurement, n.NodeID(),
			"quality measurement must link to a quality via measures/is_measured_by", Violation)
		_, hasValue := props["has_measurement_value"]
		t.check(hasValue, PatternMeasurement, n.NodeID(), "quality measurement must carry has_measurement_value", Violation)
		_, hasUnit := props["uses_measurement_unit"]
		t.check(hasUnit, PatternMeasurement, n.NodeID(), "quality measurement must carry uses_measurement_unit", Violation)
	}
}

// --- pattern 6: socio-primal ---

func checkSocioPrimal(doc *graph.Document, t *tally) {
	for _, n := range doc.Nodes {
		act, ok := n.(*graph.Act)
		if !ok {
			continue
		}
		t.check(act.OccursDuring != nil, PatternSocioPrimal, act.ID,
			"act should carry temporal grounding via occurs_during", Warning)
		t.check(len(act.Participants()) > 0, PatternSocioPrimal, act.ID,
			"act should have at least one participant", Warning)
	}
}

// --- pattern 7: domain/range ---

func checkDomainRange(doc *graph.Document, t *tally) {
	for _, n := range doc.Nodes {
		props := n.Properties()
		for pred, val := range props {
			switch pred {
			case "is_concretized_by":
				checkRefTargets(doc, t, n.NodeID(), val, cco.InformationBearingEntity,
					"is_concretized_by must target an information bearing entity", Violation)
			case "is_bearer_of":
				checkRefTargets(doc, t, n.NodeID(), val, bfo.Role,
					"is_bearer_of must target a role", Violation)
			case "is_part_of":
				checkRefTargetsNot(doc, t, n.NodeID(), val, bfo.Process,
					"is_part_of must never target a process", Violation)
			case "asserts":
				checkRefTargets(doc, t, n.NodeID(), val, cco.InformationContentEntity,
					"asserts must target an information content entity", Violation)
			case "has_agent":
				domainOK := hasType(n, bfo.Process)
				t.check(domainOK, PatternDomainRange, n.NodeID(), "has_agent domain must be a process", Violation)
				checkRefTargets(doc, t, n.NodeID(), val, cco.Person,
					"has_agent range must be an agent", Violation, cco.Organization, cco.GroupOfPersons)
			case "prescribes":
				domainOK := hasType(n, cco.DirectiveContent)
				t.check(domainOK, PatternDomainRange, n.NodeID(), "prescribes domain should be directive content", Warning)
				checkRefTargets(doc, t, n.NodeID(), val, bfo.Process,
					"prescribes range should be a process", Warning)
			case "inheres_in":
				domainOK := hasType(n, bfo.Role) || hasType(n, bfo.Quality)
				t.check(domainOK, PatternDomainRange, n.NodeID(), "inheres_in domain must be a role or quality", Violation)
				checkRefTargets(doc, t, n.NodeID(), val, bfo.IndependentContinuant,
					"inheres_in range must be an independent continuant", Violation,
					cco.Person, cco.Organization, cco.GroupOfPersons, cco.Artifact, cco.Facility,
					bfo.MaterialEntity, bfo.ObjectAggregate)
			}
		}
	}
}

func checkRefTargets(doc *graph.Document, t *tally, ownerID string, val any, wantType, msg string, sev Severity, extraTypes ...string) {
	want := map[string]bool{wantType: true}
	for _, ty := range extraTypes {
		want[ty] = true
	}
	for _, ref := range refsOf(val) {
		target := doc.ByID(ref.ID)
		ok := target != nil && hasAnyType(target.NodeTypes(), want)
		t.check(ok, PatternDomainRange, ownerID, msg, sev)
	}
}

func checkRefTargetsNot(doc *graph.Document, t *tally, ownerID string, val any, forbiddenType, msg string, sev Severity) {
	for _, ref := range refsOf(val) {
		target := doc.ByID(ref.ID)
		ok := target == nil || !hasType(target, forbiddenType)
		t.check(ok, PatternDomainRange, ownerID, msg, sev)
	}
}

func refsOf(val any) []graph.Ref {
	switch v := val.(type) {
	case graph.Ref:
		return []graph.Ref{v}
	case []graph.Ref:
		return v
	default:
		return nil
	}
}

// --- pattern 8: vocabulary ---

var knownClasses = map[string]bool{
	bfo.IndependentContinuant: true, bfo.Process: true, bfo.Disposition: true,
	bfo.Quality: true, bfo.Role: true, bfo.ObjectAggregate: true,
	bfo.GenericallyDependentContinuant: true, bfo.MaterialEntity: true, bfo.Entity: true,
	bfo.TemporalRegion1D: true, bfo.SpatiotemporalRegion: true,
	cco.Person: true, cco.Organization: true, cco.GroupOfPersons: true, cco.Artifact: true,
	cco.Facility: true, cco.GeopoliticalEntity: true, cco.InformationContentEntity: true,
	cco.InformationBearingEntity: true, cco.GenericInformationContent: true,
	cco.DesignativeICE: true, cco.DirectiveContent: true, cco.ScarcityAssertion: true,
	cco.ValueAssertionEvent: true, cco.ContextAssessmentEvent: true, cco.Act: true,
	cco.QualityMeasurement: true,
	tagteam.AgentRole: true, tagteam.PatientRole: true, tagteam.RecipientRole: true,
	tagteam.BeneficiaryRole: true, tagteam.InstrumentRole: true, tagteam.ParticipantRole: true,
	tagteam.AlternativeNode: true, tagteam.DiscourseReferent: true, tagteam.ComplexDesignator: true,
	tagteam.StructuralAssertion: true, tagteam.ObjectAggregate: true,
	"owl:Class": true, "owl:NamedIndividual": true,
}

var knownPredicates = map[string]bool{
	"is_concretized_by": true, "concretizes": true, "has_text_value": true,
	"is_about": true, "extracted_from": true, "evidenceText": true, "supplyCount": true,
	"scarcityMarker": true, "detected_at": true, "modalType": true, "modalMarker": true,
	"prescribes": true, "asserts": true, "inheres_in": true, "is_bearer_of": true,
	"realized_in": true, "would_be_realized_in": true, "designates": true, "is_designated_by": true,
	"has_start_time": true, "has_end_time": true, "measures": true, "is_measured_by": true,
	"has_measurement_value": true, "uses_measurement_unit": true, "has_agent": true, "affects": true,
	"has_participant": true, "occurs_during": true, "has_part": true, "is_part_of": true,
	"member_of": true, "has_member_part": true, "subject": true, "object": true, "copula": true,
	"negated": true, "relation": true, "pattern": true, "verb": true, "lemma": true, "tag": true,
	"isPassive": true, "isNegated": true, "isCopular": true, "modality": true, "actualityStatus": true,
	"scope": true, "start": true, "end": true, "definiteness": true, "referentialStatus": true,
	"denotedType": true, "is_scarce": true, "scarcity_marker": true, "quantity": true,
	"quantifier": true, "temporalUnit": true, "introducingPreposition": true, "typeRefinedBy": true,
	"isConjunct": true, "coordinationType": true, "isPossessor": true, "isPPObject": true,
	"preposition": true, "isPronoun": true, "pronounType": true, "genericityCategory": true,
	"genericityBasis": true, "classNominationStatus": true, "nominatedClassLabel": true,
	"nominationBasis": true, "requiresOntologyResolution": true, "instantiated_at": true,
	"instantiated_by": true, "alternativeFor": true, "metonymicSource": true, "based_on": true,
	"detected_by": true, "validInContext": true, "assertionType": true, "validatedBy": true,
	"supersedes": true,
}

func checkVocabulary(doc *graph.Document, t *tally) {
	for _, n := range doc.Nodes {
		for _, ty := range n.NodeTypes() {
			ok := knownClasses[ty]
			msg := fmt.Sprintf("unrecognized type %q", localName(ty))
			if !ok {
				if suggestion := nearestKnown(localName(ty), classLocalNames()); suggestion != "" {
					msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
				}
			}
			t.check(ok, PatternVocabulary, n.NodeID(), msg, Warning)
		}
		for pred := range n.Properties() {
			ok := knownPredicates[pred]
			msg := fmt.Sprintf("unrecognized predicate %q", pred)
			if !ok {
				if suggestion := nearestKnown(pred, predicateNames()); suggestion != "" {
					msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
				}
			}
			t.check(ok, PatternVocabulary, n.NodeID(), msg, Warning)
		}
	}
}

// localName strips any namespace prefix, so vocabulary checks are
// prefix-agnostic as required by §4.14 pattern 8.
func localName(compactIRI string) string {
	for i := len(compactIRI) - 1; i >= 0; i-- {
		if compactIRI[i] == ':' {
			return compactIRI[i+1:]
		}
	}
	return compactIRI
}

func classLocalNames() []string {
	names := make([]string, 0, len(knownClasses))
	for c := range knownClasses {
		names = append(names, localName(c))
	}
	return names
}

func predicateNames() []string {
	names := make([]string, 0, len(knownPredicates))
	for p := range knownPredicates {
		names = append(names, p)
	}
	return names
}

// nearestKnown returns the closest candidate within Levenshtein distance 3,
// or "" if none qualifies (§4.14 pattern 8).
func nearestKnown(word string, candidates []string) string {
	best := ""
	bestDist := 4
	for _, c := range candidates {
		d := levenshtein(word, c)
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	if bestDist > 3 {
		return ""
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}
	prev := make([]int, lb+1)
	cur := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		cur[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			min := del
			if ins < min {
				min = ins
			}
			if sub < min {
				min = sub
			}
			cur[j] = min
		}
		prev, cur = cur, prev
	}
	return prev[lb]
}
