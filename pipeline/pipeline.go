// Package pipeline implements the orchestrator (§6): it wires every
// earlier stage -- tokenization, tagging, entity extraction, Tier 2
// promotion, act extraction, role detection, scarcity, ambiguity, and
// validation -- into the single Build entry point the rest of this
// module exists to support.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360studio/tagteam/act"
	"github.com/c360studio/tagteam/ambiguity"
	"github.com/c360studio/tagteam/deptree"
	"github.com/c360studio/tagteam/entity"
	"github.com/c360studio/tagteam/errs"
	"github.com/c360studio/tagteam/graph"
	"github.com/c360studio/tagteam/jsonld"
	"github.com/c360studio/tagteam/lexicon"
	"github.com/c360studio/tagteam/marker"
	"github.com/c360studio/tagteam/pos"
	"github.com/c360studio/tagteam/role"
	"github.com/c360studio/tagteam/scarcity"
	"github.com/c360studio/tagteam/token"
	"github.com/c360studio/tagteam/validate"
	"github.com/c360studio/tagteam/vocabulary/cco"
)

// Arc is one dependency-parse edge: dependent and head are 1-indexed
// token ids, head == 0 marks a sentence root (§6).
type Arc = deptree.Arc

// Parse is the external dependency-parse contract Build consumes: tokens
// and tags aligned 1:1, positionally, with this package's own internal
// tokenization of the same text, plus the UD v2 arcs connecting them.
type Parse struct {
	Tokens []string
	Tags   []string
	Arcs   []Arc
}

// Config configures one Build call (§6).
type Config struct {
	// CreateTier2 runs RealWorldEntityFactory over every referent,
	// attaching is_about links. Defaults to true.
	CreateTier2 bool

	// DocumentIRI is recorded on every Tier 2 entity's instantiated_by.
	DocumentIRI string

	// SessionID identifies this Build call for logging/metrics; a
	// random uuid is generated if left empty.
	SessionID string

	// IRISuffix names the suffix AlternativeNode ids receive; defaults
	// to "_alt" (currently informational -- AlternativeNode ids are
	// built by graph.NewAlternativeNode, which owns the suffixing).
	IRISuffix string

	// PreserveOriginalLinks keeps an ambiguous node's original reading
	// untouched when alternatives are built. Defaults to true.
	PreserveOriginalLinks bool

	// IncludeMetadata attaches GeneratedAt/SessionID to the Result.
	// Defaults to true.
	IncludeMetadata bool

	// DefaultPlausibility seeds ambiguity.Plausibilities for a default
	// reading with no explicit Confidence. Defaults to 0.7.
	DefaultPlausibility float64

	// Strict promotes validator WARNINGs to VIOLATIONs and makes any
	// VIOLATION fatal to the whole Build call (§7).
	Strict bool

	// Verbose raises Build's per-stage slog lines from Debug to Info.
	Verbose bool

	// Compact and Pretty are forwarded to the JSON-LD serializer.
	Compact bool
	Pretty  bool

	// DomainConfigLoader optionally specialises entity typing beyond
	// the built-in lexicon tables (§4.6 step 6, §6).
	DomainConfigLoader entity.DomainConfigLoader

	// ProperNames supplies externally-recognized proper-name spans
	// (§1 Non-goals: NER is out of scope and taken as an input signal).
	ProperNames []entity.ProperName

	// Logger receives one structured line per stage. Defaults to
	// slog.Default().
	Logger *slog.Logger

	// Now overrides time.Now for Tier 2 instantiation timestamps and
	// scarcity detection timestamps; defaults to time.Now.
	Now func() time.Time

	// Metrics optionally registers Build's prometheus counters/
	// histograms against a specific registerer; defaults to the global
	// default registry.
	Metrics prometheus.Registerer
}

// DefaultConfig returns Config with every §6 default applied.
func DefaultConfig() Config {
	return Config{
		CreateTier2:           true,
		IRISuffix:             "_alt",
		PreserveOriginalLinks: true,
		IncludeMetadata:       true,
		DefaultPlausibility:   0.7,
		Compact:               true,
	}
}

// Result is everything one Build call produces.
type Result struct {
	Document   *graph.Document
	Validation validate.Result

	// Certainty is computed once over the whole input text; per-span
	// certainty is a documented simplification (no graph node currently
	// models hedge/booster/evidential fields).
	Certainty marker.Certainty

	SessionID   string
	GeneratedAt time.Time
}

// ErrStrictValidationFailed is returned, wrapped with the validation
// report, when Strict mode finds a VIOLATION (§7: "strict mode treats
// any VIOLATION as fatal and returns no graph").
var ErrStrictValidationFailed = fmt.Errorf("validation found one or more VIOLATIONs in strict mode")

// StrictValidationError carries the validation report that triggered a
// strict-mode failure, so a caller can inspect it via errors.As.
type StrictValidationError struct {
	Result validate.Result
}

func (e *StrictValidationError) Error() string { return ErrStrictValidationFailed.Error() }
func (e *StrictValidationError) Unwrap() error { return ErrStrictValidationFailed }

// Build runs the full pipeline over text against an externally-supplied
// dependency parse of the same text, and returns the resulting graph
// plus its validation report (§6).
func Build(text string, parse Parse, cfg Config) (*Result, error) {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sessionID := cfg.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	m := metricsFor(cfg.Metrics)

	if err := validateInput(text, parse); err != nil {
		return nil, err
	}

	logStage := func(stage string, start time.Time, fields ...any) {
		m.recordStage(stage, time.Since(start).Seconds())
		lvl := slog.LevelDebug
		if cfg.Verbose {
			lvl = slog.LevelInfo
		}
		logger.Log(context.Background(), lvl, "pipeline stage", append([]any{"stage", stage, "session", sessionID}, fields...)...)
	}

	// --- tokenize + tag ---
	stageStart := now()
	tokens := token.Tokenize(text)
	tagged := pos.Tag(tokens)
	logStage("tokenize", stageStart, "tokens", len(tokens))

	// --- entity extraction ---
	stageStart = now()
	extractor := entity.New(cfg.DomainConfigLoader)
	cands := extractor.Extract(tagged, cfg.ProperNames)

	seenLabels := map[string]bool{}
	isFirstMention := func(label string) bool {
		if seenLabels[label] {
			return false
		}
		seenLabels[label] = true
		return true
	}
	referents := entity.ToDiscourseReferents(cands, tagged, text, isFirstMention)
	logStage("extract", stageStart, "referents", len(referents))

	// --- dependency tree: our own Penn tags paired with the caller's arcs ---
	words := make([]string, len(tagged))
	pennTags := make([]string, len(tagged))
	for i, tg := range tagged {
		words[i] = tg.Word
		pennTags[i] = tg.Tag
	}
	tree := deptree.New(words, pennTags, parse.Arcs)

	// --- genericity classification on subject-position referents ---
	stageStart = now()
	classifySubjects(tree, tagged, referents)
	logStage("markers", stageStart)

	// --- certainty, over the whole document ---
	certainty := marker.AnalyzeCertainty(text)

	// --- Tier 2 promotion ---
	stageStart = now()
	referentToTier2 := map[string]string{}
	tier2ByID := map[string]graph.Node{}
	var tier2Nodes []graph.Node
	aggregateMembers := map[string][]string{}

	if cfg.CreateTier2 {
		factory := entity.NewRealWorldEntityFactory(cfg.DocumentIRI, now)
		linkMap := map[string]*graph.RealWorldEntity{}

		for _, r := range referents {
			entityNode := factory.Build(r)

			if isPluralPerson(entityNode, r) {
				members := make([]string, 0, *r.Quantity)
				for i := 0; i < *r.Quantity; i++ {
					memberFactory := entity.NewRealWorldEntityFactory(
						fmt.Sprintf("%s#%d", cfg.DocumentIRI, i), now)
					member := memberFactory.Build(r)
					tier2ByID[member.ID] = member
					tier2Nodes = append(tier2Nodes, member)
					members = append(members, member.ID)
				}
				hash := graph.ContentHash(8, "aggregate", r.ID)
				aggID := graph.InstanceID("ObjectAggregate", graph.ContentHash(8, r.Label), hash)
				agg := graph.NewObjectAggregate(aggID, r.Label, members)
				tier2ByID[agg.ID] = agg
				tier2Nodes = append(tier2Nodes, agg)
				aggregateMembers[agg.ID] = members
				referentToTier2[r.ID] = agg.ID
				ref := graph.RefTo(agg.ID)
				r.IsAbout = &ref
				continue
			}

			linkMap[r.ID] = entityNode
			if _, exists := tier2ByID[entityNode.ID]; !exists {
				tier2ByID[entityNode.ID] = entityNode
				tier2Nodes = append(tier2Nodes, entityNode)
			}
			referentToTier2[r.ID] = entityNode.ID
		}
		entity.LinkReferentsToTier2(referents, linkMap)
	}
	logStage("tier2", stageStart, "entities", len(tier2Nodes))

	// --- act extraction ---
	stageStart = now()
	resolve := func(tokenID int) (string, bool) {
		start, end, ok := tokenOffset(tokenID, tagged)
		if !ok {
			return "", false
		}
		ref := coveringReferent(referents, start, end)
		if ref == nil {
			return "", false
		}
		if cfg.PreserveOriginalLinks {
			if tier2ID, ok := referentToTier2[ref.ID]; ok {
				return tier2ID, true
			}
		}
		return ref.ID, true
	}
	actExtractor := act.New(tree, resolve)
	actNodes := actExtractor.Extract()
	logStage("act", stageStart, "nodes", len(actNodes))

	var acts []*graph.Act
	for _, n := range actNodes {
		if a, ok := n.(*graph.Act); ok {
			acts = append(acts, a)
		}
	}

	// --- role detection ---
	stageStart = now()
	introducingPrep := map[string]string{}
	personTier2 := map[string]bool{}
	for _, r := range referents {
		tier2ID, ok := referentToTier2[r.ID]
		if !ok {
			continue
		}
		if r.IntroducingPreposition != "" {
			introducingPrep[tier2ID] = r.IntroducingPreposition
		}
		if n, ok := tier2ByID[tier2ID]; ok && hasType(n, cco.Person) {
			personTier2[tier2ID] = true
		}
		for _, member := range aggregateMembers[tier2ID] {
			if n, ok := tier2ByID[member]; ok && hasType(n, cco.Person) {
				personTier2[member] = true
			}
		}
	}

	lookup := role.BearerLookup{
		CanBearAgent: func(id string) bool {
			n, ok := tier2ByID[id]
			if !ok {
				return true
			}
			return hasType(n, cco.Person) || hasType(n, cco.Organization) || hasType(n, cco.GroupOfPersons)
		},
		IsPerson: func(id string) bool { return personTier2[id] },
		AggregateMembers: func(id string) ([]string, bool) {
			members, ok := aggregateMembers[id]
			return members, ok
		},
		IntroducingPreposition: func(id string) (string, bool) {
			prep, ok := introducingPrep[id]
			return prep, ok
		},
	}
	detector := role.New(lookup)
	detector.AddActs(acts)
	roles, _ := detector.Build(nil)
	logStage("role", stageStart, "roles", len(roles))

	// --- scarcity ---
	stageStart = now()
	scarcityFactory := scarcity.New(now)
	scarcityNodes := scarcityFactory.Build(referents)
	logStage("markers", stageStart, "scarcity", len(scarcityNodes))

	// --- ambiguity: complex designators (always) + simplified modal force ---
	stageStart = now()
	designators := ambiguity.DetectComplexDesignators(tagged)

	var alternatives []*graph.AlternativeNode
	for _, a := range acts {
		modalWord, hasModal := syntheticModalWord(a.Modality)
		if !hasModal {
			continue
		}
		isAgentSubject := a.HasAgent != nil
		amb, ok := ambiguity.DetectModalForce(a.ID, modalWord, false, isAgentSubject, false, a.IsNegated)
		if !ok {
			continue
		}
		if amb.Confidence <= 0 {
			amb.Confidence = cfg.DefaultPlausibility
		}
		alternatives = append(alternatives, ambiguity.BuildAlternatives(a, amb)...)
	}
	logStage("markers", stageStart, "designators", len(designators), "alternatives", len(alternatives))

	// --- assemble the document ---
	doc := &graph.Document{}
	for _, r := range referents {
		doc.Add(r)
	}
	for _, n := range tier2Nodes {
		doc.Add(n)
	}
	for _, n := range actNodes {
		doc.Add(n)
	}
	for _, r := range roles {
		doc.Add(r)
	}
	for _, n := range scarcityNodes {
		doc.Add(n)
	}
	for _, d := range designators {
		doc.Add(d)
	}
	for _, alt := range alternatives {
		doc.Add(alt)
	}

	if err := doc.CheckReferences(); err != nil {
		logger.Warn("document reference check found a dangling ref", "session", sessionID, "error", err.Error())
	}

	// --- validation ---
	stageStart = now()
	valResult := validate.Validate(doc, validate.Options{Strict: cfg.Strict})
	logStage("validate", stageStart, "score", valResult.OverallScore)

	m.documentsProcessed.Inc()
	m.complianceScore.Set(valResult.OverallScore)
	m.violations.Add(float64(len(valResult.Violations())))
	m.warnings.Add(float64(len(valResult.Warnings())))

	if cfg.Strict && len(valResult.Violations()) > 0 {
		return nil, &StrictValidationError{Result: valResult}
	}

	res := &Result{Document: doc, Validation: valResult, Certainty: certainty}
	if cfg.IncludeMetadata {
		res.SessionID = sessionID
		res.GeneratedAt = now()
	}
	return res, nil
}

// Serialize renders a Build result as JSON-LD, per cfg's Compact/Pretty.
func Serialize(res *Result, cfg Config) ([]byte, error) {
	return jsonld.Serialize(res.Document, jsonld.Options{Compact: cfg.Compact, Pretty: cfg.Pretty})
}

// validateInput enforces the §7 input-error contract: these fail the
// whole Build call immediately rather than being logged and skipped.
func validateInput(text string, parse Parse) error {
	if strings.TrimSpace(text) == "" {
		return errs.NewInputError(errs.ErrEmptyInput, "")
	}
	if len(parse.Tokens) != len(parse.Tags) {
		return errs.NewInputError(errs.ErrTagCountMismatch,
			fmt.Sprintf("%d tokens but %d tags", len(parse.Tokens), len(parse.Tags)))
	}
	n := len(parse.Tokens)
	hasRoot := false
	for _, arc := range parse.Arcs {
		if arc.Dependent < 1 || arc.Dependent > n {
			return errs.NewInputError(errs.ErrArcOutOfRange,
				fmt.Sprintf("dependent %d out of range [1,%d]", arc.Dependent, n))
		}
		if arc.Head < 0 || arc.Head > n {
			return errs.NewInputError(errs.ErrArcOutOfRange,
				fmt.Sprintf("head %d out of range [0,%d]", arc.Head, n))
		}
		if arc.Head == 0 {
			hasRoot = true
		}
	}
	if n > 0 && !hasRoot {
		return errs.NewInputError(errs.ErrNoRoot, "")
	}
	return nil
}

// tokenOffset maps a 1-indexed external parse token id to the character
// span of the positionally-corresponding internally-tokenized word,
// under the assumption that the caller's parse tokenizes text the same
// way this package's own token.Tokenize does.
func tokenOffset(tokenID int, tagged []pos.Tagged) (start, end int, ok bool) {
	idx := tokenID - 1
	if idx < 0 || idx >= len(tagged) {
		return 0, 0, false
	}
	return tagged[idx].Start, tagged[idx].End, true
}

// coveringReferent returns the tightest-span referent whose [Start,End)
// contains [start,end), or nil if none covers it.
func coveringReferent(referents []*graph.DiscourseReferent, start, end int) *graph.DiscourseReferent {
	var best *graph.DiscourseReferent
	bestLen := -1
	for _, r := range referents {
		if r.Start <= start && r.End >= end {
			length := r.End - r.Start
			if best == nil || length < bestLen {
				best, bestLen = r, length
			}
		}
	}
	return best
}

// isPluralPerson reports whether a referent denotes more than one person
// and so should become an ObjectAggregate of N distinct Person entities
// rather than a single Tier 2 node.
func isPluralPerson(n *graph.RealWorldEntity, r *graph.DiscourseReferent) bool {
	if r.Quantity == nil || *r.Quantity <= 1 {
		return false
	}
	for _, t := range n.Types {
		if t == cco.Person {
			return true
		}
	}
	return false
}

func hasType(n graph.Node, ty string) bool {
	for _, t := range n.NodeTypes() {
		if t == ty {
			return true
		}
	}
	return false
}

// classifySubjects finds each clause root's grammatical subject, builds
// its SubjectContext from the referent's own determiner/quantifier
// signals plus the root verb's tense/aspect/modal, and writes the
// resulting genericity classification back onto the referent so
// RealWorldEntityFactory can see it before Tier 2 promotion (§4.10).
func classifySubjects(tree *deptree.Tree, tagged []pos.Tagged, referents []*graph.DiscourseReferent) {
	for _, root := range tree.Roots() {
		classifyRoot(tree, tagged, referents, root)
		for _, label := range []string{"advcl", "acl:relcl", "acl"} {
			for _, arc := range tree.ChildrenWithLabel(root, label) {
				classifyRoot(tree, tagged, referents, arc.Dependent)
			}
		}
	}
}

func classifyRoot(tree *deptree.Tree, tagged []pos.Tagged, referents []*graph.DiscourseReferent, root int) {
	subjArc, ok := tree.ChildWithLabel(root, "nsubj")
	if !ok {
		subjArc, ok = tree.ChildWithLabel(root, "nsubj:pass")
	}
	if !ok {
		return
	}
	start, end, ok := tokenOffset(subjArc.Dependent, tagged)
	if !ok {
		return
	}
	ref := coveringReferent(referents, start, end)
	if ref == nil {
		return
	}

	sc := marker.SubjectContext{
		Determiner:     ref.Quantifier,
		IsProperNoun:   !ref.IsPronoun && len(ref.Label) > 0 && isUpperFirst(ref.Label),
		IsPlural:       isPluralLabel(ref.Label),
		IsBareSingular: ref.Quantifier == "" && ref.Definiteness == graph.Indefinite && !ref.IsPronoun,
		PredicateLemma: lexicon.Lemmatize(tree.Word(root), tree.Tag(root)),
		Tense:          tenseOf(tree.Tag(root)),
	}
	for _, arc := range tree.ChildrenWithLabel(root, "aux") {
		w := strings.ToLower(tree.Word(arc.Dependent))
		if lexicon.Lemmatize(w, tree.Tag(arc.Dependent)) == "have" {
			sc.HasPerfectAspect = true
		}
		if lexicon.DeonticModals[w] || lexicon.EpistemicModals[w] || lexicon.AmbiguousModals[w] {
			sc.Modal = w
		}
	}

	result := marker.ClassifyGenericity(sc)
	ref.GenericityCategory = result.Category
	ref.GenericityBasis = result.Basis
}

func tenseOf(tag string) string {
	if tag == "VBD" {
		return "past"
	}
	return "present"
}

func isUpperFirst(s string) bool {
	r := []rune(s)[0]
	return r >= 'A' && r <= 'Z'
}

func isPluralLabel(label string) bool {
	words := strings.Fields(label)
	if len(words) == 0 {
		return false
	}
	last := strings.ToLower(words[len(words)-1])
	return strings.HasSuffix(last, "s") && !strings.HasSuffix(last, "ss")
}

// syntheticModalWord maps an Act's coarse Modality category back to a
// representative ambiguous modal auxiliary, since graph.Act discards the
// original modal word (a documented simplification: full-fidelity modal-
// force ambiguity would require retaining the raw auxiliary on Act).
func syntheticModalWord(m graph.Modality) (string, bool) {
	switch m {
	case graph.ModalityObligation:
		return "should", true
	case graph.ModalityPossibility:
		return "might", true
	default:
		return "", false
	}
}
